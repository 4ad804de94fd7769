package bnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionSeesLastMatchedSpan(t *testing.T) {
	var seen string
	act := NewAction("check", func(text string) bool {
		seen = text
		return text == "2"
	})
	s := Seq(NewTokenRange('0', '9'), NewTokenRange('0', '9'), act)
	ctx := newParseContext("42")
	stat := s.match(ctx)
	require.True(t, stat.Ok())
	assert.Equal(t, "2", seen) // Action reads the immediately preceding Token's own span
}

func TestActionRejectingFailsTheSequence(t *testing.T) {
	act := NewAction("reject", func(string) bool { return false })
	s := Seq(NewToken('a'), act)
	ctx := newParseContext("a")
	stat := s.match(ctx)
	assert.False(t, stat.Ok())
}

package bnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleWithoutCallbackJustGroups(t *testing.T) {
	r := NewRule("word", Seq(NewToken('a'), NewToken('b')))
	ctx := newParseContext("ab")
	stat := r.match(ctx)
	require.True(t, stat.Ok())
	assert.Equal(t, 2, ctx.pos)
	require.Len(t, ctx.spans, 1)
	assert.Equal(t, span{0, 2}, ctx.spans[0])
}

func TestRuleIsWhitespaceLoose(t *testing.T) {
	r := NewRule("word", Seq(NewToken('a'), NewToken('b')))
	ctx := newParseContext("a  b")
	stat := r.match(ctx)
	require.True(t, stat.Ok())
	assert.Equal(t, 4, ctx.pos)
}

func TestUninitializedRuleIsFatalBadRule(t *testing.T) {
	r := NewRule("empty", nil)
	ctx := newParseContext("x")
	stat := r.match(ctx)
	assert.True(t, stat.IsFatal())
	assert.True(t, stat.Has(BadRule))
}

func TestRuleFailsInsideLexemeTightScope(t *testing.T) {
	r := NewRule("inner", NewToken('a'))
	ctx := newParseContext("a")
	ctx.level = 0
	stat := r.match(ctx)
	assert.True(t, stat.IsFatal())
	assert.True(t, stat.Has(BadRule))
}

func TestBindFoldsChildResultsIntoParent(t *testing.T) {
	digit := NewRule("digit", NewTokenRange('0', '9'))
	Bind(digit, func(children []Result[int]) Result[int] {
		return Result[int]{Data: 1, Name: "digit"}
	})

	sum := NewRule("sum", Seq(digit, digit, digit))
	Bind(sum, func(children []Result[int]) Result[int] {
		total := 0
		for _, c := range children {
			total += c.Data
		}
		return Result[int]{Data: total, Name: "sum"}
	})

	stat, stop, total := AnalyzeWithResult[int](sum, "123")
	require.True(t, stat.Ok())
	assert.Equal(t, 3, stop)
	assert.Equal(t, 3, total)
}

package bnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexemeIsWhitespaceTight(t *testing.T) {
	word := NewLexeme("word", Seq(NewToken('a'), NewToken('b')))
	ctx := newParseContext("ab rest")
	stat := word.match(ctx)
	require.True(t, stat.Ok())
	assert.Equal(t, 2, ctx.pos)
	require.Len(t, ctx.spans, 1)
	assert.Equal(t, span{0, 2}, ctx.spans[0])
}

func TestLexemeRejectsInternalWhitespace(t *testing.T) {
	word := NewLexeme("word", Seq(NewToken('a'), NewToken('b')))
	ctx := newParseContext("a b")
	stat := word.match(ctx)
	assert.False(t, stat.Ok())
}

func TestLexemeSkipsLeadingWhitespaceAtEntry(t *testing.T) {
	word := NewLexeme("word", NewToken('a'))
	ctx := newParseContext("   a")
	stat := word.match(ctx)
	require.True(t, stat.Ok())
	assert.Equal(t, span{3, 4}, ctx.spans[0])
}

func TestUninitializedLexemeIsFatalBadLexeme(t *testing.T) {
	l := NewLexeme("empty", nil)
	ctx := newParseContext("x")
	stat := l.match(ctx)
	assert.True(t, stat.IsFatal())
	assert.True(t, stat.Has(BadLexeme))
}

func TestLexemeZeroWidthMatchEmitsNoSpan(t *testing.T) {
	l := NewLexeme("opt", ZeroOrMore(NewToken('a')))
	ctx := newParseContext("bbb")
	stat := l.match(ctx)
	require.True(t, stat.Ok())
	assert.Empty(t, ctx.spans)
}

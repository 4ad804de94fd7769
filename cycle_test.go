package bnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroOrMore(t *testing.T) {
	c := ZeroOrMore(NewToken('a'))

	ctx := newParseContext("aaab")
	stat := c.match(ctx)
	require.True(t, stat.Ok())
	assert.Equal(t, 3, ctx.pos)

	ctx = newParseContext("bbb")
	stat = c.match(ctx)
	require.True(t, stat.Ok())
	assert.Equal(t, 0, ctx.pos)
	assert.True(t, stat.Has(Null))
}

func TestOneOrMoreRequiresAtLeastOne(t *testing.T) {
	c := OneOrMore(NewToken('a'))

	ctx := newParseContext("aab")
	stat := c.match(ctx)
	require.True(t, stat.Ok())
	assert.Equal(t, 2, ctx.pos)

	ctx = newParseContext("bbb")
	stat = c.match(ctx)
	assert.False(t, stat.Ok())
	assert.Equal(t, 0, ctx.pos)
}

func TestZeroOrOne(t *testing.T) {
	c := ZeroOrOne(NewToken('a'))

	ctx := newParseContext("ab")
	stat := c.match(ctx)
	require.True(t, stat.Ok())
	assert.Equal(t, 1, ctx.pos)

	ctx = newParseContext("bb")
	stat = c.match(ctx)
	require.True(t, stat.Ok())
	assert.Equal(t, 0, ctx.pos)
}

func TestRepeatBounds(t *testing.T) {
	cases := []struct {
		atLeast, total int
		input          string
		wantOk         bool
		wantPos        int
		wantOverflow   bool
	}{
		{2, 4, "aaa", true, 3, false},
		{2, 4, "a", false, 0, false},
		{2, 2, "aaaa", true, 2, false},
	}
	for _, c := range cases {
		rep := Repeat(c.atLeast, c.total, NewToken('a'))
		ctx := newParseContext(c.input)
		stat := rep.match(ctx)
		assert.Equal(t, c.wantOk, stat.Ok(), "input %q", c.input)
		if c.wantOk {
			assert.Equal(t, c.wantPos, ctx.pos, "input %q", c.input)
		}
		assert.Equal(t, c.wantOverflow, stat.Has(Overflow), "input %q", c.input)
	}
}

func TestCycleDoesNotLoopForeverOnZeroWidthBody(t *testing.T) {
	zeroWidth := NullMatcher
	c := Cycle(0, 5, zeroWidth)
	ctx := newParseContext("x")
	stat := c.match(ctx)
	require.True(t, stat.Ok())
	assert.Equal(t, 0, ctx.pos)
}

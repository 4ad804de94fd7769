package bnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlternationAcceptsLongestMatch(t *testing.T) {
	short := NewToken('a')
	long := Seq(NewToken('a'), NewToken('b'))
	a := Alt(short, long)
	ctx := newParseContext("ab")
	stat := a.match(ctx)
	require.True(t, stat.Ok())
	assert.Equal(t, 2, ctx.pos)
}

func TestAlternationTieBreakPrefersEarlierBranch(t *testing.T) {
	first := NewToken('a')
	second := NewToken('a')
	a := Alt(first, second)
	ctx := newParseContext("a")
	stat := a.match(ctx)
	require.True(t, stat.Ok())
	// Both branches consume exactly one byte; the first branch's span
	// must be the one left in place.
	require.Len(t, ctx.spans, 1)
}

func TestAlternationAcceptFirstShortCircuits(t *testing.T) {
	a := Alt(Seq(NewToken('a'), AcceptFirstMarker), Seq(NewToken('a'), NewToken('b')))
	ctx := newParseContext("ab")
	stat := a.match(ctx)
	require.True(t, stat.Ok())
	// The shorter, accept-first branch wins even though the second
	// branch would have consumed more.
	assert.Equal(t, 1, ctx.pos)
}

func TestAlternationNoMatch(t *testing.T) {
	a := Alt(NewToken('x'), NewToken('y'))
	ctx := newParseContext("z")
	stat := a.match(ctx)
	assert.False(t, stat.Ok())
	assert.Equal(t, 0, ctx.pos)
}

func TestAlternationKeepsGoodMatchOverLaterFatalBranch(t *testing.T) {
	// A forward-declared Rule (design note 9: construct the empty named
	// node, mutate its definition slot later) is still nil-bodied here,
	// so it fails with Fatal|BadRule at zero length. That must not
	// discard an already-recorded, nonzero-length best from an earlier
	// branch.
	a := Alt(NewToken('a'), NewRule("future", nil))
	ctx := newParseContext("a")
	stat := a.match(ctx)
	require.True(t, stat.Ok())
	assert.Equal(t, 1, ctx.pos)
}

func TestAlternationReturnWinsImmediately(t *testing.T) {
	a := Alt(Seq(NewToken('a'), ReturnMarker), Seq(NewToken('a'), NewToken('b')))
	ctx := newParseContext("ab")
	stat := a.match(ctx)
	require.True(t, stat.Ok())
	assert.Equal(t, 1, ctx.pos)
}

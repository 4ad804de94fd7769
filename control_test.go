package bnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlMarkersAreZeroWidth(t *testing.T) {
	markers := []Matcher{NullMatcher, ReturnMarker, AcceptFirstMarker, SkipMarker, TryMarker}
	for _, m := range markers {
		ctx := newParseContext("abc")
		stat := m.match(ctx)
		assert.True(t, stat.Ok())
		assert.Equal(t, 0, ctx.pos)
	}
}

func TestControlMarkerFlags(t *testing.T) {
	ctx := newParseContext("")
	assert.True(t, ReturnMarker.match(ctx).Has(Return))
	assert.True(t, AcceptFirstMarker.match(ctx).Has(AcceptFirst))
	assert.True(t, SkipMarker.match(ctx).Has(Skip))
	assert.True(t, TryMarker.match(ctx).Has(Try))
}

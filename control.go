package bnf

// ctrl is a zero-width matcher that always succeeds and sets a fixed
// set of status bits, the Go analogue of original_source/bnflite.h's
// `_Ctrl<flag,char>` template. The five control markers below are its
// only instantiations, matching spec.md §4.5 exactly.
type ctrl struct {
	element
	flags Status
}

func newCtrl(name string, flags Status) *ctrl {
	c := &ctrl{element: newElement(name, true), flags: flags}
	return c
}

func (c *ctrl) match(ctx *ParseContext) Status {
	return Ok | Null | c.flags
}

// NullMatcher always succeeds, zero-width, with no other effect — a
// placeholder branch or an explicit no-op sequence element.
var NullMatcher Matcher = newCtrl("null", 0)

// ReturnMarker, placed as a Sequence child, makes the enclosing Sequence
// short-circuit as soon as it is reached and makes the enclosing
// Alternation commit to that branch outright (spec.md §4.2, §4.3).
var ReturnMarker Matcher = newCtrl("return", Return)

// AcceptFirstMarker switches the enclosing Alternation from accept-best
// to accept-first for the remainder of the scan (spec.md §4.3).
var AcceptFirstMarker Matcher = newCtrl("accept-first", AcceptFirst)

// SkipMarker makes the next child in the enclosing Sequence a positive
// lookahead: that child must match, but the cursor and spans are then
// rewound to where they stood before it, so it consumes no input
// (spec.md §4.2, §4.5).
var SkipMarker Matcher = newCtrl("skip", Skip)

// TryMarker enables the enclosing Sequence's catch-on-failure path for
// the remainder of that sequence (spec.md §4.2, §4.7).
var TryMarker Matcher = newCtrl("try", Try)

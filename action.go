package bnf

// Action is a host predicate invoked on the last matched span (spec.md
// §3, "Action" row), grounded on original_source/bnflite.h's `class
// Action` wrapping a raw `bool (*)(const char*, size_t)` function
// pointer. It is zero-width: it neither advances the cursor nor pushes
// a span of its own, but its predicate may reject an otherwise-matched
// sequence by returning false, and it runs against the span the
// immediately preceding sibling in its enclosing Sequence just matched.
type Action struct {
	element
	fn func(text string) bool
}

// NewAction builds an Action around fn, given a display name for Dump
// output (original_source stringizes the `ACTION` macro argument; Go
// has no such facility, so the name is explicit).
func NewAction(name string, fn func(text string) bool) *Action {
	return &Action{element: newElement(name, true), fn: fn}
}

func (a *Action) match(ctx *ParseContext) Status {
	if len(ctx.spans) == 0 {
		return Err
	}
	last := ctx.spans[len(ctx.spans)-1]
	if a.fn(ctx.text[last.start:last.end]) {
		return Ok | Null
	}
	return Err
}

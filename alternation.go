package bnf

// Alternation is the disjunction combinator of spec.md §4.3, grounded on
// original_source/bnflite.h's `_Or::_parse`. By default it is
// accept-best: every branch is tried against the same starting cursor,
// and the branch that consumes the most input wins, ties broken in
// favor of the earlier-declared branch (strict inequality, per spec.md
// §4.3 and §8 invariant 3). A branch whose status carries AcceptFirst
// switches the whole alternation to accept-first for the remainder of
// the scan: the first such branch to succeed wins outright, regardless
// of how much input later branches might consume. A branch carrying
// Return short-circuits immediately. A fatal branch short-circuits too,
// unless an earlier branch has already recorded a best match whose end
// is at or beyond the fatal branch's cursor; then the fatal branch is
// skipped and the scan goes on.
type Alternation struct {
	element
	parts []Matcher
}

// Alt builds an Alternation from its branches.
func Alt(parts ...Matcher) *Alternation {
	a := &Alternation{element: newElement("", true)}
	for _, p := range parts {
		a.element.addChild(&a.element, p)
		a.parts = append(a.parts, p)
	}
	return a
}

// Or appends another branch, returning a for chaining.
func (a *Alternation) Or(m Matcher) *Alternation {
	a.element.addChild(&a.element, m)
	a.parts = append(a.parts, m)
	return a
}

func (a *Alternation) match(ctx *ParseContext) (result Status) {
	startPos := ctx.pos
	startDepth := len(ctx.spans)
	defer func() { ctx.trace("alternation", a.name, startPos, result) }()

	haveBest := false
	var bestPos int
	var bestSpans []span
	var bestStatus Status
	var fold Status

	for _, child := range a.parts {
		ctx.pos = startPos
		ctx.truncateSpans(startDepth)

		cs := child.match(ctx)
		fold |= cs

		if cs.IsFatal() {
			if !haveBest || ctx.pos > bestPos {
				return cs
			}
			continue
		}
		if !cs.Ok() {
			continue
		}

		if cs.Has(Return) {
			return cs
		}

		if !haveBest {
			haveBest = true
			bestPos, bestStatus = ctx.pos, cs
			bestSpans = append([]span(nil), ctx.spans...)
			if cs.Has(AcceptFirst) {
				break
			}
			continue
		}

		if bestStatus.Has(AcceptFirst) {
			break
		}
		if cs.Has(AcceptFirst) {
			bestPos, bestStatus = ctx.pos, cs
			bestSpans = append([]span(nil), ctx.spans...)
			break
		}
		if ctx.pos > bestPos {
			bestPos, bestStatus = ctx.pos, cs
			bestSpans = append([]span(nil), ctx.spans...)
		}
	}

	if !haveBest {
		ctx.pos = startPos
		ctx.truncateSpans(startDepth)
		return Err | fold.Clear(AcceptFirst|Ok)
	}

	ctx.pos = bestPos
	ctx.spans = append(ctx.spans[:startDepth], bestSpans[startDepth:]...)
	return bestStatus
}

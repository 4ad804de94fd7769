package bnf

// Saturated is the sentinel maximum passed to Cycle/Repeat to request
// the saturating default upper bound in place of a finite one (spec.md
// §4.4, "zero-or-more"/"one-or-more" convenience constructors).
const Saturated = 0

// defaultCycleMax is the saturating upper bound actually applied when a
// Repetition is built with Saturated, grounded on
// original_source/bnflite.h's `_Cycle` default of `INT_MAX` — reaching
// it sets Overflow rather than failing outright, since in practice it
// signals a runaway zero-width match rather than a deliberately large
// but finite repetition count.
const defaultCycleMax = 1 << 20

// Repetition is the bounded repetition combinator of spec.md §4.4,
// grounded on original_source/bnflite.h's `_Cycle::_parse`. It repeats
// its body until the body fails, the cursor stops advancing (a
// zero-width match, which would otherwise loop forever), or the upper
// bound is reached. Success requires at least min repetitions.
type Repetition struct {
	element
	body     Matcher
	min, max int
}

// Cycle builds a Repetition over e requiring at least min matches and
// at most max (Saturated meaning "use the saturating default").
func Cycle(min, max int, e Matcher) *Repetition {
	c := &Repetition{element: newElement("", true), body: e, min: min, max: max}
	c.element.addChild(&c.element, e)
	return c
}

// ZeroOrMore matches e zero or more times.
func ZeroOrMore(e Matcher) *Repetition { return Cycle(0, Saturated, e) }

// ZeroOrOne matches e zero or one time.
func ZeroOrOne(e Matcher) *Repetition { return Cycle(0, 1, e) }

// OneOrMore matches e one or more times.
func OneOrMore(e Matcher) *Repetition { return Cycle(1, Saturated, e) }

// Repeat matches e at least atLeast times and at most total times.
func Repeat(atLeast, total int, e Matcher) *Repetition { return Cycle(atLeast, total, e) }

func (c *Repetition) match(ctx *ParseContext) Status {
	saturating := c.max <= 0
	max := c.max
	if saturating {
		max = defaultCycleMax
	}

	startPos := ctx.pos
	startDepth := len(ctx.spans)

	var fold Status
	count := 0
	for count < max {
		beforePos := ctx.pos
		beforeDepth := len(ctx.spans)

		cs := c.body.match(ctx)
		if cs.IsFatal() {
			return cs
		}
		if !cs.Ok() {
			ctx.pos = beforePos
			ctx.truncateSpans(beforeDepth)
			break
		}
		fold |= cs
		count++
		if ctx.pos == beforePos {
			// Zero-width match: stop, or every later iteration would
			// repeat forever without consuming input.
			break
		}
	}

	if count < c.min {
		ctx.pos = startPos
		ctx.truncateSpans(startDepth)
		return Err | fold.Clear(Ok)
	}

	result := Ok | fold.Clear(0)
	if saturating && count >= max {
		result |= Overflow
	}
	if count == 0 {
		result |= Null
	}
	return result
}

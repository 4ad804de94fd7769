package bnf

// Sequence is the ordered conjunction combinator of spec.md §4.2,
// grounded on original_source/bnflite.h's `_And::_parse`. Each child is
// matched in turn against the successive cursor positions; their
// statuses fold together per the rules in spec.md §4.2 rather than the
// literal bit-clearing trick of the C++ original, since spec.md is this
// rewrite's authoritative behavioral contract.
type Sequence struct {
	element
	parts []Matcher
}

// Seq builds a Sequence from its children. Every child must be a
// Matcher; unlike original_source's `operator+(const char*, const
// _Tie&)`, there is no implicit conversion of a string into a Token.
func Seq(parts ...Matcher) *Sequence {
	s := &Sequence{element: newElement("", true)}
	for _, p := range parts {
		s.element.addChild(&s.element, p)
		s.parts = append(s.parts, p)
	}
	return s
}

// Then appends another matcher, returning s for chaining — the Go
// analogue of `_And::operator+`.
func (s *Sequence) Then(m Matcher) *Sequence {
	s.element.addChild(&s.element, m)
	s.parts = append(s.parts, m)
	return s
}

func (s *Sequence) match(ctx *ParseContext) (result Status) {
	startPos := ctx.pos
	startDepth := len(ctx.spans)
	defer func() { ctx.trace("sequence", s.name, startPos, result) }()

	var fold Status
	tryActive := false
	pending := false
	var savePos, saveDepth int

	for _, child := range s.parts {
		cs := child.match(ctx)
		fold |= cs
		if cs.Has(Try) {
			tryActive = true
		}

		if !cs.Ok() {
			accumulated := fold
			if tryActive && accumulated&(EOF|Overflow) == 0 {
				// The catch hook may upgrade the failure to a recoverable
				// success: the sequence then succeeds at the cursor it has
				// reached so far, carrying the hook's flags (e.g. Catch).
				// Otherwise the hook's flags ride along with the failure.
				caught := ctx.catch()
				if caught.Ok() {
					return Ok | (accumulated | caught).Clear(Try|Skip|Ok)
				}
				accumulated |= caught
			}
			ctx.pos = startPos
			ctx.truncateSpans(startDepth)
			cleared := accumulated.Clear(Try | Skip | Ok)
			if accumulated&(EOF|Overflow) != 0 {
				return Fatal | cleared
			}
			return Err | cleared
		}

		if pending {
			ctx.pos = savePos
			ctx.truncateSpans(saveDepth)
			pending = false
		}
		if cs.Has(Skip) {
			pending = true
			savePos = ctx.pos
			saveDepth = len(ctx.spans)
		}
		if cs.Has(Return) {
			return Ok | Return | fold.Clear(Try|Skip|Ok)
		}
	}
	return Ok | fold.Clear(Try|Skip)
}

package bnf

// Lexeme is the whitespace-tight named production of spec.md §4.6,
// grounded on original_source/bnflite.h's `class Lexem`. Entering a
// Lexeme decrements the context's scope-depth counter for the duration
// of its body, switching descendant Tokens to tight mode (no
// inter-child skipping); the counter is restored on exit regardless of
// outcome. On a non-empty successful match it pushes exactly one
// (start, end) span for itself and discards whatever finer-grained
// spans its body pushed — a Lexeme's children are never individually
// visible to the engine's result folding, only the Lexeme as a whole,
// which contributes one stub entry (matched text, no Data) to whatever
// Rule frame is open around it.
type Lexeme struct {
	element
	body Matcher
}

// NewLexeme builds a Lexeme named name wrapping body. A nil body is
// permitted at construction time (matching original_source's default
// `Lexem()` constructor) but fails to match with BadLexeme.
func NewLexeme(name string, body Matcher) *Lexeme {
	l := &Lexeme{element: newElement(name, false)}
	if body != nil {
		l.element.addChild(&l.element, body)
		l.body = body
	}
	return l
}

func (l *Lexeme) match(ctx *ParseContext) Status {
	if l.body == nil {
		return Fatal | BadLexeme
	}
	if _, isAction := l.body.(*Action); isAction {
		return l.body.match(ctx)
	}
	if ctx.level == 0 {
		return l.body.match(ctx)
	}

	startDepth := len(ctx.spans)
	org := ctx.zeroParse(ctx.pos)
	ctx.pos = org
	ctx.level--
	stat := l.body.match(ctx)
	ctx.level++

	if stat.Ok() && ctx.pos > org {
		ctx.truncateSpans(startDepth)
		ctx.pushSpan(span{org, ctx.pos})
		ctx.results.append(stubResult{Text: ctx.text[org:ctx.pos], Name: l.name})
		return stat
	}
	ctx.truncateSpans(startDepth)
	if !stat.Ok() {
		ctx.pos = org
	}
	return stat
}

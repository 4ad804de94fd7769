package bnf

// Analyze runs root against text using a fresh ParseContext and reports
// the resulting Status together with the offset of the first
// unconsumed byte after the skip hook has passed over any trailing
// ignorable bytes, the Go analogue of original_source/bnflite.h's
// `Analyze(_Tie&, const char*, const char**)` plus `Get_tail`. If
// anything other than such ignorable bytes remains after root's match,
// the returned Status carries Rest.
func Analyze(root Matcher, text string) (Status, int) {
	return AnalyzeWithContext(root, text, newParseContext(text))
}

// AnalyzeWithContext runs root against text using a caller-supplied
// ParseContext, letting a host install SkipFunc/CatchFunc/Log before
// the parse begins — the Go analogue of original_source's
// `Analyze(_Tie&, const char*, P&)` overload taking an externally
// constructed parser.
func AnalyzeWithContext(root Matcher, text string, ctx *ParseContext) (Status, int) {
	ctx.text = text
	ctx.pos = 0
	ctx.spans = ctx.spans[:0]

	stat := root.match(ctx)
	stop := ctx.zeroParse(ctx.pos)
	if stop < len(ctx.text) {
		stat |= Rest
	}
	return stat, stop
}

// AnalyzeWithResult runs root against text and additionally returns the
// single Result[T].Data folded by the root's own Bind callback, if any
// — the Go analogue of original_source's `Analyze(_Tie&, const char*,
// const char**, U&)` overload that threads a typed `_Parser<U>`
// through the whole tree. If root (or any of its descendants) was
// never bound with Bind[T], the zero value of T is returned.
func AnalyzeWithResult[T any](root Matcher, text string) (Status, int, T) {
	var zero T
	ctx := newParseContext(text)
	ctx.results.push()
	stat, stop := AnalyzeWithContext(root, text, ctx)
	frame := ctx.results.pop()
	if len(frame) == 0 {
		return stat, stop, zero
	}
	if r, ok := frame[len(frame)-1].(Result[T]); ok {
		return stat, stop, r.Data
	}
	return stat, stop, zero
}

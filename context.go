package bnf

import (
	"github.com/rs/zerolog"
)

// Result is the Go-generic analogue of original_source's
// `Interface<Data>` template: the record a Rule's callback receives one
// of, per matched child, and the record it must return to be folded into
// the parent frame (spec.md §6, "Result interface").
type Result[T any] struct {
	Data T
	Text string
	Name string
}

// span is a (start, end) input-position pair, pushed on every Token
// match in loose scope and on every successful, non-empty Lexeme or
// Rule match (spec.md §4.7).
type span struct {
	start, end int
}

// ParseContext is the mutable per-invocation state described in spec.md
// §3/§4.7: the input cursor, the span-boundary stack, an optional
// result-accumulator stack, and the lexeme/rule scope depth. It lives
// for exactly one Analyze call (spec.md §3, "Lifecycles").
type ParseContext struct {
	text string
	pos  int // current cursor, byte offset into text

	spans []span

	// level is the whitespace-tier scope depth from spec.md §4.6: Rules
	// require level >= 1 to run in loose mode; a Lexeme decrements it
	// for its body and restores it on exit. It starts at 1, exactly as
	// original_source's `_Base::level` does.
	level int

	// SkipFunc advances past ignorable bytes before a loose-scope match
	// begins (spec.md §4.7, "Skip hook" / original_source's zero_parse).
	// The default skips ASCII space, tab, newline, carriage return.
	SkipFunc func(text string, pos int) int

	// CatchFunc is invoked from inside a Sequence when Try is live and a
	// child fails; it may upgrade the failure to a recoverable success
	// by returning a Status with Ok|Catch set (spec.md §4.2, §4.7).
	CatchFunc func(ctx *ParseContext) Status

	// Log receives a structured trace-level record for each Token,
	// Sequence and Alternation match attempt. NewParseContext sets it to
	// zerolog.Nop(), so tracing costs nothing unless a caller opts in.
	Log zerolog.Logger

	results resultStack
}

// stubResult is what a bare Token, a Lexeme, or an unbound Rule
// contributes to its parent's result frame: matched text and a name, but
// no folded Data. Bind's generated closure widens a stubResult to
// whatever Result[T] the enclosing bound Rule expects (Data left at its
// zero value), mirroring original_source's `Interface<Data>` — every
// entry on the typed result stack carries (text, length, name)
// regardless of whether Data was ever produced for it.
type stubResult struct {
	Text string
	Name string
}

// resultStack is the generic-erased backing store for per-frame result
// accumulation; AnalyzeWithResult type-asserts the root frame's last
// entry back to Result[T]. Storing `any` here (rather than
// parameterizing ParseContext itself) is what lets one ParseContext
// serve a grammar whose Tokens, Lexemes and unbound Rules add untyped
// stubResult entries alongside a single typed Rule tree, matching original_source's split between `_Base` (untyped) and
// `_Parser<U>` (typed).
type resultStack struct {
	frames [][]any
}

// push opens a new, empty accumulation frame for a Rule body to fill.
func (r *resultStack) push() { r.frames = append(r.frames, nil) }

// pop closes and returns the top frame.
func (r *resultStack) pop() []any {
	n := len(r.frames) - 1
	top := r.frames[n]
	r.frames = r.frames[:n]
	return top
}

// append adds v to the current top frame, a no-op outside any frame
// (i.e. above the grammar's root, where there is nothing to fold into).
func (r *resultStack) append(v any) {
	if len(r.frames) == 0 {
		return
	}
	n := len(r.frames) - 1
	r.frames[n] = append(r.frames[n], v)
}

func newParseContext(text string) *ParseContext {
	return &ParseContext{
		text:     text,
		level:    1,
		SkipFunc: defaultSkip,
		Log:      zerolog.Nop(),
	}
}

// NewParseContext builds a ParseContext for text with the default
// whitespace-only SkipFunc, exported so a host can customize SkipFunc,
// CatchFunc, or Log before handing the context to AnalyzeWithContext —
// the Go analogue of constructing and configuring an
// original_source `_Parser<U>` instance before calling Analyze with it
// (see original_source/ini.cpp's `ini_parser`).
func NewParseContext(text string) *ParseContext {
	return newParseContext(text)
}

func defaultSkip(text string, pos int) int {
	for pos < len(text) {
		switch text[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
		default:
			return pos
		}
	}
	return pos
}

// byteAt returns the byte at pos, or 0 (the null terminator spec.md §2
// models input with) if pos is at or past the end of text.
func (ctx *ParseContext) byteAt(pos int) byte {
	if pos < 0 || pos >= len(ctx.text) {
		return 0
	}
	return ctx.text[pos]
}

// zeroParse runs the skip hook from pos, returning the advanced cursor.
func (ctx *ParseContext) zeroParse(pos int) int {
	return ctx.SkipFunc(ctx.text, pos)
}

// pushSpan records a matched span and returns its index.
func (ctx *ParseContext) pushSpan(s span) int {
	ctx.spans = append(ctx.spans, s)
	return len(ctx.spans) - 1
}

// truncateSpans discards spans back to a saved depth, the rewind step
// every composite performs on backtrack/failure (spec.md §8 invariant 1).
func (ctx *ParseContext) truncateSpans(depth int) {
	ctx.spans = ctx.spans[:depth]
}

// catch invokes CatchFunc if set, otherwise reports no recovery.
func (ctx *ParseContext) catch() Status {
	if ctx.CatchFunc == nil {
		return None
	}
	return ctx.CatchFunc(ctx)
}

// trace emits one structured record per match attempt when ctx.Log is
// enabled, replacing the teacher's own habit (dtromb-parser/lexl's
// sequence.go, alternation.go, star.go, plus.go, quantified.go,
// charclass.go) of an unconditional fmt.Println on node entry.
func (ctx *ParseContext) trace(kind, name string, pos int, result Status) {
	ctx.Log.Trace().
		Str("kind", kind).
		Str("name", name).
		Int("pos", pos).
		Stringer("status", result).
		Msg("match")
}

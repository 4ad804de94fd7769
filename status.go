package bnf

// Status is the packed bitmask every matcher returns, carrying success,
// override, and error flags up through the grammar graph. It is the wire
// format of the engine: sequences, alternations and cycles fold child
// Status values together rather than returning distinct error types.
type Status uint32

const (
	// None/Err carries no flags at all: a plain, non-fatal failure.
	None Status = 0
	Err  Status = 0
	// Ok is set on every successful match.
	Ok Status = 0x0001
	// Return forces the enclosing Sequence to short-circuit and the
	// enclosing Alternation to commit immediately to this branch.
	Return Status = 0x0008
	// AcceptFirst switches the enclosing Alternation from accept-best
	// to accept-first: the branch that set it wins outright.
	AcceptFirst Status = 0x0010
	// Skip makes the Sequence child that follows it a positive
	// lookahead: it must match, but the input it matched is not consumed.
	Skip Status = 0x0020
	// Catch is set by a host Catch hook that upgraded a failure to a
	// recoverable success.
	Catch Status = 0x0040
	// Try enables the enclosing Sequence's catch-on-failure path.
	Try Status = 0x0080
	// Rest is set when the parse accepted a prefix but input remains.
	Rest Status = 0x0100
	// Null marks a zero-width, always-succeeding match.
	Null Status = 0x0200
	// Overflow is set when a Cycle's upper bound was reached through a
	// saturating default limit rather than a user-supplied max.
	Overflow Status = 0x0400
	// EOF is set when the cursor reached the input's terminator.
	EOF Status = 0x0800
	// BadRule/BadLexeme mark an uninitialized named production; both
	// are fatal and not recoverable via Try.
	BadRule   Status = 0x1000
	BadLexeme Status = 0x2000
	// Syntax marks a local, non-fatal syntactic failure.
	Syntax Status = 0x4000
	// Fatal is the top bit; set alongside BadRule, BadLexeme, Overflow
	// or EOF-during-failed-match to mark the parse as unrecoverable.
	Fatal Status = 1 << 31
)

// Ok reports whether the status represents success with no fatal bit set.
func (s Status) Ok() bool {
	return s&Ok != 0 && s&Fatal == 0
}

// IsFatal reports whether the parse could not continue.
func (s Status) IsFatal() bool {
	return s&Fatal != 0
}

// HasRest reports whether the grammar accepted a prefix but not all input.
func (s Status) HasRest() bool {
	return s&Rest != 0
}

// Has reports whether every bit in flags is set.
func (s Status) Has(flags Status) bool {
	return s&flags == flags
}

// Clear returns s with flags removed.
func (s Status) Clear(flags Status) Status {
	return s &^ flags
}

var flagNames = []struct {
	bit  Status
	name string
}{
	{Ok, "ok"},
	{Return, "return"},
	{AcceptFirst, "accept-first"},
	{Skip, "skip"},
	{Catch, "catch"},
	{Try, "try"},
	{Rest, "rest"},
	{Null, "null"},
	{Overflow, "overflow"},
	{EOF, "eof"},
	{BadRule, "bad-rule"},
	{BadLexeme, "bad-lexeme"},
	{Syntax, "syntax"},
	{Fatal, "fatal"},
}

// String renders the set flags, most useful in logs and the bnfdump tool.
func (s Status) String() string {
	if s == None {
		return "none"
	}
	out := ""
	for _, f := range flagNames {
		if s&f.bit == f.bit && f.bit != 0 {
			if out != "" {
				out += "|"
			}
			out += f.name
		}
	}
	if out == "" {
		return "none"
	}
	return out
}

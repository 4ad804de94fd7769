package bnf

import "fmt"

// Error wraps a failed or partial Status with the offset into the
// input where parsing stopped, the host-facing counterpart to a bare
// Status — original_source's teacher package never modeled recoverable
// errors as values (its `Analyze` free functions just return a packed
// int), so this type's shape is adopted from
// alecthomas-participle/error.go's `Error` interface (`Message`/
// `Position` accessors over an `error`) rather than invented fresh.
type Error interface {
	error
	// Message is the error text without positional prefix.
	Message() string
	// Offset is the byte offset into the analyzed text where the
	// engine stopped making progress.
	Offset() int
	// Status is the raw Status the engine returned.
	Status() Status
}

type parseError struct {
	status Status
	offset int
	msg    string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("bnf: %s at offset %d (%s)", e.msg, e.offset, e.status)
}

func (e *parseError) Message() string { return e.msg }
func (e *parseError) Offset() int     { return e.offset }
func (e *parseError) Status() Status  { return e.status }

// newError classifies a failing Status into the taxonomy of spec.md
// §7 (structural / resource / syntactic / residual) and produces a
// host-facing Error.
func newError(status Status, offset int) Error {
	msg := "no match"
	switch {
	case status.Has(BadRule):
		msg = "grammar references an uninitialized rule"
	case status.Has(BadLexeme):
		msg = "grammar references an uninitialized lexeme"
	case status.Has(EOF) && status.IsFatal():
		msg = "unexpected end of input"
	case status.Has(Overflow):
		msg = "repetition exceeded its bound"
	case status.HasRest():
		msg = "trailing input was not consumed"
	case status.IsFatal():
		msg = "fatal parse error"
	}
	return &parseError{status: status, offset: offset, msg: msg}
}

// NewError exports newError for hosts outside this package building
// their own Error values from a returned Status, e.g. examples/ini.
func NewError(status Status, offset int) Error {
	return newError(status, offset)
}

package bnf

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

func TestDumpGoldenRendering(t *testing.T) {
	newNumber := func() *Lexeme {
		digit := NewTokenRange('0', '9')
		digit.SetName("digit")
		return NewLexeme("number", OneOrMore(digit))
	}
	grammar := NewRule("expr", Seq(newNumber(), NewToken('+'), newNumber()))
	grammar.SetName("expr")

	want := `Rule expr
  Sequence
    Lexeme number
      Repetition
        Token digit
    Token +
    Lexeme number
      Repetition
        Token digit
`
	got := Dump(grammar)
	if got != want {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(got),
			FromFile: "want",
			ToFile:   "got",
			Context:  3,
		}
		text, _ := difflib.GetUnifiedDiffString(diff)
		t.Fatalf("Dump output drifted:\n%s", text)
	}
}

func TestDumpResultRendersReprOutput(t *testing.T) {
	r := Result[int]{Data: 7, Text: "7", Name: "digit"}
	out := DumpResult(r)
	require.True(t, strings.Contains(out, "7"))
}

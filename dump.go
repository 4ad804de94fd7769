package bnf

import (
	"strings"

	"github.com/alecthomas/repr"
)

// Dump renders a grammar graph as an indented tree of node kinds and
// names, the structured replacement for dtromb-parser/lexl's own debug
// habit of `fmt.Println`-ing a node kind on entry (see context.go's
// `trace`) — this one runs over the static graph rather than a live
// match, for grammar authors who want to see what they built.
func Dump(root Matcher) string {
	var b strings.Builder
	dumpNode(&b, root, 0, map[Matcher]bool{})
	return b.String()
}

func dumpNode(b *strings.Builder, m Matcher, depth int, seen map[Matcher]bool) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(kindOf(m))
	if name := m.Name(); name != "" {
		b.WriteString(" ")
		b.WriteString(name)
	}
	b.WriteString("\n")
	if seen[m] {
		b.WriteString(strings.Repeat("  ", depth+1))
		b.WriteString("...\n")
		return
	}
	seen[m] = true
	for _, c := range m.children() {
		dumpNode(b, c, depth+1, seen)
	}
}

func kindOf(m Matcher) string {
	switch m.(type) {
	case *Token:
		return "Token"
	case *Sequence:
		return "Sequence"
	case *Alternation:
		return "Alternation"
	case *Repetition:
		return "Repetition"
	case *ctrl:
		return "Control"
	case *Action:
		return "Action"
	case *Lexeme:
		return "Lexeme"
	case *Rule:
		return "Rule"
	default:
		return "Matcher"
	}
}

// DumpResult pretty-prints a folded Result[T] value using
// alecthomas/repr, for hosts inspecting a callback's output in tests or
// at a REPL — the same library participle's own `cmd/railroad` and
// `cmd/participle` tools use for exactly this purpose.
func DumpResult[T any](r Result[T]) string {
	return repr.String(r, repr.Indent("  "))
}

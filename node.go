package bnf

import "golang.org/x/exp/slices"

// Matcher is the single dispatch interface every grammar node implements,
// the Go analogue of original_source's `_Tie::_parse`. Composition
// operators (Seq, Alt, Cycle, named productions) all produce Matchers.
type Matcher interface {
	// Name returns the node's display name, used in Dump output and in
	// error messages. A Token is named after the bytes it was built
	// from; Sequence, Alternation and Repetition nodes have an empty
	// name until SetName is called.
	Name() string
	// SetName overrides the display name (mirrors bnflite's LEXEM/RULE
	// debug-name macros, which stringize the C++ variable name).
	SetName(name string)

	// match runs this node against the context's current cursor and
	// returns the resulting Status. It is unexported: hosts compose
	// grammars with the exported constructors, never by implementing
	// Matcher themselves.
	match(ctx *ParseContext) Status

	// children returns the node's direct outgoing references, used by
	// Dump and by release() to walk the graph.
	children() []Matcher
}

// element is the embeddable base every composite node carries: a display
// name and the ownership bookkeeping described in spec.md §3. It mirrors
// original_source's `_Tie`: `uses` is the C++ `use` vector (outgoing,
// ownership-by-refcount edges) and `usedBy` is `usage` (the back-reference
// list). Unlike the C++ original, Go's GC keeps the backing memory alive
// regardless, so `usedBy` exists purely to let release() recognize when a
// synthesized node has become unreachable from any named production and
// should have its own children's back-references dropped in turn —
// needed because Bind-time or recursive-rule cycles would otherwise never
// let a synthesized node "go out of scope" in the sense spec.md §3
// describes.
type element struct {
	name   string
	inner  bool // synthesized by a combinator operator, not user-declared
	uses   []Matcher
	usedBy []*element
}

func newElement(name string, inner bool) element {
	return element{name: name, inner: inner}
}

func (e *element) Name() string { return e.name }

func (e *element) SetName(name string) { e.name = name }

func (e *element) children() []Matcher { return e.uses }

// addChild records m as a child of the owning node, mirroring _Tie::_clue.
func (e *element) addChild(self *element, m Matcher) {
	e.uses = append(e.uses, m)
	if c, ok := matcherElement(m); ok {
		c.usedBy = append(c.usedBy, self)
	}
}

// release drops self's references to its children and, for any
// synthesized child whose back-reference list is now empty, recurses —
// the Go equivalent of `_Tie::~_Tie` cascading through `inner` nodes with
// no remaining `usage`.
func (e *element) release(self *element) {
	for _, m := range e.uses {
		c, ok := matcherElement(m)
		if !ok {
			continue
		}
		if i := slices.IndexFunc(c.usedBy, func(p *element) bool { return p == self }); i >= 0 {
			c.usedBy = slices.Delete(c.usedBy, i, i+1)
		}
		if c.inner && len(c.usedBy) == 0 {
			c.release(c)
		}
	}
	e.uses = nil
}

// matcherElement extracts the embedded *element from a Matcher, if any,
// so shared bookkeeping (addChild/release) can operate across node kinds
// without a type switch at every call site.
func matcherElement(m Matcher) (*element, bool) {
	type elementer interface {
		elementPtr() *element
	}
	if em, ok := m.(elementer); ok {
		return em.elementPtr(), true
	}
	return nil, false
}

func (e *element) elementPtr() *element { return e }

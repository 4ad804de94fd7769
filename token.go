package bnf

import "github.com/bits-and-blooms/bitset"

// Token is the character-class matcher of spec.md §4.1, grounded on
// original_source/bnflite.h's `class Token` (`std::bitset<maxCharNum>
// match`). The 256-entry membership mask is a `*bitset.BitSet` sized to
// 256, the direct Go analogue of the C++ fixed bitset (see SPEC_FULL.md
// §3).
type Token struct {
	element
	mask *bitset.BitSet
}

func newToken(name string) *Token {
	return &Token{element: newElement(name, true), mask: bitset.New(256)}
}

// NewToken builds a Token accepting exactly one byte.
func NewToken(c byte) *Token {
	t := newToken(string(c))
	t.Add(c)
	return t
}

// NewTokenRange builds a Token accepting every byte in [lo, hi].
func NewTokenRange(lo, hi byte) *Token {
	t := newToken(string(lo) + "-" + string(hi))
	for i := int(lo); i <= int(hi); i++ {
		t.mask.Set(uint(i))
	}
	return t
}

// NewTokenLiteral builds a Token accepting the union of s's bytes.
func NewTokenLiteral(s string) *Token {
	t := newToken(s)
	t.Add([]byte(s)...)
	return t
}

// Add adds each of cs to the accepted set, returning t for chaining.
func (t *Token) Add(cs ...byte) *Token {
	for _, c := range cs {
		t.mask.Set(uint(c))
	}
	return t
}

// AddRange adds every byte in [lo, hi] to an existing Token's accepted
// set, mirroring original_source's two-integer `Add(fst, lst)` range
// overload (distinct from the string-union `Add(const char*)` overload
// Add above already covers).
func (t *Token) AddRange(lo, hi byte) *Token {
	for i := int(lo); i <= int(hi); i++ {
		t.mask.Set(uint(i))
	}
	return t
}

// AddCaseInsensitive adds c along with its opposite-case counterpart
// (when c is an ASCII letter), mirroring original_source's `Add(fst,
// 1)` case-pair overload.
func (t *Token) AddCaseInsensitive(c byte) *Token {
	switch {
	case c >= 'A' && c <= 'Z':
		t.mask.Set(uint(c - 'A' + 'a'))
	case c >= 'a' && c <= 'z':
		t.mask.Set(uint(c - 'a' + 'A'))
	}
	t.mask.Set(uint(c))
	return t
}

// Remove removes each of cs from the accepted set.
func (t *Token) Remove(cs ...byte) *Token {
	for _, c := range cs {
		t.mask.Clear(uint(c))
	}
	return t
}

// LowestFrom reports the lowest accepted byte >= k, if any.
func (t *Token) LowestFrom(k byte) (byte, bool) {
	i, ok := t.mask.NextSet(uint(k))
	if !ok || i > 255 {
		return 0, false
	}
	return byte(i), true
}

func (t *Token) matchByte(b byte) bool { return t.mask.Test(uint(b)) }

func (t *Token) match(ctx *ParseContext) (result Status) {
	start := ctx.pos
	defer func() { ctx.trace("token", t.name, start, result) }()
	cc := ctx.pos
	if ctx.level != 0 {
		cc = ctx.zeroParse(cc)
	}
	b := ctx.byteAt(cc)
	if !t.matchByte(b) {
		return Err
	}
	if ctx.level != 0 {
		ctx.pushSpan(span{cc, cc + 1})
		ctx.results.append(stubResult{Text: ctx.text[cc : cc+1], Name: t.name})
	}
	ctx.pos = cc + 1
	if ctx.pos >= len(ctx.text) {
		return Ok | EOF
	}
	return Ok
}

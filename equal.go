package textview

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msaf1980/go-stringutils"
	"github.com/zentures/cityhash"
)

// Comparison selects how the text of views is compared.
type Comparison int

const (
	// Ordinal compares byte by byte.
	Ordinal Comparison = iota
	// IgnoreCase compares under simple Unicode case folding.
	IgnoreCase
)

func (c Comparison) String() string {
	switch c {
	case Ordinal:
		return "Ordinal"
	case IgnoreCase:
		return "IgnoreCase"
	}
	return "Comparison(?)"
}

// NullHash is the hash value of a view without value. No present view hashes
// to NullHash.
const NullHash uint64 = 0

// Equal reports whether v and o have ordinally equal text. Two views without
// value are equal; a view without value never equals a present view, not even
// an empty one.
func (v View) Equal(o View) bool {
	return v.EqualsView(o, Ordinal)
}

// EqualsView reports whether v and o have equal text under comparison c.
func (v View) EqualsView(o View, c Comparison) bool {
	if v.valid != o.valid {
		return false
	}
	if !v.valid {
		return true
	}
	return equalText(v.text(), o.text(), c)
}

// EqualsString reports whether the text of v equals s under comparison c.
// A view without value never equals a string.
func (v View) EqualsString(s string, c Comparison) bool {
	if !v.valid {
		return false
	}
	return equalText(v.text(), s, c)
}

// Hash returns an ordinal hash of the text of v, consistent with Equal:
// views with equal text hash equal, regardless of their buffers and offsets.
func (v View) Hash() uint64 {
	if !v.valid {
		return NullHash
	}
	s := v.text()
	return hashBytes(stringutils.UnsafeStringBytes(&s))
}

// hashFold hashes the canonical case fold of the text of v, consistent with
// EqualsView(·, IgnoreCase).
func (v View) hashFold() uint64 {
	if !v.valid {
		return NullHash
	}
	s := v.text()
	folded := make([]byte, 0, len(s))
	for _, r := range s {
		folded = utf8.AppendRune(folded, canonicalFold(r))
	}
	return hashBytes(folded)
}

func equalText(a, b string, c Comparison) bool {
	if c == IgnoreCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// hashBytes mixes the content hash with the length. The result is never
// NullHash.
func hashBytes(b []byte) uint64 {
	h := cityhash.CityHash64(b, uint32(len(b)))
	h ^= uint64(len(b)) * 0x9e3779b97f4a7c15
	if h == NullHash {
		h = 1
	}
	return h
}

// canonicalFold returns the smallest rune of the simple case-folding orbit
// of r. Runes that are equal under strings.EqualFold share a canonical fold.
func canonicalFold(r rune) rune {
	lo := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < lo {
			lo = f
		}
	}
	return lo
}

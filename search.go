package textview

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// All search operations report positions relative to the start of the view
// and return -1 if nothing is found. Searching a view without value finds
// nothing. Windows given as (start, count) must lie within [0, Len()].

// IndexRune returns the position of the first occurrence of r in v.
func (v View) IndexRune(r rune) int {
	i, _ := v.IndexRuneIn(r, 0, v.length)
	return i
}

// IndexRuneFrom returns the position of the first occurrence of r in v at or
// after start.
func (v View) IndexRuneFrom(r rune, start int) (int, error) {
	return v.IndexRuneIn(r, start, v.rest(start))
}

// IndexRuneIn returns the position of the first occurrence of r in the window
// [start, start+count) of v.
func (v View) IndexRuneIn(r rune, start, count int) (int, error) {
	w, ok, err := v.window(start, count)
	if !ok {
		return -1, err
	}
	return offsetBy(strings.IndexRune(w, r), start), nil
}

// IndexAny returns the position of the first occurrence of any rune of
// chars in v.
func (v View) IndexAny(chars []rune) int {
	i, _ := v.IndexAnyIn(chars, 0, v.length)
	return i
}

// IndexAnyFrom returns the position of the first occurrence of any rune of
// chars in v at or after start.
func (v View) IndexAnyFrom(chars []rune, start int) (int, error) {
	return v.IndexAnyIn(chars, start, v.rest(start))
}

// IndexAnyIn returns the position of the first occurrence of any rune of
// chars in the window [start, start+count) of v.
func (v View) IndexAnyIn(chars []rune, start, count int) (int, error) {
	w, ok, err := v.window(start, count)
	if !ok {
		return -1, err
	}
	i, _ := indexFunc(w, func(r rune) bool { return slices.Contains(chars, r) })
	return offsetBy(i, start), nil
}

// LastIndexRune returns the position of the last occurrence of r in v.
func (v View) LastIndexRune(r rune) int {
	if !v.valid {
		return -1
	}
	return strings.LastIndexFunc(v.text(), func(c rune) bool { return c == r })
}

// Index returns the position of the first ordinal occurrence of s in v.
func (v View) Index(s string) int {
	i, _ := v.IndexIn(s, 0, v.length, Ordinal)
	return i
}

// IndexFrom returns the position of the first occurrence of s in v at or
// after start, comparing according to c.
func (v View) IndexFrom(s string, start int, c Comparison) (int, error) {
	return v.IndexIn(s, start, v.rest(start), c)
}

// IndexIn returns the position of the first occurrence of s which lies
// completely inside the window [start, start+count) of v, comparing
// according to c.
func (v View) IndexIn(s string, start, count int, c Comparison) (int, error) {
	w, ok, err := v.window(start, count)
	if !ok {
		return -1, err
	}
	var i int
	if c == IgnoreCase {
		i = indexFold(w, s)
	} else {
		i = strings.Index(w, s)
	}
	return offsetBy(i, start), nil
}

// IndexWhiteSpace returns the position of the first whitespace rune in v at
// or after start.
func (v View) IndexWhiteSpace(start int) (int, error) {
	w, ok, err := v.window(start, v.rest(start))
	if !ok {
		return -1, err
	}
	i, _ := indexFunc(w, unicode.IsSpace)
	return offsetBy(i, start), nil
}

// Contains reports whether s occurs in v, comparing according to c.
func (v View) Contains(s string, c Comparison) bool {
	i, _ := v.IndexIn(s, 0, v.length, c)
	return i >= 0
}

// HasPrefix reports whether v begins with s, comparing according to c.
// A view without value has no prefix.
func (v View) HasPrefix(s string, c Comparison) bool {
	if !v.valid {
		return false
	}
	if c == IgnoreCase {
		n, ok := runePrefixLen(v.text(), utf8.RuneCountInString(s))
		return ok && strings.EqualFold(v.text()[:n], s)
	}
	return strings.HasPrefix(v.text(), s)
}

// HasSuffix reports whether v ends with s, comparing according to c.
// A view without value has no suffix.
func (v View) HasSuffix(s string, c Comparison) bool {
	if !v.valid {
		return false
	}
	if c == IgnoreCase {
		n, ok := runeSuffixLen(v.text(), utf8.RuneCountInString(s))
		t := v.text()
		return ok && strings.EqualFold(t[len(t)-n:], s)
	}
	return strings.HasSuffix(v.text(), s)
}

// --- Internal search helpers -----------------------------------------------

// window validates [start, start+count) against v and returns the text inside
// the window. ok is false if the window is invalid or v has no value; err is
// set only for invalid windows.
func (v View) window(start, count int) (w string, ok bool, err error) {
	if start < 0 {
		return "", false, fmt.Errorf("start index %d: %w", start, ErrOutOfRange)
	}
	if count < 0 {
		return "", false, fmt.Errorf("count %d: %w", count, ErrOutOfRange)
	}
	if !v.valid {
		return "", false, nil
	}
	if start > v.length {
		return "", false, fmt.Errorf("start index %d for view of length %d: %w", start, v.length, ErrOutOfRange)
	}
	if count > v.length-start {
		return "", false, fmt.Errorf("count %d at %d for view of length %d: %w", count, start, v.length, ErrOutOfRange)
	}
	from := v.offset + start
	return v.buf[from : from+count], true, nil
}

// rest is the number of bytes from start to the end of v, clipped at 0.
func (v View) rest(start int) int {
	if start > v.length {
		return 0
	}
	return v.length - start
}

// indexFunc is strings.IndexFunc which additionally reports the encoded
// width of the matching rune.
func indexFunc(s string, f func(rune) bool) (int, int) {
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		if f(r) {
			return i, w
		}
		i += w
	}
	return -1, 0
}

// indexFold returns the position of the first occurrence of needle in hay
// under simple Unicode case folding. Simple folding maps runes one-to-one,
// so a match always spans as many runes as needle.
func indexFold(hay, needle string) int {
	n := utf8.RuneCountInString(needle)
	if n == 0 {
		return 0
	}
	for i := 0; i < len(hay); {
		j, ok := runePrefixLen(hay[i:], n)
		if !ok {
			break
		}
		if strings.EqualFold(hay[i:i+j], needle) {
			return i
		}
		_, w := utf8.DecodeRuneInString(hay[i:])
		i += w
	}
	return -1
}

// runePrefixLen returns the byte length of the first n runes of s.
func runePrefixLen(s string, n int) (int, bool) {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
	}
	return i, n == 0
}

// runeSuffixLen returns the byte length of the last n runes of s.
func runeSuffixLen(s string, n int) (int, bool) {
	end := len(s)
	for ; n > 0 && end > 0; n-- {
		_, w := utf8.DecodeLastRuneInString(s[:end])
		end -= w
	}
	return len(s) - end, n == 0
}

func offsetBy(i, start int) int {
	if i < 0 {
		return -1
	}
	return i + start
}

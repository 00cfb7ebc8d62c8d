package textview

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"
	"unicode"
)

// NoLimit lets a split emit an unbounded number of tokens.
const NoLimit = math.MaxInt

// EmptyPolicy decides whether zero-length tokens are part of a split's output.
type EmptyPolicy int

const (
	// KeepEmpty produces a token at every separator boundary, even if it is empty.
	KeepEmpty EmptyPolicy = iota
	// OmitEmpty drops zero-length tokens. Dropped tokens do not count against
	// the limit.
	OmitEmpty
)

func (p EmptyPolicy) String() string {
	if p == OmitEmpty {
		return "OmitEmpty"
	}
	return "KeepEmpty"
}

type sepKind uint8

const (
	sepWhiteSpace sepKind = iota // split at any whitespace rune
	sepRunes                     // split at any rune of a set
	sepStrings                   // split at any of a list of strings
)

// Separators is a set of token boundaries for splitting. The zero value
// separates at whitespace.
type Separators struct {
	kind  sepKind
	runes []rune
	strs  []string
}

// WhiteSpace separates tokens at any single whitespace rune.
func WhiteSpace() Separators {
	return Separators{kind: sepWhiteSpace}
}

// Runes separates tokens at any single rune out of rs. Without arguments,
// no separator ever matches.
func Runes(rs ...rune) Separators {
	return Separators{kind: sepRunes, runes: slices.Clone(rs)}
}

// Strings separates tokens at any occurrence of one of ss. Empty strings are
// ignored; without (non-empty) arguments no separator ever matches. If two
// separators occur at the same position, the one listed first wins.
func Strings(ss ...string) Separators {
	return Separators{kind: sepStrings, strs: slices.Clone(ss)}
}

// never reports whether the separator set is the explicit empty set.
func (seps Separators) never() bool {
	switch seps.kind {
	case sepRunes:
		return len(seps.runes) == 0
	case sepStrings:
		return len(seps.strs) == 0
	}
	return false
}

func (seps Separators) String() string {
	switch seps.kind {
	case sepRunes:
		return fmt.Sprintf("runes%q", seps.runes)
	case sepStrings:
		return fmt.Sprintf("strings%q", seps.strs)
	}
	return "whitespace"
}

// --- Splitter ---------------------------------------------------------------

// Splitter is an immutable description of splitting a view into tokens.
// Tokens are produced lazily by a SplitCursor; every token is a view sharing
// the buffer of the source view.
type Splitter struct {
	source View
	seps   Separators
	limit  int
	policy EmptyPolicy
}

// Split prepares to split v at seps. At most limit tokens will be produced,
// the last one absorbing the unsplit remainder; use NoLimit for an unbounded
// split. policy decides about zero-length tokens.
//
// Returns ErrInvalidState if v has no value and ErrInvalidArgument if limit
// is negative.
func (v View) Split(seps Separators, limit int, policy EmptyPolicy) (Splitter, error) {
	if !v.valid {
		tracer().Debugf("textview.Split: view has no value")
		return Splitter{}, ErrInvalidState
	}
	if limit < 0 {
		tracer().Debugf("textview.Split: negative limit %d", limit)
		return Splitter{}, fmt.Errorf("split limit %d: %w", limit, ErrInvalidArgument)
	}
	return Splitter{source: v, seps: seps, limit: limit, policy: policy}, nil
}

// SplitRune splits v at every occurrence of r, keeping empty tokens.
func (v View) SplitRune(r rune) (Splitter, error) {
	return v.Split(Runes(r), NoLimit, KeepEmpty)
}

// SplitString splits v at every occurrence of sep, keeping empty tokens.
func (v View) SplitString(sep string) (Splitter, error) {
	return v.Split(Strings(sep), NoLimit, KeepEmpty)
}

// Source returns the view being split.
func (sp Splitter) Source() View {
	return sp.source
}

// Cursor starts a new pass over the tokens of the split.
func (sp Splitter) Cursor() *SplitCursor {
	c := &SplitCursor{sp: sp}
	if sp.seps.kind == sepStrings && len(sp.seps.strs) > 0 {
		c.cache = make([]occurrence, len(sp.seps.strs))
	}
	return c
}

// All returns an iterator over the tokens of the split, using a fresh cursor
// for every iteration.
func (sp Splitter) All() iter.Seq[View] {
	return func(yield func(View) bool) {
		c := sp.Cursor()
		for {
			tok, ok := c.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Strings collects the text of all tokens.
func (sp Splitter) Strings() []string {
	var toks []string
	for tok := range sp.All() {
		toks = append(toks, tok.String())
	}
	return toks
}

// --- Cursor -----------------------------------------------------------------

// occurrence caches the next position of a string separator. known is false
// until a search has been performed; at is -1 if there is no further
// occurrence.
type occurrence struct {
	at    int
	known bool
}

// SplitCursor steps through the tokens of a Splitter. A cursor must not be
// used from more than one goroutine at a time.
type SplitCursor struct {
	sp    Splitter
	pos   int          // scan position, view-local; Len()+1 after the last token
	count int          // tokens emitted so far
	cache []occurrence // one entry per string separator
	done  bool
}

// Count returns the number of tokens emitted so far.
func (c *SplitCursor) Count() int {
	return c.count
}

// Reset rewinds the cursor to the start of the source view.
func (c *SplitCursor) Reset() {
	c.pos, c.count, c.done = 0, 0, false
	clear(c.cache)
}

// Next returns the next token. ok is false if the split is exhausted.
func (c *SplitCursor) Next() (tok View, ok bool) {
	if c.done || c.count >= c.sp.limit {
		return c.finish()
	}
	if c.sp.seps.never() || c.sp.limit == 1 {
		return c.sliceToEnd()
	}
	n := c.sp.source.length
	for {
		if c.pos > n {
			return c.finish()
		}
		next, width := c.indexOfNext()
		if next < 0 {
			return c.sliceToEnd()
		}
		if next == c.pos && c.sp.policy == OmitEmpty {
			c.pos = next + width
			continue
		}
		if c.sp.limit != NoLimit && c.count == c.sp.limit-1 {
			return c.sliceToEnd()
		}
		return c.sliceTo(next, width), true
	}
}

// indexOfNext finds the nearest separator boundary at or after the scan
// position. It returns the boundary position and the width of the matched
// separator, or -1 if no separator occurs in the remainder.
func (c *SplitCursor) indexOfNext() (int, int) {
	src := c.sp.source
	rest := src.text()[c.pos:]
	switch c.sp.seps.kind {
	case sepWhiteSpace:
		i, w := indexFunc(rest, unicode.IsSpace)
		return offsetBy(i, c.pos), w
	case sepRunes:
		runes := c.sp.seps.runes
		i, w := indexFunc(rest, func(r rune) bool { return slices.Contains(runes, r) })
		return offsetBy(i, c.pos), w
	}
	next, width := -1, 0
	for k, sep := range c.sp.seps.strs {
		if sep == "" {
			continue
		}
		occ := c.cache[k]
		if !occ.known || (occ.at >= 0 && occ.at < c.pos) {
			occ = occurrence{at: offsetBy(strings.Index(rest, sep), c.pos), known: true}
			c.cache[k] = occ
		}
		if occ.at >= 0 && (next < 0 || occ.at < next) {
			next, width = occ.at, len(sep)
		}
	}
	return next, width
}

// sliceTo emits the token [pos, next) and moves behind the separator.
func (c *SplitCursor) sliceTo(next, width int) View {
	tok := c.sp.source.span(c.pos, next)
	c.pos = next + width
	c.count++
	return tok
}

// sliceToEnd emits the remainder as the final token, unless the remainder
// has already been consumed or is empty and empty tokens are omitted.
func (c *SplitCursor) sliceToEnd() (View, bool) {
	n := c.sp.source.length
	if c.pos > n || (c.pos == n && c.sp.policy == OmitEmpty) {
		return c.finish()
	}
	tok := c.sliceTo(n, 1)
	c.done = true
	return tok, true
}

func (c *SplitCursor) finish() (View, bool) {
	c.done = true
	return View{}, false
}

package textview

import (
	"fmt"
	"unicode/utf8"
)

// CharCursor navigates a view by UTF-8 rune positions.
//
// The cursor is bound to one view. Movement is in rune steps, while the
// position is kept as a view-local byte offset.
type CharCursor struct {
	view    View
	byteOff int
	runes   int
}

// NewCharCursor creates a rune-aware cursor at the start of v.
func (v View) NewCharCursor() (*CharCursor, error) {
	if !v.valid {
		return nil, ErrInvalidState
	}
	return &CharCursor{view: v}, nil
}

// ByteOffset returns the current view-local cursor byte offset.
func (cc *CharCursor) ByteOffset() int {
	if cc == nil {
		return 0
	}
	return cc.byteOff
}

// RuneCount returns the number of runes between the start of the view and
// the cursor.
func (cc *CharCursor) RuneCount() int {
	if cc == nil {
		return 0
	}
	return cc.runes
}

// SeekByte moves the cursor to view-local byte offset b, which has to be a
// rune boundary.
func (cc *CharCursor) SeekByte(b int) error {
	if cc == nil {
		return ErrInvalidArgument
	}
	s := cc.view.text()
	if b < 0 || b > len(s) {
		return fmt.Errorf("seek to %d in view of length %d: %w", b, len(s), ErrOutOfRange)
	}
	if b < len(s) && !utf8.RuneStart(s[b]) {
		return fmt.Errorf("seek to %d: not a rune boundary: %w", b, ErrInvalidArgument)
	}
	cc.byteOff = b
	cc.runes = utf8.RuneCountInString(s[:b])
	return nil
}

// SeekRunes moves the cursor behind the first n runes of the view.
func (cc *CharCursor) SeekRunes(n int) error {
	if cc == nil {
		return ErrInvalidArgument
	}
	s := cc.view.text()
	if n < 0 {
		return fmt.Errorf("seek to rune %d: %w", n, ErrOutOfRange)
	}
	b, ok := runePrefixLen(s, n)
	if !ok {
		return fmt.Errorf("seek to rune %d beyond end of view: %w", n, ErrOutOfRange)
	}
	cc.byteOff, cc.runes = b, n
	return nil
}

// Next returns the rune at the current cursor position and advances by one rune.
//
// If the cursor is at the end of the view, ok is false.
func (cc *CharCursor) Next() (r rune, ok bool) {
	if cc == nil {
		return 0, false
	}
	s := cc.view.text()
	if cc.byteOff >= len(s) {
		return 0, false
	}
	r, n := utf8.DecodeRuneInString(s[cc.byteOff:])
	cc.byteOff += n
	cc.runes++
	return r, true
}

// Prev returns the rune before the current cursor position and moves back by one rune.
//
// If the cursor is at the start of the view, ok is false.
func (cc *CharCursor) Prev() (r rune, ok bool) {
	if cc == nil {
		return 0, false
	}
	if cc.byteOff == 0 {
		return 0, false
	}
	r, n := utf8.DecodeLastRuneInString(cc.view.text()[:cc.byteOff])
	cc.byteOff -= n
	if cc.runes > 0 {
		cc.runes--
	}
	return r, true
}

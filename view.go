package textview

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"unicode"
	"unicode/utf8"
)

// View is a read-only window onto an immutable string buffer.
//
// A view created by
//
//	View{}
//
// is a valid object and has no value, i.e. it does not refer to any buffer.
// All other views refer to a buffer and satisfy
//
//	0 ≤ offset ≤ len(buffer)  and  offset+length ≤ len(buffer)
//
// Views are values; every transformation returns a new view sharing the buffer
// of its origin.
type View struct {
	buf    string
	offset int
	length int
	valid  bool
}

// Empty is a present view of length 0.
var Empty = FromString("")

// FromString creates a view spanning the whole of s.
func FromString(s string) View {
	return View{buf: s, length: len(s), valid: true}
}

// Of creates a view spanning the whole of *s. If s is nil, the view has no value.
func Of(s *string) View {
	if s == nil {
		return View{}
	}
	return FromString(*s)
}

// New creates a view onto buf, starting at offset and extending to the end
// of buf.
//
// Returns ErrInvalidArgument if buf is nil and ErrOutOfRange if offset is
// not within [0, len(*buf)].
func New(buf *string, offset int) (View, error) {
	if buf == nil {
		tracer().Debugf("textview.New: buffer is nil")
		return View{}, fmt.Errorf("buffer is nil: %w", ErrInvalidArgument)
	}
	if offset < 0 || offset > len(*buf) {
		return View{}, fmt.Errorf("offset %d for buffer of length %d: %w", offset, len(*buf), ErrOutOfRange)
	}
	return View{buf: *buf, offset: offset, length: len(*buf) - offset, valid: true}, nil
}

// NewLen creates a view onto buf, covering [offset, offset+length).
//
// Returns ErrInvalidArgument if buf is nil and ErrOutOfRange if the window
// does not fit into the buffer.
func NewLen(buf *string, offset, length int) (View, error) {
	if buf == nil {
		tracer().Debugf("textview.NewLen: buffer is nil")
		return View{}, fmt.Errorf("buffer is nil: %w", ErrInvalidArgument)
	}
	if offset < 0 || offset > len(*buf) {
		return View{}, fmt.Errorf("offset %d for buffer of length %d: %w", offset, len(*buf), ErrOutOfRange)
	}
	if length < 0 || length > len(*buf)-offset {
		return View{}, fmt.Errorf("length %d at offset %d for buffer of length %d: %w",
			length, offset, len(*buf), ErrOutOfRange)
	}
	return View{buf: *buf, offset: offset, length: length, valid: true}, nil
}

// slice is the unchecked constructor for derived views. Callers guarantee
// that [off, off+n) lies inside buf.
func slice(buf string, off, n int) View {
	return View{buf: buf, offset: off, length: n, valid: true}
}

// HasValue reports whether the view refers to a buffer.
func (v View) HasValue() bool {
	return v.valid
}

// Len returns the length of the view in bytes.
func (v View) Len() int {
	return v.length
}

// Offset returns the start of the view within its buffer.
func (v View) Offset() int {
	return v.offset
}

// Buffer returns the complete underlying buffer. ok is false if the view
// has no value.
func (v View) Buffer() (buf string, ok bool) {
	return v.buf, v.valid
}

// Value returns the text of the view. ok is false if the view has no value.
//
// The returned string shares memory with the buffer.
func (v View) Value() (string, bool) {
	if !v.valid {
		return "", false
	}
	return v.text(), true
}

// String returns the text of the view, or "" if the view has no value.
func (v View) String() string {
	if !v.valid {
		return ""
	}
	return v.text()
}

// Bytes returns a copied byte slice of the view's text.
func (v View) Bytes() ([]byte, error) {
	if !v.valid {
		return nil, ErrInvalidState
	}
	return []byte(v.text()), nil
}

// At returns the byte at view-local position i.
func (v View) At(i int) (byte, error) {
	if !v.valid {
		return 0, ErrInvalidState
	}
	if i < 0 || i >= v.length {
		return 0, fmt.Errorf("index %d for view of length %d: %w", i, v.length, ErrIndexOutOfRange)
	}
	return v.buf[v.offset+i], nil
}

// IsEmpty reports whether the view has no value or a length of 0.
func (v View) IsEmpty() bool {
	return v.length == 0
}

// IsBlank reports whether the view is empty or consists of whitespace only.
func (v View) IsBlank() bool {
	for _, r := range v.text() {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Runes returns an iterator over the runes of the view, together with their
// view-local byte positions. A view without value yields nothing.
func (v View) Runes() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		s := v.text()
		for i := 0; i < len(s); {
			r, w := utf8.DecodeRuneInString(s[i:])
			if !yield(i, r) {
				return
			}
			i += w
		}
	}
}

// text is the view's window onto its buffer. For a view without value this
// is "", as the zero value carries an empty buffer.
func (v View) text() string {
	return v.buf[v.offset : v.offset+v.length]
}

package textview

import "fmt"

// Sub returns the view [offset, Len()) in view-local coordinates.
func (v View) Sub(offset int) (View, error) {
	if !v.valid {
		return View{}, ErrInvalidState
	}
	if offset < 0 || offset > v.length {
		return View{}, fmt.Errorf("sub-view offset %d for view of length %d: %w", offset, v.length, ErrOutOfRange)
	}
	return slice(v.buf, v.offset+offset, v.length-offset), nil
}

// SubLen returns the view [offset, offset+length) in view-local coordinates.
func (v View) SubLen(offset, length int) (View, error) {
	if !v.valid {
		return View{}, ErrInvalidState
	}
	if offset < 0 || offset > v.length {
		return View{}, fmt.Errorf("sub-view offset %d for view of length %d: %w", offset, v.length, ErrOutOfRange)
	}
	if length < 0 || length > v.length-offset {
		return View{}, fmt.Errorf("sub-view length %d at %d for view of length %d: %w",
			length, offset, v.length, ErrOutOfRange)
	}
	return slice(v.buf, v.offset+offset, length), nil
}

// Take returns the leading count bytes of v.
func (v View) Take(count int) (View, error) {
	if !v.valid {
		return View{}, ErrInvalidState
	}
	if count < 0 || count > v.length {
		return View{}, fmt.Errorf("take %d from view of length %d: %w", count, v.length, ErrOutOfRange)
	}
	return slice(v.buf, v.offset, count), nil
}

// span is the unchecked sub-view [from, to) in view-local coordinates.
func (v View) span(from, to int) View {
	return slice(v.buf, v.offset+from, to-from)
}

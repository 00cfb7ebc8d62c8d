package textview

import (
	"fmt"
	"io"
)

// AppendTo appends the text of v to a growable text buffer, such as a
// strings.Builder or bytes.Buffer, without materializing an intermediate copy.
func (v View) AppendTo(w io.StringWriter) error {
	if w == nil {
		return fmt.Errorf("append target is nil: %w", ErrInvalidArgument)
	}
	if !v.valid {
		return ErrInvalidState
	}
	_, err := w.WriteString(v.text())
	return err
}

// WriteTo writes the text of v to w. It implements io.WriterTo.
func (v View) WriteTo(w io.Writer) (int64, error) {
	if !v.valid {
		return 0, ErrInvalidState
	}
	n, err := io.WriteString(w, v.text())
	return int64(n), err
}

// AppendBytes appends the text of v to dst and returns the extended slice.
func (v View) AppendBytes(dst []byte) ([]byte, error) {
	if !v.valid {
		return dst, ErrInvalidState
	}
	return append(dst, v.text()...), nil
}

package textview

import (
	"unicode"
	"unicode/utf8"
)

// Trim removes leading and trailing whitespace.
func (v View) Trim() View {
	return v.TrimStart().TrimEnd()
}

// TrimStart removes all leading whitespace. If v consists of whitespace only,
// the result is the zero-length view positioned at the end of v.
// A view without value is returned unchanged.
func (v View) TrimStart() View {
	if !v.valid {
		return v
	}
	s := v.text()
	start := 0
	for start < len(s) {
		r, w := utf8.DecodeRuneInString(s[start:])
		if !unicode.IsSpace(r) {
			break
		}
		start += w
	}
	return v.span(start, len(s))
}

// TrimEnd removes all trailing whitespace. If v consists of whitespace only,
// the result is the zero-length view positioned at the start of v.
// A view without value is returned unchanged.
func (v View) TrimEnd() View {
	if !v.valid {
		return v
	}
	s := v.text()
	end := len(s)
	for end > 0 {
		r, w := utf8.DecodeLastRuneInString(s[:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= w
	}
	return v.span(0, end)
}

package breaks

import (
	"bufio"
	"strings"
	"sync"

	"github.com/npillmayer/textview"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var setupGraphemes sync.Once

// Segments splits v at UAX #14 line-break opportunities. Every segment is a
// sub-view of v, and the segments concatenate to v.
//
// Returns textview.ErrInvalidState if v has no value.
func Segments(v textview.View) ([]textview.View, error) {
	if !v.HasValue() {
		return nil, textview.ErrInvalidState
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(v.String())))
	segs := make([]textview.View, 0, 16)
	pos := 0
	for segmenter.Next() {
		n := len(segmenter.Bytes())
		if n == 0 {
			continue
		}
		seg, err := v.SubLen(pos, n)
		if err != nil {
			tracer().Errorf("line-break segment [%d,%d) exceeds view of length %d", pos, pos+n, v.Len())
			return segs, err
		}
		segs = append(segs, seg)
		pos += n
	}
	return segs, nil
}

// Width returns the display width of v in fixed-width positions (“en”s).
// If context is nil, uax11.LatinContext is used.
func Width(v textview.View, context *uax11.Context) int {
	if v.IsEmpty() {
		return 0
	}
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	gstr := grapheme.StringFromString(v.String())
	return uax11.StringWidth(gstr, context)
}

/*
Wrap applies first-fit line wrapping:

	1. |  SpaceLeft := LineWidth
	2. |  for each Segment in Text
	3. |      if Width(Segment) > SpaceLeft
	4. |           insert line break before Segment in Text
	5. |           SpaceLeft := LineWidth - Width(Segment)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - Width(Segment)

Lines are sub-views of v and keep their trailing whitespace, thus the lines
concatenate to v. A segment wider than linewidth occupies a line of its own.
*/
func Wrap(v textview.View, linewidth int, context *uax11.Context) ([]textview.View, error) {
	segs, err := Segments(v)
	if err != nil {
		return nil, err
	}
	lines := make([]textview.View, 0, 8)
	start, end := 0, 0
	spaceleft := linewidth
	for _, seg := range segs {
		fraglen := Width(seg.TrimEnd(), context)
		if fraglen > spaceleft && end > start {
			line, err := v.SubLen(start, end-start)
			if err != nil {
				return lines, err
			}
			tracer().Debugf("break @ %d", end)
			lines = append(lines, line)
			start = end
			spaceleft = linewidth
		}
		spaceleft -= Width(seg, context)
		end += seg.Len()
	}
	if end > start {
		line, err := v.SubLen(start, end-start)
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

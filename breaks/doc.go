/*
Package breaks segments text views at Unicode line-break opportunities.

Segmentation follows UAX #14 and yields views onto the buffer of the source
view; no text is copied. Display widths are measured according to UAX #11,
which allows for a simple first-fit line wrapping of a view.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package breaks

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textview'
func tracer() tracing.Trace {
	return tracing.Select("textview")
}

/*
Package textfile provides API helpers to load UTF-8 text files as views.

Loading reads a file in fragments on a background goroutine. Clients may
subscribe to loading progress; the view itself becomes available as soon as
the last fragment has arrived.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textview'
func tracer() tracing.Trace {
	return tracing.Select("textview")
}

/*
Package inspect renders text views for humans, typically on a console.

A view is printed together with the surrounding text of its buffer, with the
window of the view highlighted. Splitters may be printed token by token.
Colors are applied with package fatih/color and are switched off automatically
if output is not a terminal (see color.NoColor).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package inspect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textview'
func tracer() tracing.Trace {
	return tracing.Select("textview")
}

package html

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'textview'
func tracer() tracing.Trace {
	return tracing.Select("textview")
}

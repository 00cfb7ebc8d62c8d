/*
Package textview offers zero-copy views onto immutable strings.

Views

A View describes a contiguous run of bytes inside an existing string, the
buffer. Creating a view, slicing it, trimming it or splitting it never copies
the buffer: every derived view borrows the same backing string. Go strings are
immutable, so any number of views may alias the same buffer region and may be
used from concurrent goroutines without coordination.

	s := "rewgaf1"
	v, _ := textview.NewLen(&s, 3, 4) // v.String() == "gaf1"

The zero value

	View{}

is a valid object and represents "no text at all", analogous to a nil
reference. It is distinct from a present view of length 0, which is an empty
slice of real text. Both stringify to "", but only the latter may be sliced.

Positions are byte offsets relative to the start of the view. Operations which
interpret characters (whitespace, rune separators, case folding) decode UTF-8
and treat a matched rune as occupying its encoded width.

Splitting

Views may be split lazily into tokens with View.Split. The resulting Splitter
is an immutable description; a SplitCursor steps through the tokens one at a
time and keeps an occurrence cache per string separator, so that a separator
found far ahead is not searched again until the cursor passes it.

	sp, _ := textview.FromString("a-b-c-d").Split(textview.Strings("-"), 2, textview.KeepEmpty)
	for tok := range sp.All() {
		fmt.Println(tok) // "a", then "b-c-d"
	}

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package textview

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'textview'
func tracer() tracing.Trace {
	return tracing.Select("textview")
}

// ViewError is an error type for the textview module
type ViewError string

func (e ViewError) Error() string {
	return string(e)
}

// ErrInvalidArgument is flagged whenever a required argument is absent or
// structurally nonsensical, e.g. a negative split limit.
const ErrInvalidArgument = ViewError("invalid argument")

// ErrOutOfRange is flagged whenever an offset, length, count or start index
// falls outside the window of a view or buffer.
const ErrOutOfRange = ViewError("argument out of range")

// ErrInvalidState is flagged whenever an operation requires a buffer but the
// view has no value.
const ErrInvalidState = ViewError("view has no value")

// ErrIndexOutOfRange is flagged whenever single-element indexing addresses a
// position outside [0, length).
const ErrIndexOutOfRange = ViewError("index out of range")

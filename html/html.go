/*
Package html extracts the text of HTML fragments as views.

The textual content of all text nodes is collected into a single buffer. The
result spans that buffer and additionally carries one view per text node, all
sharing the same buffer.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package html

import (
	"fmt"
	"io"

	"github.com/msaf1980/go-stringutils"
	"github.com/npillmayer/textview"
	"golang.org/x/net/html"
)

// Text is the textual content of an HTML element and its descendents.
type Text struct {
	All       textview.View   // all of the text
	Fragments []textview.View // one view per text node, in document order
}

type span struct {
	offset, length int
}

// InnerText collects the text of an HTML element and all its descendents. It
// resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(n *html.Node) (Text, error) {
	if n == nil {
		return Text{}, fmt.Errorf("HTML node is nil: %w", textview.ErrInvalidArgument)
	}
	return collect([]*html.Node{n})
}

// TextFromHTML extracts the textual content of an HTML fragment. It does no
// interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (Text, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return Text{}, err
	}
	return collect(nodes)
}

func collect(nodes []*html.Node) (Text, error) {
	var b stringutils.Builder
	var spans []span
	pos := 0
	for _, n := range nodes {
		collectText(n, &b, &spans, &pos)
	}
	buf := b.String()
	text := Text{All: textview.Of(&buf)}
	for _, sp := range spans {
		v, err := textview.NewLen(&buf, sp.offset, sp.length)
		if err != nil {
			return Text{}, err
		}
		text.Fragments = append(text.Fragments, v)
	}
	tracer().Debugf("html: collected %d text nodes, %d bytes", len(spans), len(buf))
	return text, nil
}

func collectText(n *html.Node, b *stringutils.Builder, spans *[]span, pos *int) {
	if n.Type == html.TextNode && n.Data != "" {
		b.WriteString(n.Data)
		*spans = append(*spans, span{offset: *pos, length: len(n.Data)})
		*pos += len(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b, spans, pos)
	}
}

/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package engine implements components C through H of the pagination
// pipeline: the Inline Resolver, Line Breaker, Unformatted Splitter,
// Justifier, Layout/Page Manager, and the Painter façade that drives them
// from a parsed book tree.
package engine

import "github.com/rowanclarke/versepage/style"

// Rectangle is a page-relative placement box, in floating-point layout
// units.
type Rectangle struct {
	Top, Left, Width, Height float64
}

// Dimensions describes one page's fixed geometry.
type Dimensions struct {
	Width, Height  float64
	HeaderHeight   float64
	DropCapPadding float64
}

// PartialText is a single archived placement record: the unit the host
// toolkit paints.
type PartialText struct {
	Text             string
	Rect             Rectangle
	Style            style.ID
	ExtraWordSpacing float64
}

// Page is an ordered sequence of placements.
type Page []PartialText

// Index names a canonical (book, chapter, verse) location.
type Index struct {
	Book    string
	Chapter uint16
	Verse   uint16
}

// Inline is a maximal run of paragraph characters sharing one style and one
// whitespace class.
type Inline struct {
	Start, End   int // range over the paragraph's character buffer, [Start,End)
	IsWhitespace bool
	Style        style.ID
	Width        float64
	TopOffset    float64
}

// LineFormat controls first-line indent (Head), subsequent-line indent
// (Tail), and per-line width reduction (Shrink) for one paint_paragraph
// call.
type LineFormat struct {
	Head, Tail, Shrink float64
}

// Format selects how a paragraph's broken lines are rendered.
type Format int

const (
	Left Format = iota
	Justified
	Center
)

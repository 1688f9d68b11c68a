/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package oracle implements the engine's measurement oracle: a
// third-party-backed facility that shapes pushed/popped styled text into a
// single infinite-width paragraph and answers width queries over any
// character range. Every width measurement in the engine flows through
// here; nothing else re-implements shaping.
package oracle

import (
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/rowanclarke/versepage/style"
)

// run is a maximal span of text appended under one pushed style.
type run struct {
	style      style.ID
	start, end int // rune offsets into Oracle.text
}

// Oracle is the paragraph builder. A Painter owns one Oracle and Resets it
// at the end of every paint_paragraph, paint_region and paint_drop_cap.
type Oracle struct {
	registry *style.Registry
	shaper   shaping.HarfbuzzShaper

	stack []style.ID
	text  []rune
	runs  []run
}

// New creates an Oracle bound to a registry. The registry must outlive the
// Oracle and is never mutated by it.
func New(registry *style.Registry) *Oracle {
	return &Oracle{registry: registry}
}

// Reset clears the accumulated paragraph, leaving the oracle ready to build
// another one.
func (o *Oracle) Reset() {
	o.stack = o.stack[:0]
	o.text = o.text[:0]
	o.runs = o.runs[:0]
}

// PushStyle pushes id onto the style stack; text subsequently appended via
// AddText is measured using id's registered font and size until the
// matching PopStyle.
func (o *Oracle) PushStyle(id style.ID) {
	o.stack = append(o.stack, id)
}

// PopStyle pops the style stack.
func (o *Oracle) PopStyle() {
	if len(o.stack) == 0 {
		return
	}
	o.stack = o.stack[:len(o.stack)-1]
}

// currentStyle returns the style on top of the stack, defaulting to Normal
// for text appended outside any push/pop pair.
func (o *Oracle) currentStyle() style.ID {
	if len(o.stack) == 0 {
		return style.Normal
	}
	return o.stack[len(o.stack)-1]
}

// AddText appends s to the paragraph's character buffer under the current
// style, extending the current run or opening a new one if the style
// changed since the last append. s is normalized to NFC first, so a
// decomposed accent sequence from the source text (common in transliterated
// Hebrew/Greek) shapes as a single composed glyph rather than base+combining
// mark.
func (o *Oracle) AddText(s string) {
	if s == "" {
		return
	}
	s = norm.NFC.String(s)
	start := len(o.text)
	o.text = append(o.text, []rune(s)...)
	end := len(o.text)

	cur := o.currentStyle()
	if n := len(o.runs); n > 0 && o.runs[n-1].style == cur && o.runs[n-1].end == start {
		o.runs[n-1].end = end
		return
	}
	o.runs = append(o.runs, run{style: cur, start: start, end: end})
}

// Text returns the full concatenated character buffer built so far.
func (o *Oracle) Text() []rune {
	return o.text
}

// Len returns the number of runes appended so far.
func (o *Oracle) Len() int {
	return len(o.text)
}

// Width returns the tight bounding-rectangle width of text[start:end),
// shaped through the registered fonts of whichever run(s) the range spans.
// The Inline Resolver only ever calls Width with a range confined to one
// style; Width still sums correctly across a boundary so
// misuse degrades gracefully rather than silently mismeasuring.
func (o *Oracle) Width(start, end int) float64 {
	if start >= end {
		return 0
	}
	var total float64
	for _, r := range o.runs {
		lo, hi := max(start, r.start), min(end, r.end)
		if lo >= hi {
			continue
		}
		total += o.shapeWidth(r.style, lo, hi)
	}
	return total
}

// shapeWidth shapes text[start:end) under the font/size registered for id
// and returns the summed glyph advance.
func (o *Oracle) shapeWidth(id style.ID, start, end int) float64 {
	ts := o.registry.Style(id)
	face := o.registry.Face(ts.FontFamily)
	if face == nil || face.GoText() == nil {
		// No real typeface registered (e.g. unit tests); fall back to a
		// per-rune advance of FontSize, which keeps the rest of the
		// pipeline exercisable without a binary font fixture.
		return float64(end-start) * ts.FontSize
	}

	input := shaping.Input{
		Text:      o.text,
		RunStart:  start,
		RunEnd:    end,
		Direction: di.DirectionLTR,
		Face:      face.GoText(),
		Size:      fixed.Int26_6(ts.FontSize * 64),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}
	out := o.shaper.Shape(input)

	var advance float64
	for _, g := range out.Glyphs {
		advance += float64(g.XAdvance) / 64
	}
	// LetterSpacing applies once per rune measured and WordSpacing once per
	// whitespace rune; the justifier's extra word spacing comes on top.
	advance += ts.LetterSpacing * float64(end-start)
	for _, r := range o.text[start:end] {
		if unicode.IsSpace(r) {
			advance += ts.WordSpacing
		}
	}
	return advance
}

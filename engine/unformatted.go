/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package engine

import "github.com/rowanclarke/versepage/style"

// LineMetrics carries the per-line accounting the Justifier needs: how much
// width remains unused on the line, and how much of the line's width is
// whitespace.
type LineMetrics struct {
	Remaining  float64
	Whitespace float64
}

// Unformatted is a maximal same-style run within one broken line, carrying
// its own width/whitespace accounting plus the metrics of the line it
// belongs to.
type Unformatted struct {
	LineIdx         int
	Start, End      int // range over the paragraph character buffer
	Style           style.ID
	Width           float64 // group_width
	WhitespaceWidth float64
	TopOffset       float64
	Metrics         LineMetrics
}

// lineMetrics computes LineMetrics for the (already-trimmed) inlines in r,
// given the available width of the Layout line it was broken against.
func lineMetrics(inlines []Inline, r LineRange, available float64) LineMetrics {
	var width, whitespace float64
	for i := r.Start; i < r.End; i++ {
		width += inlines[i].Width
		if inlines[i].IsWhitespace {
			whitespace += inlines[i].Width
		}
	}
	return LineMetrics{Remaining: available - width, Whitespace: whitespace}
}

// SplitUnformatted groups each trimmed line range into maximal same-style
// runs. A group flushes whenever the next inline's style differs from the
// group's, or the group holds the line's last inline — whichever comes
// first — so a style change landing on the final inline of a line still
// yields two groups rather than merging the new style's width into the old
// group.
func SplitUnformatted(inlines []Inline, ranges []LineRange, layout *Layout) []Unformatted {
	var out []Unformatted

	for _, r := range ranges {
		if r.Start >= r.End {
			continue // degenerate whitespace-only line after trim
		}

		metrics := lineMetrics(inlines, r, layout.Line(r.LineIdx).Width)
		words := inlines[r.Start:r.End]

		groupStyle := words[0].Style
		groupTopOffset := words[0].TopOffset
		groupStart := words[0].Start
		var total, whitespace float64

		flush := func(end int) {
			out = append(out, Unformatted{
				LineIdx:         r.LineIdx,
				Start:           groupStart,
				End:             end,
				Style:           groupStyle,
				Width:           total,
				WhitespaceWidth: whitespace,
				TopOffset:       groupTopOffset,
				Metrics:         metrics,
			})
		}

		for i, inl := range words {
			// Whitespace is credited to the group being closed, not the one
			// a style change is about to open, even when that whitespace sits
			// at the boundary inline: a verse marker's leading " " that opens
			// Verse mid-paragraph still belongs, width-wise, to the run it
			// trails.
			if inl.IsWhitespace {
				whitespace += inl.Width
			}
			if inl.Style != groupStyle {
				flush(inl.Start)
				groupStyle = inl.Style
				groupTopOffset = inl.TopOffset
				groupStart = inl.Start
				total = 0
				whitespace = 0
			}
			total += inl.Width
			if i == len(words)-1 {
				flush(inl.End)
			}
		}
	}

	return out
}

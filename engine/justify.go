/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package engine

import "unicode"

// Justify writes every Unformatted group to its line via the Layout,
// applying the word-spacing math below. Left writes groups at
// their natural width with zero word spacing. Justified expands every
// group's rendered width by a per-line spacing ratio, except for the
// paragraph's very last group (the tail of the flattened group list, not
// every group sharing its LineIdx), which is always left-aligned — an
// earlier group that happens to share the last physical line with the tail
// (e.g. a verse marker's style boundary landing on the paragraph's last
// line) still gets justified spacing.
//
// Center is not handled here: centering needs the block's total height,
// known only after breaking against a sub-layout, and writes through
// Layout.Write rather than the line queue — see Painter.paintRegion.
func Justify(text []rune, groups []Unformatted, format Format, layout *Layout) {
	if format == Center {
		panic("versepage/engine: Center is only produced by paint_region, not Justify")
	}
	if len(groups) == 0 {
		return
	}
	lastIdx := len(groups) - 1

	for i, g := range groups {
		slice := string(text[g.Start:g.End])

		if format == Left || i == lastIdx {
			layout.WriteLine(g.LineIdx, slice, g.Style, g.Width, 0, g.TopOffset)
			continue
		}

		spacing := 0.0
		if g.Metrics.Whitespace > 0 {
			ratio := g.Metrics.Remaining / g.Metrics.Whitespace
			spacing = ratio * g.WhitespaceWidth
		}

		spaces := countWhitespace(text[g.Start:g.End])
		wordSpacing := 0.0
		if spaces > 0 {
			wordSpacing = spacing / float64(spaces)
		}

		layout.WriteLine(g.LineIdx, slice, g.Style, g.Width+spacing, wordSpacing, g.TopOffset)
	}
}

func countWhitespace(text []rune) int {
	n := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

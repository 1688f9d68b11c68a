/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package engine

// LineRange is one broken line: a half-open range over an Inline slice,
// and the index of the Layout line it was written against.
type LineRange struct {
	Start, End int
	LineIdx    int
}

// BreakLines implements a greedy first-fit line breaker. Lines are
// materialized against layout lazily, one at a time, as the walk reaches
// them, so a line's width-after-indent is only computed the first time the
// breaker actually needs it.
func BreakLines(inlines []Inline, format LineFormat, layout *Layout) []LineRange {
	if len(inlines) == 0 {
		panic("versepage/engine: empty inline list reached the line breaker")
	}

	var ranges []LineRange
	lineIdx := 0
	line := layout.Line(lineIdx)
	line.Mutate(format.Head, -format.Head-format.Shrink)
	available := line.Width

	lineStart := 0
	var total float64

	for i, inline := range inlines {
		if i > lineStart && total+inline.Width > available {
			ranges = append(ranges, LineRange{Start: lineStart, End: i, LineIdx: lineIdx})

			lineIdx++
			line = layout.Line(lineIdx)
			line.Mutate(format.Tail, -format.Tail-format.Shrink)
			available = line.Width

			lineStart = i
			total = 0
		}
		total += inline.Width
	}
	ranges = append(ranges, LineRange{Start: lineStart, End: len(inlines), LineIdx: lineIdx})

	return ranges
}

// Trim tightens each line range by skipping leading and trailing whitespace
// inlines, so visible edge spaces are dropped while internal whitespace
// used for justification survives. A line range that
// is whitespace-only degenerates to an empty [i,i) range rather than
// panicking; callers skip empty ranges when writing.
func Trim(inlines []Inline, ranges []LineRange) []LineRange {
	trimmed := make([]LineRange, len(ranges))
	for i, r := range ranges {
		start, end := r.Start, r.End
		for start < end && inlines[start].IsWhitespace {
			start++
		}
		for end > start && inlines[end-1].IsWhitespace {
			end--
		}
		trimmed[i] = LineRange{Start: start, End: end, LineIdx: r.LineIdx}
	}
	return trimmed
}

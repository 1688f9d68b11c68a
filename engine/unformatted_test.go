/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanclarke/versepage/style"
)

// mixedStyleInlines builds "ab"+"cd" as two same-length, single-style runs
// under a two-entry styled cursor, with no whitespace between them.
func mixedStyleInlines(t *testing.T) (text []rune, inlines []Inline, reg *style.Registry) {
	t.Helper()
	reg = unitRegistry()
	o := unitOracle(reg)
	o.PushStyle(style.Normal)
	o.AddText("ab")
	o.PopStyle()
	o.PushStyle(style.Verse)
	o.AddText("cd")
	o.PopStyle()
	cursor := []CursorEntry{
		{UpperBound: 2, Style: style.Normal},
		{UpperBound: 4, Style: style.Verse},
	}
	inlines = ResolveInlines(o.Text(), cursor, o, reg)
	return o.Text(), inlines, reg
}

func TestSplitUnformattedSingleStyleLineIsOneGroup(t *testing.T) {
	reg := unitRegistry()
	o := unitOracle(reg)
	o.PushStyle(style.Normal)
	o.AddText("ab cd")
	o.PopStyle()
	cursor := []CursorEntry{{UpperBound: o.Len(), Style: style.Normal}}
	inlines := ResolveInlines(o.Text(), cursor, o, reg)

	layout := NewLayout(reg, Dimensions{Width: 10, Height: 5})
	ranges := []LineRange{{Start: 0, End: len(inlines), LineIdx: 0}}

	groups := SplitUnformatted(inlines, ranges, layout)
	require.Len(t, groups, 1)
	require.Equal(t, 0, groups[0].Start)
	require.Equal(t, len(o.Text()), groups[0].End)
	require.Equal(t, 5.0, groups[0].Width) // "ab cd" = 5 units
	require.Equal(t, 1.0, groups[0].WhitespaceWidth)
}

func TestSplitUnformattedStyleChangeOnLastInlineYieldsTwoGroups(t *testing.T) {
	text, inlines, reg := mixedStyleInlines(t)
	layout := NewLayout(reg, Dimensions{Width: 10, Height: 5})
	ranges := []LineRange{{Start: 0, End: len(inlines), LineIdx: 0}}

	groups := SplitUnformatted(inlines, ranges, layout)
	require.Len(t, groups, 2)

	require.Equal(t, style.Normal, groups[0].Style)
	require.Equal(t, 0, groups[0].Start)
	require.Equal(t, 2, groups[0].End)
	require.Equal(t, 2.0, groups[0].Width)

	require.Equal(t, style.Verse, groups[1].Style)
	require.Equal(t, 2, groups[1].Start)
	require.Equal(t, 4, groups[1].End)
	require.Equal(t, 2.0, groups[1].Width)

	require.Equal(t, len(text), groups[1].End)
}

// verseMarkerInlines builds "ab" (Normal) then
// " 3" (Verse, mirroring Painter.paintChildren's verse-marker push of
// " "+number) then "cd" (Normal): a style boundary whose opening inline is
// whitespace, same as any verse marker landing mid-paragraph.
func verseMarkerInlines(t *testing.T) (text []rune, inlines []Inline, reg *style.Registry) {
	t.Helper()
	reg = unitRegistry()
	o := unitOracle(reg)
	o.PushStyle(style.Normal)
	o.AddText("ab")
	o.PopStyle()
	o.PushStyle(style.Verse)
	o.AddText(" 3")
	o.PopStyle()
	o.PushStyle(style.Normal)
	o.AddText("cd")
	o.PopStyle()
	cursor := []CursorEntry{
		{UpperBound: 2, Style: style.Normal},
		{UpperBound: 4, Style: style.Verse},
		{UpperBound: 6, Style: style.Normal},
	}
	inlines = ResolveInlines(o.Text(), cursor, o, reg)
	return o.Text(), inlines, reg
}

func TestSplitUnformattedCreditsBoundaryWhitespaceToTheClosingGroup(t *testing.T) {
	_, inlines, reg := verseMarkerInlines(t)
	layout := NewLayout(reg, Dimensions{Width: 10, Height: 5})
	ranges := []LineRange{{Start: 0, End: len(inlines), LineIdx: 0}}

	groups := SplitUnformatted(inlines, ranges, layout)
	require.Len(t, groups, 3)

	// "ab": the group the verse marker's leading space trails. Its own text
	// range excludes the space, but the space's width is still credited
	// here, not to the Verse group it opens.
	require.Equal(t, style.Normal, groups[0].Style)
	require.Equal(t, 0, groups[0].Start)
	require.Equal(t, 2, groups[0].End)
	require.Equal(t, 1.0, groups[0].WhitespaceWidth)

	// " 3": the Verse group the space opens carries none of its width.
	require.Equal(t, style.Verse, groups[1].Style)
	require.Equal(t, 2, groups[1].Start)
	require.Equal(t, 4, groups[1].End)
	require.Equal(t, 0.0, groups[1].WhitespaceWidth)

	require.Equal(t, style.Normal, groups[2].Style)
	require.Equal(t, 0.0, groups[2].WhitespaceWidth)
}

func TestSplitUnformattedSkipsDegenerateRanges(t *testing.T) {
	_, inlines, reg := mixedStyleInlines(t)
	layout := NewLayout(reg, Dimensions{Width: 10, Height: 5})
	ranges := []LineRange{{Start: 0, End: 0, LineIdx: 0}}

	groups := SplitUnformatted(inlines, ranges, layout)
	require.Empty(t, groups)
}

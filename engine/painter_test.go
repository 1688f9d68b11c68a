/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanclarke/versepage/book"
	"github.com/rowanclarke/versepage/style"
)

func TestPaintParagraphLeftAlignedSimpleText(t *testing.T) {
	p := NewPainter(unitRegistry(), Dimensions{Width: 10, Height: 100})

	p.PushStyle(style.Normal)
	p.AddText("hi")
	p.PopStyle()
	p.PaintParagraph(Left, LineFormat{})

	page := p.Layout().Pages()[0]
	require.Len(t, page, 1)
	require.Equal(t, "hi", page[0].Text)
	require.Equal(t, 2.0, page[0].Rect.Width)
}

func TestPaintDropCapLocksTwoLinesAndFollowingParagraphWrapsAround(t *testing.T) {
	p := NewPainter(unitRegistry(), Dimensions{Width: 10, Height: 100, DropCapPadding: 1})

	p.PushStyle(style.Chapter)
	p.AddText("1")
	p.PopStyle()
	p.PaintDropCap()

	line0 := p.Layout().Line(0)
	line1 := p.Layout().Line(1)
	require.True(t, line0.Locked)
	require.True(t, line1.Locked)
	require.Equal(t, 2.0, line0.Left) // glyphWidth = inline.Width(1) + DropCapPadding(1)
	require.Equal(t, 8.0, line0.Width)

	p.PushStyle(style.Normal)
	p.AddText("ab cd ef gh") // 4 words; only 3 fit within the locked line's width of 8
	p.PopStyle()
	p.PaintParagraph(Left, LineFormat{})

	page := p.Layout().Pages()[0]
	// 1 drop-cap glyph + 2 paragraph lines (wrapped because the first
	// line's available width was frozen at 8 by the lock).
	require.Len(t, page, 3)
	// The frozen Left of 2 plus the 8 units WriteLine advanced it by for
	// "ab cd ef"; the paragraph's own Mutate(0, 0) did not move it.
	require.Equal(t, 10.0, line0.Left)
}

func TestPaintRegionCentersHorizontallyAndVerticallyThenAdvancesFixedHeight(t *testing.T) {
	p := NewPainter(unitRegistry(), Dimensions{Width: 10, Height: 100, HeaderHeight: 5})

	p.PushStyle(style.Header)
	p.AddText("hi")
	p.PopStyle()
	p.PaintRegion(5)

	page := p.Layout().Pages()[0]
	require.Len(t, page, 1)
	// available(10) - width(2) = 8 remaining, centered left = 8/2 = 4.
	require.Equal(t, 4.0, page[0].Rect.Left)
	// contentHeight = 1 line * lineHeight(1) = 1; verticalOffset = (5-1)/2 = 2.
	require.Equal(t, 2.0, page[0].Rect.Top)

	require.Equal(t, 5.0, p.Layout().BodyTop())
}

func TestIndexVerseCommitsToCorrectPage(t *testing.T) {
	p := NewPainter(unitRegistry(), Dimensions{Width: 40, Height: 100})

	p.IndexBook("GEN")
	p.IndexChapter(1)
	p.PushStyle(style.Normal)
	p.IndexVerse(1)
	p.PushStyle(style.Verse)
	p.AddText(" 1")
	p.PopStyle()
	p.AddText("hello")
	p.PopStyle()
	p.PaintParagraph(Justified, LineFormat{})

	idx := Index{Book: "GEN", Chapter: 1, Verse: 1}
	page, ok := p.Layout().Indices()[idx]
	require.True(t, ok)
	require.Equal(t, 0, page)
	require.Equal(t, []Index{idx}, p.Layout().Verses())
}

func TestIndexVersePanicsWithoutBookOrChapter(t *testing.T) {
	p := NewPainter(unitRegistry(), Dimensions{Width: 10, Height: 100})
	p.PushStyle(style.Normal)
	require.Panics(t, func() { p.IndexVerse(1) })
}

func TestCleanDiscardsUnfinishedParagraphState(t *testing.T) {
	p := NewPainter(unitRegistry(), Dimensions{Width: 10, Height: 100})

	p.PushStyle(style.Normal)
	p.AddText("abc")
	p.Clean()

	// Clean must fully reset the cursor; a fresh paragraph behaves as if
	// nothing had been painted before it.
	p.PushStyle(style.Normal)
	p.AddText("ok")
	p.PopStyle()
	p.PaintParagraph(Left, LineFormat{})

	page := p.Layout().Pages()[0]
	require.Len(t, page, 1)
	require.Equal(t, "ok", page[0].Text)
}

func TestPaintWalksChapterDropCapAndVerseParagraph(t *testing.T) {
	p := NewPainter(unitRegistry(), Dimensions{Width: 40, Height: 100})

	nodes := []book.Node{
		book.Identifier{Code: "GEN"},
		book.ChapterMarker{Number: 1},
		book.Paragraph{Children: []book.ParagraphChild{
			book.Verse{Number: 1},
			book.Line{Text: "hello"},
		}},
	}
	p.Paint(nodes)

	idx := Index{Book: "GEN", Chapter: 1, Verse: 1}
	page, ok := p.Layout().Indices()[idx]
	require.True(t, ok)
	require.Equal(t, 0, page)

	// Drop-cap glyph ("1") plus the paragraph's justified line(s) all land
	// on page 0.
	require.NotEmpty(t, p.Layout().Pages()[0])
}

func TestPaintSkipsNonNormalPoetryViaClean(t *testing.T) {
	p := NewPainter(unitRegistry(), Dimensions{Width: 10, Height: 100})

	nodes := []book.Node{
		book.Poetry{
			Style:    book.PoetryStyle{Kind: book.PoetryOther, Level: 1},
			Children: []book.ParagraphChild{book.Line{Text: "skipped"}},
		},
	}
	require.NotPanics(t, func() { p.Paint(nodes) })
	require.Empty(t, p.Layout().Pages()[0])

	// The engine must still be usable afterward.
	p.PushStyle(style.Normal)
	p.AddText("ok")
	p.PopStyle()
	p.PaintParagraph(Left, LineFormat{})
	require.Len(t, p.Layout().Pages()[0], 1)
}

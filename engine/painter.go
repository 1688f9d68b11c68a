/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package engine

import (
	"strconv"

	"github.com/rowanclarke/versepage/book"
	"github.com/rowanclarke/versepage/common"
	"github.com/rowanclarke/versepage/oracle"
	"github.com/rowanclarke/versepage/style"
)

// Painter is the high-level orchestrator: it walks a parsed book tree,
// driving the Style Registry, Measurement Oracle, Inline Resolver, Writer,
// Unformatted Splitter and Layout through a style stack and a styled-cursor
// list built in document order.
type Painter struct {
	reg    *style.Registry
	layout *Layout
	oracle *oracle.Oracle
	dim    Dimensions

	styleStack []style.ID
	cursor     []CursorEntry

	haveBook, haveChapter bool
	bookCode              string
	chapter               uint16
}

// NewPainter creates a Painter exclusive to one paginate call: one Painter
// instance owns one Layout and is never reused across calls.
func NewPainter(reg *style.Registry, dim Dimensions) *Painter {
	return &Painter{
		reg:    reg,
		layout: NewLayout(reg, dim),
		oracle: oracle.New(reg),
		dim:    dim,
	}
}

// Layout exposes the underlying page manager, e.g. for archiving once
// Paint has walked the whole document.
func (p *Painter) Layout() *Layout {
	return p.layout
}

func (p *Painter) stackTop() style.ID {
	if len(p.styleStack) == 0 {
		return style.Normal
	}
	return p.styleStack[len(p.styleStack)-1]
}

// PushStyle pushes id onto the style stack, pushes the oracle's own
// matching paragraph style, and opens a new styled-cursor entry.
func (p *Painter) PushStyle(id style.ID) {
	p.styleStack = append(p.styleStack, id)
	p.oracle.PushStyle(id)
	p.cursor = append(p.cursor, CursorEntry{UpperBound: p.oracle.Len(), Style: id})
}

// PopStyle is symmetric with PushStyle: it pops the stack, pops the
// oracle, and opens a fresh cursor entry for whichever style is now on
// top: re-emerging a style after a pop always opens a new entry rather
// than reusing the one before the push.
func (p *Painter) PopStyle() {
	if len(p.styleStack) == 0 {
		return
	}
	p.styleStack = p.styleStack[:len(p.styleStack)-1]
	p.oracle.PopStyle()
	p.cursor = append(p.cursor, CursorEntry{UpperBound: p.oracle.Len(), Style: p.stackTop()})
}

// AddText extends the current cursor entry's upper bound, opening a new
// entry first if the top of the cursor list doesn't match the current
// style-stack top.
func (p *Painter) AddText(s string) {
	top := p.stackTop()
	if len(p.cursor) == 0 || p.cursor[len(p.cursor)-1].Style != top {
		p.cursor = append(p.cursor, CursorEntry{UpperBound: p.oracle.Len(), Style: top})
	}
	p.oracle.AddText(s)
	p.cursor[len(p.cursor)-1].UpperBound = p.oracle.Len()
}

// IndexBook records the partial index's book component.
func (p *Painter) IndexBook(code string) {
	p.bookCode = code
	p.haveBook = true
}

// IndexChapter records the partial index's chapter component.
func (p *Painter) IndexChapter(n uint16) {
	p.chapter = n
	p.haveChapter = true
}

// IndexVerse attaches an index{book, chapter, verse=n} to the current
// styled-cursor entry. Absent book/chapter is a precondition violation.
func (p *Painter) IndexVerse(n uint16) {
	if !p.haveBook || !p.haveChapter {
		common.Log.Error("verse index attached with no book/chapter set")
		panic("versepage/engine: verse index attached before book/chapter set")
	}
	if len(p.cursor) == 0 {
		panic("versepage/engine: verse index attached to empty styled-cursor list")
	}
	idx := Index{Book: p.bookCode, Chapter: p.chapter, Verse: n}
	p.cursor[len(p.cursor)-1].AttachedIndex = &idx
}

// resetParagraph clears the per-paragraph state built up by Push/PopStyle
// and AddText. drainLines is false only for paint_drop_cap, whose locked
// line reservations must survive into the paragraph that follows it.
func (p *Painter) resetParagraph(drainLines bool) {
	p.cursor = p.cursor[:0]
	p.styleStack = p.styleStack[:0]
	p.oracle.Reset()
	if drainLines {
		p.layout.DrainLines()
	}
}

// PaintParagraph builds inlines, breaks them into lines, trims, splits into
// same-style groups, and justifies — committing any attached verse index
// the instant its carrier line's page is known.
func (p *Painter) PaintParagraph(format Format, lf LineFormat) {
	if len(p.cursor) == 0 {
		panic("versepage/engine: paint_paragraph with empty styled-cursor list")
	}
	text := p.oracle.Text()
	inlines := ResolveInlines(text, p.cursor, p.oracle, p.reg)
	if len(inlines) == 0 {
		panic("versepage/engine: empty paragraph reached the line breaker")
	}

	ranges := BreakLines(inlines, lf, p.layout)
	trimmed := Trim(inlines, ranges)
	if allEmpty(trimmed) {
		common.Log.Error("paragraph became empty after trim")
		panic("versepage/engine: paragraph became empty after trim")
	}

	groups := SplitUnformatted(inlines, trimmed, p.layout)
	Justify(text, groups, format, p.layout)

	p.commitIndices(len(text), inlines, ranges)
	p.resetParagraph(true)
}

// PaintRegion builds inlines against a disposable sub-layout of height
// regionHeight, trims, splits, then centers the resulting block vertically
// within the region before advancing the main body cursor by the fixed
// region height — decoupling region height from content height. Center is
// only ever used for regions, so there is no format parameter: the caller
// selects a region by calling this instead of PaintParagraph.
func (p *Painter) PaintRegion(regionHeight float64) {
	if len(p.cursor) == 0 {
		panic("versepage/engine: paint_region with empty styled-cursor list")
	}
	text := p.oracle.Text()
	inlines := ResolveInlines(text, p.cursor, p.oracle, p.reg)
	if len(inlines) == 0 {
		panic("versepage/engine: empty region reached the line breaker")
	}

	sub := p.layout.SubLayout(p.layout.BodyWidth(), regionHeight, p.layout.LineHeight())
	ranges := BreakLines(inlines, LineFormat{}, sub)
	trimmed := Trim(inlines, ranges)
	groups := SplitUnformatted(inlines, trimmed, sub)

	p.paintCenteredGroups(text, groups, regionHeight)

	p.resetParagraph(true)
	p.layout.AdvanceBody(regionHeight)
}

// paintCenteredGroups writes every group of a region's broken block,
// horizontally centered per-line (left + line.remaining/2) and vertically
// centered as a whole block within regionHeight.
func (p *Painter) paintCenteredGroups(text []rune, groups []Unformatted, regionHeight float64) {
	if len(groups) == 0 {
		return
	}

	lastLine := 0
	for _, g := range groups {
		if g.LineIdx > lastLine {
			lastLine = g.LineIdx
		}
	}
	contentHeight := float64(lastLine+1) * p.layout.LineHeight()
	verticalOffset := (regionHeight - contentHeight) / 2

	mainTop := p.layout.BodyTop()
	mainLeft := p.layout.BodyLeft()
	page := p.layout.CurrentPage()

	currentLine := -1
	var left float64
	for _, g := range groups {
		if g.LineIdx != currentLine {
			currentLine = g.LineIdx
			left = mainLeft + g.Metrics.Remaining/2
		}
		top := mainTop + verticalOffset + float64(g.LineIdx)*p.layout.LineHeight() + g.TopOffset
		rect := Rectangle{Top: top, Left: left, Width: g.Width, Height: p.layout.LineHeight()}
		p.layout.Write(page, string(text[g.Start:g.End]), rect, g.Style, 0)
		left += g.Width
	}
}

// PaintDropCap paints a single-inline paragraph (the chapter number) as an
// enlarged glyph occupying two body lines, then reserves and locks those
// two lines against further indent mutation so the paragraph that follows
// flows around it.
func (p *Painter) PaintDropCap() {
	if len(p.cursor) == 0 {
		panic("versepage/engine: paint_drop_cap with empty styled-cursor list")
	}
	text := p.oracle.Text()
	inlines := ResolveInlines(text, p.cursor, p.oracle, p.reg)
	if len(inlines) != 1 {
		panic("versepage/engine: paint_drop_cap requires exactly one inline")
	}
	inline := inlines[0]

	height := 2 * p.layout.LineHeight()
	page := p.layout.RequestHeight(height)
	glyphWidth := inline.Width + p.dim.DropCapPadding

	top := p.layout.BodyTop()
	left := p.layout.BodyLeft()
	p.layout.Write(page, string(text[inline.Start:inline.End]),
		Rectangle{Top: top, Left: left, Width: glyphWidth, Height: height}, inline.Style, 0)

	for i := 0; i < 2; i++ {
		line := p.layout.Line(i)
		line.Mutate(glyphWidth, -glyphWidth)
		line.Lock()
	}

	p.resetParagraph(false)
}

// Clean resets paragraph state without painting anything — used for poetry
// markers the engine doesn't render.
func (p *Painter) Clean() {
	p.resetParagraph(true)
}

// commitIndices walks the styled-cursor list; for every entry carrying an
// attached Index, it locates the line the entry's text landed on and
// commits Index→page through the Layout.
func (p *Painter) commitIndices(textLen int, inlines []Inline, ranges []LineRange) {
	prevUpper := 0
	for _, ce := range p.cursor {
		if ce.AttachedIndex != nil {
			charIdx := prevUpper
			if charIdx >= textLen && charIdx > 0 {
				charIdx--
			}
			lineIdx := lineForCharIndex(inlines, ranges, charIdx)
			p.layout.AddIndex(*ce.AttachedIndex, lineIdx)
		}
		prevUpper = ce.UpperBound
	}
}

// lineForCharIndex finds which broken line range covers the inline
// containing charIdx.
func lineForCharIndex(inlines []Inline, ranges []LineRange, charIdx int) int {
	inlineIdx := -1
	for i, inl := range inlines {
		if charIdx >= inl.Start && charIdx < inl.End {
			inlineIdx = i
			break
		}
	}
	if inlineIdx == -1 {
		if len(inlines) == 0 {
			return 0
		}
		inlineIdx = len(inlines) - 1
	}
	for _, r := range ranges {
		if inlineIdx >= r.Start && inlineIdx < r.End {
			return r.LineIdx
		}
	}
	return ranges[len(ranges)-1].LineIdx
}

func allEmpty(ranges []LineRange) bool {
	for _, r := range ranges {
		if r.Start < r.End {
			return false
		}
	}
	return true
}

// Paint walks a parsed book tree, dispatching each node to the paint method
// that matches its kind.
func (p *Painter) Paint(nodes []book.Node) {
	for _, n := range nodes {
		switch v := n.(type) {
		case book.Identifier:
			p.IndexBook(v.Code)
		case book.ChapterMarker:
			p.paintChapter(v)
		case book.Paragraph:
			p.paintParagraphNode(v)
		case book.Poetry:
			p.paintPoetryNode(v)
		case book.Element:
			p.paintElementNode(v)
		}
	}
}

func (p *Painter) paintChapter(c book.ChapterMarker) {
	p.IndexChapter(c.Number)
	p.PushStyle(style.Chapter)
	p.AddText(strconv.Itoa(int(c.Number)))
	p.PopStyle()
	p.PaintDropCap()
}

func (p *Painter) paintParagraphNode(par book.Paragraph) {
	p.PushStyle(style.Normal)
	p.paintChildren(par.Children)
	p.PopStyle()
	p.PaintParagraph(Justified, LineFormat{Head: 20, Tail: 0, Shrink: 0})
}

func (p *Painter) paintPoetryNode(po book.Poetry) {
	if po.Style.Kind != book.PoetryNormal {
		p.Clean()
		return
	}
	p.PushStyle(style.Normal)
	p.paintChildren(po.Children)
	p.PopStyle()
	level := float64(po.Style.Level)
	p.PaintParagraph(Left, LineFormat{Head: 20 * level, Tail: 40, Shrink: 0})
}

func (p *Painter) paintElementNode(el book.Element) {
	switch el.Type {
	case book.ElementHeader:
		p.PushStyle(style.Header)
		p.paintChildren(el.Children)
		p.PopStyle()
		p.PaintRegion(p.dim.HeaderHeight)
	}
}

func (p *Painter) paintChildren(children []book.ParagraphChild) {
	for _, c := range children {
		switch v := c.(type) {
		case book.Verse:
			p.IndexVerse(v.Number)
			p.PushStyle(style.Verse)
			p.AddText(" " + strconv.Itoa(int(v.Number)))
			p.PopStyle()
		case book.Line:
			p.AddText(v.Text)
		case book.Character:
			p.PushStyle(v.Style)
			p.paintChildren(v.Children)
			p.PopStyle()
		}
	}
}

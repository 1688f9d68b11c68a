/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package engine

import "github.com/rowanclarke/versepage/style"

// Line is one entry of a Layout's line queue. Width is
// the remaining available width: initialized from the body width, then
// mutated by indents and drop-cap reservations. A locked Line is immutable
// thereafter but still receives flow text at its frozen Left/Width.
type Line struct {
	Top, Left, Width float64
	Page             int
	Locked           bool
}

// Mutate adjusts Left by dLeft and Width by dWidth, unless the line is
// locked, in which case it is a no-op — this is what lets a drop-cap
// reservation survive the paragraph that flows around it.
func (l *Line) Mutate(dLeft, dWidth float64) {
	if l.Locked {
		return
	}
	l.Left += dLeft
	l.Width += dWidth
}

// Lock forbids further mutation of the line.
func (l *Line) Lock() {
	l.Locked = true
}

// Layout is the pagination engine's page manager: it owns the page vector,
// the body cursor, the line queue (with locking), and the verse→page index.
// The page-vector/draw-context bookkeeping follows the same shape as a PDF
// page list, generalized to fixed-size scripture pages; AddIndex commits a
// verse's page once the line carrying it is fixed, the same "commit once the
// page is known" timing a table of contents uses.
type Layout struct {
	width, height float64
	lineHeight    float64 // of style.Normal; shared by every line this layout creates

	bodyTop, bodyLeft, bodyWidth float64

	lines []*Line
	pages []Page

	indices map[Index]int
	verses  []Index
}

// NewLayout creates the top-level page manager for one paginate call.
func NewLayout(reg *style.Registry, dim Dimensions) *Layout {
	return &Layout{
		width:      dim.Width,
		height:     dim.Height,
		lineHeight: reg.LineHeight(style.Normal),
		bodyWidth:  dim.Width,
		pages:      []Page{{}},
		indices:    make(map[Index]int),
	}
}

// SubLayout creates a disposable child layout used to break and center a
// region's content without mutating the main body cursor. Its own page
// vector is scratch; paint_region never reads SubLayout.Pages.
func (l *Layout) SubLayout(width, height, lineHeight float64) *Layout {
	return &Layout{
		width:      width,
		height:     height,
		lineHeight: lineHeight,
		bodyWidth:  width,
		pages:      []Page{{}},
		indices:    make(map[Index]int),
	}
}

// RequestHeight ensures h more layout units fit below the body cursor,
// pushing a new page and resetting the body cursor if not, and returns the
// current page index.
func (l *Layout) RequestHeight(h float64) int {
	if l.bodyTop+h > l.height {
		l.pages = append(l.pages, Page{})
		l.bodyTop = 0
		l.bodyLeft = 0
		l.bodyWidth = l.width
	}
	return len(l.pages) - 1
}

// NextLine materializes and returns the next line of the queue, advancing
// the body cursor by lineHeight.
func (l *Layout) NextLine() *Line {
	page := l.RequestHeight(l.lineHeight)
	line := &Line{Top: l.bodyTop, Left: l.bodyLeft, Width: l.bodyWidth, Page: page}
	l.lines = append(l.lines, line)
	l.bodyTop += l.lineHeight
	return line
}

// Line extends the line queue up to i, materializing lines lazily — the
// Writer only calls this the first time the greedy walk actually needs
// line i — and returns it.
func (l *Layout) Line(i int) *Line {
	for len(l.lines) <= i {
		l.NextLine()
	}
	return l.lines[i]
}

// WriteLine appends a placement to line lineIdx's page and advances the
// line's Left by width, so a second WriteLine on the same line continues
// immediately after the first (used by the Unformatted Splitter/Justifier
// writing multiple same-style groups per line).
func (l *Layout) WriteLine(lineIdx int, text string, st style.ID, width, wordSpacing, topOffset float64) {
	line := l.Line(lineIdx)
	l.pages[line.Page] = append(l.pages[line.Page], PartialText{
		Text:             text,
		Rect:             Rectangle{Top: line.Top + topOffset, Left: line.Left, Width: width, Height: l.lineHeight},
		Style:            st,
		ExtraWordSpacing: wordSpacing,
	})
	line.Left += width
}

// Write places text unconstrained by the line queue; used for drop-caps and
// centered regions.
func (l *Layout) Write(page int, text string, rect Rectangle, st style.ID, wordSpacing float64) {
	l.pages[page] = append(l.pages[page], PartialText{Text: text, Rect: rect, Style: st, ExtraWordSpacing: wordSpacing})
}

// DrainLines clears the line queue at paragraph end.
func (l *Layout) DrainLines() {
	l.lines = l.lines[:0]
}

// AddIndex records idx → pages[lines[lineIdx].Page]. Each Index is
// emitted at most once into the table.
func (l *Layout) AddIndex(idx Index, lineIdx int) {
	if _, ok := l.indices[idx]; ok {
		return
	}
	l.indices[idx] = l.Line(lineIdx).Page
	l.verses = append(l.verses, idx)
}

// Indices returns the committed verse→page table.
func (l *Layout) Indices() map[Index]int {
	return l.indices
}

// Verses returns every Index emitted, in the order it was committed — the
// archive consumed by nearest-neighbor verse search.
func (l *Layout) Verses() []Index {
	return l.verses
}

// Pages returns the page vector built so far.
func (l *Layout) Pages() []Page {
	return l.pages
}

// CurrentPage returns the index of the page the body cursor currently sits
// on.
func (l *Layout) CurrentPage() int {
	return len(l.pages) - 1
}

// BodyTop returns the body cursor's current vertical offset on its page.
func (l *Layout) BodyTop() float64 {
	return l.bodyTop
}

// BodyLeft returns the body cursor's current horizontal offset.
func (l *Layout) BodyLeft() float64 {
	return l.bodyLeft
}

// BodyWidth returns the body cursor's current available width.
func (l *Layout) BodyWidth() float64 {
	return l.bodyWidth
}

// LineHeight returns the line height every line of this layout shares.
func (l *Layout) LineHeight() float64 {
	return l.lineHeight
}

// AdvanceBody reserves and advances past h layout units without creating a
// line — used by paint_region once its sub-layout's content has been
// centered and written.
func (l *Layout) AdvanceBody(h float64) {
	l.RequestHeight(h)
	l.bodyTop += h
}

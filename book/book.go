/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package book holds the parsed document tree the engine paginates. The
// USFM parser producing this tree lives elsewhere; this package only names
// its shape.
package book

import "github.com/rowanclarke/versepage/style"

// Node is a top-level member of a book: an identifier, a chapter marker, a
// paragraph, a poetry block, or a region element (e.g. a header).
type Node interface {
	isBookNode()
}

// Identifier names the book, e.g. by USFM code ("MAT").
type Identifier struct {
	Code string
}

func (Identifier) isBookNode() {}

// ChapterMarker opens chapter Number; the Painter paints it as a drop-cap.
type ChapterMarker struct {
	Number uint16
}

func (ChapterMarker) isBookNode() {}

// Paragraph is a Justified block of paragraph children.
type Paragraph struct {
	Children []ParagraphChild
}

func (Paragraph) isBookNode() {}

// PoetryKind distinguishes an indented poetry line from any other poetry
// marker the USFM source may carry.
type PoetryKind int

const (
	// PoetryNormal is a q1/q2/... style poetry line at the given Level.
	PoetryNormal PoetryKind = iota
	// PoetryOther is any poetry marker this engine does not render; it is
	// silently skipped.
	PoetryOther
)

// PoetryStyle selects how a Poetry block indents. Level is only meaningful
// when Kind == PoetryNormal.
type PoetryStyle struct {
	Kind  PoetryKind
	Level int
}

// Poetry is a Left-aligned block, indented per Style.
type Poetry struct {
	Style    PoetryStyle
	Children []ParagraphChild
}

func (Poetry) isBookNode() {}

// ElementType enumerates the region elements the Painter understands.
type ElementType int

const (
	// ElementHeader is the book's running header, Centered in a region.
	ElementHeader ElementType = iota
)

// Element is a bounded region (e.g. a book header) laid out independently
// of the body and then centered within a fixed height.
type Element struct {
	Type     ElementType
	Children []ParagraphChild
}

func (Element) isBookNode() {}

// ParagraphChild is a member of a Paragraph, Poetry, or Element: a verse
// marker, a line of plain text, or a nested, differently-styled span.
type ParagraphChild interface {
	isParagraphChild()
}

// Verse opens verse Number; the Painter attaches an Index and inserts a
// " "+number marker rendered in the Verse style.
type Verse struct {
	Number uint16
}

func (Verse) isParagraphChild() {}

// Line is plain text rendered in the enclosing style.
type Line struct {
	Text string
}

func (Line) isParagraphChild() {}

// Character is a nested span rendered in Style, recursing through its own
// children's styles.
type Character struct {
	Style    style.ID
	Children []ParagraphChild
}

func (Character) isParagraphChild() {}

/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package engine

import (
	"unicode"

	"github.com/rowanclarke/versepage/oracle"
	"github.com/rowanclarke/versepage/style"
)

// CursorEntry is one entry of the styled-cursor list the Painter builds
// while appending text: UpperBound is the exclusive upper bound, over the
// paragraph's character buffer, of the styled span this entry describes.
// Re-emerging the same style after a pop opens a new entry rather than
// reusing the previous one, so CursorEntry.Style can be assigned by a
// monotone index walk.
type CursorEntry struct {
	UpperBound int
	Style      style.ID

	// AttachedIndex rides on the cursor entry where it was first attached,
	// carried as in-band metadata. ResolveInlines ignores it; the Painter
	// reads it back to commit a verse index once the
	// carrier run's line — and therefore its page — is known.
	AttachedIndex *Index
}

// ResolveInlines converts the oracle's concatenated character buffer into a
// flat, total partition of Inline runs: adjacent entries differ in style or
// in whitespace class. cursor must be non-empty and its final UpperBound
// must equal len(text); an empty cursor indicates an upstream precondition
// violation and panics.
func ResolveInlines(text []rune, cursor []CursorEntry, o *oracle.Oracle, reg *style.Registry) []Inline {
	if len(cursor) == 0 {
		panic("versepage/engine: empty styled-cursor list")
	}
	if len(text) == 0 {
		return nil
	}

	var inlines []Inline
	cursorIdx := 0
	// A leading CursorEntry can be degenerate (UpperBound == 0), opened by a
	// PushStyle that precedes any AddText; skip past it so curStyle reflects
	// whichever entry actually owns character 0.
	for cursorIdx < len(cursor)-1 && 0 >= cursor[cursorIdx].UpperBound {
		cursorIdx++
	}
	curStyle := cursor[cursorIdx].Style
	curInWord := !unicode.IsSpace(text[0])
	start := 0

	emit := func(end int) {
		if end <= start {
			return
		}
		inlines = append(inlines, Inline{
			Start:        start,
			End:          end,
			IsWhitespace: !curInWord,
			Style:        curStyle,
			Width:        o.Width(start, end),
			TopOffset:    reg.TopOffset(curStyle),
		})
	}

	for i := 1; i < len(text); i++ {
		styleBoundary := false
		for cursorIdx < len(cursor)-1 && i >= cursor[cursorIdx].UpperBound {
			cursorIdx++
			styleBoundary = true
		}
		inWord := !unicode.IsSpace(text[i])
		whitespaceFlip := inWord != curInWord

		if styleBoundary || whitespaceFlip {
			emit(i)
			start = i
			curStyle = cursor[cursorIdx].Style
			curInWord = inWord
		}
	}
	emit(len(text))

	return inlines
}

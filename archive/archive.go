/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package archive serializes a paginated Layout to and from binary Ion, so a
// reader can do nearest-neighbor verse lookup against a paginated book
// without re-running the engine. Uses ion-go's struct-tag marshaling over a
// shared symbol table.
package archive

import (
	"fmt"

	"github.com/amazon-ion/ion-go/ion"

	"github.com/rowanclarke/versepage/common"
	"github.com/rowanclarke/versepage/engine"
	"github.com/rowanclarke/versepage/style"
)

type partialTextRecord struct {
	Text             string  `ion:"text"`
	Top              float64 `ion:"top"`
	Left             float64 `ion:"left"`
	Width            float64 `ion:"width"`
	Height           float64 `ion:"height"`
	Style            int     `ion:"style"`
	ExtraWordSpacing float64 `ion:"word_spacing"`
}

type indexRecord struct {
	Book    string `ion:"book"`
	Chapter uint16 `ion:"chapter"`
	Verse   uint16 `ion:"verse"`
	Page    int    `ion:"page"`
}

type document struct {
	Pages  [][]partialTextRecord `ion:"pages"`
	Verses []indexRecord         `ion:"verses"`
}

// Marshal encodes a Layout's page vector and verse→page index as a single
// binary Ion datagram.
func Marshal(layout *engine.Layout) ([]byte, error) {
	doc := document{Pages: make([][]partialTextRecord, len(layout.Pages()))}

	for i, page := range layout.Pages() {
		records := make([]partialTextRecord, len(page))
		for j, pt := range page {
			records[j] = partialTextRecord{
				Text:             pt.Text,
				Top:              pt.Rect.Top,
				Left:             pt.Rect.Left,
				Width:            pt.Rect.Width,
				Height:           pt.Rect.Height,
				Style:            int(pt.Style),
				ExtraWordSpacing: pt.ExtraWordSpacing,
			}
		}
		doc.Pages[i] = records
	}

	indices := layout.Indices()
	doc.Verses = make([]indexRecord, 0, len(layout.Verses()))
	for _, idx := range layout.Verses() {
		doc.Verses = append(doc.Verses, indexRecord{
			Book:    idx.Book,
			Chapter: idx.Chapter,
			Verse:   idx.Verse,
			Page:    indices[idx],
		})
	}

	lst := ion.NewSymbolTableBuilder().Build()
	data, err := ion.MarshalBinaryLST(doc, lst)
	if err != nil {
		common.Log.Error("archive: marshal failed: %v", err)
		return nil, fmt.Errorf("versepage/archive: marshal: %w", err)
	}
	return data, nil
}

// Document is a decoded archive: the page vector plus the verse→page index,
// in committed order, ready for nearest-neighbor verse search.
type Document struct {
	Pages       []engine.Page
	Verses      []engine.Index
	PageOfVerse map[engine.Index]int
}

// Unmarshal decodes a binary Ion datagram produced by Marshal.
func Unmarshal(data []byte) (*Document, error) {
	var doc document
	if err := ion.Unmarshal(data, &doc); err != nil {
		common.Log.Error("archive: unmarshal failed: %v", err)
		return nil, fmt.Errorf("versepage/archive: unmarshal: %w", err)
	}

	out := &Document{
		Pages:       make([]engine.Page, len(doc.Pages)),
		Verses:      make([]engine.Index, 0, len(doc.Verses)),
		PageOfVerse: make(map[engine.Index]int, len(doc.Verses)),
	}

	for i, records := range doc.Pages {
		page := make(engine.Page, len(records))
		for j, r := range records {
			page[j] = engine.PartialText{
				Text: r.Text,
				Rect: engine.Rectangle{
					Top:    r.Top,
					Left:   r.Left,
					Width:  r.Width,
					Height: r.Height,
				},
				Style:            style.ID(r.Style),
				ExtraWordSpacing: r.ExtraWordSpacing,
			}
		}
		out.Pages[i] = page
	}

	for _, r := range doc.Verses {
		idx := engine.Index{Book: r.Book, Chapter: r.Chapter, Verse: r.Verse}
		out.Verses = append(out.Verses, idx)
		out.PageOfVerse[idx] = r.Page
	}

	return out, nil
}

/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package style

import (
	"bytes"
	"errors"

	"github.com/go-text/typesetting/font"
)

var errEmptyFont = errors.New("empty font data")

// Face is the slice of typeface behavior the engine depends on: line
// metrics for the Style Registry, and a handle the measurement oracle can
// hand to its HarfBuzz shaper. Narrowing go-text/typesetting's *font.Face
// behind this interface keeps style_test.go free of binary TTF fixtures.
type Face interface {
	// Metrics reports ascent and descent scaled to fontSize, both as
	// positive distances from the baseline.
	Metrics(fontSize float64) (ascent, descent float64)

	// GoText exposes the underlying go-text/typesetting face for shaping.
	GoText() *font.Face
}

// goTextFace is the production Face backed by a parsed go-text typeface.
type goTextFace struct {
	face *font.Face
}

// loadFace parses a TrueType/OpenType font from raw bytes.
func loadFace(data []byte) (Face, error) {
	if len(data) == 0 {
		return nil, errEmptyFont
	}
	ft, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &goTextFace{face: &font.Face{Font: ft}}, nil
}

func (f *goTextFace) GoText() *font.Face {
	return f.face
}

// Metrics reports the ascent and descent of the face scaled to fontSize, in
// layout units. Both are returned as positive distances from the baseline,
// matching the convention the rest of this package assumes for
// LinePadding.
func (f *goTextFace) Metrics(fontSize float64) (ascent, descent float64) {
	upem := float64(f.face.Upem())
	if upem == 0 {
		upem = 1000
	}
	extents, ok := f.face.FontHExtents()
	if !ok {
		return fontSize * 0.8, fontSize * 0.2
	}
	scale := fontSize / upem
	return float64(extents.Ascender) * scale, -float64(extents.Descender) * scale
}

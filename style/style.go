/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package style holds the font registry and text-style table shared by
// every paragraph the engine paginates.
package style

import (
	"fmt"

	"github.com/rowanclarke/versepage/common"
)

// ID names one of the closed set of text styles the engine understands.
type ID int

// The engine recognizes exactly these styles. Chapter is synthesized from
// Normal at registration time; see Registry.RegisterStyle.
const (
	Normal ID = iota
	Verse
	Header
	Chapter
)

func (id ID) String() string {
	switch id {
	case Normal:
		return "Normal"
	case Verse:
		return "Verse"
	case Header:
		return "Header"
	case Chapter:
		return "Chapter"
	default:
		return fmt.Sprintf("ID(%d)", int(id))
	}
}

// TextStyle describes how one style is measured and laid out.
type TextStyle struct {
	// FontFamily names a family registered via Registry.RegisterFont.
	FontFamily string

	// FontSize is in layout units.
	FontSize float64

	// LineHeight is a multiplier applied to FontSize to get the line's
	// advance height.
	LineHeight float64

	// LetterSpacing and WordSpacing are additive per-character / per-space
	// offsets in layout units.
	LetterSpacing float64
	WordSpacing   float64
}

// Registry maps style IDs to TextStyles and font families to parsed
// typefaces. It is read-only during pagination and may be shared across
// engines if callers serialize registration.
type Registry struct {
	fonts  map[string]Face
	styles map[ID]TextStyle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts:  make(map[string]Face),
		styles: make(map[ID]TextStyle),
	}
}

// RegisterFont adds a typeface under a family name. fontBytes must be a
// valid TrueType/OpenType font the engine's measurement oracle can load.
func (r *Registry) RegisterFont(family string, fontBytes []byte) error {
	face, err := loadFace(fontBytes)
	if err != nil {
		common.Log.Error("RegisterFont(%s): %v", family, err)
		return fmt.Errorf("versepage/style: invalid font bytes for %q: %w", family, err)
	}
	r.fonts[family] = face
	return nil
}

// Face returns the typeface registered under family, or nil if none.
func (r *Registry) Face(family string) Face {
	return r.fonts[family]
}

// RegisterFace installs an already-constructed Face under family, for
// callers that load or synthesize a typeface themselves rather than
// through RegisterFont.
func (r *Registry) RegisterFace(family string, face Face) {
	r.fonts[family] = face
}

// RegisterStyle installs ts under id. Registering Normal additionally
// synthesizes Chapter as specified: Chapter.FontSize = 2 * Normal.FontSize *
// Normal.LineHeight, and Chapter.LineHeight = 1. A subsequent explicit
// RegisterStyle(Chapter, ...) overrides the synthesized entry.
func (r *Registry) RegisterStyle(id ID, ts TextStyle) {
	r.styles[id] = ts
	if id == Normal {
		r.styles[Chapter] = TextStyle{
			FontFamily:    ts.FontFamily,
			FontSize:      2 * ts.FontSize * ts.LineHeight,
			LineHeight:    1,
			LetterSpacing: ts.LetterSpacing,
			WordSpacing:   ts.WordSpacing,
		}
	}
}

// Style returns the TextStyle registered for id. It panics if id is unknown:
// an unknown style is a precondition violation, not a recoverable error.
func (r *Registry) Style(id ID) TextStyle {
	ts, ok := r.styles[id]
	if !ok {
		common.Log.Error("unknown style id %v", id)
		panic(fmt.Sprintf("versepage/style: unknown style %v", id))
	}
	return ts
}

// LineHeight returns height(id) * font_size(id).
func (r *Registry) LineHeight(id ID) float64 {
	ts := r.Style(id)
	return ts.LineHeight * ts.FontSize
}

// LinePadding returns LineHeight(id) + ascent - descent, using the font
// metrics of id's registered family.
func (r *Registry) LinePadding(id ID) float64 {
	ts := r.Style(id)
	face := r.fonts[ts.FontFamily]
	if face == nil {
		common.Log.Error("unknown font family %q for style %v", ts.FontFamily, id)
		panic(fmt.Sprintf("versepage/style: unknown font family %q", ts.FontFamily))
	}
	ascent, descent := face.Metrics(ts.FontSize)
	return r.LineHeight(id) + ascent - descent
}

// TopOffset vertically centers a Verse run against a Normal baseline: Verse
// returns LinePadding(Normal)/2; every other style returns 0.
func (r *Registry) TopOffset(id ID) float64 {
	if id == Verse {
		return r.LinePadding(Normal) / 2
	}
	return 0
}

/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package engine

import (
	"github.com/go-text/typesetting/font"

	"github.com/rowanclarke/versepage/oracle"
	"github.com/rowanclarke/versepage/style"
)

// zeroMetricsFace reports ascent == descent == 0, so LinePadding(id) ==
// LineHeight(id) exactly — the simplest monospace model to reason about.
type zeroMetricsFace struct{}

func (zeroMetricsFace) Metrics(float64) (ascent, descent float64) { return 0, 0 }
func (zeroMetricsFace) GoText() *font.Face                        { return nil }

// unitRegistry builds a unit-width monospace registry: em=1.0,
// line_height=1.0, for every style. No
// real font is loaded (Width falls back to FontSize layout units per
// rune, matching the "unit-width monospace font" scenarios); a
// zeroMetricsFace stands in purely for LinePadding/TopOffset.
func unitRegistry() *style.Registry {
	r := style.NewRegistry()
	r.RegisterFace("mono", zeroMetricsFace{})
	ts := style.TextStyle{FontFamily: "mono", FontSize: 1, LineHeight: 1}
	r.RegisterStyle(style.Normal, ts)
	r.RegisterStyle(style.Verse, ts)
	r.RegisterStyle(style.Header, ts)
	r.RegisterStyle(style.Chapter, ts) // override the synthesized 2x size
	return r
}

func unitOracle(reg *style.Registry) *oracle.Oracle {
	return oracle.New(reg)
}

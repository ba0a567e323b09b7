// seehuhn.de/go/diagram - render math diagrams as SVG
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package surface implements an extent-tracking drawing surface which
// records drawing commands and emits them as an SVG document.
//
// A Surface is created fresh for every render.  Drawing methods append
// commands to a buffer and grow the running extent of everything drawn so
// far.  The final viewport is only determined when [Surface.Finalize] is
// called, which always yields a viewport containing every drawn item: the
// surface grows to fit its content instead of clipping it.
//
// The surface never fails.  Items with non-finite coordinates are dropped,
// style values are not validated.
//
// A Surface is not safe for concurrent use.
package surface

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/diagram"
	"seehuhn.de/go/diagram/textmetrics"
	"seehuhn.de/go/diagram/theme"
)

// Config holds the settings of a [Surface].
// A nil *Config selects the defaults for all fields.
type Config struct {
	// ChartArea is the nominal chart rectangle used by
	// [Surface.DrawInClippedRegion].  A rectangle with zero width or
	// height disables clipping.
	ChartArea rect.Rect

	// Metrics estimates text widths.  The default is [textmetrics.Approx].
	Metrics textmetrics.Measurer

	// Theme supplies default colors, widths and font sizes.
	// The default is [theme.Default].
	Theme *theme.Theme

	// Precision is the number of decimal places used for coordinates in
	// the SVG output.  Zero selects the default of 2.
	Precision int
}

// ChartClipID is the id of the clipPath definition for the chart area.
const ChartClipID = "chart-area"

// Surface records drawing commands and tracks their extent.
type Surface struct {
	chartArea rect.Rect
	metrics   textmetrics.Measurer
	theme     *theme.Theme
	prec      int

	items []Item

	ext    rect.Rect // extent in output coordinates
	hasExt bool

	defs   []def
	defIDs map[string]bool

	ctm     matrix.Matrix // maps current coordinates to output coordinates
	clip    rect.Rect     // active clip in output coordinates
	hasClip bool
	stack   []frame

	final *Result
}

type def struct {
	id     string
	markup string
}

// frame is the saved state for one level of Push or PushClip.
type frame struct {
	ctm     matrix.Matrix
	clip    rect.Rect
	hasClip bool
	emitted bool // whether a Group item was emitted
}

// New returns a new, empty drawing surface.
func New(cfg *Config) *Surface {
	if cfg == nil {
		cfg = &Config{}
	}
	s := &Surface{
		chartArea: cfg.ChartArea,
		metrics:   cfg.Metrics,
		theme:     cfg.Theme,
		prec:      cfg.Precision,
		defIDs:    make(map[string]bool),
		ctm:       matrix.Identity,
	}
	if s.metrics == nil {
		s.metrics = textmetrics.Approx{}
	}
	if s.theme == nil {
		s.theme = theme.Default
	}
	if s.prec <= 0 {
		s.prec = defaultPrecision
	}
	return s
}

// Theme returns the theme used by the surface.
func (s *Surface) Theme() *theme.Theme {
	return s.theme
}

// Metrics returns the text measurer used by the surface.
func (s *Surface) Metrics() textmetrics.Measurer {
	return s.metrics
}

// Extent returns the bounding box of everything drawn so far, in output
// coordinates.  The second return value is false if nothing has been
// drawn yet.
func (s *Surface) Extent() (rect.Rect, bool) {
	return s.ext, s.hasExt
}

// Depth returns the number of open Push and PushClip levels.
func (s *Surface) Depth() int {
	return len(s.stack)
}

// AddDef registers a reusable definition, for example an arrowhead marker.
// Registering the same id again has no effect.
func (s *Surface) AddDef(id, markup string) {
	if s.defIDs[id] {
		return
	}
	s.defIDs[id] = true
	s.defs = append(s.defs, def{id: id, markup: markup})
}

// HasDef reports whether a definition with the given id has been registered.
func (s *Surface) HasDef(id string) bool {
	return s.defIDs[id]
}

// Push starts a new group whose contents are drawn with t applied in
// addition to the current ambient transform.  Every Push must be matched
// by a call to [Surface.Pop].
func (s *Surface) Push(t Transform) {
	if s.sealed() {
		return
	}
	s.stack = append(s.stack, frame{
		ctm:     s.ctm,
		clip:    s.clip,
		hasClip: s.hasClip,
		emitted: true,
	})
	s.ctm = t.M.Mul(s.ctm)
	s.items = append(s.items, &Group{Transform: &t})
}

// Pop ends the group started by the most recent Push or PushClip and
// restores the ambient transform and clip region in effect before it.
// Calls without a matching Push are ignored.
func (s *Surface) Pop() {
	n := len(s.stack)
	if n == 0 {
		diagram.Logger().Debug("surface: unbalanced Pop ignored")
		return
	}
	f := s.stack[n-1]
	s.stack = s.stack[:n-1]
	s.ctm = f.ctm
	s.clip = f.clip
	s.hasClip = f.hasClip
	if f.emitted {
		s.items = append(s.items, &EndGroup{})
	}
}

// WithTransform draws body with t added to the ambient transform.
// Siblings drawn after WithTransform returns are not affected.
func (s *Surface) WithTransform(t Transform, body func()) {
	s.Push(t)
	body()
	s.Pop()
}

// PushClip starts a group clipped to the chart area from the surface
// configuration.  The chart area is interpreted in the coordinates in
// effect when PushClip is called.  If no chart area is configured, the
// group does not clip.  Every PushClip must be matched by a call to
// [Surface.Pop].
func (s *Surface) PushClip() {
	if s.sealed() {
		return
	}
	f := frame{ctm: s.ctm, clip: s.clip, hasClip: s.hasClip}

	area := normalize(s.chartArea)
	if area.URx > area.LLx && area.URy > area.LLy {
		s.AddDef(ChartClipID, s.clipMarkup(area))
		c := transformRect(s.ctm, area)
		if s.hasClip {
			c = intersect(c, s.clip)
		}
		s.clip = c
		s.hasClip = true
		s.items = append(s.items, &Group{ClipID: ChartClipID, Clip: area})
		f.emitted = true
	}
	s.stack = append(s.stack, f)
}

// DrawInClippedRegion draws body clipped to the chart area, so that data
// series cannot overflow the axes.  Items drawn outside of body, such as
// axis labels, are not clipped.
func (s *Surface) DrawInClippedRegion(body func()) {
	s.PushClip()
	body()
	s.Pop()
}

// sealed reports whether the surface has been finalized, logging the
// dropped call if so.
func (s *Surface) sealed() bool {
	if s.final != nil {
		diagram.Logger().Debug("surface: drawing after Finalize ignored")
		return true
	}
	return false
}

// add appends an item whose bounding box, in the current coordinates,
// is bbox.  Items with non-finite bounds are dropped.
func (s *Surface) add(it Item, bbox rect.Rect) {
	if s.sealed() {
		return
	}
	if !finite(bbox) {
		diagram.Logger().Debug("surface: item with non-finite coordinates dropped")
		return
	}
	s.items = append(s.items, it)

	b := transformRect(s.ctm, bbox)
	if s.hasClip {
		b = intersect(b, s.clip)
		if b.LLx > b.URx || b.LLy > b.URy {
			return // clipped away entirely
		}
	}
	if !s.hasExt {
		s.ext = b
		s.hasExt = true
		return
	}
	s.ext.LLx = min(s.ext.LLx, b.LLx)
	s.ext.LLy = min(s.ext.LLy, b.LLy)
	s.ext.URx = max(s.ext.URx, b.URx)
	s.ext.URy = max(s.ext.URy, b.URy)
}

// Result is the outcome of a render.
type Result struct {
	Body string // SVG markup of all items
	Defs string // SVG markup of all definitions

	// The viewport, in output coordinates.
	ViewportX float64
	ViewportY float64
	Width     float64
	Height    float64

	// Items is the command buffer, for exporters to other formats.
	Items []Item

	prec int
}

// Finalize closes any open groups and computes the viewport as the extent
// of all items grown by padding on every side.  Finalize is meant to be
// called once, as the last operation on the surface.  Further calls return
// the same result and later drawing calls are ignored.
//
// If nothing was drawn, the viewport is the square of side 2·padding
// centered on the origin.
func (s *Surface) Finalize(padding float64) Result {
	if s.final != nil {
		return *s.final
	}
	if len(s.stack) > 0 {
		diagram.Logger().Debug("surface: closing open groups", "count", len(s.stack))
	}
	for len(s.stack) > 0 {
		s.Pop()
	}

	ext := rect.Rect{}
	if s.hasExt {
		ext = s.ext
	}
	res := Result{
		ViewportX: ext.LLx - padding,
		ViewportY: ext.LLy - padding,
		Width:     max(ext.URx-ext.LLx+2*padding, 0),
		Height:    max(ext.URy-ext.LLy+2*padding, 0),
		Items:     s.items,
		prec:      s.prec,
	}
	w := newSVGWriter(s.prec, s.theme)
	for _, it := range s.items {
		w.item(it)
	}
	res.Body = w.String()
	for _, d := range s.defs {
		res.Defs += d.markup
	}

	s.final = &res
	return res
}

// normalize returns r with LL and UR in the right order.
func normalize(r rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(r.LLx, r.URx),
		LLy: min(r.LLy, r.URy),
		URx: max(r.LLx, r.URx),
		URy: max(r.LLy, r.URy),
	}
}

// intersect returns the intersection of a and b.  If the rectangles are
// disjoint, the result has LLx > URx or LLy > URy.
func intersect(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: max(a.LLx, b.LLx),
		LLy: max(a.LLy, b.LLy),
		URx: min(a.URx, b.URx),
		URy: min(a.URy, b.URy),
	}
}

func finite(r rect.Rect) bool {
	for _, v := range [4]float64{r.LLx, r.LLy, r.URx, r.URy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

const defaultPrecision = 2

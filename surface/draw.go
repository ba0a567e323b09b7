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


package surface

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/diagram/geometry"
)

// markerReach is the distance, in units of the stroke width, by which a
// marker may extend beyond the end of a line.
const markerReach = 6

// Line draws a straight line from p0 to p1.
func (s *Surface) Line(p0, p1 vec.Vec2, st Style) {
	b := rect.Rect{
		LLx: min(p0.X, p1.X), LLy: min(p0.Y, p1.Y),
		URx: max(p0.X, p1.X), URy: max(p0.Y, p1.Y),
	}
	s.add(&Line{P0: p0, P1: p1, Style: st}, s.grow(b, st))
}

// Polyline draws an open sequence of connected line segments.
// Calls with fewer than two points are ignored.
func (s *Surface) Polyline(points []vec.Vec2, st Style) {
	if len(points) < 2 {
		return
	}
	b, _ := geometry.Bounds(points)
	s.add(&Polyline{Points: clone(points), Style: st}, s.grow(b, st))
}

// Polygon draws a closed polygon.  No simplicity or convexity is
// required.  Calls with fewer than two points are ignored.
func (s *Surface) Polygon(points []vec.Vec2, st Style) {
	if len(points) < 2 {
		return
	}
	b, _ := geometry.Bounds(points)
	s.add(&Polygon{Points: clone(points), Style: st}, s.grow(b, st))
}

// Circle draws a circle.  The bound is center ± r.
func (s *Surface) Circle(center vec.Vec2, r float64, st Style) {
	r = math.Abs(r)
	b := rect.Rect{
		LLx: center.X - r, LLy: center.Y - r,
		URx: center.X + r, URy: center.Y + r,
	}
	s.add(&Circle{Center: center, R: r, Style: st}, s.grow(b, st))
}

// Ellipse draws an axis-aligned ellipse.
func (s *Surface) Ellipse(center vec.Vec2, rx, ry float64, st Style) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	b := rect.Rect{
		LLx: center.X - rx, LLy: center.Y - ry,
		URx: center.X + rx, URy: center.Y + ry,
	}
	s.add(&Ellipse{Center: center, RX: rx, RY: ry, Style: st}, s.grow(b, st))
}

// Rect draws an axis-aligned rectangle with top-left corner (x, y).
// Negative widths and heights are normalized.
func (s *Surface) Rect(x, y, w, h float64, st Style) {
	s.RoundRect(x, y, w, h, 0, st)
}

// RoundRect draws a rectangle with rounded corners of radius rx.
func (s *Surface) RoundRect(x, y, w, h, rx float64, st Style) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	b := rect.Rect{LLx: x, LLy: y, URx: x + w, URy: y + h}
	s.add(&Rect{X: x, Y: y, W: w, H: h, RX: max(rx, 0), Style: st}, s.grow(b, st))
}

// Path draws a general path.  The bound includes the Bézier control
// points, so that it always contains the curve.  Empty paths are ignored.
func (s *Surface) Path(d *path.Data, st Style) {
	if d == nil || len(d.Coords) == 0 {
		return
	}
	b, _ := geometry.Bounds(d.Coords)
	s.add(&Path{Data: d, Style: st}, s.grow(b, st))
}

// Text draws a text string at the given position and returns its
// estimated bounding box in the current coordinates.  A zero size
// selects the theme's font size.
func (s *Surface) Text(at vec.Vec2, content string, ts TextStyle) rect.Rect {
	if ts.Size <= 0 {
		ts.Size = s.theme.FontSize
	}
	w := s.metrics.Width(content, ts.Size)
	b := TextBox(at, w, ts)
	s.add(&Text{At: at, Content: content, Style: ts, Width: w}, b)
	return b
}

// DrawText draws centered text of the given size, in the theme's text
// color.
func (s *Surface) DrawText(at vec.Vec2, content string, size float64) rect.Rect {
	return s.Text(at, content, TextStyle{
		Size:     size,
		Anchor:   AnchorMiddle,
		Baseline: BaselineMiddle,
	})
}

// TextBox returns the bounding box of a text item with advance width w
// placed at the given position.  The vertical extent depends on the
// baseline, the horizontal extent on the anchor.  Rotated text is boxed
// by the bounding box of its rotated corners.
func TextBox(at vec.Vec2, w float64, ts TextStyle) rect.Rect {
	size := ts.Size
	var b rect.Rect
	switch ts.Anchor {
	case AnchorMiddle:
		b.LLx, b.URx = at.X-w/2, at.X+w/2
	case AnchorEnd:
		b.LLx, b.URx = at.X-w, at.X
	default:
		b.LLx, b.URx = at.X, at.X+w
	}
	switch ts.Baseline {
	case BaselineMiddle:
		b.LLy, b.URy = at.Y-0.5*size, at.Y+0.5*size
	case BaselineHanging:
		b.LLy, b.URy = at.Y, at.Y+size
	default:
		b.LLy, b.URy = at.Y-0.8*size, at.Y+0.2*size
	}
	if ts.Rotate != 0 {
		b = transformRect(Rotate(ts.Rotate, at.X, at.Y).M, b)
	}
	return b
}

// MeasureText returns the estimated box of a text string, as
// [Surface.Text] would draw it, without drawing anything.
func (s *Surface) MeasureText(at vec.Vec2, content string, ts TextStyle) rect.Rect {
	if ts.Size <= 0 {
		ts.Size = s.theme.FontSize
	}
	return TextBox(at, s.metrics.Width(content, ts.Size), ts)
}

// grow enlarges b by half the stroke width of st, plus room for markers.
func (s *Surface) grow(b rect.Rect, st Style) rect.Rect {
	if st.Stroke == "" {
		return b
	}
	sw := s.strokeWidth(st)
	m := sw / 2
	if st.MarkerStart != "" || st.MarkerEnd != "" {
		m = max(m, markerReach*sw)
	}
	b.LLx -= m
	b.LLy -= m
	b.URx += m
	b.URy += m
	return b
}

func (s *Surface) strokeWidth(st Style) float64 {
	if st.StrokeWidth > 0 {
		return st.StrokeWidth
	}
	return s.theme.StrokeWidth
}

func clone(points []vec.Vec2) []vec.Vec2 {
	return append([]vec.Vec2(nil), points...)
}

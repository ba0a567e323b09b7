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


package anchor

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/diagram"
	"seehuhn.de/go/diagram/geometry"
	"seehuhn.de/go/diagram/surface"
)

// rightAngleTol is the tolerance, in radians, for drawing a square
// right-angle marker instead of an arc.
const rightAngleTol = 1e-3

// DrawSegment draws a line between two anchors.  If either anchor is
// unresolved, nothing is drawn and the function returns false.
func DrawSegment(s *surface.Surface, t *Table, from, to Anchor, st surface.Style) bool {
	pts, ok := ResolveAll(t, from, to)
	if !ok {
		skipped("segment")
		return false
	}
	s.Line(pts[0], pts[1], st)
	return true
}

// DrawPoint draws a dot of radius r at an anchor.
func DrawPoint(s *surface.Surface, t *Table, at Anchor, r float64, st surface.Style) bool {
	p, ok := Resolve(at, t)
	if !ok {
		skipped("point")
		return false
	}
	s.Circle(p, r, st)
	return true
}

// DrawAngleMarker marks the angle at vertex between the rays towards a and
// b.  The smaller of the two angles is marked with an arc of the given
// radius; a right angle is marked with a small square instead.
func DrawAngleMarker(s *surface.Surface, t *Table, vertex, a, b Anchor, radius float64, st surface.Style) bool {
	pts, ok := ResolveAll(t, vertex, a, b)
	if !ok {
		skipped("angle marker")
		return false
	}
	c := pts[0]
	da := pts[1].Sub(c)
	db := pts[2].Sub(c)
	la, lb := da.Length(), db.Length()
	if la == 0 || lb == 0 {
		skipped("angle marker")
		return false
	}

	from := math.Atan2(da.Y, da.X)
	sweep := math.Atan2(db.Y, db.X) - from
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	for sweep <= -math.Pi {
		sweep += 2 * math.Pi
	}

	d := &path.Data{}
	if math.Abs(math.Abs(sweep)-math.Pi/2) < rightAngleTol {
		ua := da.Mul(radius / la)
		ub := db.Mul(radius / lb)
		d.MoveTo(c.Add(ua)).LineTo(c.Add(ua).Add(ub)).LineTo(c.Add(ub))
	} else {
		geometry.AppendArc(d, c, radius, from, from+sweep)
	}
	s.Path(d, st)
	return true
}

// DrawLabel draws text at an anchor, displaced by offset, and returns the
// estimated box of the text.
func DrawLabel(s *surface.Surface, t *Table, at Anchor, text string, offset vec.Vec2, ts surface.TextStyle) (rect.Rect, bool) {
	p, ok := Resolve(at, t)
	if !ok {
		skipped("label")
		return rect.Rect{}, false
	}
	return s.Text(p.Add(offset), text, ts), true
}

// DrawFace fills the polygon of a named face.
func DrawFace(s *surface.Surface, t *Table, face string, st surface.Style) bool {
	if t == nil {
		skipped("face")
		return false
	}
	var pts []vec.Vec2
	for _, i := range t.Faces[face] {
		if p, ok := t.Vertex(i); ok {
			pts = append(pts, p)
		}
	}
	if len(pts) < 3 {
		skipped("face")
		return false
	}
	s.Polygon(pts, st)
	return true
}

func skipped(what string) {
	diagram.Logger().Debug("anchor: unresolved, drawing skipped", "item", what)
}

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

package geometry

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// PointInPolygon reports whether p lies inside the closed polygon, using
// the even-odd rule: a horizontal ray from p towards +∞ is intersected with
// every edge, and an odd number of crossings means "inside".
//
// Edges are treated as half-open in y, so a vertex shared by two edges is
// counted once.  Points exactly on the boundary get a consistent but
// otherwise unspecified answer.  Polygons with fewer than three vertices
// contain no points.
func PointInPolygon(p vec.Vec2, poly []vec.Vec2) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// orientation returns +1 if a, b, c make a counter-clockwise turn (y up),
// -1 for a clockwise turn and 0 if the points are colinear.
func orientation(a, b, c vec.Vec2) int {
	v := cross(b.Sub(a), c.Sub(a))
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether p, known to be colinear with a and b, lies
// within the segment's bounding box.
func onSegment(a, b, p vec.Vec2) bool {
	return p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) &&
		p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y)
}

// SegmentsIntersect reports whether the closed segments p1–p2 and q1–q2
// have a point in common.  Touching endpoints and overlapping colinear
// segments count as intersecting.  A zero-length segment behaves like a
// single point.
func SegmentsIntersect(p1, p2, q1, q2 vec.Vec2) bool {
	return segmentsIntersect(p1, p2, q1, q2, orientation)
}

func segmentsIntersect(p1, p2, q1, q2 vec.Vec2, orient func(a, b, c vec.Vec2) int) bool {
	// Segments with disjoint bounding boxes cannot meet.
	if max(p1.X, p2.X) < min(q1.X, q2.X) || max(q1.X, q2.X) < min(p1.X, p2.X) ||
		max(p1.Y, p2.Y) < min(q1.Y, q2.Y) || max(q1.Y, q2.Y) < min(p1.Y, p2.Y) {
		return false
	}

	o1 := orient(p1, p2, q1)
	o2 := orient(p1, p2, q2)
	o3 := orient(q1, q2, p1)
	o4 := orient(q1, q2, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// colinear and endpoint-touching cases
	switch {
	case o1 == 0 && onSegment(p1, p2, q1):
		return true
	case o2 == 0 && onSegment(p1, p2, q2):
		return true
	case o3 == 0 && onSegment(q1, q2, p1):
		return true
	case o4 == 0 && onSegment(q1, q2, p2):
		return true
	}
	return false
}

// RectContains reports whether p lies in the closed rectangle r.
func RectContains(r rect.Rect, p vec.Vec2) bool {
	return p.X >= r.LLx && p.X <= r.URx && p.Y >= r.LLy && p.Y <= r.URy
}

// RectsOverlap reports whether the interiors of a and b intersect.
// Rectangles which only share an edge do not overlap.
func RectsOverlap(a, b rect.Rect) bool {
	return a.LLx < b.URx && b.LLx < a.URx && a.LLy < b.URy && b.LLy < a.URy
}

// SegmentIntersectsRect reports whether the segment a–b meets the
// rectangle r grown by pad on all sides.
func SegmentIntersectsRect(a, b vec.Vec2, r rect.Rect, pad float64) bool {
	r = Inflate(r, pad)

	if max(a.X, b.X) < r.LLx || min(a.X, b.X) > r.URx ||
		max(a.Y, b.Y) < r.LLy || min(a.Y, b.Y) > r.URy {
		return false
	}
	if RectContains(r, a) || RectContains(r, b) {
		return true
	}

	corners := rectCorners(r)
	for i := range corners {
		if SegmentsIntersect(a, b, corners[i], corners[(i+1)%4]) {
			return true
		}
	}
	return false
}

// PolygonIntersectsRect reports whether the closed polygon poly and the
// rectangle r, grown by pad, have a point in common.  This is the case if
// an edge of the polygon crosses the rectangle, a vertex lies inside the
// rectangle, or the rectangle lies entirely inside the polygon.
//
// A polygon with fewer than three vertices is treated as a point or a
// segment.  An empty polygon intersects nothing.
func PolygonIntersectsRect(poly []vec.Vec2, r rect.Rect, pad float64) bool {
	n := len(poly)
	switch n {
	case 0:
		return false
	case 1:
		return RectContains(Inflate(r, pad), poly[0])
	case 2:
		return SegmentIntersectsRect(poly[0], poly[1], r, pad)
	}

	r = Inflate(r, pad)
	for i := range poly {
		if SegmentIntersectsRect(poly[i], poly[(i+1)%n], r, 0) {
			return true
		}
	}
	center := vec.Vec2{X: (r.LLx + r.URx) / 2, Y: (r.LLy + r.URy) / 2}
	return PointInPolygon(center, poly)
}

// rectCorners returns the corners of r in counter-clockwise order (y up).
func rectCorners(r rect.Rect) [4]vec.Vec2 {
	return [4]vec.Vec2{
		{X: r.LLx, Y: r.LLy},
		{X: r.URx, Y: r.LLy},
		{X: r.URx, Y: r.URy},
		{X: r.LLx, Y: r.URy},
	}
}

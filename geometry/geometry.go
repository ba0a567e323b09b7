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

// Package geometry implements the computational geometry used by the
// diagram kernel: point-in-polygon tests, segment and rectangle
// intersection, ray casts against polygon boundaries and the sector walk
// which cuts equal angular slices out of convex polygons.
//
// All functions are total.  Degenerate input (empty point sets, polygons
// with fewer than three vertices, zero-length segments) has a documented
// result and never causes a panic.
package geometry

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Bounds returns the bounding box of the given points.
// The second return value is false if points is empty.
func Bounds(points []vec.Vec2) (rect.Rect, bool) {
	if len(points) == 0 {
		return rect.Rect{}, false
	}
	r := rect.Rect{
		LLx: points[0].X,
		LLy: points[0].Y,
		URx: points[0].X,
		URy: points[0].Y,
	}
	for _, p := range points[1:] {
		r.Add(p.X, p.Y)
	}
	return r, true
}

// Area returns the signed area of the closed polygon, using the shoelace
// formula.  The area is positive if the vertices are in counter-clockwise
// order in a y-up coordinate system.  Polygons with fewer than three
// vertices have area 0.
func Area(poly []vec.Vec2) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	var sum float64
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		sum += poly[j].X*poly[i].Y - poly[i].X*poly[j].Y
	}
	return sum / 2
}

// Centroid returns the mean of the given points.
// The second return value is false if points is empty.
func Centroid(points []vec.Vec2) (vec.Vec2, bool) {
	if len(points) == 0 {
		return vec.Vec2{}, false
	}
	var sum vec.Vec2
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points))), true
}

// RegularPolygon returns the vertices of a regular n-gon with circumradius
// r, in counter-clockwise order (y up).  The first vertex is at angle rot,
// measured in radians.  For n < 3 the result is nil.
func RegularPolygon(center vec.Vec2, r float64, n int, rot float64) []vec.Vec2 {
	if n < 3 {
		return nil
	}
	pts := make([]vec.Vec2, n)
	for i := range n {
		phi := rot + 2*math.Pi*float64(i)/float64(n)
		pts[i] = vec.Vec2{
			X: center.X + r*math.Cos(phi),
			Y: center.Y + r*math.Sin(phi),
		}
	}
	return pts
}

// Inflate returns r grown by pad on all sides.  The result is normalized
// so that LLx <= URx and LLy <= URy.  A negative pad shrinks the
// rectangle; a rectangle shrunk past its center collapses to the center.
func Inflate(r rect.Rect, pad float64) rect.Rect {
	res := rect.Rect{
		LLx: min(r.LLx, r.URx) - pad,
		LLy: min(r.LLy, r.URy) - pad,
		URx: max(r.LLx, r.URx) + pad,
		URy: max(r.LLy, r.URy) + pad,
	}
	if res.LLx > res.URx {
		c := (res.LLx + res.URx) / 2
		res.LLx, res.URx = c, c
	}
	if res.LLy > res.URy {
		c := (res.LLy + res.URy) / 2
		res.LLy, res.URy = c, c
	}
	return res
}

// cross returns the z-component of the cross product a × b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

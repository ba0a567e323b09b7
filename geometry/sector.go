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
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Hit describes where a ray meets a polygon boundary.
type Hit struct {
	Point vec.Vec2 // intersection point
	Edge  int      // the edge runs from vertex Edge to vertex Edge+1 (mod n)
	U     float64  // position along the edge, in [0, 1]
	T     float64  // ray parameter: Point = origin + T·dir
}

// RayHit casts a ray from origin in direction dir and returns the first
// point where it meets the boundary of the closed polygon.  Edges parallel
// to the ray are ignored.  If the ray passes through a vertex, so that two
// edges are hit at the same ray parameter up to rounding, the edge with the
// lower index wins.
//
// The second return value is false if dir is zero, the polygon has fewer
// than three vertices, or the ray misses the polygon.
func RayHit(origin, dir vec.Vec2, poly []vec.Vec2) (Hit, bool) {
	n := len(poly)
	if n < 3 || (dir.X == 0 && dir.Y == 0) {
		return Hit{}, false
	}

	best := Hit{T: math.Inf(1)}
	found := false
	for i := range n {
		a := poly[i]
		e := poly[(i+1)%n].Sub(a)
		denom := cross(dir, e)
		if math.Abs(denom) < parallelThreshold {
			continue
		}
		w := a.Sub(origin)
		t := cross(w, e) / denom
		u := cross(w, dir) / denom
		if t <= hitThreshold || u < -hitThreshold || u > 1+hitThreshold {
			continue
		}
		// Edges are visited in index order, so a hit has to be closer by
		// more than hitThreshold to displace an earlier edge.
		if t < best.T-hitThreshold {
			u = min(max(u, 0), 1)
			best = Hit{
				Point: a.Add(e.Mul(u)),
				Edge:  i,
				U:     u,
				T:     t,
			}
			found = true
		}
	}
	return best, found
}

// Sector cuts an angular slice out of a convex polygon.  Two rays are cast
// from the interior point center, at angles from and to (radians,
// counter-clockwise, y up).  The slice consists of center, the first ray's
// boundary hit, all polygon vertices between the two hits, and the second
// ray's hit.  This is the polygonal counterpart of a circular pie slice.
//
// A sweep of 2π or more returns a copy of the whole polygon in
// counter-clockwise order.  The result is nil if the sweep is not
// positive, the polygon has fewer than three vertices, or one of the rays
// misses the polygon (for example because center lies outside).
func Sector(poly []vec.Vec2, center vec.Vec2, from, to float64) []vec.Vec2 {
	n := len(poly)
	sweep := to - from
	if n < 3 || !(sweep > 0) {
		return nil
	}

	pts := slices.Clone(poly)
	if Area(pts) < 0 {
		slices.Reverse(pts)
	}
	if sweep >= 2*math.Pi-angleThreshold {
		return pts
	}

	h0, ok0 := RayHit(center, direction(from), pts)
	h1, ok1 := RayHit(center, direction(to), pts)
	if !ok0 || !ok1 {
		return nil
	}

	res := []vec.Vec2{center, h0.Point}
	if h0.Edge == h1.Edge && h1.U >= h0.U {
		return append(res, h1.Point)
	}

	// Walk the boundary from the vertex after the first hit up to the start
	// of the edge containing the second hit.
	k := (h0.Edge + 1) % n
	for range n {
		res = append(res, pts[k])
		if k == h1.Edge {
			break
		}
		k = (k + 1) % n
	}
	return append(res, h1.Point)
}

// Sectors partitions a convex polygon into n slices of equal angle around
// the interior point center.  The first slice starts at angle start.
// For n < 1 the result is nil.
func Sectors(poly []vec.Vec2, center vec.Vec2, n int, start float64) [][]vec.Vec2 {
	if n < 1 {
		return nil
	}
	step := 2 * math.Pi / float64(n)
	res := make([][]vec.Vec2, n)
	for i := range n {
		from := start + float64(i)*step
		res[i] = Sector(poly, center, from, from+step)
	}
	return res
}

// direction returns the unit vector at angle phi.
func direction(phi float64) vec.Vec2 {
	return vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}
}

// Numerical tolerances for ray casting.
const (
	// parallelThreshold is the smallest |dir × edge| for which an edge is
	// not considered parallel to the ray.
	parallelThreshold = 1e-12

	// hitThreshold is the slack allowed at the ends of an edge, and the
	// minimum ray parameter, so that rays through vertices are not lost
	// to rounding.
	hitThreshold = 1e-9

	// angleThreshold is the tolerance for recognizing a full turn.
	angleThreshold = 1e-12
)

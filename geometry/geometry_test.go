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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var unitSquare = []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

func TestPointInPolygon(t *testing.T) {
	cases := []struct {
		name string
		p    vec.Vec2
		poly []vec.Vec2
		want bool
	}{
		{"interior", vec.Vec2{X: 5, Y: 5}, unitSquare, true},
		{"near_corner", vec.Vec2{X: 0.1, Y: 9.9}, unitSquare, true},
		{"left", vec.Vec2{X: -1, Y: 5}, unitSquare, false},
		{"right", vec.Vec2{X: 11, Y: 5}, unitSquare, false},
		{"above", vec.Vec2{X: 5, Y: 11}, unitSquare, false},
		{"level_with_vertex", vec.Vec2{X: -5, Y: 0}, unitSquare, false},
		{"two_vertices", vec.Vec2{X: 0, Y: 0}, unitSquare[:2], false},
		{"empty", vec.Vec2{}, nil, false},
		{"concave_notch", vec.Vec2{X: 5, Y: 8},
			[]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 5, Y: 5}, {X: 0, Y: 10}}, false},
		{"concave_body", vec.Vec2{X: 5, Y: 2},
			[]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 5, Y: 5}, {X: 0, Y: 10}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for range 3 {
				if got := PointInPolygon(tc.p, tc.poly); got != tc.want {
					t.Fatalf("PointInPolygon(%v) = %t, want %t", tc.p, got, tc.want)
				}
			}
		})
	}
}

func TestPointInPolygonBoundaryDeterministic(t *testing.T) {
	onEdge := []vec.Vec2{{X: 0, Y: 5}, {X: 10, Y: 5}, {X: 5, Y: 0}, {X: 5, Y: 10}, {X: 0, Y: 0}}
	for _, p := range onEdge {
		first := PointInPolygon(p, unitSquare)
		for range 10 {
			if PointInPolygon(p, unitSquare) != first {
				t.Fatalf("boundary point %v gives inconsistent answers", p)
			}
		}
	}
}

func TestSegmentsIntersect(t *testing.T) {
	v := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	cases := []struct {
		name           string
		p1, p2, q1, q2 vec.Vec2
		want           bool
	}{
		{"proper_cross", v(0, 0), v(10, 10), v(0, 10), v(10, 0), true},
		{"parallel", v(0, 0), v(10, 0), v(0, 1), v(10, 1), false},
		{"t_junction", v(0, 0), v(10, 0), v(5, 0), v(5, 5), true},
		{"shared_endpoint", v(0, 0), v(5, 5), v(5, 5), v(10, 0), true},
		{"colinear_overlap", v(0, 0), v(10, 0), v(5, 0), v(15, 0), true},
		{"colinear_disjoint", v(0, 0), v(1, 0), v(2, 0), v(3, 0), false},
		{"near_miss", v(0, 0), v(10, 0), v(5, 0.1), v(5, 5), false},
		{"point_on_segment", v(5, 0), v(5, 0), v(0, 0), v(10, 0), true},
		{"point_off_segment", v(5, 1), v(5, 1), v(0, 0), v(10, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SegmentsIntersect(tc.p1, tc.p2, tc.q1, tc.q2); got != tc.want {
				t.Errorf("got %t, want %t", got, tc.want)
			}
			if got := SegmentsIntersect(tc.q1, tc.q2, tc.p1, tc.p2); got != tc.want {
				t.Errorf("swapped: got %t, want %t", got, tc.want)
			}
		})
	}
}

func TestSegmentsIntersectBoundingBoxShortCircuit(t *testing.T) {
	calls := 0
	counting := func(a, b, c vec.Vec2) int {
		calls++
		return orientation(a, b, c)
	}

	// bounding boxes are disjoint in x, and separately in y
	pairs := [][4]vec.Vec2{
		{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 3, Y: 1}},
		{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 3}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
	}
	for _, p := range pairs {
		if segmentsIntersect(p[0], p[1], p[2], p[3], counting) {
			t.Errorf("segments %v intersect", p)
		}
	}
	if calls != 0 {
		t.Errorf("orientation test ran %d times for disjoint bounding boxes", calls)
	}

	segmentsIntersect(vec.Vec2{}, vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 0, Y: 2}, vec.Vec2{X: 2, Y: 0}, counting)
	if calls == 0 {
		t.Error("orientation test did not run for overlapping bounding boxes")
	}
}

func TestSegmentIntersectsRect(t *testing.T) {
	r := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	v := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	cases := []struct {
		name string
		a, b vec.Vec2
		pad  float64
		want bool
	}{
		{"inside", v(2, 2), v(3, 3), 0, true},
		{"crossing", v(-5, 5), v(15, 5), 0, true},
		{"one_end_inside", v(5, 5), v(20, 20), 0, true},
		{"outside", v(-5, -5), v(-1, 20), 0, false},
		{"diagonal_miss", v(8, 15), v(15, 8), 0, false},
		{"diagonal_hit", v(5, 15), v(15, 5), 0, true},
		{"miss_without_padding", v(-2, -5), v(-2, 15), 0, false},
		{"hit_with_padding", v(-2, -5), v(-2, 15), 3, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SegmentIntersectsRect(tc.a, tc.b, r, tc.pad); got != tc.want {
				t.Errorf("got %t, want %t", got, tc.want)
			}
		})
	}
}

func TestPolygonIntersectsRect(t *testing.T) {
	tri := []vec.Vec2{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 50, Y: 100}}
	cases := []struct {
		name string
		r    rect.Rect
		pad  float64
		want bool
	}{
		{"contained", rect.Rect{LLx: 45, LLy: 20, URx: 55, URy: 30}, 0, true},
		{"edge_crossing", rect.Rect{LLx: -10, LLy: 40, URx: 30, URy: 50}, 0, true},
		{"vertex_inside", rect.Rect{LLx: 45, LLy: 95, URx: 55, URy: 105}, 0, true},
		{"outside", rect.Rect{LLx: 0, LLy: 80, URx: 10, URy: 90}, 0, false},
		{"outside_padded", rect.Rect{LLx: 0, LLy: 80, URx: 10, URy: 90}, 40, true},
		{"contains_polygon", rect.Rect{LLx: -10, LLy: -10, URx: 110, URy: 110}, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PolygonIntersectsRect(tri, tc.r, tc.pad); got != tc.want {
				t.Errorf("got %t, want %t", got, tc.want)
			}
		})
	}

	if PolygonIntersectsRect(nil, rect.Rect{URx: 1, URy: 1}, 0) {
		t.Error("empty polygon intersects")
	}
}

func TestRectsOverlap(t *testing.T) {
	a := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	if !RectsOverlap(a, rect.Rect{LLx: 5, LLy: 5, URx: 15, URy: 15}) {
		t.Error("overlapping rectangles reported disjoint")
	}
	if RectsOverlap(a, rect.Rect{LLx: 10, LLy: 0, URx: 20, URy: 10}) {
		t.Error("touching rectangles reported overlapping")
	}
}

func TestBoundsAndCentroid(t *testing.T) {
	if _, ok := Bounds(nil); ok {
		t.Error("Bounds(nil) reported ok")
	}
	b, ok := Bounds(unitSquare)
	if !ok || b != (rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}) {
		t.Errorf("Bounds = %v, %t", b, ok)
	}
	b, _ = Bounds([]vec.Vec2{{X: 2, Y: -1}, {X: -3, Y: 4}, {X: 1, Y: 1}})
	if b != (rect.Rect{LLx: -3, LLy: -1, URx: 2, URy: 4}) {
		t.Errorf("Bounds = %v", b)
	}
	c, ok := Centroid(unitSquare)
	if !ok || c != (vec.Vec2{X: 5, Y: 5}) {
		t.Errorf("Centroid = %v, %t", c, ok)
	}
	if a := Area(unitSquare); a != 100 {
		t.Errorf("Area = %g, want 100", a)
	}
}

func TestRayHit(t *testing.T) {
	h, ok := RayHit(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 1, Y: 0}, unitSquare)
	if !ok {
		t.Fatal("ray missed")
	}
	if h.Edge != 1 || math.Abs(h.Point.X-10) > 1e-12 || math.Abs(h.Point.Y-5) > 1e-12 {
		t.Errorf("hit = %+v", h)
	}

	if _, ok := RayHit(vec.Vec2{X: 5, Y: 5}, vec.Vec2{}, unitSquare); ok {
		t.Error("zero direction reported a hit")
	}
	if _, ok := RayHit(vec.Vec2{X: 20, Y: 5}, vec.Vec2{X: 1, Y: 0}, unitSquare); ok {
		t.Error("ray pointing away reported a hit")
	}

	// through a corner
	h, ok = RayHit(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 1, Y: 1}, unitSquare)
	if !ok || math.Abs(h.Point.X-10) > 1e-9 || math.Abs(h.Point.Y-10) > 1e-9 {
		t.Errorf("corner hit = %+v, %t", h, ok)
	}
}

func TestSectorsPentagonArea(t *testing.T) {
	center := vec.Vec2{X: 3, Y: -2}
	pentagon := RegularPolygon(center, 7, 5, 0.3)
	total := Area(pentagon)

	for _, start := range []float64{0, 0.3, 1, math.Pi / 2} {
		sectors := Sectors(pentagon, center, 5, start)
		if len(sectors) != 5 {
			t.Fatalf("got %d sectors", len(sectors))
		}
		var sum float64
		for i, s := range sectors {
			if s == nil {
				t.Fatalf("start %g: sector %d is nil", start, i)
			}
			a := Area(s)
			if a <= 0 {
				t.Errorf("start %g: sector %d has area %g", start, i, a)
			}
			if math.Abs(a-total/5) > 1e-9 && start == 0.3 {
				// with start aligned to a vertex, all slices are congruent
				t.Errorf("sector %d: area %g, want %g", i, a, total/5)
			}
			sum += a
		}
		if math.Abs(sum-total) > 1e-9 {
			t.Errorf("start %g: sector areas sum to %g, want %g", start, sum, total)
		}
	}
}

func TestSectorEdgeCases(t *testing.T) {
	center := vec.Vec2{X: 5, Y: 5}
	if s := Sector(unitSquare, center, 1, 1); s != nil {
		t.Errorf("zero sweep: %v", s)
	}
	if s := Sector(unitSquare[:2], center, 0, 1); s != nil {
		t.Errorf("degenerate polygon: %v", s)
	}
	if s := Sector(unitSquare, vec.Vec2{X: 50, Y: 50}, 0, 1); s != nil {
		t.Errorf("exterior center: %v", s)
	}
	full := Sector(unitSquare, center, 0, 2*math.Pi)
	if math.Abs(Area(full)-100) > 1e-12 {
		t.Errorf("full sweep area = %g", Area(full))
	}

	// clockwise input gives the same slice as counter-clockwise input
	cw := []vec.Vec2{unitSquare[3], unitSquare[2], unitSquare[1], unitSquare[0]}
	a := Area(Sector(unitSquare, center, 0.1, 2))
	b := Area(Sector(cw, center, 0.1, 2))
	if math.Abs(a-b) > 1e-12 {
		t.Errorf("orientation changes area: %g vs %g", a, b)
	}

	// a slice within a single edge, and one wrapping almost all the way
	small := Sector(unitSquare, center, -0.1, 0.1)
	if len(small) != 3 {
		t.Errorf("small slice has %d points", len(small))
	}
	big := Sector(unitSquare, center, 0.1, 2*math.Pi-0.1)
	if math.Abs(Area(small)+Area(big)-100) > 1e-9 {
		t.Errorf("complementary slices: %g + %g", Area(small), Area(big))
	}
}

func TestRayHitVertexTie(t *testing.T) {
	// (10, 10) ends edge 1 and starts edge 2
	h, ok := RayHit(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 1, Y: 1}, unitSquare)
	if !ok || h.Edge != 1 || h.U != 1 {
		t.Errorf("hit = %+v, want edge 1 at its end", h)
	}
	// (0, 0) starts edge 0 and ends edge 3
	h, ok = RayHit(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: -1, Y: -1}, unitSquare)
	if !ok || h.Edge != 0 || h.U != 0 {
		t.Errorf("hit = %+v, want edge 0 at its start", h)
	}
	// rounding makes edge 2 look a hair closer than edge 1
	poly := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10 - 1e-12}, {X: 0, Y: 10}}
	h, ok = RayHit(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 1, Y: 1}, poly)
	if !ok || h.Edge != 1 {
		t.Errorf("hit = %+v, want edge 1", h)
	}
}

func TestAppendArcHugeSweep(t *testing.T) {
	d := PieSlice(vec.Vec2{}, 1, 0, 1e9)
	cubes := 0
	for _, c := range d.Cmds {
		if c == path.CmdCubeTo {
			cubes++
		}
	}
	if cubes == 0 || cubes > 4 {
		t.Errorf("got %d cubic segments, want at most 4", cubes)
	}
	end := d.Coords[len(d.Coords)-1]
	if math.Abs(end.X-1) > 1e-9 || math.Abs(end.Y) > 1e-9 {
		t.Errorf("full circle ends at %v, want (1, 0)", end)
	}
}

func TestAppendArc(t *testing.T) {
	d := PieSlice(vec.Vec2{X: 0, Y: 0}, 10, 0, math.Pi)
	if d.Cmds[0] != path.CmdMoveTo || d.Cmds[len(d.Cmds)-1] != path.CmdClose {
		t.Fatalf("unexpected commands %v", d.Cmds)
	}
	cubes := 0
	for _, c := range d.Cmds {
		if c == path.CmdCubeTo {
			cubes++
		}
	}
	if cubes != 2 {
		t.Errorf("half circle uses %d cubic segments, want 2", cubes)
	}
	end := d.Coords[len(d.Coords)-1]
	if math.Abs(end.X+10) > 1e-9 || math.Abs(end.Y) > 1e-9 {
		t.Errorf("arc ends at %v, want (-10, 0)", end)
	}
}

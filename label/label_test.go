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


package label

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// square returns the square [0,100]×[0,100].
func square() Polygon {
	return Polygon{Points: []vec.Vec2{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}}
}

func TestSearchOutwardClear(t *testing.T) {
	pref := vec.Vec2{X: 150, Y: 50}
	p := SearchOutward(pref, 20, 10, vec.Vec2{X: 1}, square(), nil)
	if p.Pos != pref || p.Steps != 0 || !p.Clear {
		t.Errorf("got %+v, want unmodified preferred position", p)
	}
}

func TestSearchOutwardMoves(t *testing.T) {
	// label centered on the right edge, half inside the square
	pref := vec.Vec2{X: 100, Y: 50}
	p := SearchOutward(pref, 20, 10, vec.Vec2{X: 1}, square(), nil)
	if !p.Clear {
		t.Fatal("no clear position found")
	}
	if p.Pos.X-10 <= 100 {
		t.Errorf("label at %v still overlaps", p.Pos)
	}
	// base 4, step 2: x = 104, 106, 108, 110 overlap, 112 is clear
	if p.Steps != 5 || p.Pos.X != 112 {
		t.Errorf("got %+v", p)
	}
}

func TestSearchOutwardPrefersFewerSteps(t *testing.T) {
	// the preferred position is near the left edge, so that moving
	// "inward" (to the left) clears the square sooner
	pref := vec.Vec2{X: 8, Y: 50}
	p := SearchOutward(pref, 10, 10, vec.Vec2{X: 1}, square(), nil)
	if !p.Clear || p.Pos.X >= pref.X {
		t.Errorf("got %+v, expected a position to the left", p)
	}
}

func TestSearchOutwardTie(t *testing.T) {
	// a thin horizontal bar: up and down need the same number of steps
	bar := Polygon{Points: []vec.Vec2{{X: -50, Y: -1}, {X: 50, Y: -1}, {X: 50, Y: 1}, {X: -50, Y: 1}}}
	p := SearchOutward(vec.Vec2{}, 10, 10, vec.Vec2{Y: 1}, bar, nil)
	if !p.Clear || p.Pos.Y <= 0 {
		t.Errorf("tie not resolved in favour of the given direction: %+v", p)
	}
	p = SearchOutward(vec.Vec2{}, 10, 10, vec.Vec2{Y: -1}, bar, nil)
	if !p.Clear || p.Pos.Y >= 0 {
		t.Errorf("tie not resolved in favour of the given direction: %+v", p)
	}
}

func TestSearchOutwardCap(t *testing.T) {
	huge := Boxes{{LLx: -1e6, LLy: -1e6, URx: 1e6, URy: 1e6}}
	cfg := &SearchConfig{MaxSteps: 7}
	p := SearchOutward(vec.Vec2{}, 10, 10, vec.Vec2{X: 3, Y: 4}, huge, cfg)
	if p.Clear || p.Steps != 7 {
		t.Errorf("got %+v", p)
	}
	// last position tried along the given direction: 4 + 6·2 = 16
	want := vec.Vec2{X: 16 * 0.6, Y: 16 * 0.8}
	if math.Abs(p.Pos.X-want.X) > 1e-9 || math.Abs(p.Pos.Y-want.Y) > 1e-9 {
		t.Errorf("got %v, want %v", p.Pos, want)
	}
}

func TestSearchOutwardDegenerate(t *testing.T) {
	pref := vec.Vec2{X: 50, Y: 50}
	p := SearchOutward(pref, 10, 10, vec.Vec2{}, square(), nil)
	if !p.Clear || p.Pos.X != 50 {
		t.Errorf("zero direction: %+v", p)
	}
	if p := SearchOutward(pref, 10, 10, vec.Vec2{X: 1}, nil, nil); p.Pos != pref {
		t.Errorf("nil obstacle: %+v", p)
	}
	if p := SearchOutward(pref, 10, 10, vec.Vec2{X: math.NaN()}, square(), nil); p.Steps == 0 {
		t.Errorf("NaN direction: %+v", p)
	}
}

func TestRelaxStack(t *testing.T) {
	cases := []struct {
		name  string
		items []StackItem
		gap   float64
		want  []float64
	}{
		{"empty", nil, 2, []float64{}},
		{"no conflict", []StackItem{{10, 4}, {50, 4}}, 2, []float64{10, 50}},
		{"push apart", []StackItem{{20, 10}, {22, 10}}, 2, []float64{20, 32}},
		{"unsorted input", []StackItem{{22, 10}, {20, 10}}, 2, []float64{32, 20}},
		{"clamp low", []StackItem{{-5, 10}}, 0, []float64{5}},
		{"overflow high", []StackItem{{90, 10}, {95, 10}, {99, 10}}, 0, []float64{75, 85, 95}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := RelaxStack(c.items, c.gap, 0, 100)
			if len(got) != len(c.want) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
			for i := range got {
				if math.Abs(got[i]-c.want[i]) > 1e-9 {
					t.Fatalf("got %v, want %v", got, c.want)
				}
			}
		})
	}
}

func TestRelaxStackGaps(t *testing.T) {
	items := make([]StackItem, 12)
	for i := range items {
		items[i] = StackItem{Pref: 40 + float64(i%3), Size: 5}
	}
	pos := RelaxStack(items, 1, 0, 200)
	for i := range items {
		for j := range i {
			if d := math.Abs(pos[i] - pos[j]); d < 6-1e-9 {
				t.Errorf("labels %d and %d only %g apart", i, j, d)
			}
		}
		if pos[i] < 2.5 || pos[i] > 197.5 {
			t.Errorf("label %d at %g outside the axis", i, pos[i])
		}
	}
}

func TestPlacer(t *testing.T) {
	pl := NewPlacer(nil, square())
	a := pl.Place(vec.Vec2{X: 100, Y: 50}, 20, 10, vec.Vec2{X: 1})
	b := pl.Place(vec.Vec2{X: 100, Y: 50}, 20, 10, vec.Vec2{X: 1})
	if !a.Clear || !b.Clear {
		t.Fatal("placement failed")
	}
	if geometryOverlap(a.Box(20, 10), b.Box(20, 10)) {
		t.Errorf("labels overlap: %v %v", a.Pos, b.Pos)
	}
	if len(pl.Placed()) != 2 {
		t.Errorf("got %d placed boxes", len(pl.Placed()))
	}
}

func TestPlaceNear(t *testing.T) {
	pl := NewPlacer(nil)
	anchor := vec.Vec2{X: 0, Y: 0}
	first := pl.PlaceNear(anchor, 10, 4, 1)
	if first.Pos != (vec.Vec2{X: 0, Y: -3}) {
		t.Errorf("first label at %v, want above", first.Pos)
	}
	second := pl.PlaceNear(anchor, 10, 4, 1)
	if second.Pos != (vec.Vec2{X: 0, Y: 3}) {
		t.Errorf("second label at %v, want below", second.Pos)
	}
	for range 10 {
		p := pl.PlaceNear(anchor, 10, 4, 1)
		if !p.Clear {
			t.Errorf("label %v not clear", p.Pos)
		}
	}
	placed := pl.Placed()
	for i := range placed {
		for j := range i {
			if geometryOverlap(placed[i], placed[j]) {
				t.Errorf("labels %d and %d overlap", i, j)
			}
		}
	}
}

func TestEdgeNormal(t *testing.T) {
	n := EdgeNormal(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 5, Y: 5})
	if n != (vec.Vec2{X: 0, Y: -1}) {
		t.Errorf("got %v", n)
	}
	o := Outward(vec.Vec2{}, vec.Vec2{X: 3, Y: 4})
	if math.Abs(o.X-0.6) > 1e-12 || math.Abs(o.Y-0.8) > 1e-12 {
		t.Errorf("got %v", o)
	}
}

func TestEdgeNormalDegenerate(t *testing.T) {
	a := vec.Vec2{X: 3, Y: 4}
	n := EdgeNormal(a, a, vec.Vec2{})
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Y-0.8) > 1e-12 {
		t.Errorf("got %v, want the outward direction", n)
	}
	if o := Outward(a, a); o != (vec.Vec2{}) {
		t.Errorf("got %v, want zero", o)
	}
}

func TestPlacerAddObstacle(t *testing.T) {
	pl := NewPlacer(nil)
	pl.AddObstacle(Boxes{{LLx: -20, LLy: -20, URx: 20, URy: -0.5}})
	p := pl.PlaceNear(vec.Vec2{}, 10, 4, 1)
	if !p.Clear || p.Pos != (vec.Vec2{X: 0, Y: 3}) {
		t.Errorf("got %v, want the position below the anchor", p)
	}
}

func geometryOverlap(a, b rect.Rect) bool {
	return a.LLx < b.URx && b.LLx < a.URx && a.LLy < b.URy && b.LLy < a.URy
}

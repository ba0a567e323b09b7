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


package testcases

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/diagram/geometry"
	"seehuhn.de/go/diagram/label"
	"seehuhn.de/go/diagram/surface"
)

var labelCases = []Case{
	{
		Name:    "pie_stacked_labels",
		Width:   360,
		Height:  240,
		Padding: 5,
		Build: func(s *surface.Surface) {
			pieWithLabels(s, []float64{40, 25, 12, 8, 5, 4, 3, 2, 1})
		},
	},
	{
		Name:    "triangle_outward_labels",
		Width:   240,
		Height:  200,
		Padding: 5,
		Build: func(s *surface.Surface) {
			polygonWithLabels(s, []vec.Vec2{pt(30, 170), pt(210, 170), pt(80, 30)})
		},
	},
	{
		Name:    "pentagon_outward_labels",
		Width:   240,
		Height:  240,
		Padding: 5,
		Build: func(s *surface.Surface) {
			poly := geometry.RegularPolygon(pt(120, 120), 90, 5, -math.Pi/2)
			polygonWithLabels(s, poly)
		},
	},
	{
		Name:    "crowded_points",
		Width:   240,
		Height:  160,
		Padding: 5,
		Build: func(s *surface.Surface) {
			th := s.Theme()
			pts := []vec.Vec2{
				pt(40, 80), pt(50, 85), pt(60, 78), pt(70, 82),
				pt(120, 40), pt(125, 45), pt(200, 120),
			}
			ts := surface.TextStyle{Size: th.SmallFontSize, Anchor: surface.AnchorMiddle, Baseline: surface.BaselineMiddle}
			var dots label.Boxes
			for _, p := range pts {
				dots = append(dots, label.Box(p, 6, 6))
			}
			placer := label.NewPlacer(nil, dots)
			for i, p := range pts {
				s.Circle(p, 3, surface.Style{Fill: th.Color(i)})
				text := fmt.Sprintf("P%d", i+1)
				w := s.Metrics().Width(text, ts.Size)
				pl := placer.PlaceNear(p, w, ts.Size, 2)
				s.Text(pl.Pos, text, ts)
			}
		},
	},
	{
		Name:    "go_regular_boxes",
		Width:   300,
		Height:  160,
		Padding: 5,
		Metrics: goRegular,
		Build: func(s *surface.Surface) {
			th := s.Theme()
			ts := surface.TextStyle{Size: th.FontSize}
			placer := label.NewPlacer(nil)
			y := 30.0
			for i, word := range []string{"iiii", "WWWW", "Diagram", "sin(x) + 1"} {
				at := pt(20, y)
				box := s.MeasureText(at, word, ts)
				s.Rect(box.LLx, box.LLy, box.Dx(), box.Dy(), surface.Stroked(th.Color(i), th.ThinStroke))
				s.Text(at, word, ts)
				placer.AddObstacle(label.Boxes{box})
				y += 2 * th.FontSize
			}

			note := "boxes use Go Regular widths"
			small := surface.TextStyle{Size: th.SmallFontSize, Anchor: surface.AnchorMiddle, Baseline: surface.BaselineMiddle}
			w := s.Metrics().Width(note, small.Size)
			pl := placer.Place(pt(40, 30), w, small.Size, vec.Vec2{X: 1})
			s.Text(pl.Pos, note, small)
		},
	},
}

// pieWithLabels draws a pie chart whose labels are stacked in two columns
// left and right of the pie, joined to their slices by leader lines.
func pieWithLabels(s *surface.Surface, values []float64) {
	th := s.Theme()
	c := pt(180, 120)
	const r = 80
	const column = 40

	total := 0.0
	for _, v := range values {
		total += v
	}

	type side struct {
		idx   []int
		items []label.StackItem
	}
	var left, right side
	mid := make([]vec.Vec2, len(values))
	phi := -math.Pi / 2
	for i, v := range values {
		sweep := 2 * math.Pi * v / total
		s.Path(geometry.PieSlice(c, r, phi, phi+sweep), surface.Filled(th.Color(i), th.Background, th.ThinStroke))

		m := phi + sweep/2
		mid[i] = c.Add(vec.Vec2{X: math.Cos(m), Y: math.Sin(m)}.Mul(r))
		item := label.StackItem{Pref: mid[i].Y, Size: th.SmallFontSize}
		if mid[i].X >= c.X {
			right.idx = append(right.idx, i)
			right.items = append(right.items, item)
		} else {
			left.idx = append(left.idx, i)
			left.items = append(left.items, item)
		}
		phi += sweep
	}

	leader := surface.Stroked(th.Axis, th.ThinStroke)
	for k, sd := range []side{left, right} {
		x := c.X - r - column
		anchor := surface.AnchorEnd
		if k == 1 {
			x = c.X + r + column
			anchor = surface.AnchorStart
		}
		ts := surface.TextStyle{Size: th.SmallFontSize, Anchor: anchor, Baseline: surface.BaselineMiddle}
		ys := label.RelaxStack(sd.items, 2, c.Y-r-20, c.Y+r+20)
		for j, i := range sd.idx {
			end := pt(x, ys[j])
			s.Polyline([]vec.Vec2{mid[i], pt((mid[i].X+x)/2, ys[j]), end}, leader)
			text := fmt.Sprintf("%.0f%%", 100*values[i]/total)
			gap := 3.0
			if k == 0 {
				gap = -gap
			}
			s.Text(end.Add(vec.Vec2{X: gap}), text, ts)
		}
	}
}

// polygonWithLabels draws a polygon with its vertices labelled A, B, C, …
// and its edges labelled with their lengths.  All labels are pushed
// outwards until they clear the polygon and each other.
func polygonWithLabels(s *surface.Surface, poly []vec.Vec2) {
	th := s.Theme()
	s.Polygon(poly, surface.Filled(th.Highlight, th.Stroke, th.StrokeWidth))

	center, _ := geometry.Centroid(poly)
	placer := label.NewPlacer(nil, label.Polygon{Points: poly, Pad: 2})
	ts := surface.TextStyle{Anchor: surface.AnchorMiddle, Baseline: surface.BaselineMiddle}
	small := ts
	small.Size = th.SmallFontSize

	for i, p := range poly {
		text := string(rune('A' + i%26))
		w := s.Metrics().Width(text, th.FontSize)
		pl := placer.Place(p, w, th.FontSize, label.Outward(center, p))
		s.Text(pl.Pos, text, ts)
	}
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		text := fmt.Sprintf("%.0f", b.Sub(a).Length())
		w := s.Metrics().Width(text, small.Size)
		m := a.Add(b).Mul(0.5)
		pl := placer.Place(m, w, small.Size, label.EdgeNormal(a, b, center))
		s.Text(pl.Pos, text, small)
	}
}

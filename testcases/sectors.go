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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/diagram/fit"
	"seehuhn.de/go/diagram/geometry"
	"seehuhn.de/go/diagram/surface"
)

var sectorCases = []Case{
	{
		Name:    "pentagon_two_fifths",
		Width:   200,
		Height:  200,
		Padding: 5,
		Build:   func(s *surface.Surface) { shadedPolygon(s, 5, 2) },
	},
	{
		Name:    "hexagon_five_sixths",
		Width:   200,
		Height:  200,
		Padding: 5,
		Build:   func(s *surface.Surface) { shadedPolygon(s, 6, 5) },
	},
	{
		Name:    "square_quarters",
		Width:   200,
		Height:  200,
		Padding: 5,
		Build: func(s *surface.Surface) {
			th := s.Theme()
			sq := []vec.Vec2{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}
			tr := fit.Compute(sq, 200, 200, 10)
			c := pt(0.5, 0.5)
			for i, sec := range geometry.Sectors(sq, c, 4, math.Pi/4) {
				s.Polygon(tr.ApplyAll(sec), surface.Filled(th.Color(i), th.Stroke, th.ThinStroke))
			}
		},
	},
	{
		Name:    "circle_three_eighths",
		Width:   200,
		Height:  200,
		Padding: 5,
		Build: func(s *surface.Surface) {
			th := s.Theme()
			c := pt(100, 100)
			const r = 80
			for i := range 8 {
				// screen y points down, so angles run clockwise
				from := -math.Pi/2 + float64(i)*math.Pi/4
				st := surface.Filled(th.Background, th.Stroke, th.ThinStroke)
				if i < 3 {
					st.Fill = th.Highlight
				}
				s.Path(geometry.PieSlice(c, r, from, from+math.Pi/4), st)
			}
			s.Circle(c, r, surface.Stroked(th.Stroke, th.StrokeWidth))
		},
	},
}

// shadedPolygon draws a regular n-gon divided into n equal slices around
// its center, with the first k slices shaded.
func shadedPolygon(s *surface.Surface, n, k int) {
	th := s.Theme()
	c := pt(0, 0)
	poly := geometry.RegularPolygon(c, 1, n, math.Pi/2)
	tr := fit.Compute(poly, 200, 200, 10)

	sectors := geometry.Sectors(poly, c, n, math.Pi/2)
	for i, sec := range sectors {
		st := surface.Filled(th.Background, th.Stroke, th.ThinStroke)
		if i < k {
			st.Fill = th.Highlight
		}
		s.Polygon(tr.ApplyAll(sec), st)
	}
	s.Polygon(tr.ApplyAll(poly), surface.Stroked(th.Stroke, th.ThickStroke))
}

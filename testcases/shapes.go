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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/diagram/geometry"
	"seehuhn.de/go/diagram/surface"
)

var shapeCases = []Case{
	{
		Name:    "clock_face",
		Width:   200,
		Height:  200,
		Padding: 10,
		Build:   func(s *surface.Surface) { clockFace(s, 10, 10) },
	},
	{
		Name:    "clock_quarter_past",
		Width:   200,
		Height:  200,
		Padding: 10,
		Build:   func(s *surface.Surface) { clockFace(s, 3, 15) },
	},
	{
		Name:    "regular_polygons",
		Width:   420,
		Height:  80,
		Padding: 5,
		Build: func(s *surface.Surface) {
			th := s.Theme()
			for i, n := range []int{3, 4, 5, 6, 7, 8} {
				c := pt(35+70*float64(i), 40)
				poly := geometry.RegularPolygon(c, 30, n, -math.Pi/2)
				s.Polygon(poly, surface.Filled(th.Color(i), th.Stroke, th.ThinStroke))
				s.DrawText(c, fmt.Sprint(n), th.SmallFontSize)
			}
		},
	},
	{
		Name:    "line_styles",
		Width:   200,
		Height:  120,
		Padding: 5,
		Build: func(s *surface.Surface) {
			caps := []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapRound, graphics.LineCapSquare}
			for i, cp := range caps {
				y := 20 + 30*float64(i)
				st := surface.Stroked("black", 8)
				st.Cap = cp
				s.Line(pt(20, y), pt(120, y), st)
			}
			dashed := surface.Stroked("#555", 2)
			dashed.Dash = []float64{6, 3, 1, 3}
			s.Line(pt(20, 110), pt(180, 110), dashed)

			zigzag := surface.Stroked("#ef4444", 4)
			zigzag.Join = graphics.LineJoinRound
			s.Polyline([]vec.Vec2{pt(140, 10), pt(160, 40), pt(140, 70), pt(160, 100)}, zigzag)
		},
	},
	{
		Name:    "ellipse_and_rects",
		Width:   200,
		Height:  120,
		Padding: 5,
		Build: func(s *surface.Surface) {
			s.RoundRect(10, 10, 80, 50, 8, surface.Filled("#dbeafe", "#1d4ed8", 2))
			s.Ellipse(pt(140, 60), 50, 30, surface.Style{Fill: "#fde68a", Opacity: 0.7})
			s.Rect(60, 40, -40, 60, surface.Style{Stroke: "black", Fill: "#10b981", FillOpacity: 0.5})
		},
	},
}

// clockFace draws a clock showing the given time.  Tick marks and hands
// are drawn upright and rotated into place about the center.
func clockFace(s *surface.Surface, hour, minute int) {
	th := s.Theme()
	c := pt(100, 100)
	const r = 80

	s.Circle(c, r, surface.Filled(th.Background, th.Stroke, th.ThickStroke))
	for i := range 60 {
		length, width := 5.0, th.ThinStroke
		if i%5 == 0 {
			length, width = 10, th.StrokeWidth
		}
		s.WithTransform(surface.Rotate(float64(6*i), c.X, c.Y), func() {
			s.Line(pt(c.X, c.Y-r), pt(c.X, c.Y-r+length), surface.Stroked(th.Stroke, width))
		})
	}
	for h := 1; h <= 12; h++ {
		phi := float64(h) * math.Pi / 6
		p := pt(c.X+62*math.Sin(phi), c.Y-62*math.Cos(phi))
		s.DrawText(p, fmt.Sprint(h), th.FontSize)
	}

	hourDeg := 30*float64(hour%12) + 0.5*float64(minute)
	minuteDeg := 6 * float64(minute)
	hand := func(deg, length, width float64) {
		st := surface.Stroked(th.Stroke, width)
		st.Cap = graphics.LineCapRound
		s.WithTransform(surface.Rotate(deg, c.X, c.Y), func() {
			s.Line(c, pt(c.X, c.Y-length), st)
		})
	}
	hand(hourDeg, 40, 5)
	hand(minuteDeg, 60, 3)
	s.Circle(c, 4, surface.Style{Fill: th.Highlight})
}

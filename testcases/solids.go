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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/diagram/anchor"
	"seehuhn.de/go/diagram/surface"
	"seehuhn.de/go/diagram/wireframe"
)

var solidCases = []Case{
	{
		Name:    "cube_labelled",
		Width:   240,
		Height:  240,
		Padding: 10,
		Build: func(s *surface.Surface) {
			th := s.Theme()
			sol := wireframe.Cube(2)
			t := wireframe.Project(sol, wireframe.DefaultProjection, 240, 240, 30)

			anchor.DrawFace(s, t, "front", surface.Style{Fill: th.Highlight, FillOpacity: 0.5})
			wireframe.Draw(s, t, sol, surface.Stroked(th.Stroke, th.StrokeWidth))

			ts := surface.TextStyle{Size: th.SmallFontSize, Anchor: surface.AnchorMiddle, Baseline: surface.BaselineHanging}
			anchor.DrawLabel(s, t, anchor.EdgeMidpoint{A: 0, B: 1}, "a", vec.Vec2{Y: 6}, ts)
			ts.Anchor = surface.AnchorStart
			ts.Baseline = surface.BaselineMiddle
			anchor.DrawLabel(s, t, anchor.EdgeMidpoint{A: 1, B: 5}, "a", vec.Vec2{X: 6}, ts)

			anchor.DrawAngleMarker(s, t, anchor.Vertex{Index: 1}, anchor.Vertex{Index: 0}, anchor.Vertex{Index: 5}, 12,
				surface.Stroked(th.Stroke, th.ThinStroke))

			ts = surface.TextStyle{Anchor: surface.AnchorMiddle, Baseline: surface.BaselineMiddle}
			anchor.DrawLabel(s, t, anchor.FaceCentroid{Face: "top"}, "A", vec.Vec2{}, ts)
			anchor.DrawPoint(s, t, anchor.Vertex{Index: 6}, 3, surface.Style{Fill: th.Stroke})
		},
	},
	{
		Name:    "cube_diagonal",
		Width:   240,
		Height:  240,
		Padding: 10,
		Build: func(s *surface.Surface) {
			th := s.Theme()
			sol := wireframe.Cube(2)
			t := wireframe.Project(sol, wireframe.DefaultProjection, 240, 240, 20)
			wireframe.Draw(s, t, sol, surface.Style{})

			diag := surface.Stroked(th.Color(3), th.StrokeWidth)
			anchor.DrawSegment(s, t, anchor.Vertex{Index: 0}, anchor.Vertex{Index: 6}, diag)
			anchor.DrawSegment(s, t, anchor.Vertex{Index: 0}, anchor.Vertex{Index: 2}, diag)
			anchor.DrawPoint(s, t, anchor.EdgePoint{A: 0, B: 6, T: 0.5}, 3, surface.Style{Fill: th.Color(3)})
		},
	},
	{
		Name:    "square_pyramid",
		Width:   240,
		Height:  240,
		Padding: 10,
		Build: func(s *surface.Surface) {
			th := s.Theme()
			sol := wireframe.Pyramid(4, 1, 1.5)
			t := wireframe.Project(sol, wireframe.Projection{Yaw: 20, Pitch: 15}, 240, 240, 20)
			wireframe.Draw(s, t, sol, surface.Style{})

			height := surface.Stroked(th.Axis, th.ThinStroke)
			height.Dash = []float64{2, 2}
			anchor.DrawSegment(s, t, anchor.Vertex{Index: 4}, anchor.FaceCentroid{Face: "base"}, height)
			anchor.DrawLabel(s, t, anchor.EdgePoint{A: 4, B: 0, T: 0.4}, "h", vec.Vec2{X: -8},
				surface.TextStyle{Anchor: surface.AnchorEnd, Baseline: surface.BaselineMiddle})
		},
	},
	{
		Name:    "hexagonal_prism",
		Width:   240,
		Height:  240,
		Padding: 10,
		Build: func(s *surface.Surface) {
			th := s.Theme()
			sol := wireframe.Prism(6, 1, 2)
			t := wireframe.Project(sol, wireframe.DefaultProjection, 240, 240, 20)
			anchor.DrawFace(s, t, "top", surface.Style{Fill: th.Color(2), FillOpacity: 0.4})
			wireframe.Draw(s, t, sol, surface.Stroked(th.Stroke, th.StrokeWidth))
		},
	},
}

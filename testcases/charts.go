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
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/diagram/fit"
	"seehuhn.de/go/diagram/surface"
)

// chartArea is the plot region used by all chart cases.
var chartArea = rect.Rect{LLx: 40, LLy: 20, URx: 300, URy: 180}

var chartCases = []Case{
	{
		Name:      "box_plot",
		Width:     320,
		Height:    220,
		Padding:   5,
		ChartArea: chartArea,
		Build: func(s *surface.Surface) {
			boxPlot(s, [][]float64{
				{2, 3, 3.5, 4, 4.2, 5, 6.5},
				{1, 2.5, 3, 3.2, 4, 4.1, 9},
				{3, 4, 4.5, 5, 5.5, 6, 7},
			}, 0, 8)
		},
	},
	{
		Name:      "scatter_trend",
		Width:     320,
		Height:    220,
		Padding:   5,
		ChartArea: chartArea,
		Build: func(s *surface.Surface) {
			scatter(s, []vec.Vec2{
				pt(1, 2.1), pt(2, 2.9), pt(3, 4.2), pt(4, 4.8),
				pt(5, 6.1), pt(6, 6.8), pt(7, 8.3), pt(8, 8.9),
			})
		},
	},
}

// axes draws the x- and y-axis along the bottom and left edge of the chart
// area, with arrowheads at their ends.
func axes(s *surface.Surface) {
	th := s.Theme()
	st := surface.Stroked(th.Axis, th.StrokeWidth)
	st.MarkerEnd = s.Arrowhead(th.Axis)
	s.Line(pt(chartArea.LLx, chartArea.URy), pt(chartArea.URx+10, chartArea.URy), st)
	s.Line(pt(chartArea.LLx, chartArea.URy), pt(chartArea.LLx, chartArea.LLy-10), st)
}

// boxPlot draws one box per sample.  The value axis covers [lo, hi];
// whiskers reaching beyond this range are cut off at the chart area.
func boxPlot(s *surface.Surface, samples [][]float64, lo, hi float64) {
	th := s.Theme()
	h := chartArea.URy - chartArea.LLy
	y := func(v float64) float64 { return chartArea.URy - (v-lo)/(hi-lo)*h }
	slot := (chartArea.URx - chartArea.LLx) / float64(len(samples))

	grid := surface.Stroked(th.Grid, th.ThinStroke)
	ts := surface.TextStyle{Size: th.SmallFontSize, Anchor: surface.AnchorEnd, Baseline: surface.BaselineMiddle}
	for v := lo; v <= hi; v += 2 {
		s.Line(pt(chartArea.LLx, y(v)), pt(chartArea.URx, y(v)), grid)
		s.Text(pt(chartArea.LLx-4, y(v)), fmt.Sprint(v), ts)
	}

	s.DrawInClippedRegion(func() {
		for i, sample := range samples {
			q := quartiles(sample)
			cx := chartArea.LLx + (float64(i)+0.5)*slot
			bw := slot / 3
			st := surface.Filled(th.Color(i), th.Stroke, th.ThinStroke)
			st.FillOpacity = 0.6
			s.Line(pt(cx, y(q[0])), pt(cx, y(q[4])), surface.Stroked(th.Stroke, th.ThinStroke))
			s.Rect(cx-bw/2, y(q[3]), bw, y(q[1])-y(q[3]), st)
			s.Line(pt(cx-bw/2, y(q[2])), pt(cx+bw/2, y(q[2])), surface.Stroked(th.Stroke, th.StrokeWidth))
		}
		// an upper whisker beyond the plotted range
		s.Line(pt(chartArea.URx-20, y(hi-1)), pt(chartArea.URx-20, y(hi+3)), surface.Stroked(th.Highlight, th.ThickStroke))
	})

	ts = surface.TextStyle{Size: th.SmallFontSize, Anchor: surface.AnchorMiddle, Baseline: surface.BaselineHanging}
	for i := range samples {
		cx := chartArea.LLx + (float64(i)+0.5)*slot
		s.Text(pt(cx, chartArea.URy+6), fmt.Sprintf("S%d", i+1), ts)
	}
	axes(s)
}

// quartiles returns the minimum, the three quartiles and the maximum of a
// non-empty sample.
func quartiles(sample []float64) [5]float64 {
	x := slices.Sorted(slices.Values(sample))
	at := func(p float64) float64 {
		f := p * float64(len(x)-1)
		i := int(f)
		if i+1 >= len(x) {
			return x[len(x)-1]
		}
		return x[i] + (f-float64(i))*(x[i+1]-x[i])
	}
	return [5]float64{x[0], at(0.25), at(0.5), at(0.75), x[len(x)-1]}
}

// scatter plots points given in y-up data coordinates, together with a
// least-squares line which is clipped to the chart area.
func scatter(s *surface.Surface, data []vec.Vec2) {
	th := s.Theme()
	w := chartArea.URx - chartArea.LLx
	h := chartArea.URy - chartArea.LLy
	tr := fit.Compute(data, w, h, 10)

	toChart := surface.Translate(chartArea.LLx, chartArea.LLy)

	slope, icept := leastSquares(data)
	x0, x1 := data[0].X-2, data[len(data)-1].X+2
	trend := surface.Stroked(th.Color(3), th.StrokeWidth)
	trend.Dash = []float64{6, 4}
	s.DrawInClippedRegion(func() {
		s.WithTransform(toChart, func() {
			s.Line(tr.Apply(pt(x0, slope*x0+icept)), tr.Apply(pt(x1, slope*x1+icept)), trend)
		})
	})

	s.WithTransform(toChart, func() {
		for _, p := range tr.ApplyAll(data) {
			s.Circle(p, 4, surface.Filled(th.Color(0), th.Background, th.ThinStroke))
		}
	})
	axes(s)
}

func leastSquares(data []vec.Vec2) (slope, icept float64) {
	n := float64(len(data))
	var sx, sy, sxx, sxy float64
	for _, p := range data {
		sx += p.X
		sy += p.Y
		sxx += p.X * p.X
		sxy += p.X * p.Y
	}
	den := n*sxx - sx*sx
	if den == 0 {
		return 0, sy / n
	}
	slope = (n*sxy - sx*sy) / den
	return slope, (sy - slope*sx) / n
}

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


// Package testcases holds a catalogue of small diagrams built on the
// rendering kernel.  The diagrams are used by the tests of the kernel and
// by the export command, which writes them in all supported formats.
package testcases

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/diagram/surface"
	"seehuhn.de/go/diagram/textmetrics"
)

// Case is a single diagram.
type Case struct {
	Name string // lowercase a-z and _ only

	// Width and Height give the nominal size of the diagram.  The final
	// viewport grows to fit the content.
	Width, Height float64

	// Padding is added around the content by Finalize.
	Padding float64

	// ChartArea is the clip rectangle for clipped regions, if any.
	ChartArea rect.Rect

	// Metrics estimates text widths.  Nil selects the surface default.
	Metrics textmetrics.Measurer

	// Build draws the diagram.
	Build func(s *surface.Surface)
}

// Render draws a case on a fresh surface and finalizes it.
func Render(c Case) surface.Result {
	s := surface.New(&surface.Config{ChartArea: c.ChartArea, Metrics: c.Metrics})
	c.Build(s)
	return s.Finalize(c.Padding)
}

// goRegular holds the metrics of the Go Regular font, or nil if the font
// could not be parsed.
var goRegular = func() textmetrics.Measurer {
	face, err := textmetrics.NewGoRegular()
	if err != nil {
		return nil
	}
	return face
}()

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

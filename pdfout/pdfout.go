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


// Package pdfout writes finalized diagrams as single-page PDF files.
//
// Colors are reduced to gray levels.  Text and clip regions are not
// represented in the PDF output.
package pdfout

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/diagram"
	"seehuhn.de/go/diagram/geometry"
	"seehuhn.de/go/diagram/surface"
	"seehuhn.de/go/diagram/theme"
)

// Write stores the diagram as a PDF file.  One unit of the viewport
// becomes one PDF point.
func Write(res *surface.Result, fileName string) error {
	w := max(res.Width, 1)
	h := max(res.Height, 1)
	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("pdfout: %w", err)
	}

	// The diagram has y pointing down, with the viewport origin at the
	// top left of the page.
	page.Transform(matrix.Translate(-res.ViewportX, -res.ViewportY).Scale(1, -1).Translate(0, h))

	wr := &writer{page: page, ctm: matrix.Identity}
	for _, it := range res.Items {
		wr.item(it)
	}
	if wr.skipped > 0 {
		diagram.Logger().Debug("pdfout: items not represented", "count", wr.skipped)
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("pdfout: %w", err)
	}
	return nil
}

// writer emits surface items onto a PDF page.  Group transforms are applied
// to the coordinates before they are written.
type writer struct {
	page    *document.Page
	ctm     matrix.Matrix
	stack   []matrix.Matrix
	skipped int
}

func (w *writer) item(it surface.Item) {
	switch it := it.(type) {
	case *surface.Group:
		w.stack = append(w.stack, w.ctm)
		if it.Transform != nil {
			w.ctm = it.Transform.M.Mul(w.ctm)
		}
		if it.ClipID != "" {
			w.skipped++
		}
	case *surface.EndGroup:
		if n := len(w.stack); n > 0 {
			w.ctm = w.stack[n-1]
			w.stack = w.stack[:n-1]
		}
	case *surface.Line:
		d := (&path.Data{}).MoveTo(it.P0).LineTo(it.P1)
		w.draw(d, it.Style, false)
	case *surface.Polyline:
		w.draw(polyline(it.Points), it.Style, true)
	case *surface.Polygon:
		w.draw(geometry.PolygonPath(it.Points), it.Style, true)
	case *surface.Circle:
		w.draw(geometry.EllipsePath(it.Center, it.R, it.R), it.Style, true)
	case *surface.Ellipse:
		w.draw(geometry.EllipsePath(it.Center, it.RX, it.RY), it.Style, true)
	case *surface.Rect:
		pts := []vec.Vec2{
			{X: it.X, Y: it.Y}, {X: it.X + it.W, Y: it.Y},
			{X: it.X + it.W, Y: it.Y + it.H}, {X: it.X, Y: it.Y + it.H},
		}
		w.draw(geometry.PolygonPath(pts), it.Style, true)
	case *surface.Path:
		w.draw(it.Data, it.Style, true)
	case *surface.Text:
		w.skipped++
	}
}

// draw fills and then strokes d.  Open shapes are only filled if
// fillable is set.
func (w *writer) draw(d *path.Data, st surface.Style, fillable bool) {
	if fillable && st.Fill != "" {
		if g, ok := gray(st.Fill); ok {
			w.page.SetFillColor(color.DeviceGray(g))
			w.emitPath(d)
			if st.EvenOdd {
				w.page.FillEvenOdd()
			} else {
				w.page.Fill()
			}
		}
	}
	if st.Stroke == "" {
		return
	}
	g, ok := gray(st.Stroke)
	if !ok {
		return
	}
	sw := st.StrokeWidth
	if sw <= 0 {
		sw = theme.Default.StrokeWidth
	}
	scale := math.Sqrt(math.Abs(w.ctm[0]*w.ctm[3] - w.ctm[1]*w.ctm[2]))
	w.page.SetStrokeColor(color.DeviceGray(g))
	w.page.SetLineWidth(sw * scale)
	w.page.SetLineCap(st.Cap)
	w.page.SetLineJoin(st.Join)
	if len(st.Dash) > 0 {
		dash := make([]float64, len(st.Dash))
		for i, v := range st.Dash {
			dash[i] = v * scale
		}
		w.page.SetLineDash(dash, 0)
	} else {
		w.page.SetLineDash(nil, 0)
	}
	w.emitPath(d)
	w.page.Stroke()
}

// emitPath writes the path construction operators for d, mapped through
// the current transformation.
func (w *writer) emitPath(d *path.Data) {
	for cmd, pts := range d.Iter().Transform(w.ctm).ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			w.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			w.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			w.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			w.page.ClosePath()
		}
	}
}

func polyline(points []vec.Vec2) *path.Data {
	d := &path.Data{}
	for i, p := range points {
		if i == 0 {
			d.MoveTo(p)
		} else {
			d.LineTo(p)
		}
	}
	return d
}

// gray converts a color to a gray level between 0 (black) and 1 (white).
func gray(s string) (float64, bool) {
	c, ok := theme.ParseColor(s)
	if !ok {
		return 0, false
	}
	return theme.Luminance(c), true
}

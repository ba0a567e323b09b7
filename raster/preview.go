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


package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/diagram"
	"seehuhn.de/go/diagram/geometry"
	"seehuhn.de/go/diagram/surface"
	"seehuhn.de/go/diagram/theme"
)

// Options control [Preview].
// A nil *Options selects the defaults.
type Options struct {
	// Scale is the number of pixels per unit of the viewport.
	// The default is 1.
	Scale float64

	// Flatness is the curve flattening tolerance in pixels.
	// The default is 0.25.
	Flatness float64

	// StrokeWidth is used for items which do not set a stroke width.
	// The default is the width of [theme.Default].
	StrokeWidth float64
}

// maxPixels limits the size of preview images.
const maxPixels = 1 << 26

// Preview renders a finalized diagram as a grayscale image on a white
// background.  Colors are converted to their luminance.  Strokes are drawn
// with round joins, dash patterns are honoured.  Text is shown as the
// outline of its estimated box, since no glyphs are available.
func Preview(res *surface.Result, opt *Options) *image.Gray {
	scale, flat, sw := 1.0, defaultFlatness, theme.Default.StrokeWidth
	if opt != nil {
		if opt.Scale > 0 {
			scale = opt.Scale
		}
		if opt.Flatness > 0 {
			flat = opt.Flatness
		}
		if opt.StrokeWidth > 0 {
			sw = opt.StrokeWidth
		}
	}

	fw := max(math.Ceil(res.Width*scale), 1)
	fh := max(math.Ceil(res.Height*scale), 1)
	if fw*fh > maxPixels {
		scale *= math.Sqrt(maxPixels / (fw * fh))
		fw = max(math.Floor(res.Width*scale), 1)
		fh = min(max(math.Floor(res.Height*scale), 1), maxPixels)
		fw = min(fw, math.Floor(maxPixels/fh))
		diagram.Logger().Debug("raster: preview scaled down", "scale", scale)
	}
	w, h := int(fw), int(fh)

	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	full := rect.Rect{URx: float64(w), URy: float64(h)}
	p := &painter{
		img: img,
		r:   NewRasterizer(full),
		sw:  sw,
		ctm: matrix.Translate(-res.ViewportX, -res.ViewportY).Scale(scale, scale),
	}
	p.r.Flatness = flat
	p.clip = full
	for _, it := range res.Items {
		p.item(it)
	}
	return img
}

// WritePNG encodes img as a PNG file.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encoding PNG: %w", err)
	}
	return nil
}

type painterState struct {
	ctm  matrix.Matrix
	clip rect.Rect
}

// painter draws surface items into a grayscale image.
type painter struct {
	img   *image.Gray
	r     *Rasterizer
	sw    float64
	ctm   matrix.Matrix
	clip  rect.Rect
	stack []painterState
}

func (p *painter) item(it surface.Item) {
	switch it := it.(type) {
	case *surface.Group:
		p.stack = append(p.stack, painterState{ctm: p.ctm, clip: p.clip})
		if it.ClipID != "" {
			c := deviceBox(p.ctm, it.Clip)
			p.clip = rect.Rect{
				LLx: max(p.clip.LLx, c.LLx), LLy: max(p.clip.LLy, c.LLy),
				URx: min(p.clip.URx, c.URx), URy: min(p.clip.URy, c.URy),
			}
		}
		if it.Transform != nil {
			p.ctm = it.Transform.M.Mul(p.ctm)
		}
	case *surface.EndGroup:
		if n := len(p.stack); n > 0 {
			p.ctm, p.clip = p.stack[n-1].ctm, p.stack[n-1].clip
			p.stack = p.stack[:n-1]
		}
	case *surface.Line:
		p.stroke([]vec.Vec2{it.P0, it.P1}, false, it.Style)
	case *surface.Polyline:
		p.shape(geometry.PolygonPath(it.Points), it.Points, false, it.Style)
	case *surface.Polygon:
		p.shape(geometry.PolygonPath(it.Points), it.Points, true, it.Style)
	case *surface.Circle:
		d := geometry.EllipsePath(it.Center, it.R, it.R)
		p.shape(d, flatten(d, p.tol()), true, it.Style)
	case *surface.Ellipse:
		d := geometry.EllipsePath(it.Center, it.RX, it.RY)
		p.shape(d, flatten(d, p.tol()), true, it.Style)
	case *surface.Rect:
		pts := []vec.Vec2{
			{X: it.X, Y: it.Y}, {X: it.X + it.W, Y: it.Y},
			{X: it.X + it.W, Y: it.Y + it.H}, {X: it.X, Y: it.Y + it.H},
		}
		p.shape(geometry.PolygonPath(pts), pts, true, it.Style)
	case *surface.Path:
		p.path(it.Data, it.Style)
	case *surface.Text:
		p.text(it)
	}
}

// shape fills d, if the style has a fill, and then strokes the outline.
func (p *painter) shape(d *path.Data, outline []vec.Vec2, closed bool, st surface.Style) {
	if st.Fill != "" {
		p.fill(d, st.Fill, alpha(st.Opacity)*alpha(st.FillOpacity), st.EvenOdd)
	}
	p.stroke(outline, closed, st)
}

// path fills and strokes a general path, one subpath at a time.
func (p *painter) path(d *path.Data, st surface.Style) {
	if st.Fill != "" {
		p.fill(d, st.Fill, alpha(st.Opacity)*alpha(st.FillOpacity), st.EvenOdd)
	}
	if st.Stroke == "" {
		return
	}
	for _, sub := range subpaths(d, p.tol()) {
		p.stroke(sub.points, sub.closed, st)
	}
}

func (p *painter) fill(d *path.Data, color string, a float64, evenOdd bool) {
	ink, ok := inkLevel(color)
	if !ok || a <= 0 {
		return
	}
	p.r.CTM = p.ctm
	p.r.Clip = p.clip
	emit := p.blend(ink, a)
	if evenOdd {
		p.r.FillEvenOdd(d, emit)
	} else {
		p.r.FillNonZero(d, emit)
	}
}

// stroke draws the outline given by pts.
func (p *painter) stroke(pts []vec.Vec2, closed bool, st surface.Style) {
	if st.Stroke == "" || len(pts) == 0 {
		return
	}
	w := st.StrokeWidth
	if w <= 0 {
		w = p.sw
	}
	if closed {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	var d *path.Data
	for _, run := range dash(pts, st.Dash) {
		d = strokeOutline(d, run, w/2)
	}
	if d == nil {
		return
	}
	p.fill(d, st.Stroke, alpha(st.Opacity), false)
}

// text outlines the estimated box of a text item.
func (p *painter) text(t *surface.Text) {
	ts := t.Style
	rot := ts.Rotate
	ts.Rotate = 0
	b := surface.TextBox(t.At, t.Width, ts)
	corners := []vec.Vec2{
		{X: b.LLx, Y: b.LLy}, {X: b.URx, Y: b.LLy},
		{X: b.URx, Y: b.URy}, {X: b.LLx, Y: b.URy},
	}
	if rot != 0 {
		tr := surface.Rotate(rot, t.At.X, t.At.Y)
		for i, c := range corners {
			corners[i] = tr.Apply(c)
		}
	}
	fill := ts.Fill
	if fill == "" {
		fill = theme.Default.Text
	}
	p.stroke(corners, true, surface.Style{Stroke: fill, StrokeWidth: max(ts.Size/14, 0.5)})
}

// tol returns the flattening tolerance in the current user space.
func (p *painter) tol() float64 {
	det := math.Abs(p.ctm[0]*p.ctm[3] - p.ctm[1]*p.ctm[2])
	if det == 0 || math.IsNaN(det) {
		return p.r.Flatness
	}
	return p.r.Flatness / math.Sqrt(det)
}

// blend returns an emit function which paints ink with the given opacity
// into the image.
func (p *painter) blend(ink, a float64) Emit {
	img := p.img
	return func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride:]
		for i, c := range coverage {
			k := float64(c) * a
			x := xMin + i
			row[x] = uint8(math.Round(float64(row[x])*(1-k) + ink*k))
		}
	}
}

// inkLevel returns the gray level, in [0, 255], of a color.
func inkLevel(s string) (float64, bool) {
	c, ok := theme.ParseColor(s)
	if !ok {
		return 0, false
	}
	return 255 * theme.Luminance(c), true
}

// alpha maps the zero value of an opacity field to "opaque".
func alpha(v float64) float64 {
	if v <= 0 || v > 1 {
		return 1
	}
	return v
}

// deviceBox returns the integer pixel box covering r under m.
func deviceBox(m matrix.Matrix, r rect.Rect) rect.Rect {
	var pts [4]vec.Vec2
	for i, c := range [4]vec.Vec2{
		{X: r.LLx, Y: r.LLy}, {X: r.URx, Y: r.LLy}, {X: r.URx, Y: r.URy}, {X: r.LLx, Y: r.URy},
	} {
		pts[i].X, pts[i].Y = m.Apply(c.X, c.Y)
	}
	b, _ := geometry.Bounds(pts[:])
	return rect.Rect{
		LLx: math.Floor(b.LLx), LLy: math.Floor(b.LLy),
		URx: math.Ceil(b.URx), URy: math.Ceil(b.URy),
	}
}

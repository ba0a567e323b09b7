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

package surface

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/diagram/theme"
)

// SVG returns the complete SVG document.
func (r *Result) SVG() string {
	buf := &strings.Builder{}
	r.writeDoc(buf)
	return buf.String()
}

// WriteTo writes the complete SVG document to w.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.SVG())
	return int64(n), err
}

func (r *Result) writeDoc(buf *strings.Builder) {
	canvas := svg.New(buf)
	canvas.Decimals = r.prec
	if canvas.Decimals <= 0 {
		canvas.Decimals = defaultPrecision
	}
	canvas.Startview(r.Width, r.Height, r.ViewportX, r.ViewportY, r.Width, r.Height)
	if r.Defs != "" {
		canvas.Def()
		buf.WriteString(r.Defs)
		canvas.DefEnd()
	}
	buf.WriteString(r.Body)
	canvas.End()
}

// svgWriter serializes items as SVG elements, one per line.
type svgWriter struct {
	buf    strings.Builder
	canvas *svg.SVG
	prec   int
	theme  *theme.Theme
}

func newSVGWriter(prec int, th *theme.Theme) *svgWriter {
	w := &svgWriter{prec: prec, theme: th}
	w.canvas = svg.New(&w.buf)
	w.canvas.Decimals = prec
	return w
}

func (w *svgWriter) String() string {
	return w.buf.String()
}

func (w *svgWriter) item(it Item) {
	c := w.canvas
	switch it := it.(type) {
	case *Line:
		c.Line(it.P0.X, it.P0.Y, it.P1.X, it.P1.Y, w.style(it.Style, false)...)
	case *Polyline:
		if len(it.Points) > 0 {
			xs, ys := split(it.Points)
			c.Polyline(xs, ys, w.style(it.Style, true)...)
		}
	case *Polygon:
		if len(it.Points) > 0 {
			xs, ys := split(it.Points)
			c.Polygon(xs, ys, w.style(it.Style, true)...)
		}
	case *Circle:
		c.Circle(it.Center.X, it.Center.Y, it.R, w.style(it.Style, true)...)
	case *Ellipse:
		c.Ellipse(it.Center.X, it.Center.Y, it.RX, it.RY, w.style(it.Style, true)...)
	case *Rect:
		if it.RX > 0 {
			c.Roundrect(it.X, it.Y, it.W, it.H, it.RX, it.RX, w.style(it.Style, true)...)
		} else {
			c.Rect(it.X, it.Y, it.W, it.H, w.style(it.Style, true)...)
		}
	case *Path:
		c.Path(w.pathData(it.Data), w.style(it.Style, true)...)
	case *Text:
		c.Text(it.At.X, it.At.Y, it.Content, w.textStyle(it)...)
	case *Group:
		if it.ClipID == "" && it.Transform != nil {
			c.Gtransform(it.Transform.String())
			break
		}
		var attrs []string
		if it.Transform != nil {
			attrs = append(attrs, strAttr("transform", it.Transform.String()))
		}
		if it.ClipID != "" {
			attrs = append(attrs, strAttr("clip-path", "url(#"+it.ClipID+")"))
		}
		c.Group(attrs...)
	case *EndGroup:
		c.Gend()
	}
}

func split(pts []vec.Vec2) ([]float64, []float64) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

func (w *svgWriter) numAttr(name string, v float64) string {
	return name + `="` + formatNum(v, w.prec) + `"`
}

func strAttr(name, v string) string {
	return name + `="` + escapeAttr(v) + `"`
}

func (w *svgWriter) pathData(d *path.Data) string {
	buf := &strings.Builder{}
	k := 0
	coord := func(n int) {
		for _, p := range d.Coords[k : k+n] {
			buf.WriteString(" " + formatNum(p.X, w.prec) + " " + formatNum(p.Y, w.prec))
		}
		k += n
	}
	for i, cmd := range d.Cmds {
		if i > 0 {
			buf.WriteByte(' ')
		}
		switch cmd {
		case path.CmdMoveTo:
			buf.WriteByte('M')
			coord(1)
		case path.CmdLineTo:
			buf.WriteByte('L')
			coord(1)
		case path.CmdQuadTo:
			buf.WriteByte('Q')
			coord(2)
		case path.CmdCubeTo:
			buf.WriteByte('C')
			coord(3)
		case path.CmdClose:
			buf.WriteByte('Z')
		}
	}
	return buf.String()
}

// style returns the presentation attributes of st.  For closed shapes,
// an empty fill is written as fill="none", since SVG fills shapes black
// by default.
func (w *svgWriter) style(st Style, closed bool) []string {
	var attrs []string
	if st.Fill != "" {
		attrs = append(attrs, strAttr("fill", st.Fill))
		if st.FillOpacity > 0 && st.FillOpacity < 1 {
			attrs = append(attrs, w.numAttr("fill-opacity", st.FillOpacity))
		}
		if st.EvenOdd {
			attrs = append(attrs, strAttr("fill-rule", "evenodd"))
		}
	} else if closed {
		attrs = append(attrs, strAttr("fill", "none"))
	}
	if st.Stroke != "" {
		attrs = append(attrs, strAttr("stroke", st.Stroke))
		sw := st.StrokeWidth
		if sw <= 0 {
			sw = w.theme.StrokeWidth
		}
		attrs = append(attrs, w.numAttr("stroke-width", sw))
		if len(st.Dash) > 0 {
			parts := make([]string, len(st.Dash))
			for i, d := range st.Dash {
				parts[i] = formatNum(d, w.prec)
			}
			attrs = append(attrs, strAttr("stroke-dasharray", strings.Join(parts, " ")))
		}
		switch st.Cap {
		case graphics.LineCapRound:
			attrs = append(attrs, strAttr("stroke-linecap", "round"))
		case graphics.LineCapSquare:
			attrs = append(attrs, strAttr("stroke-linecap", "square"))
		}
		switch st.Join {
		case graphics.LineJoinRound:
			attrs = append(attrs, strAttr("stroke-linejoin", "round"))
		case graphics.LineJoinBevel:
			attrs = append(attrs, strAttr("stroke-linejoin", "bevel"))
		}
		if st.MarkerStart != "" {
			attrs = append(attrs, strAttr("marker-start", "url(#"+st.MarkerStart+")"))
		}
		if st.MarkerEnd != "" {
			attrs = append(attrs, strAttr("marker-end", "url(#"+st.MarkerEnd+")"))
		}
	}
	if st.Opacity > 0 && st.Opacity < 1 {
		attrs = append(attrs, w.numAttr("opacity", st.Opacity))
	}
	return attrs
}

func (w *svgWriter) textStyle(t *Text) []string {
	ts := t.Style
	family := ts.Family
	if family == "" {
		family = w.theme.FontFamily
	}
	attrs := []string{
		w.numAttr("font-size", ts.Size),
		strAttr("font-family", family),
	}
	switch ts.Anchor {
	case AnchorMiddle:
		attrs = append(attrs, strAttr("text-anchor", "middle"))
	case AnchorEnd:
		attrs = append(attrs, strAttr("text-anchor", "end"))
	}
	switch ts.Baseline {
	case BaselineMiddle:
		attrs = append(attrs, strAttr("dominant-baseline", "middle"))
	case BaselineHanging:
		attrs = append(attrs, strAttr("dominant-baseline", "hanging"))
	}
	fill := ts.Fill
	if fill == "" {
		fill = w.theme.Text
	}
	attrs = append(attrs, strAttr("fill", fill))
	if ts.Bold {
		attrs = append(attrs, strAttr("font-weight", "bold"))
	}
	if ts.Italic {
		attrs = append(attrs, strAttr("font-style", "italic"))
	}
	if ts.Rotate != 0 {
		attrs = append(attrs, strAttr("transform", Rotate(ts.Rotate, t.At.X, t.At.Y).String()))
	}
	return attrs
}

// formatNum formats v with at most prec decimal places, without trailing
// zeros.
func formatNum(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// escapeAttr quotes s for use inside a double-quoted attribute value.
// The svg package writes attribute strings unchanged.
func escapeAttr(s string) string {
	buf := &bytes.Buffer{}
	xml.EscapeText(buf, []byte(s))
	return buf.String()
}

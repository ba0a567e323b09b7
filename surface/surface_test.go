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
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const eps = 1e-9

func rectNear(a, b rect.Rect) bool {
	return math.Abs(a.LLx-b.LLx) < eps && math.Abs(a.LLy-b.LLy) < eps &&
		math.Abs(a.URx-b.URx) < eps && math.Abs(a.URy-b.URy) < eps
}

func TestEmpty(t *testing.T) {
	s := New(nil)
	res := s.Finalize(10)
	if res.ViewportX != -10 || res.ViewportY != -10 || res.Width != 20 || res.Height != 20 {
		t.Errorf("unexpected viewport %v %v %v %v", res.ViewportX, res.ViewportY, res.Width, res.Height)
	}
	if res.Body != "" {
		t.Errorf("unexpected body %q", res.Body)
	}
}

func TestCircleExtent(t *testing.T) {
	s := New(nil)
	s.Circle(vec.Vec2{X: 50, Y: 50}, 10, Style{Fill: "red"})
	res := s.Finalize(5)
	if res.ViewportX != 35 || res.ViewportY != 35 || res.Width != 30 || res.Height != 30 {
		t.Errorf("unexpected viewport %v %v %v %v", res.ViewportX, res.ViewportY, res.Width, res.Height)
	}
}

func TestStrokeGrowsExtent(t *testing.T) {
	s := New(nil)
	s.Line(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, Stroked("black", 4))
	ext, ok := s.Extent()
	if !ok {
		t.Fatal("no extent")
	}
	want := rect.Rect{LLx: -2, LLy: -2, URx: 12, URy: 2}
	if !rectNear(ext, want) {
		t.Errorf("got %v, want %v", ext, want)
	}
}

func TestMarkerGrowsExtent(t *testing.T) {
	s := New(nil)
	st := Stroked("black", 1)
	st.MarkerEnd = s.Arrowhead("black")
	s.Line(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, st)
	ext, _ := s.Extent()
	if ext.URx < 10+markerReach || ext.LLx > -markerReach {
		t.Errorf("marker not covered by extent %v", ext)
	}
}

func TestExtentMonotone(t *testing.T) {
	s := New(nil)
	rng := rand.New(rand.NewPCG(1, 2))
	var prev rect.Rect
	for i := range 100 {
		p := vec.Vec2{X: rng.Float64()*200 - 100, Y: rng.Float64()*200 - 100}
		s.Circle(p, rng.Float64()*5, Style{Fill: "blue"})
		ext, _ := s.Extent()
		if i > 0 && (ext.LLx > prev.LLx || ext.LLy > prev.LLy || ext.URx < prev.URx || ext.URy < prev.URy) {
			t.Fatalf("extent shrank from %v to %v", prev, ext)
		}
		prev = ext
	}
}

// TestViewportContainsItems checks that every drawn item lies inside the
// final viewport.
func TestViewportContainsItems(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 20 {
		s := New(nil)
		var boxes []rect.Rect
		for range 10 {
			x, y := rng.Float64()*1000-500, rng.Float64()*1000-500
			switch rng.IntN(4) {
			case 0:
				r := rng.Float64() * 20
				s.Circle(vec.Vec2{X: x, Y: y}, r, Style{Fill: "red"})
				boxes = append(boxes, rect.Rect{LLx: x - r, LLy: y - r, URx: x + r, URy: y + r})
			case 1:
				s.Rect(x, y, 30, 20, Style{Fill: "red"})
				boxes = append(boxes, rect.Rect{LLx: x, LLy: y, URx: x + 30, URy: y + 20})
			case 2:
				b := s.Text(vec.Vec2{X: x, Y: y}, "label", TextStyle{Anchor: AnchorEnd})
				boxes = append(boxes, b)
			case 3:
				q := vec.Vec2{X: x + 40, Y: y - 40}
				s.Line(vec.Vec2{X: x, Y: y}, q, Stroked("black", 2))
				boxes = append(boxes, rect.Rect{LLx: x - 1, LLy: y - 41, URx: x + 41, URy: y + 1})
			}
		}
		res := s.Finalize(0)
		vp := rect.Rect{
			LLx: res.ViewportX, LLy: res.ViewportY,
			URx: res.ViewportX + res.Width, URy: res.ViewportY + res.Height,
		}
		for _, b := range boxes {
			if b.LLx < vp.LLx-eps || b.LLy < vp.LLy-eps || b.URx > vp.URx+eps || b.URy > vp.URy+eps {
				t.Errorf("box %v outside viewport %v", b, vp)
			}
		}
	}
}

func TestWithTransform(t *testing.T) {
	s := New(nil)
	s.WithTransform(Translate(100, 0), func() {
		s.Circle(vec.Vec2{}, 1, Style{Fill: "red"})
	})
	ext, _ := s.Extent()
	if !rectNear(ext, rect.Rect{LLx: 99, LLy: -1, URx: 101, URy: 1}) {
		t.Errorf("transformed extent %v", ext)
	}

	// siblings are not affected
	s.Circle(vec.Vec2{}, 1, Style{Fill: "red"})
	ext, _ = s.Extent()
	if !rectNear(ext, rect.Rect{LLx: -1, LLy: -1, URx: 101, URy: 1}) {
		t.Errorf("sibling extent %v", ext)
	}
	if s.Depth() != 0 {
		t.Errorf("depth %d after WithTransform", s.Depth())
	}

	res := s.Finalize(0)
	if !strings.Contains(res.Body, `<g transform="translate(100 0)">`) {
		t.Errorf("missing group in %q", res.Body)
	}
}

func TestNestedTransforms(t *testing.T) {
	s := New(nil)
	s.Push(Translate(10, 0))
	s.Push(Rotate(90, 0, 0))
	s.Line(vec.Vec2{}, vec.Vec2{X: 5, Y: 0}, Style{})
	s.Pop()
	s.Pop()

	// rotation by 90° maps (5,0) to (0,5), then the translation applies
	ext, _ := s.Extent()
	if !rectNear(ext, rect.Rect{LLx: 10, LLy: 0, URx: 10, URy: 5}) {
		t.Errorf("got %v", ext)
	}
}

func TestRotateAboutPivot(t *testing.T) {
	tr := Rotate(180, 10, 10)
	p := tr.Apply(vec.Vec2{X: 20, Y: 10})
	if math.Abs(p.X) > eps || math.Abs(p.Y-10) > eps {
		t.Errorf("got %v", p)
	}
	if tr.String() != "rotate(180 10 10)" {
		t.Errorf("got %q", tr.String())
	}
}

func TestClippedRegion(t *testing.T) {
	s := New(&Config{ChartArea: rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100}})
	s.DrawInClippedRegion(func() {
		s.Circle(vec.Vec2{X: 100, Y: 100}, 50, Style{Fill: "red"})
	})
	ext, _ := s.Extent()
	if !rectNear(ext, rect.Rect{LLx: 50, LLy: 50, URx: 100, URy: 100}) {
		t.Errorf("clipped extent %v", ext)
	}

	// labels outside the region are not clipped
	s.Circle(vec.Vec2{X: 100, Y: 100}, 50, Style{Fill: "red"})
	ext, _ = s.Extent()
	if !rectNear(ext, rect.Rect{LLx: 50, LLy: 50, URx: 150, URy: 150}) {
		t.Errorf("unclipped extent %v", ext)
	}

	res := s.Finalize(0)
	if !strings.Contains(res.Defs, `<clipPath id="chart-area" ><rect x="0.00" y="0.00" width="100.00" height="100.00" />`) {
		t.Errorf("missing clip definition in %q", res.Defs)
	}
	if !strings.Contains(res.Body, `clip-path="url(#chart-area)"`) {
		t.Errorf("missing clip reference in %q", res.Body)
	}
}

func TestClipWithoutChartArea(t *testing.T) {
	s := New(nil)
	s.DrawInClippedRegion(func() {
		s.Circle(vec.Vec2{}, 5, Style{Fill: "red"})
	})
	res := s.Finalize(0)
	if strings.Contains(res.Body, "<g") {
		t.Errorf("unexpected group in %q", res.Body)
	}
	if res.Width != 10 {
		t.Errorf("width %v", res.Width)
	}
}

func TestAddDefIdempotent(t *testing.T) {
	s := New(nil)
	s.AddDef("a", "<marker id=\"a\"/>")
	s.AddDef("b", "<marker id=\"b\"/>")
	s.AddDef("a", "<marker id=\"other\"/>")
	if !s.HasDef("a") || !s.HasDef("b") || s.HasDef("other") {
		t.Error("HasDef disagrees with the registered ids")
	}
	ids := s.Defs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("got %v", ids)
	}
	res := s.Finalize(0)
	if strings.Contains(res.Defs, "other") {
		t.Errorf("repeated definition replaced the original: %q", res.Defs)
	}
}

func TestFinalizeOnce(t *testing.T) {
	s := New(nil)
	s.Circle(vec.Vec2{}, 1, Style{Fill: "red"})
	first := s.Finalize(1)
	s.Circle(vec.Vec2{X: 100}, 1, Style{Fill: "red"})
	second := s.Finalize(5)
	if first.Width != second.Width || first.Body != second.Body {
		t.Errorf("second Finalize differs: %v vs %v", first.Width, second.Width)
	}
}

func TestFinalizeClosesGroups(t *testing.T) {
	s := New(nil)
	s.Pop() // unbalanced, ignored
	s.Push(Translate(1, 1))
	s.Push(Scale(2, 2))
	s.Circle(vec.Vec2{}, 1, Style{Fill: "red"})
	res := s.Finalize(0)
	if strings.Count(res.Body, "<g") != strings.Count(res.Body, "</g>") {
		t.Errorf("unbalanced groups in %q", res.Body)
	}
}

func TestNonFiniteDropped(t *testing.T) {
	s := New(nil)
	s.Circle(vec.Vec2{X: math.NaN()}, 1, Style{Fill: "red"})
	s.Line(vec.Vec2{}, vec.Vec2{X: math.Inf(1)}, Stroked("black", 1))
	if _, ok := s.Extent(); ok {
		t.Error("non-finite items changed the extent")
	}
	res := s.Finalize(0)
	if len(res.Items) != 0 {
		t.Errorf("got %d items", len(res.Items))
	}
}

func TestTextBox(t *testing.T) {
	at := vec.Vec2{X: 100, Y: 50}
	cases := []struct {
		ts   TextStyle
		want rect.Rect
	}{
		{TextStyle{Size: 10}, rect.Rect{LLx: 100, LLy: 42, URx: 120, URy: 52}},
		{TextStyle{Size: 10, Anchor: AnchorMiddle, Baseline: BaselineMiddle},
			rect.Rect{LLx: 90, LLy: 45, URx: 110, URy: 55}},
		{TextStyle{Size: 10, Anchor: AnchorEnd, Baseline: BaselineHanging},
			rect.Rect{LLx: 80, LLy: 50, URx: 100, URy: 60}},
		{TextStyle{Size: 10, Anchor: AnchorMiddle, Baseline: BaselineMiddle, Rotate: 90},
			rect.Rect{LLx: 95, LLy: 40, URx: 105, URy: 60}},
	}
	for i, c := range cases {
		got := TextBox(at, 20, c.ts)
		if !rectNear(got, c.want) {
			t.Errorf("%d: got %v, want %v", i, got, c.want)
		}
	}
}

func TestMeasureText(t *testing.T) {
	s := New(nil)
	at := vec.Vec2{X: 10, Y: 20}
	got := s.MeasureText(at, "hello", TextStyle{Anchor: AnchorMiddle})
	size := s.Theme().FontSize
	want := TextBox(at, s.Metrics().Width("hello", size), TextStyle{Size: size, Anchor: AnchorMiddle})
	if !rectNear(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, ok := s.Extent(); ok {
		t.Error("MeasureText changed the extent")
	}

	s.Text(at, "hello", TextStyle{Anchor: AnchorMiddle})
	ext, _ := s.Extent()
	if !rectNear(ext, got) {
		t.Errorf("drawn text covers %v, measured %v", ext, got)
	}
}

func TestTextEscaping(t *testing.T) {
	s := New(nil)
	s.DrawText(vec.Vec2{}, "a < b & c", 12)
	res := s.Finalize(0)
	if !strings.Contains(res.Body, ">a &lt; b &amp; c</text>") {
		t.Errorf("text not escaped: %q", res.Body)
	}
}

func TestPathSVG(t *testing.T) {
	d := (&path.Data{}).MoveTo(vec.Vec2{X: 0, Y: 0}).LineTo(vec.Vec2{X: 10, Y: 0}).Close()
	s := New(nil)
	s.Path(d, Style{Fill: "#ccc", EvenOdd: true})
	res := s.Finalize(0)
	if !strings.Contains(res.Body, `d="M 0 0 L 10 0 Z"`) {
		t.Errorf("unexpected path markup %q", res.Body)
	}
	if !strings.Contains(res.Body, `fill-rule="evenodd"`) {
		t.Errorf("missing fill rule in %q", res.Body)
	}
}

func TestSVGDocument(t *testing.T) {
	s := New(nil)
	s.Rect(0, 0, 40, 20, Filled("white", "black", 2))
	s.Arrowhead("black")
	res := s.Finalize(4)
	doc := res.SVG()
	for _, want := range []string{
		`width="50.00" height="30.00"`,
		`viewBox="-5.00 -5.00 50.00 30.00"`,
		"<defs>\n<marker id=\"arrow-black\"",
		`orient="auto-start-reverse" >`,
		`<path d="M 0 0 L 10 5 L 0 10 z" fill="black" />`,
		`<rect x="0.00" y="0.00" width="40.00" height="20.00" fill="white" stroke="black" stroke-width="2" />`,
		"</svg>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document lacks %q:\n%s", want, doc)
		}
	}

	buf := &strings.Builder{}
	n, err := res.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if int(n) != len(doc) || buf.String() != doc {
		t.Error("WriteTo output differs from SVG()")
	}
}

func TestFormatNum(t *testing.T) {
	cases := []struct {
		v    float64
		prec int
		want string
	}{
		{1, 2, "1"},
		{1.5, 2, "1.5"},
		{1.005, 1, "1"},
		{-0.001, 2, "0"},
		{123.456, 2, "123.46"},
		{-7.25, 3, "-7.25"},
	}
	for _, c := range cases {
		if got := formatNum(c.v, c.prec); got != c.want {
			t.Errorf("formatNum(%v, %d) = %q, want %q", c.v, c.prec, got, c.want)
		}
	}
}

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

package theme

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ff0000", color.RGBA{R: 255, A: 255}, true},
		{"#0F0", color.RGBA{G: 255, A: 255}, true},
		{" #1f2937 ", color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 255}, true},
		{"steelblue", color.RGBA{R: 70, G: 130, B: 180, A: 255}, true},
		{"Black", color.RGBA{A: 255}, true},
		{"none", color.RGBA{}, false},
		{"", color.RGBA{}, false},
		{"#12345", color.RGBA{}, false},
		{"#gg0000", color.RGBA{}, false},
	}
	for _, tc := range cases {
		got, ok := ParseColor(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseColor(%q) = %v, %t; want %v, %t", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPaletteCycles(t *testing.T) {
	n := len(Default.Palette)
	if Default.Color(n+1) != Default.Color(1) {
		t.Error("palette does not cycle")
	}
	if Default.Color(-1) != Default.Palette[n-1] {
		t.Error("negative index does not count from the end")
	}
	for _, c := range Default.Palette {
		if _, ok := ParseColor(c); !ok {
			t.Errorf("palette entry %q does not parse", c)
		}
	}
}

func TestLuminance(t *testing.T) {
	if l := Luminance(color.RGBA{A: 255}); l != 0 {
		t.Errorf("black: %g", l)
	}
	if l := Luminance(color.RGBA{R: 255, G: 255, B: 255, A: 255}); l < 0.999 || l > 1.001 {
		t.Errorf("white: %g", l)
	}
}

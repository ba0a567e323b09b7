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

// Package theme holds the static style table shared by all diagrams.
//
// The table is consulted but never modified while rendering, so it can be
// shared between concurrent renders.
package theme

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Theme lists the colors, stroke widths and font sizes used for diagrams.
type Theme struct {
	Stroke     string // outlines of shapes
	Fill       string // default shape fill
	Axis       string // axes and tick marks
	Grid       string // grid lines
	Text       string // labels
	Background string
	Highlight  string // shaded fractions, selected parts

	// Palette is cycled through for data series and slices.
	Palette []string

	StrokeWidth float64
	ThinStroke  float64
	ThickStroke float64

	FontSize      float64
	SmallFontSize float64
	LargeFontSize float64
	FontFamily    string
}

// Default is the theme used when none is configured.  It must not be
// modified.
var Default = &Theme{
	Stroke:     "#1f2937",
	Fill:       "#ffffff",
	Axis:       "#374151",
	Grid:       "#d1d5db",
	Text:       "#111827",
	Background: "#ffffff",
	Highlight:  "#93c5fd",

	Palette: []string{
		"#3b82f6", "#f59e0b", "#10b981", "#ef4444",
		"#8b5cf6", "#ec4899", "#14b8a6", "#f97316",
	},

	StrokeWidth: 2,
	ThinStroke:  1,
	ThickStroke: 3,

	FontSize:      14,
	SmallFontSize: 11,
	LargeFontSize: 18,
	FontFamily:    "sans-serif",
}

// Color returns the i-th palette entry, cycling through the palette.
// Negative indices count from the end.
func (t *Theme) Color(i int) string {
	n := len(t.Palette)
	if n == 0 {
		return t.Stroke
	}
	i %= n
	if i < 0 {
		i += n
	}
	return t.Palette[i]
}

// ParseColor converts an SVG color value into RGBA.  Supported are
// "#rgb", "#rrggbb" and the SVG color keywords.  For "none", an empty
// string, or anything unrecognized, ok is false.
func ParseColor(s string) (c color.RGBA, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	c, ok = colornames.Map[s]
	return c, ok
}

func parseHex(s string) (color.RGBA, bool) {
	var digits [6]byte
	switch len(s) {
	case 3:
		for i := range 3 {
			digits[2*i] = s[i]
			digits[2*i+1] = s[i]
		}
	case 6:
		copy(digits[:], s)
	default:
		return color.RGBA{}, false
	}

	var v [3]uint8
	for i := range 3 {
		hi, ok1 := hexDigit(digits[2*i])
		lo, ok2 := hexDigit(digits[2*i+1])
		if !ok1 || !ok2 {
			return color.RGBA{}, false
		}
		v[i] = hi<<4 | lo
	}
	return color.RGBA{R: v[0], G: v[1], B: v[2], A: 255}, true
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	}
	return 0, false
}

// Luminance returns the relative luminance of c, from 0 (black) to
// 1 (white), using the Rec. 709 weights on the gamma-encoded values.
func Luminance(c color.RGBA) float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}

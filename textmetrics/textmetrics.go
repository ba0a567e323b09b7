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

// Package textmetrics estimates the width of rendered text.
//
// The diagram kernel only relies on estimates being monotone: appending
// characters to a string never makes it narrower.  No real text layout
// takes place.
package textmetrics

import (
	"fmt"
	"sync"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Measurer estimates the advance width of a string at a font size.
// Widths are in the same units as the size.
type Measurer interface {
	Width(text string, size float64) float64
}

// Approx estimates text width from character classes, without any font
// data.  The zero value is ready to use.
type Approx struct{}

// Width implements [Measurer].
func (Approx) Width(text string, size float64) float64 {
	var w float64
	for _, r := range text {
		w += runeWidth(r)
	}
	return w * size
}

// runeWidth returns the approximate advance of r, in units of the font size.
func runeWidth(r rune) float64 {
	switch {
	case r == ' ':
		return 0.28
	case r < 128 && narrowRunes[r]:
		return 0.3
	case r == 'm' || r == 'w' || r == 'M' || r == 'W' || r == '@' || r == '%':
		return 0.85
	case r >= '0' && r <= '9':
		return 0.56
	case unicode.IsUpper(r):
		return 0.67
	case unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul):
		return 1
	}
	return 0.55
}

var narrowRunes = [128]bool{
	'i': true, 'j': true, 'l': true, 'I': true, 't': true, 'f': true,
	'.': true, ',': true, ':': true, ';': true, '\'': true, '|': true,
	'!': true, '(': true, ')': true, '[': true, ']': true,
}

// Face measures text using the advance widths of a real font.
// A Face is safe for concurrent use.
type Face struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewGoRegular returns a Face for the Go Regular font.
func NewGoRegular() (*Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing Go Regular: %w", err)
	}
	return &Face{font: f, faces: make(map[float64]font.Face)}, nil
}

// Width implements [Measurer].  One font unit corresponds to one unit
// of size, i.e. text is laid out at 72 DPI.
func (f *Face) Width(text string, size float64) float64 {
	if text == "" || !(size > 0) {
		return 0
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	face, ok := f.faces[size]
	if !ok {
		var err error
		face, err = opentype.NewFace(f.font, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return Approx{}.Width(text, size)
		}
		f.faces[size] = face
	}
	return float64(font.MeasureString(face, text)) / 64
}

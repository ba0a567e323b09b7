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
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"seehuhn.de/go/geom/rect"
)

// Defs returns the ids of all registered definitions, in registration
// order.
func (s *Surface) Defs() []string {
	ids := make([]string, len(s.defs))
	for i, d := range s.defs {
		ids[i] = d.id
	}
	return ids
}

// PopClip ends a region started by [Surface.PushClip].
func (s *Surface) PopClip() {
	s.Pop()
}

// ArrowMarker returns the markup of a triangular arrowhead marker with the
// given id.  The marker scales with the stroke width of the line it is
// attached to and points along the line at both ends.
func ArrowMarker(id, color string) string {
	buf := &strings.Builder{}
	canvas := svg.New(buf)
	canvas.Marker(escapeAttr(id), 9, 5, markerReach, markerReach,
		`viewBox="0 0 10 10"`, `orient="auto-start-reverse"`)
	canvas.Path("M 0 0 L 10 5 L 0 10 z", strAttr("fill", color))
	canvas.MarkerEnd()
	return buf.String()
}

// Arrowhead registers an arrowhead marker in the given color and returns
// its id, for use in [Style.MarkerStart] and [Style.MarkerEnd].
func (s *Surface) Arrowhead(color string) string {
	if color == "" {
		color = s.theme.Stroke
	}
	id := "arrow-" + strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return '-'
	}, color)
	s.AddDef(id, ArrowMarker(id, color))
	return id
}

func (s *Surface) clipMarkup(area rect.Rect) string {
	buf := &strings.Builder{}
	canvas := svg.New(buf)
	canvas.Decimals = s.prec
	canvas.ClipPath(strAttr("id", ChartClipID))
	canvas.Rect(area.LLx, area.LLy, area.Dx(), area.Dy())
	canvas.ClipEnd()
	return buf.String()
}

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
	"fmt"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Transform is an affine coordinate transform, together with its SVG
// notation.
type Transform struct {
	M    matrix.Matrix
	expr string
}

// Translate returns a transform which shifts by (dx, dy).
func Translate(dx, dy float64) Transform {
	return Transform{
		M:    matrix.Translate(dx, dy),
		expr: fmt.Sprintf("translate(%s %s)", exact(dx), exact(dy)),
	}
}

// Rotate returns a transform which rotates by deg degrees about the pivot
// (cx, cy).  On the page (y down), positive angles turn clockwise.
func Rotate(deg, cx, cy float64) Transform {
	return Transform{
		M:    matrix.Translate(-cx, -cy).RotateDeg(deg).Translate(cx, cy),
		expr: fmt.Sprintf("rotate(%s %s %s)", exact(deg), exact(cx), exact(cy)),
	}
}

// Scale returns a transform which scales by sx horizontally and by sy
// vertically, about the origin.
func Scale(sx, sy float64) Transform {
	return Transform{
		M:    matrix.Scale(sx, sy),
		expr: fmt.Sprintf("scale(%s %s)", exact(sx), exact(sy)),
	}
}

// Matrix returns a transform for a general affine matrix.
func Matrix(m matrix.Matrix) Transform {
	return Transform{M: m}
}

// String returns the transform in SVG notation.
func (t Transform) String() string {
	if t.expr != "" {
		return t.expr
	}
	m := t.M
	return fmt.Sprintf("matrix(%s %s %s %s %s %s)",
		exact(m[0]), exact(m[1]), exact(m[2]), exact(m[3]), exact(m[4]), exact(m[5]))
}

// Apply maps p through the transform.
func (t Transform) Apply(p vec.Vec2) vec.Vec2 {
	return apply(t.M, p)
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	x, y := m.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// transformRect returns the bounding box of r after mapping by m.
func transformRect(m matrix.Matrix, r rect.Rect) rect.Rect {
	if m == matrix.Identity {
		return r
	}
	x, y := m.Apply(r.LLx, r.LLy)
	res := rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
	res.Add(m.Apply(r.URx, r.LLy))
	res.Add(m.Apply(r.URx, r.URy))
	res.Add(m.Apply(r.LLx, r.URy))
	return res
}

// exact formats v with the shortest representation which round-trips.
func exact(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

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

// Package fit computes the transformation which maps a point set from data
// space into a viewport.
//
// Data space is y-up: [Compute] flips the y-axis so that larger data
// y-values appear higher on the page.  [ComputeYDown] performs the same fit
// for data which already uses the screen convention.
package fit

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/diagram/geometry"
)

// Transform is a uniform scale followed by a translation, optionally
// mirroring the y-axis.
//
// With FlipY unset, a data point (x, y) maps to
// (Scale·x + OffsetX, Scale·y + OffsetY).  With FlipY set, it maps to
// (Scale·x + OffsetX, OffsetY − Scale·y).
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
	FlipY   bool
}

// Identity maps every point to itself.
var Identity = Transform{Scale: 1}

// Compute returns the transform which fits points, given in y-up data
// space, into a viewport of size w×h, keeping a margin of padding on all
// sides.  The scale is the same for both axes and is the largest one for
// which the content fits.  The content is centered along the axis with
// leftover space.
//
// If the points span zero width or height, 1 is used in its place.  If
// points is empty, [Identity] is returned.
func Compute(points []vec.Vec2, w, h, padding float64) Transform {
	return compute(points, w, h, padding, true)
}

// ComputeYDown is like [Compute], but for data whose y-axis already points
// down the page.
func ComputeYDown(points []vec.Vec2, w, h, padding float64) Transform {
	return compute(points, w, h, padding, false)
}

func compute(points []vec.Vec2, w, h, padding float64, flip bool) Transform {
	bbox, ok := geometry.Bounds(points)
	if !ok {
		return Identity
	}

	rawW := bbox.URx - bbox.LLx
	rawH := bbox.URy - bbox.LLy
	if rawW == 0 {
		rawW = 1
	}
	if rawH == 0 {
		rawH = 1
	}

	availW := w - 2*padding
	availH := h - 2*padding
	scale := min(availW/rawW, availH/rawH)

	// center the content along both axes
	contentW := (bbox.URx - bbox.LLx) * scale
	contentH := (bbox.URy - bbox.LLy) * scale
	left := padding + (availW-contentW)/2
	top := padding + (availH-contentH)/2

	t := Transform{
		Scale:   scale,
		OffsetX: left - bbox.LLx*scale,
		FlipY:   flip,
	}
	if flip {
		t.OffsetY = top + bbox.URy*scale
	} else {
		t.OffsetY = top - bbox.LLy*scale
	}
	return t
}

// Apply maps a data-space point to screen space.
func (t Transform) Apply(p vec.Vec2) vec.Vec2 {
	y := t.Scale*p.Y + t.OffsetY
	if t.FlipY {
		y = t.OffsetY - t.Scale*p.Y
	}
	return vec.Vec2{X: t.Scale*p.X + t.OffsetX, Y: y}
}

// ApplyAll maps every point in pts.  The input slice is not modified.
func (t Transform) ApplyAll(pts []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[i] = t.Apply(p)
	}
	return res
}

// Length maps a data-space distance to screen space.
func (t Transform) Length(d float64) float64 {
	return t.Scale * d
}

// Matrix returns the transform as an affine matrix, suitable for
// use as an ambient transform on a drawing surface.
func (t Transform) Matrix() matrix.Matrix {
	d := t.Scale
	if t.FlipY {
		d = -d
	}
	return matrix.Matrix{t.Scale, 0, 0, d, t.OffsetX, t.OffsetY}
}

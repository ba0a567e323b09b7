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

package geometry

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// AppendArc appends a circular arc to d, approximated by cubic Bézier
// segments of at most 90° each.  The arc has the given center and radius
// and runs from angle from to angle to (radians, measured in the
// coordinate system of d; negative sweeps run clockwise).  Sweeps beyond
// one full turn are clamped to a full circle.
//
// If d is empty, the arc starts with a MoveTo; otherwise a LineTo joins the
// current point to the start of the arc.  A zero radius or zero sweep
// still emits the connecting MoveTo/LineTo, so the path stays well formed.
func AppendArc(d *path.Data, center vec.Vec2, r, from, to float64) {
	start := center.Add(direction(from).Mul(r))
	if len(d.Cmds) == 0 {
		d.MoveTo(start)
	} else {
		d.LineTo(start)
	}

	sweep := to - from
	if r == 0 || sweep == 0 || math.IsNaN(sweep) {
		return
	}
	sweep = min(max(sweep, -2*math.Pi), 2*math.Pi)

	nSeg := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	delta := sweep / float64(nSeg)
	k := 4.0 / 3.0 * math.Tan(delta/4) * r
	phi := from
	for range nSeg {
		d0 := direction(phi)
		d1 := direction(phi + delta)
		p0 := center.Add(d0.Mul(r))
		p1 := center.Add(d1.Mul(r))
		c0 := p0.Add(vec.Vec2{X: -d0.Y, Y: d0.X}.Mul(k))
		c1 := p1.Sub(vec.Vec2{X: -d1.Y, Y: d1.X}.Mul(k))
		d.Cmds = append(d.Cmds, path.CmdCubeTo)
		d.Coords = append(d.Coords, c0, c1, p1)
		phi += delta
	}
}

// PieSlice returns a closed path for a circular sector with the given
// center and radius, between the angles from and to.
func PieSlice(center vec.Vec2, r, from, to float64) *path.Data {
	d := (&path.Data{}).MoveTo(center)
	AppendArc(d, center, r, from, to)
	return d.Close()
}

// PolygonPath returns a closed path through the given points.
// For an empty point set the result is an empty path.
func PolygonPath(points []vec.Vec2) *path.Data {
	d := &path.Data{}
	if len(points) == 0 {
		return d
	}
	d.MoveTo(points[0])
	for _, p := range points[1:] {
		d.LineTo(p)
	}
	return d.Close()
}

// EllipsePath returns a closed path for an axis-aligned ellipse, made of
// four cubic Bézier arcs.
func EllipsePath(c vec.Vec2, rx, ry float64) *path.Data {
	const k = 0.5522847498
	kx, ky := k*rx, k*ry
	d := &path.Data{}
	d.MoveTo(vec.Vec2{X: c.X + rx, Y: c.Y})
	quarter := func(c1, c2, p vec.Vec2) {
		d.Cmds = append(d.Cmds, path.CmdCubeTo)
		d.Coords = append(d.Coords, c1, c2, p)
	}
	quarter(vec.Vec2{X: c.X + rx, Y: c.Y + ky}, vec.Vec2{X: c.X + kx, Y: c.Y + ry}, vec.Vec2{X: c.X, Y: c.Y + ry})
	quarter(vec.Vec2{X: c.X - kx, Y: c.Y + ry}, vec.Vec2{X: c.X - rx, Y: c.Y + ky}, vec.Vec2{X: c.X - rx, Y: c.Y})
	quarter(vec.Vec2{X: c.X - rx, Y: c.Y - ky}, vec.Vec2{X: c.X - kx, Y: c.Y - ry}, vec.Vec2{X: c.X, Y: c.Y - ry})
	quarter(vec.Vec2{X: c.X + kx, Y: c.Y - ry}, vec.Vec2{X: c.X + rx, Y: c.Y - ky}, vec.Vec2{X: c.X + rx, Y: c.Y})
	return d.Close()
}

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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// discSides is the number of sides of the polygons used for round joins
// and caps.
const discSides = 16

// maxDashes limits the number of dashes generated for one outline.
const maxDashes = 10000

// strokeOutline appends the outline of a stroke along pts, with half width
// hw, to d.  The outline is the union of one quadrilateral per segment and
// one disc per vertex.  All pieces have the same orientation, so that
// filling with the nonzero rule gives their union.
func strokeOutline(d *path.Data, pts []vec.Vec2, hw float64) *path.Data {
	if hw <= 0 || len(pts) == 0 {
		return d
	}
	if d == nil {
		d = &path.Data{}
	}
	for i, p := range pts {
		disc(d, p, hw)
		if i == 0 {
			continue
		}
		a := pts[i-1]
		v := p.Sub(a)
		l := v.Length()
		if l < zeroLength {
			continue
		}
		n := vec.Vec2{X: -v.Y, Y: v.X}.Mul(hw / l)
		d.MoveTo(a.Add(n)).LineTo(p.Add(n)).LineTo(p.Sub(n)).LineTo(a.Sub(n)).Close()
	}
	return d
}

// disc appends a polygonal disc, oriented like the segment quads of
// strokeOutline.
func disc(d *path.Data, c vec.Vec2, r float64) {
	for k := range discSides {
		phi := -2 * math.Pi * float64(k) / discSides
		p := vec.Vec2{X: c.X + r*math.Cos(phi), Y: c.Y + r*math.Sin(phi)}
		if k == 0 {
			d.MoveTo(p)
		} else {
			d.LineTo(p)
		}
	}
	d.Close()
}

// dash splits a polyline into the pieces which are "on" in the given dash
// pattern.  Without a usable pattern, the polyline is returned unchanged.
func dash(pts []vec.Vec2, pattern []float64) [][]vec.Vec2 {
	total, period := 0.0, 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i].Sub(pts[i-1]).Length()
	}
	for _, v := range pattern {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return [][]vec.Vec2{pts}
		}
		period += v
	}
	if len(pattern)%2 == 1 {
		pattern = append(pattern[:len(pattern):len(pattern)], pattern...)
		period *= 2
	}
	if period <= 0 || total/period*float64(len(pattern)) > maxDashes {
		return [][]vec.Vec2{pts}
	}

	var res [][]vec.Vec2
	cur := []vec.Vec2{pts[0]}
	idx, left, on := 0, pattern[0], true
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		l := b.Sub(a).Length()
		pos := 0.0
		for l-pos > left {
			pos += left
			q := a.Add(b.Sub(a).Mul(pos / l))
			if on {
				cur = append(cur, q)
				res = append(res, cur)
				cur = nil
			} else {
				cur = []vec.Vec2{q}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			left = pattern[idx]
		}
		left -= l - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 0 {
		res = append(res, cur)
	}
	return res
}

type subpath struct {
	points []vec.Vec2
	closed bool
}

// subpaths flattens every subpath of d into a polyline.  Curves are split
// into pieces which deviate from the curve by less than tol.
func subpaths(d *path.Data, tol float64) []subpath {
	var res []subpath
	var cur subpath
	implicit := false // cur only holds the start point left by Close
	flush := func() {
		if len(cur.points) > 0 && !implicit {
			res = append(res, cur)
		}
		cur = subpath{}
		implicit = false
	}
	last := func() vec.Vec2 {
		if len(cur.points) == 0 {
			return vec.Vec2{}
		}
		return cur.points[len(cur.points)-1]
	}

	k := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			cur.points = append(cur.points, d.Coords[k])
			k++
		case path.CmdLineTo:
			cur.points = append(cur.points, d.Coords[k])
			implicit = false
			k++
		case path.CmdQuadTo:
			p0, p1, p2 := last(), d.Coords[k], d.Coords[k+1]
			n := pieces(p0.Sub(p1.Mul(2)).Add(p2).Length()/4, tol)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				s := 1 - t
				cur.points = append(cur.points, p0.Mul(s*s).Add(p1.Mul(2*s*t)).Add(p2.Mul(t*t)))
			}
			implicit = false
			k += 2
		case path.CmdCubeTo:
			p0, p1, p2, p3 := last(), d.Coords[k], d.Coords[k+1], d.Coords[k+2]
			m := max(p0.Sub(p1.Mul(2)).Add(p2).Length(), p1.Sub(p2.Mul(2)).Add(p3).Length())
			n := pieces(3*m/4, tol)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				s := 1 - t
				cur.points = append(cur.points, p0.Mul(s*s*s).
					Add(p1.Mul(3*s*s*t)).
					Add(p2.Mul(3*s*t*t)).
					Add(p3.Mul(t*t*t)))
			}
			implicit = false
			k += 3
		case path.CmdClose:
			if implicit || len(cur.points) == 0 {
				continue
			}
			cur.closed = true
			start := cur.points[0]
			flush()
			cur.points = []vec.Vec2{start}
			implicit = true
		}
	}
	flush()
	return res
}

// pieces returns the number of line segments needed for a curve whose
// deviation measure is m.
func pieces(m, tol float64) int {
	if m <= 0 || tol <= 0 {
		return 1
	}
	n := math.Ceil(math.Sqrt(m / tol))
	return int(min(max(n, 1), 1000))
}

// flatten returns the points of the first subpath of d.
func flatten(d *path.Data, tol float64) []vec.Vec2 {
	sp := subpaths(d, tol)
	if len(sp) == 0 {
		return nil
	}
	return sp[0].points
}

const zeroLength = 1e-10

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


// Package anchor resolves symbolic references to points of a projected
// wireframe solid.
//
// An [Anchor] names a vertex, a point on an edge, or the centroid of a
// face.  Anchors are resolved against a [Table] of projected vertex
// positions and a map from face names to vertex indices.  Resolution never
// fails loudly: a reference to a vertex or face which does not exist makes
// the anchor unresolved, and drawing helpers skip anything which depends on
// an unresolved anchor.
package anchor

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Anchor is a symbolic reference to a point.
// The concrete types are [Vertex], [EdgeMidpoint], [EdgePoint] and
// [FaceCentroid].
type Anchor interface {
	isAnchor()
}

// Vertex refers to a vertex by index.
type Vertex struct {
	Index int
}

// EdgeMidpoint refers to the midpoint between vertices A and B.
type EdgeMidpoint struct {
	A, B int
}

// EdgePoint refers to the point A + T·(B−A).  T is clamped to [0, 1].
type EdgePoint struct {
	A, B int
	T    float64
}

// FaceCentroid refers to the mean of the vertices of a named face.
type FaceCentroid struct {
	Face string
}

func (Vertex) isAnchor()       {}
func (EdgeMidpoint) isAnchor() {}
func (EdgePoint) isAnchor()    {}
func (FaceCentroid) isAnchor() {}

// Table holds the projected vertices of a solid, together with the faces
// of the solid given as lists of vertex indices.
type Table struct {
	Vertices []vec.Vec2
	Faces    map[string][]int
}

// Vertex returns the vertex with index i.
// The second return value is false if there is no such vertex.
func (t *Table) Vertex(i int) (vec.Vec2, bool) {
	if t == nil || i < 0 || i >= len(t.Vertices) {
		return vec.Vec2{}, false
	}
	p := t.Vertices[i]
	if !finite(p) {
		return vec.Vec2{}, false
	}
	return p, true
}

// Resolve returns the point an anchor refers to.
// The second return value is false if the anchor cannot be resolved.
func Resolve(a Anchor, t *Table) (vec.Vec2, bool) {
	switch a := a.(type) {
	case Vertex:
		return t.Vertex(a.Index)
	case EdgeMidpoint:
		return t.edge(a.A, a.B, 0.5)
	case EdgePoint:
		if math.IsNaN(a.T) {
			return vec.Vec2{}, false
		}
		return t.edge(a.A, a.B, min(max(a.T, 0), 1))
	case FaceCentroid:
		if t == nil {
			return vec.Vec2{}, false
		}
		var sum vec.Vec2
		n := 0
		for _, i := range t.Faces[a.Face] {
			p, ok := t.Vertex(i)
			if !ok {
				continue
			}
			sum = sum.Add(p)
			n++
		}
		if n == 0 {
			return vec.Vec2{}, false
		}
		return sum.Mul(1 / float64(n)), true
	}
	return vec.Vec2{}, false
}

// ResolveAll resolves a list of anchors.  If any anchor is unresolved, the
// result is nil and false.
func ResolveAll(t *Table, anchors ...Anchor) ([]vec.Vec2, bool) {
	res := make([]vec.Vec2, len(anchors))
	for i, a := range anchors {
		p, ok := Resolve(a, t)
		if !ok {
			return nil, false
		}
		res[i] = p
	}
	return res, true
}

// edge interpolates between vertices a and b.  The form (1−t)·a + t·b
// reproduces the end points exactly for t = 0 and t = 1.
func (t *Table) edge(a, b int, s float64) (vec.Vec2, bool) {
	pa, ok := t.Vertex(a)
	if !ok {
		return vec.Vec2{}, false
	}
	pb, ok := t.Vertex(b)
	if !ok {
		return vec.Vec2{}, false
	}
	return pa.Mul(1 - s).Add(pb.Mul(s)), true
}

func finite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

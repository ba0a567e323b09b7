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


// Package wireframe describes 3D solids by their vertices, edges and faces,
// and projects them to the plane for drawing.
//
// Projection is orthographic.  Which edges are hidden is part of the
// solid's description, it is not computed from the projection.
package wireframe

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/diagram/anchor"
	"seehuhn.de/go/diagram/fit"
	"seehuhn.de/go/diagram/surface"
)

// Vec3 is a point in space.  The y axis points up.
type Vec3 struct {
	X, Y, Z float64
}

// Edge connects the vertices with indices A and B.
type Edge struct {
	A, B   int
	Hidden bool // drawn dashed
}

// Solid is a wireframe solid.
type Solid struct {
	Vertices []Vec3
	Edges    []Edge

	// Faces maps face names to the indices of their vertices, in order
	// around the face.
	Faces map[string][]int
}

// Projection describes the view onto a solid.  The solid is first turned
// by Yaw degrees about the vertical axis, so that positive values show more
// of its right side, and then tilted by Pitch degrees about the horizontal
// axis, so that positive values show more of its top.
type Projection struct {
	Yaw   float64
	Pitch float64
}

// DefaultProjection shows the front, right and top faces of a cube.
var DefaultProjection = Projection{Yaw: 30, Pitch: 20}

// ProjectRaw maps the vertices of a solid to the plane, without fitting
// them to a viewport.  The y axis of the result points down.
func ProjectRaw(sol *Solid, proj Projection) []vec.Vec2 {
	if sol == nil {
		return nil
	}
	sy, cy := math.Sincos(proj.Yaw * math.Pi / 180)
	sp, cp := math.Sincos(proj.Pitch * math.Pi / 180)
	res := make([]vec.Vec2, len(sol.Vertices))
	for i, v := range sol.Vertices {
		x := v.X*cy - v.Z*sy
		z := v.X*sy + v.Z*cy
		y := v.Y*cp - z*sp
		res[i] = vec.Vec2{X: x, Y: -y}
	}
	return res
}

// Depth returns the distance of every vertex towards the viewer, under the
// given projection.  Larger values are closer.
func Depth(sol *Solid, proj Projection) []float64 {
	if sol == nil {
		return nil
	}
	sy, cy := math.Sincos(proj.Yaw * math.Pi / 180)
	sp, cp := math.Sincos(proj.Pitch * math.Pi / 180)
	res := make([]float64, len(sol.Vertices))
	for i, v := range sol.Vertices {
		z := v.X*sy + v.Z*cy
		res[i] = z*cp + v.Y*sp
	}
	return res
}

// Project projects a solid and fits the result into a viewport of size
// w×h with the given padding.  The returned table can be used to resolve
// anchors on the solid.  A nil solid gives an empty table.
func Project(sol *Solid, proj Projection, w, h, padding float64) *anchor.Table {
	if sol == nil {
		return &anchor.Table{}
	}
	pts := ProjectRaw(sol, proj)
	tr := fit.ComputeYDown(pts, w, h, padding)
	faces := make(map[string][]int, len(sol.Faces))
	for name, idx := range sol.Faces {
		faces[name] = slices.Clone(idx)
	}
	return &anchor.Table{
		Vertices: tr.ApplyAll(pts),
		Faces:    faces,
	}
}

// Draw draws the edges of a projected solid.  Hidden edges are dashed,
// unless st already carries a dash pattern.  Edges referring to missing
// vertices are skipped.  Nothing is drawn for a nil solid or table.
func Draw(s *surface.Surface, t *anchor.Table, sol *Solid, st surface.Style) {
	if sol == nil || t == nil {
		return
	}
	if st.Stroke == "" {
		st.Stroke = s.Theme().Stroke
	}
	hidden := st
	if hidden.Dash == nil {
		hidden.Dash = []float64{4, 3}
	}
	hidden.StrokeWidth = s.Theme().ThinStroke
	for _, e := range sol.Edges {
		es := st
		if e.Hidden {
			es = hidden
		}
		anchor.DrawSegment(s, t, anchor.Vertex{Index: e.A}, anchor.Vertex{Index: e.B}, es)
	}
}

// FaceNames returns the names of the faces of a solid, in sorted order.
func (sol *Solid) FaceNames() []string {
	return slices.Sorted(maps.Keys(sol.Faces))
}

// Cube returns an axis-aligned cube with the given edge length, centered
// on the origin.  Vertices 0–3 form the bottom face and vertices 4–7 the
// top face, each in the order front left, front right, back right, back
// left.  The three edges at the back bottom left vertex are hidden.
func Cube(size float64) *Solid {
	h := size / 2
	base := [4][2]float64{{-h, h}, {h, h}, {h, -h}, {-h, -h}}
	sol := &Solid{}
	for _, y := range []float64{-h, h} {
		for _, b := range base {
			sol.Vertices = append(sol.Vertices, Vec3{X: b[0], Y: y, Z: b[1]})
		}
	}
	for i := range 4 {
		j := (i + 1) % 4
		sol.Edges = append(sol.Edges,
			Edge{A: i, B: j},
			Edge{A: i + 4, B: j + 4},
			Edge{A: i, B: i + 4},
		)
	}
	for i := range sol.Edges {
		e := &sol.Edges[i]
		if e.A == 3 || e.B == 3 {
			e.Hidden = true
		}
	}
	sol.Faces = map[string][]int{
		"bottom": {0, 1, 2, 3},
		"top":    {4, 5, 6, 7},
		"front":  {0, 1, 5, 4},
		"right":  {1, 2, 6, 5},
		"back":   {2, 3, 7, 6},
		"left":   {3, 0, 4, 7},
	}
	return sol
}

// Prism returns a right prism over a regular n-gon with circumradius r and
// the given height, centered on the origin.  Vertices 0…n−1 form the
// bottom face and n…2n−1 the top face.  For n < 3 the result is nil.
func Prism(n int, r, height float64) *Solid {
	if n < 3 {
		return nil
	}
	ring := ring(n, r)
	sol := &Solid{Faces: map[string][]int{}}
	for _, y := range []float64{-height / 2, height / 2} {
		for _, p := range ring {
			sol.Vertices = append(sol.Vertices, Vec3{X: p.X, Y: y, Z: p.Y})
		}
	}
	bottom := make([]int, n)
	top := make([]int, n)
	for i := range n {
		j := (i + 1) % n
		bottom[i] = i
		top[i] = i + n
		sol.Edges = append(sol.Edges,
			Edge{A: i, B: j},
			Edge{A: i + n, B: j + n},
			Edge{A: i, B: i + n},
		)
		sol.Faces[fmt.Sprintf("side%d", i)] = []int{i, j, j + n, i + n}
	}
	sol.Faces["bottom"] = bottom
	sol.Faces["top"] = top
	return sol
}

// Pyramid returns a right pyramid over a regular n-gon with circumradius r
// and the given height.  The base is centered on the origin; vertices
// 0…n−1 form the base and vertex n is the apex.  For n < 3 the result is
// nil.
func Pyramid(n int, r, height float64) *Solid {
	if n < 3 {
		return nil
	}
	sol := &Solid{Faces: map[string][]int{}}
	base := make([]int, n)
	for i, p := range ring(n, r) {
		sol.Vertices = append(sol.Vertices, Vec3{X: p.X, Y: 0, Z: p.Y})
		base[i] = i
	}
	sol.Vertices = append(sol.Vertices, Vec3{Y: height})
	for i := range n {
		j := (i + 1) % n
		sol.Edges = append(sol.Edges, Edge{A: i, B: j}, Edge{A: i, B: n})
		sol.Faces[fmt.Sprintf("side%d", i)] = []int{i, j, n}
	}
	sol.Faces["base"] = base
	return sol
}

// ring returns the corners of a regular n-gon in the xz-plane, starting
// at the front.
func ring(n int, r float64) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	for i := range res {
		phi := math.Pi/2 - 2*math.Pi*float64(i)/float64(n)
		res[i] = vec.Vec2{X: r * math.Cos(phi), Y: r * math.Sin(phi)}
	}
	return res
}

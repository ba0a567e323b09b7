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


// Package label places text labels so that they avoid shapes and each
// other.
//
// All routines are total and bounded: they always return a position, and
// the work done is limited by a fixed iteration cap or by the number of
// labels.  Placement is deterministic but not globally optimal.
package label

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/diagram"
	"seehuhn.de/go/diagram/geometry"
)

// Box returns the rectangle of size w×h centered on c.
func Box(c vec.Vec2, w, h float64) rect.Rect {
	return rect.Rect{
		LLx: c.X - w/2, LLy: c.Y - h/2,
		URx: c.X + w/2, URy: c.Y + h/2,
	}
}

// An Obstacle is something a label must not overlap.
type Obstacle interface {
	Overlaps(r rect.Rect) bool
}

// Polygon is a polygonal obstacle.  Labels keep a distance of at least
// Pad from it.
type Polygon struct {
	Points []vec.Vec2
	Pad    float64
}

// Overlaps implements the [Obstacle] interface.
func (p Polygon) Overlaps(r rect.Rect) bool {
	return geometry.PolygonIntersectsRect(p.Points, r, p.Pad)
}

// Boxes is an obstacle made of rectangles, for example already placed
// labels.
type Boxes []rect.Rect

// Overlaps implements the [Obstacle] interface.
func (b Boxes) Overlaps(r rect.Rect) bool {
	for _, box := range b {
		if geometry.RectsOverlap(box, r) {
			return true
		}
	}
	return false
}

// Union combines several obstacles.
type Union []Obstacle

// Overlaps implements the [Obstacle] interface.
func (u Union) Overlaps(r rect.Rect) bool {
	for _, o := range u {
		if o != nil && o.Overlaps(r) {
			return true
		}
	}
	return false
}

// SearchConfig controls [SearchOutward].
// A nil *SearchConfig selects the defaults.
type SearchConfig struct {
	BaseDistance float64 // first offset from the preferred position, default 4
	Step         float64 // increment per step, default 2
	MaxSteps     int     // iteration cap per direction, default 50
}

var defaultSearch = SearchConfig{BaseDistance: 4, Step: 2, MaxSteps: 50}

func (c *SearchConfig) withDefaults() SearchConfig {
	res := defaultSearch
	if c == nil {
		return res
	}
	if c.BaseDistance > 0 {
		res.BaseDistance = c.BaseDistance
	}
	if c.Step > 0 {
		res.Step = c.Step
	}
	if c.MaxSteps > 0 {
		res.MaxSteps = c.MaxSteps
	}
	return res
}

// Placement is the result of a label search.
type Placement struct {
	Pos   vec.Vec2 // center of the label
	Steps int      // number of positions tried after the preferred one
	Clear bool     // whether the label at Pos avoids the obstacle
}

// Box returns the label rectangle at the chosen position.
func (p Placement) Box(w, h float64) rect.Rect {
	return Box(p.Pos, w, h)
}

// SearchOutward places a w×h label near the preferred position pref.
//
// If the label does not overlap obs at pref, pref is returned unchanged.
// Otherwise two candidate directions are searched, dir and −dir: along
// each, the label is moved away from pref, first by the base distance and
// then by one step at a time, until it clears the obstacle or the
// iteration cap is reached.  The direction which needs fewer steps wins;
// on a tie dir is used.  If neither direction finds a clear position, the
// last position tried along dir is returned with Clear set to false.
//
// A zero dir searches upwards and downwards on the page.
func SearchOutward(pref vec.Vec2, w, h float64, dir vec.Vec2, obs Obstacle, cfg *SearchConfig) Placement {
	if obs == nil || !obs.Overlaps(Box(pref, w, h)) {
		return Placement{Pos: pref, Clear: true}
	}

	c := cfg.withDefaults()
	l := dir.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		dir = vec.Vec2{X: 0, Y: -1}
	} else {
		dir = dir.Mul(1 / l)
	}

	out, outLast, outOK := search(pref, w, h, dir, obs, c)
	in, _, inOK := search(pref, w, h, dir.Mul(-1), obs, c)
	switch {
	case outOK && (!inOK || out.Steps <= in.Steps):
		return out
	case inOK:
		return in
	}
	diagram.Logger().Debug("label: no clear position found",
		"x", pref.X, "y", pref.Y, "steps", c.MaxSteps)
	return Placement{Pos: outLast, Steps: c.MaxSteps}
}

// search walks along dir.  It returns the first clear placement, or the
// last position tried and false.
func search(pref vec.Vec2, w, h float64, dir vec.Vec2, obs Obstacle, c SearchConfig) (Placement, vec.Vec2, bool) {
	var p vec.Vec2
	for k := range c.MaxSteps {
		d := c.BaseDistance + float64(k)*c.Step
		p = pref.Add(dir.Mul(d))
		if !obs.Overlaps(Box(p, w, h)) {
			return Placement{Pos: p, Steps: k + 1, Clear: true}, p, true
		}
	}
	return Placement{}, p, false
}

// Outward returns the unit vector pointing from center towards p.
// If the two points coincide, the result is the zero vector.
func Outward(center, p vec.Vec2) vec.Vec2 {
	return p.Sub(center).Normalize()
}

// EdgeNormal returns the unit normal of the edge from a to b which points
// away from the given interior point.
func EdgeNormal(a, b, interior vec.Vec2) vec.Vec2 {
	n := b.Sub(a).Rot90().Normalize()
	if n == (vec.Vec2{}) {
		return Outward(interior, a)
	}
	if n.Dot(vec.Middle(a, b).Sub(interior)) < 0 {
		n = n.Neg()
	}
	return n
}

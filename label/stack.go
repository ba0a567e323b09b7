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


package label

import (
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// StackItem is a label which can move along a shared axis.
type StackItem struct {
	Pref float64 // preferred center position along the axis
	Size float64 // extent of the label along the axis
}

// RelaxStack spreads labels along an axis so that neighbouring labels are
// at least gap apart, keeping them as close as possible to their preferred
// positions within [lo, hi].  The result gives the center position of
// every label, indexed like items.
//
// Labels are processed in order of their preferred positions.  A forward
// pass pushes every label past its predecessor; a single backward pass
// then moves labels which overflow hi back towards lo.  If the labels do
// not fit into [lo, hi] at all, the first labels extend below lo.
func RelaxStack(items []StackItem, gap, lo, hi float64) []float64 {
	n := len(items)
	pos := make([]float64, n)
	if n == 0 {
		return pos
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		pa, pb := items[a].Pref, items[b].Pref
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		}
		return 0
	})

	half := func(i int) float64 { return max(items[i].Size, 0) / 2 }

	prev := -1
	for _, i := range order {
		p := min(max(items[i].Pref, lo+half(i)), hi-half(i))
		if prev >= 0 {
			p = max(p, pos[prev]+half(prev)+gap+half(i))
		}
		pos[i] = p
		prev = i
	}

	last := order[n-1]
	if pos[last]+half(last) > hi {
		pos[last] = hi - half(last)
		for k := n - 2; k >= 0; k-- {
			i, next := order[k], order[k+1]
			pos[i] = min(pos[i], pos[next]-half(next)-gap-half(i))
		}
	}
	return pos
}

// Placer places labels one at a time, so that every label avoids the
// shapes registered with the placer and all previously placed labels.
type Placer struct {
	Config *SearchConfig

	shapes Union
	placed Boxes
}

// NewPlacer returns a placer which avoids the given obstacles.
func NewPlacer(cfg *SearchConfig, obstacles ...Obstacle) *Placer {
	return &Placer{
		Config: cfg,
		shapes: slices.Clone(Union(obstacles)),
	}
}

// AddObstacle registers another shape to avoid.
func (p *Placer) AddObstacle(o Obstacle) {
	p.shapes = append(p.shapes, o)
}

// Place finds a position for a w×h label near pref, searching along dir
// and −dir as [SearchOutward] does, and records the chosen box.
func (p *Placer) Place(pref vec.Vec2, w, h float64, dir vec.Vec2) Placement {
	res := SearchOutward(pref, w, h, dir, p.obstacle(), p.Config)
	p.placed = append(p.placed, res.Box(w, h))
	return res
}

// PlaceNear tries the positions above, below, right and left of anchor,
// then the four diagonals, each gap away from anchor.  The first clear
// position is used.  If none is clear, the label is placed by searching
// upwards from the position above the anchor.
func (p *Placer) PlaceNear(anchor vec.Vec2, w, h, gap float64) Placement {
	dx := w/2 + gap
	dy := h/2 + gap
	candidates := []vec.Vec2{
		{X: 0, Y: -dy}, {X: 0, Y: dy}, {X: dx, Y: 0}, {X: -dx, Y: 0},
		{X: dx, Y: -dy}, {X: -dx, Y: -dy}, {X: dx, Y: dy}, {X: -dx, Y: dy},
	}
	obs := p.obstacle()
	for _, c := range candidates {
		pos := anchor.Add(c)
		if !obs.Overlaps(Box(pos, w, h)) {
			p.placed = append(p.placed, Box(pos, w, h))
			return Placement{Pos: pos, Clear: true}
		}
	}
	return p.Place(anchor.Add(candidates[0]), w, h, vec.Vec2{X: 0, Y: -1})
}

// Placed returns the boxes of all labels placed so far.
func (p *Placer) Placed() []rect.Rect {
	return slices.Clone([]rect.Rect(p.placed))
}

func (p *Placer) obstacle() Obstacle {
	return Union{p.shapes, p.placed}
}

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


// Package raster renders finalized diagrams to grayscale bitmaps.
//
// The package is meant for previews and visual regression tests of
// diagrams; the SVG output of package surface remains the primary format.
// Paths are rasterized with exact area coverage, so that edges are
// anti-aliased.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// segment is a non-horizontal line segment in device coordinates.
type segment struct {
	x0, y0 float64
	x1, y1 float64
	slope  float64 // dx/dy
}

func (s *segment) top() float64    { return min(s.y0, s.y1) }
func (s *segment) bottom() float64 { return max(s.y0, s.y1) }

// xAt returns the x coordinate of the segment's line at height y.
func (s *segment) xAt(y float64) float64 {
	return s.x0 + s.slope*(y-s.y0)
}

// Rasterizer computes the fraction of every pixel covered by a filled
// path.  Buffers are kept between calls, so a Rasterizer should be reused
// for many paths.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip restricts the output to this rectangle of device pixels.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.
	Flatness float64

	// denseLimit is the largest bounding box area, in pixels, for which a
	// path is rasterized using a full 2D buffer.  Larger paths are
	// processed one scanline at a time.
	denseLimit int

	segs   []segment
	active []int
	cover  []float32 // signed height of crossings per pixel, later coverage
	area   []float32 // signed area right of the crossings per pixel
	rowLo  []int
	rowHi  []int
	splits []float64

	haveBox                bool
	boxX0, boxX1           float64
	boxY0, boxY1           float64
	cur, start             vec.Vec2
	havePoint, needClosing bool
}

// NewRasterizer returns a rasterizer for the given device clip rectangle.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		denseLimit: denseLimit,
	}
}

// Reset prepares the rasterizer for a new clip rectangle and restores the
// default transformation and flatness.  Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.segs = r.segs[:0]
	r.active = r.active[:0]
}

// Emit receives the coverage of one pixel row.  The slice holds the
// coverage of the pixels xMin, xMin+1, ... and is only valid during the
// call.
type Emit func(y, xMin int, coverage []float32)

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit Emit) {
	r.fill(p, false, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit Emit) {
	r.fill(p, true, emit)
}

func (r *Rasterizer) fill(p *path.Data, evenOdd bool, emit Emit) {
	x0, x1, y0, y1, ok := r.collect(p)
	if !ok {
		return
	}
	if (x1-x0)*(y1-y0) < r.denseLimit {
		r.fillDense(x0, x1, y0, y1, evenOdd, emit)
	} else {
		r.fillScan(x0, x1, y0, y1, evenOdd, emit)
	}
}

// collect converts p into device space segments.  It returns the pixel
// box of the segments, clipped to r.Clip.
func (r *Rasterizer) collect(p *path.Data) (x0, x1, y0, y1 int, ok bool) {
	r.segs = r.segs[:0]
	r.haveBox = false
	r.havePoint = false

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.closeSubpath()
			r.start = p.Coords[k]
			r.cur = r.start
			r.havePoint = true
			k++
		case path.CmdLineTo:
			r.lineTo(p.Coords[k])
			k++
		case path.CmdQuadTo:
			r.quadTo(p.Coords[k], p.Coords[k+1])
			k += 2
		case path.CmdCubeTo:
			r.cubeTo(p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			k += 3
		case path.CmdClose:
			r.closeSubpath()
		}
	}
	r.closeSubpath()

	if !r.haveBox {
		return 0, 0, 0, 0, false
	}
	x0 = max(int(math.Floor(r.boxX0)), int(r.Clip.LLx))
	x1 = min(int(math.Floor(r.boxX1))+1, int(r.Clip.URx))
	y0 = max(int(math.Floor(r.boxY0)), int(r.Clip.LLy))
	y1 = min(int(math.Floor(r.boxY1))+1, int(r.Clip.URy))
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	return x0, x1, y0, y1, true
}

// closeSubpath joins the current point to the start of the subpath.
// Filling implicitly closes every subpath.
func (r *Rasterizer) closeSubpath() {
	if r.havePoint && r.cur != r.start {
		r.addSegment(r.cur, r.start)
	}
	r.cur = r.start
}

func (r *Rasterizer) lineTo(p vec.Vec2) {
	r.addSegment(r.cur, p)
	r.cur = p
}

// quadTo flattens a quadratic Bézier curve.  The number of pieces follows
// from the device space size of the second difference of the control
// points.
func (r *Rasterizer) quadTo(p1, p2 vec.Vec2) {
	p0 := r.cur
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		r.lineTo(p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t)))
	}
}

// cubeTo flattens a cubic Bézier curve, choosing the number of pieces
// with Wang's formula.
func (r *Rasterizer) cubeTo(p1, p2, p3 vec.Vec2) {
	p0 := r.cur
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		r.lineTo(p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t)))
	}
}

// linear applies the linear part of the CTM to v.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}
}

// addSegment maps a user space segment to device space and records it.
// Horizontal segments do not contribute to coverage and are dropped.
func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	m := r.CTM
	ax := m[0]*a.X + m[2]*a.Y + m[4]
	ay := m[1]*a.X + m[3]*a.Y + m[5]
	bx := m[0]*b.X + m[2]*b.Y + m[4]
	by := m[1]*b.X + m[3]*b.Y + m[5]

	dy := by - ay
	if math.Abs(dy) < horizontalLimit || math.IsNaN(dy) {
		return
	}
	r.segs = append(r.segs, segment{x0: ax, y0: ay, x1: bx, y1: by, slope: (bx - ax) / dy})

	if !r.haveBox {
		r.boxX0, r.boxX1 = min(ax, bx), max(ax, bx)
		r.boxY0, r.boxY1 = min(ay, by), max(ay, by)
		r.haveBox = true
		return
	}
	r.boxX0 = min(r.boxX0, ax, bx)
	r.boxX1 = max(r.boxX1, ax, bx)
	r.boxY0 = min(r.boxY0, ay, by)
	r.boxY1 = max(r.boxY1, ay, by)
}

// Coverage is computed from two accumulators per pixel.  Where a segment
// crosses pixel x within the current row, with signed height h (positive
// for downward segments) at horizontal offset f ∈ [0, 1) inside the pixel:
//
//	cover[x] += h
//	area[x]  += h·(1−f)
//
// Scanning the row from left to right, the signed coverage of pixel x is
// area[x] plus the sum of cover over all pixels left of x.  Crossings left
// of the buffer are folded into its first pixel.

// accumulate adds the part of s inside row y to cover and area, which
// hold the pixels x0, ..., x1−1.
func (r *Rasterizer) accumulate(s *segment, y int, cover, area []float32, x0, x1 int) {
	yt := max(float64(y), s.top())
	yb := min(float64(y+1), s.bottom())
	if yb <= yt {
		return
	}
	sign := float32(1)
	if s.y1 < s.y0 {
		sign = -1
	}

	xt, xb := s.xAt(yt), s.xAt(yb)
	left, right := int(math.Floor(min(xt, xb))), int(math.Floor(max(xt, xb)))
	switch {
	case right < x0:
		h := sign * float32(yb-yt)
		cover[0] += h
		area[0] += h
		return
	case left >= x1:
		return
	case left == right:
		r.deposit(s, yt, yb, sign, left, cover, area, x0, x1)
		return
	}

	// split the piece where it crosses the vertical pixel boundaries
	r.splits = append(r.splits[:0], yt, yb)
	for x := left + 1; x <= right; x++ {
		yx := s.y0 + (float64(x)-s.x0)/s.slope
		if yx > yt && yx < yb {
			r.splits = append(r.splits, yx)
		}
	}
	slices.Sort(r.splits)
	for i := 1; i < len(r.splits); i++ {
		ya, yb := r.splits[i-1], r.splits[i]
		if yb <= ya {
			continue
		}
		xm := s.xAt((ya + yb) / 2)
		r.deposit(s, ya, yb, sign, int(math.Floor(xm)), cover, area, x0, x1)
	}
}

// deposit records a piece of s between heights ya and yb which lies inside
// pixel column px.
func (r *Rasterizer) deposit(s *segment, ya, yb float64, sign float32, px int, cover, area []float32, x0, x1 int) {
	h := sign * float32(yb-ya)
	switch {
	case px < x0:
		cover[0] += h
		area[0] += h
	case px < x1:
		f := s.xAt((ya+yb)/2) - float64(px)
		cover[px-x0] += h
		area[px-x0] += h * float32(1-f)
	}
}

// resolve turns the accumulators of one row into coverage values, in place
// in cover.
func resolve(cover, area []float32, evenOdd bool) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		if evenOdd {
			v -= 2 * float32(int(v/2))
			if v > 1 {
				v = 2 - v
			}
		} else if v > 1 {
			v = 1
		}
		cover[i] = v
	}
}

// nonZero returns the part of c between the first and the last non-zero
// value, together with its offset.
func nonZero(c []float32) ([]float32, int) {
	lo, hi := 0, len(c)
	for lo < hi && c[lo] == 0 {
		lo++
	}
	for hi > lo && c[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return c[lo:hi], lo
}

// column returns the clamped pixel column, relative to x0, of the middle of
// the part of s inside row y.
func (s *segment) column(y, x0, x1 int) (int, bool) {
	yt := max(float64(y), s.top())
	yb := min(float64(y+1), s.bottom())
	if yb <= yt {
		return 0, false
	}
	x := int(math.Floor(s.xAt((yt + yb) / 2)))
	return min(max(x, x0), x1-1) - x0, true
}

// fillDense accumulates all rows at once in a 2D buffer.
func (r *Rasterizer) fillDense(x0, x1, y0, y1 int, evenOdd bool, emit Emit) {
	w, h := x1-x0, y1-y0
	r.cover = slices.Grow(r.cover[:0], w*h)[:w*h]
	r.area = slices.Grow(r.area[:0], w*h)[:w*h]
	clear(r.cover)
	clear(r.area)
	r.rowLo = slices.Grow(r.rowLo[:0], h)[:h]
	r.rowHi = slices.Grow(r.rowHi[:0], h)[:h]
	for i := range h {
		r.rowLo[i], r.rowHi[i] = w, -1
	}

	for i := range r.segs {
		s := &r.segs[i]
		ya := max(int(math.Floor(s.top())), y0)
		yb := min(int(math.Floor(s.bottom()))+1, y1)
		for y := ya; y < yb; y++ {
			row := y - y0
			off := row * w
			r.accumulate(s, y, r.cover[off:off+w], r.area[off:off+w], x0, x1)
			if c, ok := s.column(y, x0, x1); ok {
				r.rowLo[row] = min(r.rowLo[row], c)
				r.rowHi[row] = max(r.rowHi[row], c)
			}
		}
	}

	for row := range h {
		if r.rowHi[row] < 0 {
			continue
		}
		off := row * w
		c := r.cover[off : off+w]
		resolve(c, r.area[off:off+w], evenOdd)
		if c, k := nonZero(c); c != nil {
			emit(y0+row, x0+k, c)
		}
	}
}

// fillScan processes one row at a time, keeping a list of the segments
// which intersect the current row.
func (r *Rasterizer) fillScan(x0, x1, y0, y1 int, evenOdd bool, emit Emit) {
	w := x1 - x0
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.segs, func(a, b segment) int {
		return cmp.Compare(a.top(), b.top())
	})
	r.active = r.active[:0]
	next := 0

	for y := y0; y < y1; y++ {
		for next < len(r.segs) && r.segs[next].top() < float64(y+1) {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			s := &r.segs[r.active[i]]
			if s.bottom() <= float64(y) {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(s, y, r.cover, r.area, x0, x1)
			if _, ok := s.column(y, x0, x1); ok {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		resolve(r.cover, r.area, evenOdd)
		if c, k := nonZero(r.cover); c != nil {
			emit(y, x0+k, c)
		}
	}
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// horizontalLimit is the smallest vertical extent of a segment which
	// contributes to coverage.
	horizontalLimit = 1e-10

	denseLimit = 65536
)

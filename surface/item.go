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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Item is one entry in the command buffer of a [Surface].
// The concrete types are [*Line], [*Polyline], [*Polygon], [*Circle],
// [*Ellipse], [*Rect], [*Path], [*Text], [*Group] and [*EndGroup].
type Item interface {
	isItem()
}

// Style describes how a shape is stroked and filled.
// The zero value draws nothing: no stroke and no fill.
type Style struct {
	Stroke      string  // stroke color, "" for no stroke
	StrokeWidth float64 // zero means the theme's default width
	Fill        string  // fill color, "" for no fill

	// Opacity and FillOpacity are in the range (0, 1].
	// Zero means fully opaque.
	Opacity     float64
	FillOpacity float64

	Dash []float64 // dash pattern, nil for solid lines

	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// MarkerStart and MarkerEnd give the ids of marker definitions
	// registered with [Surface.AddDef].
	MarkerStart string
	MarkerEnd   string

	EvenOdd bool // use the even-odd fill rule instead of nonzero
}

// Stroked returns a style which strokes shapes with the given color and
// width, without filling them.
func Stroked(color string, width float64) Style {
	return Style{Stroke: color, StrokeWidth: width}
}

// Filled returns a style which fills shapes with fill and outlines them
// with stroke.  An empty stroke color gives shapes without outline.
func Filled(fill, stroke string, width float64) Style {
	return Style{Fill: fill, Stroke: stroke, StrokeWidth: width}
}

// TextAnchor selects which point of the text is placed at its position.
type TextAnchor int

// These are the supported text anchors.
const (
	AnchorStart TextAnchor = iota
	AnchorMiddle
	AnchorEnd
)

// Baseline selects the vertical alignment of text relative to its
// position.
type Baseline int

// These are the supported baselines.
const (
	BaselineAlphabetic Baseline = iota
	BaselineMiddle
	BaselineHanging
)

// TextStyle describes how text is drawn.
// Zero values are replaced by the theme defaults.
type TextStyle struct {
	Size     float64
	Anchor   TextAnchor
	Baseline Baseline
	Rotate   float64 // degrees, clockwise on the page, about the text position
	Fill     string
	Family   string
	Bold     bool
	Italic   bool
}

// Line is a straight line segment.
type Line struct {
	P0, P1 vec.Vec2
	Style  Style
}

// Polyline is an open sequence of line segments.
type Polyline struct {
	Points []vec.Vec2
	Style  Style
}

// Polygon is a closed polygon.  No validity checks are performed;
// self-intersecting polygons are filled according to Style.EvenOdd.
type Polygon struct {
	Points []vec.Vec2
	Style  Style
}

// Circle is a circle given by center and radius.
type Circle struct {
	Center vec.Vec2
	R      float64
	Style  Style
}

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	Center vec.Vec2
	RX, RY float64
	Style  Style
}

// Rect is an axis-aligned rectangle with optional rounded corners.
type Rect struct {
	X, Y, W, H float64
	RX         float64 // corner radius
	Style      Style
}

// Path is a general path built from lines and Bézier curves.
type Path struct {
	Data  *path.Data
	Style Style
}

// Text is a single line of text.
type Text struct {
	At      vec.Vec2
	Content string
	Style   TextStyle

	// Width is the estimated advance width, from the surface's text
	// measurer, in the coordinates of At.
	Width float64
}

// Group starts a group of items which share a transform or a clip region.
// Each Group is matched by a later [EndGroup].
type Group struct {
	// Transform is the ambient transform added by this group.
	// Nil means the group only clips.
	Transform *Transform

	// ClipID is the id of the clipPath definition, or "".
	ClipID string

	// Clip is the clip rectangle, in the coordinates in effect at the
	// start of the group.  Only meaningful if ClipID is set.
	Clip rect.Rect
}

// EndGroup closes the most recent open [Group].
type EndGroup struct{}

func (*Line) isItem()     {}
func (*Polyline) isItem() {}
func (*Polygon) isItem()  {}
func (*Circle) isItem()   {}
func (*Ellipse) isItem()  {}
func (*Rect) isItem()     {}
func (*Path) isItem()     {}
func (*Text) isItem()     {}
func (*Group) isItem()    {}
func (*EndGroup) isItem() {}

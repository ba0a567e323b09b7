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

// Package diagram is the shared kernel for rendering educational math
// diagrams as SVG documents.
//
// The kernel is split into small packages, leaves first:
//
//   - [seehuhn.de/go/diagram/geometry]: point-in-polygon, segment and
//     rectangle intersection, ray casts and polygon sector walks.
//   - [seehuhn.de/go/diagram/fit]: fits a point set into a viewport.
//   - [seehuhn.de/go/diagram/surface]: an extent-tracking drawing surface
//     which sizes its viewport only when finalized.
//   - [seehuhn.de/go/diagram/anchor]: symbolic points on projected
//     wireframes.
//   - [seehuhn.de/go/diagram/label]: bounded, deterministic label placement.
//   - [seehuhn.de/go/diagram/wireframe]: solids and their projection.
//
// Finalized diagrams can also be exported as grayscale PNG previews by
// [seehuhn.de/go/diagram/raster] and as PDF by
// [seehuhn.de/go/diagram/pdfout].
//
// A render builds geometry in data space, computes a fit transform,
// projects the points, issues draw calls against a fresh surface and
// finally calls Finalize.  Nothing is shared between renders except the
// read-only theme table, so independent renders can run concurrently
// without coordination.
package diagram

//go:generate go run ./testcases/export

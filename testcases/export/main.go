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


// Command export writes every test case diagram as SVG, PNG preview and
// PDF, together with an index in JSON format.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/diagram/pdfout"
	"seehuhn.de/go/diagram/raster"
	"seehuhn.de/go/diagram/surface"
	"seehuhn.de/go/diagram/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/diagrams", "output directory")
	scale := flag.Float64("scale", 2, "pixels per unit for PNG previews")
	flag.Parse()

	if err := run(*outDir, *scale); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type jsonCase struct {
	Name     string     `json:"name"`
	Viewport [4]float64 `json:"viewport"`
	Items    int        `json:"items"`
}

func run(outDir string, scale float64) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	var index struct {
		Diagrams []jsonCase `json:"diagrams"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			res := testcases.Render(tc)
			if err := export(outDir, name, &res, scale); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			index.Diagrams = append(index.Diagrams, jsonCase{
				Name:     name,
				Viewport: [4]float64{res.ViewportX, res.ViewportY, res.Width, res.Height},
				Items:    len(res.Items),
			})
		}
	}

	f, err := os.Create(filepath.Join(outDir, "index.json"))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(index); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func export(outDir, name string, res *surface.Result, scale float64) error {
	base := filepath.Join(outDir, name)

	if err := os.WriteFile(base+".svg", []byte(res.SVG()), 0o644); err != nil {
		return err
	}

	img := raster.Preview(res, &raster.Options{Scale: scale})
	f, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	if err := raster.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return pdfout.Write(res, base+".pdf")
}

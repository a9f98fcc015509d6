// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package suitmap_test

import (
	"image/color"
	"testing"

	"github.com/js-arias/ecosur/raster"
	"github.com/js-arias/ecosur/suitmap"
)

func testGrid() *raster.Grid {
	g := raster.New(4, 2, 164.0, -75.0, 0.5, -9999)
	for r := 0; r < 2; r++ {
		for c := 0; c < 4; c++ {
			g.Set(r, c, float64(c)/3)
		}
	}
	// a no data hole
	g.Set(1, 1, -9999)
	return g
}

func TestImageBounds(t *testing.T) {
	i := &suitmap.Image{
		Cols: 400,
		Grid: testGrid(),
	}
	i.Format()

	b := i.Bounds()
	if b.Dx() != 400 || b.Dy() != 200 {
		t.Errorf("bounds: got %dx%d, want 400x200", b.Dx(), b.Dy())
	}
}

func TestImageColors(t *testing.T) {
	i := &suitmap.Image{
		Cols:     400,
		Grid:     testGrid(),
		Gradient: suitmap.LightGrayScale{},
	}
	i.Format()

	// top left cell has suitability 0
	r, _, _, _ := i.At(10, 10).RGBA()
	if uint8(r>>8) != 200 {
		t.Errorf("zero suitability: got red %d, want 200", uint8(r>>8))
	}

	// top right cell has suitability 1
	r, _, _, _ = i.At(390, 10).RGBA()
	if uint8(r>>8) != 0 {
		t.Errorf("full suitability: got red %d, want 0", uint8(r>>8))
	}

	// the no data hole in the second raster row
	c := i.At(150, 150)
	if c != (color.RGBA{211, 211, 211, 255}) {
		t.Errorf("no data: got %v, want light gray", c)
	}
}

func TestGradients(t *testing.T) {
	grads := []suitmap.Gradienter{
		suitmap.HalfGrayScale{},
		suitmap.LightGrayScale{},
		suitmap.Incandescent{},
		suitmap.Iridescent{},
		suitmap.RainbowPurpleToRed{},
	}
	for _, g := range grads {
		// values outside [0,1] must be clamped
		for _, v := range []float64{-0.5, 0, 0.5, 1, 1.5} {
			c := g.Gradient(v)
			if _, _, _, a := c.RGBA(); a == 0 {
				t.Errorf("%T: value %.1f: transparent color", g, v)
			}
		}
	}
}

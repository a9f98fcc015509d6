// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package suitmap implements a map image
// for a habitat suitability raster,
// in a plate carrée (equirectangular) projection
// over the raster extent.
package suitmap

import (
	"image"
	"image/color"

	"github.com/js-arias/blind"
	"github.com/js-arias/ecosur/raster"
	"github.com/js-arias/ecosur/speckey"
)

// A Point is a georeferenced observation
// drawn over the map.
type Point struct {
	Species string
	Lat     float64
	Lon     float64
}

type Image struct {
	// Number of columns in the image
	Cols int

	// Suitability raster
	Grid *raster.Grid

	// Observation points drawn over the map
	Points []Point

	// Color keys for the observation points
	Keys *speckey.Keys

	// Contour image
	Contour image.Image

	// If gray is true,
	// it will use a gray scale.
	Gray bool

	// A Gradient color scheme
	Gradient Gradienter

	rows   int
	step   float64
	radius float64
}

func (i *Image) Format() {
	if i.Contour != nil && i.Cols != i.Contour.Bounds().Dx() {
		i.Cols = i.Contour.Bounds().Dx()
	}
	if i.Cols == 0 {
		i.Cols = i.Grid.Cols()
	}

	width := float64(i.Grid.Cols()) * i.Grid.CellSize()
	i.step = width / float64(i.Cols)
	i.rows = int(float64(i.Grid.Rows()) * i.Grid.CellSize() / i.step)
	if i.rows == 0 {
		i.rows = 1
	}

	// observation markers are two image pixels wide
	i.radius = 2 * i.step

	if i.Gradient == nil {
		if i.Gray {
			i.Gradient = LightGrayScale{}
		} else {
			i.Gradient = RainbowPurpleToRed{}
		}
	}
}

func (i *Image) ColorModel() color.Model { return color.RGBAModel }
func (i *Image) Bounds() image.Rectangle { return image.Rect(0, 0, i.Cols, i.rows) }
func (i *Image) At(x, y int) color.Color {
	if i.Contour != nil {
		_, _, _, a := i.Contour.At(x, y).RGBA()
		if a > 100 {
			return color.RGBA{A: 255}
		}
	}

	top := i.Grid.YLL() + float64(i.Grid.Rows())*i.Grid.CellSize()
	lat := top - (float64(y)+0.5)*i.step
	lon := i.Grid.XLL() + (float64(x)+0.5)*i.step

	for _, pt := range i.Points {
		dy := pt.Lat - lat
		dx := pt.Lon - lon
		if dy*dy+dx*dx > i.radius*i.radius {
			continue
		}
		if i.Keys != nil {
			if c, ok := i.Keys.Color(pt.Species); ok {
				return c
			}
		}
		return color.RGBA{A: 255}
	}

	row := int((top - lat) / i.Grid.CellSize())
	col := int((lon - i.Grid.XLL()) / i.Grid.CellSize())
	if row < 0 || row >= i.Grid.Rows() || col < 0 || col >= i.Grid.Cols() {
		return color.RGBA{211, 211, 211, 255}
	}
	v, ok := i.Grid.At(row, col)
	if !ok {
		return color.RGBA{211, 211, 211, 255}
	}
	return i.Gradient.Gradient(v)
}

// Gradienter is an interface for types
// that return a color gradient
type Gradienter interface {
	Gradient(v float64) color.Color
}

// HalfGrayScale returns a gray scale
// between 0 (black)
// and 128 (gray).
type HalfGrayScale struct{}

func (h HalfGrayScale) Gradient(v float64) color.Color {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	c := 128 - uint8(v*128)
	return color.RGBA{c, c, c, 255}
}

// LightGrayScale returns a gray scale
// between 0 (black)
// to 200 (light gray).
type LightGrayScale struct{}

func (l LightGrayScale) Gradient(v float64) color.Color {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	c := 200 - uint8(v*200)
	return color.RGBA{c, c, c, 255}
}

// Incandescent is the incandescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_incandescent>.
type Incandescent struct{}

func (i Incandescent) Gradient(v float64) color.Color {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	return blind.Sequential(blind.Incandescent, v)
}

// Iridescent is the iridescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_iridescent>.
type Iridescent struct{}

func (i Iridescent) Gradient(v float64) color.Color {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	return blind.Sequential(blind.Iridescent, v)
}

// RainbowPurpleToRed is the rainbow color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_rainbow_smooth>
// starting at purple and ending at red.
type RainbowPurpleToRed struct{}

func (r RainbowPurpleToRed) Gradient(v float64) color.Color {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	return blind.Sequential(blind.RainbowPurpleToRed, v)
}

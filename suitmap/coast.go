// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package suitmap

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jonas-p/go-shp"
	"github.com/js-arias/ecosur/raster"
)

// Coastline reads polygon or polyline shapes
// from a shapefile
// and rasterizes their outlines
// as a contour mask
// that matches the extent of the given raster grid,
// with the indicated number of image columns.
func Coastline(name string, g *raster.Grid, cols int) (image.Image, error) {
	sf, err := shp.Open(name)
	if err != nil {
		return nil, fmt.Errorf("on shapefile %q: %v", name, err)
	}
	defer sf.Close()

	if cols == 0 {
		cols = g.Cols()
	}
	width := float64(g.Cols()) * g.CellSize()
	step := width / float64(cols)
	rows := int(float64(g.Rows()) * g.CellSize() / step)
	if rows == 0 {
		rows = 1
	}
	top := g.YLL() + float64(g.Rows())*g.CellSize()

	img := image.NewRGBA(image.Rect(0, 0, cols, rows))

	toPixel := func(p shp.Point) (int, int) {
		x := int((p.X - g.XLL()) / step)
		y := int((top - p.Y) / step)
		return x, y
	}

	drawPart := func(pts []shp.Point) {
		for i := 1; i < len(pts); i++ {
			x0, y0 := toPixel(pts[i-1])
			x1, y1 := toPixel(pts[i])
			drawLine(img, x0, y0, x1, y1)
		}
	}

	for sf.Next() {
		_, s := sf.Shape()
		switch sh := s.(type) {
		case *shp.PolyLine:
			for p := range sh.Parts {
				start := sh.Parts[p]
				end := int32(len(sh.Points))
				if p < len(sh.Parts)-1 {
					end = sh.Parts[p+1]
				}
				drawPart(sh.Points[start:end])
			}
		case *shp.Polygon:
			for p := range sh.Parts {
				start := sh.Parts[p]
				end := int32(len(sh.Points))
				if p < len(sh.Parts)-1 {
					end = sh.Parts[p+1]
				}
				drawPart(sh.Points[start:end])
			}
		}
	}
	if err := sf.Err(); err != nil {
		return nil, fmt.Errorf("on shapefile %q: %v", name, err)
	}
	return img, nil
}

// drawLine draws a line segment
// using the Bresenham algorithm.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx - dy
	for {
		if (image.Point{x0, y0}).In(img.Bounds()) {
			img.Set(x0, y0, color.RGBA{A: 255})
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package suit

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/js-arias/ecosur/raster"
)

var header = []string{
	"latitude",
	"longitude",
	"suitability",
}

// CSV writes the grid as comma-separated
// (latitude, longitude, suitability) triples,
// in row-major order.
func (g *Grid) CSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			row := []string{
				strconv.FormatFloat(g.Lat(r), 'f', 6, 64),
				strconv.FormatFloat(g.Lon(c), 'f', 6, 64),
				strconv.FormatFloat(g.At(r, c), 'f', 6, 64),
			}
			if err := tab.Write(row); err != nil {
				return fmt.Errorf("while writing data: %v", err)
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

// Raster returns the grid as an ASCII raster grid
// with the given NoData sentinel.
// Raster rows run north to south.
func (g *Grid) Raster(noData float64) *raster.Grid {
	rg := raster.New(g.cols, g.rows, g.lon0, g.lat0, g.cellSize, noData)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			// raster row 0 is the northernmost row
			rg.Set(g.rows-1-r, c, g.At(r, c))
		}
	}
	return rg
}

// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package raster implements reading and writing
// of plain-text raster grids
// in the ESRI ASCII format
// used to interchange layers
// with niche modeling tools.
//
// A raster file is a 6-line header
// with the grid geometry
// followed by the cell values,
// one row per line,
// with the northernmost row first:
//
//	ncols 4
//	nrows 3
//	xllcorner 163.500000
//	yllcorner -75.200000
//	cellsize 0.060000
//	NODATA_value -9999
//	0.1 0.2 0.2 0.1
//	0.4 1.0 0.8 0.2
//	-9999 0.5 0.4 0.1
package raster

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Grid is a rectangular grid of cell values
// over a geographic extent.
// Cells without a value are kept as NaN
// in memory,
// and encoded with the NoData sentinel
// on output.
type Grid struct {
	cols, rows int
	xll, yll   float64
	cellSize   float64
	noData     float64

	// row-major, northernmost row first
	vals []float64
}

// New creates a new grid with the indicated geometry.
// All cells start without a value.
func New(cols, rows int, xll, yll, cellSize, noData float64) *Grid {
	vals := make([]float64, cols*rows)
	for i := range vals {
		vals[i] = math.NaN()
	}
	return &Grid{
		cols:     cols,
		rows:     rows,
		xll:      xll,
		yll:      yll,
		cellSize: cellSize,
		noData:   noData,
		vals:     vals,
	}
}

// Cols returns the number of columns of the grid.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows of the grid.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the size of a grid cell, in degrees.
func (g *Grid) CellSize() float64 { return g.cellSize }

// NoData returns the sentinel value for missing cells.
func (g *Grid) NoData() float64 { return g.noData }

// XLL and YLL return the coordinates
// of the lower left corner of the grid.
func (g *Grid) XLL() float64 { return g.xll }
func (g *Grid) YLL() float64 { return g.yll }

// At returns the value of a cell.
// Row 0 is the northernmost row.
// It returns false for a cell without a value.
func (g *Grid) At(row, col int) (float64, bool) {
	v := g.vals[row*g.cols+col]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Set sets the value of a cell.
// Setting a cell to the NoData sentinel
// removes its value.
func (g *Grid) Set(row, col int, v float64) {
	if v == g.noData {
		v = math.NaN()
	}
	g.vals[row*g.cols+col] = v
}

// Lon returns the longitude of the center of a column.
func (g *Grid) Lon(col int) float64 {
	return g.xll + (float64(col)+0.5)*g.cellSize
}

// Lat returns the latitude of the center of a row.
// Row 0 is the northernmost row.
func (g *Grid) Lat(row int) float64 {
	return g.yll + (float64(g.rows-1-row)+0.5)*g.cellSize
}

// Stats returns the minimum, maximum, and mean
// over the cells with a value,
// and the number of such cells.
// Missing cells are never part of a statistic.
func (g *Grid) Stats() (min, max, mean float64, n int) {
	min = math.Inf(1)
	max = math.Inf(-1)
	var sum float64
	for _, v := range g.vals {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, 0, 0, 0
	}
	return min, max, sum / float64(n), n
}

var headerKeys = []string{
	"ncols",
	"nrows",
	"xllcorner",
	"yllcorner",
	"cellsize",
	"nodata_value",
}

// Read reads a raster grid from an ASCII grid file.
// Header keys are case-insensitive;
// any cell equal to the NoData sentinel
// is stored as a missing value.
func Read(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)

	head := make(map[string]float64, len(headerKeys))
	for _, k := range headerKeys {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("header: %v", err)
			}
			return nil, fmt.Errorf("header: incomplete header: expecting %q", k)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			return nil, fmt.Errorf("header: invalid line %q", sc.Text())
		}
		key := strings.ToLower(fields[0])
		if key != k {
			return nil, fmt.Errorf("header: got key %q, expecting %q", fields[0], k)
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("header: key %q: %v", key, err)
		}
		head[key] = v
	}

	cols := int(head["ncols"])
	rows := int(head["nrows"])
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("header: invalid grid size %dx%d", cols, rows)
	}
	cell := head["cellsize"]
	if cell <= 0 {
		return nil, fmt.Errorf("header: invalid cell size %.6f", cell)
	}

	g := New(cols, rows, head["xllcorner"], head["yllcorner"], cell, head["nodata_value"])

	row := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if row >= rows {
			return nil, fmt.Errorf("on row %d: unexpected row", row+1)
		}
		fields := strings.Fields(line)
		if len(fields) != cols {
			return nil, fmt.Errorf("on row %d: got %d values, want %d", row+1, len(fields), cols)
		}
		for c, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d: column %d: %v", row+1, c+1, err)
			}
			g.Set(row, c, v)
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if row != rows {
		return nil, fmt.Errorf("got %d rows, want %d", row, rows)
	}
	return g, nil
}

// Write writes a raster grid as an ASCII grid file.
// Missing cells are written as the NoData sentinel,
// never as a NaN token.
func (g *Grid) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "ncols %d\n", g.cols)
	fmt.Fprintf(bw, "nrows %d\n", g.rows)
	fmt.Fprintf(bw, "xllcorner %.6f\n", g.xll)
	fmt.Fprintf(bw, "yllcorner %.6f\n", g.yll)
	fmt.Fprintf(bw, "cellsize %.6f\n", g.cellSize)
	fmt.Fprintf(bw, "NODATA_value %s\n", strconv.FormatFloat(g.noData, 'f', -1, 64))

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			v := g.vals[r*g.cols+c]
			if math.IsNaN(v) {
				v = g.noData
			}
			if _, err := bw.WriteString(strconv.FormatFloat(v, 'f', 6, 64)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package suit implements a habitat suitability estimator
// for a species
// from its georeferenced observations.
//
// The suitability of a grid cell
// is the geometric mean of two terms:
// a density term,
// from a kernel-weighted sum of the nearby observations,
// and an environmental term,
// from the plausibility of the cell environment
// given the covariate values
// measured at the species observations.
// With the geometric mean a zero in either term
// drives the suitability to zero:
// a suitable cell requires both
// enough nearby observations
// and a plausible environment.
package suit

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/js-arias/ecosur/obs"
	"gonum.org/v1/gonum/stat"
)

// ErrTooFewRecords is returned when a species
// has less observations than the minimum
// required for a model.
var ErrTooFewRecords = errors.New("too few observations")

// A Point is a weighted, georeferenced observation.
type Point struct {
	Lat    float64
	Lon    float64
	Weight float64
}

// Stats is the summary statistics
// of a covariate
// over the observations of a species.
type Stats struct {
	Mean float64
	Std  float64
	Min  float64
	Max  float64
	Q25  float64
	Q75  float64
	N    int
}

// A Model holds the observations
// and the environmental summary
// of a single species.
type Model struct {
	species string
	points  []Point
	env     map[obs.Covariate]Stats
}

// New creates a suitability model for a species
// from the georeferenced records of an observation table.
//
// A species with fewer than minRecords
// georeferenced observations
// is not modeled
// and ErrTooFewRecords is returned.
// A covariate enters the environmental summary
// only if the species has at least minSamples
// non-missing values for it.
// The weight of an observation is its count;
// an observation with a missing count
// weights 1.
func New(t *obs.Table, species string, minRecords, minSamples int) (*Model, error) {
	species = obs.Canon(species)

	var points []Point
	vals := make(map[obs.Covariate][]float64)
	for _, r := range t.Records() {
		if r.Species != species || !r.HasLocation() {
			continue
		}
		w := r.Count
		if math.IsNaN(w) {
			w = 1
		}
		points = append(points, Point{Lat: r.Lat, Lon: r.Lon, Weight: w})

		for cv, v := range r.Cov {
			vals[cv] = append(vals[cv], v)
		}
	}
	if len(points) < minRecords {
		return nil, fmt.Errorf("species %q: %w: %d records, want %d", species, ErrTooFewRecords, len(points), minRecords)
	}

	env := make(map[obs.Covariate]Stats)
	for cv, v := range vals {
		if len(v) < minSamples {
			continue
		}
		slices.Sort(v)
		env[cv] = Stats{
			Mean: stat.Mean(v, nil),
			Std:  stat.StdDev(v, nil),
			Min:  v[0],
			Max:  v[len(v)-1],
			Q25:  stat.Quantile(0.25, stat.Empirical, v, nil),
			Q75:  stat.Quantile(0.75, stat.Empirical, v, nil),
			N:    len(v),
		}
	}

	return &Model{
		species: species,
		points:  points,
		env:     env,
	}, nil
}

// Species returns the species of the model.
func (m *Model) Species() string {
	return m.species
}

// Points returns the observation points of the model.
func (m *Model) Points() []Point {
	return m.points
}

// Env returns the environmental summary statistics
// of the model.
func (m *Model) Env() map[obs.Covariate]Stats {
	return m.env
}

// A Grid is a suitability surface
// over a rectangular latitude-longitude mesh.
// Values are confined to [0, 1],
// with the most suitable cell at exactly 1.
type Grid struct {
	species  string
	cols     int
	rows     int
	lat0     float64 // southern edge
	lon0     float64 // western edge
	cellSize float64

	// row-major, southernmost row first
	vals []float64
}

// Margin of the grid extent
// around the observed bounding box,
// as a fraction of the observed span.
const margin = 0.15

// Grid computes the suitability surface of the model
// over the bounding box of its observations,
// expanded by a 15% margin on each axis,
// with cells of the indicated resolution
// (in degrees).
func (m *Model) Grid(resolution float64) (*Grid, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("species %q: invalid resolution %.6f", m.species, resolution)
	}

	latMin := math.Inf(1)
	latMax := math.Inf(-1)
	lonMin := math.Inf(1)
	lonMax := math.Inf(-1)
	for _, p := range m.points {
		latMin = math.Min(latMin, p.Lat)
		latMax = math.Max(latMax, p.Lat)
		lonMin = math.Min(lonMin, p.Lon)
		lonMax = math.Max(lonMax, p.Lon)
	}
	latMargin := (latMax - latMin) * margin
	lonMargin := (lonMax - lonMin) * margin
	latMin -= latMargin
	latMax += latMargin
	lonMin -= lonMargin
	lonMax += lonMargin

	rows := int(math.Ceil((latMax - latMin) / resolution))
	if rows < 1 {
		rows = 1
	}
	cols := int(math.Ceil((lonMax - lonMin) / resolution))
	if cols < 1 {
		cols = 1
	}

	g := &Grid{
		species:  m.species,
		cols:     cols,
		rows:     rows,
		lat0:     latMin,
		lon0:     lonMin,
		cellSize: resolution,
		vals:     make([]float64, cols*rows),
	}

	density := g.density(m.points)
	for r := 0; r < rows; r++ {
		env := m.envSuitability(g.Lat(r))
		for c := 0; c < cols; c++ {
			i := r*cols + c
			g.vals[i] = math.Sqrt(density[i] * env)
		}
	}
	g.rescale()

	return g, nil
}

// Density returns the density term per cell:
// a Gaussian-kernel weighted sum
// over all observation points,
// on the Euclidean distance in degrees,
// with a single global bandwidth
// set to 0.3 times the standard deviation
// of all cell-to-observation distances.
// If the bandwidth degenerates to zero,
// an inverse-distance weighting is used instead.
// The result is smoothed
// by one pass of a small Gaussian filter.
func (g *Grid) density(points []Point) []float64 {
	// global bandwidth from the distance spread
	var sum, sum2 float64
	n := 0
	for r := 0; r < g.rows; r++ {
		lat := g.Lat(r)
		for c := 0; c < g.cols; c++ {
			lon := g.Lon(c)
			for _, p := range points {
				d := math.Hypot(lat-p.Lat, lon-p.Lon)
				sum += d
				sum2 += d * d
				n++
			}
		}
	}
	mean := sum / float64(n)
	vr := sum2/float64(n) - mean*mean
	if vr < 0 {
		vr = 0
	}
	bandwidth := 0.3 * math.Sqrt(vr)

	vals := make([]float64, g.cols*g.rows)
	for r := 0; r < g.rows; r++ {
		lat := g.Lat(r)
		for c := 0; c < g.cols; c++ {
			lon := g.Lon(c)
			var w float64
			for _, p := range points {
				d := math.Hypot(lat-p.Lat, lon-p.Lon)
				if bandwidth > 0 {
					z := d / bandwidth
					w += math.Exp(-0.5*z*z) * p.Weight
				} else {
					w += p.Weight / (d + 0.01)
				}
			}
			vals[r*g.cols+c] = w
		}
	}

	return gaussianSmooth(vals, g.rows, g.cols, 1.0)
}

// GaussianSmooth applies a separable Gaussian filter
// over a row-major grid,
// renormalizing the kernel at the grid edges.
func gaussianSmooth(vals []float64, rows, cols int, sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	kernel := make([]float64, 2*radius+1)
	for i := range kernel {
		z := float64(i-radius) / sigma
		kernel[i] = math.Exp(-0.5 * z * z)
	}

	// horizontal pass
	tmp := make([]float64, len(vals))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			var v, kw float64
			for k := -radius; k <= radius; k++ {
				cc := c + k
				if cc < 0 || cc >= cols {
					continue
				}
				v += vals[r*cols+cc] * kernel[k+radius]
				kw += kernel[k+radius]
			}
			tmp[r*cols+c] = v / kw
		}
	}

	// vertical pass
	out := make([]float64, len(vals))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			var v, kw float64
			for k := -radius; k <= radius; k++ {
				rr := r + k
				if rr < 0 || rr >= rows {
					continue
				}
				v += tmp[rr*cols+c] * kernel[k+radius]
				kw += kernel[k+radius]
			}
			out[r*cols+c] = v / kw
		}
	}
	return out
}

// EnvSuitability returns the environmental term
// for a cell latitude.
//
// With fewer than two usable covariates
// the term is a uniform 0.5
// (no environmental information).
// Otherwise each covariate with a latitude proxy
// is scored as a Gaussian falloff
// around the species mean,
// and the scores are multiplied
// (covariates are assumed independent).
//
// The proxies are deterministic stand-ins
// for the Antarctic coastal zone:
// water temperature decreases poleward,
// and depth grows away from the coast.
func (m *Model) envSuitability(lat float64) float64 {
	if len(m.env) < 2 {
		return 0.5
	}

	s := 1.0
	if st, ok := m.env[obs.Temperature]; ok {
		est := -2.0 + (lat+80)*0.5
		z := (est - st.Mean) / (st.Std + 0.1)
		s *= math.Exp(-0.5 * z * z)
	}
	if st, ok := m.env[obs.Depth]; ok {
		est := 200 + math.Abs(lat+77)*100
		z := (est - st.Mean) / (st.Std + 50)
		s *= math.Exp(-0.5 * z * z)
	}
	return s
}

// Rescale rescales the grid linearly
// so that its maximum value is 1.
// A grid with a zero maximum is left unchanged.
func (g *Grid) rescale() {
	var max float64
	for _, v := range g.vals {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return
	}
	for i, v := range g.vals {
		g.vals[i] = v / max
	}
}

// Species returns the species of the grid.
func (g *Grid) Species() string {
	return g.species
}

// Cols returns the number of columns of the grid.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows of the grid.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the size of a grid cell, in degrees.
func (g *Grid) CellSize() float64 { return g.cellSize }

// At returns the suitability of a cell.
// Row 0 is the southernmost row.
func (g *Grid) At(row, col int) float64 {
	return g.vals[row*g.cols+col]
}

// Lat returns the latitude of the center of a row.
// Row 0 is the southernmost row.
func (g *Grid) Lat(row int) float64 {
	return g.lat0 + (float64(row)+0.5)*g.cellSize
}

// Lon returns the longitude of the center of a column.
func (g *Grid) Lon(col int) float64 {
	return g.lon0 + (float64(col)+0.5)*g.cellSize
}

// Max returns the maximum suitability of the grid.
func (g *Grid) Max() float64 {
	var max float64
	for _, v := range g.vals {
		if v > max {
			max = v
		}
	}
	return max
}

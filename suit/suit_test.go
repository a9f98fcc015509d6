// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package suit_test

import (
	"errors"
	"math"
	"testing"

	"github.com/js-arias/ecosur/obs"
	"github.com/js-arias/ecosur/suit"
)

func addPoint(t *obs.Table, species string, lat, lon, count float64) {
	t.Add(obs.Record{
		Species: species,
		Day:     1,
		Month:   1,
		Lat:     lat,
		Lon:     lon,
		Count:   count,
	})
}

func clusterTable() *obs.Table {
	tab := obs.New()
	// a cluster around (-74.5, 164.2)
	// and a single far away observation
	pts := []struct {
		lat, lon float64
	}{
		{-74.50, 164.20}, {-74.51, 164.22}, {-74.49, 164.18},
		{-74.52, 164.25}, {-74.48, 164.15}, {-74.50, 164.30},
		{-74.53, 164.21}, {-74.47, 164.19}, {-74.51, 164.10},
		{-74.49, 164.28}, {-74.52, 164.17}, {-74.48, 164.23},
		{-74.50, 164.26}, {-74.51, 164.16}, {-73.80, 166.00},
	}
	for _, p := range pts {
		addPoint(tab, "Adelie penguin", p.lat, p.lon, 5)
	}
	return tab
}

func TestTooFewRecords(t *testing.T) {
	tab := obs.New()
	addPoint(tab, "Emperor penguin", -74.5, 164.2, 3)

	_, err := suit.New(tab, "emperor penguin", 15, 6)
	if !errors.Is(err, suit.ErrTooFewRecords) {
		t.Errorf("got error %v, want %v", err, suit.ErrTooFewRecords)
	}
}

func TestGridBounds(t *testing.T) {
	m, err := suit.New(clusterTable(), "Adelie penguin", 15, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g, err := m.Grid(0.06)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var max float64
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			v := g.At(r, c)
			if v < 0 || v > 1 {
				t.Fatalf("cell %d,%d: suitability %.6f outside [0,1]", r, c, v)
			}
			if v > max {
				max = v
			}
		}
	}
	if max != 1 {
		t.Errorf("maximum suitability: got %.6f, want exactly 1", max)
	}
	if gm := g.Max(); gm != max {
		t.Errorf("Max: got %.6f, want %.6f", gm, max)
	}
}

// A species observed at a single location,
// on a grid coarse enough for a single cell,
// must have suitability 1 at that cell.
func TestSingleCell(t *testing.T) {
	tab := obs.New()
	addPoint(tab, "Snow petrel", -70, 170, 2)

	m, err := suit.New(tab, "Snow petrel", 1, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g, err := m.Grid(1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Rows() != 1 || g.Cols() != 1 {
		t.Fatalf("grid size: got %dx%d, want 1x1", g.Rows(), g.Cols())
	}
	if v := g.At(0, 0); v != 1 {
		t.Errorf("suitability: got %.6f, want 1", v)
	}
}

// Without enough covariates the environmental term
// is uniform, so the most suitable cell must sit
// on the densest part of the observations.
func TestDensityPeak(t *testing.T) {
	m, err := suit.New(clusterTable(), "Adelie penguin", 15, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Env()) != 0 {
		t.Fatalf("covariates: got %d, want 0", len(m.Env()))
	}

	g, err := m.Grid(0.06)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var bLat, bLon float64
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.At(r, c) == 1 {
				bLat = g.Lat(r)
				bLon = g.Lon(c)
			}
		}
	}
	if math.Abs(bLat-(-74.5)) > 0.2 || math.Abs(bLon-164.2) > 0.3 {
		t.Errorf("peak cell: got %.2f,%.2f, want near -74.50,164.20", bLat, bLon)
	}
}

func TestEnvStats(t *testing.T) {
	tab := obs.New()
	for i := 0; i < 10; i++ {
		r := obs.Record{
			Species: "Weddell seal",
			Day:     1,
			Month:   1,
			Lat:     -74.5 - float64(i)*0.01,
			Lon:     164.2 + float64(i)*0.01,
			Count:   1,
			Cov: map[obs.Covariate]float64{
				obs.Temperature: -1.0 - float64(i)*0.1,
			},
		}
		if i < 3 {
			// depth measured on a few casts only
			r.Cov[obs.Depth] = 300 + float64(i)*10
		}
		tab.Add(r)
	}

	m, err := suit.New(tab, "Weddell seal", 5, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	env := m.Env()
	if _, ok := env[obs.Depth]; ok {
		t.Errorf("depth: usable with 3 samples, want at least 6")
	}
	st, ok := env[obs.Temperature]
	if !ok {
		t.Fatalf("temperature: expecting summary statistics")
	}
	if st.N != 10 {
		t.Errorf("temperature samples: got %d, want %d", st.N, 10)
	}
	want := -1.45
	if math.Abs(st.Mean-want) > 1e-10 {
		t.Errorf("temperature mean: got %.6f, want %.6f", st.Mean, want)
	}
	if st.Min != -1.9 || st.Max != -1.0 {
		t.Errorf("temperature range: got [%.2f, %.2f], want [-1.90, -1.00]", st.Min, st.Max)
	}
}

func TestRasterRoundTrip(t *testing.T) {
	m, err := suit.New(clusterTable(), "Adelie penguin", 15, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g, err := m.Grid(0.06)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rg := g.Raster(-9999)
	if rg.Cols() != g.Cols() || rg.Rows() != g.Rows() {
		t.Fatalf("raster size: got %dx%d, want %dx%d", rg.Cols(), rg.Rows(), g.Cols(), g.Rows())
	}

	// raster rows run north to south
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			v, ok := rg.At(g.Rows()-1-r, c)
			if !ok {
				t.Fatalf("cell %d,%d: unexpected no data", r, c)
			}
			if math.Abs(v-g.At(r, c)) > 1e-10 {
				t.Errorf("cell %d,%d: got %.6f, want %.6f", r, c, v, g.At(r, c))
			}
		}
	}
}

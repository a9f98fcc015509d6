// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package ncgrid_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/batchatco/go-native-netcdf/netcdf/api"
	"github.com/batchatco/go-native-netcdf/netcdf/cdf"
	"github.com/batchatco/go-native-netcdf/netcdf/util"
	"github.com/js-arias/ecosur/ncgrid"
)

func TestFileName(t *testing.T) {
	got := ncgrid.FileName("thetao", "2023-01-15", 0)
	want := "thetao_2023-01-15_d0.asc"
	if got != want {
		t.Errorf("file name: got %q, want %q", got, want)
	}
}

func writeTestFile(t testing.TB, name string) {
	t.Helper()

	cw, err := cdf.OpenWriter(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	em, err := util.NewOrderedMap(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// latitudes run north to south
	lats := []float64{-74.0, -74.1, -74.2}
	lons := []float64{164.0, 164.1, 164.2, 164.3}
	vals := make([][]float64, len(lats))
	for i := range vals {
		vals[i] = make([]float64, len(lons))
		for j := range vals[i] {
			vals[i][j] = float64(i*10 + j)
		}
	}

	av := api.Variable{
		Values:     lats,
		Dimensions: []string{"latitude"},
		Attributes: em,
	}
	if err := cw.AddVar("latitude", av); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	av = api.Variable{
		Values:     lons,
		Dimensions: []string{"longitude"},
		Attributes: em,
	}
	if err := cw.AddVar("longitude", av); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	av = api.Variable{
		Values:     vals,
		Dimensions: []string{"latitude", "longitude"},
		Attributes: em,
	}
	if err := cw.AddVar("thetao", av); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cw.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtract(t *testing.T) {
	name := filepath.Join(t.TempDir(), "cube.nc")
	writeTestFile(t, name)

	f, err := ncgrid.Open(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	vars := f.Vars()
	if len(vars) != 1 || vars[0] != "thetao" {
		t.Fatalf("variables: got %v, want [thetao]", vars)
	}

	g, err := f.Extract("thetao", 0, 0, -9999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Cols() != 4 || g.Rows() != 3 {
		t.Fatalf("grid size: got %dx%d, want 4x3", g.Cols(), g.Rows())
	}
	if math.Abs(g.CellSize()-0.1) > 1e-10 {
		t.Errorf("cell size: got %.6f, want 0.1", g.CellSize())
	}
	if math.Abs(g.XLL()-163.95) > 1e-10 || math.Abs(g.YLL()-(-74.25)) > 1e-10 {
		t.Errorf("corner: got %.4f,%.4f, want 163.9500,-74.2500", g.XLL(), g.YLL())
	}

	// row 0 is the northernmost row
	if v, ok := g.At(0, 0); !ok || v != 0 {
		t.Errorf("north west cell: got %.2f (%v), want 0", v, ok)
	}
	if v, ok := g.At(2, 3); !ok || v != 23 {
		t.Errorf("south east cell: got %.2f (%v), want 23", v, ok)
	}
}

func TestExtractUnknownVariable(t *testing.T) {
	name := filepath.Join(t.TempDir(), "cube.nc")
	writeTestFile(t, name)

	f, err := ncgrid.Open(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	if _, err := f.Extract("so", 0, 0, -9999); err == nil {
		t.Errorf("expecting error for an undefined variable")
	}
}

// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package ncgrid extracts environmental layers
// from a NetCDF reanalysis cube
// (time x depth x latitude x longitude)
// into ASCII raster grids.
package ncgrid

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
	"github.com/js-arias/ecosur/raster"
)

// A File is an open NetCDF file.
type File struct {
	name string
	nc   api.Group
}

// Open opens a NetCDF file for reading.
func Open(name string) (*File, error) {
	nc, err := netcdf.Open(name)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return &File{name: name, nc: nc}, nil
}

// Close closes the file.
func (f *File) Close() {
	f.nc.Close()
}

// coordinate and bookkeeping variables
// that are not environmental layers.
var coords = map[string]bool{
	"time":      true,
	"depth":     true,
	"lat":       true,
	"latitude":  true,
	"lon":       true,
	"longitude": true,
	"crs":       true,
}

// Vars returns the names of the layer variables
// stored in the file,
// skipping the coordinate variables.
func (f *File) Vars() []string {
	var vars []string
	for _, v := range f.nc.ListVariables() {
		if coords[strings.ToLower(v)] {
			continue
		}
		vars = append(vars, v)
	}
	slices.Sort(vars)
	return vars
}

// FileName returns the raster file name
// used for an extracted layer.
func FileName(varName, date string, depth int) string {
	return fmt.Sprintf("%s_%s_d%d.asc", varName, date, depth)
}

// Extract reads a layer variable
// at the given time and depth indices,
// applies the packing attributes
// (scale_factor, add_offset, and fill value),
// and returns the layer as an ASCII raster grid
// with the given NoData sentinel.
// For a variable without a depth dimension
// the depth index is ignored.
func (f *File) Extract(varName string, timeIdx, depthIdx int, noData float64) (*raster.Grid, error) {
	vr, err := f.nc.GetVariable(varName)
	if err != nil {
		return nil, fmt.Errorf("on file %q: variable %q: %v", f.name, varName, err)
	}

	lats, err := f.axis("latitude", "lat")
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", f.name, err)
	}
	lons, err := f.axis("longitude", "lon")
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", f.name, err)
	}
	if len(lats) < 2 || len(lons) < 2 {
		return nil, fmt.Errorf("on file %q: variable %q: axis too small", f.name, varName)
	}
	cell := math.Abs(lats[1] - lats[0])

	v := reflect.ValueOf(vr.Values)
	for _, d := range vr.Dimensions {
		switch strings.ToLower(d) {
		case "time":
			v, err = index(v, timeIdx, d)
		case "depth":
			v, err = index(v, depthIdx, d)
		}
		if err != nil {
			return nil, fmt.Errorf("on file %q: variable %q: %v", f.name, varName, err)
		}
	}
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("on file %q: variable %q: not a gridded layer", f.name, varName)
	}
	if v.Len() != len(lats) {
		return nil, fmt.Errorf("on file %q: variable %q: %d rows, want %d", f.name, varName, v.Len(), len(lats))
	}

	scale := attrFloat(vr.Attributes, "scale_factor", 1)
	offset := attrFloat(vr.Attributes, "add_offset", 0)
	fill, hasFill := attrValue(vr.Attributes, "_FillValue")
	if !hasFill {
		fill, hasFill = attrValue(vr.Attributes, "missing_value")
	}

	// rasters run north to south
	north := lats[0] > lats[len(lats)-1]

	xll := math.Min(lons[0], lons[len(lons)-1]) - cell/2
	yll := math.Min(lats[0], lats[len(lats)-1]) - cell/2
	g := raster.New(len(lons), len(lats), xll, yll, cell, noData)

	for i := 0; i < len(lats); i++ {
		row := v.Index(i)
		if row.Kind() == reflect.Interface {
			row = row.Elem()
		}
		if row.Kind() != reflect.Slice || row.Len() != len(lons) {
			return nil, fmt.Errorf("on file %q: variable %q: bad row %d", f.name, varName, i)
		}
		r := i
		if !north {
			r = len(lats) - 1 - i
		}
		for j := 0; j < len(lons); j++ {
			raw, err := toFloat(row.Index(j))
			if err != nil {
				return nil, fmt.Errorf("on file %q: variable %q: %v", f.name, varName, err)
			}
			if hasFill && raw == fill {
				g.Set(r, j, math.NaN())
				continue
			}
			g.Set(r, j, raw*scale+offset)
		}
	}
	return g, nil
}

// axis reads a coordinate variable
// known by any of the given names.
func (f *File) axis(names ...string) ([]float64, error) {
	defined := make(map[string]bool)
	for _, v := range f.nc.ListVariables() {
		defined[strings.ToLower(v)] = true
	}

	for _, n := range names {
		if !defined[n] {
			continue
		}
		vr, err := f.nc.GetVariable(n)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %v", n, err)
		}
		v := reflect.ValueOf(vr.Values)
		if v.Kind() != reflect.Slice {
			return nil, fmt.Errorf("variable %q: not an axis", n)
		}
		ax := make([]float64, v.Len())
		for i := range ax {
			x, err := toFloat(v.Index(i))
			if err != nil {
				return nil, fmt.Errorf("variable %q: %v", n, err)
			}
			ax[i] = x
		}
		return ax, nil
	}
	return nil, fmt.Errorf("coordinate variable %q: not defined", names[0])
}

func index(v reflect.Value, i int, dim string) (reflect.Value, error) {
	if v.Kind() != reflect.Slice {
		return v, fmt.Errorf("dimension %q: not indexable", dim)
	}
	if i < 0 || i >= v.Len() {
		return v, fmt.Errorf("dimension %q: index %d out of range [0, %d)", dim, i, v.Len())
	}
	v = v.Index(i)
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	return v, nil
}

func toFloat(v reflect.Value) (float64, error) {
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		return float64(v.Int()), nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		return float64(v.Uint()), nil
	}
	return 0, fmt.Errorf("unexpected value of type %s", v.Type())
}

// attrFloat returns a numeric attribute,
// or the given default if undefined.
func attrFloat(at api.AttributeMap, name string, def float64) float64 {
	v, ok := attrValue(at, name)
	if !ok {
		return def
	}
	return v
}

func attrValue(at api.AttributeMap, name string) (float64, bool) {
	if at == nil {
		return 0, false
	}
	a, has := at.Get(name)
	if !has {
		return 0, false
	}
	v := reflect.ValueOf(a)
	if v.Kind() == reflect.Slice {
		if v.Len() == 0 {
			return 0, false
		}
		v = v.Index(0)
	}
	x, err := toFloat(v)
	if err != nil {
		return 0, false
	}
	return x, true
}

// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package params implements reading and writing
// of the analysis parameters of a survey project.
package params

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Param is a keyword to identify
// the type of parameter in a parameter file.
type Param string

// Valid parameters.
const (
	// Year is the year assumed
	// for the day-month dates of the survey tables.
	Year Param = "year"

	// Resolution is the cell size,
	// in degrees,
	// of the suitability grids.
	Resolution Param = "resolution"

	// MinRecords is the minimum number of observations
	// required to model a species.
	MinRecords Param = "minrecords"

	// MinSamples is the minimum number of non-missing values
	// required to use an environmental covariate.
	MinSamples Param = "minsamples"

	// NoData is the sentinel value
	// used for missing cells in raster files.
	NoData Param = "nodata"

	// DPI is the resolution of the output images.
	DPI Param = "dpi"
)

// Params is a collection of analysis parameters.
type Params struct {
	name string // file name

	year       int
	resolution float64
	minRecords int
	minSamples int
	noData     float64
	dpi        int
}

// New creates a new parameter collection
// with the default values.
func New(name string) *Params {
	return &Params{
		name:       name,
		year:       2023,
		resolution: 0.06,
		minRecords: 15,
		minSamples: 6,
		noData:     -9999,
		dpi:        300,
	}
}

var header = []string{
	"parameter",
	"value",
}

// Read reads a parameter file from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - parameter, the name of the parameter
//   - value, the value of the parameter
//
// Here is an example file:
//
//	# ecosur analysis parameters
//	parameter	value
//	year	2023
//	resolution	0.06
//	minrecords	15
//	nodata	-9999
func Read(name string) (*Params, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tsv := csv.NewReader(f)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("on file %q: header: %v", name, err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("on file %q: expecting field %q", name, h)
		}
	}

	p := New(name)
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on file %q: on row %d: %v", name, ln, err)
		}

		f := "parameter"
		pm := Param(strings.ToLower(row[fields[f]]))

		f = "value"
		v := strings.TrimSpace(row[fields[f]])
		switch pm {
		case Year:
			y, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("on file %q: on row %d, field %q: %v", name, ln, f, err)
			}
			if y < 1900 || y > 2100 {
				return nil, fmt.Errorf("on file %q: on row %d, field %q: invalid year %d", name, ln, f, y)
			}
			p.year = y
		case Resolution:
			r, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("on file %q: on row %d, field %q: %v", name, ln, f, err)
			}
			if r <= 0 {
				return nil, fmt.Errorf("on file %q: on row %d, field %q: invalid resolution %.6f", name, ln, f, r)
			}
			p.resolution = r
		case MinRecords:
			m, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("on file %q: on row %d, field %q: %v", name, ln, f, err)
			}
			if m < 1 {
				return nil, fmt.Errorf("on file %q: on row %d, field %q: invalid threshold %d", name, ln, f, m)
			}
			p.minRecords = m
		case MinSamples:
			m, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("on file %q: on row %d, field %q: %v", name, ln, f, err)
			}
			if m < 1 {
				return nil, fmt.Errorf("on file %q: on row %d, field %q: invalid threshold %d", name, ln, f, m)
			}
			p.minSamples = m
		case NoData:
			nd, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("on file %q: on row %d, field %q: %v", name, ln, f, err)
			}
			p.noData = nd
		case DPI:
			d, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("on file %q: on row %d, field %q: %v", name, ln, f, err)
			}
			if d < 1 {
				return nil, fmt.Errorf("on file %q: on row %d, field %q: invalid dpi %d", name, ln, f, d)
			}
			p.dpi = d
		default:
			return nil, fmt.Errorf("on file %q: on row %d: unknown parameter %q", name, ln, pm)
		}
	}
	return p, nil
}

// Name returns the name of the parameter file.
func (p *Params) Name() string {
	return p.name
}

// Year returns the year assumed for survey dates.
func (p *Params) Year() int {
	return p.year
}

// Resolution returns the cell size of the suitability grids,
// in degrees.
func (p *Params) Resolution() float64 {
	return p.resolution
}

// MinRecords returns the minimum number of observations
// required to model a species.
func (p *Params) MinRecords() int {
	return p.minRecords
}

// MinSamples returns the minimum number of values
// required to use a covariate.
func (p *Params) MinSamples() int {
	return p.minSamples
}

// NoData returns the sentinel value for missing raster cells.
func (p *Params) NoData() float64 {
	return p.noData
}

// DPI returns the resolution of the output images.
func (p *Params) DPI() int {
	return p.dpi
}

// Write writes the parameters into a file.
func (p *Params) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "# ecosur analysis parameters\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("on file %q: while writing header: %v", p.name, err)
	}

	rows := [][]string{
		{string(Year), strconv.Itoa(p.year)},
		{string(Resolution), strconv.FormatFloat(p.resolution, 'f', -1, 64)},
		{string(MinRecords), strconv.Itoa(p.minRecords)},
		{string(MinSamples), strconv.Itoa(p.minSamples)},
		{string(NoData), strconv.FormatFloat(p.noData, 'f', -1, 64)},
		{string(DPI), strconv.Itoa(p.dpi)},
	}
	for _, row := range rows {
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("on file %q: %v", p.name, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	return nil
}

// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package obs provides a table of georeferenced observation records
// from an ecological field survey.
package obs

import (
	"math"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Covariate is an environmental variable
// measured alongside an observation.
type Covariate string

// Valid covariates.
const (
	// Water temperature, in Celsius degrees.
	Temperature Covariate = "temperature"

	// Salinity, in practical salinity units.
	Salinity Covariate = "salinity"

	// Bottom depth, in meters.
	Depth Covariate = "depth"

	// Acidity.
	PH Covariate = "ph"

	// Chlorophyll-a concentration.
	Chlorophyll Covariate = "chlorophyll"

	// Dissolved oxygen concentration.
	Oxygen Covariate = "oxygen"
)

// Covariates returns the valid covariates.
func Covariates() []Covariate {
	return []Covariate{
		Temperature,
		Salinity,
		Depth,
		PH,
		Chlorophyll,
		Oxygen,
	}
}

// A Record is a single sighting or count event.
type Record struct {
	// Species is the canonical name of the observed taxon.
	Species string

	// Class is an optional category
	// (for example a taxonomic group such as "bird" or "mammal").
	Class string

	// Region is an optional sub-region code
	// (a numeric prefix with an optional letter suffix,
	// such as "5A").
	Region string

	// Day and Month of the observation.
	Day   int
	Month int

	// Geographic location in degrees.
	// If the source table has no coordinate columns
	// both values are NaN.
	Lat float64
	Lon float64

	// Count is the number of observed individuals,
	// a non-negative weight.
	Count float64

	// Cov stores the measured environmental covariates.
	// A covariate without a measure is absent from the map.
	Cov map[Covariate]float64
}

// HasLocation returns true if the record is georeferenced.
func (r Record) HasLocation() bool {
	return !math.IsNaN(r.Lat) && !math.IsNaN(r.Lon)
}

// A Table is a collection of observation records.
type Table struct {
	recs    []Record
	dropped int
}

// New creates a new empty observation table.
func New() *Table {
	return &Table{}
}

// Add adds a record to the table.
// Records without a species name are ignored.
func (t *Table) Add(r Record) {
	r.Species = Canon(r.Species)
	if r.Species == "" {
		return
	}
	r.Class = strings.ToLower(strings.Join(strings.Fields(r.Class), " "))
	r.Region = strings.ToUpper(strings.TrimSpace(r.Region))
	t.recs = append(t.recs, r)
}

// Dropped returns the number of rows
// discarded while reading the source table.
func (t *Table) Dropped() int {
	return t.dropped
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.recs)
}

// Records returns the records of the table.
func (t *Table) Records() []Record {
	return t.recs
}

// Filter returns a new table
// with the records accepted by fn.
func (t *Table) Filter(fn func(Record) bool) *Table {
	n := New()
	for _, r := range t.recs {
		if fn(r) {
			n.recs = append(n.recs, r)
		}
	}
	return n
}

// Species returns the species observed in the table,
// sorted alphabetically.
func (t *Table) Species() []string {
	sp := make(map[string]bool)
	for _, r := range t.recs {
		sp[r.Species] = true
	}

	species := make([]string, 0, len(sp))
	for s := range sp {
		species = append(species, s)
	}
	slices.Sort(species)
	return species
}

// Regions returns the region codes used in the table,
// sorted by the composite region order.
func (t *Table) Regions() []string {
	rg := make(map[string]bool)
	for _, r := range t.recs {
		if r.Region == "" {
			continue
		}
		rg[r.Region] = true
	}

	regions := make([]string, 0, len(rg))
	for r := range rg {
		regions = append(regions, r)
	}
	slices.SortFunc(regions, CmpRegion)
	return regions
}

// CmpRegion compares two region codes
// using their composite sort key:
// the numeric prefix as an integer,
// and then the letter suffix.
// So "2A" sorts before "10B",
// and "5A" sorts before "5B".
func CmpRegion(a, b string) int {
	na, sa := regionKey(a)
	nb, sb := regionKey(b)
	if na != nb {
		if na < nb {
			return -1
		}
		return 1
	}
	return strings.Compare(sa, sb)
}

func regionKey(region string) (int, string) {
	var num, suffix strings.Builder
	for _, r := range region {
		if unicode.IsDigit(r) {
			num.WriteRune(r)
			continue
		}
		suffix.WriteRune(r)
	}

	n := 0
	for _, r := range num.String() {
		n = n*10 + int(r-'0')
	}
	return n, suffix.String()
}

// Canon returns a species name in its canonical form:
// a single-spaced string
// with the first rune capitalized.
func Canon(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)
	r, n := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[n:]
}

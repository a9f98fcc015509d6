// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package diversity implements grouped reductions
// over an observation table:
// count sums, species richness,
// percentage shares,
// and the Shannon diversity index.
//
// Records with a zero or missing count are ignored
// by all reductions in this package.
package diversity

import (
	"math"
	"slices"
	"strings"

	"github.com/js-arias/ecosur/obs"
)

// A Share is the summed count of a species
// in a month bucket,
// with its percentage of the bucket total.
type Share struct {
	Month   int
	Species string
	Count   float64
	Percent float64
}

// SharesByMonth groups the observations by month and species,
// sums the counts,
// and reports each species count
// as a percentage of the month total.
// A month without counted observations
// produces no output rows.
func SharesByMonth(t *obs.Table) []Share {
	sum := make(map[int]map[string]float64)
	for _, r := range t.Records() {
		if !(r.Count > 0) {
			continue
		}
		sp, ok := sum[r.Month]
		if !ok {
			sp = make(map[string]float64)
			sum[r.Month] = sp
		}
		sp[r.Species] += r.Count
	}

	var shares []Share
	for m, sp := range sum {
		var total float64
		for _, c := range sp {
			total += c
		}
		if total <= 0 {
			continue
		}
		for s, c := range sp {
			shares = append(shares, Share{
				Month:   m,
				Species: s,
				Count:   c,
				Percent: c / total * 100,
			})
		}
	}

	slices.SortFunc(shares, func(a, b Share) int {
		if a.Month != b.Month {
			return a.Month - b.Month
		}
		if a.Species < b.Species {
			return -1
		}
		if a.Species > b.Species {
			return 1
		}
		return 0
	})
	return shares
}

// SharesByMonthClass restricts the monthly share reduction
// to the records of a taxonomic class
// (for example "bird" or "mammal").
// Percentages are computed within the class subset,
// so the shares of each month sum to 100
// over the species of the class alone.
func SharesByMonthClass(t *obs.Table, class string) []Share {
	class = strings.ToLower(strings.Join(strings.Fields(class), " "))
	sub := t.Filter(func(r obs.Record) bool {
		return r.Class == class
	})
	return SharesByMonth(sub)
}

// A Count is the summed individual count
// of a species in a bucket.
// Region is empty for species-only groupings.
type Count struct {
	Region  string
	Species string
	Count   float64
}

// CountsBySpecies sums the individual counts
// of each species over the whole survey.
func CountsBySpecies(t *obs.Table) []Count {
	sum := make(map[string]float64)
	for _, r := range t.Records() {
		if !(r.Count > 0) {
			continue
		}
		sum[r.Species] += r.Count
	}

	var counts []Count
	for sp, c := range sum {
		counts = append(counts, Count{Species: sp, Count: c})
	}
	slices.SortFunc(counts, cmpCount)
	return counts
}

// CountsBySpeciesRegion sums the individual counts
// of each species per sampling region.
// Records without a region are ignored.
func CountsBySpeciesRegion(t *obs.Table) []Count {
	type bucket struct {
		region  string
		species string
	}
	sum := make(map[bucket]float64)
	for _, r := range t.Records() {
		if !(r.Count > 0) || r.Region == "" {
			continue
		}
		sum[bucket{region: r.Region, species: r.Species}] += r.Count
	}

	var counts []Count
	for b, c := range sum {
		counts = append(counts, Count{Region: b.region, Species: b.species, Count: c})
	}
	slices.SortFunc(counts, cmpCount)
	return counts
}

func cmpCount(a, b Count) int {
	if c := obs.CmpRegion(a.Region, b.Region); c != 0 {
		return c
	}
	if a.Species < b.Species {
		return -1
	}
	if a.Species > b.Species {
		return 1
	}
	return 0
}

// A Richness is the number of distinct species
// in a bucket.
// Region is empty for month-only groupings,
// and Month is zero for region-only groupings.
type Richness struct {
	Region   string
	Month    int
	Richness int
}

// RichnessByMonth returns the species richness
// for each month with counted observations.
func RichnessByMonth(t *obs.Table) []Richness {
	sp := make(map[int]map[string]bool)
	for _, r := range t.Records() {
		if !(r.Count > 0) {
			continue
		}
		m, ok := sp[r.Month]
		if !ok {
			m = make(map[string]bool)
			sp[r.Month] = m
		}
		m[r.Species] = true
	}

	var rich []Richness
	for m, s := range sp {
		rich = append(rich, Richness{Month: m, Richness: len(s)})
	}
	slices.SortFunc(rich, cmpRichness)
	return rich
}

// RichnessByRegion returns the species richness
// for each region with counted observations.
// Records without a region are ignored.
func RichnessByRegion(t *obs.Table) []Richness {
	sp := make(map[string]map[string]bool)
	for _, r := range t.Records() {
		if !(r.Count > 0) || r.Region == "" {
			continue
		}
		m, ok := sp[r.Region]
		if !ok {
			m = make(map[string]bool)
			sp[r.Region] = m
		}
		m[r.Species] = true
	}

	var rich []Richness
	for rg, s := range sp {
		rich = append(rich, Richness{Region: rg, Richness: len(s)})
	}
	slices.SortFunc(rich, cmpRichness)
	return rich
}

// RichnessByRegionMonth returns the species richness
// for each region-month pair with counted observations.
// Records without a region are ignored.
func RichnessByRegionMonth(t *obs.Table) []Richness {
	type bucket struct {
		region string
		month  int
	}
	sp := make(map[bucket]map[string]bool)
	for _, r := range t.Records() {
		if !(r.Count > 0) || r.Region == "" {
			continue
		}
		b := bucket{region: r.Region, month: r.Month}
		m, ok := sp[b]
		if !ok {
			m = make(map[string]bool)
			sp[b] = m
		}
		m[r.Species] = true
	}

	var rich []Richness
	for b, s := range sp {
		rich = append(rich, Richness{Region: b.region, Month: b.month, Richness: len(s)})
	}
	slices.SortFunc(rich, cmpRichness)
	return rich
}

func cmpRichness(a, b Richness) int {
	if c := obs.CmpRegion(a.Region, b.Region); c != 0 {
		return c
	}
	return a.Month - b.Month
}

// A Diversity is the Shannon index of a bucket:
// H = -sum(p*ln(p))
// over the count shares of each species.
type Diversity struct {
	Region string
	Month  int
	H      float64
}

// ShannonByMonth returns the Shannon diversity index
// for each month with counted observations.
func ShannonByMonth(t *obs.Table) []Diversity {
	sum := make(map[int]map[string]float64)
	for _, r := range t.Records() {
		if !(r.Count > 0) {
			continue
		}
		sp, ok := sum[r.Month]
		if !ok {
			sp = make(map[string]float64)
			sum[r.Month] = sp
		}
		sp[r.Species] += r.Count
	}

	var div []Diversity
	for m, sp := range sum {
		h, ok := shannon(sp)
		if !ok {
			continue
		}
		div = append(div, Diversity{Month: m, H: h})
	}
	slices.SortFunc(div, func(a, b Diversity) int {
		if c := obs.CmpRegion(a.Region, b.Region); c != 0 {
			return c
		}
		return a.Month - b.Month
	})
	return div
}

// ShannonByRegion returns the Shannon diversity index
// for each region with counted observations.
// Records without a region are ignored.
func ShannonByRegion(t *obs.Table) []Diversity {
	sum := make(map[string]map[string]float64)
	for _, r := range t.Records() {
		if !(r.Count > 0) || r.Region == "" {
			continue
		}
		sp, ok := sum[r.Region]
		if !ok {
			sp = make(map[string]float64)
			sum[r.Region] = sp
		}
		sp[r.Species] += r.Count
	}

	var div []Diversity
	for rg, sp := range sum {
		h, ok := shannon(sp)
		if !ok {
			continue
		}
		div = append(div, Diversity{Region: rg, H: h})
	}
	slices.SortFunc(div, func(a, b Diversity) int {
		return obs.CmpRegion(a.Region, b.Region)
	})
	return div
}

// Shannon returns the Shannon index
// over the shares of a count map.
// It returns false for an empty bucket
// or a bucket with a zero total,
// so no NaN is ever propagated.
func shannon(counts map[string]float64) (float64, bool) {
	var total float64
	for _, c := range counts {
		total += c
	}
	if total <= 0 {
		return 0, false
	}

	var h float64
	for _, c := range counts {
		p := c / total
		h -= p * math.Log(p)
	}
	return h, true
}

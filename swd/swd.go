// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package swd implements the "samples with data" interchange
// used by external niche modeling tools:
// per-species occurrence files,
// an environmental layer file
// aggregated by location,
// a sampling bias file,
// and the batch scripts
// to run the external tool
// over the exported files.
package swd

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/js-arias/ecosur/obs"
)

// FileName returns the occurrence file name
// used for a species.
func FileName(species string) string {
	return "maxent_" + strings.ReplaceAll(obs.Canon(species), " ", "_") + ".csv"
}

var sampleHeader = []string{
	"species",
	"longitude",
	"latitude",
}

// Samples writes the occurrence records of a species:
// one row per unique location
// with a georeferenced observation.
func Samples(w io.Writer, t *obs.Table, species string) error {
	species = obs.Canon(species)

	type loc struct {
		lon, lat float64
	}
	seen := make(map[loc]bool)
	var locs []loc
	for _, r := range t.Records() {
		if r.Species != species || !r.HasLocation() {
			continue
		}
		l := loc{lon: r.Lon, lat: r.Lat}
		if seen[l] {
			continue
		}
		seen[l] = true
		locs = append(locs, l)
	}
	if len(locs) == 0 {
		return fmt.Errorf("species %q: no georeferenced records", species)
	}

	tab := csv.NewWriter(w)
	if err := tab.Write(sampleHeader); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, l := range locs {
		row := []string{
			species,
			strconv.FormatFloat(l.lon, 'f', 6, 64),
			strconv.FormatFloat(l.lat, 'f', 6, 64),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("while writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

// Environment writes the environmental layer file:
// per unique location,
// the mean of each covariate
// over the observations at that location.
// Only the indicated covariates are exported.
func Environment(w io.Writer, t *obs.Table, covs []obs.Covariate) error {
	type loc struct {
		lon, lat float64
	}
	type accum struct {
		sum map[obs.Covariate]float64
		n   map[obs.Covariate]int
	}

	sums := make(map[loc]*accum)
	var locs []loc
	for _, r := range t.Records() {
		if !r.HasLocation() {
			continue
		}
		l := loc{lon: r.Lon, lat: r.Lat}
		a, ok := sums[l]
		if !ok {
			a = &accum{
				sum: make(map[obs.Covariate]float64),
				n:   make(map[obs.Covariate]int),
			}
			sums[l] = a
			locs = append(locs, l)
		}
		for _, cv := range covs {
			v, ok := r.Cov[cv]
			if !ok {
				continue
			}
			a.sum[cv] += v
			a.n[cv]++
		}
	}
	if len(locs) == 0 {
		return fmt.Errorf("no georeferenced records")
	}
	slices.SortFunc(locs, func(a, b loc) int {
		if a.lon != b.lon {
			if a.lon < b.lon {
				return -1
			}
			return 1
		}
		if a.lat < b.lat {
			return -1
		}
		if a.lat > b.lat {
			return 1
		}
		return 0
	})

	head := []string{"longitude", "latitude"}
	for _, cv := range covs {
		head = append(head, string(cv))
	}

	tab := csv.NewWriter(w)
	if err := tab.Write(head); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, l := range locs {
		a := sums[l]
		row := []string{
			strconv.FormatFloat(l.lon, 'f', 6, 64),
			strconv.FormatFloat(l.lat, 'f', 6, 64),
		}
		for _, cv := range covs {
			if a.n[cv] == 0 {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.FormatFloat(a.sum[cv]/float64(a.n[cv]), 'f', 6, 64))
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("while writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

var biasHeader = []string{
	"longitude",
	"latitude",
	"sampling_effort",
}

// Bias writes the sampling bias file:
// per unique location,
// the number of observation records at that location.
func Bias(w io.Writer, t *obs.Table) error {
	type loc struct {
		lon, lat float64
	}
	effort := make(map[loc]int)
	var locs []loc
	for _, r := range t.Records() {
		if !r.HasLocation() {
			continue
		}
		l := loc{lon: r.Lon, lat: r.Lat}
		if _, ok := effort[l]; !ok {
			locs = append(locs, l)
		}
		effort[l]++
	}
	if len(locs) == 0 {
		return fmt.Errorf("no georeferenced records")
	}
	slices.SortFunc(locs, func(a, b loc) int {
		if a.lon != b.lon {
			if a.lon < b.lon {
				return -1
			}
			return 1
		}
		if a.lat < b.lat {
			return -1
		}
		if a.lat > b.lat {
			return 1
		}
		return 0
	})

	tab := csv.NewWriter(w)
	if err := tab.Write(biasHeader); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, l := range locs {
		row := []string{
			strconv.FormatFloat(l.lon, 'f', 6, 64),
			strconv.FormatFloat(l.lat, 'f', 6, 64),
			strconv.Itoa(effort[l]),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("while writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

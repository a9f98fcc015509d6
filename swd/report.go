// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package swd

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/js-arias/ecosur/obs"
	"gonum.org/v1/gonum/stat"
)

// Report writes a plain text report
// of the exported data:
// record and location counts,
// per-species statistics,
// covariate ranges,
// and the list of generated files.
func Report(w io.Writer, t *obs.Table, species []string, covs []obs.Covariate) error {
	bw := bufio.NewWriter(w)

	line := strings.Repeat("=", 60)
	sep := strings.Repeat("-", 40)

	fmt.Fprintf(bw, "%s\n", line)
	fmt.Fprintf(bw, "MaxEnt data preparation report\n")
	fmt.Fprintf(bw, "%s\n\n", line)

	type loc struct {
		lon, lat float64
	}
	locs := make(map[loc]bool)
	spRecs := make(map[string]int)
	spLocs := make(map[string]map[loc]bool)
	for _, r := range t.Records() {
		if !r.HasLocation() {
			continue
		}
		l := loc{lon: r.Lon, lat: r.Lat}
		locs[l] = true
		spRecs[r.Species]++
		sl, ok := spLocs[r.Species]
		if !ok {
			sl = make(map[loc]bool)
			spLocs[r.Species] = sl
		}
		sl[l] = true
	}

	fmt.Fprintf(bw, "1. Data summary\n%s\n", sep)
	fmt.Fprintf(bw, "Total records: %d\n", t.Len())
	fmt.Fprintf(bw, "Dropped rows: %d\n", t.Dropped())
	fmt.Fprintf(bw, "Unique locations: %d\n\n", len(locs))

	fmt.Fprintf(bw, "2. Species\n%s\n", sep)
	for _, sp := range species {
		sp = obs.Canon(sp)
		fmt.Fprintf(bw, "%-25s records: %4d  locations: %4d\n", sp, spRecs[sp], len(spLocs[sp]))
	}
	fmt.Fprintf(bw, "\n")

	fmt.Fprintf(bw, "3. Environmental covariates\n%s\n", sep)
	for _, cv := range covs {
		var vals []float64
		for _, r := range t.Records() {
			if v, ok := r.Cov[cv]; ok {
				vals = append(vals, v)
			}
		}
		if len(vals) == 0 {
			fmt.Fprintf(bw, "%-15s no values\n", cv)
			continue
		}
		slices.Sort(vals)
		mean := stat.Mean(vals, nil)
		std := stat.StdDev(vals, nil)
		fmt.Fprintf(bw, "%-15s range: [%.2f, %.2f]  mean: %.2f +/- %.2f  n: %d\n",
			cv, vals[0], vals[len(vals)-1], mean, std, len(vals))
	}
	fmt.Fprintf(bw, "\n")

	fmt.Fprintf(bw, "4. Generated files\n%s\n", sep)
	for _, sp := range species {
		fmt.Fprintf(bw, "  - %s\n", FileName(sp))
	}
	fmt.Fprintf(bw, "  - maxent_all_species.csv\n")
	fmt.Fprintf(bw, "  - maxent_environment_swd.csv\n")
	fmt.Fprintf(bw, "  - maxent_bias.csv\n")
	fmt.Fprintf(bw, "  - run_maxent.sh / run_maxent.bat\n\n")

	fmt.Fprintf(bw, "%s\n", line)
	fmt.Fprintf(bw, "Report date: %s\n", time.Now().Format("2006-01-02 15:04:05"))

	return bw.Flush()
}

// AllSamples writes a single occurrence file
// with the records of all the given species.
func AllSamples(w io.Writer, t *obs.Table, species []string) error {
	tab := obs.New()
	want := make(map[string]bool, len(species))
	for _, sp := range species {
		want[obs.Canon(sp)] = true
	}
	for _, r := range t.Records() {
		if want[r.Species] {
			tab.Add(r)
		}
	}

	// one block per species, in the given order
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(sampleHeader, ",") + "\n"); err != nil {
		return err
	}
	for _, sp := range species {
		sp = obs.Canon(sp)
		type loc struct {
			lon, lat float64
		}
		seen := make(map[loc]bool)
		for _, r := range tab.Records() {
			if r.Species != sp || !r.HasLocation() {
				continue
			}
			l := loc{lon: r.Lon, lat: r.Lat}
			if seen[l] {
				continue
			}
			seen[l] = true
			fmt.Fprintf(bw, "%s,%.6f,%.6f\n", sp, r.Lon, r.Lat)
		}
	}
	return bw.Flush()
}

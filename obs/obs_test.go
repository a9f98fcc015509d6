// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package obs_test

import (
	"bytes"
	"math"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/ecosur/obs"
)

var table = `Species,Date,Region,Class,Count,LAT,LONG,TempW,Detph
adelie penguin,02-Jan,5A,bird,12,-74.51,164.21,-1.2,340
Adelie penguin,15-Feb,5B,bird,3,-74.60,164.35,-0.8,
snow petrel,02-Jan,2A,bird,5,-74.11,163.90,,120
crabeater seal,31-Jan,10B,mammal,1,-74.80,165.02,-1.5,410
weddell seal,no-date,5A,mammal,2,-74.55,164.40,,
,02-Jan,5A,bird,7,-74.50,164.20,,
emperor penguin,05-Mar,5A,bird,x,-74.70,164.80,,
`

func TestRead(t *testing.T) {
	tab, err := obs.Read(strings.NewReader(table), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tab.Len() != 4 {
		t.Errorf("records: got %d, want %d", tab.Len(), 4)
	}
	if d := tab.Dropped(); d != 3 {
		t.Errorf("dropped rows: got %d, want %d", d, 3)
	}

	species := []string{
		"Adelie penguin",
		"Crabeater seal",
		"Snow petrel",
	}
	if sp := tab.Species(); !reflect.DeepEqual(sp, species) {
		t.Errorf("species: got %v, want %v", sp, species)
	}

	r := tab.Records()[0]
	if r.Species != "Adelie penguin" {
		t.Errorf("species: got %q, want %q", r.Species, "Adelie penguin")
	}
	if r.Day != 2 || r.Month != 1 {
		t.Errorf("date: got %d-%d, want %d-%d", r.Day, r.Month, 2, 1)
	}
	if r.Count != 12 {
		t.Errorf("count: got %v, want %v", r.Count, 12.0)
	}
	if !r.HasLocation() {
		t.Errorf("record %q: expecting a location", r.Species)
	}
	if v, ok := r.Cov[obs.Depth]; !ok || v != 340 {
		t.Errorf("depth: got %v [%v], want %v", v, ok, 340.0)
	}
	if _, ok := tab.Records()[1].Cov[obs.Depth]; ok {
		t.Errorf("record 1: unexpected depth covariate")
	}
}

func TestReadMissingCount(t *testing.T) {
	data := "Species,Date,Count\nadelie penguin,02-Jan,\n"
	tab, err := obs.Read(strings.NewReader(data), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tab.Len() != 1 {
		t.Fatalf("records: got %d, want 1", tab.Len())
	}
	if c := tab.Records()[0].Count; !math.IsNaN(c) {
		t.Errorf("count: got %v, want NaN", c)
	}
}

func TestReadNoHeader(t *testing.T) {
	bad := "Species,Region,Count\nadelie penguin,5A,12\n"
	if _, err := obs.Read(strings.NewReader(bad), 2023); err == nil {
		t.Errorf("expecting error for a table without a date column")
	}
}

func TestReadNoLocation(t *testing.T) {
	noLoc := "Species,Date,Count\nadelie penguin,02-Jan,12\n"
	tab, err := obs.Read(strings.NewReader(noLoc), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := tab.Records()[0]
	if r.HasLocation() {
		t.Errorf("record %q: got location %.2f %.2f, want NaN", r.Species, r.Lat, r.Lon)
	}
	if !math.IsNaN(r.Lat) || !math.IsNaN(r.Lon) {
		t.Errorf("record %q: coordinates must be NaN", r.Species)
	}
}

func TestRegionOrder(t *testing.T) {
	regions := []string{"10B", "2A", "5B", "1", "5A", "2B"}
	want := []string{"1", "2A", "2B", "5A", "5B", "10B"}

	slices.SortFunc(regions, obs.CmpRegion)
	if !reflect.DeepEqual(regions, want) {
		t.Errorf("region order: got %v, want %v", regions, want)
	}

	if obs.CmpRegion("2A", "10B") >= 0 {
		t.Errorf("region order: %q must sort before %q", "2A", "10B")
	}
	if obs.CmpRegion("5A", "5B") >= 0 {
		t.Errorf("region order: %q must sort before %q", "5A", "5B")
	}
}

func TestCanon(t *testing.T) {
	names := map[string]string{
		"adelie  penguin ": "Adelie penguin",
		"SNOW PETREL":      "Snow petrel",
		"  ":               "",
	}
	for n, want := range names {
		if got := obs.Canon(n); got != want {
			t.Errorf("canon %q: got %q, want %q", n, got, want)
		}
	}
}

func TestCSV(t *testing.T) {
	tab, err := obs.Read(strings.NewReader(table), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := tab.CSV(&buf); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	nt, err := obs.Read(&buf, 2023)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	if nt.Len() != tab.Len() {
		t.Errorf("records: got %d, want %d", nt.Len(), tab.Len())
	}
	if !reflect.DeepEqual(nt.Records(), tab.Records()) {
		t.Errorf("records: got %v, want %v", nt.Records(), tab.Records())
	}
}

func TestFilter(t *testing.T) {
	tab, err := obs.Read(strings.NewReader(table), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	birds := tab.Filter(func(r obs.Record) bool {
		return r.Class == "bird"
	})
	if birds.Len() != 3 {
		t.Errorf("records: got %d, want %d", birds.Len(), 3)
	}
	for _, r := range birds.Records() {
		if r.Class != "bird" {
			t.Errorf("record %q: class %q, want %q", r.Species, r.Class, "bird")
		}
	}

	// the source table is not modified
	if tab.Len() != 4 {
		t.Errorf("source records: got %d, want %d", tab.Len(), 4)
	}
}

// A cleaned snapshot must read back
// without any dropped row.
func TestCleanSnapshot(t *testing.T) {
	tab, err := obs.Read(strings.NewReader(table), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := tab.Dropped(); d != 3 {
		t.Fatalf("dropped rows: got %d, want %d", d, 3)
	}

	var buf bytes.Buffer
	if err := tab.CSV(&buf); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	nt, err := obs.Read(&buf, 2023)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	if d := nt.Dropped(); d != 0 {
		t.Errorf("dropped rows: got %d, want none", d)
	}
	if nt.Len() != tab.Len() {
		t.Errorf("records: got %d, want %d", nt.Len(), tab.Len())
	}
}

// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package diversity_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/js-arias/ecosur/diversity"
	"github.com/js-arias/ecosur/obs"
)

func addRecord(t *obs.Table, species, region string, month int, count float64) {
	t.Add(obs.Record{
		Species: species,
		Region:  region,
		Day:     1,
		Month:   month,
		Lat:     math.NaN(),
		Lon:     math.NaN(),
		Count:   count,
	})
}

func TestSharesByMonth(t *testing.T) {
	tab := obs.New()
	addRecord(tab, "A", "", 1, 3)
	addRecord(tab, "B", "", 1, 1)

	shares := diversity.SharesByMonth(tab)
	want := []diversity.Share{
		{Month: 1, Species: "A", Count: 3, Percent: 75},
		{Month: 1, Species: "B", Count: 1, Percent: 25},
	}
	if !reflect.DeepEqual(shares, want) {
		t.Errorf("shares: got %v, want %v", shares, want)
	}
}

func TestSharesSumTo100(t *testing.T) {
	tab := obs.New()
	addRecord(tab, "Adelie penguin", "", 1, 12)
	addRecord(tab, "Snow petrel", "", 1, 7)
	addRecord(tab, "Adelie penguin", "", 1, 4)
	addRecord(tab, "Weddell seal", "", 2, 2)
	addRecord(tab, "Snow petrel", "", 2, 9)
	addRecord(tab, "South polar skua", "", 3, 1)

	sums := make(map[int]float64)
	for _, s := range diversity.SharesByMonth(tab) {
		sums[s.Month] += s.Percent
	}
	if len(sums) != 3 {
		t.Fatalf("months: got %d, want %d", len(sums), 3)
	}
	for m, sum := range sums {
		if math.Abs(sum-100) > 1e-10 {
			t.Errorf("month %d: shares sum to %.6f, want 100", m, sum)
		}
	}
}

func TestSharesEmptyBucket(t *testing.T) {
	tab := obs.New()
	addRecord(tab, "Adelie penguin", "", 1, 0)

	if shares := diversity.SharesByMonth(tab); len(shares) != 0 {
		t.Errorf("shares: got %v, want no rows", shares)
	}
}

func TestRichness(t *testing.T) {
	tab := obs.New()
	addRecord(tab, "Adelie penguin", "5A", 1, 12)
	addRecord(tab, "Adelie penguin", "5A", 1, 3)
	addRecord(tab, "Snow petrel", "5A", 1, 7)
	addRecord(tab, "Snow petrel", "10B", 1, 2)
	addRecord(tab, "Weddell seal", "2A", 2, 1)
	addRecord(tab, "Emperor penguin", "5A", 2, 0)

	month := diversity.RichnessByMonth(tab)
	wantMonth := []diversity.Richness{
		{Month: 1, Richness: 2},
		{Month: 2, Richness: 1},
	}
	if !reflect.DeepEqual(month, wantMonth) {
		t.Errorf("monthly richness: got %v, want %v", month, wantMonth)
	}

	region := diversity.RichnessByRegion(tab)
	wantRegion := []diversity.Richness{
		{Region: "2A", Richness: 1},
		{Region: "5A", Richness: 2},
		{Region: "10B", Richness: 1},
	}
	if !reflect.DeepEqual(region, wantRegion) {
		t.Errorf("region richness: got %v, want %v", region, wantRegion)
	}

	both := diversity.RichnessByRegionMonth(tab)
	wantBoth := []diversity.Richness{
		{Region: "2A", Month: 2, Richness: 1},
		{Region: "5A", Month: 1, Richness: 2},
		{Region: "10B", Month: 1, Richness: 1},
	}
	if !reflect.DeepEqual(both, wantBoth) {
		t.Errorf("region-month richness: got %v, want %v", both, wantBoth)
	}
}

// Adding records must never reduce a richness value.
func TestRichnessMonotone(t *testing.T) {
	tab := obs.New()
	species := []string{
		"Adelie penguin",
		"Snow petrel",
		"Adelie penguin",
		"Weddell seal",
		"Snow petrel",
		"Crabeater seal",
	}

	prev := 0
	for i, sp := range species {
		addRecord(tab, sp, "5A", 1, float64(i+1))
		rich := diversity.RichnessByMonth(tab)
		if len(rich) != 1 {
			t.Fatalf("buckets: got %d, want 1", len(rich))
		}
		if rich[0].Richness < prev {
			t.Errorf("after %d records: richness %d, previous %d", i+1, rich[0].Richness, prev)
		}
		prev = rich[0].Richness
	}
	if prev != 4 {
		t.Errorf("final richness: got %d, want %d", prev, 4)
	}
}

func TestShannon(t *testing.T) {
	tab := obs.New()
	addRecord(tab, "Adelie penguin", "", 1, 10)

	div := diversity.ShannonByMonth(tab)
	if len(div) != 1 {
		t.Fatalf("buckets: got %d, want 1", len(div))
	}
	if div[0].H != 0 {
		t.Errorf("single species: got H = %.6f, want 0", div[0].H)
	}

	addRecord(tab, "Snow petrel", "", 1, 10)
	div = diversity.ShannonByMonth(tab)
	if div[0].H <= 0 {
		t.Errorf("two species: got H = %.6f, want positive", div[0].H)
	}

	// two equally common species
	want := math.Log(2)
	if math.Abs(div[0].H-want) > 1e-10 {
		t.Errorf("two species: got H = %.6f, want %.6f", div[0].H, want)
	}
}

func TestShannonEmptyBucket(t *testing.T) {
	tab := obs.New()
	addRecord(tab, "Adelie penguin", "5A", 1, 0)

	if div := diversity.ShannonByRegion(tab); len(div) != 0 {
		t.Errorf("diversity: got %v, want no rows", div)
	}
}

func TestCounts(t *testing.T) {
	tab := obs.New()
	addRecord(tab, "Adelie penguin", "2A", 1, 12)
	addRecord(tab, "Adelie penguin", "10B", 1, 4)
	addRecord(tab, "Snow petrel", "2A", 2, 7)
	addRecord(tab, "Snow petrel", "", 2, 0)

	counts := diversity.CountsBySpecies(tab)
	want := []diversity.Count{
		{Species: "Adelie penguin", Count: 16},
		{Species: "Snow petrel", Count: 7},
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("counts: got %v, want %v", counts, want)
	}

	counts = diversity.CountsBySpeciesRegion(tab)
	want = []diversity.Count{
		{Region: "2A", Species: "Adelie penguin", Count: 12},
		{Region: "2A", Species: "Snow petrel", Count: 7},
		{Region: "10B", Species: "Adelie penguin", Count: 4},
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("counts by region: got %v, want %v", counts, want)
	}
}

func addClassRecord(t *obs.Table, species, class string, month int, count float64) {
	t.Add(obs.Record{
		Species: species,
		Class:   class,
		Day:     1,
		Month:   month,
		Lat:     math.NaN(),
		Lon:     math.NaN(),
		Count:   count,
	})
}

func TestSharesByMonthClass(t *testing.T) {
	tab := obs.New()
	addClassRecord(tab, "Adelie penguin", "bird", 1, 3)
	addClassRecord(tab, "Snow petrel", "Bird", 1, 1)
	addClassRecord(tab, "Weddell seal", "mammal", 1, 10)

	shares := diversity.SharesByMonthClass(tab, "  BIRD ")
	want := []diversity.Share{
		{Month: 1, Species: "Adelie penguin", Count: 3, Percent: 75},
		{Month: 1, Species: "Snow petrel", Count: 1, Percent: 25},
	}
	if !reflect.DeepEqual(shares, want) {
		t.Errorf("bird shares: got %v, want %v", shares, want)
	}

	shares = diversity.SharesByMonthClass(tab, "mammal")
	want = []diversity.Share{
		{Month: 1, Species: "Weddell seal", Count: 10, Percent: 100},
	}
	if !reflect.DeepEqual(shares, want) {
		t.Errorf("mammal shares: got %v, want %v", shares, want)
	}

	if s := diversity.SharesByMonthClass(tab, "fish"); s != nil {
		t.Errorf("fish shares: got %v, want none", s)
	}
}

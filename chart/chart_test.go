// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chart_test

import (
	"bytes"
	"testing"

	"github.com/js-arias/ecosur/chart"
	"github.com/js-arias/ecosur/diversity"
)

func TestRichnessSeries(t *testing.T) {
	rich := []diversity.Richness{
		{Region: "2A", Month: 1, Richness: 3},
		{Region: "2A", Month: 2, Richness: 5},
		{Region: "10B", Month: 1, Richness: 2},
	}
	series := chart.Richness(rich)
	if len(series) != 2 {
		t.Fatalf("series: got %d, want 2", len(series))
	}
	if series[0].Name != "2A" {
		t.Errorf("first series: got %q, want %q", series[0].Name, "2A")
	}
	if len(series[0].Months) != 2 {
		t.Errorf("series %q: got %d points, want 2", series[0].Name, len(series[0].Months))
	}
}

func TestSharesSeries(t *testing.T) {
	shares := []diversity.Share{
		{Month: 1, Species: "Adelie penguin", Percent: 75},
		{Month: 1, Species: "Emperor penguin", Percent: 25},
		{Month: 2, Species: "Adelie penguin", Percent: 100},
	}
	series := chart.Shares(shares)
	if len(series) != 2 {
		t.Fatalf("series: got %d, want 2", len(series))
	}
	if series[0].Name != "Adelie penguin" {
		t.Errorf("first series: got %q", series[0].Name)
	}
	if series[0].Values[1] != 100 {
		t.Errorf("second point: got %.2f, want 100", series[0].Values[1])
	}
}

func TestLines(t *testing.T) {
	series := chart.Shannon([]diversity.Diversity{
		{Month: 1, H: 0.65},
		{Month: 2, H: 0.69},
		{Month: 3, H: 0.42},
	})

	var buf bytes.Buffer
	if err := chart.Lines(&buf, "shannon index", "H", series, nil, 72); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// PNG magic number
	png := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(buf.Bytes(), png) {
		t.Errorf("output is not a PNG image")
	}
}

func TestLinesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := chart.Lines(&buf, "empty", "y", nil, nil, 72); err == nil {
		t.Errorf("expecting error for an empty chart")
	}
}

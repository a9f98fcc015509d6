// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package params_test

import (
	"os"
	"testing"

	"github.com/js-arias/ecosur/params"
)

func TestDefaults(t *testing.T) {
	p := params.New("params.tab")

	if y := p.Year(); y != 2023 {
		t.Errorf("year: got %d, want %d", y, 2023)
	}
	if r := p.Resolution(); r != 0.06 {
		t.Errorf("resolution: got %.6f, want %.6f", r, 0.06)
	}
	if m := p.MinRecords(); m != 15 {
		t.Errorf("minrecords: got %d, want %d", m, 15)
	}
	if m := p.MinSamples(); m != 6 {
		t.Errorf("minsamples: got %d, want %d", m, 6)
	}
	if nd := p.NoData(); nd != -9999 {
		t.Errorf("nodata: got %.3f, want %.3f", nd, -9999.0)
	}
	if d := p.DPI(); d != 300 {
		t.Errorf("dpi: got %d, want %d", d, 300)
	}
}

func TestReadWrite(t *testing.T) {
	name := "tmp-params-for-test.tab"
	defer os.Remove(name)

	p := params.New(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := params.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	if *np != *p {
		t.Errorf("parameters: got %v, want %v", *np, *p)
	}
}

func TestReadInvalid(t *testing.T) {
	files := map[string]string{
		"unknown parameter": "parameter\tvalue\nbandwidth\t0.3\n",
		"invalid year":      "parameter\tvalue\nyear\t23\n",
		"bad resolution":    "parameter\tvalue\nresolution\t-0.5\n",
		"bad value":         "parameter\tvalue\nminrecords\tmany\n",
	}

	name := "tmp-bad-params-for-test.tab"
	defer os.Remove(name)

	for msg, data := range files {
		if err := os.WriteFile(name, []byte(data), 0644); err != nil {
			t.Fatalf("%s: unable to write test file: %v", msg, err)
		}
		if _, err := params.Read(name); err == nil {
			t.Errorf("%s: expecting error", msg)
		}
	}
}

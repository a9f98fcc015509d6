// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package obs

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads an observation table
// from the first sheet of an Excel file.
// The sheet must have the same header row
// and column set as a CSV table.
func ReadXLSX(r io.Reader, year int) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("while opening workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook without sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("on sheet %q: %v", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("on sheet %q: empty sheet", sheets[0])
	}

	head := rows[0]
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		c, ok := colAliases[h]
		if !ok {
			continue
		}
		fields[c] = i
	}
	for _, h := range required {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("on sheet %q: expecting field %q", sheets[0], h)
		}
	}
	_, withLat := fields["lat"]
	_, withLon := fields["lon"]
	withLoc := withLat && withLon

	t := New()
	for _, row := range rows[1:] {
		// GetRows trims trailing empty cells
		if len(row) < len(head) {
			padded := make([]string, len(head))
			copy(padded, row)
			row = padded
		}
		rec, ok := decodeRow(row, fields, withLoc, year)
		if !ok {
			t.dropped++
			continue
		}
		t.Add(rec)
	}
	return t, nil
}

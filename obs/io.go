// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package obs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// Header fields accepted for each record field.
// The survey tables use several spellings
// for the same column
// (including "detph", a misspelling of depth
// carried by the source data loggers).
var colAliases = map[string]string{
	"species":     "species",
	"class":       "class",
	"region":      "region",
	"date":        "date",
	"count":       "count",
	"counts":      "count",
	"lat":         "lat",
	"latitude":    "lat",
	"long":        "lon",
	"lon":         "lon",
	"longitude":   "lon",
	"temp":        string(Temperature),
	"tempw":       string(Temperature),
	"temperature": string(Temperature),
	"salinity":    string(Salinity),
	"depth":       string(Depth),
	"detph":       string(Depth),
	"ph":          string(PH),
	"chl":         string(Chlorophyll),
	"chlorophyll": string(Chlorophyll),
	"o2":          string(Oxygen),
	"o2con":       string(Oxygen),
	"oxygen":      string(Oxygen),
}

var required = []string{"species", "date", "count"}

// Read reads an observation table from a CSV file
// with a header row.
//
// The table must contain the following fields:
//
//   - species, the name of the observed taxon
//   - date, the day of the observation as day-month ("12-Jan")
//   - count, the number of observed individuals
//
// And can contain the fields region, class, lat (latitude),
// long (longitude),
// and the environmental covariates
// tempw, salinity, depth, ph, chl, and o2con.
//
// As the survey tables store no year,
// dates are interpreted in the given year.
// Rows with an empty species,
// an unparseable date or count,
// or an unparseable coordinate
// (when the table has coordinate columns)
// are dropped;
// an empty count is kept as a missing value
// (NaN);
// the number of dropped rows is available
// with the Dropped method.
func Read(r io.Reader, year int) (*Table, error) {
	tab := csv.NewReader(r)
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
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
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}
	_, withLat := fields["lat"]
	_, withLon := fields["lon"]
	withLoc := withLat && withLon

	t := New()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
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

func decodeRow(row []string, fields map[string]int, withLoc bool, year int) (Record, bool) {
	sp := Canon(row[fields["species"]])
	if sp == "" {
		return Record{}, false
	}

	day, month, ok := parseDate(row[fields["date"]], year)
	if !ok {
		return Record{}, false
	}

	count := math.NaN()
	if v := strings.TrimSpace(row[fields["count"]]); v != "" {
		c, err := strconv.ParseFloat(v, 64)
		if err != nil || c < 0 {
			return Record{}, false
		}
		count = c
	}

	rec := Record{
		Species: sp,
		Day:     day,
		Month:   month,
		Lat:     math.NaN(),
		Lon:     math.NaN(),
		Count:   count,
	}
	if i, ok := fields["class"]; ok {
		rec.Class = row[i]
	}
	if i, ok := fields["region"]; ok {
		rec.Region = row[i]
	}

	if withLoc {
		lat, err := strconv.ParseFloat(strings.TrimSpace(row[fields["lat"]]), 64)
		if err != nil || lat < -90 || lat > 90 {
			return Record{}, false
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(row[fields["lon"]]), 64)
		if err != nil || lon < -180 || lon > 360 {
			return Record{}, false
		}
		rec.Lat = lat
		rec.Lon = lon
	}

	for _, cv := range Covariates() {
		i, ok := fields[string(cv)]
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			continue
		}
		if rec.Cov == nil {
			rec.Cov = make(map[Covariate]float64)
		}
		rec.Cov[cv] = v
	}
	return rec, true
}

// ParseDate parses a day-month date string
// such as "2-Jan" or "02-Jan"
// using the given year.
func parseDate(s string, year int) (day, month int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false
	}
	d, err := time.Parse("2-Jan-2006", fmt.Sprintf("%s-%d", s, year))
	if err != nil {
		return 0, 0, false
	}
	return d.Day(), int(d.Month()), true
}

var header = []string{
	"species",
	"class",
	"region",
	"date",
	"latitude",
	"longitude",
	"count",
	"temperature",
	"salinity",
	"depth",
	"ph",
	"chlorophyll",
	"oxygen",
}

// CSV writes the observation table as a CSV file
// with the canonical column set.
// Missing coordinates and covariates
// are written as empty fields.
func (t *Table) CSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}

	for _, r := range t.recs {
		row := []string{
			r.Species,
			r.Class,
			r.Region,
			time.Date(2000, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC).Format("02-Jan"),
			"",
			"",
			"",
		}
		if !math.IsNaN(r.Count) {
			row[6] = strconv.FormatFloat(r.Count, 'f', -1, 64)
		}
		if r.HasLocation() {
			row[4] = strconv.FormatFloat(r.Lat, 'f', 6, 64)
			row[5] = strconv.FormatFloat(r.Lon, 'f', 6, 64)
		}
		for _, cv := range Covariates() {
			v, ok := r.Cov[cv]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
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

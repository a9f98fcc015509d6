// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package chart implements time series charts
// for monthly diversity summaries:
// species richness,
// the Shannon index,
// and per-species percentage shares.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"slices"
	"time"

	"github.com/js-arias/ecosur/diversity"
	"github.com/js-arias/ecosur/speckey"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// A Series is a named monthly value series.
type Series struct {
	Name   string
	Months []int
	Values []float64

	// Color of the series line.
	// If nil,
	// a color is picked from the key file
	// or from a default palette.
	Color color.Color
}

func (s Series) xys() plotter.XYs {
	xys := make(plotter.XYs, len(s.Months))
	for i, m := range s.Months {
		xys[i].X = float64(m)
		xys[i].Y = s.Values[i]
	}
	return xys
}

// Richness returns the chart series
// of a richness summary,
// one series per region.
func Richness(rich []diversity.Richness) []Series {
	var series []Series
	pos := make(map[string]int)
	for _, r := range rich {
		name := r.Region
		if name == "" {
			name = "richness"
		}
		i, ok := pos[name]
		if !ok {
			i = len(series)
			pos[name] = i
			series = append(series, Series{Name: name})
		}
		series[i].Months = append(series[i].Months, r.Month)
		series[i].Values = append(series[i].Values, float64(r.Richness))
	}
	return series
}

// Shannon returns the chart series
// of a Shannon index summary,
// one series per region.
func Shannon(div []diversity.Diversity) []Series {
	var series []Series
	pos := make(map[string]int)
	for _, d := range div {
		name := d.Region
		if name == "" {
			name = "shannon"
		}
		i, ok := pos[name]
		if !ok {
			i = len(series)
			pos[name] = i
			series = append(series, Series{Name: name})
		}
		series[i].Months = append(series[i].Months, d.Month)
		series[i].Values = append(series[i].Values, d.H)
	}
	return series
}

// Shares returns the chart series
// of a monthly share summary,
// one series per species,
// with the percentage of the month total.
func Shares(shares []diversity.Share) []Series {
	var series []Series
	pos := make(map[string]int)
	for _, s := range shares {
		i, ok := pos[s.Species]
		if !ok {
			i = len(series)
			pos[s.Species] = i
			series = append(series, Series{Name: s.Species})
		}
		series[i].Months = append(series[i].Months, s.Month)
		series[i].Values = append(series[i].Values, s.Percent)
	}
	slices.SortFunc(series, func(a, b Series) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return series
}

// Lines writes a PNG line chart
// of the given monthly series.
// Series colors are taken from the key file,
// if given,
// or from a default palette.
func Lines(w io.Writer, title, yLabel string, series []Series, keys *speckey.Keys, dpi int) error {
	if len(series) == 0 {
		return fmt.Errorf("chart %q: no data series", title)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "month"
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = monthTicks{}
	p.Legend.Top = true
	p.Legend.Left = true

	for i, s := range series {
		ln, sc, err := plotter.NewLinePoints(s.xys())
		if err != nil {
			return fmt.Errorf("chart %q: series %q: %v", title, s.Name, err)
		}
		c := s.Color
		if c == nil && keys != nil {
			if kc, ok := keys.Color(s.Name); ok {
				c = kc
			}
		}
		if c == nil {
			c = plotutil.Color(i)
		}
		ln.Color = c
		sc.GlyphStyle.Color = c
		p.Add(ln, sc)
		p.Legend.Add(s.Name, ln, sc)
	}

	return writePNG(w, p, dpi)
}

// monthTicks labels integer coordinates
// with month name abbreviations.
type monthTicks struct{}

func (monthTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for m := int(min); m <= int(max); m++ {
		if m < 1 || m > 12 {
			continue
		}
		ticks = append(ticks, plot.Tick{
			Value: float64(m),
			Label: time.Month(m).String()[:3],
		})
	}
	return ticks
}

func writePNG(w io.Writer, p *plot.Plot, dpi int) error {
	if dpi == 0 {
		dpi = 300
	}

	c := vgimg.NewWith(
		vgimg.UseWH(6*vg.Inch, 4*vg.Inch),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(c))

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("while writing chart: %v", err)
	}
	return nil
}

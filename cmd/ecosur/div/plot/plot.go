// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plot implements a command to draw
// time series charts of the diversity of a survey.
package plot

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/chart"
	"github.com/js-arias/ecosur/diversity"
	"github.com/js-arias/ecosur/project"
	"github.com/js-arias/ecosur/speckey"
)

var Command = &command.Command{
	Usage: `plot [--class <name>] [--dpi <value>]
	[-o|--output <file-prefix>] <project-file>`,
	Short: "draw diversity time series charts",
	Long: `
Command plot reads the observations from an EcoSur project and draws the
monthly species richness, the monthly Shannon diversity index, and the
monthly share of each species, as png line charts.

The argument of the command is the name of the project file.

By default, the images are saved at the resolution defined in the project
parameters file; use the flag --dpi to set a different resolution.

By default, the output files will be prefixed as 'diversity'. To set a
different prefix, use the flag --output or -o. The names of the files will be
in the form '<prefix>-richness.png', '<prefix>-shannon.png', and
'<prefix>-share.png'.

Use the flag --class to restrict the share chart to a taxonomic class (for
example "bird" or "mammal"); the percentages are then computed within the
class subset.

If a key file is defined in the project, the species colors of the share
chart will be read from that file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var dpiFlag int
var classFlag string
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&dpiFlag, "dpi", 0, "")
	c.Flags().StringVar(&classFlag, "class", "", "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	pp, err := p.Params()
	if err != nil {
		return err
	}
	t, err := p.Observations(pp.Year())
	if err != nil {
		return err
	}
	if d := t.Dropped(); d > 0 {
		fmt.Fprintf(c.Stderr(), "# unparseable rows: %d\n", d)
	}
	keys, err := p.Keys()
	if err != nil {
		return err
	}

	if dpiFlag == 0 {
		dpiFlag = pp.DPI()
	}
	if outPrefix == "" {
		outPrefix = "diversity"
	}

	rs := chart.Richness(diversity.RichnessByMonth(t))
	name := outPrefix + "-richness.png"
	if err := writeChart(name, "species richness", "species", rs, nil); err != nil {
		return err
	}

	hs := chart.Shannon(diversity.ShannonByMonth(t))
	name = outPrefix + "-shannon.png"
	if err := writeChart(name, "shannon index", "H", hs, nil); err != nil {
		return err
	}

	shares := diversity.SharesByMonth(t)
	if classFlag != "" {
		shares = diversity.SharesByMonthClass(t, classFlag)
	}
	ss := chart.Shares(shares)
	name = outPrefix + "-share.png"
	if err := writeChart(name, "species share", "percent", ss, keys); err != nil {
		return err
	}
	return nil
}

func writeChart(name, title, yLabel string, series []chart.Series, keys *speckey.Keys) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := chart.Lines(f, title, yLabel, series, keys, dpiFlag); err != nil {
		return fmt.Errorf("when drawing chart %q: %v", name, err)
	}
	return nil
}

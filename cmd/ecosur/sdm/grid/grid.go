// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package grid implements a command to build
// habitat suitability grids.
package grid

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/project"
	"github.com/js-arias/ecosur/suit"
)

var Command = &command.Command{
	Usage: `grid [--taxon <name>] [--csv]
	[--resolution <value>]
	[-o|--output <file-prefix>] <project-file>`,
	Short: "build habitat suitability grids",
	Long: `
Command grid reads the observations from an EcoSur project, builds a habitat
suitability grid for each species, and writes each grid as an ESRI ASCII
raster file.

The suitability of a cell is the geometric mean of an observation density
term, from a Gaussian kernel estimate over the observation locations, and an
environmental term, from the environmental values measured with the
observations. Grids are scaled so the best cell has a suitability of 1.

The argument of the command is the name of the project file.

By default, a grid is built for each species with enough observations;
species with too few observations are reported and skipped. Use the flag
--taxon to build the grid of a single species.

By default, the grid cells have the size defined in the project parameters
file; use the flag --resolution to set a different cell size (in degrees).

By default, the output files will be prefixed as 'suitability'. To set a
different prefix, use the flag --output or -o. The name of each file will be
in the form '<prefix>-<species>.asc'. With the flag --csv, a file
'<prefix>-<species>.csv' with the cell values as latitude-longitude-
suitability rows will also be written.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var csvFlag bool
var resFlag float64
var taxonFlag string
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&csvFlag, "csv", false, "")
	c.Flags().Float64Var(&resFlag, "resolution", 0, "")
	c.Flags().StringVar(&taxonFlag, "taxon", "", "")
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

	if resFlag == 0 {
		resFlag = pp.Resolution()
	}
	if outPrefix == "" {
		outPrefix = "suitability"
	}

	species := t.Species()
	if taxonFlag != "" {
		species = []string{taxonFlag}
	}

	for _, sp := range species {
		m, err := suit.New(t, sp, pp.MinRecords(), pp.MinSamples())
		if err != nil {
			if errors.Is(err, suit.ErrTooFewRecords) {
				fmt.Fprintf(c.Stderr(), "# skipping %q: %v\n", sp, err)
				continue
			}
			return err
		}
		g, err := m.Grid(resFlag)
		if err != nil {
			return err
		}

		if err := writeRaster(fileName(g.Species(), "asc"), g, pp.NoData()); err != nil {
			return err
		}
		if csvFlag {
			if err := writeCSV(fileName(g.Species(), "csv"), g); err != nil {
				return err
			}
		}
	}
	return nil
}

func fileName(species, ext string) string {
	return fmt.Sprintf("%s-%s.%s", outPrefix, strings.ReplaceAll(species, " ", "_"), ext)
}

func writeRaster(name string, g *suit.Grid, noData float64) (err error) {
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

	if err := g.Raster(noData).Write(f); err != nil {
		return fmt.Errorf("when writing raster %q: %v", name, err)
	}
	return nil
}

func writeCSV(name string, g *suit.Grid) (err error) {
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

	if err := g.CSV(f); err != nil {
		return fmt.Errorf("when writing file %q: %v", name, err)
	}
	return nil
}

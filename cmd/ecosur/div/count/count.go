// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package count implements a command to print
// the summed individual counts of each species.
package count

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/diversity"
	"github.com/js-arias/ecosur/project"
)

var Command = &command.Command{
	Usage: "count [--by <grouping>] <project-file>",
	Short: "print the individual counts of each species",
	Long: `
Command count reads the observations from an EcoSur project and prints the
summed individual count of each species, as a tab-delimited table, in the
standard output. Records without a positive individual count are ignored.

The argument of the command is the name of the project file.

By default, counts are summed over the whole survey. Use the flag --by to
set a different grouping, valid groupings are:

	species   counts per species (default)
	region    counts per species and sampling region
	`,
	SetFlags: setFlags,
	Run:      run,
}

var byFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&byFlag, "by", "species", "")
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

	var counts []diversity.Count
	switch byFlag {
	case "species":
		counts = diversity.CountsBySpecies(t)
	case "region":
		counts = diversity.CountsBySpeciesRegion(t)
	default:
		return c.UsageError(fmt.Sprintf("invalid grouping %q", byFlag))
	}

	fmt.Fprintf(c.Stdout(), "region\tspecies\tcount\n")
	for _, ct := range counts {
		fmt.Fprintf(c.Stdout(), "%s\t%s\t%.6f\n", ct.Region, ct.Species, ct.Count)
	}
	return nil
}

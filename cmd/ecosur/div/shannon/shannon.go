// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package shannon implements a command to print
// the Shannon diversity index of a survey.
package shannon

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/diversity"
	"github.com/js-arias/ecosur/project"
)

var Command = &command.Command{
	Usage: "shannon [--by <grouping>] <project-file>",
	Short: "print the Shannon diversity index of a survey",
	Long: `
Command shannon reads the observations from an EcoSur project and prints the
Shannon diversity index (H = -sum(p*ln(p)) over the count shares of each
species) per group, as a tab-delimited table, in the standard output. Records
without a positive individual count are ignored.

The argument of the command is the name of the project file.

By default, observations are grouped by month. Use the flag --by to set a
different grouping, valid groupings are:

	month    index per month (default)
	region   index per sampling region
	`,
	SetFlags: setFlags,
	Run:      run,
}

var byFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&byFlag, "by", "month", "")
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

	var div []diversity.Diversity
	switch byFlag {
	case "month":
		div = diversity.ShannonByMonth(t)
	case "region":
		div = diversity.ShannonByRegion(t)
	default:
		return c.UsageError(fmt.Sprintf("invalid grouping %q", byFlag))
	}

	fmt.Fprintf(c.Stdout(), "region\tmonth\tshannon\n")
	for _, d := range div {
		fmt.Fprintf(c.Stdout(), "%s\t%d\t%.6f\n", d.Region, d.Month, d.H)
	}
	return nil
}

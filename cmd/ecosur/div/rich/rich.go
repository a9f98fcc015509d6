// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package rich implements a command to print
// the species richness of a survey.
package rich

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/diversity"
	"github.com/js-arias/ecosur/project"
)

var Command = &command.Command{
	Usage: "rich [--by <grouping>] <project-file>",
	Short: "print the species richness of a survey",
	Long: `
Command rich reads the observations from an EcoSur project and prints the
number of distinct species per group, as a tab-delimited table, in the
standard output. Records without a positive individual count are ignored.

The argument of the command is the name of the project file.

By default, observations are grouped by month. Use the flag --by to set a
different grouping, valid groupings are:

	month         species per month (default)
	region        species per sampling region
	region-month  species per region and month
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

	var rich []diversity.Richness
	switch byFlag {
	case "month":
		rich = diversity.RichnessByMonth(t)
	case "region":
		rich = diversity.RichnessByRegion(t)
	case "region-month":
		rich = diversity.RichnessByRegionMonth(t)
	default:
		return c.UsageError(fmt.Sprintf("invalid grouping %q", byFlag))
	}

	fmt.Fprintf(c.Stdout(), "region\tmonth\trichness\n")
	for _, r := range rich {
		fmt.Fprintf(c.Stdout(), "%s\t%d\t%d\n", r.Region, r.Month, r.Richness)
	}
	return nil
}

// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package share implements a command to print
// the monthly count share of each species.
package share

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/diversity"
	"github.com/js-arias/ecosur/project"
)

var Command = &command.Command{
	Usage: "share [--class <name>] <project-file>",
	Short: "print the monthly share of each species",
	Long: `
Command share reads the observations from an EcoSur project, sums the
individual counts per month and species, and prints each species count as a
percentage of the month total, as a tab-delimited table, in the standard
output. Records without a positive individual count are ignored.

The argument of the command is the name of the project file.

By default, percentages are computed over all the observations. Use the flag
--class to restrict the table to a taxonomic class (for example "bird" or
"mammal"); then the percentages are computed within the class subset, so the
shares of each month sum to 100 over the species of the class alone.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var classFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&classFlag, "class", "", "")
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

	shares := diversity.SharesByMonth(t)
	if classFlag != "" {
		shares = diversity.SharesByMonthClass(t, classFlag)
	}

	fmt.Fprintf(c.Stdout(), "month\tspecies\tcount\tpercent\n")
	for _, s := range shares {
		fmt.Fprintf(c.Stdout(), "%d\t%s\t%.6f\t%.2f\n", s.Month, s.Species, s.Count, s.Percent)
	}
	return nil
}

// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package report implements a command to print
// a summary of the data exported for niche modeling.
package report

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/obs"
	"github.com/js-arias/ecosur/project"
	"github.com/js-arias/ecosur/swd"
)

var Command = &command.Command{
	Usage: "report <project-file>",
	Short: "print a summary of the niche modeling data",
	Long: `
Command report reads the observations from an EcoSur project and prints a
plain text summary of the data used for niche modeling in the standard
output: the number of records and unique locations, the records per species,
the range of each environmental covariate, and the list of generated files.

The argument of the command is the name of the project file.
	`,
	Run: run,
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

	return swd.Report(c.Stdout(), t, t.Species(), obs.Covariates())
}

// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package clean implements a command to write
// a cleaned snapshot of the observation table.
package clean

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/obs"
	"github.com/js-arias/ecosur/project"
)

var Command = &command.Command{
	Usage: "clean [-o|--output <file>] <project-file>",
	Short: "write a cleaned copy of the observations",
	Long: `
Command clean reads the observation table from an EcoSur project, drops the
rows with a missing species, an unparseable date, or invalid coordinates, and
writes the remaining records back as a CSV file with the canonical column
set. The number of dropped rows is reported in the standard error.

The cleaned file can be used as the observation table of a project, so later
runs skip the row validation of the raw table.

The argument of the command is the name of the project file.

By default, the output file is named after the observation file of the
project, with a '_pre.csv' suffix; use the flag --output, or -o, to set a
different file name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
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
	fmt.Fprintf(c.Stderr(), "# unparseable rows: %d\n", t.Dropped())

	if output == "" {
		src := p.Path(project.Observations)
		base := filepath.Base(src)
		output = strings.TrimSuffix(base, filepath.Ext(base)) + "_pre.csv"
	}

	return writeTable(output, t)
}

func writeTable(name string, t *obs.Table) (err error) {
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

	if err := t.CSV(f); err != nil {
		return fmt.Errorf("when writing file %q: %v", name, err)
	}
	return nil
}

// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package swdcmd implements a command to export
// survey observations as "samples with data" files
// for external niche modeling tools.
package swdcmd

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/obs"
	"github.com/js-arias/ecosur/project"
	"github.com/js-arias/ecosur/swd"
)

var Command = &command.Command{
	Usage: "swd [--taxon <name>] <project-file>",
	Short: "export observations for niche modeling",
	Long: `
Command swd reads the observations from an EcoSur project and writes the
"samples with data" files used by MaxEnt and similar niche modeling tools:

	- an occurrence file per species, with one row per unique location,
	  named 'maxent_<species>.csv';
	- a merged occurrence file with all the species,
	  named 'maxent_all_species.csv';
	- an environmental layer file, with the mean of each covariate per
	  unique location, named 'maxent_environment_swd.csv';
	- a sampling bias file, with the number of records per unique
	  location, named 'maxent_bias.csv'.

The argument of the command is the name of the project file.

By default, all the species with georeferenced records are exported; species
without georeferenced records are reported and skipped. Use the flag --taxon
to export a single species.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var taxonFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&taxonFlag, "taxon", "", "")
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

	species := t.Species()
	if taxonFlag != "" {
		species = []string{obs.Canon(taxonFlag)}
	}

	var exported []string
	for _, sp := range species {
		name := swd.FileName(sp)
		err := writeFile(name, func(f *os.File) error {
			return swd.Samples(f, t, sp)
		})
		if err != nil {
			fmt.Fprintf(c.Stderr(), "# skipping %q: %v\n", sp, err)
			continue
		}
		exported = append(exported, sp)
	}
	if len(exported) == 0 {
		return fmt.Errorf("no species with georeferenced records")
	}

	err = writeFile("maxent_all_species.csv", func(f *os.File) error {
		return swd.AllSamples(f, t, exported)
	})
	if err != nil {
		return err
	}

	err = writeFile("maxent_environment_swd.csv", func(f *os.File) error {
		return swd.Environment(f, t, obs.Covariates())
	})
	if err != nil {
		return err
	}

	return writeFile("maxent_bias.csv", func(f *os.File) error {
		return swd.Bias(f, t)
	})
}

func writeFile(name string, fn func(*os.File) error) (err error) {
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

	if err := fn(f); err != nil {
		return fmt.Errorf("when writing file %q: %v", name, err)
	}
	return nil
}

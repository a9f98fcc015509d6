// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package batch implements a command to write
// the scripts that run an external niche modeling tool.
package batch

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/obs"
	"github.com/js-arias/ecosur/project"
	"github.com/js-arias/ecosur/swd"
)

var Command = &command.Command{
	Usage: `batch [--taxon <name>]
	[--replicates <value>] [--threads <value>] <project-file>`,
	Short: "write scripts to run MaxEnt",
	Long: `
Command batch reads the observations from an EcoSur project and writes the
scripts that run MaxEnt over the exported "samples with data" files: a shell
script 'run_maxent.sh' and a Windows batch file 'run_maxent.bat'. The
occurrence, environment, and bias files used by the scripts are the ones
written by the swd command.

The argument of the command is the name of the project file.

By default, all the species with observations are included in the scripts;
use the flag --taxon to include a single species.

By default, each model is run with 10 cross-validation replicates over 4
threads; use the flags --replicates and --threads to change the values.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var replicates int
var threads int
var taxonFlag string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&replicates, "replicates", 0, "")
	c.Flags().IntVar(&threads, "threads", 0, "")
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

	species := t.Species()
	if taxonFlag != "" {
		species = []string{obs.Canon(taxonFlag)}
	}
	if len(species) == 0 {
		return fmt.Errorf("no species in project %q", args[0])
	}

	o := swd.Options{
		Replicates: replicates,
		Threads:    threads,
	}

	err = writeFile("run_maxent.sh", func(f *os.File) error {
		return swd.Shell(f, species, o)
	})
	if err != nil {
		return err
	}

	return writeFile("run_maxent.bat", func(f *os.File) error {
		return swd.Batch(f, species, o)
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

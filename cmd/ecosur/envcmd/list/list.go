// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the layer variables of an environmental data cube.
package list

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/ncgrid"
	"github.com/js-arias/ecosur/project"
)

var Command = &command.Command{
	Usage: "list <project-file>",
	Short: "print the layers of an environmental cube",
	Long: `
Command list reads the environmental data cube (a NetCDF file) defined in an
EcoSur project and prints the names of its layer variables in the standard
output.

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
	name := p.Path(project.Environment)
	if name == "" {
		return fmt.Errorf("environment cube not defined in project %q", args[0])
	}

	f, err := ncgrid.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, v := range f.Vars() {
		fmt.Fprintf(c.Stdout(), "%s\n", v)
	}
	return nil
}

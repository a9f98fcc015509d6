// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package extract implements a command to extract
// environmental layers as ASCII raster files.
package extract

import (
	"fmt"
	"os"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/ncgrid"
	"github.com/js-arias/ecosur/project"
	"github.com/js-arias/ecosur/raster"
)

var Command = &command.Command{
	Usage: `extract [--var <name>]
	[--time <index>] [--depth <index>] [--date <text>]
	<project-file>`,
	Short: "extract environmental layers as raster files",
	Long: `
Command extract reads the environmental data cube (a NetCDF file) defined in
an EcoSur project and writes one or more of its layers as ESRI ASCII raster
files. Layer values are unpacked with the scale and offset attributes of the
variable, and fill values are stored as NoData cells.

The argument of the command is the name of the project file.

By default, all the layer variables are extracted; use the flag --var to
extract a single variable.

By default, the layer at the first time step and the first depth level is
extracted; use the flags --time and --depth to set different indices.

The name of each output file will be in the form '<var>_<date>_d<k>.asc',
with k the depth index. By default the date is the current date; use the
flag --date to set a different date text.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var timeFlag int
var depthFlag int
var varFlag string
var dateFlag string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&timeFlag, "time", 0, "")
	c.Flags().IntVar(&depthFlag, "depth", 0, "")
	c.Flags().StringVar(&varFlag, "var", "", "")
	c.Flags().StringVar(&dateFlag, "date", "", "")
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
	name := p.Path(project.Environment)
	if name == "" {
		return fmt.Errorf("environment cube not defined in project %q", args[0])
	}

	f, err := ncgrid.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	vars := f.Vars()
	if varFlag != "" {
		vars = []string{varFlag}
	}
	if dateFlag == "" {
		dateFlag = time.Now().Format("2006-01-02")
	}

	for _, v := range vars {
		g, err := f.Extract(v, timeFlag, depthFlag, pp.NoData())
		if err != nil {
			return err
		}
		out := ncgrid.FileName(v, dateFlag, depthFlag)
		if err := writeRaster(out, g); err != nil {
			return err
		}
		fmt.Fprintf(c.Stdout(), "%s\n", out)
	}
	return nil
}

func writeRaster(name string, g *raster.Grid) (err error) {
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

	if err := g.Write(f); err != nil {
		return fmt.Errorf("when writing raster %q: %v", name, err)
	}
	return nil
}

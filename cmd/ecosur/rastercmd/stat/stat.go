// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stat implements a command to print
// summary statistics of ASCII raster files.
package stat

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/raster"
)

var Command = &command.Command{
	Usage: "stat <raster-file>...",
	Short: "print summary statistics of raster files",
	Long: `
Command stat reads one or more ESRI ASCII raster files and prints the grid
size, the geographic extent, and the minimum, maximum, and mean of the valid
cells of each file, in the standard output.

The arguments of the command are the names of the raster files.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting raster file")
	}

	for _, a := range args {
		g, err := readRaster(a)
		if err != nil {
			return err
		}

		min, max, mean, n := g.Stats()
		fmt.Fprintf(c.Stdout(), "%s:\n", a)
		fmt.Fprintf(c.Stdout(), "\tcolumns: %d\n", g.Cols())
		fmt.Fprintf(c.Stdout(), "\trows: %d\n", g.Rows())
		fmt.Fprintf(c.Stdout(), "\tcell size: %.6f\n", g.CellSize())
		fmt.Fprintf(c.Stdout(), "\tlongitude: %.6f to %.6f\n", g.XLL(), g.XLL()+float64(g.Cols())*g.CellSize())
		fmt.Fprintf(c.Stdout(), "\tlatitude: %.6f to %.6f\n", g.YLL(), g.YLL()+float64(g.Rows())*g.CellSize())
		fmt.Fprintf(c.Stdout(), "\tvalid cells: %d\n", n)
		if n > 0 {
			fmt.Fprintf(c.Stdout(), "\tminimum: %.6f\n", min)
			fmt.Fprintf(c.Stdout(), "\tmaximum: %.6f\n", max)
			fmt.Fprintf(c.Stdout(), "\tmean: %.6f\n", mean)
		}
	}
	return nil
}

func readRaster(name string) (*raster.Grid, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := raster.Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return g, nil
}

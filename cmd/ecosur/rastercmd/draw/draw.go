// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// ASCII raster files as map images.
package draw

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/obs"
	"github.com/js-arias/ecosur/project"
	"github.com/js-arias/ecosur/raster"
	"github.com/js-arias/ecosur/suitmap"
)

var Command = &command.Command{
	Usage: `draw [-c|--columns <value>]
	[--gray] [--gradient <scheme>]
	[-p|--project <project-file>] [--taxon <name>]
	[-o|--output <file-prefix>] <raster-file>...`,
	Short: "draw raster files as map images",
	Long: `
Command draw reads one or more ESRI ASCII raster files and draws each one as
a png image, using a plate carrée projection over the raster extent, with
the cell values mapped to a color gradient.

The arguments of the command are the names of the raster files.

By default, the image will be 1000 pixels wide; use the flag --columns, or
-c, to define a different number of image columns.

By default, the cell values are drawn with the rainbow scheme of Paul Tol;
use the flag --gray for a gray scale, or the flag --gradient to set one of
the following schemes:

	rainbow       rainbow, from purple to red (default)
	incandescent  the incandescent scheme
	iridescent    the iridescent scheme

If a project file is given with the flag --project, or -p, the coastline
defined in the project will be drawn over the map, and the observations of
the project will be drawn as dots, colored by the project key file. Use the
flag --taxon to draw only the observations of a single species.

By default, each image will be named after its raster file, with a png
extension; use the flag --output, or -o, to set a prefix for the image
names.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var grayFlag bool
var colsFlag int
var gradFlag string
var prjFile string
var taxonFlag string
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&grayFlag, "gray", false, "")
	c.Flags().IntVar(&colsFlag, "columns", 1000, "")
	c.Flags().IntVar(&colsFlag, "c", 1000, "")
	c.Flags().StringVar(&gradFlag, "gradient", "", "")
	c.Flags().StringVar(&prjFile, "project", "", "")
	c.Flags().StringVar(&prjFile, "p", "", "")
	c.Flags().StringVar(&taxonFlag, "taxon", "", "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting raster file")
	}

	var grad suitmap.Gradienter
	switch gradFlag {
	case "":
	case "rainbow":
		grad = suitmap.RainbowPurpleToRed{}
	case "incandescent":
		grad = suitmap.Incandescent{}
	case "iridescent":
		grad = suitmap.Iridescent{}
	default:
		return c.UsageError(fmt.Sprintf("invalid gradient %q", gradFlag))
	}

	for _, a := range args {
		g, err := readRaster(a)
		if err != nil {
			return err
		}

		i := &suitmap.Image{
			Cols:     colsFlag,
			Grid:     g,
			Gray:     grayFlag,
			Gradient: grad,
		}
		if prjFile != "" {
			if err := overlay(i, g); err != nil {
				return err
			}
		}
		i.Format()

		name := strings.TrimSuffix(a, filepath.Ext(a)) + ".png"
		if outPrefix != "" {
			name = outPrefix + "-" + filepath.Base(name)
		}
		if err := writeImage(name, i); err != nil {
			return err
		}
	}
	return nil
}

// overlay adds the project coastline
// and observation points
// to a map image.
func overlay(i *suitmap.Image, g *raster.Grid) error {
	p, err := project.Read(prjFile)
	if err != nil {
		return err
	}
	pp, err := p.Params()
	if err != nil {
		return err
	}

	if coast := p.Path(project.Coastline); coast != "" {
		i.Contour, err = suitmap.Coastline(coast, g, colsFlag)
		if err != nil {
			return err
		}
	}

	keys, err := p.Keys()
	if err != nil {
		return err
	}
	i.Keys = keys

	t, err := p.Observations(pp.Year())
	if err != nil {
		return err
	}
	taxon := obs.Canon(taxonFlag)
	for _, r := range t.Records() {
		if !r.HasLocation() {
			continue
		}
		if taxon != "" && r.Species != taxon {
			continue
		}
		i.Points = append(i.Points, suitmap.Point{
			Species: r.Species,
			Lat:     r.Lat,
			Lon:     r.Lon,
		})
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

func writeImage(name string, img image.Image) (err error) {
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

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("when encoding image file %q: %v", name, err)
	}
	return nil
}

// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add a dataset
// to an EcoSur project.
package add

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/params"
	"github.com/js-arias/ecosur/project"
	"github.com/js-arias/ecosur/speckey"
)

var Command = &command.Command{
	Usage: "add --type <file-type> <project-file> <dataset-file>",
	Short: "add a dataset to a project",
	Long: `
Command add adds the path of a dataset file to an EcoSur project.

The first argument of the command is the name of the project file. If no
project exists, a new project will be created.

The second argument is the path of the dataset file. If a dataset of the
same type is already defined in the project, its path will be replaced by
the path of the added file.

The type of the added dataset must be explicitly defined using the flag
--type with one of the following values:

	observations	the survey observation table (CSV or Excel)
	params		the analysis parameters (TSV)
	coastline	coastline polygons (a shapefile)
	environment	an oceanographic reanalysis cube (NetCDF)
	keys		species or class color keys (TSV)
	`,
	SetFlags: setFlags,
	Run:      run,
}

var typeFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&typeFlag, "type", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting dataset file")
	}
	if typeFlag == "" {
		return c.UsageError("flag --type undefined")
	}

	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	path := args[1]
	typeFlag = strings.ToLower(typeFlag)
	switch d := project.Dataset(typeFlag); d {
	case project.Observations, project.Coastline, project.Environment:
		if _, err := os.Stat(path); err != nil {
			return err
		}
		p.Add(d, path)
	case project.Params:
		if _, err := params.Read(path); err != nil {
			return err
		}
		p.Add(d, path)
	case project.Keys:
		if _, err := speckey.Read(path); err != nil {
			return err
		}
		p.Add(d, path)
	default:
		msg := fmt.Sprintf("flag --type: unknown value %q", typeFlag)
		return c.UsageError(msg)
	}

	p.SetName(pFile)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		return project.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

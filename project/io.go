// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/ecosur/obs"
	"github.com/js-arias/ecosur/params"
	"github.com/js-arias/ecosur/speckey"
)

// Observations reads the observation table
// as defined in a project.
// Excel tables are recognized by their file extension;
// anything else is read as CSV.
func (p *Project) Observations(year int) (*obs.Table, error) {
	name := p.Path(Observations)
	if name == "" {
		return nil, fmt.Errorf("observations not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".xlsx" || ext == ".xlsm" {
		t, err := obs.ReadXLSX(f, year)
		if err != nil {
			return nil, fmt.Errorf("when reading %q: %v", name, err)
		}
		return t, nil
	}

	t, err := obs.Read(f, year)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return t, nil
}

// Params reads the analysis parameters
// as defined in a project.
// If the project has no parameter file,
// the default parameters are returned.
func (p *Project) Params() (*params.Params, error) {
	name := p.Path(Params)
	if name == "" {
		return params.New(""), nil
	}

	pp, err := params.Read(name)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return pp, nil
}

// Keys reads the class color keys
// as defined in a project.
// If the project has no key file,
// it returns nil.
func (p *Project) Keys() (*speckey.Keys, error) {
	name := p.Path(Keys)
	if name == "" {
		return nil, nil
	}

	keys, err := speckey.Read(name)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return keys, nil
}

// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// EcoSur is a tool for ecological survey analysis.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/cmd/ecosur/clean"
	"github.com/js-arias/ecosur/cmd/ecosur/div"
	"github.com/js-arias/ecosur/cmd/ecosur/envcmd"
	"github.com/js-arias/ecosur/cmd/ecosur/prj"
	"github.com/js-arias/ecosur/cmd/ecosur/rastercmd"
	"github.com/js-arias/ecosur/cmd/ecosur/sdm"
)

var app = &command.Command{
	Usage: "ecosur <command> [<argument>...]",
	Short: "a tool for ecological survey analysis",
}

func init() {
	app.Add(clean.Command)
	app.Add(div.Command)
	app.Add(envcmd.Command)
	app.Add(prj.Command)
	app.Add(rastercmd.Command)
	app.Add(sdm.Command)
}

func main() {
	app.Main()
}

// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sdm is a metapackage for commands
// that deal with species distribution models.
package sdm

import (
	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/cmd/ecosur/sdm/batch"
	"github.com/js-arias/ecosur/cmd/ecosur/sdm/grid"
	"github.com/js-arias/ecosur/cmd/ecosur/sdm/report"
	"github.com/js-arias/ecosur/cmd/ecosur/sdm/swdcmd"
)

var Command = &command.Command{
	Usage: "sdm <command> [<argument>...]",
	Short: "commands for species distribution models",
}

func init() {
	Command.Add(batch.Command)
	Command.Add(grid.Command)
	Command.Add(report.Command)
	Command.Add(swdcmd.Command)
}

// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package rastercmd is a metapackage for commands
// that deal with ASCII raster files.
package rastercmd

import (
	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/cmd/ecosur/rastercmd/draw"
	"github.com/js-arias/ecosur/cmd/ecosur/rastercmd/stat"
)

var Command = &command.Command{
	Usage: "raster <command> [<argument>...]",
	Short: "commands for ASCII raster files",
}

func init() {
	Command.Add(draw.Command)
	Command.Add(stat.Command)
}

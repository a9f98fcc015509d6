// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj is a metapackage for commands
// that maintain EcoSur project files.
package prj

import (
	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/cmd/ecosur/prj/add"
	"github.com/js-arias/ecosur/cmd/ecosur/prj/list"
)

var Command = &command.Command{
	Usage: "prj <command> [<argument>...]",
	Short: "commands for project files",
}

func init() {
	Command.Add(add.Command)
	Command.Add(list.Command)
}

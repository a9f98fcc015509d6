// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package envcmd is a metapackage for commands
// that deal with environmental data cubes.
package envcmd

import (
	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/cmd/ecosur/envcmd/extract"
	"github.com/js-arias/ecosur/cmd/ecosur/envcmd/list"
)

var Command = &command.Command{
	Usage: "env <command> [<argument>...]",
	Short: "commands for environmental data cubes",
}

func init() {
	Command.Add(extract.Command)
	Command.Add(list.Command)
}

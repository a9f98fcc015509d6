// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package div is a metapackage for commands
// that summarize the diversity of a survey.
package div

import (
	"github.com/js-arias/command"
	"github.com/js-arias/ecosur/cmd/ecosur/div/count"
	"github.com/js-arias/ecosur/cmd/ecosur/div/plot"
	"github.com/js-arias/ecosur/cmd/ecosur/div/rich"
	"github.com/js-arias/ecosur/cmd/ecosur/div/shannon"
	"github.com/js-arias/ecosur/cmd/ecosur/div/share"
)

var Command = &command.Command{
	Usage: "div <command> [<argument>...]",
	Short: "commands for diversity summaries",
}

func init() {
	Command.Add(count.Command)
	Command.Add(plot.Command)
	Command.Add(rich.Command)
	Command.Add(shannon.Command)
	Command.Add(share.Command)
}

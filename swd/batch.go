// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package swd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/js-arias/ecosur/obs"
)

// Options for the external modeling tool invocation.
type Options struct {
	// Environment is the name of the environmental layer file.
	Environment string

	// Bias is the name of the sampling bias file.
	Bias string

	// Replicates is the number of cross-validation replicates.
	Replicates int

	// Threads is the number of threads used by the tool.
	Threads int
}

func (o Options) fill() Options {
	if o.Environment == "" {
		o.Environment = "maxent_environment_swd.csv"
	}
	if o.Bias == "" {
		o.Bias = "maxent_bias.csv"
	}
	if o.Replicates == 0 {
		o.Replicates = 10
	}
	if o.Threads == 0 {
		o.Threads = 4
	}
	return o
}

func outputDir(species string) string {
	return "output_" + strings.ReplaceAll(obs.Canon(species), " ", "_")
}

var toolArgs = []string{
	"responsecurves=true",
	"pictures=true",
	"jackknife=true",
	"writebackgroundpredictions=true",
	"writeclampgrid=false",
	"writemess=false",
	"replicatetype=crossvalidate",
}

// Shell writes a shell script
// that runs the external modeling tool
// over the occurrence files of the given species.
func Shell(w io.Writer, species []string, o Options) error {
	o = o.fill()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "#!/bin/bash\n")
	fmt.Fprintf(bw, "echo \"Starting MaxEnt analysis...\"\n\n")
	for _, sp := range species {
		fmt.Fprintf(bw, "java -mx2048m -jar maxent.jar \\\n")
		fmt.Fprintf(bw, "\tsamplesfile=%s \\\n", FileName(sp))
		fmt.Fprintf(bw, "\tenvironmentallayers=%s \\\n", o.Environment)
		fmt.Fprintf(bw, "\tbiasfile=%s \\\n", o.Bias)
		fmt.Fprintf(bw, "\toutputdirectory=%s \\\n", outputDir(sp))
		for _, a := range toolArgs {
			fmt.Fprintf(bw, "\t%s \\\n", a)
		}
		fmt.Fprintf(bw, "\treplicates=%d \\\n", o.Replicates)
		fmt.Fprintf(bw, "\tthreads=%d\n\n", o.Threads)
	}
	fmt.Fprintf(bw, "echo \"All analyses completed!\"\n")
	return bw.Flush()
}

// Batch writes a Windows batch script
// that runs the external modeling tool
// over the occurrence files of the given species.
func Batch(w io.Writer, species []string, o Options) error {
	o = o.fill()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "@echo off\r\n")
	fmt.Fprintf(bw, "echo Starting MaxEnt analysis...\r\n\r\n")
	for _, sp := range species {
		fmt.Fprintf(bw, "java -mx2048m -jar maxent.jar ^\r\n")
		fmt.Fprintf(bw, "\tsamplesfile=%s ^\r\n", FileName(sp))
		fmt.Fprintf(bw, "\tenvironmentallayers=%s ^\r\n", o.Environment)
		fmt.Fprintf(bw, "\tbiasfile=%s ^\r\n", o.Bias)
		fmt.Fprintf(bw, "\toutputdirectory=%s ^\r\n", outputDir(sp))
		for _, a := range toolArgs {
			fmt.Fprintf(bw, "\t%s ^\r\n", a)
		}
		fmt.Fprintf(bw, "\treplicates=%d ^\r\n", o.Replicates)
		fmt.Fprintf(bw, "\tthreads=%d\r\n\r\n", o.Threads)
	}
	fmt.Fprintf(bw, "echo All analyses completed!\r\n")
	fmt.Fprintf(bw, "pause\r\n")
	return bw.Flush()
}

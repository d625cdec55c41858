/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bhelenbr/tfemviz/InputParameters"
)

// addPlotFlags registers the flags shared by every plotting command
func addPlotFlags(c *cobra.Command) {
	c.Flags().StringP("plotParametersFile", "I", "", "YAML file for plot styling like:\n\t- Title\n\t- Palette\n\t- OutputDir")
	c.Flags().BoolP("verbose", "v", false, "print plot parameters and progress")
}

// processPlotInput loads the -I styling file over the defaults, exiting on
// a malformed file
func processPlotInput(c *cobra.Command) (pp *InputParameters.PlotParameters) {
	pp = InputParameters.NewPlotParameters()
	icFile, _ := c.Flags().GetString("plotParametersFile")
	if len(icFile) == 0 {
		return
	}
	data, err := os.ReadFile(icFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if err = pp.Parse(data); err != nil {
		fmt.Printf("error parsing %s: %s\n", icFile, err.Error())
		os.Exit(1)
	}
	if verbose, _ := c.Flags().GetBool("verbose"); verbose {
		pp.Print()
	}
	return
}

// outputPath joins the configured output directory with name, creating the
// directory when needed
func outputPath(pp *InputParameters.PlotParameters, name string) string {
	if err := os.MkdirAll(pp.OutputDir, 0755); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return filepath.Join(pp.OutputDir, name)
}

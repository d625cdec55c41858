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

	"github.com/spf13/cobra"

	"github.com/bhelenbr/tfemviz/plotting"
	"github.com/bhelenbr/tfemviz/readfiles"
)

// slicesCmd represents the slices command
var slicesCmd = &cobra.Command{
	Use:   "slices",
	Short: "Render time-slice scalar fields from a solver slices.json dump",
	Long: `
Reads a slices.json dump ({"points": [[x, y], ...], "slices": [[v, ...], ...]})
and writes one scatter plot per recorded time slice, colored on a diverging
map normalized to [-1, 1].

tfemviz slices -F out/slices.json`,
	Run: func(cmd *cobra.Command, args []string) {
		sliceFile, _ := cmd.Flags().GetString("sliceFile")
		if len(sliceFile) == 0 {
			fmt.Printf("error: must supply a slice file (-F, --sliceFile) in JSON format\n")
			os.Exit(1)
		}
		pp := processPlotInput(cmd)

		sd, err := readfiles.ReadSliceData(sliceFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("read %s: %d points, %d time slices\n", sliceFile, len(sd.Points), len(sd.Slices))

		for t, values := range sd.Slices {
			title := fmt.Sprintf("Time Slice %d", t)
			p, err := plotting.ScalarFieldFigure(sd.Points, values, title, pp)
			if err == nil {
				err = plotting.SaveFigure(p, pp, outputPath(pp, fmt.Sprintf("slice_%d.png", t)))
			}
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(slicesCmd)
	slicesCmd.Flags().StringP("sliceFile", "F", "", "slices.json file to read")
	addPlotFlags(slicesCmd)
}

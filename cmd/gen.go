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

	"github.com/bhelenbr/tfemviz/geometry2D"
	"github.com/bhelenbr/tfemviz/readfiles"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a structured square-domain mesh in .grd format",
	Long: `
Generates the structured triangulation of the square domain [-1,1]x[-1,1] at
the given refinement level ((2^(n-1)+1)^2 points, 2*4^(n-1) triangles) and
writes it in the solver's .grd format.

tfemviz gen -n 3 -o square3.grd`,
	Run: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetInt("level")
		outFile, _ := cmd.Flags().GetString("outFile")
		if len(outFile) == 0 {
			outFile = fmt.Sprintf("square%d.grd", level)
		}
		tm, err := geometry2D.UnitSquareMesh(level)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = readfiles.WriteGrdMesh(outFile, tm); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("wrote %s: %d points, %d segments, %d triangles\n",
			outFile, tm.NPoint, tm.NEdge, tm.NTri)
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().IntP("level", "n", 3, "refinement level of the square mesh")
	genCmd.Flags().StringP("outFile", "o", "", "output .grd file (default square<level>.grd)")
}

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
	"math"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"

	"github.com/bhelenbr/tfemviz/plotting"
	"github.com/bhelenbr/tfemviz/readfiles"
)

// accuracyCmd represents the accuracy command
var accuracyCmd = &cobra.Command{
	Use:   "accuracy",
	Short: "Plot solver error against mesh spacing from an accuracy study CSV",
	Long: `
Reads an accuracy study CSV (columns Mesh, RMSE), derives the nominal mesh
spacing dx for each refinement level, estimates the convergence order from
the log-log slope, and writes Accuracy.svg.

tfemviz accuracy -F accuracy_data_unfuzzed.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		csvFile, _ := cmd.Flags().GetString("csvFile")
		if len(csvFile) == 0 {
			fmt.Printf("error: must supply an accuracy csv file (-F, --csvFile)\n")
			os.Exit(1)
		}
		pp := processPlotInput(cmd)

		records, err := readfiles.ReadAccuracyCSV(csvFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if len(records) == 0 {
			fmt.Printf("error: %s has no data rows\n", csvFile)
			os.Exit(1)
		}
		sort.Slice(records, func(i, j int) bool { return records[i].Dx() < records[j].Dx() })

		xys := make(plotter.XYs, len(records))
		logDx := make([]float64, len(records))
		logRMSE := make([]float64, len(records))
		for i, r := range records {
			xys[i].X = r.Dx()
			xys[i].Y = r.RMSE
			logDx[i] = math.Log(r.Dx())
			logRMSE[i] = math.Log(r.RMSE)
		}
		// Convergence order is the log-log slope of RMSE vs dx
		_, slope := stat.LinearRegression(logDx, logRMSE, nil, false)
		fmt.Printf("observed convergence order: %.3f\n", slope)

		colors, err := plotting.CategoricalPalette(pp.Palette, 1)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		series := []plotting.Series{{
			Name:  "RMSE",
			XYs:   xys,
			Color: colors[0],
		}}
		p, err := plotting.LogLogFigure("Error vs Mesh Size",
			"Mesh Spacing (\"dx\")", "Root Mean Square Error", series, pp)
		if err == nil {
			err = plotting.SaveFigure(p, pp, outputPath(pp, "Accuracy.svg"))
		}
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(accuracyCmd)
	accuracyCmd.Flags().StringP("csvFile", "F", "", "accuracy CSV file with Mesh,RMSE columns")
	addPlotFlags(accuracyCmd)
}

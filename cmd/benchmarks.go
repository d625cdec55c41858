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
	"sort"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"

	"github.com/bhelenbr/tfemviz/InputParameters"
	"github.com/bhelenbr/tfemviz/plotting"
	"github.com/bhelenbr/tfemviz/readfiles"
)

// benchmarksCmd represents the benchmarks command
var benchmarksCmd = &cobra.Command{
	Use:   "benchmarks",
	Short: "Plot solver runtimes and element throughput from a benchmark CSV",
	Long: `
Reads a benchmark CSV (columns Mesh, Time, Device, Algorithm), derives element
counts and throughput for each refinement level, and writes log-log
Runtimes.svg and Throughput.svg with one series per device/algorithm pair.

tfemviz benchmarks -F benchmark_data.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		csvFile, _ := cmd.Flags().GetString("csvFile")
		if len(csvFile) == 0 {
			fmt.Printf("error: must supply a benchmark csv file (-F, --csvFile)\n")
			os.Exit(1)
		}
		minMesh, _ := cmd.Flags().GetInt("minMesh")
		pp := processPlotInput(cmd)

		records, err := readfiles.ReadBenchmarkCSV(csvFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		// Small meshes are dominated by launch overhead and clutter the
		// log-log trends
		kept := records[:0]
		for _, r := range records {
			if r.Mesh > minMesh {
				kept = append(kept, r)
			}
		}
		records = kept
		if len(records) == 0 {
			fmt.Printf("error: no benchmark rows with Mesh > %d\n", minMesh)
			os.Exit(1)
		}
		printBenchmarkMaxima(records)

		runtimes, throughputs, err := benchmarkSeries(records, pp)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		p, err := plotting.LogLogFigure("Runtimes to compute 10000 time steps",
			"Mesh Size (Elements)", "Time (s)", runtimes, pp)
		if err == nil {
			err = plotting.SaveFigure(p, pp, outputPath(pp, "Runtimes.svg"))
		}
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if p, err = plotting.LogLogFigure("Element Throughput",
			"Mesh Size (Elements)", "Throughput (Elements / s)", throughputs, pp); err == nil {
			err = plotting.SaveFigure(p, pp, outputPath(pp, "Throughput.svg"))
		}
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

// benchmarkSeries groups records into one series per (Device, Algorithm)
// pair, colored by device and dashed by algorithm
func benchmarkSeries(records []readfiles.BenchmarkRecord, pp *InputParameters.PlotParameters) (runtimes, throughputs []plotting.Series, err error) {
	devices, algorithms := groupKeys(records)
	colors, err := plotting.CategoricalPalette(pp.Palette, len(devices))
	if err != nil {
		return nil, nil, err
	}
	deviceColor := make(map[string]int, len(devices))
	for i, d := range devices {
		deviceColor[d] = i
	}
	algorithmDash := make(map[string]int, len(algorithms))
	for i, a := range algorithms {
		algorithmDash[a] = i
	}
	for _, d := range devices {
		for _, a := range algorithms {
			var rows []readfiles.BenchmarkRecord
			for _, r := range records {
				if r.Device == d && r.Algorithm == a {
					rows = append(rows, r)
				}
			}
			if len(rows) == 0 {
				continue
			}
			sort.Slice(rows, func(i, j int) bool { return rows[i].NumElements() < rows[j].NumElements() })
			rt := make(plotter.XYs, len(rows))
			tp := make(plotter.XYs, len(rows))
			for i, r := range rows {
				rt[i].X = float64(r.NumElements())
				rt[i].Y = r.Time
				tp[i].X = float64(r.NumElements())
				tp[i].Y = r.Throughput()
			}
			name := fmt.Sprintf("%s / %s", d, a)
			runtimes = append(runtimes, plotting.Series{
				Name:   name,
				XYs:    rt,
				Color:  colors[deviceColor[d]],
				Dashes: plotting.DashPattern(algorithmDash[a]),
			})
			throughputs = append(throughputs, plotting.Series{
				Name:   name,
				XYs:    tp,
				Color:  colors[deviceColor[d]],
				Dashes: plotting.DashPattern(algorithmDash[a]),
			})
		}
	}
	return
}

// printBenchmarkMaxima reports the peak throughput per device/algorithm pair
func printBenchmarkMaxima(records []readfiles.BenchmarkRecord) {
	devices, algorithms := groupKeys(records)
	for _, d := range devices {
		for _, a := range algorithms {
			var tps []float64
			for _, r := range records {
				if r.Device == d && r.Algorithm == a {
					tps = append(tps, r.Throughput())
				}
			}
			if len(tps) == 0 {
				continue
			}
			fmt.Printf("%-12s %-12s peak throughput %12.4g elements/s\n", d, a, floats.Max(tps))
		}
	}
}

// groupKeys returns the sorted distinct devices and algorithms
func groupKeys(records []readfiles.BenchmarkRecord) (devices, algorithms []string) {
	dSet := make(map[string]bool)
	aSet := make(map[string]bool)
	for _, r := range records {
		dSet[r.Device] = true
		aSet[r.Algorithm] = true
	}
	for d := range dSet {
		devices = append(devices, d)
	}
	for a := range aSet {
		algorithms = append(algorithms, a)
	}
	sort.Strings(devices)
	sort.Strings(algorithms)
	return
}

func init() {
	rootCmd.AddCommand(benchmarksCmd)
	benchmarksCmd.Flags().StringP("csvFile", "F", "", "benchmark CSV file with Mesh,Time,Device,Algorithm columns")
	benchmarksCmd.Flags().Int("minMesh", 4, "drop rows with refinement level <= this")
	addPlotFlags(benchmarksCmd)
}

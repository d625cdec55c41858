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
	"math/rand"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/bhelenbr/tfemviz/geometry2D"
	"github.com/bhelenbr/tfemviz/plotting"
	"github.com/bhelenbr/tfemviz/readfiles"
)

type MeshViz struct {
	GridFile string
	Perturb  bool
	Seed     int64
	Graph    bool
	Delay    time.Duration
}

// meshCmd represents the mesh command
var meshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Render a .grd triangular mesh, colored so vertex-adjacent triangles differ",
	Long: `
Reads a solver .grd mesh file, optionally perturbing interior points, greedily
colors the triangles so that no two triangles sharing a vertex share a color,
and writes mesh_colored.png and mesh_uncolored.png.

tfemviz mesh -F square3_b0.grd --perturb`,
	Run: func(cmd *cobra.Command, args []string) {
		mv := &MeshViz{}
		var err error
		if mv.GridFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			panic(err)
		}
		if len(mv.GridFile) == 0 {
			fmt.Printf("error: must supply a grid file (-F, --gridFile) in .grd format\n")
			os.Exit(1)
		}
		mv.Perturb, _ = cmd.Flags().GetBool("perturb")
		mv.Seed, _ = cmd.Flags().GetInt64("seed")
		mv.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		mv.Delay = time.Duration(dr) * time.Second
		if prof, _ := cmd.Flags().GetBool("cpuprofile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		pp := processPlotInput(cmd)

		if mv.Seed < 0 {
			mv.Seed = time.Now().UnixNano()
		}
		// The seed drives both the perturbation and the coloring visit
		// order, so a logged seed reproduces the whole figure
		fmt.Printf("random seed: %d\n", mv.Seed)
		rnd := rand.New(rand.NewSource(mv.Seed))

		tm, err := readfiles.ReadGrdMesh(mv.GridFile, mv.Perturb, rnd)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("read %s: %d points, %d segments, %d triangles\n",
			mv.GridFile, tm.NPoint, tm.NEdge, tm.NTri)

		colors, nColors := geometry2D.ColorTriangles(tm, rnd)
		fmt.Printf("%d unique colors\n", nColors)

		title := pp.Title
		pp.Title = "Vertex-Adjacent Colored Mesh"
		if title != "" {
			pp.Title = title
		}
		p, err := plotting.MeshFigure(tm, colors, nColors, pp)
		if err == nil {
			err = plotting.SaveFigure(p, pp, outputPath(pp, "mesh_colored.png"))
		}
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		pp.Title = "Mesh"
		if title != "" {
			pp.Title = title
		}
		if p, err = plotting.MeshFigure(tm, nil, 0, pp); err == nil {
			err = plotting.SaveFigure(p, pp, outputPath(pp, "mesh_uncolored.png"))
		}
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}

		if mv.Graph {
			plotting.ShowMesh(tm, colors, nColors)
			time.Sleep(mv.Delay)
		}
	},
}

func init() {
	rootCmd.AddCommand(meshCmd)
	meshCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in .grd format")
	meshCmd.Flags().BoolP("perturb", "p", false, "randomly perturb interior mesh points")
	meshCmd.Flags().Int64P("seed", "s", -1, "random seed for perturbation and coloring order, -1 for time-based")
	meshCmd.Flags().BoolP("graph", "g", false, "display the mesh in an interactive window")
	meshCmd.Flags().IntP("delay", "d", 60, "seconds to keep the interactive window open")
	meshCmd.Flags().Bool("cpuprofile", false, "write a CPU profile for the run")
	addPlotFlags(meshCmd)
}

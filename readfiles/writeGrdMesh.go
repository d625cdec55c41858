package readfiles

import (
	"bufio"
	"fmt"
	"os"

	"github.com/bhelenbr/tfemviz/geometry2D"
)

// WriteGrdMesh writes tm in the solver's .grd format, readable back with
// ReadGrdMesh
func WriteGrdMesh(filename string, tm *geometry2D.TriMesh) (err error) {
	var file *os.File
	if file, err = os.Create(filename); err != nil {
		return fmt.Errorf("unable to create mesh file %s: %w", filename, err)
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "npnt: %d nseg: %d ntri: %d\n", tm.NPoint, tm.NEdge, tm.NTri)
	for i, p := range tm.Points {
		fmt.Fprintf(w, "%d: %.12g %.12g\n", i, p.X[0], p.X[1])
	}
	for i, e := range tm.Edges {
		fmt.Fprintf(w, "%d: %d %d\n", i, e[0], e[1])
	}
	for i, tri := range tm.Tris {
		fmt.Fprintf(w, "%d: %d %d %d\n", i, tri[0], tri[1], tri[2])
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("unable to write mesh file %s: %w", filename, err)
	}
	return
}

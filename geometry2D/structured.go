package geometry2D

import "fmt"

// UnitSquareMesh builds the structured triangulation of the square domain
// [-1,1] x [-1,1] at refinement level n >= 1: (2^(n-1)+1)^2 grid points,
// 2*4^(n-1) triangles, with the domain boundary stored as segments. Point
// numbering is row major from the bottom-left corner; each grid cell is
// split along its SW-NE diagonal, matching the solver's mesh generator.
func UnitSquareMesh(level int) (tm *TriMesh, err error) {
	if level < 1 {
		return nil, fmt.Errorf("refinement level must be >= 1, got %d", level)
	}
	side := 1<<(level-1) + 1 // points per side
	nPoint := side * side
	nEdge := 4 * (side - 1)
	nTri := 2 * (side - 1) * (side - 1)
	tm = NewTriMesh(nPoint, nEdge, nTri)

	h := 2.0 / float64(side-1)
	for j := 0; j < side; j++ {
		for i := 0; i < side; i++ {
			tm.Points = append(tm.Points, Point{X: [2]float64{
				-1.0 + float64(i)*h,
				-1.0 + float64(j)*h,
			}})
		}
	}

	// Boundary segments, walked counter-clockwise from the bottom-left corner
	at := func(i, j int) int { return j*side + i }
	for i := 0; i < side-1; i++ {
		tm.Edges = append(tm.Edges, Edge{at(i, 0), at(i+1, 0)})
	}
	for j := 0; j < side-1; j++ {
		tm.Edges = append(tm.Edges, Edge{at(side-1, j), at(side-1, j+1)})
	}
	for i := side - 1; i > 0; i-- {
		tm.Edges = append(tm.Edges, Edge{at(i, side-1), at(i-1, side-1)})
	}
	for j := side - 1; j > 0; j-- {
		tm.Edges = append(tm.Edges, Edge{at(0, j), at(0, j-1)})
	}

	for j := 0; j < side-1; j++ {
		for i := 0; i < side-1; i++ {
			p00 := at(i, j)
			p10 := at(i+1, j)
			p01 := at(i, j+1)
			p11 := at(i+1, j+1)
			tm.Tris = append(tm.Tris, Triangle{p00, p10, p11})
			tm.Tris = append(tm.Tris, Triangle{p00, p11, p01})
		}
	}
	return
}

package geometry2D

import (
	"math/rand"

	"github.com/james-bowman/sparse"
)

// BuildVertexAdjacency builds, for each triangle, the list of other
// triangles sharing at least one point index with it. The conflict graph is
// formed by multiplying the triangle-to-vertex incidence matrix with its
// transpose; off-diagonal nonzeros mark vertex-adjacent triangle pairs.
func BuildVertexAdjacency(tm *TriMesh) (adj [][]int) {
	if tm.NTri == 0 {
		return
	}
	T2V := sparse.NewDOK(tm.NTri, tm.NPoint)
	for k, tri := range tm.Tris {
		for _, p := range tri {
			T2V.Set(k, p, 1)
		}
	}
	T2T := sparse.NewCSR(tm.NTri, tm.NTri, nil, nil, nil)
	SpT2V := T2V.ToCSR()
	T2T.Mul(SpT2V, SpT2V.T())
	adj = make([][]int, tm.NTri)
	T2T.DoNonZero(func(i, j int, v float64) {
		if i != j {
			adj[i] = append(adj[i], j)
		}
	})
	return
}

// ColorTriangles assigns each triangle the smallest non-negative color not
// used by any already-colored triangle sharing a vertex with it, visiting
// triangles in a random permutation drawn from rnd. A nil rnd visits in
// natural order, which makes the assignment deterministic. The returned
// coloring is always proper; the color count depends on the visit order and
// carries no minimality guarantee.
func ColorTriangles(tm *TriMesh, rnd *rand.Rand) (colors []int, nColors int) {
	adj := BuildVertexAdjacency(tm)
	colors = make([]int, tm.NTri)
	for i := range colors {
		colors[i] = -1
	}
	visitOrder := make([]int, tm.NTri)
	for i := range visitOrder {
		visitOrder[i] = i
	}
	if rnd != nil {
		rnd.Shuffle(len(visitOrder), func(i, j int) {
			visitOrder[i], visitOrder[j] = visitOrder[j], visitOrder[i]
		})
	}
	for _, k := range visitOrder {
		c := 0
		for taken := true; taken; {
			taken = false
			for _, nb := range adj[k] {
				if colors[nb] == c {
					c++
					taken = true
					break
				}
			}
		}
		colors[k] = c
		if c+1 > nColors {
			nColors = c + 1
		}
	}
	return
}

package geometry2D

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoTriangleSquare() *TriMesh {
	tm := NewTriMesh(4, 0, 2)
	tm.Points = []Point{
		{X: [2]float64{0, 0}},
		{X: [2]float64{1, 0}},
		{X: [2]float64{1, 1}},
		{X: [2]float64{0, 1}},
	}
	tm.Tris = []Triangle{{0, 1, 2}, {0, 2, 3}}
	return tm
}

func TestBuildVertexAdjacency(t *testing.T) {
	tm := twoTriangleSquare()
	adj := BuildVertexAdjacency(tm)
	require.Len(t, adj, 2)
	// The two triangles share points 0 and 2, so each sees the other
	// exactly once and never itself
	assert.Equal(t, []int{1}, adj[0])
	assert.Equal(t, []int{0}, adj[1])
}

func TestBuildVertexAdjacencySymmetric(t *testing.T) {
	tm, err := UnitSquareMesh(3)
	require.NoError(t, err)
	adj := BuildVertexAdjacency(tm)
	for i, nbs := range adj {
		for _, j := range nbs {
			assert.NotEqual(t, i, j, "triangle %d listed as its own neighbor", i)
			assert.Contains(t, adj[j], i, "adjacency not symmetric for %d-%d", i, j)
		}
	}
}

func TestColorTrianglesTwoSharing(t *testing.T) {
	tm := twoTriangleSquare()
	for seed := int64(0); seed < 10; seed++ {
		colors, nColors := ColorTriangles(tm, rand.New(rand.NewSource(seed)))
		assert.NotEqual(t, colors[0], colors[1])
		assert.Equal(t, 2, nColors)
	}
}

func TestColorTrianglesIsolated(t *testing.T) {
	tm := NewTriMesh(3, 0, 1)
	tm.Points = []Point{
		{X: [2]float64{0, 0}},
		{X: [2]float64{1, 0}},
		{X: [2]float64{0, 1}},
	}
	tm.Tris = []Triangle{{0, 1, 2}}
	for seed := int64(0); seed < 5; seed++ {
		colors, nColors := ColorTriangles(tm, rand.New(rand.NewSource(seed)))
		assert.Equal(t, []int{0}, colors)
		assert.Equal(t, 1, nColors)
	}
}

func TestColorTrianglesEmpty(t *testing.T) {
	tm := NewTriMesh(0, 0, 0)
	colors, nColors := ColorTriangles(tm, nil)
	assert.Empty(t, colors)
	assert.Equal(t, 0, nColors)
}

// Proper coloring must hold for every visit order, so sweep a handful of
// seeds plus the nil (natural order) source
func TestColorTrianglesProper(t *testing.T) {
	tm, err := UnitSquareMesh(4)
	require.NoError(t, err)
	adj := BuildVertexAdjacency(tm)
	sources := []*rand.Rand{nil}
	for seed := int64(0); seed < 20; seed++ {
		sources = append(sources, rand.New(rand.NewSource(seed)))
	}
	for _, rnd := range sources {
		colors, nColors := ColorTriangles(tm, rnd)
		require.Len(t, colors, tm.NTri)
		assert.GreaterOrEqual(t, nColors, 2)
		for i, nbs := range adj {
			assert.GreaterOrEqual(t, colors[i], 0)
			assert.Less(t, colors[i], nColors)
			for _, j := range nbs {
				assert.NotEqual(t, colors[i], colors[j],
					"vertex-adjacent triangles %d and %d share color %d", i, j, colors[i])
			}
		}
	}
}

func TestColorTrianglesDeterministicWithoutSource(t *testing.T) {
	tm, err := UnitSquareMesh(3)
	require.NoError(t, err)
	c1, n1 := ColorTriangles(tm, nil)
	c2, n2 := ColorTriangles(tm, nil)
	assert.Equal(t, c1, c2)
	assert.Equal(t, n1, n2)
}

func BenchmarkColorTriangles(b *testing.B) {
	tm, err := UnitSquareMesh(7)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	rnd := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ColorTriangles(tm, rnd)
	}
}

func ExampleColorTriangles() {
	tm := twoTriangleSquare()
	colors, nColors := ColorTriangles(tm, nil)
	fmt.Println(colors, nColors)
	// Output: [0 1] 2
}

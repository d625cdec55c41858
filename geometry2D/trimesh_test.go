package geometry2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCross2D(t *testing.T) {
	o := Point{X: [2]float64{1, 1}}
	a := Point{X: [2]float64{2, 1}}
	b := Point{X: [2]float64{1, 2}}
	assert.Equal(t, 1.0, Cross2D(a, b, o))
	assert.Equal(t, -1.0, Cross2D(b, a, o))
}

func TestOrientCCW(t *testing.T) {
	tm := NewTriMesh(3, 0, 1)
	tm.Points = []Point{
		{X: [2]float64{0, 0}},
		{X: [2]float64{1, 0}},
		{X: [2]float64{0, 1}},
	}
	assert.Equal(t, Triangle{0, 1, 2}, tm.OrientCCW(Triangle{0, 1, 2}))
	assert.Equal(t, Triangle{0, 1, 2}, tm.OrientCCW(Triangle{0, 2, 1}))
}

func TestCheckIndexRanges(t *testing.T) {
	tm := NewTriMesh(3, 1, 1)
	tm.Points = make([]Point, 3)
	tm.Edges = []Edge{{0, 2}}
	tm.Tris = []Triangle{{0, 1, 2}}
	assert.NoError(t, tm.CheckIndexRanges())

	tm.Edges[0][1] = 3
	assert.Error(t, tm.CheckIndexRanges())
	tm.Edges[0][1] = 2
	tm.Tris[0][0] = -1
	assert.Error(t, tm.CheckIndexRanges())
}

func TestUnitSquareMesh(t *testing.T) {
	for level := 1; level <= 4; level++ {
		tm, err := UnitSquareMesh(level)
		require.NoError(t, err)
		side := 1<<(level-1) + 1
		assert.Equal(t, side*side, tm.NPoint)
		assert.Equal(t, 4*(side-1), tm.NEdge)
		assert.Equal(t, 2*(side-1)*(side-1), tm.NTri)
		assert.Len(t, tm.Points, tm.NPoint)
		assert.Len(t, tm.Edges, tm.NEdge)
		assert.Len(t, tm.Tris, tm.NTri)
		require.NoError(t, tm.CheckIndexRanges())
		for _, tri := range tm.Tris {
			assert.Greater(t, tm.SignedAreaX2(tri), 0.0)
		}
		xMin, xMax, yMin, yMax := tm.BoundingBox()
		assert.Equal(t, -1.0, xMin)
		assert.Equal(t, 1.0, xMax)
		assert.Equal(t, -1.0, yMin)
		assert.Equal(t, 1.0, yMax)
	}

	_, err := UnitSquareMesh(0)
	assert.Error(t, err)
}

package geometry2D

import "fmt"

type Point struct {
	X [2]float64
}

// Edge is a pair of point indices into TriMesh.Points
type Edge [2]int

// Triangle is a triple of point indices, counter-clockwise after loading
type Triangle [3]int

// TriMesh is the triangulated domain read from a .grd file. NPoint, NEdge
// and NTri mirror the file header and always equal the slice lengths.
type TriMesh struct {
	NPoint, NEdge, NTri int
	Points              []Point
	Edges               []Edge
	Tris                []Triangle
}

func NewTriMesh(nPoint, nEdge, nTri int) (tm *TriMesh) {
	tm = &TriMesh{
		NPoint: nPoint,
		NEdge:  nEdge,
		NTri:   nTri,
		Points: make([]Point, 0, nPoint),
		Edges:  make([]Edge, 0, nEdge),
		Tris:   make([]Triangle, 0, nTri),
	}
	return
}

// Cross2D computes the Z component of (v1-origin) x (v2-origin)
func Cross2D(v1, v2, origin Point) float64 {
	ax := v1.X[0] - origin.X[0]
	ay := v1.X[1] - origin.X[1]
	bx := v2.X[0] - origin.X[0]
	by := v2.X[1] - origin.X[1]
	return ax*by - ay*bx
}

// SignedAreaX2 returns twice the signed area of tri, positive for
// counter-clockwise vertex order
func (tm *TriMesh) SignedAreaX2(tri Triangle) float64 {
	return Cross2D(tm.Points[tri[1]], tm.Points[tri[2]], tm.Points[tri[0]])
}

// OrientCCW flips vertices 1 and 2 when the triangle is wound clockwise.
// Degenerate (zero area) triples are returned unchanged.
func (tm *TriMesh) OrientCCW(tri Triangle) Triangle {
	if tm.SignedAreaX2(tri) < 0 {
		tri[1], tri[2] = tri[2], tri[1]
	}
	return tri
}

// CheckIndexRanges verifies that every edge and triangle references valid
// point indices
func (tm *TriMesh) CheckIndexRanges() error {
	for i, e := range tm.Edges {
		for _, p := range e {
			if p < 0 || p >= tm.NPoint {
				return fmt.Errorf("edge %d references point %d, mesh has %d points", i, p, tm.NPoint)
			}
		}
	}
	for i, tri := range tm.Tris {
		for _, p := range tri {
			if p < 0 || p >= tm.NPoint {
				return fmt.Errorf("triangle %d references point %d, mesh has %d points", i, p, tm.NPoint)
			}
		}
	}
	return nil
}

// BoundingBox returns the extents of the point coordinates
func (tm *TriMesh) BoundingBox() (xMin, xMax, yMin, yMax float64) {
	for i, p := range tm.Points {
		if i == 0 {
			xMin, xMax = p.X[0], p.X[0]
			yMin, yMax = p.X[1], p.X[1]
			continue
		}
		if p.X[0] < xMin {
			xMin = p.X[0]
		}
		if p.X[0] > xMax {
			xMax = p.X[0]
		}
		if p.X[1] < yMin {
			yMin = p.X[1]
		}
		if p.X[1] > yMax {
			yMax = p.X[1]
		}
	}
	return
}

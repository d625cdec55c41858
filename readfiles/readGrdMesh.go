package readfiles

import (
	"bufio"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/bhelenbr/tfemviz/geometry2D"
)

/*
The .grd mesh format written by the solver is line oriented:

	npnt: 25 nseg: 16 ntri: 32
	0: -1.000000 -1.000000
	...
	0: 0 1
	...
	0: 0 1 6
	...

The header gives the point, segment and triangle counts. Each data line
starts with its own 0-based index, which must match the line's position
within its section.
*/

// ReadGrdMesh reads a .grd file into a TriMesh. When perturb is true,
// interior points (|x| < 0.95 and |y| < 0.95) receive independent uniform
// noise in [-d, d] per axis, with d = 0.25 * 2/(sqrt(npnt)-1), a quarter of
// the nominal grid spacing for the square domain of side 2. Boundary points
// are left exact so the mesh still conforms to the domain boundary. The
// noise is drawn from rnd; a nil rnd falls back to a time-seeded source.
func ReadGrdMesh(filename string, perturb bool, rnd *rand.Rand) (tm *geometry2D.TriMesh, err error) {
	var file *os.File
	if file, err = os.Open(filename); err != nil {
		return nil, fmt.Errorf("unable to open mesh file %s: %w", filename, err)
	}
	defer file.Close()
	if perturb && rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return readGrd(bufio.NewScanner(file), perturb, rnd)
}

type grdScanner struct {
	s      *bufio.Scanner
	lineNo int // 1-based, last line handed out
}

func (g *grdScanner) next() (line string, err error) {
	if !g.s.Scan() {
		if err = g.s.Err(); err != nil {
			return "", fmt.Errorf("line %d: %w", g.lineNo+1, err)
		}
		return "", fmt.Errorf("line %d: unexpected end of file", g.lineNo+1)
	}
	g.lineNo++
	return g.s.Text(), nil
}

func readGrd(s *bufio.Scanner, perturb bool, rnd *rand.Rand) (tm *geometry2D.TriMesh, err error) {
	var (
		g                   = &grdScanner{s: s}
		line                string
		nPoint, nEdge, nTri int
		n                   int
	)
	if line, err = g.next(); err != nil {
		return nil, err
	}
	if n, err = fmt.Sscanf(line, "npnt: %d nseg: %d ntri: %d", &nPoint, &nEdge, &nTri); err != nil || n < 3 {
		return nil, fmt.Errorf("line %d: malformed header, expected \"npnt: <n> nseg: <n> ntri: <n>\", got %q", g.lineNo, line)
	}
	tm = geometry2D.NewTriMesh(nPoint, nEdge, nTri)

	perturbAmount := 0.25 * (2.0 / (math.Sqrt(float64(nPoint)) - 1))
	drawPerturb := func() float64 {
		return perturbAmount * (2*rnd.Float64() - 1)
	}

	for i := 0; i < nPoint; i++ {
		if line, err = g.next(); err != nil {
			return nil, err
		}
		var (
			ind  int
			x, y float64
		)
		if n, err = fmt.Sscanf(line, "%d: %f %f", &ind, &x, &y); err != nil || n < 3 {
			return nil, fmt.Errorf("line %d: malformed point line, expected \"<i>: <x> <y>\", got %q", g.lineNo, line)
		}
		if ind != i {
			return nil, fmt.Errorf("line %d: point index %d does not match position %d", g.lineNo, ind, i)
		}
		if perturb && math.Abs(x) < 0.95 && math.Abs(y) < 0.95 {
			x += drawPerturb()
			y += drawPerturb()
		}
		tm.Points = append(tm.Points, geometry2D.Point{X: [2]float64{x, y}})
	}

	for i := 0; i < nEdge; i++ {
		if line, err = g.next(); err != nil {
			return nil, err
		}
		var ind, p0, p1 int
		if n, err = fmt.Sscanf(line, "%d: %d %d", &ind, &p0, &p1); err != nil || n < 3 {
			return nil, fmt.Errorf("line %d: malformed segment line, expected \"<i>: <p0> <p1>\", got %q", g.lineNo, line)
		}
		if ind != i {
			return nil, fmt.Errorf("line %d: segment index %d does not match position %d", g.lineNo, ind, i)
		}
		for _, p := range [2]int{p0, p1} {
			if p < 0 || p >= nPoint {
				return nil, fmt.Errorf("line %d: segment %d references point %d, mesh has %d points", g.lineNo, i, p, nPoint)
			}
		}
		tm.Edges = append(tm.Edges, geometry2D.Edge{p0, p1})
	}

	for i := 0; i < nTri; i++ {
		if line, err = g.next(); err != nil {
			return nil, err
		}
		var ind, p0, p1, p2 int
		if n, err = fmt.Sscanf(line, "%d: %d %d %d", &ind, &p0, &p1, &p2); err != nil || n < 4 {
			return nil, fmt.Errorf("line %d: malformed triangle line, expected \"<i>: <p0> <p1> <p2>\", got %q", g.lineNo, line)
		}
		if ind != i {
			return nil, fmt.Errorf("line %d: triangle index %d does not match position %d", g.lineNo, ind, i)
		}
		for _, p := range [3]int{p0, p1, p2} {
			if p < 0 || p >= nPoint {
				return nil, fmt.Errorf("line %d: triangle %d references point %d, mesh has %d points", g.lineNo, i, p, nPoint)
			}
		}
		tm.Tris = append(tm.Tris, tm.OrientCCW(geometry2D.Triangle{p0, p1, p2}))
	}
	return
}

package plotting

import (
	"image/color"

	"github.com/notargets/avs/chart2d"
	graphics2D "github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"

	"github.com/bhelenbr/tfemviz/geometry2D"
)

// ShowMesh opens an interactive chart2d window displaying tm. When colors
// is non-nil each triangle carries its color index as an attribute, mapped
// through a colormap spanning [0, nColors). The plot runs in its own
// goroutine; callers decide how long to keep the window up.
func ShowMesh(tm *geometry2D.TriMesh, colors []int, nColors int) (chart *chart2d.Chart2D) {
	var trimesh graphics2D.TriMesh
	points := make([]graphics2D.Point, tm.NPoint)
	for i, p := range tm.Points {
		points[i].X[0] = float32(p.X[0])
		points[i].X[1] = float32(p.X[1])
	}
	trimesh.Triangles = make([]graphics2D.Triangle, tm.NTri)
	trimesh.Attributes = make([][]float32, tm.NTri)
	for k, tri := range tm.Tris {
		trimesh.Triangles[k].Nodes[0] = int32(tri[0])
		trimesh.Triangles[k].Nodes[1] = int32(tri[1])
		trimesh.Triangles[k].Nodes[2] = int32(tri[2])
		if colors != nil {
			c := float32(colors[k])
			trimesh.Attributes[k] = []float32{c, c, c} // One attribute per face
		}
	}
	trimesh.Geometry = points
	box := graphics2D.NewBoundingBox(trimesh.GetGeometry())
	box = box.Scale(1.2)
	chart = chart2d.NewChart2D(1920, 1920, box.XMin[0], box.XMax[0], box.XMin[1], box.XMax[1])
	if nColors > 0 {
		chart.AddColorMap(utils2.NewColorMap(0, float32(nColors), 1))
	}
	go chart.Plot()
	white := color.RGBA{
		R: 255,
		G: 255,
		B: 255,
		A: 0,
	}
	if err := chart.AddTriMesh("TriMesh", trimesh,
		chart2d.NoGlyph, chart2d.Solid, white); err != nil {
		panic("unable to add graph series")
	}
	return
}

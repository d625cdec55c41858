package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/bhelenbr/tfemviz/InputParameters"
	"github.com/bhelenbr/tfemviz/geometry2D"
)

var (
	black       = color.NRGBA{A: 255}
	transparent = color.NRGBA{}
)

// MeshFigure renders tm as filled triangles with black edges. colors maps
// each triangle to a palette index; a nil colors renders the triangles
// unfilled (outline only). Axis limits come from pp, defaulting to the
// domain box [-1.1, 1.1] used for the solver's square meshes.
func MeshFigure(tm *geometry2D.TriMesh, colors []int, nColors int, pp *InputParameters.PlotParameters) (p *plot.Plot, err error) {
	if colors != nil && len(colors) != tm.NTri {
		return nil, fmt.Errorf("have %d triangle colors for %d triangles", len(colors), tm.NTri)
	}
	var fills []color.Color
	if colors != nil {
		if fills, err = CategoricalPalette(pp.Palette, nColors); err != nil {
			return nil, err
		}
	}
	p = plot.New()
	p.Title.Text = pp.Title
	p.X.Min, p.X.Max = -1.1, 1.1
	p.Y.Min, p.Y.Max = -1.1, 1.1
	if pp.XLim != [2]float64{} {
		p.X.Min, p.X.Max = pp.XLim[0], pp.XLim[1]
	}
	if pp.YLim != [2]float64{} {
		p.Y.Min, p.Y.Max = pp.YLim[0], pp.YLim[1]
	}
	for k, tri := range tm.Tris {
		xys := make(plotter.XYs, 3)
		for i, pt := range tri {
			xys[i].X = tm.Points[pt].X[0]
			xys[i].Y = tm.Points[pt].X[1]
		}
		var poly *plotter.Polygon
		if poly, err = plotter.NewPolygon(xys); err != nil {
			return nil, err
		}
		poly.Color = transparent
		if colors != nil {
			poly.Color = fills[colors[k]]
		}
		poly.LineStyle = draw.LineStyle{
			Color: black,
			Width: vg.Points(0.75),
		}
		p.Add(poly)
	}
	return
}

// SaveFigure writes p to filename, the image format following the file
// extension (.png, .svg, .pdf)
func SaveFigure(p *plot.Plot, pp *InputParameters.PlotParameters, filename string) error {
	return p.Save(vg.Length(pp.FigWidth)*vg.Inch, vg.Length(pp.FigHeight)*vg.Inch, filename)
}

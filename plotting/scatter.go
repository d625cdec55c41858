package plotting

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/bhelenbr/tfemviz/InputParameters"
)

// ScalarFieldFigure renders one time slice of a scalar field as a point
// scatter, colored on a diverging map normalized to [-1, 1] to match the
// solver's initial condition amplitude. Values outside the range are
// clamped.
func ScalarFieldFigure(points [][2]float64, values []float64, title string, pp *InputParameters.PlotParameters) (p *plot.Plot, err error) {
	if len(values) != len(points) {
		return nil, fmt.Errorf("have %d values for %d points", len(values), len(points))
	}
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt[0]
		xys[i].Y = pt[1]
	}
	var sc *plotter.Scatter
	if sc, err = plotter.NewScatter(xys); err != nil {
		return nil, err
	}
	cm := DivergingColorMap(-1, 1)
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		v := values[i]
		if v < cm.Min() {
			v = cm.Min()
		}
		if v > cm.Max() {
			v = cm.Max()
		}
		c, cerr := cm.At(v)
		if cerr != nil {
			c = black
		}
		return draw.GlyphStyle{
			Color:  c,
			Radius: vg.Points(2),
			Shape:  draw.CircleGlyph{},
		}
	}
	p = plot.New()
	p.Title.Text = title
	if pp.Title != "" {
		p.Title.Text = pp.Title
	}
	p.Add(sc)
	return
}

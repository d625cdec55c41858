package plotting

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bhelenbr/tfemviz/InputParameters"
)

// Series is one named line of a log-log study plot
type Series struct {
	Name   string
	XYs    plotter.XYs
	Color  color.Color
	Dashes []vg.Length
}

// DashPattern cycles through the line styles used to distinguish algorithms
// within a device color
func DashPattern(i int) []vg.Length {
	patterns := [][]vg.Length{
		nil,
		{vg.Points(5), vg.Points(2)},
		{vg.Points(2), vg.Points(2)},
		{vg.Points(5), vg.Points(2), vg.Points(1), vg.Points(2)},
	}
	return patterns[i%len(patterns)]
}

// LogLogFigure builds a log-log line plot with one legend entry per series
func LogLogFigure(title, xLabel, yLabel string, series []Series, pp *InputParameters.PlotParameters) (p *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = title
	if pp.Title != "" {
		p.Title.Text = pp.Title
	}
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	for _, s := range series {
		var l *plotter.Line
		if l, err = plotter.NewLine(s.XYs); err != nil {
			return nil, err
		}
		l.Color = s.Color
		l.Dashes = s.Dashes
		l.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(s.Name, l)
	}
	return
}

package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Plot styling obtained from the YAML input file
type PlotParameters struct {
	Title     string     `yaml:"Title"`
	FigWidth  float64    `yaml:"FigWidth"`  // inches
	FigHeight float64    `yaml:"FigHeight"` // inches
	XLim      [2]float64 `yaml:"XLim"`      // zero value means automatic
	YLim      [2]float64 `yaml:"YLim"`
	Palette   string     `yaml:"Palette"` // brewer qualitative palette name
	OutputDir string     `yaml:"OutputDir"`
}

// NewPlotParameters returns the default styling used when no -I file is
// supplied
func NewPlotParameters() *PlotParameters {
	return &PlotParameters{
		FigWidth:  6,
		FigHeight: 6,
		Palette:   "Set3",
		OutputDir: ".",
	}
}

func (pp *PlotParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, pp)
}

func (pp *PlotParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", pp.Title)
	fmt.Printf("%8.5f\t\t= FigWidth\n", pp.FigWidth)
	fmt.Printf("%8.5f\t\t= FigHeight\n", pp.FigHeight)
	fmt.Printf("%v\t\t= XLim\n", pp.XLim)
	fmt.Printf("%v\t\t= YLim\n", pp.YLim)
	fmt.Printf("[%s]\t\t\t= Palette\n", pp.Palette)
	fmt.Printf("[%s]\t\t\t= OutputDir\n", pp.OutputDir)
}

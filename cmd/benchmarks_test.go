package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhelenbr/tfemviz/InputParameters"
	"github.com/bhelenbr/tfemviz/readfiles"
)

func TestBenchmarkSeries(t *testing.T) {
	records := []readfiles.BenchmarkRecord{
		{Mesh: 6, Time: 2.0, Device: "GPU", Algorithm: "Colored"},
		{Mesh: 5, Time: 1.0, Device: "GPU", Algorithm: "Colored"},
		{Mesh: 5, Time: 4.0, Device: "CPU", Algorithm: "Naive"},
	}
	pp := InputParameters.NewPlotParameters()
	runtimes, throughputs, err := benchmarkSeries(records, pp)
	require.NoError(t, err)
	require.Len(t, runtimes, 2)
	require.Len(t, throughputs, 2)

	// Devices sort alphabetically, so CPU/Naive is first
	assert.Equal(t, "CPU / Naive", runtimes[0].Name)
	assert.Equal(t, "GPU / Colored", runtimes[1].Name)

	// Rows within a series are sorted by element count
	gpu := runtimes[1].XYs
	require.Len(t, gpu, 2)
	assert.Equal(t, 512.0, gpu[0].X)
	assert.Equal(t, 1.0, gpu[0].Y)
	assert.Equal(t, 2048.0, gpu[1].X)

	tp := throughputs[1].XYs
	assert.InDelta(t, 10000*512.0/1.0, tp[0].Y, 1e-9)
}

func TestGroupKeys(t *testing.T) {
	records := []readfiles.BenchmarkRecord{
		{Device: "GPU", Algorithm: "Colored"},
		{Device: "CPU", Algorithm: "Naive"},
		{Device: "GPU", Algorithm: "Naive"},
	}
	devices, algorithms := groupKeys(records)
	assert.Equal(t, []string{"CPU", "GPU"}, devices)
	assert.Equal(t, []string{"Colored", "Naive"}, algorithms)
}

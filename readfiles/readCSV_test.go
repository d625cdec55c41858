package readfiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempCSVFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.csv")
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}

func TestReadBenchmarkCSV(t *testing.T) {
	content := `Mesh,Time,Device,Algorithm
5,12.5,CPU,Naive
6,40.0,GPU,Colored
`
	records, err := ReadBenchmarkCSV(createTempCSVFile(t, content))
	require.NoError(t, err)
	require.Len(t, records, 2)

	r := records[0]
	assert.Equal(t, 5, r.Mesh)
	assert.Equal(t, 12.5, r.Time)
	assert.Equal(t, "CPU", r.Device)
	assert.Equal(t, "Naive", r.Algorithm)
	// Level 5: (2^4+1)^2 points, 2*4^4 elements
	assert.Equal(t, 289, r.NumPoints())
	assert.Equal(t, 512, r.NumElements())
	assert.InDelta(t, 10000*512.0/12.5, r.Throughput(), 1e-9)

	assert.Equal(t, 2048, records[1].NumElements())
}

func TestReadBenchmarkCSVColumnOrder(t *testing.T) {
	// Columns are located by header name, not position
	content := `Device,Mesh,Algorithm,Time,Extra
CPU,5,Naive,12.5,x
`
	records, err := ReadBenchmarkCSV(createTempCSVFile(t, content))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "CPU", records[0].Device)
	assert.Equal(t, 12.5, records[0].Time)
}

func TestReadBenchmarkCSVErrors(t *testing.T) {
	_, err := ReadBenchmarkCSV(createTempCSVFile(t, "Mesh,Time,Device\n5,1.0,CPU\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")

	_, err = ReadBenchmarkCSV(createTempCSVFile(t, "Mesh,Time,Device,Algorithm\nfive,1.0,CPU,Naive\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad Mesh value")
}

func TestReadAccuracyCSV(t *testing.T) {
	content := `Mesh,RMSE
2,0.25
3,0.0625
`
	records, err := ReadAccuracyCSV(createTempCSVFile(t, content))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2, records[0].Mesh)
	assert.Equal(t, 0.25, records[0].RMSE)
	// Level 2: 3x3 points, dx = 2/(sqrt(9)-1)
	assert.Equal(t, 9, records[0].NumPoints())
	assert.InDelta(t, 1.0, records[0].Dx(), 1e-15)
	assert.InDelta(t, 0.5, records[1].Dx(), 1e-15)
}

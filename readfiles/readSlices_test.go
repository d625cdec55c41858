package readfiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSliceData(t *testing.T) {
	content := `{
  "points": [[-1.0, -1.0], [0.0, 0.0], [1.0, 1.0]],
  "slices": [[0.0, 1.0, 0.0], [0.5, -0.5, 0.25]]
}`
	file := filepath.Join(t.TempDir(), "slices.json")
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	sd, err := ReadSliceData(file)
	require.NoError(t, err)
	require.Len(t, sd.Points, 3)
	require.Len(t, sd.Slices, 2)
	assert.Equal(t, [2]float64{0, 0}, sd.Points[1])
	assert.Equal(t, []float64{0.5, -0.5, 0.25}, sd.Slices[1])
}

func TestReadSliceDataLengthMismatch(t *testing.T) {
	content := `{"points": [[0.0, 0.0]], "slices": [[1.0, 2.0]]}`
	file := filepath.Join(t.TempDir(), "slices.json")
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	sd, err := ReadSliceData(file)
	require.Error(t, err)
	assert.Nil(t, sd)
	assert.Contains(t, err.Error(), "slice 0 has 2 values")
}

func TestReadSliceDataBadJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "slices.json")
	require.NoError(t, os.WriteFile(file, []byte("{not json"), 0644))
	_, err := ReadSliceData(file)
	assert.Error(t, err)
}

package readfiles

import (
	"encoding/json"
	"fmt"
	"os"
)

// SliceData holds the solver's time-slice dump: point locations plus one
// scalar field sample per point per recorded time slice
type SliceData struct {
	Points [][2]float64 `json:"points"`
	Slices [][]float64  `json:"slices"`
}

// ReadSliceData reads a slices.json dump and checks that every slice has
// one value per point
func ReadSliceData(filename string) (sd *SliceData, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read slice file %s: %w", filename, err)
	}
	sd = &SliceData{}
	if err = json.Unmarshal(data, sd); err != nil {
		return nil, fmt.Errorf("unable to parse slice file %s: %w", filename, err)
	}
	for t, slice := range sd.Slices {
		if len(slice) != len(sd.Points) {
			return nil, fmt.Errorf("slice file %s: slice %d has %d values, mesh has %d points",
				filename, t, len(slice), len(sd.Points))
		}
	}
	return
}

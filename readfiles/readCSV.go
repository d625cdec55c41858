package readfiles

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// BenchmarkRecord is one row of the solver's benchmark CSV. Mesh is the
// refinement level of the square test mesh; Time is seconds for 10000 time
// steps on the named Device with the named Algorithm.
type BenchmarkRecord struct {
	Mesh      int
	Time      float64
	Device    string
	Algorithm string
}

// NumPoints returns the point count of the level-Mesh square mesh,
// (2^(Mesh-1)+1)^2
func (r BenchmarkRecord) NumPoints() int {
	side := 1<<(r.Mesh-1) + 1
	return side * side
}

// NumElements returns the triangle count of the level-Mesh square mesh,
// 2*4^(Mesh-1)
func (r BenchmarkRecord) NumElements() int {
	return 2 << (2 * (r.Mesh - 1))
}

// Throughput is elements per second over the 10000 benchmark time steps
func (r BenchmarkRecord) Throughput() float64 {
	return 10000 * float64(r.NumElements()) / r.Time
}

// AccuracyRecord is one row of the accuracy study CSV
type AccuracyRecord struct {
	Mesh int
	RMSE float64
}

// NumPoints returns the point count of the level-Mesh square mesh
func (r AccuracyRecord) NumPoints() int {
	side := 1<<(r.Mesh-1) + 1
	return side * side
}

// Dx is the nominal mesh spacing, 2/(sqrt(numPoints)-1) for the square
// domain of side 2
func (r AccuracyRecord) Dx() float64 {
	side := 1<<(r.Mesh-1) + 1
	return 2.0 / float64(side-1)
}

// ReadBenchmarkCSV reads a benchmark CSV with (at least) the columns
// Mesh, Time, Device, Algorithm, located by the header row
func ReadBenchmarkCSV(csvFile string) (records []BenchmarkRecord, err error) {
	rows, cols, err := readCSVFile(csvFile, []string{"Mesh", "Time", "Device", "Algorithm"})
	if err != nil {
		return nil, err
	}
	for i, rec := range rows {
		var r BenchmarkRecord
		if r.Mesh, err = strconv.Atoi(rec[cols[0]]); err != nil {
			return nil, fmt.Errorf("%s row %d: bad Mesh value %q", csvFile, i+2, rec[cols[0]])
		}
		if r.Time, err = strconv.ParseFloat(rec[cols[1]], 64); err != nil {
			return nil, fmt.Errorf("%s row %d: bad Time value %q", csvFile, i+2, rec[cols[1]])
		}
		r.Device = rec[cols[2]]
		r.Algorithm = rec[cols[3]]
		records = append(records, r)
	}
	return
}

// ReadAccuracyCSV reads an accuracy study CSV with (at least) the columns
// Mesh, RMSE, located by the header row
func ReadAccuracyCSV(csvFile string) (records []AccuracyRecord, err error) {
	rows, cols, err := readCSVFile(csvFile, []string{"Mesh", "RMSE"})
	if err != nil {
		return nil, err
	}
	for i, rec := range rows {
		var r AccuracyRecord
		if r.Mesh, err = strconv.Atoi(rec[cols[0]]); err != nil {
			return nil, fmt.Errorf("%s row %d: bad Mesh value %q", csvFile, i+2, rec[cols[0]])
		}
		if r.RMSE, err = strconv.ParseFloat(rec[cols[1]], 64); err != nil {
			return nil, fmt.Errorf("%s row %d: bad RMSE value %q", csvFile, i+2, rec[cols[1]])
		}
		records = append(records, r)
	}
	return
}

// readCSVFile loads all data rows and resolves the named columns against
// the header row
func readCSVFile(csvFile string, names []string) (rows [][]string, cols []int, err error) {
	var f *os.File
	if f, err = os.Open(csvFile); err != nil {
		return nil, nil, fmt.Errorf("unable to open csv file %s: %w", csvFile, err)
	}
	defer f.Close()
	r := csv.NewReader(bufio.NewReader(f))
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to parse csv file %s: %w", csvFile, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("csv file %s is empty", csvFile)
	}
	header := records[0]
	cols = make([]int, len(names))
	for i, name := range names {
		cols[i] = -1
		for j, h := range header {
			if h == name {
				cols[i] = j
				break
			}
		}
		if cols[i] == -1 {
			return nil, nil, fmt.Errorf("csv file %s: missing column %q in header %v", csvFile, name, header)
		}
	}
	return records[1:], cols, nil
}

package agglo

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadPoints reads points from a comma-delimited numeric file, one point per
// row. All rows must have the same number of columns.
func LoadPoints(path string) ([][]float64, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	points := make([][]float64, 0, len(records))
	for row, record := range records {
		point := make([]float64, len(record))
		for col, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("agglo: %s row %d col %d: %w", path, row+1, col+1, err)
			}
			point[col] = v
		}
		points = append(points, point)
	}
	return points, nil
}

// LoadHistory reads a reference merge history from a comma-delimited file,
// one "p,q" integer pair per row.
func LoadHistory(path string) ([][2]int, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	history := make([][2]int, 0, len(records))
	for row, record := range records {
		if len(record) != 2 {
			return nil, fmt.Errorf("agglo: %s row %d has %d columns, expected 2",
				path, row+1, len(record))
		}
		var pair [2]int
		for col, field := range record {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("agglo: %s row %d col %d: %w", path, row+1, col+1, err)
			}
			pair[col] = v
		}
		history = append(history, pair)
	}
	return history, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

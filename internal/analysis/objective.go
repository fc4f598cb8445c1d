package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/signalnine/neatreport/internal/stats"
)

// DefaultObjectiveColumn is the max-score column of the runner's per-generation
// data tables. The leading space is part of the header.
const DefaultObjectiveColumn = " Obj 0: Objective Max Score"

// ObjectiveSummary is the best objective score reached in one data table.
type ObjectiveSummary struct {
	Run  int            `json:"run"`
	Path string         `json:"path"`
	Max  stats.Optional `json:"max"`
}

// ScanObjective returns the largest value of column across the table. Empty
// cells are skipped; a missing column or non-numeric cell is an error.
func ScanObjective(path, column string) (stats.Optional, error) {
	f, err := os.Open(path)
	if err != nil {
		return stats.Optional{}, fmt.Errorf("opening data table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err == io.EOF {
		return stats.Optional{}, nil
	}
	if err != nil {
		return stats.Optional{}, fmt.Errorf("reading header of %s: %w", path, err)
	}
	col := -1
	for i, h := range header {
		if h == column || strings.TrimSpace(h) == strings.TrimSpace(column) {
			col = i
			break
		}
	}
	if col < 0 {
		return stats.Optional{}, fmt.Errorf("%s: column %q not found", path, column)
	}

	var best stats.Optional
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats.Optional{}, fmt.Errorf("reading %s: %w", path, err)
		}
		if col >= len(row) || strings.TrimSpace(row[col]) == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
		if err != nil {
			return stats.Optional{}, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		if !best.Valid || v > best.Value {
			best = stats.Some(v)
		}
	}
	return best, nil
}

// ScanObjectives runs ScanObjective over each table in order.
func ScanObjectives(paths []string, column string) ([]ObjectiveSummary, error) {
	out := make([]ObjectiveSummary, 0, len(paths))
	for i, path := range paths {
		best, err := ScanObjective(path, column)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i+1, err)
		}
		out = append(out, ObjectiveSummary{Run: i + 1, Path: path, Max: best})
	}
	return out, nil
}

package result

import (
	"encoding/csv"
	"errors"
	"fmt"
	"iter"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/signalnine/neatreport/internal/stats"
)

// LoadOptions control how raw cells are decoded.
type LoadOptions struct {
	// StartTimeLayout is the time.Parse layout of the Start Time column.
	StartTimeLayout string
}

// Table is one results.csv: a header resolved once and its raw rows.
type Table struct {
	Path   string
	Header []string

	index  map[string]int
	rows   [][]string
	layout string
}

// Load reads the table at path and checks its header for required columns.
func Load(path string, opts LoadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// the runner writes comments between quotes without escaping them
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &MalformedRowError{Path: path, Line: pe.Line, Err: pe.Err}
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, &MalformedRowError{Path: path, Line: 1, Err: errors.New("table has no header row")}
	}

	t := &Table{
		Path:   path,
		Header: records[0],
		index:  make(map[string]int, len(records[0])),
		rows:   records[1:],
		layout: opts.StartTimeLayout,
	}
	if t.layout == "" {
		t.layout = DefaultStartTimeLayout
	}
	for i, name := range t.Header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := t.index[name]; !dup {
			t.index[name] = i
		}
	}
	for _, col := range RequiredColumns {
		if !t.HasField(col) {
			return nil, &MalformedRowError{Path: path, Field: col, Err: errors.New("required column missing from header")}
		}
	}
	return t, nil
}

// RowCount is the number of data rows, excluding the header.
func (t *Table) RowCount() int { return len(t.rows) }

// HasField reports whether the header contains the named column.
func (t *Table) HasField(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Records decodes rows lazily. Iteration stops after the first error.
func (t *Table) Records() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for i, row := range t.rows {
			rec, err := t.decode(row, i+2)
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

func (t *Table) cell(row []string, name string) (string, bool) {
	i, ok := t.index[name]
	if !ok || i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

func (t *Table) malformed(line int, field string, err error) error {
	return &MalformedRowError{Path: t.Path, Line: line, Field: field, Err: err}
}

func (t *Table) required(row []string, line int, name string) (float64, error) {
	raw, ok := t.cell(row, name)
	if !ok {
		return 0, t.malformed(line, name, errors.New("value missing"))
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, t.malformed(line, name, err)
	}
	return v, nil
}

func (t *Table) optional(row []string, line int, name string) (stats.Optional, error) {
	raw, ok := t.cell(row, name)
	if !ok || raw == "" {
		return stats.Optional{}, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return stats.Optional{}, t.malformed(line, name, err)
	}
	return stats.Some(v), nil
}

func (t *Table) decode(row []string, line int) (Record, error) {
	rec := Record{Line: line}
	var err error

	raw, ok := t.cell(row, ColTime)
	if !ok {
		return rec, t.malformed(line, ColTime, errors.New("value missing"))
	}
	if rec.TimeSpent, err = ParseDuration(raw); err != nil {
		return rec, t.malformed(line, ColTime, err)
	}

	solved, ok := t.cell(row, ColSolved)
	if !ok {
		return rec, t.malformed(line, ColSolved, errors.New("value missing"))
	}
	rec.Solved = solved == "True"

	if rec.Generations, err = t.required(row, line, ColGenerations); err != nil {
		return rec, err
	}
	if rec.ChampionFitness, err = t.required(row, line, ColChampionFitness); err != nil {
		return rec, err
	}
	if rec.ChampionComplexity, err = t.required(row, line, ColChampionComplexity); err != nil {
		return rec, err
	}
	if rec.ChampionHiddenNodes, err = t.required(row, line, ColChampionHiddenNodes); err != nil {
		return rec, err
	}

	if rec.BirthGeneration, err = t.optional(row, line, ColChampionBirthGeneration); err != nil {
		return rec, err
	}
	if rec.TestedFitness, err = t.optional(row, line, ColTestedFitness); err != nil {
		return rec, err
	}
	if rec.TestedGeneralizationFitness, err = t.optional(row, line, ColTestedGeneralizationFitness); err != nil {
		return rec, err
	}

	rec.Comment, rec.HasComment = t.cell(row, ColComment)
	if raw, ok := t.cell(row, ColStartTime); ok && raw != "" {
		ts, err := time.Parse(t.layout, raw)
		if err != nil {
			return rec, t.malformed(line, ColStartTime, err)
		}
		rec.StartTime, rec.HasStartTime = ts, true
	}
	return rec, nil
}

package analysis

import (
	"fmt"
	"log/slog"

	"github.com/signalnine/neatreport/internal/result"
)

// SummarizeTable aggregates one loaded table in a single pass.
func SummarizeTable(tbl *result.Table, run int) (RunSummary, error) {
	var acc Accumulator
	for rec, err := range tbl.Records() {
		if err != nil {
			return RunSummary{}, err
		}
		acc.Add(rec)
	}
	return acc.Summary(run, tbl.Path), nil
}

// AnalyzeTables summarizes each table in order, numbering runs from 1.
// The first table that fails to load or decode aborts the whole analysis.
func AnalyzeTables(paths []string, opts result.LoadOptions) ([]RunSummary, error) {
	summaries := make([]RunSummary, 0, len(paths))
	for i, path := range paths {
		tbl, err := result.Load(path, opts)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i+1, err)
		}
		s, err := SummarizeTable(tbl, i+1)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i+1, err)
		}
		slog.Debug("summarized table", "run", s.Run, "path", path,
			"experiments", s.Experiments, "solves", s.Solves)
		summaries = append(summaries, s)
	}
	return summaries, nil
}

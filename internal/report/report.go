package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/signalnine/neatreport/internal/analysis"
	"github.com/signalnine/neatreport/internal/result"
	"github.com/signalnine/neatreport/internal/stats"
)

// Precision is the number of decimal places used when printing aggregates.
type Precision struct {
	Counts  int `yaml:"counts"`
	Fitness int `yaml:"fitness"`
}

// DefaultPrecision rounds counts to 2 places and fitness to 4.
var DefaultPrecision = Precision{Counts: 2, Fitness: 4}

// Formats accepted by Write.
var Formats = []string{"csv", "table", "markdown", "json"}

// Write renders summaries in the requested format.
func Write(summaries []analysis.RunSummary, format string, p Precision, w io.Writer) error {
	switch format {
	case "csv":
		return WriteCSV(w, summaries, p)
	case "markdown":
		return writeMarkdown(summaries, p, w)
	case "json":
		return writeJSON(summaries, w)
	case "table", "":
		return writeTable(summaries, p, w)
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// SaveCSV renders the analysis in memory and writes it to path in one step,
// so a failure never leaves a partial file behind.
func SaveCSV(path string, summaries []analysis.RunSummary, p Precision) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, summaries, p); err != nil {
		return err
	}
	return result.WriteFileAtomic(path, buf.Bytes())
}

func writeTable(summaries []analysis.RunSummary, p Precision, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tCOMMENT\tEXPERIMENTS\tSOLVES\tSOLVE %\tAVG TIME\tMEAN FITNESS\tGENS SOLVED\tHIDDEN SOLVED")
	fmt.Fprintln(tw, strings.Repeat("-", 100))
	for _, s := range summaries {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
			s.Run, comment(s), s.Experiments, s.Solves, percentage(s.SolvePercentage, p.Counts),
			averageTime(s), number(s.MeanChampionFitness, p.Fitness),
			spread(s.GenerationsSolved, p.Counts), spread(s.HiddenNodesSolved, p.Counts))
	}
	return tw.Flush()
}

func writeMarkdown(summaries []analysis.RunSummary, p Precision, w io.Writer) error {
	fmt.Fprintln(w, "| Run | Comment | Experiments | Solves | Solve % | Avg Time | Mean Fitness | Gens Solved | Hidden Solved |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|---|---|---|")
	for _, s := range summaries {
		fmt.Fprintf(w, "| %d | %s | %d | %d | %s | %s | %s | %s | %s |\n",
			s.Run, strings.ReplaceAll(comment(s), "|", `\|`), s.Experiments, s.Solves,
			percentage(s.SolvePercentage, p.Counts), averageTime(s), number(s.MeanChampionFitness, p.Fitness),
			spread(s.GenerationsSolved, p.Counts), spread(s.HiddenNodesSolved, p.Counts))
	}
	return nil
}

type jsonSummary struct {
	analysis.RunSummary
	Comment     *string `json:"comment"`
	TotalTime   string  `json:"total_time"`
	AverageTime *string `json:"average_time"`
}

func writeJSON(summaries []analysis.RunSummary, w io.Writer) error {
	out := make([]jsonSummary, 0, len(summaries))
	for _, s := range summaries {
		js := jsonSummary{RunSummary: s, TotalTime: result.FormatDuration(s.TotalTime)}
		if s.HasComment {
			js.Comment = &s.Comment
		}
		if s.Experiments > 0 {
			avg := result.FormatDuration(s.AverageTime)
			js.AverageTime = &avg
		}
		out = append(out, js)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func spread(s stats.Summary, places int) string {
	if !s.Mean.Valid {
		return "-"
	}
	return fmt.Sprintf("%s ± %s", Round(s.Mean.Value, places), Round(s.StdDev.Value, places))
}

func number(o stats.Optional, places int) string {
	if !o.Valid {
		return "-"
	}
	return Round(o.Value, places)
}

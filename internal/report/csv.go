package report

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signalnine/neatreport/internal/analysis"
	"github.com/signalnine/neatreport/internal/result"
	"github.com/signalnine/neatreport/internal/stats"
)

// Placeholders written for absent values, kept for compatibility with
// spreadsheets built on earlier analysis files.
const (
	MissingNumber = "-1"
	MissingText   = "-"
)

// Header is the fixed column order of analysis.csv.
var Header = []string{
	"Run",
	"Path",
	"Comment",
	"Start Time",
	"Experiments",
	"Total Time",
	"Average Time",
	"Solves",
	"Solve Percentage",
	"Mean Generations",
	"Max Generations",
	"Mean Champion Fitness",
	"Mean Champion Complexity",
	"Mean Champion Hidden Nodes",
	"Mean Tested Fitness",
	"Mean Tested Generalization Fitness",
	"Generations Solved Mean",
	"Generations Solved StdDev",
	"Generations Solved Min",
	"Generations Solved Max",
	"Hidden Nodes Solved Mean",
	"Hidden Nodes Solved StdDev",
	"Hidden Nodes Solved Min",
	"Hidden Nodes Solved Max",
	"Complexity Solved Mean",
	"Complexity Solved StdDev",
	"Complexity Solved Min",
	"Complexity Solved Max",
	"Tested Fitness Solved Mean",
	"Tested Fitness Solved StdDev",
	"Tested Generalization Fitness Solved Mean",
	"Tested Generalization Fitness Solved StdDev",
	"Birth Generation Solved Mean",
}

const startTimeFormat = "2006-01-02 15:04:05"

// WriteCSV writes the header and one row per summary.
func WriteCSV(w io.Writer, summaries []analysis.RunSummary, p Precision) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, s := range summaries {
		if err := cw.Write(Row(s, p)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Row renders one summary in Header order.
func Row(s analysis.RunSummary, p Precision) []string {
	count := func(o stats.Optional) string { return cell(o, p.Counts) }
	fit := func(o stats.Optional) string { return cell(o, p.Fitness) }

	startTime := MissingText
	if s.HasStartTime {
		startTime = s.StartTime.Format(startTimeFormat)
	}
	avg := MissingNumber
	if s.Experiments > 0 {
		avg = result.FormatDuration(s.AverageTime)
	}
	pct := MissingNumber
	if s.SolvePercentage.Valid {
		pct = percentage(s.SolvePercentage, p.Counts)
	}

	return []string{
		strconv.Itoa(s.Run),
		s.Path,
		comment(s),
		startTime,
		strconv.Itoa(s.Experiments),
		result.FormatDuration(s.TotalTime),
		avg,
		strconv.Itoa(s.Solves),
		pct,
		count(s.MeanGenerations),
		count(s.MaxGenerations),
		fit(s.MeanChampionFitness),
		count(s.MeanChampionComplexity),
		count(s.MeanChampionHiddenNodes),
		fit(s.MeanTestedFitness),
		fit(s.MeanTestedGeneralizationFitness),
		count(s.GenerationsSolved.Mean),
		count(s.GenerationsSolved.StdDev),
		count(s.GenerationsSolved.Min),
		count(s.GenerationsSolved.Max),
		count(s.HiddenNodesSolved.Mean),
		count(s.HiddenNodesSolved.StdDev),
		count(s.HiddenNodesSolved.Min),
		count(s.HiddenNodesSolved.Max),
		count(s.ComplexitySolved.Mean),
		count(s.ComplexitySolved.StdDev),
		count(s.ComplexitySolved.Min),
		count(s.ComplexitySolved.Max),
		fit(s.TestedFitnessSolved.Mean),
		fit(s.TestedFitnessSolved.StdDev),
		fit(s.TestedGeneralizationFitnessSolved.Mean),
		fit(s.TestedGeneralizationFitnessSolved.StdDev),
		count(s.BirthGenerationSolved),
	}
}

// WriteObjectiveCSV writes the objective scan results.
func WriteObjectiveCSV(w io.Writer, summaries []analysis.ObjectiveSummary, p Precision) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Run", "Maximum Achieved Objective Fitness"}); err != nil {
		return err
	}
	for _, s := range summaries {
		if err := cw.Write([]string{strconv.Itoa(s.Run), cell(s.Max, p.Fitness)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Round rounds v to places decimals and prints it with at least one
// fractional digit: 20 -> "20.0", 8.16496 -> "8.16".
func Round(v float64, places int) string {
	scale := math.Pow(10, float64(places))
	r := math.Round(v*scale) / scale
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	out := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.Contains(out, ".") && !math.IsInf(r, 0) && !math.IsNaN(r) {
		out += ".0"
	}
	return out
}

func cell(o stats.Optional, places int) string {
	if !o.Valid {
		return MissingNumber
	}
	return Round(o.Value, places)
}

func percentage(o stats.Optional, places int) string {
	if !o.Valid {
		return "-"
	}
	return Round(o.Value, places) + "%"
}

func comment(s analysis.RunSummary) string {
	if !s.HasComment {
		return MissingText
	}
	return s.Comment
}

func averageTime(s analysis.RunSummary) string {
	if s.Experiments == 0 {
		return "-"
	}
	return result.FormatDuration(s.AverageTime)
}

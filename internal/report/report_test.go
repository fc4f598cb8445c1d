package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/signalnine/neatreport/internal/analysis"
	"github.com/signalnine/neatreport/internal/report"
	"github.com/signalnine/neatreport/internal/stats"
)

func sampleSummaries() []analysis.RunSummary {
	return []analysis.RunSummary{
		{
			Run: 1, Path: "a/results.csv", Comment: "orch-a", HasComment: true,
			Experiments: 3, Solves: 3, SolvePercentage: stats.Some(100),
			TotalTime: time.Minute, AverageTime: 20 * time.Second,
			MeanChampionFitness: stats.Some(0.95),
			GenerationsSolved:   stats.Describe([]float64{10, 20, 30}),
		},
		{
			Run: 2, Path: "b/results.csv",
			Experiments: 2, SolvePercentage: stats.Some(0),
			MeanChampionFitness: stats.Some(0.5),
		},
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(sampleSummaries(), "table", report.DefaultPrecision, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "orch-a") {
		t.Error("expected orch-a in output")
	}
	if !strings.Contains(output, "20.0 ± 8.16") {
		t.Errorf("expected solved generation spread in output:\n%s", output)
	}
	if !strings.Contains(output, "0.0%") {
		t.Error("expected 0.0% for the unsolved run")
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(sampleSummaries(), "markdown", report.DefaultPrecision, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[2], "| 1 | orch-a |") {
		t.Errorf("unexpected first row %q", lines[2])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(sampleSummaries(), "json", report.DefaultPrecision, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(decoded))
	}
	if decoded[0]["comment"] != "orch-a" {
		t.Errorf("comment: got %v", decoded[0]["comment"])
	}
	if decoded[0]["average_time"] != "00h:00m:20s:000ms" {
		t.Errorf("average_time: got %v", decoded[0]["average_time"])
	}
	if decoded[1]["comment"] != nil {
		t.Errorf("expected null comment, got %v", decoded[1]["comment"])
	}
	gens := decoded[1]["generations_solved"].(map[string]any)
	if gens["mean"] != nil {
		t.Errorf("expected null solved mean, got %v", gens["mean"])
	}
	if _, ok := decoded[1]["start_time"]; ok {
		t.Error("absent start time should be omitted")
	}
}

func TestWriteCSVFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(sampleSummaries(), "csv", report.DefaultPrecision, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Run,Path,Comment,") {
		t.Errorf("unexpected header: %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := report.Write(nil, "xml", report.DefaultPrecision, &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown format")
	}
}

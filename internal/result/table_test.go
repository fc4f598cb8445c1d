package result_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/signalnine/neatreport/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullHeader = "Experiment,Comment,Start Time,Time,Solved,Generations,Champion Fitness,Champion Complexity,Champion Hidden Nodes,Champion Birth Generation,Tested Fitness,Tested Generalization Fitness\n"

func writeTable(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func collect(t *testing.T, tbl *result.Table) ([]result.Record, error) {
	t.Helper()
	var recs []result.Record
	for rec, err := range tbl.Records() {
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func TestLoadFullTable(t *testing.T) {
	p := writeTable(t, fullHeader+
		`1,"baseline",14032017-093000,00h:01m:30s:250ms,True,42,0.9876,17,3,40,0.9512,0.8000`+"\n"+
		`2,"baseline",14032017-093000,00h:00m:10s:000ms,False,100,0.5,12,1,99,,`+"\n")

	tbl, err := result.Load(p, result.LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.RowCount())
	assert.True(t, tbl.HasField(result.ColTestedFitness))
	assert.True(t, tbl.HasField(result.ColComment))
	assert.False(t, tbl.HasField("Nope"))

	recs, err := collect(t, tbl)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	first := recs[0]
	assert.Equal(t, 2, first.Line)
	assert.True(t, first.Solved)
	assert.Equal(t, "baseline", first.Comment)
	assert.True(t, first.HasComment)
	assert.True(t, first.HasStartTime)
	assert.Equal(t, time.Date(2017, time.March, 14, 9, 30, 0, 0, time.UTC), first.StartTime)
	assert.Equal(t, 90*time.Second+250*time.Millisecond, first.TimeSpent)
	assert.Equal(t, 42.0, first.Generations)
	assert.Equal(t, 0.9876, first.ChampionFitness)
	assert.Equal(t, 17.0, first.ChampionComplexity)
	assert.Equal(t, 3.0, first.ChampionHiddenNodes)
	assert.Equal(t, 40.0, first.BirthGeneration.Value)
	assert.Equal(t, 0.9512, first.TestedFitness.Value)
	assert.True(t, first.TestedGeneralizationFitness.Valid)

	second := recs[1]
	assert.False(t, second.Solved)
	assert.False(t, second.TestedFitness.Valid)
	assert.False(t, second.TestedGeneralizationFitness.Valid)
}

func TestLoadOldFormat(t *testing.T) {
	p := writeTable(t, "Time,Solved,Generations,Champion Fitness,Champion Complexity,Champion Hidden Nodes\n"+
		"00h:00m:01s:000ms,true,5,1,2,3\n")
	tbl, err := result.Load(p, result.LoadOptions{})
	require.NoError(t, err)
	assert.False(t, tbl.HasField(result.ColComment))
	assert.False(t, tbl.HasField(result.ColTestedFitness))

	recs, err := collect(t, tbl)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.False(t, recs[0].Solved, "only the exact string True marks a solve")
	assert.False(t, recs[0].HasComment)
	assert.False(t, recs[0].HasStartTime)
	assert.False(t, recs[0].TestedFitness.Valid)
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	p := writeTable(t, "Time,Solved,Generations,Champion Fitness,Champion Complexity\n00h:00m:01s:000ms,True,5,1,2\n")
	_, err := result.Load(p, result.LoadOptions{})
	require.Error(t, err)

	var mre *result.MalformedRowError
	require.True(t, errors.As(err, &mre))
	assert.Equal(t, result.ColChampionHiddenNodes, mre.Field)
}

func TestRecordsMalformedValues(t *testing.T) {
	header := "Time,Solved,Generations,Champion Fitness,Champion Complexity,Champion Hidden Nodes,Start Time\n"
	tests := []struct {
		name  string
		row   string
		field string
	}{
		{"bad duration", "1:00,True,5,1,2,3,\n", result.ColTime},
		{"bad generations", "00h:00m:01s:000ms,True,five,1,2,3,\n", result.ColGenerations},
		{"empty fitness", "00h:00m:01s:000ms,True,5,,2,3,\n", result.ColChampionFitness},
		{"bad start time", "00h:00m:01s:000ms,True,5,1,2,3,2017-03-14\n", result.ColStartTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := result.Load(writeTable(t, header+tt.row), result.LoadOptions{})
			require.NoError(t, err)
			_, err = collect(t, tbl)
			var mre *result.MalformedRowError
			require.True(t, errors.As(err, &mre), "got %v", err)
			assert.Equal(t, tt.field, mre.Field)
			assert.Equal(t, 2, mre.Line)
		})
	}
}

func TestLoadUnescapedCommentQuotes(t *testing.T) {
	p := writeTable(t, fullHeader+
		`1,"run "A" baseline",14032017-093000,00h:01m:30s:250ms,True,42,0.9876,17,3,40,0.9512,0.8000`+"\n")
	tbl, err := result.Load(p, result.LoadOptions{})
	require.NoError(t, err)
	recs, err := collect(t, tbl)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].HasComment)
	assert.Equal(t, `run "A" baseline`, recs[0].Comment)
	assert.Equal(t, 90250*time.Millisecond, recs[0].TimeSpent)
}

func TestLoadRaggedRow(t *testing.T) {
	p := writeTable(t, "Time,Solved,Generations,Champion Fitness,Champion Complexity,Champion Hidden Nodes\n00h:00m:01s:000ms,True,5\n")
	_, err := result.Load(p, result.LoadOptions{})
	var mre *result.MalformedRowError
	require.True(t, errors.As(err, &mre), "got %v", err)
	assert.Equal(t, 2, mre.Line)
}

func TestLoadEmptyFile(t *testing.T) {
	_, err := result.Load(writeTable(t, ""), result.LoadOptions{})
	assert.Error(t, err)
}

func TestLoadStartTimeLayout(t *testing.T) {
	p := writeTable(t, "Start Time,Time,Solved,Generations,Champion Fitness,Champion Complexity,Champion Hidden Nodes\n"+
		"03142017-093000,00h:00m:01s:000ms,True,5,1,2,3\n")
	tbl, err := result.Load(p, result.LoadOptions{StartTimeLayout: "01022006-150405"})
	require.NoError(t, err)
	recs, err := collect(t, tbl)
	require.NoError(t, err)
	assert.Equal(t, time.March, recs[0].StartTime.Month())
	assert.Equal(t, 14, recs[0].StartTime.Day())
}

func TestLoadHeaderOnly(t *testing.T) {
	tbl, err := result.Load(writeTable(t, fullHeader), result.LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.RowCount())
	recs, err := collect(t, tbl)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

package result

import (
	"errors"
	"fmt"
	"time"

	"github.com/signalnine/neatreport/internal/stats"
)

// Column names of a results table as written by the experiment runner.
const (
	ColComment                     = "Comment"
	ColStartTime                   = "Start Time"
	ColTime                        = "Time"
	ColSolved                      = "Solved"
	ColGenerations                 = "Generations"
	ColChampionFitness             = "Champion Fitness"
	ColChampionComplexity          = "Champion Complexity"
	ColChampionHiddenNodes         = "Champion Hidden Nodes"
	ColChampionBirthGeneration     = "Champion Birth Generation"
	ColTestedFitness               = "Tested Fitness"
	ColTestedGeneralizationFitness = "Tested Generalization Fitness"
)

// RequiredColumns must be present in every results table header.
var RequiredColumns = []string{
	ColTime,
	ColChampionFitness,
	ColChampionComplexity,
	ColChampionHiddenNodes,
	ColGenerations,
	ColSolved,
}

// DefaultStartTimeLayout matches the ddMMyyyy-HHmmss stamp of the runner.
const DefaultStartTimeLayout = "02012006-150405"

// Record is one completed trial.
type Record struct {
	Line int

	Comment      string
	HasComment   bool
	StartTime    time.Time
	HasStartTime bool

	TimeSpent           time.Duration
	Solved              bool
	Generations         float64
	ChampionFitness     float64
	ChampionComplexity  float64
	ChampionHiddenNodes float64

	BirthGeneration             stats.Optional
	TestedFitness               stats.Optional
	TestedGeneralizationFitness stats.Optional
}

// ErrNoResults is returned when discovery finds no tables.
var ErrNoResults = errors.New("no results found")

// MalformedRowError reports a table that cannot be aggregated: a missing
// required column or an unparsable value.
type MalformedRowError struct {
	Path  string
	Line  int
	Field string
	Err   error
}

func (e *MalformedRowError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	if e.Line == 0 {
		return fmt.Sprintf("%s: column %q: %v", e.Path, e.Field, e.Err)
	}
	return fmt.Sprintf("%s:%d: column %q: %v", e.Path, e.Line, e.Field, e.Err)
}

func (e *MalformedRowError) Unwrap() error { return e.Err }

package analysis

import (
	"time"

	"github.com/signalnine/neatreport/internal/result"
	"github.com/signalnine/neatreport/internal/stats"
)

// Accumulator collects the per-field sequences of a single table. It is
// discarded once Summary has been taken.
type Accumulator struct {
	rows int

	comment      string
	hasComment   bool
	startTime    time.Time
	hasStartTime bool

	total       time.Duration
	generations []float64
	maxGen      stats.Optional
	fitness     []float64
	complexity  []float64
	hidden      []float64
	tested      []float64
	testedGen   []float64

	solvedGenerations []float64
	solvedHidden      []float64
	solvedComplexity  []float64
	solvedTested      []float64
	solvedTestedGen   []float64
	solvedBirthGen    []float64
}

// Add folds one record into the accumulator.
func (a *Accumulator) Add(rec result.Record) {
	a.rows++
	if a.rows == 1 {
		a.comment, a.hasComment = rec.Comment, rec.HasComment
		a.startTime, a.hasStartTime = rec.StartTime, rec.HasStartTime
	}

	a.total += rec.TimeSpent
	a.generations = append(a.generations, rec.Generations)
	if !a.maxGen.Valid || rec.Generations > a.maxGen.Value {
		a.maxGen = stats.Some(rec.Generations)
	}
	a.fitness = append(a.fitness, rec.ChampionFitness)
	a.complexity = append(a.complexity, rec.ChampionComplexity)
	a.hidden = append(a.hidden, rec.ChampionHiddenNodes)
	a.tested = appendValid(a.tested, rec.TestedFitness)
	a.testedGen = appendValid(a.testedGen, rec.TestedGeneralizationFitness)

	if !rec.Solved {
		return
	}
	a.solvedGenerations = append(a.solvedGenerations, rec.Generations)
	a.solvedHidden = append(a.solvedHidden, rec.ChampionHiddenNodes)
	a.solvedComplexity = append(a.solvedComplexity, rec.ChampionComplexity)
	a.solvedTested = appendValid(a.solvedTested, rec.TestedFitness)
	a.solvedTestedGen = appendValid(a.solvedTestedGen, rec.TestedGeneralizationFitness)
	a.solvedBirthGen = appendValid(a.solvedBirthGen, rec.BirthGeneration)
}

func appendValid(values []float64, o stats.Optional) []float64 {
	if o.Valid {
		return append(values, o.Value)
	}
	return values
}

// Summary computes the run's aggregates.
func (a *Accumulator) Summary(run int, path string) RunSummary {
	s := RunSummary{
		Run:          run,
		Path:         path,
		Comment:      a.comment,
		HasComment:   a.hasComment,
		StartTime:    a.startTime,
		HasStartTime: a.hasStartTime,
		Experiments:  a.rows,
		TotalTime:    a.total,
		Solves:       len(a.solvedGenerations),

		MeanGenerations:                 stats.Mean(a.generations),
		MaxGenerations:                  a.maxGen,
		MeanChampionFitness:             stats.Mean(a.fitness),
		MeanChampionComplexity:          stats.Mean(a.complexity),
		MeanChampionHiddenNodes:         stats.Mean(a.hidden),
		MeanTestedFitness:               stats.Mean(a.tested),
		MeanTestedGeneralizationFitness: stats.Mean(a.testedGen),

		GenerationsSolved: stats.Describe(a.solvedGenerations),
		HiddenNodesSolved: stats.Describe(a.solvedHidden),
		ComplexitySolved:  stats.Describe(a.solvedComplexity),
		TestedFitnessSolved: stats.Summary{
			Mean:   stats.Mean(a.solvedTested),
			StdDev: stats.PopulationStdDev(a.solvedTested),
		},
		TestedGeneralizationFitnessSolved: stats.Summary{
			Mean:   stats.Mean(a.solvedTestedGen),
			StdDev: stats.PopulationStdDev(a.solvedTestedGen),
		},
		BirthGenerationSolved: stats.Mean(a.solvedBirthGen),
	}
	if a.rows > 0 {
		s.AverageTime = a.total / time.Duration(a.rows)
		s.SolvePercentage = stats.Some(float64(s.Solves) / float64(a.rows) * 100)
	}
	return s
}

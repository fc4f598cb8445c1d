package analysis

import (
	"time"

	"github.com/signalnine/neatreport/internal/stats"
)

// RunSummary aggregates every record of one results table.
type RunSummary struct {
	Run  int    `json:"run"`
	Path string `json:"path"`

	Comment      string    `json:"comment,omitempty"`
	HasComment   bool      `json:"-"`
	StartTime    time.Time `json:"start_time,omitzero"`
	HasStartTime bool      `json:"-"`

	Experiments     int            `json:"experiments"`
	TotalTime       time.Duration  `json:"-"`
	AverageTime     time.Duration  `json:"-"`
	Solves          int            `json:"solves"`
	SolvePercentage stats.Optional `json:"solve_percentage"`

	MeanGenerations                 stats.Optional `json:"mean_generations"`
	MaxGenerations                  stats.Optional `json:"max_generations"`
	MeanChampionFitness             stats.Optional `json:"mean_champion_fitness"`
	MeanChampionComplexity          stats.Optional `json:"mean_champion_complexity"`
	MeanChampionHiddenNodes         stats.Optional `json:"mean_champion_hidden_nodes"`
	MeanTestedFitness               stats.Optional `json:"mean_tested_fitness"`
	MeanTestedGeneralizationFitness stats.Optional `json:"mean_tested_generalization_fitness"`

	// Solved-subset aggregates; absent when no record was solved.
	GenerationsSolved                 stats.Summary  `json:"generations_solved"`
	HiddenNodesSolved                 stats.Summary  `json:"hidden_nodes_solved"`
	ComplexitySolved                  stats.Summary  `json:"complexity_solved"`
	TestedFitnessSolved               stats.Summary  `json:"tested_fitness_solved"`
	TestedGeneralizationFitnessSolved stats.Summary  `json:"tested_generalization_fitness_solved"`
	BirthGenerationSolved             stats.Optional `json:"birth_generation_solved"`
}

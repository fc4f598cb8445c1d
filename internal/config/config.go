package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/signalnine/neatreport/internal/analysis"
	"github.com/signalnine/neatreport/internal/report"
	"github.com/signalnine/neatreport/internal/result"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Results   Results          `yaml:"results"`
	Data      Data             `yaml:"data"`
	Precision report.Precision `yaml:"precision"`
}

type Results struct {
	Filename        string `yaml:"filename"`
	Output          string `yaml:"output"`
	StartTimeLayout string `yaml:"start_time_layout"`
}

// Data configures the objective scan over per-generation data tables.
type Data struct {
	Pattern string `yaml:"pattern"`
	Column  string `yaml:"column"`
	Output  string `yaml:"output"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{Precision: report.DefaultPrecision}
	if err := validate(cfg); err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Config{Precision: report.DefaultPrecision}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Results.Filename == "" {
		cfg.Results.Filename = "results.csv"
	}
	if cfg.Results.Output == "" {
		cfg.Results.Output = "analysis.csv"
	}
	if cfg.Results.StartTimeLayout == "" {
		cfg.Results.StartTimeLayout = result.DefaultStartTimeLayout
	}
	if cfg.Data.Pattern == "" {
		cfg.Data.Pattern = `data.*?\.csv`
	}
	if _, err := regexp.Compile(cfg.Data.Pattern); err != nil {
		return fmt.Errorf("data.pattern: %w", err)
	}
	if cfg.Data.Column == "" {
		cfg.Data.Column = analysis.DefaultObjectiveColumn
	}
	if cfg.Data.Output == "" {
		cfg.Data.Output = "data_output.csv"
	}
	if cfg.Results.Output == cfg.Results.Filename {
		return fmt.Errorf("results.output must differ from results.filename %q", cfg.Results.Filename)
	}
	if cfg.Precision.Counts < 0 || cfg.Precision.Fitness < 0 {
		return fmt.Errorf("precision must not be negative")
	}
	return nil
}

// DataPattern returns the compiled data table pattern. Load has validated it.
func (c *Config) DataPattern() *regexp.Regexp {
	return regexp.MustCompile(c.Data.Pattern)
}

func (c *Config) LoadOptions() result.LoadOptions {
	return result.LoadOptions{StartTimeLayout: c.Results.StartTimeLayout}
}

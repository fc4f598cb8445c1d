package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/signalnine/neatreport/internal/analysis"
	"github.com/signalnine/neatreport/internal/config"
	"github.com/signalnine/neatreport/internal/report"
	"github.com/signalnine/neatreport/internal/result"
	"github.com/spf13/cobra"
)

var flagOutput string

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [dir]",
		Short: "Write analysis.csv for every results table under dir",
		Long: "Recursively find results tables under dir (default: the working directory), " +
			"compute per-run statistics and write one row per run to the output file. " +
			"Any malformed table aborts the run without writing output.",
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}
	cmd.Flags().StringVar(&flagOutput, "output", "", "output file (default from config, relative to dir)")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir, err := rootDir(args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	summaries, err := summarize(out, dir, cfg)
	if errors.Is(err, result.ErrNoResults) {
		fmt.Fprintln(out, warnStyle.Render("No results found"))
		return nil
	}
	if err != nil {
		return err
	}

	name := cfg.Results.Output
	if flagOutput != "" {
		name = flagOutput
	}
	path := outputPath(dir, name)
	if err := report.SaveCSV(path, summaries, cfg.Precision); err != nil {
		return fmt.Errorf("writing analysis: %w", err)
	}
	fmt.Fprintf(out, "%s %s\n", okStyle.Render("Success"), faint.Render(path))
	return nil
}

// summarize discovers and aggregates every results table under dir, with
// paths reported relative to dir.
func summarize(out io.Writer, dir string, cfg *config.Config) ([]analysis.RunSummary, error) {
	paths, err := result.Discover(dir, result.MatchName(cfg.Results.Filename))
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Found %d results files\n", len(paths))
	if len(paths) == 0 {
		return nil, result.ErrNoResults
	}
	for _, p := range paths {
		slog.Debug("discovered table", "path", p)
	}

	summaries, err := analysis.AnalyzeTables(paths, cfg.LoadOptions())
	if err != nil {
		return nil, err
	}
	for i := range summaries {
		summaries[i].Path = relativeTo(dir, summaries[i].Path)
	}
	return summaries, nil
}

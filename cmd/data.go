package cmd

import (
	"bytes"
	"fmt"

	"github.com/signalnine/neatreport/internal/analysis"
	"github.com/signalnine/neatreport/internal/report"
	"github.com/signalnine/neatreport/internal/result"
	"github.com/spf13/cobra"
)

func newDataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "data [dir]",
		Short: "Write the best objective score of every data table",
		Long: "Recursively find per-generation data tables under dir and write the maximum " +
			"achieved objective fitness of each to data_output.csv.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			dir, err := rootDir(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			path := outputPath(dir, cfg.Data.Output)
			match := result.MatchPattern(cfg.DataPattern())
			found, err := result.Discover(dir, match)
			if err != nil {
				return err
			}
			// a previous output file matches the default pattern too
			var paths []string
			for _, p := range found {
				if p != path {
					paths = append(paths, p)
				}
			}
			fmt.Fprintf(out, "Found %d data files\n", len(paths))
			if len(paths) == 0 {
				fmt.Fprintln(out, warnStyle.Render("No data files found"))
				return nil
			}

			summaries, err := analysis.ScanObjectives(paths, cfg.Data.Column)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := report.WriteObjectiveCSV(&buf, summaries, cfg.Precision); err != nil {
				return err
			}
			if err := result.WriteFileAtomic(path, buf.Bytes()); err != nil {
				return fmt.Errorf("writing data output: %w", err)
			}
			fmt.Fprintf(out, "%s %s\n", okStyle.Render("Success"), faint.Render(path))
			return nil
		},
	}
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/signalnine/neatreport/internal/report"
	"github.com/signalnine/neatreport/internal/result"
	"github.com/spf13/cobra"
)

var flagFormat string

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [dir]",
		Short: "Print run summaries without writing a file",
		Long:  "Run the same analysis as analyze and print the summaries to stdout.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			dir, err := rootDir(args)
			if err != nil {
				return err
			}
			summaries, err := summarize(cmd.ErrOrStderr(), dir, cfg)
			if errors.Is(err, result.ErrNoResults) {
				fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("No results found"))
				return nil
			}
			if err != nil {
				return err
			}
			return report.Write(summaries, flagFormat, cfg.Precision, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json, csv)")
	return cmd
}

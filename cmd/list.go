package cmd

import (
	"fmt"

	"github.com/signalnine/neatreport/internal/result"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "List discovered results tables",
		Long:  "List results tables under dir in the order runs are numbered.",
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
			paths, err := result.Discover(dir, result.MatchName(cfg.Results.Filename))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(paths) == 0 {
				fmt.Fprintln(out, warnStyle.Render("No results found"))
				return nil
			}
			fmt.Fprintln(out, "Runs:")
			for i, p := range paths {
				fmt.Fprintf(out, "  %3d  %s\n", i+1, relativeTo(dir, p))
			}
			return nil
		},
	}
}

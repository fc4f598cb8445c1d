package cmd

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var color bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  "Print the configuration after defaults are applied, as used by the other commands.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			pp.ColoringEnabled = color
			_, err = pp.Fprintln(cmd.OutOrStdout(), cfg)
			return err
		},
	}
	cmd.Flags().BoolVar(&color, "color", false, "colorize output")
	return cmd
}

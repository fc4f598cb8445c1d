package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/signalnine/neatreport/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultConfigFile = "neatreport.yaml"
	envPrefix         = "NEATREPORT"
)

var (
	cfgFile  string
	verbose  bool
	settings *viper.Viper
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "neatreport [dir]",
		Short: "Summarize neuro-evolution experiment results",
		Long: "Walk a directory tree for results.csv tables, one per experiment run, and " +
			"write per-run statistics to analysis.csv. Without a subcommand, analyze runs " +
			"on the given directory or the current working directory.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd)
		},
		RunE: runAnalyze,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigFile, "config file path")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVar(&flagOutput, "output", "", "output file (default from config, relative to dir)")

	settings = viper.New()
	settings.SetEnvPrefix(envPrefix)
	settings.AutomaticEnv()
	for _, name := range []string{"config", "verbose"} {
		if err := settings.BindPFlag(name, root.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newDataCmd())
	root.AddCommand(newConfigCmd())
	return root
}

func setupLogging(cmd *cobra.Command) {
	level := slog.LevelWarn
	if settings.GetBool("verbose") {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// loadConfig reads the config file. A missing file is only an error when the
// path was given explicitly by flag or environment.
func loadConfig() (*config.Config, error) {
	path := settings.GetString("config")
	cfg, err := config.Load(path)
	if err == nil {
		slog.Debug("loaded config", "path", path)
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) && !settings.IsSet("config") {
		slog.Debug("no config file, using defaults", "path", path)
		return config.Default(), nil
	}
	return nil, err
}

// rootDir resolves the optional directory argument, defaulting to the
// working directory.
func rootDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", dir)
	}
	return abs, nil
}

// outputPath places a relative output name inside dir.
func outputPath(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

func relativeTo(dir, path string) string {
	if rel, err := filepath.Rel(dir, path); err == nil {
		return rel
	}
	return path
}

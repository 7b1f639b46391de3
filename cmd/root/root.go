// Package root contains the root command for the application
package root

import (
	"path/filepath"

	"unitfin/internal/config"
	"unitfin/internal/recordio"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Unit   string
	Year   int
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "unitfin",
		Short: "A CLI tool to summarize and compare unit finance records.",
		Long: `unitfin aggregates unit income/expense records into monthly breakdowns,
computes month-over-month surplus/deficit trends and manages the per-unit
category registry.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to unitfin!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Error loading configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			if delim := []rune(cfg.CSV.Delimiter); len(delim) == 1 {
				recordio.SetDelimiter(delim[0])
			}
		},
	}
)

// Init initializes the root command and all shared flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input records CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Unit, "unit", "u", "", "Unit identifier")
	Cmd.PersistentFlags().IntVarP(&SharedFlags.Year, "year", "y", 0, "Year to report on (defaults to all)")
}

// DataPath resolves a data file name against the configured data directory.
func DataPath(filename string) string {
	if Cfg == nil || Cfg.Data.Directory == "" {
		return filename
	}
	return filepath.Join(Cfg.Data.Directory, filename)
}

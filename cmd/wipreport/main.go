// Package main provides the CLI entry point for wipreport.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/wipreport-go/internal/config"
	"github.com/ukaji3/wipreport-go/internal/logging"
	"go.uber.org/zap"
)

// app holds state shared by the subcommands once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "wipreport",
		Short: "Build Unbilled WIP reports from timesheet exports",
		Long: `wipreport reads a timesheet export workbook, classifies each record by
billing brand and writes the Unbilled WIP workbook with All, Experis and
Manpower sheets.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newGenerateCmd(a), newServeCmd(a))
	return rootCmd
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/MikeBiancalana/datefield/internal/config"
	"github.com/MikeBiancalana/datefield/internal/datefield"
	"github.com/MikeBiancalana/datefield/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	langFlag    string
	minFlag     datefield.Date
	maxFlag     datefield.Date
	initialFlag datefield.Date

	fileConfig *config.File
)

// RootCmd is the root command for the CLI
var RootCmd = &cobra.Command{
	Use:   "datefield",
	Short: "Date entry field with a pop-up calendar",
	Long: `Enter a date as DD.MM.YYYY or pick it from a calendar, optionally
restricted to an inclusive --min/--max range.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the picker TUI
		return pickCmd.RunE(cmd, args)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.datefield/config.yaml)")
	RootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "language for labels (de, en)")
	RootCmd.PersistentFlags().Var(&minFlag, "min", "earliest allowed date (YYYY-MM-DD)")
	RootCmd.PersistentFlags().Var(&maxFlag, "max", "latest allowed date (YYYY-MM-DD)")
	RootCmd.PersistentFlags().Var(&initialFlag, "initial", "initial date (YYYY-MM-DD)")

	addPickFlags(RootCmd)

	RootCmd.AddCommand(pickCmd)
	RootCmd.AddCommand(promptCmd)
	RootCmd.AddCommand(parseCmd)
	RootCmd.AddCommand(formatCmd)
	RootCmd.AddCommand(GetConfigCommand())
}

// loadConfig reads the config file and applies its log settings
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		// init is how a missing file gets created
		if cmd != configInitCmd || !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		cfg = &config.File{}
	}
	fileConfig = cfg

	if cfg.Log.Level != "" || cfg.Log.Format != "" {
		if err := logger.InitializeWithConfig(logger.Config{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
		}); err != nil {
			return fmt.Errorf("configuring logger: %w", err)
		}
	}

	logger.Debug("config loaded", "path", configPath, "min", cfg.Min, "max", cfg.Max)
	return nil
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

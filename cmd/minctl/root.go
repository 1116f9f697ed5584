package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/minkit/cmd/minctl/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	configPath string
	logLevel   string

	// cfg is loaded before every command runs.
	cfg = defaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "minctl",
	Short: "Find the smallest and second smallest values of a sequence",
	Long: `minctl runs the minkit selection algorithms on numbers given on the
command line and benchmarks the tournament min+second-min algorithm against
the single-pass alternative.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "minctl.yaml", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")
}

// setup loads the configuration and initializes logging and output formatting.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	levelName := cfg.LogLevel
	if logLevel != "" {
		levelName = logLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	if err := logger.Init(logger.Options{
		Enabled: verbose || cfg.LogDir != "" || logLevel != "",
		LogDir:  cfg.LogDir,
		Level:   level,
	}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	printer = newPrinter(cfg.Locale)
	logger.Debug("configuration loaded", "path", configPath, "locale", cfg.Locale)
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprint(os.Stdout, printer.Sprintf(format, args...))
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprint(os.Stdout, printer.Sprintf(format, args...))
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

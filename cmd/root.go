// =============================================================================
// Catalog Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that the converter commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (catalog)
//   ├── splitCmd (catalog split)
//   ├── mergeCmd (catalog merge)
//   └── versionCmd (catalog version)
//
// CONFIGURATION:
//   The root command owns the global flags (--config, --verbose) and the
//   helpers that load the YAML configuration and build the diagnostic
//   logger for the subcommands.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/starkiller-base/catalog-converter/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug diagnostics when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "catalog",

	Short: "Catalog Converter - asset pipeline file converters",

	Long: `Catalog Converter bundles the two file converters used by the
Starkiller Base Command asset pipeline.

Commands:
  split   Split a multi-sheet XLSX workbook into one CSV file per sheet,
          sanitizing sheet names into filesystem-safe file names.
  merge   Merge the file catalog CSV into a multi-sheet XLSX workbook,
          one sheet per category plus a generated Introduction sheet.

Example Usage:
  catalog split --workbook GameData.xlsx --output-dir Assets/_Temp/CSV
  catalog merge --catalog Assets/file_catalog_updated.csv
  catalog split --config pipeline.yaml`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},

	// The subcommands print their own outcome lines; a failed conversion
	// should not dump usage text on top of the error.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags shared by every subcommand.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables debug diagnostics on stderr.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadConfig loads the YAML configuration. An explicitly passed --config
// must exist; the default config.yaml is optional and falls back to the
// built-in defaults when absent.
func loadConfig() (*config.Config, error) {
	if rootCmd.PersistentFlags().Changed("config") {
		return config.Load(cfgFile)
	}

	if _, err := os.Stat(cfgFile); err == nil {
		return config.Load(cfgFile)
	}

	return config.Default(), nil
}

// newLogger builds the diagnostic logger. Diagnostics go to stderr so the
// converters' contractual stdout lines stay clean. --verbose forces the
// debug level regardless of the configured log_level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

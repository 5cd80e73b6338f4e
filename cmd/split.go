// =============================================================================
// Catalog Converter - Split Command
// =============================================================================
//
// This file defines the 'split' command, which converts each sheet of an
// XLSX workbook into a CSV file in the output directory.
//
// COMMAND USAGE:
//   catalog split [flags]
//
// FLAGS:
//   --workbook    : Path to the XLSX workbook to split
//   --output-dir  : Directory that receives one CSV per sheet
//
// EXIT BEHAVIOR:
//   On success the sheet-count message is printed to stdout and the
//   process exits 0. On any failure a one-line message is printed to
//   stderr and the process exits 1. Per-sheet progress lines go to stdout
//   as sheets are written.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/starkiller-base/catalog-converter/internal/splitter"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// splitWorkbook overrides the configured workbook path.
var splitWorkbook string

// splitOutputDir overrides the configured output directory.
var splitOutputDir string

// =============================================================================
// SPLIT COMMAND DEFINITION
// =============================================================================

// splitCmd represents the 'split' command.
var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split an XLSX workbook into one CSV file per sheet",
	Long: `The split command reads a multi-sheet XLSX workbook and writes one
UTF-8 CSV file per sheet into the output directory, creating the directory
if it does not exist.

Sheet names are sanitized into filesystem-safe file stems: spaces become
underscores and any character that is not a letter, digit, or underscore
is removed. Two distinct sheet names can sanitize to the same stem, in
which case the later sheet overwrites the earlier file.

Every cell that is missing or blank in the workbook is written as an
empty string.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runSplit()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the split command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(splitCmd)

	// --workbook flag: Path to the XLSX workbook to split.
	splitCmd.Flags().StringVar(
		&splitWorkbook,
		"workbook",
		"",
		"Path to the XLSX workbook to split (overrides the config file)",
	)

	// --output-dir flag: Directory that receives one CSV per sheet.
	splitCmd.Flags().StringVar(
		&splitOutputDir,
		"output-dir",
		"",
		"Directory that receives one CSV per sheet (overrides the config file)",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runSplit resolves the configuration, runs the splitter, and maps its
// structured result to the process exit code.
func runSplit() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	workbook := cfg.Split.WorkbookPath
	if splitWorkbook != "" {
		workbook = splitWorkbook
	}

	outputDir := cfg.Split.OutputDir
	if splitOutputDir != "" {
		outputDir = splitOutputDir
	}

	s := splitter.New(workbook, outputDir)
	s.Logger = logger

	result := s.Run()
	if !result.Success {
		fmt.Fprintln(os.Stderr, result.Message)
		os.Exit(1)
	}

	fmt.Println(result.Message)
	return nil
}

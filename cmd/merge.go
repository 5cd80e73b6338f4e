// =============================================================================
// Catalog Converter - Merge Command
// =============================================================================
//
// This file defines the 'merge' command, which converts the file catalog
// CSV into a multi-sheet XLSX workbook partitioned by category.
//
// COMMAND USAGE:
//   catalog merge [flags]
//
// FLAGS:
//   --catalog   : Path to the catalog CSV file
//   --workbook  : Path of the XLSX workbook to create
//
// EXIT BEHAVIOR:
//   On success one confirmation line is printed to stdout and the process
//   exits 0. Failures are not intercepted: the error propagates and the
//   process terminates with a non-zero status and the error diagnostic.
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/starkiller-base/catalog-converter/internal/merger"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// mergeCatalog overrides the configured catalog path.
var mergeCatalog string

// mergeWorkbook overrides the configured output workbook path.
var mergeWorkbook string

// =============================================================================
// MERGE COMMAND DEFINITION
// =============================================================================

// mergeCmd represents the 'merge' command.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge the catalog CSV into a category-partitioned XLSX workbook",
	Long: `The merge command reads the file catalog CSV, groups its rows by the
"Category" column, and writes a multi-sheet XLSX workbook: a generated
"Introduction" cover sheet first, then one sheet per category in the order
the categories first appear in the catalog.

The catalog header must include a column literally named "Category";
its absence is a fatal error, raised before any output file is created.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runMerge()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the merge command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(mergeCmd)

	// --catalog flag: Path to the catalog CSV file.
	mergeCmd.Flags().StringVar(
		&mergeCatalog,
		"catalog",
		"",
		"Path to the catalog CSV file (overrides the config file)",
	)

	// --workbook flag: Path of the XLSX workbook to create.
	mergeCmd.Flags().StringVar(
		&mergeWorkbook,
		"workbook",
		"",
		"Path of the XLSX workbook to create (overrides the config file)",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runMerge resolves the configuration and runs the merger, letting any
// failure propagate to the CLI error handler.
func runMerge() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	catalog := cfg.Merge.CatalogPath
	if mergeCatalog != "" {
		catalog = mergeCatalog
	}

	workbook := cfg.Merge.WorkbookPath
	if mergeWorkbook != "" {
		workbook = mergeWorkbook
	}

	m := merger.New(catalog, workbook)
	m.Logger = logger

	return m.Run()
}

// =============================================================================
// Catalog Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Catalog Converter CLI, a pair of
// one-shot file converters used in the Starkiller Base Command asset
// pipeline. It initializes the Cobra CLI framework and delegates command
// execution to the cmd package.
//
// USAGE:
//   catalog split        - Split a workbook into one CSV file per sheet
//   catalog merge        - Merge a catalog CSV into a multi-sheet workbook
//   catalog version      - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core conversion logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/starkiller-base/catalog-converter/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}

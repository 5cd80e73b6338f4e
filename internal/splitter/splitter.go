// =============================================================================
// Catalog Converter - Sheet Splitter Module
// =============================================================================
//
// This module converts one multi-sheet XLSX workbook into one CSV file per
// sheet. The pipeline for a run is:
//   1. Create the output directory if missing
//   2. Open the workbook and load every sheet into a table
//   3. Fill missing cells with empty strings
//   4. Derive a filesystem-safe file stem from each sheet name
//   5. Write <stem>.csv for each sheet, emitting a progress line
//
// ERROR POLICY:
//   Every failure (missing input, unreadable workbook, directory creation
//   or write failure) is caught and converted into a Result with a
//   descriptive message rather than propagated. Files already written
//   before a failure are left in place. The CLI entry point maps the
//   Result to a process exit code.
//
// NAME COLLISIONS:
//   Two distinct sheet names can sanitize to the same stem (e.g. "A B"
//   and "A_B"). The later sheet silently overwrites the earlier output.
//   This mirrors the historical pipeline behavior and is documented
//   rather than guaranteed.
//
// =============================================================================

package splitter

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/starkiller-base/catalog-converter/internal/csvwriter"
	"github.com/starkiller-base/catalog-converter/internal/xlsxparser"
	"github.com/starkiller-base/catalog-converter/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of a split run.
type Result struct {
	// Success indicates whether the run completed without error.
	Success bool

	// Message is the human-readable outcome: the sheet count on success,
	// the error text on failure.
	Message string

	// SheetCount is the number of sheets converted.
	SheetCount int

	// OutputFiles contains the paths written, in sheet order. On failure
	// it holds the files written before the error occurred.
	OutputFiles []string
}

// =============================================================================
// SPLITTER STRUCTURE
// =============================================================================

// Splitter converts a workbook into per-sheet CSV files.
type Splitter struct {
	// WorkbookPath is the XLSX file to split.
	WorkbookPath string

	// OutputDir receives one CSV per sheet. Created if missing.
	OutputDir string

	// Progress receives the per-sheet progress lines. Defaults to
	// os.Stdout.
	Progress io.Writer

	// Logger receives diagnostic output.
	Logger *zap.Logger
}

// New creates a Splitter for the given workbook and output directory.
func New(workbookPath, outputDir string) *Splitter {
	return &Splitter{
		WorkbookPath: workbookPath,
		OutputDir:    outputDir,
		Progress:     os.Stdout,
		Logger:       zap.NewNop(),
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the split pipeline and reports the outcome as a Result.
// It never returns an error; failures are folded into the Result message.
func (s *Splitter) Run() Result {
	result := Result{}

	if err := s.run(&result); err != nil {
		result.Success = false
		result.Message = fmt.Sprintf("Error converting Excel to CSV: %v", err)
		return result
	}

	result.Success = true
	result.Message = fmt.Sprintf("Successfully converted %d sheets to CSV", result.SheetCount)
	return result
}

// run performs the conversion, filling the result as it goes.
func (s *Splitter) run(result *Result) error {
	if err := utils.EnsureDir(s.OutputDir); err != nil {
		return err
	}

	sheets, err := xlsxparser.ParseWorkbook(s.WorkbookPath)
	if err != nil {
		return err
	}

	s.Logger.Debug("workbook loaded",
		zap.String("path", s.WorkbookPath),
		zap.Int("sheets", len(sheets)))

	for _, sheet := range sheets {
		outPath, err := s.writeSheet(sheet)
		if err != nil {
			return err
		}

		result.OutputFiles = append(result.OutputFiles, outPath)
		result.SheetCount++

		fmt.Fprintf(s.Progress, "Converted sheet %q to %s\n", sheet.Name, outPath)
	}

	return nil
}

// writeSheet writes one sheet's table as a CSV file and returns the path.
func (s *Splitter) writeSheet(sheet xlsxparser.Sheet) (string, error) {
	stem := utils.SanitizeSheetName(sheet.Name)
	outPath := utils.OutputPath(s.OutputDir, stem, ".csv")

	s.Logger.Debug("writing sheet",
		zap.String("sheet", sheet.Name),
		zap.String("output", outPath),
		zap.Int("rows", sheet.Table.RowCount()))

	if err := csvwriter.Write(outPath, sheet.Table); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	return outPath, nil
}

// =============================================================================
// Catalog Converter - Catalog Merger Module
// =============================================================================
//
// This module converts the file catalog CSV into a multi-sheet XLSX
// workbook. The pipeline for a run is:
//   1. Load the catalog into a table
//   2. Partition rows by the "Category" column, preserving row order
//      within each category and first-appearance order across categories
//   3. Build the "Introduction" cover sheet with the organization
//      narrative and the run date
//   4. Derive a sheet name for each category
//   5. Write the workbook: Introduction first, then one sheet per category
//
// ERROR POLICY:
//   Unlike the splitter, the merger performs no interception: any failure
//   (missing input, missing "Category" column, write failure) propagates
//   to the caller, which terminates the process with a non-zero status.
//   The missing-column case is detected before any output is created.
//
// SHEET NAMING:
//   Category names containing "System" get "Files" appended via
//   substitution ("Core System" -> "Core System Files"). Three literal
//   overrides follow the substitution; because the substitution already
//   fires for any name containing "System", the "Core Files" override
//   only matters for inputs without it. This matches the historical
//   pipeline rules.
//
// =============================================================================

package merger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/starkiller-base/catalog-converter/internal/csvparser"
	"github.com/starkiller-base/catalog-converter/internal/table"
	"github.com/starkiller-base/catalog-converter/internal/xlsxwriter"
)

// CategoryColumn is the catalog column the merger partitions by.
const CategoryColumn = "Category"

// IntroSheetName is the name of the generated cover sheet.
const IntroSheetName = "Introduction"

// introColumnTitle is the single column title on the cover sheet.
const introColumnTitle = "File Organization Strategy"

// =============================================================================
// MERGER STRUCTURE
// =============================================================================

// Merger converts a catalog CSV into a category-partitioned workbook.
type Merger struct {
	// CatalogPath is the CSV file to merge. Its header must include the
	// "Category" column.
	CatalogPath string

	// WorkbookPath is the XLSX file to create.
	WorkbookPath string

	// Now supplies the run date written to the Introduction sheet.
	// Defaults to time.Now; tests inject a fixed clock.
	Now func() time.Time

	// Confirm receives the confirmation line. Defaults to os.Stdout.
	Confirm io.Writer

	// Logger receives diagnostic output.
	Logger *zap.Logger
}

// New creates a Merger for the given catalog and output workbook.
func New(catalogPath, workbookPath string) *Merger {
	return &Merger{
		CatalogPath:  catalogPath,
		WorkbookPath: workbookPath,
		Now:          time.Now,
		Confirm:      os.Stdout,
		Logger:       zap.NewNop(),
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the merge pipeline. Any failure is returned to the caller;
// no output file exists unless the whole run succeeded.
func (m *Merger) Run() error {
	catalog, err := csvparser.Parse(m.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	groups, err := catalog.GroupBy(CategoryColumn)
	if err != nil {
		return fmt.Errorf("failed to group catalog: %w", err)
	}

	m.Logger.Debug("catalog loaded",
		zap.String("path", m.CatalogPath),
		zap.Int("rows", catalog.RowCount()),
		zap.Int("categories", len(groups)))

	sheets := make([]xlsxwriter.Sheet, 0, len(groups)+1)
	sheets = append(sheets, xlsxwriter.Sheet{
		Name:  IntroSheetName,
		Table: introTable(m.Now()),
	})

	for _, group := range groups {
		sheets = append(sheets, xlsxwriter.Sheet{
			Name:  SheetNameForCategory(group.Key),
			Table: group.Table,
		})
	}

	if err := xlsxwriter.WriteWorkbook(m.WorkbookPath, sheets); err != nil {
		return err
	}

	fmt.Fprintf(m.Confirm, "Excel file created at: %s\n", m.WorkbookPath)
	return nil
}

// =============================================================================
// SHEET NAME DERIVATION
// =============================================================================

// SheetNameForCategory derives the output sheet name for a category.
// Every occurrence of "System" gains a "Files" suffix; the literal
// overrides below then catch the category names the substitution misses.
func SheetNameForCategory(category string) string {
	name := strings.ReplaceAll(category, "System", "System Files")
	switch name {
	case "Core Files":
		name = "Core System Files"
	case "Visual Effects":
		name = "Visual Effects Files"
	case "Content Management":
		name = "Content Management Files"
	}
	return name
}

// =============================================================================
// INTRODUCTION SHEET
// =============================================================================

// introTable builds the single-column cover sheet describing how the
// catalog is organized, stamped with the run date.
func introTable(now time.Time) *table.Table {
	lines := []string{
		"",
		"When implementing new features or modifying existing functionality, refer to this catalog to understand which systems to modify.",
		"",
		"The catalog is organized by system categories:",
		"- Core System: Central game infrastructure components",
		"- Ship System: Ship generation and encounter handling",
		"- Family System: Imperial family management",
		"- Consequences System: Decision consequence tracking",
		"- Daily Game Flow: Daily game cycle management",
		"- Content Management: Media and game content",
		"- Visual Effects: Visual enhancement components",
		"",
		"This catalog was updated on " + now.Format("2006-01-02") + ".",
		"It includes newly added scripts and recent modifications.",
	}

	t := &table.Table{Columns: []string{introColumnTitle}}
	for _, line := range lines {
		t.Rows = append(t.Rows, []string{line})
	}
	return t
}

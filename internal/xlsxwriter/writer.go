// =============================================================================
// Catalog Converter - XLSX Workbook Writer
// =============================================================================
//
// This module writes a sequence of named tables out as a multi-sheet XLSX
// workbook. Sheets are created in the order given, the first one replacing
// the default sheet excelize creates with a new workbook. Each sheet gets
// the table's header row followed by its data rows, with no row-index
// column.
//
// The workbook is saved through an atomic temp-file write so a failed run
// never leaves a corrupt file under the final name.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/starkiller-base/catalog-converter/internal/table"
	"github.com/starkiller-base/catalog-converter/pkg/utils"
)

// Sheet is one named table to place in the output workbook.
type Sheet struct {
	// Name is the sheet name to create. Length and character limits are
	// those imposed by the XLSX format; they are not enforced here.
	Name string

	// Table holds the sheet's header and data rows.
	Table *table.Table
}

// WriteWorkbook creates an XLSX workbook at the given path containing the
// sheets in order. At least one sheet is required.
func WriteWorkbook(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("workbook must contain at least one sheet")
	}

	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet to carry the first table, then append the
	// rest.
	if err := f.SetSheetName(f.GetSheetName(0), sheets[0].Name); err != nil {
		return fmt.Errorf("failed to name sheet %q: %w", sheets[0].Name, err)
	}

	for i, sheet := range sheets {
		if i > 0 {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return fmt.Errorf("failed to create sheet %q: %w", sheet.Name, err)
			}
		}
		if err := writeSheet(f, sheet); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", sheet.Name, err)
		}
	}

	return utils.WriteFileAtomic(path, func(w io.Writer) error {
		if err := f.Write(w); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		return nil
	})
}

// writeSheet fills one sheet with the table's header and data rows.
func writeSheet(f *excelize.File, sheet Sheet) error {
	if err := setRow(f, sheet.Name, 1, sheet.Table.Columns); err != nil {
		return err
	}

	for i, row := range sheet.Table.Rows {
		if err := setRow(f, sheet.Name, i+2, row); err != nil {
			return err
		}
	}

	return nil
}

// setRow writes one row of string cells starting at column A of the given
// 1-based row number.
func setRow(f *excelize.File, sheetName string, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}

	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}

	return f.SetSheetRow(sheetName, cell, &values)
}

// =============================================================================
// Catalog Converter - XLSX Workbook Parser
// =============================================================================
//
// This module reads multi-sheet XLSX workbooks into the shared Table
// representation, one table per sheet, preserving the workbook's native
// sheet order. Cell values are read as formatted strings; cells missing
// from short rows are filled with empty strings so downstream writers see
// a rectangular table.
//
// =============================================================================

package xlsxparser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/starkiller-base/catalog-converter/internal/table"
)

// Sheet is one named table loaded from a workbook.
type Sheet struct {
	// Name is the sheet name exactly as stored in the workbook.
	Name string

	// Table holds the sheet's cells: first row as header, rest as data.
	Table *table.Table
}

// ParseWorkbook opens an XLSX file and loads every sheet into a table, in
// the workbook's native sheet order.
func ParseWorkbook(path string) ([]Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		t, err := parseSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		sheets = append(sheets, Sheet{Name: name, Table: t})
	}

	return sheets, nil
}

// parseSheet loads a single sheet into a table. The first row becomes the
// header; a sheet with no cells at all yields an empty table.
func parseSheet(f *excelize.File, sheetName string) (*table.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	t := &table.Table{}
	if len(rows) > 0 {
		t.Columns = rows[0]
		t.Rows = rows[1:]
	}
	t.Normalize()

	return t, nil
}

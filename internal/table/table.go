// =============================================================================
// Catalog Converter - Shared Table Types
// =============================================================================
//
// This package contains the in-memory tabular representation shared by both
// converters to avoid import cycles. Types defined here are used by:
//   - csvparser / csvwriter
//   - xlsxparser / xlsxwriter
//   - splitter / merger
//
// =============================================================================

package table

import "fmt"

// Table is an ordered 2-D table of string cells: a header row defining
// column names followed by zero or more data rows. Rows may be shorter
// than the column list until Normalize pads them.
type Table struct {
	// Columns contains the column names, in order.
	Columns []string

	// Rows contains the data rows, in order. Each row holds cell values
	// positionally aligned with Columns.
	Rows [][]string
}

// Group is one order-preserving partition of a table's rows, keyed by the
// value of the grouping column. The grouped table shares the parent's
// column list.
type Group struct {
	// Key is the grouping value shared by every row in the group.
	Key string

	// Table holds the group's rows under the parent table's columns.
	Table *Table
}

// Normalize pads every row with empty strings up to the table's width, so
// that missing and blank cells become indistinguishable empty values. If
// any row is wider than the header, the column list is extended with
// empty names first.
func (t *Table) Normalize() {
	width := len(t.Columns)
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}

	for len(t.Columns) < width {
		t.Columns = append(t.Columns, "")
	}

	for i, row := range t.Rows {
		for len(row) < width {
			row = append(row, "")
		}
		t.Rows[i] = row
	}
}

// ColumnIndex returns the position of the named column, or -1 if the
// table has no column with that exact name.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// GroupBy partitions the table's rows by the exact string value of the
// named column. Groups are returned in the order their keys first appear
// in the table, and rows keep their original relative order within each
// group. Rows shorter than the key column's index group under the empty
// string.
//
// An error is returned if the column does not exist.
func (t *Table) GroupBy(column string) ([]Group, error) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil, fmt.Errorf("table has no %q column", column)
	}

	byKey := make(map[string]*Table)
	var groups []Group

	for _, row := range t.Rows {
		key := ""
		if idx < len(row) {
			key = row[idx]
		}

		grouped, ok := byKey[key]
		if !ok {
			grouped = &Table{Columns: t.Columns}
			byKey[key] = grouped
			groups = append(groups, Group{Key: key, Table: grouped})
		}
		grouped.Rows = append(grouped.Rows, row)
	}

	return groups, nil
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

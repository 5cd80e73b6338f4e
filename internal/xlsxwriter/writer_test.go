package xlsxwriter_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/starkiller-base/catalog-converter/internal/table"
	"github.com/starkiller-base/catalog-converter/internal/xlsxwriter"
)

func TestWriteWorkbookSheetOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	sheets := []xlsxwriter.Sheet{
		{Name: "First", Table: &table.Table{Columns: []string{"A"}, Rows: [][]string{{"1"}}}},
		{Name: "Second", Table: &table.Table{Columns: []string{"B"}}},
		{Name: "Third", Table: &table.Table{Columns: []string{"C"}, Rows: [][]string{{"3"}, {"33"}}}},
	}

	require.NoError(t, xlsxwriter.WriteWorkbook(path, sheets))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"First", "Second", "Third"}, f.GetSheetList())

	rows, err := f.GetRows("Third")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"C"}, {"3"}, {"33"}}, rows)
}

func TestWriteWorkbookRequiresSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	assert.Error(t, xlsxwriter.WriteWorkbook(path, nil))
}

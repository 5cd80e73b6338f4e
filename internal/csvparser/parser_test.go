package csvparser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starkiller-base/catalog-converter/internal/csvparser"
)

// writeCSV drops a CSV fixture into a temp dir and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseHeaderAndRows(t *testing.T) {
	path := writeCSV(t, "Name,Category\nalpha,Core System\nbeta,Ship System\n")

	tbl, err := csvparser.Parse(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Category"}, tbl.Columns)
	require.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, []string{"alpha", "Core System"}, tbl.Rows[0])
	assert.Equal(t, []string{"beta", "Ship System"}, tbl.Rows[1])
}

func TestParseQuotedFields(t *testing.T) {
	path := writeCSV(t, "Name,Notes\n\"a,b\",\"line1\nline2\"\n")

	tbl, err := csvparser.Parse(path)
	require.NoError(t, err)

	require.Equal(t, 1, tbl.RowCount())
	assert.Equal(t, "a,b", tbl.Rows[0][0])
	assert.Equal(t, "line1\nline2", tbl.Rows[0][1])
}

func TestParsePadsShortRows(t *testing.T) {
	path := writeCSV(t, "Name,Category,Notes\nalpha,Core System\n")

	tbl, err := csvparser.Parse(path)
	require.NoError(t, err)

	require.Equal(t, 1, tbl.RowCount())
	assert.Equal(t, []string{"alpha", "Core System", ""}, tbl.Rows[0])
}

func TestParseHeaderOnly(t *testing.T) {
	path := writeCSV(t, "Name,Category\n")

	tbl, err := csvparser.Parse(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Category"}, tbl.Columns)
	assert.Equal(t, 0, tbl.RowCount())
}

func TestParseEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := csvparser.Parse(path)
	assert.Error(t, err)
}

func TestParseMissingFile(t *testing.T) {
	_, err := csvparser.Parse(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

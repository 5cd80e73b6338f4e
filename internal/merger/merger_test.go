package merger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/starkiller-base/catalog-converter/internal/merger"
)

// fixedNow pins the run date so the Introduction sheet is reproducible.
func fixedNow() time.Time {
	return time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
}

// writeCatalog drops a catalog CSV fixture into a temp dir.
func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "file_catalog_updated.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// newMerger builds a merger with a pinned clock and silenced confirmation.
func newMerger(catalogPath, workbookPath string) *merger.Merger {
	m := merger.New(catalogPath, workbookPath)
	m.Now = fixedNow
	m.Confirm = new(bytes.Buffer)
	return m
}

func TestSheetNameForCategory(t *testing.T) {
	cases := []struct {
		category string
		want     string
	}{
		{"Core System", "Core System Files"},
		{"Ship System", "Ship System Files"},
		{"Family System", "Family System Files"},
		{"Visual Effects", "Visual Effects Files"},
		{"Content Management", "Content Management Files"},
		{"Daily Game Flow", "Daily Game Flow"},
		{"Core Files", "Core System Files"},
		{"Audio", "Audio"},
	}

	for _, tc := range cases {
		t.Run(tc.category, func(t *testing.T) {
			assert.Equal(t, tc.want, merger.SheetNameForCategory(tc.category))
		})
	}
}

func TestRunPartitionsByCategory(t *testing.T) {
	catalog := writeCatalog(t,
		"Name,Category\n"+
			"core1,Core System\n"+
			"ship1,Ship System\n"+
			"core2,Core System\n"+
			"vfx1,Visual Effects\n")
	out := filepath.Join(t.TempDir(), "catalog.xlsx")

	m := newMerger(catalog, out)
	require.NoError(t, m.Run())

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		"Introduction",
		"Core System Files",
		"Ship System Files",
		"Visual Effects Files",
	}, f.GetSheetList(), "Introduction first, then categories in first-appearance order")

	coreRows, err := f.GetRows("Core System Files")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Name", "Category"},
		{"core1", "Core System"},
		{"core2", "Core System"},
	}, coreRows, "per-category row order preserved, no index column")

	shipRows, err := f.GetRows("Ship System Files")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Name", "Category"},
		{"ship1", "Ship System"},
	}, shipRows)

	vfxRows, err := f.GetRows("Visual Effects Files")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Name", "Category"},
		{"vfx1", "Visual Effects"},
	}, vfxRows)
}

func TestRunRowUnionMatchesInput(t *testing.T) {
	catalog := writeCatalog(t,
		"Name,Category\n"+
			"a,X\nb,Y\nc,X\nd,Z\ne,Y\nf,X\n")
	out := filepath.Join(t.TempDir(), "catalog.xlsx")

	require.NoError(t, newMerger(catalog, out).Run())

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	var names []string
	for _, sheet := range f.GetSheetList() {
		if sheet == "Introduction" {
			continue
		}
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		for _, row := range rows[1:] {
			names = append(names, row[0])
		}
	}

	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e", "f"}, names,
		"every input row appears on exactly one category sheet")
}

func TestRunIntroductionSheet(t *testing.T) {
	catalog := writeCatalog(t, "Name,Category\ncore1,Core System\n")
	out := filepath.Join(t.TempDir(), "catalog.xlsx")

	m := newMerger(catalog, out)
	confirm := new(bytes.Buffer)
	m.Confirm = confirm

	require.NoError(t, m.Run())

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, "Introduction", f.GetSheetList()[0], "Introduction must come first")

	rows, err := f.GetRows("Introduction")
	require.NoError(t, err)
	require.Len(t, rows, 15, "title plus the fourteen narrative lines")

	for i, row := range rows {
		assert.LessOrEqual(t, len(row), 1, "Introduction row %d has more than one column", i)
	}

	assert.Equal(t, []string{"File Organization Strategy"}, rows[0])
	assert.Equal(t, "The catalog is organized by system categories:", rows[4][0])
	assert.Equal(t, "- Core System: Central game infrastructure components", rows[5][0])
	assert.Equal(t, "This catalog was updated on 2024-03-05.", rows[13][0])
	assert.Equal(t, "It includes newly added scripts and recent modifications.", rows[14][0])

	assert.Equal(t, "Excel file created at: "+out+"\n", confirm.String())
}

func TestRunMissingCategoryColumn(t *testing.T) {
	catalog := writeCatalog(t, "Name,Kind\na,script\n")
	out := filepath.Join(t.TempDir(), "catalog.xlsx")

	err := newMerger(catalog, out).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Category")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output file may exist after the failure")
}

func TestRunMissingCatalog(t *testing.T) {
	out := filepath.Join(t.TempDir(), "catalog.xlsx")

	err := newMerger(filepath.Join(t.TempDir(), "nope.csv"), out).Run()
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

// =============================================================================
// Catalog Converter - CSV Parser Module
// =============================================================================
//
// This module parses delimited catalog files into the shared Table
// representation. The expected format is comma-delimited UTF-8 text with a
// single header row and standard quoting for fields containing the
// delimiter, quote character, or newlines.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/starkiller-base/catalog-converter/internal/table"
)

// Parse reads a CSV file and returns the parsed table. The first record
// is taken as the header row; every following record becomes a data row.
// Short rows are padded to the header width with empty strings.
func Parse(filePath string) (*table.Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader)

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	t := &table.Table{
		Columns: allRows[0],
		Rows:    allRows[1:],
	}
	t.Normalize()

	return t, nil
}

// configureReader applies the parsing settings used for catalog files.
func configureReader(reader *csv.Reader) {
	reader.Comma = ','

	// Allow variable numbers of fields per record. Rows are padded to the
	// header width after reading, so catalogs with ragged rows still load.
	reader.FieldsPerRecord = -1

	// Allow quotes that don't follow strict CSV rules.
	reader.LazyQuotes = true
}

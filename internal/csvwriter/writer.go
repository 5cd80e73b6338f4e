// =============================================================================
// Catalog Converter - CSV Writer Module
// =============================================================================
//
// This module writes the shared Table representation out as comma-delimited
// UTF-8 text: header row first, then every data row in order. Fields
// containing the delimiter, quote character, or newlines are quoted by the
// standard library encoder.
//
// Output files are written atomically (temp file + rename) so a failed run
// never leaves a truncated file under the final name.
//
// =============================================================================

package csvwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/starkiller-base/catalog-converter/internal/table"
	"github.com/starkiller-base/catalog-converter/pkg/utils"
)

// Write writes the table to the given path as a CSV file with a header
// row and no row-index column.
func Write(path string, t *table.Table) error {
	return utils.WriteFileAtomic(path, func(w io.Writer) error {
		return writeTable(w, t)
	})
}

// writeTable encodes the table onto the writer.
func writeTable(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}

	return nil
}

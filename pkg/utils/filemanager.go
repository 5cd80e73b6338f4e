// =============================================================================
// Catalog Converter - File Manager Utility
// =============================================================================
//
// This module provides the file-level utilities shared by both converters:
//   - Sheet name sanitization for filesystem-safe output names
//   - Directory management
//   - Atomic output writes (temp file + rename)
//
// ATOMIC WRITE STRATEGY:
//   Output files are written to a uniquely named temporary file next to the
//   final destination and renamed into place once the write succeeds. The
//   temporary name carries a random UUID so concurrent or repeated runs
//   never clobber each other's in-progress files.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// nonWordPattern matches every character that is not a letter, digit, or
// underscore. Matched characters are stripped from sheet names, which
// silently drops hyphens and accented letters.
var nonWordPattern = regexp.MustCompile(`[^0-9A-Za-z_]`)

// =============================================================================
// NAME SANITIZATION
// =============================================================================

// SanitizeSheetName converts a workbook sheet name into a filesystem-safe
// file stem. Spaces become underscores, then any remaining character
// outside [0-9A-Za-z_] is removed.
//
// The operation is idempotent: sanitizing an already-sanitized name
// returns the same name.
func SanitizeSheetName(name string) string {
	cleaned := strings.ReplaceAll(name, " ", "_")
	return nonWordPattern.ReplaceAllString(cleaned, "")
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates the directory (and any missing parents) if it does
// not already exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// ATOMIC WRITES
// =============================================================================

// WriteFileAtomic writes a file by streaming the payload into a uniquely
// named temporary file in the destination directory, then renaming it
// over the final path. On any failure the temporary file is removed and
// the destination is left untouched (unless it already existed, in which
// case it keeps its previous content).
//
// The write callback receives the open temporary file and must write the
// complete payload before returning.
func WriteFileAtomic(path string, write func(w io.Writer) error) error {
	tmpPath := fmt.Sprintf("%s.%s.tmp", path, uuid.New().String())

	tmp, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}

// OutputPath joins a directory and a file stem with the given extension.
// The extension should include the leading dot (e.g. ".csv").
func OutputPath(dir, stem, ext string) string {
	return filepath.Join(dir, stem+ext)
}

// Package export writes experiment result tables to CSV, JSON and
// Excel files.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"seedhash/domain/experiment"
)

// Format selects the output file format.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatExcel Format = "excel"
)

// ParseFormat converts a string tag into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSON, FormatExcel:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format %q (valid: csv, json, excel)", s)
	}
}

// WriteFile writes the table to path in the given format.
func WriteFile(table *experiment.Table, path string, format Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	switch format {
	case FormatCSV:
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		return WriteCSV(f, table)
	case FormatJSON:
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		return WriteJSON(f, table)
	case FormatExcel:
		return WriteExcel(path, table)
	default:
		return fmt.Errorf("unsupported format %q (valid: csv, json, excel)", format)
	}
}

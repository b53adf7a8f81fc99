package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"seedhash/domain/experiment"
)

// WriteCSV writes the table as CSV with a header row.
func WriteCSV(w io.Writer, table *experiment.Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

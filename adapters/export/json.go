package export

import (
	"encoding/json"
	"io"

	"seedhash/domain/experiment"
)

// WriteJSON writes the table as an array of records, one object per
// row keyed by column name. Empty cells are omitted.
func WriteJSON(w io.Writer, table *experiment.Table) error {
	records := make([]map[string]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		record := make(map[string]string, len(table.Columns))
		for i, col := range table.Columns {
			if row[i] != "" {
				record[col] = row[i]
			}
		}
		records = append(records, record)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

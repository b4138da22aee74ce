package export

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// EncodeCSV renders a table as RFC 4180 CSV text: header row first, fields
// containing commas, quotes, or newlines quoted with internal quotes
// doubled.
func EncodeCSV(table Table) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(table.Header); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range table.Rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to encode csv: %w", err)
	}
	return b.String(), nil
}

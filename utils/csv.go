package utils

import (
	"encoding/csv"
	"io"
)

func ParseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	// report exports can have a ragged trailer row
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return records, nil
}

// PreviewRows returns at most limit rows for terminal display. limit <= 0
// means no cap.
func PreviewRows(records [][]string, limit int) [][]string {
	if limit <= 0 || len(records) <= limit {
		return records
	}
	return records[:limit]
}

package excel

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"edusight/internal/ingest"
)

// ParseCSV parses in-memory CSV content into header-keyed rows. Used by the
// upload endpoint, which receives file content rather than a path.
func ParseCSV(data []byte) ([]ingest.Row, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}
	return toRows(records)
}

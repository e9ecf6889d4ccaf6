// Package excel reads assessment uploads from Excel and CSV files into
// header-keyed rows for the ingest pipeline.
package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"edusight/internal/ingest"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// Read reads the file into header-keyed rows. Header text is preserved
// exactly; trailing cells missing from a row are simply absent keys.
func (r *DataReader) Read() ([]ingest.Row, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readExcel()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

func (r *DataReader) readExcel() ([]ingest.Row, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	log.Printf("[DataReader] Sheet %s read in %.2fms (%d rows)", sheet,
		float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	return toRows(rows)
}

func (r *DataReader) readCSV() ([]ingest.Row, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}
	return toRows(records)
}

// toRows zips each data row against the header row.
func toRows(raw [][]string) ([]ingest.Row, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("file must have at least a header row and one data row")
	}

	header := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]ingest.Row, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(ingest.Row, len(header))
		for i, cell := range cells {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = strings.TrimSpace(cell)
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

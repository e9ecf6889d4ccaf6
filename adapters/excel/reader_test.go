package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCSVFile(t *testing.T) {
	path := writeTempCSV(t, "Student ID,Name,Verbal Stanine\nS001,Amina Khan,6\nS002,Ben Cole,4\n")

	rows, err := NewDataReader(path).Read()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "S001", rows[0]["Student ID"])
	assert.Equal(t, "Amina Khan", rows[0]["Name"])
	assert.Equal(t, "6", rows[0]["Verbal Stanine"])
	assert.Equal(t, "S002", rows[1]["Student ID"])
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewDataReader("/nonexistent/data.csv").Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestReadDetectsFileType(t *testing.T) {
	assert.Equal(t, "csv", NewDataReader("scores.CSV").fileType)
	assert.Equal(t, "xlsx", NewDataReader("scores.xlsx").fileType)
	assert.Equal(t, "xlsx", NewDataReader("scores").fileType)
}

func TestParseCSV(t *testing.T) {
	rows, err := ParseCSV([]byte("Student ID, Name \nS001, Amina Khan \n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "S001", rows[0]["Student ID"])
	assert.Equal(t, "Amina Khan", rows[0]["Name"], "header and cell whitespace trimmed")
}

func TestParseCSVRaggedRows(t *testing.T) {
	rows, err := ParseCSV([]byte("Student ID,Name,Grade\nS001,Amina Khan\nS002,Ben Cole,10,extra\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	_, hasGrade := rows[0]["Grade"]
	assert.False(t, hasGrade, "short rows leave trailing headers absent")
	assert.Equal(t, "10", rows[1]["Grade"])
}

func TestParseCSVHeaderOnly(t *testing.T) {
	_, err := ParseCSV([]byte("Student ID,Name\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header row and one data row")
}

func TestParseCSVSkipsEmptyColumnsAndRows(t *testing.T) {
	rows, err := ParseCSV([]byte("Student ID,,Name\nS001,ignored,Amina Khan\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Len(t, rows[0], 2, "cells under an empty header are dropped")
}

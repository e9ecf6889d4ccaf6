package ui

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edusight/adapters/memory"
	"edusight/app"
	"edusight/domain/assessment"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	repo := memory.NewSnapshotRepository()
	return NewServer(
		app.NewAnalysisService(assessment.DefaultThresholds(), repo),
		app.NewProgressService(assessment.DefaultThresholds(), repo),
	)
}

func multipartUpload(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for field, content := range files {
		part, err := writer.CreateFormFile(field, field+".csv")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func doUpload(t *testing.T, s *Server, files map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartUpload(t, files)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func doGet(s *Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

const attitudinalCSV = "Student ID,Name,Grade,Self-regard as a learner,General work ethic\n" +
	"S001,Amina Khan,10,30,35\n" +
	"S002,Ben Cole,10,70,75\n"

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()

	w := doGet(s, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestUploadRunsBatchPipeline(t *testing.T) {
	s := newTestServer()

	w := doUpload(t, s, map[string]string{"attitudinal": attitudinalCSV})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result app.BatchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Records, 2)
	assert.NotEmpty(t, result.BatchID)
	assert.Contains(t, result.GradeSummary, "10")
}

func TestUploadWithoutFiles(t *testing.T) {
	s := newTestServer()

	w := doUpload(t, s, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no assessment files provided")
}

func TestUploadWithNoUsableRows(t *testing.T) {
	s := newTestServer()

	// Header resolves but no row carries a student identifier.
	w := doUpload(t, s, map[string]string{
		"attitudinal": "Name,Self-regard as a learner\nAmina Khan,50\n",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUploadMalformedCSV(t *testing.T) {
	s := newTestServer()

	w := doUpload(t, s, map[string]string{"attitudinal": "Student ID\n"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "attitudinal")
}

func TestStudentEndpoints(t *testing.T) {
	s := newTestServer()
	require.Equal(t, http.StatusOK, doUpload(t, s, map[string]string{"attitudinal": attitudinalCSV}).Code)

	w := doGet(s, "/api/students")
	require.Equal(t, http.StatusOK, w.Code)
	var roster struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &roster))
	assert.Equal(t, 2, roster.Count)

	w = doGet(s, "/api/students/S001")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Amina Khan")

	w = doGet(s, "/api/students/S001/progress")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"has_baseline":false`)

	w = doGet(s, "/api/students/S001/prediction")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"time_to_intervention"`)
}

func TestStatsEndpoint(t *testing.T) {
	s := newTestServer()
	require.Equal(t, http.StatusOK, doUpload(t, s, map[string]string{"attitudinal": attitudinalCSV}).Code)

	w := doGet(s, "/api/stats")
	require.Equal(t, http.StatusOK, w.Code)

	var stats app.CohortStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Students)
	assert.Equal(t, 1, stats.AtRiskStudents)
	assert.Equal(t, 0, stats.FragileLearners)

	grade10, ok := stats.Grades["10"]
	require.True(t, ok)
	assert.Equal(t, 2, grade10.Students)
	assert.Equal(t, 1.0, grade10.AvgRiskAreas)
}

func TestStudentNotFound(t *testing.T) {
	s := newTestServer()

	assert.Equal(t, http.StatusNotFound, doGet(s, "/api/students/missing").Code)
	assert.Equal(t, http.StatusNotFound, doGet(s, "/api/students/missing/progress").Code)
	assert.Equal(t, http.StatusNotFound, doGet(s, "/api/students/missing/prediction").Code)
}

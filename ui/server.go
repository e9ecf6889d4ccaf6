package ui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"edusight/adapters/excel"
	"edusight/app"
	"edusight/domain/core"
	"edusight/internal/ingest"
)

// Server is the JSON API for uploads and per-student queries.
type Server struct {
	router   *gin.Engine
	analysis *app.AnalysisService
	progress *app.ProgressService
}

// NewServer creates the API server around the application services.
func NewServer(analysisService *app.AnalysisService, progressService *app.ProgressService) *Server {
	s := &Server{
		router:   gin.Default(),
		analysis: analysisService,
		progress: progressService,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.POST("/upload", s.handleUpload)
		api.GET("/students", s.handleStudents)
		api.GET("/students/:id", s.handleStudent)
		api.GET("/students/:id/progress", s.handleProgress)
		api.GET("/students/:id/prediction", s.handlePrediction)
		api.GET("/stats", s.handleStats)
	}
}

// Start begins serving on the given address.
func (s *Server) Start(addr string) error {
	log.Printf("[Server] Starting API server on %s", addr)
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleUpload accepts up to three assessment files in one multipart request
// (form fields: attitudinal, cognitive, academic) and runs the batch
// pipeline over them.
func (s *Server) handleUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid multipart form: %v", err)})
		return
	}

	sources := app.BatchSources{}
	parsed := 0
	for field, dst := range map[string]*[]ingest.Row{
		"attitudinal": &sources.Attitudinal,
		"cognitive":   &sources.Cognitive,
		"academic":    &sources.Academic,
	} {
		files := form.File[field]
		if len(files) == 0 {
			continue
		}
		rows, err := readUploadedCSV(files[0])
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("failed to read %s file: %v", field, err)})
			return
		}
		*dst = rows
		parsed++
	}
	if parsed == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no assessment files provided"})
		return
	}

	result, err := s.analysis.AnalyzeBatch(c.Request.Context(), sources)
	if err != nil {
		if errors.Is(err, core.ErrInsufficientData) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no student records survived merging"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleStudents(c *gin.Context) {
	students, err := s.progress.Roster(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": students, "count": len(students)})
}

func (s *Server) handleStudent(c *gin.Context) {
	studentID, ok := s.studentID(c)
	if !ok {
		return
	}
	rec, err := s.progress.Latest(c.Request.Context(), studentID)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleProgress(c *gin.Context) {
	studentID, ok := s.studentID(c)
	if !ok {
		return
	}
	result, err := s.progress.Progress(c.Request.Context(), studentID)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handlePrediction(c *gin.Context) {
	studentID, ok := s.studentID(c)
	if !ok {
		return
	}
	prediction, err := s.progress.Predict(c.Request.Context(), studentID)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, prediction)
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.progress.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) studentID(c *gin.Context) (core.StudentID, bool) {
	studentID, err := core.ParseStudentID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student id is required"})
		return "", false
	}
	return studentID, true
}

func (s *Server) renderError(c *gin.Context, err error) {
	if core.IsNotFoundError(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// readUploadedCSV parses one uploaded file as CSV rows. Excel uploads go
// through the file-based CLI path; the API accepts CSV only.
func readUploadedCSV(fh *multipart.FileHeader) ([]ingest.Row, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return excel.ParseCSV(data)
}

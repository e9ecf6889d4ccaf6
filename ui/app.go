package ui

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"edusight/app"
	"edusight/domain/core"
	"edusight/internal/report"
)

// App is the report viewer: a small HTML front end over the same application
// services the API exposes.
type App struct {
	router    *chi.Mux
	progress  *app.ProgressService
	generator *report.Generator
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>{{.Title}}</title>
	<style>
		body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
		table { border-collapse: collapse; }
		th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; }
		blockquote { border-left: 4px solid #c33; padding-left: 1rem; color: #633; }
	</style>
</head>
<body>
{{.Body}}
</body>
</html>`

var page = template.Must(template.New("page").Parse(pageTemplate))

// NewApp creates the report viewer.
func NewApp(progressService *app.ProgressService) *App {
	a := &App{
		router:    chi.NewRouter(),
		progress:  progressService,
		generator: report.NewGenerator(),
	}
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.setupRoutes()
	return a
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/students/{id}", a.handleStudentReport)
}

// Start begins serving on the given address.
func (a *App) Start(addr string) error {
	log.Printf("[App] Starting report viewer on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	students, err := a.progress.Roster(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	md := "# Student Roster\n\n"
	if len(students) == 0 {
		md += "No students analyzed yet. Upload assessment data via the API.\n"
	} else {
		md += "| Student | Grade | Fragile Learner | Risk Areas |\n|---|---|---|---|\n"
		for _, s := range students {
			name := s.Name
			if name == "" {
				name = s.StudentID.String()
			}
			fragile := "no"
			if s.IsFragileLearner {
				fragile = "yes"
			}
			md += fmt.Sprintf("| [%s](/students/%s) | %s | %s | %d |\n",
				name, s.StudentID, s.Grade, fragile, s.RiskAreaCount)
		}
	}
	a.renderPage(w, "Student Roster", md)
}

func (a *App) handleStudentReport(w http.ResponseWriter, r *http.Request) {
	studentID, err := core.ParseStudentID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "student id is required", http.StatusBadRequest)
		return
	}

	rec, err := a.progress.Latest(r.Context(), studentID)
	if err != nil {
		if core.IsNotFoundError(err) {
			http.Error(w, "student not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Progress and prediction enrich the report when history exists.
	prog, err := a.progress.Progress(r.Context(), studentID)
	if err != nil && !errors.Is(err, core.ErrMissingBaseline) {
		log.Printf("[App] Progress unavailable for %s: %v", studentID, err)
		prog = nil
	}
	pred, err := a.progress.Predict(r.Context(), studentID)
	if err != nil {
		log.Printf("[App] Prediction unavailable for %s: %v", studentID, err)
		pred = nil
	}

	md := a.generator.Markdown(rec, prog, pred)
	a.renderPage(w, fmt.Sprintf("Student %s", studentID), md)
}

func (a *App) renderPage(w http.ResponseWriter, title, md string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := page.Execute(w, map[string]interface{}{
		"Title": title,
		"Body":  template.HTML(a.generator.HTML(md)),
	})
	if err != nil {
		log.Printf("[App] Failed to render %s: %v", title, err)
	}
}

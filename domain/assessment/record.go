package assessment

import (
	"edusight/domain/core"
)

// ScoreScale tags which scale a cognitive source reported its scores on.
type ScoreScale string

const (
	// ScaleStanine marks scores already on the 1-9 stanine scale.
	ScaleStanine ScoreScale = "stanine"
	// ScaleSAS marks standardized age scores on the ~60-140 scale.
	ScaleSAS ScoreScale = "sas"
)

// CognitiveScores holds one cognitive assessment block. Scores are keyed by
// canonical domain and carried on the scale the source reported; a zero value
// means the domain was not measured.
type CognitiveScores struct {
	Scale  ScoreScale                 `json:"scale"`
	Scores map[core.FactorKey]float64 `json:"scores"`
}

// SubjectScore holds one academic subject result. Mark is the raw mark
// (0-100); Percentile and Stanine are optional standardized views, zero when
// the source did not provide them.
type SubjectScore struct {
	Mark       float64 `json:"mark"`
	Percentile float64 `json:"percentile,omitempty"`
	Stanine    float64 `json:"stanine,omitempty"`
}

// StudentRecord is the merged view of one student across the three sources.
// It is built once by the merger and treated as immutable afterwards: analyzers
// read it, never write it.
type StudentRecord struct {
	StudentID core.StudentID `json:"student_id"`
	Name      string         `json:"name"`
	Grade     string         `json:"grade"`
	Section   string         `json:"section"`

	// Attitudinal holds survey percentiles (0-100) keyed by canonical factor.
	// Nil means the attitudinal source never saw this student; a zero entry
	// means the factor was present but not measured.
	Attitudinal map[core.FactorKey]float64 `json:"attitudinal,omitempty"`

	// Cognitive holds the ability scores, nil when the cognitive source never
	// saw this student.
	Cognitive *CognitiveScores `json:"cognitive,omitempty"`

	// Academic holds subject results keyed by subject name, nil when the
	// academic source never saw this student.
	Academic map[string]SubjectScore `json:"academic,omitempty"`
}

// HasAttitudinal reports whether the attitudinal block is present.
func (r *StudentRecord) HasAttitudinal() bool { return r.Attitudinal != nil }

// HasCognitive reports whether the cognitive block is present.
func (r *StudentRecord) HasCognitive() bool { return r.Cognitive != nil }

// HasAcademic reports whether the academic block is present.
func (r *StudentRecord) HasAcademic() bool { return r.Academic != nil }

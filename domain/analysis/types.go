package analysis

import (
	"edusight/domain/assessment"
	"edusight/domain/core"
)

// Level classifies a scored item into its risk band. Attitudinal factors use
// at-risk/balanced/strength; cognitive domains and academic subjects use
// weakness/average/strength. Bands are total and non-overlapping.
type Level string

const (
	LevelAtRisk   Level = "at-risk"
	LevelBalanced Level = "balanced"
	LevelStrength Level = "strength"
	LevelWeakness Level = "weakness"
	LevelAverage  Level = "average"
)

// IsRisk reports whether the level marks the item as a problem area.
func (l Level) IsRisk() bool { return l == LevelAtRisk || l == LevelWeakness }

// ScoredItem is one classified factor, domain or subject. Value is a
// percentile for attitudinal items and a stanine for cognitive and academic
// items.
type ScoredItem struct {
	Key         core.FactorKey     `json:"key"`
	Name        string             `json:"name"`
	Value       float64            `json:"value"`
	Level       Level              `json:"level"`
	PNumber     assessment.PNumber `json:"p_number,omitempty"`
	Mark        float64            `json:"mark,omitempty"`
	Description string             `json:"description,omitempty"`
}

// DomainAnalysis is the per-domain classification result. Available=false
// means the source block was absent; consumers must skip the domain, never
// treat it as zero risk.
type DomainAnalysis struct {
	Available     bool         `json:"available"`
	Items         []ScoredItem `json:"items,omitempty"`
	RiskAreas     []ScoredItem `json:"risk_areas,omitempty"`
	StrengthAreas []ScoredItem `json:"strength_areas,omitempty"`

	// OverallStatus is set for attitudinal analyses ("At Risk", "Positive",
	// "Balanced").
	OverallStatus string `json:"overall_status,omitempty"`

	// FragileCandidate is set for cognitive analyses when at least two
	// domains are weaknesses. It feeds the fragile-learner rule; it is not
	// the final determination.
	FragileCandidate bool `json:"fragile_candidate,omitempty"`

	// AverageStanine and Profile are set for academic analyses.
	AverageStanine float64 `json:"average_stanine,omitempty"`
	Profile        string  `json:"profile,omitempty"`
}

// ComparisonStatus labels a subject's performance against cognitive potential.
type ComparisonStatus string

const (
	StatusUnderperforming ComparisonStatus = "Underperforming"
	StatusAsExpected      ComparisonStatus = "As Expected"
	StatusOverperforming  ComparisonStatus = "Overperforming"
)

// SubjectComparison cross-references one academic subject with the cognitive
// domain most relevant to it.
type SubjectComparison struct {
	AcademicStanine  float64          `json:"academic_stanine"`
	CognitiveStanine float64          `json:"cognitive_stanine"`
	RelevantDomain   string           `json:"relevant_domain"`
	Status           ComparisonStatus `json:"status"`
}

// PerformanceComparison is the potential-versus-performance view across all
// subjects. Requires both cognitive and academic analyses.
type PerformanceComparison struct {
	Available            bool                         `json:"available"`
	Subjects             map[string]SubjectComparison `json:"subjects,omitempty"`
	UnderperformingCount int                          `json:"underperforming_count"`
}

// Priority orders interventions for delivery.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort rank of a priority (high first).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Intervention is one recommended support action. Atomic interventions are
// deduplicated by (Domain, Title); compound interventions are not.
type Intervention struct {
	Domain      string   `json:"domain"`
	Factor      string   `json:"factor"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Trigger     string   `json:"trigger,omitempty"`
	Impact      string   `json:"impact,omitempty"`
}

// AnalyzedRecord is one complete snapshot of a student's triangulated profile.
// It is produced by a single pipeline pass and never mutated; progress and
// risk analysis compare whole snapshots.
type AnalyzedRecord struct {
	SnapshotID core.SnapshotID `json:"snapshot_id"`
	RecordedAt core.Timestamp  `json:"recorded_at"`

	Student assessment.StudentRecord `json:"student"`

	Attitudinal DomainAnalysis        `json:"attitudinal"`
	Cognitive   DomainAnalysis        `json:"cognitive"`
	Academic    DomainAnalysis        `json:"academic"`
	Performance PerformanceComparison `json:"performance_comparison"`

	IsFragileLearner      bool           `json:"is_fragile_learner"`
	Interventions         []Intervention `json:"interventions"`
	CompoundInterventions []Intervention `json:"compound_interventions"`
}

// DomainCount returns how many of the three source domains were available.
func (r *AnalyzedRecord) DomainCount() int {
	n := 0
	if r.Attitudinal.Available {
		n++
	}
	if r.Cognitive.Available {
		n++
	}
	if r.Academic.Available {
		n++
	}
	return n
}

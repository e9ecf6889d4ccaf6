package app

import (
	"context"
	"errors"
	"fmt"

	"edusight/domain/analysis"
	"edusight/domain/assessment"
	"edusight/domain/core"
	"edusight/domain/progress"
	"edusight/domain/risk"
	"edusight/internal/predictor"
	"edusight/internal/tracker"
	"edusight/ports"
)

// ProgressService serves the longitudinal queries: progress between the two
// most recent snapshots and risk prediction over the full history.
type ProgressService struct {
	repo      ports.SnapshotRepository
	tracker   *tracker.Tracker
	predictor *predictor.Predictor
}

func NewProgressService(thresholds assessment.Thresholds, repo ports.SnapshotRepository) *ProgressService {
	return &ProgressService{
		repo:      repo,
		tracker:   tracker.NewTracker(thresholds),
		predictor: predictor.New(thresholds),
	}
}

// Latest returns a student's most recent snapshot.
func (s *ProgressService) Latest(ctx context.Context, studentID core.StudentID) (*analysis.AnalyzedRecord, error) {
	rec, err := s.repo.Latest(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load latest snapshot for %s: %w", studentID, err)
	}
	return rec, nil
}

// Progress compares a student's two most recent snapshots. A student with a
// single snapshot yields a no-baseline result, not an error.
func (s *ProgressService) Progress(ctx context.Context, studentID core.StudentID) (*progress.Analysis, error) {
	current, err := s.repo.Latest(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load latest snapshot for %s: %w", studentID, err)
	}

	previous, err := s.repo.Previous(ctx, studentID)
	if err != nil && !errors.Is(err, core.ErrMissingBaseline) {
		return nil, fmt.Errorf("load previous snapshot for %s: %w", studentID, err)
	}

	result := s.tracker.Track(current, previous)
	return &result, nil
}

// Predict runs risk inference over a student's latest snapshot and the rest
// of the history.
func (s *ProgressService) Predict(ctx context.Context, studentID core.StudentID) (*risk.Prediction, error) {
	history, err := s.repo.History(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load history for %s: %w", studentID, err)
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("predict risk for %s: %w", studentID, core.ErrStudentNotFound)
	}

	current := &history[len(history)-1]
	prediction := s.predictor.Predict(current, history[:len(history)-1])
	return &prediction, nil
}

// Roster lists every known student by latest snapshot.
func (s *ProgressService) Roster(ctx context.Context) ([]ports.StudentSummary, error) {
	students, err := s.repo.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// CohortStats rolls the current roster up, overall and per grade level.
type CohortStats struct {
	Students        int                     `json:"students"`
	FragileLearners int                     `json:"fragile_learners"`
	AtRiskStudents  int                     `json:"at_risk_students"`
	Grades          map[string]GradeSummary `json:"grades"`
}

// Stats summarizes the latest snapshot of every known student. A student
// counts as at-risk when any domain reports risk areas.
func (s *ProgressService) Stats(ctx context.Context) (*CohortStats, error) {
	students, err := s.repo.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	stats := &CohortStats{Grades: map[string]GradeSummary{}}
	riskAreas := map[string]int{}
	for _, st := range students {
		grade := st.Grade
		if grade == "" {
			grade = "Ungraded"
		}
		g := stats.Grades[grade]
		g.Students++
		stats.Students++
		if st.IsFragileLearner {
			g.FragileLearners++
			stats.FragileLearners++
		}
		if st.RiskAreaCount > 0 {
			g.AtRiskStudents++
			stats.AtRiskStudents++
		}
		riskAreas[grade] += st.RiskAreaCount
		stats.Grades[grade] = g
	}
	for grade, g := range stats.Grades {
		g.AvgRiskAreas = float64(riskAreas[grade]) / float64(g.Students)
		stats.Grades[grade] = g
	}
	return stats, nil
}

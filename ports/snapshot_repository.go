package ports

import (
	"context"

	"edusight/domain/analysis"
	"edusight/domain/core"
)

// SnapshotRepository stores analyzed snapshots and serves the longitudinal
// queries. Implementations return core.ErrStudentNotFound when a student has
// no snapshots.
type SnapshotRepository interface {
	// SaveBatch persists every snapshot of one upload under its batch ID.
	SaveBatch(ctx context.Context, batchID core.BatchID, records []analysis.AnalyzedRecord) error

	// Latest returns the most recent snapshot for a student.
	Latest(ctx context.Context, studentID core.StudentID) (*analysis.AnalyzedRecord, error)

	// Previous returns the snapshot immediately before the latest, or
	// core.ErrMissingBaseline when only one exists.
	Previous(ctx context.Context, studentID core.StudentID) (*analysis.AnalyzedRecord, error)

	// History returns all snapshots for a student ordered oldest first.
	History(ctx context.Context, studentID core.StudentID) ([]analysis.AnalyzedRecord, error)

	// ListStudents summarizes the latest snapshot of every known student.
	ListStudents(ctx context.Context) ([]StudentSummary, error)
}

// StudentSummary is the roster row built from a student's latest snapshot.
type StudentSummary struct {
	StudentID        core.StudentID `json:"student_id"`
	Name             string         `json:"name"`
	Grade            string         `json:"grade"`
	Section          string         `json:"section"`
	IsFragileLearner bool           `json:"is_fragile_learner"`
	RiskAreaCount    int            `json:"risk_area_count"`
	DomainCount      int            `json:"domain_count"`
	RecordedAt       core.Timestamp `json:"recorded_at"`
}

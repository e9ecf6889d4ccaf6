// Package memory keeps analyzed snapshots in process memory. Used when no
// database is configured and as the repository double in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"edusight/domain/analysis"
	"edusight/domain/core"
	"edusight/ports"
)

// SnapshotRepository is a thread-safe in-memory SnapshotRepository.
type SnapshotRepository struct {
	mu        sync.RWMutex
	byStudent map[core.StudentID][]analysis.AnalyzedRecord
}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{
		byStudent: make(map[core.StudentID][]analysis.AnalyzedRecord),
	}
}

// SaveBatch appends every record to its student's history, oldest first.
func (r *SnapshotRepository) SaveBatch(_ context.Context, _ core.BatchID, records []analysis.AnalyzedRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range records {
		id := records[i].Student.StudentID
		history := append(r.byStudent[id], records[i])
		sort.SliceStable(history, func(a, b int) bool {
			return history[a].RecordedAt.Before(history[b].RecordedAt)
		})
		r.byStudent[id] = history
	}
	return nil
}

func (r *SnapshotRepository) Latest(_ context.Context, studentID core.StudentID) (*analysis.AnalyzedRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.byStudent[studentID]
	if len(history) == 0 {
		return nil, core.ErrStudentNotFound
	}
	rec := history[len(history)-1]
	return &rec, nil
}

func (r *SnapshotRepository) Previous(_ context.Context, studentID core.StudentID) (*analysis.AnalyzedRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.byStudent[studentID]
	if len(history) == 0 {
		return nil, core.ErrStudentNotFound
	}
	if len(history) < 2 {
		return nil, core.ErrMissingBaseline
	}
	rec := history[len(history)-2]
	return &rec, nil
}

func (r *SnapshotRepository) History(_ context.Context, studentID core.StudentID) ([]analysis.AnalyzedRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.byStudent[studentID]
	out := make([]analysis.AnalyzedRecord, len(history))
	copy(out, history)
	return out, nil
}

func (r *SnapshotRepository) ListStudents(_ context.Context) ([]ports.StudentSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]ports.StudentSummary, 0, len(r.byStudent))
	for _, history := range r.byStudent {
		rec := &history[len(history)-1]
		summaries = append(summaries, ports.StudentSummary{
			StudentID:        rec.Student.StudentID,
			Name:             rec.Student.Name,
			Grade:            rec.Student.Grade,
			Section:          rec.Student.Section,
			IsFragileLearner: rec.IsFragileLearner,
			RiskAreaCount:    len(rec.Attitudinal.RiskAreas) + len(rec.Cognitive.RiskAreas) + len(rec.Academic.RiskAreas),
			DomainCount:      rec.DomainCount(),
			RecordedAt:       rec.RecordedAt,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].StudentID < summaries[j].StudentID
	})
	return summaries, nil
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edusight/domain/analysis"
	"edusight/domain/assessment"
	"edusight/domain/core"
)

func record(studentID string, recordedAt time.Time, fragile bool) analysis.AnalyzedRecord {
	return analysis.AnalyzedRecord{
		SnapshotID: core.SnapshotID(core.NewID()),
		RecordedAt: core.NewTimestamp(recordedAt),
		Student: assessment.StudentRecord{
			StudentID: core.StudentID(studentID),
			Name:      "Student " + studentID,
			Grade:     "10",
			Section:   "A",
		},
		Attitudinal:      analysis.DomainAnalysis{Available: true},
		IsFragileLearner: fragile,
	}
}

func TestLatestAndPreviousOrdering(t *testing.T) {
	repo := NewSnapshotRepository()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Saved out of order; the repository orders by RecordedAt.
	err := repo.SaveBatch(ctx, core.BatchID(core.NewID()), []analysis.AnalyzedRecord{
		record("S001", base.AddDate(0, 2, 0), true),
		record("S001", base, false),
		record("S001", base.AddDate(0, 1, 0), false),
	})
	require.NoError(t, err)

	latest, err := repo.Latest(ctx, "S001")
	require.NoError(t, err)
	assert.True(t, latest.IsFragileLearner)
	assert.Equal(t, base.AddDate(0, 2, 0), latest.RecordedAt.Time())

	previous, err := repo.Previous(ctx, "S001")
	require.NoError(t, err)
	assert.Equal(t, base.AddDate(0, 1, 0), previous.RecordedAt.Time())

	history, err := repo.History(ctx, "S001")
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i := 1; i < len(history); i++ {
		assert.True(t, history[i-1].RecordedAt.Before(history[i].RecordedAt))
	}
}

func TestLatestUnknownStudent(t *testing.T) {
	repo := NewSnapshotRepository()

	_, err := repo.Latest(context.Background(), "missing")
	assert.ErrorIs(t, err, core.ErrStudentNotFound)
	assert.True(t, core.IsNotFoundError(err))
}

func TestPreviousWithSingleSnapshot(t *testing.T) {
	repo := NewSnapshotRepository()
	ctx := context.Background()

	err := repo.SaveBatch(ctx, core.BatchID(core.NewID()), []analysis.AnalyzedRecord{
		record("S001", time.Now(), false),
	})
	require.NoError(t, err)

	_, err = repo.Previous(ctx, "S001")
	assert.ErrorIs(t, err, core.ErrMissingBaseline)

	_, err = repo.Previous(ctx, "S999")
	assert.ErrorIs(t, err, core.ErrStudentNotFound)
}

func TestListStudentsSummarizesLatestSnapshot(t *testing.T) {
	repo := NewSnapshotRepository()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	first := record("S002", base, false)
	second := record("S002", base.AddDate(0, 1, 0), true)
	second.Attitudinal.RiskAreas = []analysis.ScoredItem{{Name: "Self Regard"}}
	other := record("S001", base, false)

	require.NoError(t, repo.SaveBatch(ctx, core.BatchID(core.NewID()),
		[]analysis.AnalyzedRecord{first, second, other}))

	summaries, err := repo.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, core.StudentID("S001"), summaries[0].StudentID, "sorted by student id")

	s2 := summaries[1]
	assert.Equal(t, core.StudentID("S002"), s2.StudentID)
	assert.True(t, s2.IsFragileLearner, "summary reflects the latest snapshot")
	assert.Equal(t, 1, s2.RiskAreaCount)
	assert.Equal(t, 1, s2.DomainCount)
}

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edusight/adapters/memory"
	"edusight/domain/analysis"
	"edusight/domain/assessment"
	"edusight/domain/core"
	"edusight/internal/ingest"
	"edusight/internal/testkit"
)

func fullSourcesFor(studentID string) BatchSources {
	return BatchSources{
		Attitudinal: []ingest.Row{{
			"Student ID":                  studentID,
			"Name":                        "Jamie Wright",
			"Grade":                       "10",
			"Section":                     "A",
			"Self-regard as a learner":    "30",
			"General work ethic":          "35",
			"Confidence in learning":      "70",
			"Emotional control":           "55",
		}},
		Cognitive: []ingest.Row{{
			"Student ID":         studentID,
			"Verbal Stanine":     "6",
			"Quantitative Stanine": "5",
			"Non-verbal Stanine": "5",
			"Spatial Stanine":    "4",
		}},
		Academic: []ingest.Row{{
			"Student ID":      studentID,
			"English Stanine": "3",
			"Mathematics Stanine": "5",
		}},
	}
}

func TestAnalyzeBatchFullPipeline(t *testing.T) {
	repo := memory.NewSnapshotRepository()
	svc := NewAnalysisService(assessment.DefaultThresholds(), repo)

	result, err := svc.AnalyzeBatch(context.Background(), fullSourcesFor("S001"))
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Empty(t, result.Failures)
	assert.NotEmpty(t, result.BatchID)

	rec := result.Records[0]
	assert.Equal(t, core.StudentID("S001"), rec.Student.StudentID)
	assert.Equal(t, "Jamie Wright", rec.Student.Name)
	assert.Equal(t, 3, rec.DomainCount())

	// Two attitudinal risks with adequate cognition triangulate to fragile.
	assert.Len(t, rec.Attitudinal.RiskAreas, 2)
	assert.True(t, rec.IsFragileLearner)
	assert.NotEmpty(t, rec.Interventions)
	assert.True(t, rec.Performance.Available)

	// The batch was persisted.
	saved, err := repo.Latest(context.Background(), "S001")
	require.NoError(t, err)
	assert.Equal(t, rec.SnapshotID, saved.SnapshotID)
}

func TestAnalyzeBatchEmptyUpload(t *testing.T) {
	svc := NewAnalysisService(assessment.DefaultThresholds(), nil)

	_, err := svc.AnalyzeBatch(context.Background(), BatchSources{})
	assert.ErrorIs(t, err, core.ErrInsufficientData)
}

func TestAnalyzeBatchWithoutRepository(t *testing.T) {
	svc := NewAnalysisService(assessment.DefaultThresholds(), nil)

	result, err := svc.AnalyzeBatch(context.Background(), fullSourcesFor("S001"))
	require.NoError(t, err)
	assert.Len(t, result.Records, 1)
}

func TestAnalyzeBatchPartialSources(t *testing.T) {
	svc := NewAnalysisService(assessment.DefaultThresholds(), nil)

	sources := BatchSources{
		Attitudinal: []ingest.Row{{
			"Student ID":               "S010",
			"Self-regard as a learner": "80",
		}},
	}
	result, err := svc.AnalyzeBatch(context.Background(), sources)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	rec := result.Records[0]
	assert.True(t, rec.Attitudinal.Available)
	assert.False(t, rec.Cognitive.Available)
	assert.False(t, rec.Academic.Available)
	assert.False(t, rec.Performance.Available)
	assert.False(t, rec.IsFragileLearner, "fragile rule needs both attitudinal and cognitive data")
	assert.Equal(t, 1, rec.DomainCount())
}

func TestAnalyzeBatchGradeSummary(t *testing.T) {
	svc := NewAnalysisService(assessment.DefaultThresholds(), nil)

	sources := BatchSources{
		Attitudinal: []ingest.Row{
			{"Student ID": "S001", "Grade": "10", "Self-regard as a learner": "20", "General work ethic": "25"},
			{"Student ID": "S002", "Grade": "10", "Self-regard as a learner": "70"},
			{"Student ID": "S003", "Grade": "11", "Self-regard as a learner": "60"},
		},
	}
	result, err := svc.AnalyzeBatch(context.Background(), sources)
	require.NoError(t, err)
	require.Len(t, result.Records, 3)

	g10 := result.GradeSummary["10"]
	assert.Equal(t, 2, g10.Students)
	assert.Equal(t, 1, g10.AtRiskStudents)
	assert.InDelta(t, 1.0, g10.AvgRiskAreas, 1e-9)

	g11 := result.GradeSummary["11"]
	assert.Equal(t, 1, g11.Students)
	assert.Equal(t, 0, g11.AtRiskStudents)
}

func TestAnalyzeBatchUngradedBucket(t *testing.T) {
	svc := NewAnalysisService(assessment.DefaultThresholds(), nil)

	sources := BatchSources{
		Cognitive: []ingest.Row{{"Student ID": "S001", "Verbal Stanine": "5"}},
	}
	result, err := svc.AnalyzeBatch(context.Background(), sources)
	require.NoError(t, err)

	_, ok := result.GradeSummary["Ungraded"]
	assert.False(t, ok, "unresolved grades fall back to the Unknown identity, not empty")
	_, ok = result.GradeSummary["Unknown"]
	assert.True(t, ok)
}

// stripGenerated zeroes the per-run identifiers and recording time so two
// batch results can be compared on analytical content alone.
func stripGenerated(records []analysis.AnalyzedRecord) []analysis.AnalyzedRecord {
	out := make([]analysis.AnalyzedRecord, len(records))
	for i, rec := range records {
		rec.SnapshotID = ""
		rec.RecordedAt = core.Timestamp{}
		out[i] = rec
	}
	return out
}

func TestAnalyzeBatchDeterministicAcrossRuns(t *testing.T) {
	svc := NewAnalysisService(assessment.DefaultThresholds(), nil)

	gen := testkit.NewSampleGenerator(testkit.DefaultSampleConfig())
	sources := BatchSources{
		Attitudinal: gen.Attitudinal(),
		Cognitive:   gen.Cognitive(),
		Academic:    gen.Academic(),
	}

	first, err := svc.AnalyzeBatch(context.Background(), sources)
	require.NoError(t, err)
	second, err := svc.AnalyzeBatch(context.Background(), sources)
	require.NoError(t, err)

	assert.NotEqual(t, first.BatchID, second.BatchID)
	assert.Equal(t, stripGenerated(first.Records), stripGenerated(second.Records))
	assert.Equal(t, first.GradeSummary, second.GradeSummary)
}

func TestAnalyzeBatchSampleDataAtScale(t *testing.T) {
	repo := memory.NewSnapshotRepository()
	svc := NewAnalysisService(assessment.DefaultThresholds(), repo)

	gen := testkit.NewSampleGenerator(testkit.DefaultSampleConfig())
	sources := BatchSources{
		Attitudinal: gen.Attitudinal(),
		Cognitive:   gen.Cognitive(),
		Academic:    gen.Academic(),
	}

	result, err := svc.AnalyzeBatch(context.Background(), sources)
	require.NoError(t, err)
	assert.Empty(t, result.Failures)
	assert.Len(t, result.Records, len(gen.StudentIDs()))

	for _, rec := range result.Records {
		assert.Equal(t, 3, rec.DomainCount())
	}

	students, err := repo.ListStudents(context.Background())
	require.NoError(t, err)
	assert.Len(t, students, len(gen.StudentIDs()))
}

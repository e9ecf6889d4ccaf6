package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edusight/domain/assessment"
	"edusight/domain/core"
)

func attRecord(id, name string) assessment.StudentRecord {
	return assessment.StudentRecord{
		StudentID:   core.StudentID(id),
		Name:        name,
		Grade:       "10",
		Section:     "A",
		Attitudinal: map[core.FactorKey]float64{assessment.FactorSelfRegard: 60},
	}
}

func cogRecord(id, name string) assessment.StudentRecord {
	return assessment.StudentRecord{
		StudentID: core.StudentID(id),
		Name:      name,
		Grade:     "Unknown",
		Section:   "Unknown",
		Cognitive: &assessment.CognitiveScores{
			Scale:  assessment.ScaleStanine,
			Scores: map[core.FactorKey]float64{assessment.DomainVerbal: 5},
		},
	}
}

func TestMergeCombinesSourcesPerStudent(t *testing.T) {
	merged := Merge(
		[]assessment.StudentRecord{attRecord("S001", "Amina Khan")},
		[]assessment.StudentRecord{cogRecord("S001", "Unknown")},
		[]assessment.StudentRecord{{
			StudentID: "S001",
			Name:      "Unknown",
			Academic:  map[string]assessment.SubjectScore{"English": {Stanine: 6}},
		}},
	)

	require.Len(t, merged, 1)
	rec := merged[0]
	assert.Equal(t, "Amina Khan", rec.Name)
	assert.Equal(t, "10", rec.Grade)
	assert.NotNil(t, rec.Attitudinal)
	assert.NotNil(t, rec.Cognitive)
	assert.NotNil(t, rec.Academic)
}

func TestMergeUnknownNeverDisplacesResolvedIdentity(t *testing.T) {
	merged := Merge(
		[]assessment.StudentRecord{attRecord("S001", "Resolved Name")},
		[]assessment.StudentRecord{cogRecord("S001", "Unknown")},
		nil,
	)

	require.Len(t, merged, 1)
	assert.Equal(t, "Resolved Name", merged[0].Name)
	assert.Equal(t, "10", merged[0].Grade)
	assert.Equal(t, "A", merged[0].Section)
}

func TestMergeLaterSourceFillsUnresolvedIdentity(t *testing.T) {
	first := attRecord("S001", "Unknown")
	first.Grade = "Unknown"
	first.Section = "Unknown"

	merged := Merge(
		[]assessment.StudentRecord{first},
		[]assessment.StudentRecord{{
			StudentID: "S001",
			Name:      "From Cognitive",
			Grade:     "11",
			Section:   "B",
			Cognitive: &assessment.CognitiveScores{Scale: assessment.ScaleStanine},
		}},
		nil,
	)

	require.Len(t, merged, 1)
	assert.Equal(t, "From Cognitive", merged[0].Name)
	assert.Equal(t, "11", merged[0].Grade)
	assert.Equal(t, "B", merged[0].Section)
}

func TestMergeLastRowWinsWithinSource(t *testing.T) {
	a := attRecord("S001", "First")
	a.Attitudinal[assessment.FactorSelfRegard] = 30
	b := attRecord("S001", "Second")
	b.Attitudinal = map[core.FactorKey]float64{assessment.FactorSelfRegard: 70}

	merged := Merge([]assessment.StudentRecord{a, b}, nil, nil)

	require.Len(t, merged, 1)
	assert.Equal(t, 70.0, merged[0].Attitudinal[assessment.FactorSelfRegard])
}

func TestMergeIdempotentForRepeatedRows(t *testing.T) {
	att := attRecord("S001", "Amina Khan")
	cog := cogRecord("S001", "Unknown")

	once := Merge(
		[]assessment.StudentRecord{att},
		[]assessment.StudentRecord{cog},
		nil,
	)
	twice := Merge(
		[]assessment.StudentRecord{att, att},
		[]assessment.StudentRecord{cog, cog},
		nil,
	)

	require.Len(t, once, 1)
	require.Len(t, twice, 1)
	assert.Equal(t, once[0], twice[0])
}

func TestMergeOutputSortedByStudentID(t *testing.T) {
	merged := Merge(
		[]assessment.StudentRecord{
			attRecord("S300", "C"),
			attRecord("S100", "A"),
			attRecord("S200", "B"),
		},
		nil, nil,
	)

	require.Len(t, merged, 3)
	assert.Equal(t, core.StudentID("S100"), merged[0].StudentID)
	assert.Equal(t, core.StudentID("S200"), merged[1].StudentID)
	assert.Equal(t, core.StudentID("S300"), merged[2].StudentID)
}

func TestMergeSingleSourceStudents(t *testing.T) {
	merged := Merge(
		[]assessment.StudentRecord{attRecord("S001", "Survey Only")},
		[]assessment.StudentRecord{cogRecord("S002", "Ability Only")},
		nil,
	)

	require.Len(t, merged, 2)
	assert.Nil(t, merged[0].Cognitive)
	assert.Nil(t, merged[1].Attitudinal)
}

package interventions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edusight/domain/analysis"
	"edusight/domain/assessment"
	"edusight/domain/core"
)

func riskFactor(key core.FactorKey, value float64) analysis.ScoredItem {
	return analysis.ScoredItem{
		Key:     key,
		Name:    assessment.DisplayName(key),
		Value:   value,
		Level:   analysis.LevelAtRisk,
		PNumber: assessment.PNumbers[key],
	}
}

func weakDomain(key core.FactorKey, stanine float64) analysis.ScoredItem {
	return analysis.ScoredItem{
		Key:   key,
		Name:  assessment.DisplayName(key),
		Value: stanine,
		Level: analysis.LevelWeakness,
	}
}

func domainWithRisks(items ...analysis.ScoredItem) analysis.DomainAnalysis {
	return analysis.DomainAnalysis{Available: true, Items: items, RiskAreas: items}
}

func titles(list []analysis.Intervention) []string {
	out := make([]string, 0, len(list))
	for _, iv := range list {
		out = append(out, iv.Title)
	}
	return out
}

func TestGeneratePGroupMapping(t *testing.T) {
	e := NewEngine(assessment.DefaultThresholds())

	tests := []struct {
		factor core.FactorKey
		title  string
		domain string
	}{
		{assessment.FactorSelfRegard, "Self-Esteem Building", DomainEmotional},       // P3
		{assessment.FactorPreparedness, "Self-Esteem Building", DomainEmotional},     // P7
		{assessment.FactorAttitudeTeachers, "Organization and Time Management Coaching", DomainBehavioral}, // P4
		{assessment.FactorWorkEthic, "Organization and Time Management Coaching", DomainBehavioral},        // P6
		{assessment.FactorCurriculumDemand, "Engagement and Attendance Mentoring", DomainBehavioral},       // P5
		{assessment.FactorEmotionalControl, "Engagement and Attendance Mentoring", DomainBehavioral},       // P8
		{assessment.FactorPerceivedLearning, "Factor Support Plan", DomainEmotional}, // P1 falls back
		{assessment.FactorSocialConfidence, "Factor Support Plan", DomainEmotional},  // P9 falls back
	}
	for _, tt := range tests {
		out := e.Generate(domainWithRisks(riskFactor(tt.factor, 30)),
			analysis.DomainAnalysis{}, analysis.DomainAnalysis{}, analysis.PerformanceComparison{}, false)
		require.Len(t, out, 1, "factor %s", tt.factor)
		assert.Equal(t, tt.title, out[0].Title, "factor %s", tt.factor)
		assert.Equal(t, tt.domain, out[0].Domain, "factor %s", tt.factor)
		assert.Equal(t, assessment.DisplayName(tt.factor), out[0].Factor)
	}
}

func TestGenerateDeduplicatesSharedTemplates(t *testing.T) {
	e := NewEngine(assessment.DefaultThresholds())

	// P3 and P7 share the self-esteem blueprint; only the first survives.
	out := e.Generate(
		domainWithRisks(
			riskFactor(assessment.FactorSelfRegard, 25),
			riskFactor(assessment.FactorPreparedness, 30),
		),
		analysis.DomainAnalysis{}, analysis.DomainAnalysis{}, analysis.PerformanceComparison{}, false)

	require.Len(t, out, 1)
	assert.Equal(t, "Self-Esteem Building", out[0].Title)
	assert.Equal(t, "Self Regard", out[0].Factor, "first occurrence wins")
}

func TestGenerateCognitiveWeaknesses(t *testing.T) {
	e := NewEngine(assessment.DefaultThresholds())

	out := e.Generate(
		analysis.DomainAnalysis{},
		domainWithRisks(
			weakDomain(assessment.DomainVerbal, 2),
			weakDomain(assessment.DomainQuantitative, 3),
		),
		analysis.DomainAnalysis{}, analysis.PerformanceComparison{}, false)

	got := titles(out)
	assert.Contains(t, got, "Verbal Skills Development")
	assert.Contains(t, got, "Numeracy Intervention")
	assert.Contains(t, got, "Reading Comprehension Boosters",
		"verbal weakness also earns the reading booster")
	assert.Len(t, out, 3)
}

func TestGenerateFragileLearnerHolisticPair(t *testing.T) {
	e := NewEngine(assessment.DefaultThresholds())

	out := e.Generate(analysis.DomainAnalysis{}, analysis.DomainAnalysis{},
		analysis.DomainAnalysis{}, analysis.PerformanceComparison{}, true)

	require.Len(t, out, 2)
	assert.Equal(t, "Comprehensive Learning Support", out[0].Title)
	assert.Equal(t, "Holistic Learning Support", out[1].Title)
	for _, iv := range out {
		assert.Equal(t, DomainHolistic, iv.Domain)
		assert.Equal(t, "Fragile Learner", iv.Factor)
		assert.Equal(t, analysis.PriorityHigh, iv.Priority)
	}
}

func TestGenerateAcademicTutoringAndPotentialPlans(t *testing.T) {
	e := NewEngine(assessment.DefaultThresholds())

	academic := domainWithRisks(analysis.ScoredItem{
		Key: "Mathematics", Name: "Mathematics", Value: 3, Level: analysis.LevelWeakness,
	})
	comparison := analysis.PerformanceComparison{
		Available: true,
		Subjects: map[string]analysis.SubjectComparison{
			"English": {
				AcademicStanine:  4,
				CognitiveStanine: 7,
				RelevantDomain:   "Verbal Reasoning",
				Status:           analysis.StatusUnderperforming,
			},
			"Science": {Status: analysis.StatusAsExpected},
		},
		UnderperformingCount: 1,
	}

	out := e.Generate(analysis.DomainAnalysis{}, analysis.DomainAnalysis{},
		academic, comparison, false)

	require.Len(t, out, 2)
	// Potential plan is high priority, so it ranks above the tutoring entry.
	assert.Equal(t, "English Potential Achievement Plan", out[0].Title)
	assert.Equal(t, analysis.PriorityHigh, out[0].Priority)
	assert.Equal(t, "Mathematics Targeted Tutoring", out[1].Title)
	assert.Equal(t, analysis.PriorityMedium, out[1].Priority)
}

func TestGenerateRanksByPriorityStably(t *testing.T) {
	e := NewEngine(assessment.DefaultThresholds())

	academic := domainWithRisks(analysis.ScoredItem{
		Key: "Science", Name: "Science", Value: 3, Level: analysis.LevelWeakness,
	})
	out := e.Generate(
		domainWithRisks(riskFactor(assessment.FactorWorkEthic, 30)),
		domainWithRisks(weakDomain(assessment.DomainSpatial, 2)),
		academic, analysis.PerformanceComparison{}, false)

	require.Len(t, out, 3)
	assert.Equal(t, "Organization and Time Management Coaching", out[0].Title)
	assert.Equal(t, "Spatial Skills Development", out[1].Title)
	assert.Equal(t, "Science Targeted Tutoring", out[2].Title)
	assert.Equal(t, analysis.PriorityMedium, out[2].Priority)
}

func TestGenerateEmptyAnalysesYieldNothing(t *testing.T) {
	e := NewEngine(assessment.DefaultThresholds())

	out := e.Generate(analysis.DomainAnalysis{}, analysis.DomainAnalysis{},
		analysis.DomainAnalysis{}, analysis.PerformanceComparison{}, false)
	assert.Empty(t, out)
}

package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"edusight/domain/analysis"
)

func attitudinalWithRisks(count int) analysis.DomainAnalysis {
	d := analysis.DomainAnalysis{Available: true}
	for i := 0; i < count; i++ {
		d.RiskAreas = append(d.RiskAreas, analysis.ScoredItem{Level: analysis.LevelAtRisk})
	}
	return d
}

func cognitiveWithAdequate(count int) analysis.DomainAnalysis {
	d := analysis.DomainAnalysis{Available: true}
	for i := 0; i < count; i++ {
		d.Items = append(d.Items, analysis.ScoredItem{Level: analysis.LevelAverage})
	}
	// Pad with weaknesses so the domain always has four measured items.
	for i := count; i < 4; i++ {
		d.Items = append(d.Items, analysis.ScoredItem{Level: analysis.LevelWeakness})
	}
	return d
}

func comparisonWithUnderperforming(count int) analysis.PerformanceComparison {
	return analysis.PerformanceComparison{Available: true, UnderperformingCount: count}
}

func TestClassifyFragileLearnerTruthTable(t *testing.T) {
	tests := []struct {
		name             string
		attitudinalRisks int
		adequateDomains  int
		underperforming  int
		want             bool
	}{
		{"no signals", 0, 0, 0, false},
		{"underperformance alone", 0, 0, 2, false},
		{"adequate cognition alone", 0, 4, 0, false},
		{"cognition and underperformance without attitude risk", 0, 4, 2, false},
		{"attitudinal risk alone", 2, 0, 0, false},
		{"attitudinal risk with underperformance", 2, 0, 1, true},
		{"attitudinal risk with adequate cognition", 2, 2, 0, true},
		{"all three signals", 2, 4, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyFragileLearner(
				attitudinalWithRisks(tt.attitudinalRisks),
				cognitiveWithAdequate(tt.adequateDomains),
				comparisonWithUnderperforming(tt.underperforming),
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyFragileLearnerFloors(t *testing.T) {
	// One risk area is below the floor even with every other signal present.
	assert.False(t, ClassifyFragileLearner(
		attitudinalWithRisks(1),
		cognitiveWithAdequate(4),
		comparisonWithUnderperforming(3),
	))

	// One adequate domain is below the floor; without underperformance the
	// rule cannot fire.
	assert.False(t, ClassifyFragileLearner(
		attitudinalWithRisks(3),
		cognitiveWithAdequate(1),
		analysis.PerformanceComparison{},
	))
}

func TestClassifyFragileLearnerRequiresBothAnalyses(t *testing.T) {
	risky := attitudinalWithRisks(2)
	adequate := cognitiveWithAdequate(4)
	under := comparisonWithUnderperforming(2)

	assert.False(t, ClassifyFragileLearner(analysis.DomainAnalysis{}, adequate, under))
	assert.False(t, ClassifyFragileLearner(risky, analysis.DomainAnalysis{}, under))
}

func TestClassifyFragileLearnerIgnoresUnavailableComparison(t *testing.T) {
	// Unavailable comparison contributes no underperformance signal, but the
	// cognition-plus-attitude pattern still fires.
	assert.True(t, ClassifyFragileLearner(
		attitudinalWithRisks(2),
		cognitiveWithAdequate(2),
		analysis.PerformanceComparison{},
	))
}

package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"edusight/domain/analysis"
	"edusight/domain/assessment"
	"edusight/domain/core"
	"edusight/domain/progress"
	"edusight/domain/risk"
)

func sampleRecord() *analysis.AnalyzedRecord {
	return &analysis.AnalyzedRecord{
		RecordedAt: core.NewTimestamp(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
		Student: assessment.StudentRecord{
			StudentID: "S001",
			Name:      "Amina Khan",
			Grade:     "10",
			Section:   "A",
		},
		Attitudinal: analysis.DomainAnalysis{
			Available:     true,
			OverallStatus: "At Risk",
			Items: []analysis.ScoredItem{
				{Name: "Self Regard", Value: 30, Level: analysis.LevelAtRisk},
				{Name: "Confidence in Learning", Value: 72, Level: analysis.LevelStrength},
			},
		},
		Cognitive: analysis.DomainAnalysis{
			Available: true,
			Items: []analysis.ScoredItem{
				{Name: "Verbal Reasoning", Value: 6, Level: analysis.LevelAverage},
			},
		},
		Academic: analysis.DomainAnalysis{
			Available:      true,
			Profile:        "Average",
			AverageStanine: 4.5,
			Items: []analysis.ScoredItem{
				{Name: "English", Value: 4, Level: analysis.LevelAverage},
			},
		},
		Performance: analysis.PerformanceComparison{
			Available: true,
			Subjects: map[string]analysis.SubjectComparison{
				"English": {
					AcademicStanine:  4,
					CognitiveStanine: 6,
					RelevantDomain:   "Verbal Reasoning",
					Status:           analysis.StatusUnderperforming,
				},
			},
		},
		IsFragileLearner: true,
		Interventions: []analysis.Intervention{{
			Domain:      "emotional",
			Title:       "Self-Esteem Building",
			Description: "Weekly counselor sessions.",
			Priority:    analysis.PriorityHigh,
		}},
		CompoundInterventions: []analysis.Intervention{{
			Domain:      "integrated",
			Title:       "Confidence Through Language",
			Description: "Paired program.",
			Priority:    analysis.PriorityHigh,
		}},
	}
}

func TestMarkdownFullProfile(t *testing.T) {
	g := NewGenerator()

	md := g.Markdown(sampleRecord(), nil, nil)

	assert.Contains(t, md, "# Student Profile: Amina Khan")
	assert.Contains(t, md, "**ID:** S001 | **Grade:** 10 | **Section:** A")
	assert.Contains(t, md, "**Fragile learner**")
	assert.Contains(t, md, "## Attitudinal Survey")
	assert.Contains(t, md, "**Overall status:** At Risk")
	assert.Contains(t, md, "| Self Regard | 30 (percentile) | at-risk |")
	assert.Contains(t, md, "**Profile:** Average (average stanine 4.5)")
	assert.Contains(t, md, "## Potential vs Performance")
	assert.Contains(t, md, "| English | 4.0 | 6.0 (Verbal Reasoning) | Underperforming |")
	assert.Contains(t, md, "## Recommended Interventions")
	assert.Contains(t, md, "**Self-Esteem Building** (emotional, high priority)")
	assert.Contains(t, md, "**Confidence Through Language** (compound, high priority)")
	assert.NotContains(t, md, "## Progress")
	assert.NotContains(t, md, "## Risk Outlook")
}

func TestMarkdownFallsBackToStudentID(t *testing.T) {
	g := NewGenerator()

	rec := sampleRecord()
	rec.Student.Name = ""
	md := g.Markdown(rec, nil, nil)

	assert.Contains(t, md, "# Student Profile: S001")
}

func TestMarkdownUnavailableDomain(t *testing.T) {
	g := NewGenerator()

	rec := sampleRecord()
	rec.Cognitive = analysis.DomainAnalysis{}
	rec.Performance = analysis.PerformanceComparison{}
	md := g.Markdown(rec, nil, nil)

	assert.Contains(t, md, "## Cognitive Abilities\n\nNo data available for this domain.")
	assert.NotContains(t, md, "## Potential vs Performance")
}

func TestMarkdownProgressSections(t *testing.T) {
	g := NewGenerator()

	noBaseline := &progress.Analysis{
		HasBaseline: false,
		Message:     "No previous assessment data available for comparison.",
	}
	md := g.Markdown(sampleRecord(), noBaseline, nil)
	assert.Contains(t, md, "## Progress")
	assert.Contains(t, md, "No previous assessment data available for comparison.")

	withBaseline := &progress.Analysis{
		HasBaseline: true,
		Summary:     "The student has shown overall improvement across assessment areas.",
		ImprovementAreas: []progress.AreaChange{
			{Factor: "Self Regard", Detail: "+8.0 percentile points"},
		},
		ConcernAreas: []progress.AreaChange{
			{Factor: "English", Detail: "-1.0 stanine points"},
		},
	}
	md = g.Markdown(sampleRecord(), withBaseline, nil)
	assert.Contains(t, md, "overall improvement")
	assert.Contains(t, md, "- Self Regard: +8.0 percentile points")
	assert.Contains(t, md, "- English: -1.0 stanine points")
}

func TestMarkdownPredictionSection(t *testing.T) {
	g := NewGenerator()

	pred := &risk.Prediction{
		Score:              0.63,
		Level:              risk.LevelMedium,
		TimeToIntervention: "soon",
		Confidence:         0.8,
		RiskFactors: []risk.Factor{
			{Details: "Student is classified as a fragile learner"},
		},
		EarlyIndicators: []risk.EarlyIndicator{
			{Indicator: "Score Volatility", Details: "Self Regard varies 15% across 3 assessments"},
		},
		Recommendations: []risk.Recommendation{
			{Title: "Coordinated Intervention Plan", Priority: "medium", Description: "Develop a plan.", Timeframe: "Within 2 weeks"},
		},
	}
	md := g.Markdown(sampleRecord(), nil, pred)

	assert.Contains(t, md, "## Risk Outlook")
	assert.Contains(t, md, "**Risk score:** 0.63 (medium) | **Intervention timeframe:** soon | **Confidence:** 80%")
	assert.Contains(t, md, "- Student is classified as a fragile learner")
	assert.Contains(t, md, "- Score Volatility: Self Regard varies 15% across 3 assessments")
	assert.Contains(t, md, "**Coordinated Intervention Plan** (medium)")
}

func TestHTMLRendersMarkdown(t *testing.T) {
	g := NewGenerator()

	html := string(g.HTML("# Title\n\n| A | B |\n|---|---|\n| 1 | 2 |\n"))

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "Title")
	assert.Contains(t, html, "<table>")
}

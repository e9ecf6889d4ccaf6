package analyzer

import (
	"sort"

	"github.com/montanaflynn/stats"

	"edusight/domain/analysis"
	"edusight/domain/assessment"
	"edusight/domain/core"
	"edusight/internal/scales"
)

// Academic profile labels and their average-stanine bounds.
const (
	ProfileLow     = "Low"
	ProfileAverage = "Average"
	ProfileHigh    = "High"

	profileLowMax  = 3.5
	profileHighMin = 6.5
)

// Academic classifies subject performance of a record.
type Academic struct {
	thresholds assessment.Thresholds
	converter  *scales.Converter
}

// NewAcademic creates an academic analyzer.
func NewAcademic(t assessment.Thresholds) *Academic {
	return &Academic{thresholds: t, converter: scales.NewConverter(t)}
}

// Analyze classifies every subject with a usable score. The stanine is the
// classification value: a reported stanine wins, then a percentile converted
// to its band, then the raw mark read as a percentile equivalent. Subjects
// with no usable score at all are "not measured" and skipped.
func (a *Academic) Analyze(rec *assessment.StudentRecord) analysis.DomainAnalysis {
	if !rec.HasAcademic() {
		return analysis.DomainAnalysis{Available: false}
	}

	var items []analysis.ScoredItem
	for subject, score := range rec.Academic {
		stanine, ok := a.subjectStanine(score)
		if !ok {
			continue
		}
		items = append(items, analysis.ScoredItem{
			Key:   core.FactorKey(subject),
			Name:  subject,
			Value: stanine,
			Level: a.converter.LevelFromStanine(stanine),
			Mark:  score.Mark,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Value != items[j].Value {
			return items[i].Value < items[j].Value
		}
		return items[i].Name < items[j].Name
	})

	result := analysis.DomainAnalysis{Available: true, Items: items}
	values := make([]float64, 0, len(items))
	for _, item := range items {
		values = append(values, item.Value)
		switch item.Level {
		case analysis.LevelWeakness:
			result.RiskAreas = append(result.RiskAreas, item)
		case analysis.LevelStrength:
			result.StrengthAreas = append(result.StrengthAreas, item)
		}
	}
	if len(values) > 0 {
		avg, err := stats.Mean(values)
		if err == nil {
			result.AverageStanine = avg
			result.Profile = a.profile(avg)
		}
	}
	return result
}

func (a *Academic) subjectStanine(score assessment.SubjectScore) (float64, bool) {
	switch {
	case score.Stanine > 0:
		return score.Stanine, true
	case score.Percentile > 0:
		return float64(a.converter.PercentileToStanine(score.Percentile)), true
	case score.Mark > 0:
		return float64(a.converter.PercentileToStanine(score.Mark)), true
	default:
		return 0, false
	}
}

func (a *Academic) profile(avg float64) string {
	switch {
	case avg <= profileLowMax:
		return ProfileLow
	case avg >= profileHighMin:
		return ProfileHigh
	default:
		return ProfileAverage
	}
}

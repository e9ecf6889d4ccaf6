// Package analyzer classifies merged student records into per-domain risk
// profiles and derives the cross-domain fragile-learner determination. Each
// analyzer is a pure function of the record and the injected thresholds.
package analyzer

import (
	"sort"

	"edusight/domain/analysis"
	"edusight/domain/assessment"
	"edusight/internal/scales"
)

// Attitudinal status labels.
const (
	AttitudinalAtRisk   = "At Risk"
	AttitudinalPositive = "Positive"
	AttitudinalBalanced = "Balanced"
)

// Attitudinal classifies the nine survey factors of a record.
type Attitudinal struct {
	thresholds assessment.Thresholds
	converter  *scales.Converter
}

// NewAttitudinal creates an attitudinal analyzer.
func NewAttitudinal(t assessment.Thresholds) *Attitudinal {
	return &Attitudinal{thresholds: t, converter: scales.NewConverter(t)}
}

// Analyze classifies every measured factor of the record. Zero-valued factors
// are "not measured" and skipped. Items are sorted ascending by value so risk
// areas surface first.
func (a *Attitudinal) Analyze(rec *assessment.StudentRecord) analysis.DomainAnalysis {
	if !rec.HasAttitudinal() {
		return analysis.DomainAnalysis{Available: false}
	}

	var items []analysis.ScoredItem
	for _, key := range assessment.AttitudinalFactors {
		value := rec.Attitudinal[key]
		if value == 0 {
			continue
		}
		items = append(items, analysis.ScoredItem{
			Key:         key,
			Name:        assessment.DisplayName(key),
			Value:       value,
			Level:       a.converter.LevelFromPercentile(value),
			PNumber:     assessment.PNumbers[key],
			Description: assessment.Descriptions[key],
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Value < items[j].Value })

	result := analysis.DomainAnalysis{Available: true, Items: items}
	for _, item := range items {
		switch item.Level {
		case analysis.LevelAtRisk:
			result.RiskAreas = append(result.RiskAreas, item)
		case analysis.LevelStrength:
			result.StrengthAreas = append(result.StrengthAreas, item)
		}
	}
	result.OverallStatus = a.overallStatus(len(result.RiskAreas), len(result.StrengthAreas))
	return result
}

func (a *Attitudinal) overallStatus(risks, strengths int) string {
	switch {
	case risks >= 2:
		return AttitudinalAtRisk
	case strengths > risks && strengths >= 3:
		return AttitudinalPositive
	default:
		return AttitudinalBalanced
	}
}

package analyzer

import (
	"sort"

	"edusight/domain/analysis"
	"edusight/domain/assessment"
	"edusight/internal/scales"
)

// fragileCandidateWeaknesses is the number of weak domains at which a
// cognitive profile flags the student as a fragile-learner candidate.
const fragileCandidateWeaknesses = 2

// Cognitive classifies the four ability domains of a record.
type Cognitive struct {
	thresholds assessment.Thresholds
	converter  *scales.Converter
}

// NewCognitive creates a cognitive analyzer.
func NewCognitive(t assessment.Thresholds) *Cognitive {
	return &Cognitive{thresholds: t, converter: scales.NewConverter(t)}
}

// Analyze classifies every measured domain. SAS-scaled sources are converted
// to stanines first so all downstream consumers see one scale. Zero scores
// are "not measured" and skipped.
func (c *Cognitive) Analyze(rec *assessment.StudentRecord) analysis.DomainAnalysis {
	if !rec.HasCognitive() {
		return analysis.DomainAnalysis{Available: false}
	}

	var items []analysis.ScoredItem
	for _, key := range assessment.CognitiveDomains {
		raw := rec.Cognitive.Scores[key]
		if raw == 0 {
			continue
		}
		stanine := raw
		if rec.Cognitive.Scale == assessment.ScaleSAS {
			stanine = float64(c.converter.SASToStanine(raw))
		}
		items = append(items, analysis.ScoredItem{
			Key:         key,
			Name:        assessment.DisplayName(key),
			Value:       stanine,
			Level:       c.converter.LevelFromStanine(stanine),
			Description: assessment.Descriptions[key],
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Value < items[j].Value })

	result := analysis.DomainAnalysis{Available: true, Items: items}
	for _, item := range items {
		switch item.Level {
		case analysis.LevelWeakness:
			result.RiskAreas = append(result.RiskAreas, item)
		case analysis.LevelStrength:
			result.StrengthAreas = append(result.StrengthAreas, item)
		}
	}
	result.FragileCandidate = len(result.RiskAreas) >= fragileCandidateWeaknesses
	return result
}

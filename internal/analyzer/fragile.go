package analyzer

import (
	"edusight/domain/analysis"
)

// attitudinalRiskFloor is the number of at-risk survey factors required
// before the fragile-learner rule can fire. A single risk factor never
// triggers the classification on its own.
const attitudinalRiskFloor = 2

// adequateCognitionFloor is the number of average-or-better cognitive domains
// required to count cognition as adequate.
const adequateCognitionFloor = 2

// ClassifyFragileLearner applies the triangulation rule: a fragile learner
// shows adequate-or-better ability alongside attitudinal risk, or attitudinal
// risk alongside underperformance relative to potential. It is deliberately an
// OR of two patterns, not an AND of all three signals. Both the attitudinal
// and cognitive analyses must be available; otherwise the answer is false.
func ClassifyFragileLearner(attitudinal, cognitive analysis.DomainAnalysis, comparison analysis.PerformanceComparison) bool {
	if !attitudinal.Available || !cognitive.Available {
		return false
	}

	hasAttitudinalRisk := len(attitudinal.RiskAreas) >= attitudinalRiskFloor

	adequate := 0
	for _, item := range cognitive.Items {
		if item.Level == analysis.LevelAverage || item.Level == analysis.LevelStrength {
			adequate++
		}
	}
	hasAdequateCognition := adequate >= adequateCognitionFloor

	showsUnderperformance := comparison.Available && comparison.UnderperformingCount > 0

	return (hasAdequateCognition && hasAttitudinalRisk) || (hasAttitudinalRisk && showsUnderperformance)
}

package predictor

import (
	"fmt"

	"edusight/domain/risk"
)

// recommend selects preventive actions from fixed templates keyed on risk
// level, the top risk factors, and the overall trend direction.
func (p *Predictor) recommend(level risk.Level, factors []risk.Factor, trends risk.TrendAnalysis) []risk.Recommendation {
	var recs []risk.Recommendation

	switch level {
	case risk.LevelHigh:
		recs = append(recs, risk.Recommendation{
			Priority:    "high",
			Type:        "intervention",
			Title:       "Immediate Comprehensive Intervention",
			Description: "Implement a multi-faceted intervention plan addressing all risk areas immediately. Schedule weekly progress monitoring.",
			Timeframe:   "Within 1 week",
		})
		for _, factor := range topFactors(factors, 2) {
			recs = append(recs, risk.Recommendation{
				Priority:    "high",
				Type:        "targeted",
				Title:       fmt.Sprintf("Address %s", factor.Factor),
				Description: fmt.Sprintf("Implement targeted intervention for %s which is a significant risk area.", factor.Factor),
				Timeframe:   "Within 2 weeks",
			})
		}

	case risk.LevelMedium:
		recs = append(recs, risk.Recommendation{
			Priority:    "medium",
			Type:        "intervention",
			Title:       "Coordinated Intervention Plan",
			Description: "Develop an intervention plan targeting the identified risk areas. Schedule bi-weekly progress monitoring.",
			Timeframe:   "Within 2 weeks",
		})
		for _, factor := range topFactors(factors, 1) {
			recs = append(recs, risk.Recommendation{
				Priority:    "medium",
				Type:        "targeted",
				Title:       fmt.Sprintf("Address %s", factor.Factor),
				Description: fmt.Sprintf("Implement targeted support for %s which shows elevated risk.", factor.Factor),
				Timeframe:   "Within 3 weeks",
			})
		}

	case risk.LevelBorderline:
		recs = append(recs, risk.Recommendation{
			Priority:    "medium",
			Type:        "monitoring",
			Title:       "Enhanced Monitoring Plan",
			Description: "Implement closer monitoring of the identified early warning indicators. Schedule monthly check-ins.",
			Timeframe:   "Within 1 month",
		})

	default:
		recs = append(recs, risk.Recommendation{
			Priority:    "low",
			Type:        "maintenance",
			Title:       "Maintain Current Support",
			Description: "Continue current support strategies and regular monitoring to maintain positive trajectory.",
			Timeframe:   "Ongoing",
		})
	}

	if trends.Available && trends.OverallDirection == risk.TrendDeclining {
		recs = append(recs, risk.Recommendation{
			Priority:    "medium",
			Type:        "monitoring",
			Title:       "Review Declining Trajectory",
			Description: "Assessment scores are trending downward. Review recent changes in circumstances and adjust support before the next assessment cycle.",
			Timeframe:   "Within 1 month",
		})
	}

	return recs
}

// topFactors returns the first n factors; the slice is already sorted by
// weighted risk descending.
func topFactors(factors []risk.Factor, n int) []risk.Factor {
	if len(factors) < n {
		n = len(factors)
	}
	return factors[:n]
}

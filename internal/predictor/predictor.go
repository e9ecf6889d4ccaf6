// Package predictor computes a forward-looking risk profile for one student:
// a weighted composite score over current risk areas, early-warning indicators
// below the formal risk thresholds, least-squares trends over the snapshot
// history, and templated preventive recommendations. Every prediction is a
// pure function of the snapshots handed in; nothing persists between calls.
package predictor

import (
	"fmt"
	"sort"

	"edusight/domain/analysis"
	"edusight/domain/assessment"
	"edusight/domain/risk"
)

// Weighting of present versus emerging risk in the composite score.
const (
	currentRiskWeight = 0.7
	earlyRiskWeight   = 0.3
)

const (
	baseConfidence       = 0.5
	domainConfidence     = 0.1
	historyConfidence    = 0.05
	historyConfidenceCap = 0.2
	maxConfidence        = 0.95
)

// Predictor runs risk inference against an injected threshold policy.
type Predictor struct {
	thresholds assessment.Thresholds
}

func New(thresholds assessment.Thresholds) *Predictor {
	return &Predictor{thresholds: thresholds}
}

// Predict builds the full risk prediction for a student. History holds prior
// snapshots in any order; the current snapshot must not be among them.
func (p *Predictor) Predict(current *analysis.AnalyzedRecord, history []analysis.AnalyzedRecord) risk.Prediction {
	trends := p.analyzeTrends(current, history)

	factors, currentScore := p.currentRiskFactors(current)
	indicators, earlyScore := p.earlyWarnings(current, history, trends)

	score := currentScore*currentRiskWeight + earlyScore*earlyRiskWeight
	level, timeframe := p.band(score)

	return risk.Prediction{
		Score:              score,
		Level:              level,
		RiskFactors:        factors,
		EarlyIndicators:    indicators,
		Trends:             trends,
		TimeToIntervention: timeframe,
		Confidence:         p.confidence(current, history),
		Recommendations:    p.recommend(level, factors, trends),
	}
}

// currentRiskFactors converts every risk area of the snapshot into a weighted
// contribution and averages them. Normalization: attitudinal risk grows as
// the percentile falls below the risk threshold; stanine risk grows as the
// stanine falls below the average band.
func (p *Predictor) currentRiskFactors(current *analysis.AnalyzedRecord) ([]risk.Factor, float64) {
	var factors []risk.Factor
	total := 0.0

	if current.Attitudinal.Available {
		for _, area := range current.Attitudinal.RiskAreas {
			level := attitudinalRisk(area.Value, p.thresholds.AttitudinalRisk)
			weighted := level * weightFor(area.Key)
			factors = append(factors, risk.Factor{
				Domain:       "attitudinal",
				Factor:       area.Name,
				RiskLevel:    level,
				WeightedRisk: weighted,
				Details:      fmt.Sprintf("%s at %.0fth percentile (below risk threshold)", area.Name, area.Value),
			})
			total += weighted
		}
	}

	if current.Cognitive.Available {
		for _, area := range current.Cognitive.RiskAreas {
			level := stanineRisk(area.Value)
			weighted := level * weightFor(area.Key)
			factors = append(factors, risk.Factor{
				Domain:       "cognitive",
				Factor:       area.Name,
				RiskLevel:    level,
				WeightedRisk: weighted,
				Details:      fmt.Sprintf("%s at stanine %.0f (below average)", area.Name, area.Value),
			})
			total += weighted
		}

		if current.IsFragileLearner {
			weighted := 1.0 * fragileLearnerWeight
			factors = append(factors, risk.Factor{
				Domain:       "cognitive",
				Factor:       "Fragile Learner",
				RiskLevel:    1.0,
				WeightedRisk: weighted,
				Details:      "Student is classified as a fragile learner",
			})
			total += weighted
		}
	}

	if current.Academic.Available {
		for _, area := range current.Academic.RiskAreas {
			level := stanineRisk(area.Value)
			weighted := level * academicWeight
			factors = append(factors, risk.Factor{
				Domain:       "academic",
				Factor:       area.Name,
				RiskLevel:    level,
				WeightedRisk: weighted,
				Details:      fmt.Sprintf("%s at stanine %.0f (below average)", area.Name, area.Value),
			})
			total += weighted
		}
	}

	sort.SliceStable(factors, func(i, j int) bool {
		if factors[i].WeightedRisk != factors[j].WeightedRisk {
			return factors[i].WeightedRisk > factors[j].WeightedRisk
		}
		return factors[i].Factor < factors[j].Factor
	})

	if len(factors) == 0 {
		return nil, 0
	}
	return factors, total / float64(len(factors))
}

// attitudinalRisk normalizes a percentile below the risk threshold into [0,1].
func attitudinalRisk(percentile, threshold float64) float64 {
	if threshold <= 0 {
		return 0
	}
	r := (threshold - percentile) / threshold
	if r < 0 {
		return 0
	}
	return r
}

// stanineRisk normalizes a weak stanine into [0,1]. A zero stanine is the
// absent sentinel and contributes nothing.
func stanineRisk(stanine float64) float64 {
	if stanine <= 0 {
		return 0
	}
	r := (4 - stanine) / 3
	if r < 0 {
		return 0
	}
	return r
}

// band maps a composite score to its level and intervention timeframe.
func (p *Predictor) band(score float64) (risk.Level, string) {
	switch {
	case score >= p.thresholds.RiskHigh:
		return risk.LevelHigh, "urgent"
	case score >= p.thresholds.RiskMedium:
		return risk.LevelMedium, "soon"
	case score >= p.thresholds.RiskBorderline:
		return risk.LevelBorderline, "monitor"
	default:
		return risk.LevelLow, "not urgent"
	}
}

// confidence grows with data completeness and history length, capped below
// certainty.
func (p *Predictor) confidence(current *analysis.AnalyzedRecord, history []analysis.AnalyzedRecord) float64 {
	c := baseConfidence + domainConfidence*float64(current.DomainCount())

	if len(history) > 0 {
		h := historyConfidence * float64(len(history))
		if h > historyConfidenceCap {
			h = historyConfidenceCap
		}
		c += h
	}

	if c > maxConfidence {
		return maxConfidence
	}
	return c
}

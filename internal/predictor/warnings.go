package predictor

import (
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"

	"edusight/domain/analysis"
	"edusight/domain/assessment"
	"edusight/domain/core"
	"edusight/domain/risk"
)

// Secondary warning cutoffs for factors approaching the formal risk
// threshold, with the divisor that scales distance-from-cutoff into a
// warning level.
var preRiskBands = []struct {
	key       core.FactorKey
	indicator string
	cutoff    float64
	divisor   float64
}{
	{assessment.FactorSelfRegard, "Self-Regard Approaching Risk", 50, 10},
	{assessment.FactorWorkEthic, "Work Ethic Approaching Risk", 55, 15},
	{assessment.FactorEmotionalControl, "Emotional Control Approaching Risk", 50, 10},
}

const (
	// Coefficient of variation (percent) beyond which a factor's history
	// counts as volatile.
	volatilityThreshold = 10
	minVolatilityPoints = 3

	// Gap of one stanine: below the underperformance threshold but worth
	// surfacing.
	emergingGapStanines = 1

	combinedPatternLevel = 0.5

	// Stanine bands for the combined patterns.
	borderlineCognitionCeiling = 4.5
	goodCognitionFloor         = 5
)

// earlyWarnings surfaces risk that has not yet crossed the formal thresholds:
// near-threshold attitudinal factors, one-stanine potential gaps, volatile
// score histories, and two fixed cross-domain patterns. Returns the
// indicators and their average level.
func (p *Predictor) earlyWarnings(current *analysis.AnalyzedRecord, history []analysis.AnalyzedRecord, trends risk.TrendAnalysis) ([]risk.EarlyIndicator, float64) {
	var indicators []risk.EarlyIndicator
	total := 0.0
	add := func(ind risk.EarlyIndicator) {
		indicators = append(indicators, ind)
		total += ind.Level
	}

	if current.Attitudinal.Available {
		for _, item := range current.Attitudinal.Items {
			for _, band := range preRiskBands {
				if item.Key != band.key {
					continue
				}
				if item.Value > p.thresholds.AttitudinalRisk && item.Value <= band.cutoff {
					add(risk.EarlyIndicator{
						Domain:    "attitudinal",
						Indicator: band.indicator,
						Level:     (band.cutoff - item.Value) / band.divisor,
						Details:   fmt.Sprintf("%s at %.0fth percentile, approaching risk threshold", item.Name, item.Value),
					})
				}
			}
		}
	}

	if current.Performance.Available {
		for _, subject := range sortedSubjects(current.Performance.Subjects) {
			cmp := current.Performance.Subjects[subject]
			gap := cmp.CognitiveStanine - cmp.AcademicStanine
			if gap >= emergingGapStanines && gap < p.thresholds.PotentialGap {
				add(risk.EarlyIndicator{
					Domain:    "academic",
					Indicator: "Emerging Potential Gap",
					Level:     gap / p.thresholds.PotentialGap,
					Details:   fmt.Sprintf("%s is %.0f stanine below cognitive potential", subject, gap),
				})
			}
		}
	}

	for _, v := range p.volatility(current, history) {
		add(v)
	}

	for _, c := range p.combinedPatterns(current, trends) {
		add(c)
	}

	if len(indicators) == 0 {
		return nil, 0
	}
	return indicators, total / float64(len(indicators))
}

// volatility flags attitudinal factors whose history fluctuates beyond the
// volatility threshold, measured as coefficient of variation over at least
// three points.
func (p *Predictor) volatility(current *analysis.AnalyzedRecord, history []analysis.AnalyzedRecord) []risk.EarlyIndicator {
	if len(history)+1 < minVolatilityPoints {
		return nil
	}

	values := map[string][]float64{}
	snapshots := append(append([]analysis.AnalyzedRecord{}, history...), *current)
	for _, snap := range snapshots {
		if !snap.Attitudinal.Available {
			continue
		}
		for _, item := range snap.Attitudinal.Items {
			if item.Value > 0 {
				values[item.Name] = append(values[item.Name], item.Value)
			}
		}
	}

	var indicators []risk.EarlyIndicator
	for _, name := range sortedKeys(values) {
		points := values[name]
		if len(points) < minVolatilityPoints {
			continue
		}
		mean, err := stats.Mean(points)
		if err != nil || mean == 0 {
			continue
		}
		sd, err := stats.StandardDeviation(points)
		if err != nil {
			continue
		}
		cv := sd / mean * 100
		if cv <= volatilityThreshold {
			continue
		}
		level := (cv - volatilityThreshold) / volatilityThreshold
		if level > 1 {
			level = 1
		}
		indicators = append(indicators, risk.EarlyIndicator{
			Domain:    "attitudinal",
			Indicator: "Score Volatility",
			Level:     level,
			Details:   fmt.Sprintf("%s varies %.0f%% across %d assessments", name, cv, len(points)),
		})
	}
	return indicators
}

// combinedPatterns evaluates the two fixed cross-domain warning signatures.
func (p *Predictor) combinedPatterns(current *analysis.AnalyzedRecord, trends risk.TrendAnalysis) []risk.EarlyIndicator {
	var indicators []risk.EarlyIndicator

	attitudinalNames := make([]string, 0, len(assessment.AttitudinalFactors))
	for _, key := range assessment.AttitudinalFactors {
		attitudinalNames = append(attitudinalNames, assessment.DisplayName(key))
	}

	cognitiveAvg, cognitiveOK := averageValue(current.Cognitive)

	if cognitiveOK &&
		domainDirection(trends, attitudinalNames) == risk.TrendDeclining &&
		cognitiveAvg > p.thresholds.StanineWeakness && cognitiveAvg <= borderlineCognitionCeiling {
		indicators = append(indicators, risk.EarlyIndicator{
			Domain:    "combined",
			Indicator: "Declining Attitudes With Borderline Cognition",
			Level:     combinedPatternLevel,
			Details:   fmt.Sprintf("Attitudinal scores trending down while cognitive average sits at stanine %.1f", cognitiveAvg),
		})
	}

	if cognitiveOK && current.Academic.Available {
		academicNames := make([]string, 0, len(current.Academic.Items))
		for _, item := range current.Academic.Items {
			academicNames = append(academicNames, item.Name)
		}
		if cognitiveAvg >= goodCognitionFloor &&
			domainDirection(trends, academicNames) == risk.TrendDeclining {
			indicators = append(indicators, risk.EarlyIndicator{
				Domain:    "combined",
				Indicator: "Declining Performance Despite Cognitive Strength",
				Level:     combinedPatternLevel,
				Details:   fmt.Sprintf("Academic scores trending down despite cognitive average at stanine %.1f", cognitiveAvg),
			})
		}
	}

	return indicators
}

func sortedSubjects(m map[string]analysis.SubjectComparison) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(m map[string][]float64) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// averageValue is the mean of an available domain's non-zero item values.
func averageValue(d analysis.DomainAnalysis) (float64, bool) {
	if !d.Available {
		return 0, false
	}
	total, n := 0.0, 0
	for _, item := range d.Items {
		if item.Value > 0 {
			total += item.Value
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}

// Package scales converts between the three score representations carried by
// the assessment sources: percentiles (0-100), stanines (1-9) and standardized
// age scores (~60-140). Downstream classification depends on the exact cut
// points here, so the tables are fixed and covered by round-trip tests.
package scales

import (
	"edusight/domain/analysis"
	"edusight/domain/assessment"
)

// Neutral midpoints substituted for absent input. Every conversion is total:
// a zero or out-of-range value never fails, it lands on the midpoint.
const (
	NeutralStanine    = 5
	NeutralPercentile = 50
)

// percentileCuts are the upper percentile bounds of stanines 1-8; anything
// above the last cut is stanine 9.
var percentileCuts = [8]float64{4, 11, 23, 40, 60, 77, 89, 96}

// sasCuts are the upper SAS bounds of stanines 1-8.
var sasCuts = [8]float64{74, 82, 89, 97, 104, 112, 119, 126}

// stanineSAS maps each stanine to the midpoint SAS of its band.
var stanineSAS = [9]int{70, 79, 86, 94, 101, 109, 116, 123, 130}

// staninePercentile maps each stanine to the midpoint percentile of its band.
var staninePercentile = [9]int{2, 8, 17, 32, 50, 69, 83, 93, 98}

// Converter performs scale conversion and level classification under an
// injected threshold policy.
type Converter struct {
	thresholds assessment.Thresholds
}

// NewConverter creates a converter with the given threshold policy.
func NewConverter(t assessment.Thresholds) *Converter {
	return &Converter{thresholds: t}
}

// SASToStanine converts a standardized age score to its stanine band.
// Zero or negative input returns the neutral stanine.
func (c *Converter) SASToStanine(sas float64) int {
	if sas <= 0 {
		return NeutralStanine
	}
	for i, cut := range sasCuts {
		if sas <= cut {
			return i + 1
		}
	}
	return 9
}

// StanineToSAS converts a stanine to the midpoint SAS of its band. Out-of-range
// input returns the neutral band's midpoint.
func (c *Converter) StanineToSAS(stanine int) int {
	if stanine < 1 || stanine > 9 {
		return stanineSAS[NeutralStanine-1]
	}
	return stanineSAS[stanine-1]
}

// PercentileToStanine converts a percentile to its stanine band. Zero or
// negative input returns the neutral stanine.
func (c *Converter) PercentileToStanine(pct float64) int {
	if pct <= 0 {
		return NeutralStanine
	}
	for i, cut := range percentileCuts {
		if pct <= cut {
			return i + 1
		}
	}
	return 9
}

// StanineToPercentile converts a stanine to the midpoint percentile of its
// band. Out-of-range input returns the neutral percentile.
func (c *Converter) StanineToPercentile(stanine int) int {
	if stanine < 1 || stanine > 9 {
		return NeutralPercentile
	}
	return staninePercentile[stanine-1]
}

// LevelFromStanine classifies a stanine into weakness/average/strength.
func (c *Converter) LevelFromStanine(stanine float64) analysis.Level {
	switch {
	case stanine <= c.thresholds.StanineWeakness:
		return analysis.LevelWeakness
	case stanine >= c.thresholds.StanineStrength:
		return analysis.LevelStrength
	default:
		return analysis.LevelAverage
	}
}

// LevelFromPercentile classifies an attitudinal percentile into
// at-risk/balanced/strength.
func (c *Converter) LevelFromPercentile(pct float64) analysis.Level {
	switch {
	case pct < c.thresholds.AttitudinalRisk:
		return analysis.LevelAtRisk
	case pct >= c.thresholds.AttitudinalStrength:
		return analysis.LevelStrength
	default:
		return analysis.LevelBalanced
	}
}

// LevelFromSAS classifies a standardized age score into
// weakness/average/strength.
func (c *Converter) LevelFromSAS(sas float64) analysis.Level {
	switch {
	case sas < c.thresholds.SASRisk:
		return analysis.LevelWeakness
	case sas > c.thresholds.SASStrength:
		return analysis.LevelStrength
	default:
		return analysis.LevelAverage
	}
}

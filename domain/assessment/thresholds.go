package assessment

// Thresholds is the externally overridable classification policy. One value is
// built at startup (defaults plus environment overrides) and injected into
// every analyzer, classifier, tracker and predictor constructor; nothing in
// the engine reads thresholds from package state.
type Thresholds struct {
	// Attitudinal percentile bands: < AttitudinalRisk is at-risk,
	// >= AttitudinalStrength is a strength, between is balanced.
	AttitudinalRisk     float64 `json:"attitudinal_risk"`
	AttitudinalStrength float64 `json:"attitudinal_strength"`

	// Stanine bands for cognitive domains and academic subjects:
	// <= StanineWeakness is a weakness, >= StanineStrength is a strength.
	StanineWeakness float64 `json:"stanine_weakness"`
	StanineStrength float64 `json:"stanine_strength"`

	// SAS bands: < SASRisk is a weakness, > SASStrength is a strength.
	SASRisk     float64 `json:"sas_risk"`
	SASStrength float64 `json:"sas_strength"`

	// Progress significance: minimum absolute change that counts as
	// significant, in percentile points (attitudinal) or stanines
	// (cognitive/academic).
	SignificantPercentile float64 `json:"significant_percentile"`
	SignificantStanine    float64 `json:"significant_stanine"`

	// Composite risk score bands.
	RiskHigh       float64 `json:"risk_high"`
	RiskMedium     float64 `json:"risk_medium"`
	RiskBorderline float64 `json:"risk_borderline"`

	// Potential comparison: stanine gap at or beyond which a subject is
	// under/over-performing relative to cognitive potential.
	PotentialGap float64 `json:"potential_gap"`
}

// DefaultThresholds returns the standard policy used in production.
func DefaultThresholds() Thresholds {
	return Thresholds{
		AttitudinalRisk:     45,
		AttitudinalStrength: 65,

		StanineWeakness: 3,
		StanineStrength: 7,

		SASRisk:     90,
		SASStrength: 110,

		SignificantPercentile: 5,
		SignificantStanine:    0.5,

		RiskHigh:       0.7,
		RiskMedium:     0.4,
		RiskBorderline: 0.3,

		PotentialGap: 2,
	}
}

package risk

// Level bands the composite risk score.
type Level string

const (
	LevelLow        Level = "low"
	LevelBorderline Level = "borderline"
	LevelMedium     Level = "medium"
	LevelHigh       Level = "high"
)

// Factor is one weighted contribution to the current risk score.
type Factor struct {
	Domain       string  `json:"domain"`
	Factor       string  `json:"factor"`
	RiskLevel    float64 `json:"risk_level"`
	WeightedRisk float64 `json:"weighted_risk"`
	Details      string  `json:"details"`
}

// EarlyIndicator is a signal below the formal risk threshold that suggests
// emerging risk: a near-threshold factor, a small potential gap, volatility,
// or a recognized combined pattern.
type EarlyIndicator struct {
	Domain    string  `json:"domain"`
	Indicator string  `json:"indicator"`
	Level     float64 `json:"level"`
	Details   string  `json:"details"`
}

// TrendDirection classifies a regression slope.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// FactorTrend is the least-squares trend of one tracked value over the
// snapshot history. Slope is in score units per day.
type FactorTrend struct {
	Slope     float64        `json:"slope"`
	Direction TrendDirection `json:"direction"`
	Points    int            `json:"points"`
}

// TrendAnalysis aggregates per-factor trends and a majority-vote overall
// direction.
type TrendAnalysis struct {
	Available        bool                   `json:"available"`
	Message          string                 `json:"message,omitempty"`
	Factors          map[string]FactorTrend `json:"factors,omitempty"`
	OverallDirection TrendDirection         `json:"overall_direction,omitempty"`
}

// Recommendation is a preventive action selected by templates from the risk
// level, top factors and trend direction.
type Recommendation struct {
	Priority    string `json:"priority"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timeframe   string `json:"timeframe"`
}

// Prediction is the full risk inference result for one student. Every call is
// a pure function of the current snapshot and its history; nothing persists
// between calls.
type Prediction struct {
	Score              float64          `json:"score"`
	Level              Level            `json:"level"`
	RiskFactors        []Factor         `json:"risk_factors"`
	EarlyIndicators    []EarlyIndicator `json:"early_indicators"`
	Trends             TrendAnalysis    `json:"trend_analysis"`
	TimeToIntervention string           `json:"time_to_intervention"`
	Confidence         float64          `json:"confidence"`
	Recommendations    []Recommendation `json:"recommendations"`
}

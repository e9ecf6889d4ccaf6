package progress

// ChangeStatus is the five-way significance scale applied to every tracked
// change.
type ChangeStatus string

const (
	StatusSignificantImprovement ChangeStatus = "significant improvement"
	StatusSlightImprovement      ChangeStatus = "slight improvement"
	StatusNoChange               ChangeStatus = "no change"
	StatusSlightDecline          ChangeStatus = "slight decline"
	StatusSignificantDecline     ChangeStatus = "significant decline"
)

// Direction is the sign of a change.
type Direction string

const (
	DirectionImproved  Direction = "improved"
	DirectionDeclined  Direction = "declined"
	DirectionUnchanged Direction = "unchanged"
)

// FactorChange compares one named factor, domain or subject across two
// snapshots.
type FactorChange struct {
	Previous      float64      `json:"previous"`
	Current       float64      `json:"current"`
	Change        float64      `json:"change"`
	IsSignificant bool         `json:"is_significant"`
	Direction     Direction    `json:"direction"`
	Status        ChangeStatus `json:"status"`
}

// DomainProgress is the per-domain diff between two snapshots. Factors are
// keyed by display name; only names present in both snapshots appear.
type DomainProgress struct {
	Available     bool                    `json:"available"`
	Message       string                  `json:"message,omitempty"`
	Factors       map[string]FactorChange `json:"factors,omitempty"`
	AverageChange float64                 `json:"average_change"`
	OverallStatus ChangeStatus            `json:"overall_status,omitempty"`
}

// FragileLearnerChange tracks the fragile-learner transition between
// snapshots. Direction is "positive" when the student left fragile status and
// "negative" when they entered it.
type FragileLearnerChange struct {
	Current    bool   `json:"current"`
	Previous   bool   `json:"previous"`
	HasChanged bool   `json:"has_changed"`
	Direction  string `json:"direction"`
}

// Effectiveness labels how a previously recommended intervention appears to
// have worked.
type Effectiveness string

const (
	Effective          Effectiveness = "effective"
	PartiallyEffective Effectiveness = "partially effective"
	NotEffective       Effectiveness = "not effective"
	EffectUnknown      Effectiveness = "unknown"
)

// InterventionOutcome is the retrospective evaluation of one intervention from
// the previous snapshot.
type InterventionOutcome struct {
	Domain        string        `json:"domain"`
	Factor        string        `json:"factor"`
	Effectiveness Effectiveness `json:"effectiveness"`
	Evidence      string        `json:"evidence"`
}

// InterventionEffectiveness aggregates outcomes per previous intervention,
// keyed by intervention title.
type InterventionEffectiveness struct {
	Available     bool                           `json:"available"`
	Message       string                         `json:"message,omitempty"`
	Interventions map[string]InterventionOutcome `json:"interventions,omitempty"`
}

// AreaChange is one entry in the improvement or concern lists.
type AreaChange struct {
	Domain       string `json:"domain"`
	Factor       string `json:"factor"`
	Detail       string `json:"detail"`
	Significance string `json:"significance"`
}

// Analysis is the full progress comparison between a current and a previous
// analyzed snapshot.
type Analysis struct {
	HasBaseline bool   `json:"has_baseline"`
	Message     string `json:"message,omitempty"`

	Attitudinal DomainProgress `json:"attitudinal,omitempty"`
	Cognitive   DomainProgress `json:"cognitive,omitempty"`
	Academic    DomainProgress `json:"academic,omitempty"`

	FragileLearner FragileLearnerChange `json:"fragile_learner,omitempty"`

	InterventionEffectiveness InterventionEffectiveness `json:"intervention_effectiveness,omitempty"`

	ImprovementAreas []AreaChange `json:"improvement_areas,omitempty"`
	ConcernAreas     []AreaChange `json:"concern_areas,omitempty"`

	Summary string `json:"summary,omitempty"`
}

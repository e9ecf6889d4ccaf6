package predictor

import (
	"edusight/domain/assessment"
	"edusight/domain/core"
)

// Per-factor weights for the composite risk score. Higher weight means the
// factor is a stronger predictor of future difficulty.
var riskFactorWeights = map[core.FactorKey]float64{
	assessment.FactorSelfRegard:        0.8,
	assessment.FactorPerceivedLearning: 0.6,
	assessment.FactorAttitudeTeachers:  0.7,
	assessment.FactorWorkEthic:         0.9,
	assessment.FactorConfidence:        0.7,
	assessment.FactorPreparedness:      0.6,
	assessment.FactorEmotionalControl:  0.8,
	assessment.FactorSocialConfidence:  0.5,
	assessment.FactorCurriculumDemand:  0.6,

	assessment.DomainVerbal:       0.7,
	assessment.DomainQuantitative: 0.7,
	assessment.DomainNonverbal:    0.6,
	assessment.DomainSpatial:      0.5,
}

const (
	fragileLearnerWeight = 0.9
	academicWeight       = 0.6
	defaultFactorWeight  = 0.5
)

// weightFor returns the predictive weight for a factor key, falling back to
// the default when the key is not in the table.
func weightFor(key core.FactorKey) float64 {
	if w, ok := riskFactorWeights[key]; ok {
		return w
	}
	return defaultFactorWeight
}

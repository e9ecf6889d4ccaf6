package interventions

import (
	"edusight/domain/analysis"
	"edusight/domain/assessment"
	"edusight/domain/core"
)

// CompoundDetector matches six fixed co-occurrence signatures across domains.
// Each pattern is evaluated independently; several may fire at once, and no
// deduplication is applied since compounds are semantically distinct from the
// atomic interventions.
type CompoundDetector struct{}

// NewCompoundDetector creates a compound pattern detector. The patterns are
// fixed signatures over already-classified analyses, so no threshold policy
// is needed here.
func NewCompoundDetector() *CompoundDetector {
	return &CompoundDetector{}
}

// Detect evaluates every compound pattern against the classified analyses.
func (d *CompoundDetector) Detect(attitudinal, cognitive, academic analysis.DomainAnalysis, isFragileLearner bool) []analysis.Intervention {
	var out []analysis.Intervention

	attRisk := riskKeys(attitudinal)
	cogWeak := riskKeys(cognitive)
	academicWeaknesses := 0
	if academic.Available {
		academicWeaknesses = len(academic.RiskAreas)
	}

	// Self-regard risk alongside a verbal weakness: language work doubles as
	// confidence work.
	if attRisk[assessment.FactorSelfRegard] && cogWeak[assessment.DomainVerbal] {
		out = append(out, analysis.Intervention{
			Domain:      DomainIntegrated,
			Factor:      "Self Regard + Verbal Reasoning",
			Title:       "Confidence Through Language",
			Description: "Paired program building verbal skills through low-stakes success experiences, so language growth rebuilds learner self-regard.",
			Priority:    analysis.PriorityHigh,
			Impact:      "high",
		})
	}

	// Emotional control risk alongside academic weakness.
	if attRisk[assessment.FactorEmotionalControl] && academicWeaknesses > 0 {
		out = append(out, analysis.Intervention{
			Domain:      DomainIntegrated,
			Factor:      "Emotional Control + Academic Performance",
			Title:       "Emotional Regulation for Academic Success",
			Description: "Counselor-led emotional regulation sessions anchored to the weak subjects, teaching coping strategies in the academic context where setbacks occur.",
			Priority:    analysis.PriorityHigh,
			Impact:      "high",
		})
	}

	// Fragile learner with social confidence risk.
	if isFragileLearner && attRisk[assessment.FactorSocialConfidence] {
		out = append(out, analysis.Intervention{
			Domain:      DomainIntegrated,
			Factor:      "Fragile Learner + Social Confidence",
			Title:       "Peer Mentorship Program",
			Description: "Structured peer mentorship pairing the student with a trained older student, building social confidence while supporting learning routines.",
			Priority:    analysis.PriorityHigh,
			Impact:      "high",
		})
	}

	// Curriculum demand risk with two or more weak subjects.
	if attRisk[assessment.FactorCurriculumDemand] && academicWeaknesses >= 2 {
		out = append(out, analysis.Intervention{
			Domain:      DomainIntegrated,
			Factor:      "Curriculum Demand + Academic Performance",
			Title:       "Personalized Learning Pathway",
			Description: "Adjusted pacing and scaffolded curriculum across the weak subjects, reducing perceived overload while rebuilding mastery.",
			Priority:    analysis.PriorityHigh,
			Impact:      "high",
		})
	}

	// Nonverbal weakness with preparedness risk.
	if cogWeak[assessment.DomainNonverbal] && attRisk[assessment.FactorPreparedness] {
		out = append(out, analysis.Intervention{
			Domain:      DomainIntegrated,
			Factor:      "Nonverbal Reasoning + Preparedness",
			Title:       "Visual Organization System",
			Description: "Visual planners, diagrammed routines and graphic organizers that train nonverbal reasoning while fixing preparation habits.",
			Priority:    analysis.PriorityMedium,
			Impact:      "medium",
		})
	}

	// Catch-all: fragile learner with problems in all three domains.
	if isFragileLearner && len(attRisk) > 0 && len(cogWeak) > 0 && academicWeaknesses > 0 {
		out = append(out, analysis.Intervention{
			Domain:      DomainIntegrated,
			Factor:      "Multiple Factors",
			Title:       "Comprehensive Development Plan",
			Description: "Integrated approach addressing cognitive, emotional, and academic needs through a coordinated intervention strategy with weekly review.",
			Priority:    analysis.PriorityHigh,
			Impact:      "high",
		})
	}

	return out
}

// riskKeys collects the canonical keys of a domain's risk areas.
func riskKeys(d analysis.DomainAnalysis) map[core.FactorKey]bool {
	if !d.Available {
		return nil
	}
	keys := make(map[core.FactorKey]bool, len(d.RiskAreas))
	for _, item := range d.RiskAreas {
		keys[item.Key] = true
	}
	return keys
}

package tracker

import (
	"fmt"
	"strings"

	"edusight/domain/analysis"
	"edusight/domain/progress"
	"edusight/internal/interventions"
)

// evaluateInterventions inspects the previous snapshot's intervention list and
// scores each one against the observed factor deltas in its target domain.
// Matching is a substring join on factor names; interventions do not carry
// an explicit target key.
func (t *Tracker) evaluateInterventions(current, previous *analysis.AnalyzedRecord) progress.InterventionEffectiveness {
	previousList := append(append([]analysis.Intervention{}, previous.Interventions...), previous.CompoundInterventions...)
	if len(previousList) == 0 {
		return progress.InterventionEffectiveness{
			Available: false,
			Message:   "No previous interventions to evaluate.",
		}
	}

	outcomes := make(map[string]progress.InterventionOutcome, len(previousList))
	for _, iv := range previousList {
		outcome := progress.InterventionOutcome{
			Domain:        iv.Domain,
			Factor:        iv.Factor,
			Effectiveness: progress.EffectUnknown,
		}

		switch iv.Domain {
		case interventions.DomainEmotional, interventions.DomainBehavioral:
			outcome.Effectiveness, outcome.Evidence = t.scoreAgainstDomain(
				iv.Factor, current.Attitudinal, previous.Attitudinal,
				t.thresholds.SignificantPercentile, "percentile points")
		case interventions.DomainCognitive:
			outcome.Effectiveness, outcome.Evidence = t.scoreAgainstDomain(
				iv.Factor, current.Cognitive, previous.Cognitive,
				t.thresholds.SignificantStanine, "stanine points")
		case interventions.DomainAcademic:
			subject := strings.TrimSuffix(iv.Factor, " Performance")
			outcome.Effectiveness, outcome.Evidence = t.scoreAgainstDomain(
				subject, current.Academic, previous.Academic,
				t.thresholds.SignificantStanine, "stanine points")
		case interventions.DomainHolistic, interventions.DomainIntegrated:
			outcome.Effectiveness, outcome.Evidence = t.scoreHolistic(current, previous)
		}

		outcomes[iv.Title] = outcome
	}

	return progress.InterventionEffectiveness{Available: true, Interventions: outcomes}
}

// scoreAgainstDomain finds the factors whose names contain the intervention's
// target (case-insensitive), averages their change, and bands it against the
// domain's significance threshold.
func (t *Tracker) scoreAgainstDomain(target string, current, previous analysis.DomainAnalysis, threshold float64, unit string) (progress.Effectiveness, string) {
	if !current.Available || !previous.Available {
		return progress.EffectUnknown, ""
	}

	prevByName := make(map[string]float64, len(previous.Items))
	for _, item := range previous.Items {
		prevByName[item.Name] = item.Value
	}

	needle := strings.ToLower(target)
	total := 0.0
	matched := 0
	var evidence strings.Builder
	for _, item := range current.Items {
		if !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		prev, ok := prevByName[item.Name]
		if !ok {
			continue
		}
		change := item.Value - prev
		total += change
		matched++
		fmt.Fprintf(&evidence, "%s: %+.1f %s. ", item.Name, change, unit)
	}

	if matched == 0 {
		return progress.EffectUnknown, ""
	}
	return bandEffectiveness(total/float64(matched), threshold), evidence.String()
}

// scoreHolistic evaluates whole-profile interventions by the average change
// across every available domain, each normalized by its own significance
// threshold so percentile and stanine movements are comparable.
func (t *Tracker) scoreHolistic(current, previous *analysis.AnalyzedRecord) (progress.Effectiveness, string) {
	type pair struct {
		current, previous analysis.DomainAnalysis
		threshold         float64
		label             string
	}
	pairs := []pair{
		{current.Attitudinal, previous.Attitudinal, t.thresholds.SignificantPercentile, "Attitudinal"},
		{current.Cognitive, previous.Cognitive, t.thresholds.SignificantStanine, "Cognitive"},
		{current.Academic, previous.Academic, t.thresholds.SignificantStanine, "Academic"},
	}

	total := 0.0
	domains := 0
	var evidence strings.Builder
	for _, p := range pairs {
		avg, ok := averageChange(p.current, p.previous)
		if !ok {
			continue
		}
		normalized := avg / p.threshold
		total += normalized
		domains++
		fmt.Fprintf(&evidence, "%s average change %+.2f. ", p.label, avg)
	}

	if domains == 0 {
		return progress.EffectUnknown, ""
	}
	// The normalized average is already in threshold units, so band at 1.
	return bandEffectiveness(total/float64(domains), 1), evidence.String()
}

func averageChange(current, previous analysis.DomainAnalysis) (float64, bool) {
	if !current.Available || !previous.Available {
		return 0, false
	}
	prevByName := make(map[string]float64, len(previous.Items))
	for _, item := range previous.Items {
		prevByName[item.Name] = item.Value
	}
	total := 0.0
	matched := 0
	for _, item := range current.Items {
		if prev, ok := prevByName[item.Name]; ok {
			total += item.Value - prev
			matched++
		}
	}
	if matched == 0 {
		return 0, false
	}
	return total / float64(matched), true
}

func bandEffectiveness(avgChange, threshold float64) progress.Effectiveness {
	switch {
	case avgChange >= threshold:
		return progress.Effective
	case avgChange <= -threshold:
		return progress.NotEffective
	default:
		return progress.PartiallyEffective
	}
}

// Package tracker diffs two analyzed snapshots of the same student, classifies
// each change's significance, and retrospectively scores how the previously
// recommended interventions worked out.
package tracker

import (
	"fmt"
	"sort"

	"edusight/domain/analysis"
	"edusight/domain/assessment"
	"edusight/domain/progress"
)

// Tracker compares snapshots under an injected significance policy.
type Tracker struct {
	thresholds assessment.Thresholds
}

// NewTracker creates a progress tracker.
func NewTracker(t assessment.Thresholds) *Tracker {
	return &Tracker{thresholds: t}
}

// Track compares the current snapshot against the previous one. A nil
// previous record yields a no-baseline result rather than an error.
func (t *Tracker) Track(current, previous *analysis.AnalyzedRecord) progress.Analysis {
	if previous == nil {
		return progress.Analysis{
			HasBaseline: false,
			Message:     "No previous assessment data available for comparison.",
		}
	}

	result := progress.Analysis{
		HasBaseline: true,
		Attitudinal: t.diffDomain(current.Attitudinal, previous.Attitudinal, t.thresholds.SignificantPercentile, "Attitudinal comparison not available."),
		Cognitive:   t.diffDomain(current.Cognitive, previous.Cognitive, t.thresholds.SignificantStanine, "Cognitive comparison not available."),
		Academic:    t.diffDomain(current.Academic, previous.Academic, t.thresholds.SignificantStanine, "Academic comparison not available."),
		FragileLearner: fragileChange(
			current.IsFragileLearner,
			previous.IsFragileLearner,
		),
		InterventionEffectiveness: t.evaluateInterventions(current, previous),
	}

	result.ImprovementAreas = t.compileAreas(result, true)
	result.ConcernAreas = t.compileAreas(result, false)
	result.Summary = t.summarize(result)
	return result
}

// diffDomain matches items by display name across snapshots and classifies
// each change. Items only present in one snapshot are ignored.
func (t *Tracker) diffDomain(current, previous analysis.DomainAnalysis, threshold float64, unavailableMsg string) progress.DomainProgress {
	if !current.Available || !previous.Available {
		return progress.DomainProgress{Available: false, Message: unavailableMsg}
	}

	prevByName := make(map[string]float64, len(previous.Items))
	for _, item := range previous.Items {
		prevByName[item.Name] = item.Value
	}

	factors := make(map[string]progress.FactorChange)
	total := 0.0
	for _, item := range current.Items {
		prev, ok := prevByName[item.Name]
		if !ok {
			continue
		}
		change := item.Value - prev
		factors[item.Name] = progress.FactorChange{
			Previous:      prev,
			Current:       item.Value,
			Change:        change,
			IsSignificant: change >= threshold || change <= -threshold,
			Direction:     direction(change),
			Status:        changeStatus(change, threshold),
		}
		total += change
	}

	dp := progress.DomainProgress{Available: true, Factors: factors}
	if len(factors) > 0 {
		dp.AverageChange = total / float64(len(factors))
		dp.OverallStatus = changeStatus(dp.AverageChange, threshold)
	} else {
		dp.OverallStatus = progress.StatusNoChange
	}
	return dp
}

func direction(change float64) progress.Direction {
	switch {
	case change > 0:
		return progress.DirectionImproved
	case change < 0:
		return progress.DirectionDeclined
	default:
		return progress.DirectionUnchanged
	}
}

// changeStatus applies the five-way significance scale.
func changeStatus(change, threshold float64) progress.ChangeStatus {
	switch {
	case change >= threshold:
		return progress.StatusSignificantImprovement
	case change > 0:
		return progress.StatusSlightImprovement
	case change == 0:
		return progress.StatusNoChange
	case change > -threshold:
		return progress.StatusSlightDecline
	default:
		return progress.StatusSignificantDecline
	}
}

func fragileChange(current, previous bool) progress.FragileLearnerChange {
	fc := progress.FragileLearnerChange{
		Current:    current,
		Previous:   previous,
		HasChanged: current != previous,
		Direction:  "unchanged",
	}
	if fc.HasChanged {
		if current {
			fc.Direction = "negative"
		} else {
			fc.Direction = "positive"
		}
	}
	return fc
}

// compileAreas collects the improvement (or concern) entries across all three
// domains plus the fragile-learner transition, significant entries first.
func (t *Tracker) compileAreas(result progress.Analysis, improvements bool) []progress.AreaChange {
	var areas []progress.AreaChange

	collect := func(domainLabel, unit string, dp progress.DomainProgress) {
		if !dp.Available {
			return
		}
		names := make([]string, 0, len(dp.Factors))
		for name := range dp.Factors {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fc := dp.Factors[name]
			match := improvements && fc.Change > 0 || !improvements && fc.Change < 0
			if !match {
				continue
			}
			significance := "slight"
			if fc.IsSignificant {
				significance = "significant"
			}
			areas = append(areas, progress.AreaChange{
				Domain:       domainLabel,
				Factor:       name,
				Detail:       fmt.Sprintf("%+.1f %s", fc.Change, unit),
				Significance: significance,
			})
		}
	}

	collect("Attitudinal", "percentile points", result.Attitudinal)
	collect("Cognitive", "stanine points", result.Cognitive)
	collect("Academic", "stanine points", result.Academic)

	if result.FragileLearner.HasChanged {
		if improvements && result.FragileLearner.Direction == "positive" {
			areas = append(areas, progress.AreaChange{
				Domain:       "Cognitive",
				Factor:       "Fragile Learner Status",
				Detail:       "No longer classified as a fragile learner",
				Significance: "significant",
			})
		}
		if !improvements && result.FragileLearner.Direction == "negative" {
			areas = append(areas, progress.AreaChange{
				Domain:       "Cognitive",
				Factor:       "Fragile Learner Status",
				Detail:       "Now classified as a fragile learner",
				Significance: "significant",
			})
		}
	}

	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].Significance == "significant" && areas[j].Significance != "significant"
	})
	return areas
}

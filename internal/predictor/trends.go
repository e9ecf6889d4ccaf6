package predictor

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"edusight/domain/analysis"
	"edusight/domain/risk"
)

// Slope cutoffs below which a trend counts as stable, in score units per day.
const (
	percentileSlopeCutoff = 0.05
	stanineSlopeCutoff    = 0.005
)

const minTrendPoints = 2

// series is one tracked value over time. X values are days since the earliest
// snapshot.
type series struct {
	xs []float64
	ys []float64
}

// analyzeTrends fits an ordinary least-squares line per tracked factor over
// the snapshot history (current snapshot included) and aggregates a
// majority-vote overall direction.
func (p *Predictor) analyzeTrends(current *analysis.AnalyzedRecord, history []analysis.AnalyzedRecord) risk.TrendAnalysis {
	if len(history) == 0 {
		return risk.TrendAnalysis{
			Available: false,
			Message:   "No historical data available for trend analysis.",
		}
	}

	snapshots := make([]analysis.AnalyzedRecord, 0, len(history)+1)
	snapshots = append(snapshots, history...)
	snapshots = append(snapshots, *current)
	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].RecordedAt.Before(snapshots[j].RecordedAt)
	})
	earliest := snapshots[0].RecordedAt

	percentiles := map[string]*series{}
	stanines := map[string]*series{}
	for _, snap := range snapshots {
		day := snap.RecordedAt.DaysSince(earliest)
		collect(percentiles, snap.Attitudinal, day)
		collect(stanines, snap.Cognitive, day)
		collect(stanines, snap.Academic, day)
	}

	factors := map[string]risk.FactorTrend{}
	for name, s := range percentiles {
		if t, ok := fit(s, percentileSlopeCutoff); ok {
			factors[name] = t
		}
	}
	for name, s := range stanines {
		if t, ok := fit(s, stanineSlopeCutoff); ok {
			factors[name] = t
		}
	}

	if len(factors) == 0 {
		return risk.TrendAnalysis{
			Available: false,
			Message:   "Insufficient overlapping data points for trend analysis.",
		}
	}

	return risk.TrendAnalysis{
		Available:        true,
		Factors:          factors,
		OverallDirection: vote(factors),
	}
}

// collect appends each scored item of an available domain to its named series.
// Zero values are the absent sentinel and are skipped.
func collect(dst map[string]*series, d analysis.DomainAnalysis, day float64) {
	if !d.Available {
		return
	}
	for _, item := range d.Items {
		if item.Value <= 0 {
			continue
		}
		s := dst[item.Name]
		if s == nil {
			s = &series{}
			dst[item.Name] = s
		}
		s.xs = append(s.xs, day)
		s.ys = append(s.ys, item.Value)
	}
}

// fit regresses one series and classifies its slope. Degenerate series (too
// few points, or all on the same day) produce no trend.
func fit(s *series, cutoff float64) (risk.FactorTrend, bool) {
	if len(s.xs) < minTrendPoints {
		return risk.FactorTrend{}, false
	}
	spread := false
	for _, x := range s.xs[1:] {
		if x != s.xs[0] {
			spread = true
			break
		}
	}
	if !spread {
		return risk.FactorTrend{}, false
	}

	_, slope := stat.LinearRegression(s.xs, s.ys, nil, false)

	direction := risk.TrendStable
	switch {
	case slope > cutoff:
		direction = risk.TrendImproving
	case slope < -cutoff:
		direction = risk.TrendDeclining
	}

	return risk.FactorTrend{
		Slope:     slope,
		Direction: direction,
		Points:    len(s.xs),
	}, true
}

// vote returns the majority direction across all tracked factors; ties are
// stable.
func vote(factors map[string]risk.FactorTrend) risk.TrendDirection {
	improving, declining := 0, 0
	for _, t := range factors {
		switch t.Direction {
		case risk.TrendImproving:
			improving++
		case risk.TrendDeclining:
			declining++
		}
	}
	switch {
	case improving > declining:
		return risk.TrendImproving
	case declining > improving:
		return risk.TrendDeclining
	default:
		return risk.TrendStable
	}
}

// domainDirection is the majority direction restricted to the named factors.
// Used by the combined early-warning patterns.
func domainDirection(trends risk.TrendAnalysis, names []string) risk.TrendDirection {
	if !trends.Available {
		return risk.TrendStable
	}
	improving, declining := 0, 0
	for _, name := range names {
		t, ok := trends.Factors[name]
		if !ok {
			continue
		}
		switch t.Direction {
		case risk.TrendImproving:
			improving++
		case risk.TrendDeclining:
			declining++
		}
	}
	switch {
	case improving > declining:
		return risk.TrendImproving
	case declining > improving:
		return risk.TrendDeclining
	default:
		return risk.TrendStable
	}
}

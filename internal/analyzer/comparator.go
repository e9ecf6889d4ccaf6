package analyzer

import (
	"edusight/domain/analysis"
	"edusight/domain/assessment"
	"edusight/domain/core"
)

// Comparator cross-references academic performance against the cognitively
// relevant ability domain to surface under- and over-performance relative to
// potential.
type Comparator struct {
	thresholds assessment.Thresholds
}

// NewComparator creates a potential comparator.
func NewComparator(t assessment.Thresholds) *Comparator {
	return &Comparator{thresholds: t}
}

// Compare labels each academic subject against its relevant cognitive stanine.
// Both analyses must be available; otherwise the comparison itself is
// unavailable and downstream consumers skip it.
func (c *Comparator) Compare(cognitive, academic analysis.DomainAnalysis) analysis.PerformanceComparison {
	if !cognitive.Available || !academic.Available || len(cognitive.Items) == 0 {
		return analysis.PerformanceComparison{Available: false}
	}

	stanines := make(map[core.FactorKey]float64, len(cognitive.Items))
	total := 0.0
	for _, item := range cognitive.Items {
		stanines[item.Key] = item.Value
		total += item.Value
	}
	overall := total / float64(len(cognitive.Items))

	result := analysis.PerformanceComparison{
		Available: true,
		Subjects:  make(map[string]analysis.SubjectComparison, len(academic.Items)),
	}
	for _, subject := range academic.Items {
		domainName, potential := c.relevantStanine(subject.Name, stanines, overall)
		status := c.status(subject.Value - potential)
		if status == analysis.StatusUnderperforming {
			result.UnderperformingCount++
		}
		result.Subjects[subject.Name] = analysis.SubjectComparison{
			AcademicStanine:  subject.Value,
			CognitiveStanine: potential,
			RelevantDomain:   domainName,
			Status:           status,
		}
	}
	return result
}

// relevantStanine selects the cognitive stanine a subject is expected to
// track: English follows verbal reasoning, Mathematics quantitative, Science
// the mean of nonverbal and quantitative, and everything else the overall
// cognitive average. Missing domains fall back to the overall average.
func (c *Comparator) relevantStanine(subject string, stanines map[core.FactorKey]float64, overall float64) (string, float64) {
	pick := func(key core.FactorKey) (string, float64) {
		if v, ok := stanines[key]; ok {
			return assessment.DisplayName(key), v
		}
		return "Overall", overall
	}

	switch subject {
	case "English":
		return pick(assessment.DomainVerbal)
	case "Mathematics":
		return pick(assessment.DomainQuantitative)
	case "Science":
		nv, hasNV := stanines[assessment.DomainNonverbal]
		qr, hasQR := stanines[assessment.DomainQuantitative]
		if hasNV && hasQR {
			return "Nonverbal/Quantitative", (nv + qr) / 2
		}
		return "Overall", overall
	default:
		return "Overall", overall
	}
}

func (c *Comparator) status(gap float64) analysis.ComparisonStatus {
	switch {
	case gap <= -c.thresholds.PotentialGap:
		return analysis.StatusUnderperforming
	case gap >= c.thresholds.PotentialGap:
		return analysis.StatusOverperforming
	default:
		return analysis.StatusAsExpected
	}
}

package interventions

import (
	"fmt"
	"sort"

	"edusight/domain/analysis"
	"edusight/domain/assessment"
)

// Engine generates atomic interventions from classified analyses via the
// deterministic rule table. Output is deduplicated by (domain, title) and
// stable-sorted by priority, so running the engine twice on the same analyses
// yields identical results.
type Engine struct {
	thresholds assessment.Thresholds
}

// NewEngine creates an intervention engine.
func NewEngine(t assessment.Thresholds) *Engine {
	return &Engine{thresholds: t}
}

// Generate produces the ranked atomic intervention list for one student.
func (e *Engine) Generate(attitudinal, cognitive, academic analysis.DomainAnalysis, comparison analysis.PerformanceComparison, isFragileLearner bool) []analysis.Intervention {
	var out []analysis.Intervention

	if attitudinal.Available {
		for _, risk := range attitudinal.RiskAreas {
			tpl, ok := pGroupTemplates[risk.PNumber]
			if !ok {
				tpl = genericFactorTemplate
			}
			out = append(out, analysis.Intervention{
				Domain:      tpl.domain,
				Factor:      risk.Name,
				Title:       tpl.title,
				Description: tpl.description,
				Priority:    tpl.priority,
				Trigger:     fmt.Sprintf("Attitudinal %s at risk", risk.PNumber),
			})
		}
	}

	if cognitive.Available {
		for _, weakness := range cognitive.RiskAreas {
			if tpl, ok := cognitiveTemplates[weakness.Name]; ok {
				out = append(out, analysis.Intervention{
					Domain:      tpl.domain,
					Factor:      weakness.Name,
					Title:       tpl.title,
					Description: tpl.description,
					Priority:    tpl.priority,
					Trigger:     fmt.Sprintf("%s at stanine %.0f", weakness.Name, weakness.Value),
				})
			}
			// Verbal weakness also earns a reading-comprehension booster.
			if weakness.Key == assessment.DomainVerbal && weakness.Value <= e.thresholds.StanineWeakness {
				out = append(out, analysis.Intervention{
					Domain:      readingComprehensionTemplate.domain,
					Factor:      weakness.Name,
					Title:       readingComprehensionTemplate.title,
					Description: readingComprehensionTemplate.description,
					Priority:    readingComprehensionTemplate.priority,
					Trigger:     fmt.Sprintf("Verbal reasoning at stanine %.0f", weakness.Value),
				})
			}
		}
	}

	if isFragileLearner {
		for _, tpl := range holisticTemplates {
			out = append(out, analysis.Intervention{
				Domain:      tpl.domain,
				Factor:      "Fragile Learner",
				Title:       tpl.title,
				Description: tpl.description,
				Priority:    tpl.priority,
				Trigger:     "Fragile learner status",
			})
		}
	}

	if academic.Available {
		for _, weakness := range academic.RiskAreas {
			out = append(out, analysis.Intervention{
				Domain:      DomainAcademic,
				Factor:      fmt.Sprintf("%s Performance", weakness.Name),
				Title:       fmt.Sprintf("%s Targeted Tutoring", weakness.Name),
				Description: fmt.Sprintf("Subject-specific tutoring for %s focusing on foundational skills and knowledge gaps identified through assessment.", weakness.Name),
				Priority:    analysis.PriorityMedium,
				Trigger:     fmt.Sprintf("%s at stanine %.0f", weakness.Name, weakness.Value),
			})
		}
	}

	if comparison.Available {
		subjects := make([]string, 0, len(comparison.Subjects))
		for name := range comparison.Subjects {
			subjects = append(subjects, name)
		}
		sort.Strings(subjects)
		for _, name := range subjects {
			sc := comparison.Subjects[name]
			if sc.Status != analysis.StatusUnderperforming {
				continue
			}
			out = append(out, analysis.Intervention{
				Domain:      DomainAcademic,
				Factor:      fmt.Sprintf("%s Performance", name),
				Title:       fmt.Sprintf("%s Potential Achievement Plan", name),
				Description: fmt.Sprintf("Structured plan to close the gap between %s performance (stanine %.0f) and cognitive potential (stanine %.1f).", name, sc.AcademicStanine, sc.CognitiveStanine),
				Priority:    analysis.PriorityHigh,
				Trigger:     fmt.Sprintf("%s underperforming against potential", name),
			})
		}
	}

	return rank(dedupe(out))
}

// dedupe removes later duplicates sharing a (domain, title) key, keeping the
// first occurrence.
func dedupe(list []analysis.Intervention) []analysis.Intervention {
	type key struct{ domain, title string }
	seen := make(map[key]bool, len(list))
	out := list[:0]
	for _, iv := range list {
		k := key{iv.Domain, iv.Title}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, iv)
	}
	return out
}

// rank stable-sorts by priority (high, medium, low), preserving insertion
// order within a tier.
func rank(list []analysis.Intervention) []analysis.Intervention {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Priority.Rank() < list[j].Priority.Rank()
	})
	return list
}

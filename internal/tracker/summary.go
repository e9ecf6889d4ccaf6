package tracker

import (
	"fmt"
	"strings"

	"edusight/domain/progress"
)

// overallShiftThreshold is the average cross-domain change beyond which the
// summary calls the trajectory an overall improvement or decline.
const overallShiftThreshold = 0.5

// summarize synthesizes the human-readable progress summary from the
// structured results. Purely template-based.
func (t *Tracker) summarize(result progress.Analysis) string {
	var available []string
	var changes []float64
	for _, d := range []struct {
		label string
		dp    progress.DomainProgress
	}{
		{"Attitudinal", result.Attitudinal},
		{"Cognitive", result.Cognitive},
		{"Academic", result.Academic},
	} {
		if d.dp.Available {
			available = append(available, d.label)
			changes = append(changes, d.dp.AverageChange)
		}
	}

	if len(available) == 0 {
		return "No comparable assessment data available."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Progress summary based on %s data: ", strings.Join(available, ", "))

	total := 0.0
	for _, c := range changes {
		total += c
	}
	avg := total / float64(len(changes))
	switch {
	case avg > overallShiftThreshold:
		b.WriteString("The student has shown overall improvement across assessment areas. ")
	case avg < -overallShiftThreshold:
		b.WriteString("The student has shown overall decline across assessment areas. ")
	default:
		b.WriteString("The student has shown mixed results or minimal change across assessment areas. ")
	}

	if len(result.ImprovementAreas) > 0 {
		fmt.Fprintf(&b, "Notable improvements in %s. ", joinFactors(result.ImprovementAreas, 2))
	}
	if len(result.ConcernAreas) > 0 {
		fmt.Fprintf(&b, "Areas of concern include %s. ", joinFactors(result.ConcernAreas, 2))
	}

	if result.InterventionEffectiveness.Available {
		effective, partial, ineffective := 0, 0, 0
		mostEffective := ""
		for title, outcome := range result.InterventionEffectiveness.Interventions {
			switch outcome.Effectiveness {
			case progress.Effective:
				effective++
				if mostEffective == "" || title < mostEffective {
					mostEffective = title
				}
			case progress.PartiallyEffective:
				partial++
			case progress.NotEffective:
				ineffective++
			}
		}
		fmt.Fprintf(&b, "Of the previous interventions, %d were effective, %d were partially effective, and %d were not effective. ", effective, partial, ineffective)
		if mostEffective != "" {
			fmt.Fprintf(&b, "The %q intervention showed the most positive impact. ", mostEffective)
		}
	}

	return strings.TrimSpace(b.String())
}

func joinFactors(areas []progress.AreaChange, limit int) string {
	names := make([]string, 0, limit)
	for _, area := range areas {
		names = append(names, area.Factor)
		if len(names) == limit {
			break
		}
	}
	return strings.Join(names, ", ")
}

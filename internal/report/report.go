// Package report renders a student's triangulated profile as Markdown and
// HTML for the report viewer and CLI export.
package report

import (
	"fmt"
	"sort"
	"strings"

	"edusight/domain/analysis"
	"edusight/domain/progress"
	"edusight/domain/risk"
)

// Generator builds per-student reports. Progress and prediction sections are
// optional; a nil input skips the section.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Markdown renders the full student report.
func (g *Generator) Markdown(rec *analysis.AnalyzedRecord, prog *progress.Analysis, pred *risk.Prediction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Student Profile: %s\n\n", displayName(rec))
	fmt.Fprintf(&b, "**ID:** %s", rec.Student.StudentID)
	if rec.Student.Grade != "" {
		fmt.Fprintf(&b, " | **Grade:** %s", rec.Student.Grade)
	}
	if rec.Student.Section != "" {
		fmt.Fprintf(&b, " | **Section:** %s", rec.Student.Section)
	}
	fmt.Fprintf(&b, "\n\n*Assessed %s*\n\n", rec.RecordedAt.String())

	if rec.IsFragileLearner {
		b.WriteString("> **Fragile learner**: adequate cognitive ability undermined by attitudinal risk. Prioritize the interventions below.\n\n")
	}

	writeDomain(&b, "Attitudinal Survey", rec.Attitudinal, "percentile")
	writeDomain(&b, "Cognitive Abilities", rec.Cognitive, "stanine")
	writeDomain(&b, "Academic Performance", rec.Academic, "stanine")
	writePerformance(&b, rec.Performance)
	writeInterventions(&b, rec)

	if prog != nil {
		writeProgress(&b, prog)
	}
	if pred != nil {
		writePrediction(&b, pred)
	}

	return b.String()
}

func displayName(rec *analysis.AnalyzedRecord) string {
	if rec.Student.Name != "" {
		return rec.Student.Name
	}
	return rec.Student.StudentID.String()
}

func writeDomain(b *strings.Builder, title string, d analysis.DomainAnalysis, unit string) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if !d.Available {
		b.WriteString("No data available for this domain.\n\n")
		return
	}

	if d.OverallStatus != "" {
		fmt.Fprintf(b, "**Overall status:** %s\n\n", d.OverallStatus)
	}
	if d.Profile != "" {
		fmt.Fprintf(b, "**Profile:** %s (average stanine %.1f)\n\n", d.Profile, d.AverageStanine)
	}

	b.WriteString("| Area | Score | Level |\n|---|---|---|\n")
	for _, item := range d.Items {
		fmt.Fprintf(b, "| %s | %.0f (%s) | %s |\n", item.Name, item.Value, unit, item.Level)
	}
	b.WriteString("\n")
}

func writePerformance(b *strings.Builder, p analysis.PerformanceComparison) {
	if !p.Available {
		return
	}
	b.WriteString("## Potential vs Performance\n\n")
	b.WriteString("| Subject | Academic | Cognitive | Status |\n|---|---|---|---|\n")
	for _, subject := range sortedSubjects(p.Subjects) {
		cmp := p.Subjects[subject]
		fmt.Fprintf(b, "| %s | %.1f | %.1f (%s) | %s |\n",
			subject, cmp.AcademicStanine, cmp.CognitiveStanine, cmp.RelevantDomain, cmp.Status)
	}
	b.WriteString("\n")
}

func writeInterventions(b *strings.Builder, rec *analysis.AnalyzedRecord) {
	if len(rec.Interventions) == 0 && len(rec.CompoundInterventions) == 0 {
		return
	}
	b.WriteString("## Recommended Interventions\n\n")
	for _, iv := range rec.Interventions {
		fmt.Fprintf(b, "- **%s** (%s, %s priority): %s\n", iv.Title, iv.Domain, iv.Priority, iv.Description)
	}
	for _, iv := range rec.CompoundInterventions {
		fmt.Fprintf(b, "- **%s** (compound, %s priority): %s\n", iv.Title, iv.Priority, iv.Description)
	}
	b.WriteString("\n")
}

func writeProgress(b *strings.Builder, prog *progress.Analysis) {
	b.WriteString("## Progress\n\n")
	if !prog.HasBaseline {
		fmt.Fprintf(b, "%s\n\n", prog.Message)
		return
	}
	fmt.Fprintf(b, "%s\n\n", prog.Summary)

	if len(prog.ImprovementAreas) > 0 {
		b.WriteString("**Improvements:**\n\n")
		for _, area := range prog.ImprovementAreas {
			fmt.Fprintf(b, "- %s: %s\n", area.Factor, area.Detail)
		}
		b.WriteString("\n")
	}
	if len(prog.ConcernAreas) > 0 {
		b.WriteString("**Concerns:**\n\n")
		for _, area := range prog.ConcernAreas {
			fmt.Fprintf(b, "- %s: %s\n", area.Factor, area.Detail)
		}
		b.WriteString("\n")
	}
}

func writePrediction(b *strings.Builder, pred *risk.Prediction) {
	b.WriteString("## Risk Outlook\n\n")
	fmt.Fprintf(b, "**Risk score:** %.2f (%s) | **Intervention timeframe:** %s | **Confidence:** %.0f%%\n\n",
		pred.Score, pred.Level, pred.TimeToIntervention, pred.Confidence*100)

	if len(pred.RiskFactors) > 0 {
		b.WriteString("**Risk factors:**\n\n")
		for _, f := range pred.RiskFactors {
			fmt.Fprintf(b, "- %s\n", f.Details)
		}
		b.WriteString("\n")
	}
	if len(pred.EarlyIndicators) > 0 {
		b.WriteString("**Early indicators:**\n\n")
		for _, ind := range pred.EarlyIndicators {
			fmt.Fprintf(b, "- %s: %s\n", ind.Indicator, ind.Details)
		}
		b.WriteString("\n")
	}
	if len(pred.Recommendations) > 0 {
		b.WriteString("**Preventive actions:**\n\n")
		for _, rec := range pred.Recommendations {
			fmt.Fprintf(b, "- **%s** (%s): %s *%s*\n", rec.Title, rec.Priority, rec.Description, rec.Timeframe)
		}
		b.WriteString("\n")
	}
}

func sortedSubjects(m map[string]analysis.SubjectComparison) []string {
	subjects := make([]string, 0, len(m))
	for subject := range m {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	return subjects
}

package ingest

import (
	"edusight/domain/assessment"
	"edusight/domain/core"
)

// unknownIdentity is substituted for unresolvable name/grade/section fields.
// The merger treats it like an empty value, so a later source can still fill
// the real one in.
const unknownIdentity = "Unknown"

// Normalizer maps variant spreadsheet columns to canonical keys, producing one
// partial StudentRecord per row. Rows without a resolvable student identifier
// are dropped silently; that is a data-quality condition, not an error.
type Normalizer struct {
	aliases ColumnAliases
}

// NewNormalizer creates a normalizer with the given alias tables.
func NewNormalizer(aliases ColumnAliases) *Normalizer {
	return &Normalizer{aliases: aliases}
}

// identity resolves the shared identifier columns of a row. ok is false when
// no student ID column matched.
func (n *Normalizer) identity(row Row) (rec assessment.StudentRecord, ok bool) {
	id, found := lookup(row, n.aliases.StudentID)
	if !found {
		return assessment.StudentRecord{}, false
	}
	rec.StudentID = core.StudentID(id)
	rec.Name = fallback(row, n.aliases.Name)
	rec.Grade = fallback(row, n.aliases.Grade)
	rec.Section = fallback(row, n.aliases.Section)
	return rec, true
}

func fallback(row Row, aliases []string) string {
	if v, ok := lookup(row, aliases); ok {
		return v
	}
	return unknownIdentity
}

// NormalizeAttitudinal converts survey rows into partial records carrying the
// nine factor percentiles. A factor whose column is missing or unparsable is
// stored as 0, the "not measured" sentinel filtered out by the analyzer.
func (n *Normalizer) NormalizeAttitudinal(rows []Row) []assessment.StudentRecord {
	records := make([]assessment.StudentRecord, 0, len(rows))
	for _, row := range rows {
		rec, ok := n.identity(row)
		if !ok {
			continue
		}
		factors := make(map[core.FactorKey]float64, len(assessment.AttitudinalFactors))
		for _, key := range assessment.AttitudinalFactors {
			value := 0.0
			if cell, found := lookup(row, n.aliases.Attitudinal[key]); found {
				value = parseNumber(cell)
			}
			factors[key] = value
		}
		rec.Attitudinal = factors
		records = append(records, rec)
	}
	return records
}

// NormalizeCognitive converts ability-test rows into partial records. SAS
// columns take precedence; when none match, stanine columns are tried and the
// record is tagged accordingly.
func (n *Normalizer) NormalizeCognitive(rows []Row) []assessment.StudentRecord {
	records := make([]assessment.StudentRecord, 0, len(rows))
	for _, row := range rows {
		rec, ok := n.identity(row)
		if !ok {
			continue
		}
		scores, scale := n.cognitiveScores(row)
		rec.Cognitive = &assessment.CognitiveScores{Scale: scale, Scores: scores}
		records = append(records, rec)
	}
	return records
}

func (n *Normalizer) cognitiveScores(row Row) (map[core.FactorKey]float64, assessment.ScoreScale) {
	for _, key := range assessment.CognitiveDomains {
		if _, found := lookup(row, n.aliases.CognitiveSAS[key]); found {
			return n.readDomains(row, n.aliases.CognitiveSAS), assessment.ScaleSAS
		}
	}
	return n.readDomains(row, n.aliases.CognitiveStanine), assessment.ScaleStanine
}

func (n *Normalizer) readDomains(row Row, aliases map[core.FactorKey][]string) map[core.FactorKey]float64 {
	scores := make(map[core.FactorKey]float64, len(assessment.CognitiveDomains))
	for _, key := range assessment.CognitiveDomains {
		value := 0.0
		if cell, found := lookup(row, aliases[key]); found {
			value = parseNumber(cell)
		}
		scores[key] = value
	}
	return scores
}

// NormalizeAcademic converts subject-performance rows into partial records.
// Only subjects with at least one resolvable score column appear in the map.
func (n *Normalizer) NormalizeAcademic(rows []Row) []assessment.StudentRecord {
	records := make([]assessment.StudentRecord, 0, len(rows))
	for _, row := range rows {
		rec, ok := n.identity(row)
		if !ok {
			continue
		}
		subjects := make(map[string]assessment.SubjectScore)
		for _, sc := range n.aliases.Academic {
			score, present := readSubject(row, sc)
			if present {
				subjects[sc.Subject] = score
			}
		}
		rec.Academic = subjects
		records = append(records, rec)
	}
	return records
}

func readSubject(row Row, sc SubjectColumns) (assessment.SubjectScore, bool) {
	var score assessment.SubjectScore
	present := false
	if cell, found := lookup(row, sc.Mark); found {
		score.Mark = parseNumber(cell)
		present = true
	}
	if cell, found := lookup(row, sc.Percentile); found {
		score.Percentile = parseNumber(cell)
		present = true
	}
	if cell, found := lookup(row, sc.Stanine); found {
		score.Stanine = parseNumber(cell)
		present = true
	}
	return score, present
}

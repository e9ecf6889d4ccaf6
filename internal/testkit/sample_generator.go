// Package testkit generates seeded sample assessment data for tests and
// local demos. The three sources are emitted as raw rows under the
// production column headers so the full ingest pipeline is exercised.
package testkit

import (
	"fmt"
	"math"
	"math/rand"

	"edusight/internal/ingest"
)

// SampleConfig configures the sample data generator
type SampleConfig struct {
	StudentCount int      `json:"student_count"`
	Grades       []string `json:"grades"`
	Sections     []string `json:"sections"`
	Seed         int64    `json:"seed"`
}

// DefaultSampleConfig returns sensible defaults for sample data generation
func DefaultSampleConfig() SampleConfig {
	return SampleConfig{
		StudentCount: 100,
		Grades:       []string{"9", "10", "11", "12"},
		Sections:     []string{"A", "B", "C"},
		Seed:         42,
	}
}

// SampleGenerator generates realistic assessment rows
type SampleGenerator struct {
	config   SampleConfig
	rng      *rand.Rand
	students []sampleStudent
}

type sampleStudent struct {
	id      string
	name    string
	grade   string
	section string
}

var firstNames = []string{
	"Emma", "Liam", "Olivia", "Noah", "Ava", "Jackson", "Isabella", "Lucas",
	"Sophia", "Aiden", "Mia", "Elijah", "Harper", "Grayson", "Amelia",
	"Mason", "Evelyn", "Logan", "Abigail", "Carter", "Emily", "Muhammad",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

// NewSampleGenerator creates a new sample data generator
func NewSampleGenerator(config SampleConfig) *SampleGenerator {
	g := &SampleGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
	g.generateStudents()
	return g
}

func (g *SampleGenerator) generateStudents() {
	perClass := g.config.StudentCount/(len(g.config.Grades)*len(g.config.Sections)) + 1
	for _, grade := range g.config.Grades {
		for _, section := range g.config.Sections {
			for i := 1; i <= perClass; i++ {
				g.students = append(g.students, sampleStudent{
					id:      fmt.Sprintf("S2023%s%s%03d", grade, section, i),
					name:    g.pick(firstNames) + " " + g.pick(lastNames),
					grade:   grade,
					section: grade + section,
				})
			}
		}
	}
}

func (g *SampleGenerator) pick(list []string) string {
	return list[g.rng.Intn(len(list))]
}

// clippedNormal draws from N(mean, sd) clipped to [lo, hi], rounded.
func (g *SampleGenerator) clippedNormal(mean, sd, lo, hi float64) float64 {
	v := math.Round(g.rng.NormFloat64()*sd + mean)
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (g *SampleGenerator) baseRow(s sampleStudent) ingest.Row {
	return ingest.Row{
		"Student ID": s.id,
		"Name":       s.name,
		"Grade":      s.grade,
		"Section":    s.section,
	}
}

// Attitudinal generates survey percentile rows for every student.
func (g *SampleGenerator) Attitudinal() []ingest.Row {
	columns := []string{
		"Self-regard as a learner",
		"Perceived learning capability",
		"Attitudes to teachers",
		"General work ethic",
		"Confidence in learning",
		"Preparedness for learning",
		"Emotional control",
		"Social confidence",
		"Response to curriculum demands",
	}
	rows := make([]ingest.Row, 0, len(g.students))
	for _, s := range g.students {
		row := g.baseRow(s)
		for _, col := range columns {
			row[col] = fmt.Sprintf("%.0f", g.clippedNormal(60, 20, 1, 99))
		}
		rows = append(rows, row)
	}
	return rows
}

// Cognitive generates stanine rows for every student.
func (g *SampleGenerator) Cognitive() []ingest.Row {
	columns := []string{"Verbal Stanine", "Quantitative Stanine", "Non-verbal Stanine", "Spatial Stanine"}
	rows := make([]ingest.Row, 0, len(g.students))
	for _, s := range g.students {
		row := g.baseRow(s)
		for _, col := range columns {
			row[col] = fmt.Sprintf("%.0f", g.clippedNormal(5, 2, 1, 9))
		}
		rows = append(rows, row)
	}
	return rows
}

// Academic generates subject mark rows for every student.
func (g *SampleGenerator) Academic() []ingest.Row {
	subjects := []string{"English", "Mathematics", "Science", "Humanities"}
	rows := make([]ingest.Row, 0, len(g.students))
	for _, s := range g.students {
		row := g.baseRow(s)
		for _, subject := range subjects {
			mark := g.clippedNormal(70, 15, 0, 100)
			row[subject+" Mark"] = fmt.Sprintf("%.0f", mark)
			row[subject+" Stanine"] = fmt.Sprintf("%.0f", markToStanine(mark))
		}
		rows = append(rows, row)
	}
	return rows
}

// markToStanine buckets a 0-100 mark onto the 1-9 scale for sample data.
func markToStanine(mark float64) float64 {
	s := math.Floor(mark/100*9) + 1
	if s > 9 {
		return 9
	}
	if s < 1 {
		return 1
	}
	return s
}

// StudentIDs lists the generated student identifiers.
func (g *SampleGenerator) StudentIDs() []string {
	ids := make([]string, len(g.students))
	for i, s := range g.students {
		ids[i] = s.id
	}
	return ids
}

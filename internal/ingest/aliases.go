package ingest

import (
	"edusight/domain/assessment"
	"edusight/domain/core"
)

// ColumnAliases holds the ordered accepted-column-name lists for every
// canonical key of one source. The tables below are the default production
// mapping; callers may supply their own when a school exports under different
// headers.
type ColumnAliases struct {
	StudentID []string
	Name      []string
	Grade     []string
	Section   []string

	// Attitudinal maps canonical factor keys to survey column variants.
	Attitudinal map[core.FactorKey][]string

	// CognitiveSAS and CognitiveStanine map domain keys to column variants on
	// each scale. SAS columns are tried first; the first scale with any
	// resolvable column tags the whole row.
	CognitiveSAS     map[core.FactorKey][]string
	CognitiveStanine map[core.FactorKey][]string

	// Academic lists the recognized subjects and their column variants.
	Academic []SubjectColumns
}

// SubjectColumns describes where one academic subject's scores live.
type SubjectColumns struct {
	Subject    string
	Mark       []string
	Percentile []string
	Stanine    []string
}

// DefaultAliases returns the production alias tables, covering every header
// variant observed across school exports. Order within a list is precedence.
func DefaultAliases() ColumnAliases {
	return ColumnAliases{
		StudentID: []string{"Student ID", "UPM", "studentId"},
		Name:      []string{"Name", "Student Name", "name"},
		Grade:     []string{"Grade", "Year", "grade"},
		Section:   []string{"Section", "Class", "section"},

		Attitudinal: map[core.FactorKey][]string{
			assessment.FactorSelfRegard: {
				"Self-regard as a learner", "Self Regard", "Self-Regard",
				"Learner Self Regard P3",
			},
			assessment.FactorPerceivedLearning: {
				"Perceived learning capability", "Perceived Learning Capability",
				"Perceived Learning Capability P2",
			},
			assessment.FactorAttitudeTeachers: {
				"Attitudes to teachers", "Attitude to Teachers",
				"Attitudes to Teachers P5",
			},
			assessment.FactorWorkEthic: {
				"General work ethic", "General Work Ethic",
				"General Work Ethic P6",
			},
			assessment.FactorConfidence: {
				"Confidence in learning", "Confidence in Learning",
				"Confidence in Learning P7",
			},
			assessment.FactorPreparedness: {
				"Preparedness for learning", "Preparedness for Learning",
				"Preparedness for Learning P4",
			},
			assessment.FactorEmotionalControl: {
				"Emotional control", "Emotional Control",
			},
			assessment.FactorSocialConfidence: {
				"Social confidence", "Social Confidence",
			},
			assessment.FactorCurriculumDemand: {
				"Response to curriculum demands", "Response to curriculum",
				"Response to Curriculum Demands", "Curriculum Demands",
			},
		},

		CognitiveSAS: map[core.FactorKey][]string{
			assessment.DomainVerbal:       {"Verbal SAS", "verbal sas"},
			assessment.DomainQuantitative: {"Quantitative SAS", "quantitative sas", "Quant SAS"},
			assessment.DomainNonverbal:    {"Non-verbal SAS", "non-verbal sas", "Nonverbal SAS"},
			assessment.DomainSpatial:      {"Spatial SAS", "spatial sas"},
		},

		CognitiveStanine: map[core.FactorKey][]string{
			assessment.DomainVerbal:       {"Verbal Stanine", "Verbal"},
			assessment.DomainQuantitative: {"Quantitative Stanine", "Quantitative"},
			assessment.DomainNonverbal:    {"Non-verbal Stanine", "Nonverbal Stanine", "Non-verbal"},
			assessment.DomainSpatial:      {"Spatial Stanine", "Spatial"},
		},

		Academic: []SubjectColumns{
			{
				Subject:    "English",
				Mark:       []string{"English_Marks", "English Mark", "English Marks"},
				Percentile: []string{"English Percentile"},
				Stanine:    []string{"English Stanine"},
			},
			{
				Subject:    "Mathematics",
				Mark:       []string{"Math_Marks", "Mathematics Mark", "Maths Marks", "Math Marks"},
				Percentile: []string{"Mathematics Percentile", "Math Percentile"},
				Stanine:    []string{"Mathematics Stanine", "Math Stanine"},
			},
			{
				Subject:    "Science",
				Mark:       []string{"Science_Marks", "Science Mark", "Science Marks"},
				Percentile: []string{"Science Percentile"},
				Stanine:    []string{"Science Stanine"},
			},
			{
				Subject:    "Humanities",
				Mark:       []string{"Humanities_Marks", "Humanities Mark", "Humanities Marks"},
				Percentile: []string{"Humanities Percentile"},
				Stanine:    []string{"Humanities Stanine"},
			},
		},
	}
}

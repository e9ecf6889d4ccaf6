package assessment

import (
	"edusight/domain/core"
)

// Canonical attitudinal survey factor keys. Every variant spreadsheet column
// name resolves to one of these nine keys during normalization.
const (
	FactorSelfRegard        core.FactorKey = "self_regard"
	FactorPerceivedLearning core.FactorKey = "perceived_learning"
	FactorAttitudeTeachers  core.FactorKey = "attitude_teachers"
	FactorWorkEthic         core.FactorKey = "general_work_ethic"
	FactorConfidence        core.FactorKey = "confidence_learning"
	FactorPreparedness      core.FactorKey = "preparedness"
	FactorEmotionalControl  core.FactorKey = "emotional_control"
	FactorSocialConfidence  core.FactorKey = "social_confidence"
	FactorCurriculumDemand  core.FactorKey = "curriculum_demand"
)

// Canonical cognitive-ability domain keys.
const (
	DomainVerbal       core.FactorKey = "verbal"
	DomainQuantitative core.FactorKey = "quantitative"
	DomainNonverbal    core.FactorKey = "nonverbal"
	DomainSpatial      core.FactorKey = "spatial"
)

// AttitudinalFactors lists the nine survey factors in canonical order.
var AttitudinalFactors = []core.FactorKey{
	FactorSelfRegard,
	FactorPerceivedLearning,
	FactorAttitudeTeachers,
	FactorWorkEthic,
	FactorConfidence,
	FactorPreparedness,
	FactorEmotionalControl,
	FactorSocialConfidence,
	FactorCurriculumDemand,
}

// CognitiveDomains lists the four ability domains in canonical order.
var CognitiveDomains = []core.FactorKey{
	DomainVerbal,
	DomainQuantitative,
	DomainNonverbal,
	DomainSpatial,
}

// PNumber is the survey publisher's factor group label (P1-P9). Intervention
// rules key off these groups rather than individual factors.
type PNumber string

// PNumbers maps each attitudinal factor to its P-group.
var PNumbers = map[core.FactorKey]PNumber{
	FactorPerceivedLearning: "P1",
	FactorConfidence:        "P2",
	FactorSelfRegard:        "P3",
	FactorAttitudeTeachers:  "P4",
	FactorCurriculumDemand:  "P5",
	FactorWorkEthic:         "P6",
	FactorPreparedness:      "P7",
	FactorEmotionalControl:  "P8",
	FactorSocialConfidence:  "P9",
}

// DisplayNames maps canonical keys to the names shown in reports and API
// responses.
var DisplayNames = map[core.FactorKey]string{
	FactorSelfRegard:        "Self Regard",
	FactorPerceivedLearning: "Perceived Learning Capability",
	FactorAttitudeTeachers:  "Attitude to Teachers",
	FactorWorkEthic:         "General Work Ethic",
	FactorConfidence:        "Confidence in Learning",
	FactorPreparedness:      "Preparedness for Learning",
	FactorEmotionalControl:  "Emotional Control",
	FactorSocialConfidence:  "Social Confidence",
	FactorCurriculumDemand:  "Response to Curriculum Demands",

	DomainVerbal:       "Verbal Reasoning",
	DomainQuantitative: "Quantitative Reasoning",
	DomainNonverbal:    "Nonverbal Reasoning",
	DomainSpatial:      "Spatial Reasoning",
}

// Descriptions provides the advisor-facing explanation attached to each
// classified factor or domain.
var Descriptions = map[core.FactorKey]string{
	FactorSelfRegard:        "How positive a student feels about themselves as a learner and their ability to achieve. Low scores may indicate lack of confidence in learning abilities.",
	FactorPerceivedLearning: "How capable the student believes they are of learning new material. Low scores suggest the student doubts their capacity to improve.",
	FactorAttitudeTeachers:  "How the student perceives their relationships with teachers. Low scores suggest potential conflict or disconnect with teaching staff.",
	FactorWorkEthic:         "The student's approach to schoolwork and their sense of responsibility for their learning. Low scores indicate a lack of persistence and effort.",
	FactorConfidence:        "How confident the student feels when facing new learning challenges. Low scores indicate anxiety about academic demands.",
	FactorPreparedness:      "How organized and ready for learning the student feels. Low scores indicate difficulty with study routines and materials.",
	FactorEmotionalControl:  "The student's ability to manage their emotional response to setbacks and challenges. Low scores suggest difficulty regulating emotions in academic settings.",
	FactorSocialConfidence:  "How comfortable the student feels in social interactions with peers. Low scores indicate possible social anxiety or relationship challenges.",
	FactorCurriculumDemand:  "The student's perception of whether they can cope with the learning demands placed on them. Low scores suggest feeling overwhelmed by curriculum requirements.",

	DomainVerbal:       "The ability to understand and analyze words, verbal concepts, and extract information from text. Essential for reading comprehension and language-based subjects.",
	DomainQuantitative: "The ability to understand and solve problems using numbers and mathematical concepts. Central to success in mathematics and science.",
	DomainNonverbal:    "The ability to analyze visual information and solve problems using patterns, relationships, and visual logic. Important for scientific thinking and abstract problem-solving.",
	DomainSpatial:      "The ability to manipulate shapes and understand spatial relationships in two and three dimensions. Valuable for design, engineering, architecture, and visual arts.",
}

// DisplayName returns the display name for a key, falling back to the raw key.
func DisplayName(key core.FactorKey) string {
	if name, ok := DisplayNames[key]; ok {
		return name
	}
	return string(key)
}

// Package interventions maps classified risk patterns to ranked support
// recommendations. Atomic rules fire per factor; compound patterns fire on
// co-occurring signatures across domains.
package interventions

import (
	"edusight/domain/analysis"
	"edusight/domain/assessment"
)

// Intervention domains. Progress tracking relies on these exact labels to
// find the assessment domain an intervention targeted.
const (
	DomainEmotional  = "emotional"
	DomainBehavioral = "behavioral"
	DomainCognitive  = "cognitive"
	DomainAcademic   = "academic"
	DomainHolistic   = "holistic"
	DomainIntegrated = "integrated"
)

// template is one intervention blueprint from the rule table.
type template struct {
	domain      string
	title       string
	description string
	priority    analysis.Priority
}

// pGroupTemplates maps survey P-groups to their intervention blueprint.
// Groups P3/P7 target self-esteem, P4/P6 organization and time management,
// P5/P8 engagement and attendance; the remaining groups fall back to the
// generic factor-support template.
var pGroupTemplates = map[assessment.PNumber]template{
	"P3": selfEsteemTemplate,
	"P7": selfEsteemTemplate,
	"P4": organizationTemplate,
	"P6": organizationTemplate,
	"P5": engagementTemplate,
	"P8": engagementTemplate,
}

var selfEsteemTemplate = template{
	domain:      DomainEmotional,
	title:       "Self-Esteem Building",
	description: "Weekly sessions with a counselor focusing on identifying and celebrating strengths, with positive affirmation activities and reflective journaling.",
	priority:    analysis.PriorityHigh,
}

var organizationTemplate = template{
	domain:      DomainBehavioral,
	title:       "Organization and Time Management Coaching",
	description: "Weekly sessions to develop organizational skills, time management, and task prioritization strategies.",
	priority:    analysis.PriorityHigh,
}

var engagementTemplate = template{
	domain:      DomainBehavioral,
	title:       "Engagement and Attendance Mentoring",
	description: "Structured engagement strategies and attendance monitoring with an assigned staff mentor.",
	priority:    analysis.PriorityHigh,
}

var genericFactorTemplate = template{
	domain:      DomainEmotional,
	title:       "Factor Support Plan",
	description: "Targeted support plan addressing the identified attitudinal risk through advisor check-ins and goal setting.",
	priority:    analysis.PriorityMedium,
}

// cognitiveTemplates maps each ability domain to its development blueprint.
var cognitiveTemplates = map[string]template{
	"Verbal Reasoning": {
		domain:      DomainCognitive,
		title:       "Verbal Skills Development",
		description: "Explicit instruction in vocabulary development, reading comprehension strategies, and verbal expression.",
		priority:    analysis.PriorityHigh,
	},
	"Quantitative Reasoning": {
		domain:      DomainCognitive,
		title:       "Numeracy Intervention",
		description: "Targeted support for numerical operations, mathematical vocabulary, and quantitative problem-solving.",
		priority:    analysis.PriorityHigh,
	},
	"Nonverbal Reasoning": {
		domain:      DomainCognitive,
		title:       "Pattern Reasoning Development",
		description: "Structured practice with visual patterns, logical sequences, and abstract problem-solving tasks.",
		priority:    analysis.PriorityHigh,
	},
	"Spatial Reasoning": {
		domain:      DomainCognitive,
		title:       "Spatial Skills Development",
		description: "Activities building mental rotation, diagram interpretation, and two- and three-dimensional visualization.",
		priority:    analysis.PriorityHigh,
	},
}

var readingComprehensionTemplate = template{
	domain:      DomainCognitive,
	title:       "Reading Comprehension Boosters",
	description: "Daily guided reading with comprehension checks, targeted at closing the verbal reasoning gap.",
	priority:    analysis.PriorityHigh,
}

// holisticTemplates are the two interventions every fragile learner receives.
var holisticTemplates = []template{
	{
		domain:      DomainHolistic,
		title:       "Comprehensive Learning Support",
		description: "Multi-faceted approach combining cognitive scaffolding, additional processing time, and alternative assessment options.",
		priority:    analysis.PriorityHigh,
	},
	{
		domain:      DomainHolistic,
		title:       "Holistic Learning Support",
		description: "Comprehensive multi-domain support addressing cognitive and attitudinal factors through a coordinated plan.",
		priority:    analysis.PriorityHigh,
	},
}

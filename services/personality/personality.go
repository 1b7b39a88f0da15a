// Package personality maps a founder's self-reported trait profile to the
// tone, pacing, and example directives woven into the mentor prompt. A nil or
// incomplete profile always degrades to neutral defaults.
package personality

import "founderforge/models"

type TraitOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type Trait struct {
	Key      string        `json:"key"`
	Title    string        `json:"title"`
	Question string        `json:"question"`
	Options  []TraitOption `json:"options"`
}

// Traits is the fixed assessment catalog: five traits, four options each.
var Traits = []Trait{
	{
		Key: "workStyle", Title: "Work Style", Question: "How do you prefer to work on projects?",
		Options: []TraitOption{
			{ID: "methodical", Label: "Methodical & Planned", Description: "I like clear steps and detailed planning"},
			{ID: "iterative", Label: "Iterative & Flexible", Description: "I prefer to start quickly and adjust as I go"},
			{ID: "creative", Label: "Creative & Exploratory", Description: "I enjoy exploring many possibilities before deciding"},
			{ID: "analytical", Label: "Analytical & Data-Driven", Description: "I need data and evidence before making decisions"},
		},
	},
	{
		Key: "experience", Title: "Experience Level", Question: "What's your background with startups?",
		Options: []TraitOption{
			{ID: "first-timer", Label: "First-Timer", Description: "This is my first startup journey"},
			{ID: "side-hustler", Label: "Side Hustler", Description: "I've tried side projects while employed"},
			{ID: "serial", Label: "Serial Entrepreneur", Description: "I've built multiple ventures"},
			{ID: "corporate", Label: "Corporate Background", Description: "I'm transitioning from corporate work"},
		},
	},
	{
		Key: "motivation", Title: "Primary Motivation", Question: "What drives you to build a startup?",
		Options: []TraitOption{
			{ID: "problem-solver", Label: "Problem Solver", Description: "I'm passionate about solving real problems"},
			{ID: "freedom-seeker", Label: "Freedom Seeker", Description: "I want independence and control over my work"},
			{ID: "impact-driven", Label: "Impact Driven", Description: "I want to make a significant difference"},
			{ID: "wealth-builder", Label: "Wealth Builder", Description: "I'm focused on financial success"},
		},
	},
	{
		Key: "learning", Title: "Learning Style", Question: "How do you prefer to learn new concepts?",
		Options: []TraitOption{
			{ID: "by-doing", Label: "By Doing", Description: "I learn best through hands-on practice"},
			{ID: "by-example", Label: "By Example", Description: "I need to see real examples and cases"},
			{ID: "by-theory", Label: "By Theory", Description: "I like to understand principles first"},
			{ID: "by-discussion", Label: "By Discussion", Description: "I learn through conversation and feedback"},
		},
	},
	{
		Key: "pace", Title: "Preferred Pace", Question: "What pace feels right for you?",
		Options: []TraitOption{
			{ID: "sprint", Label: "Sprint Mode", Description: "Fast and intense, get it done quickly"},
			{ID: "marathon", Label: "Marathon Mode", Description: "Steady and sustainable progress"},
			{ID: "bursts", Label: "Burst Mode", Description: "Intense periods followed by reflection"},
			{ID: "deliberate", Label: "Deliberate Mode", Description: "Careful and thorough at each step"},
		},
	},
}

// Tone describes how the mentor should frame its communication.
type Tone struct {
	Style         string `json:"style"`
	Prefix        string `json:"prefix,omitempty"`
	QuestionStyle string `json:"questionStyle,omitempty"`
}

var tones = map[string]Tone{
	"by-doing":      {Style: "action-oriented", Prefix: "Let's dive in:", QuestionStyle: "What did you build/try/test?"},
	"by-example":    {Style: "example-heavy", Prefix: "Here's how others did it:", QuestionStyle: "Similar to how Airbnb did X, what's your approach?"},
	"by-theory":     {Style: "conceptual", Prefix: "The principle here is:", QuestionStyle: "Based on the framework, how would you apply this?"},
	"by-discussion": {Style: "conversational", Prefix: "Let's talk through this:", QuestionStyle: "What are your thoughts on this?"},
}

// GetTone returns the communication style for the profile, or the balanced
// default when no profile (or an unknown option) is present.
func GetTone(p *models.Personality) Tone {
	if p == nil {
		return Tone{Style: "balanced"}
	}
	if tone, ok := tones[p.Learning]; ok {
		return tone
	}
	return Tone{Style: "balanced"}
}

// Pacing suggests how many tasks to push and in what timeframe.
type Pacing struct {
	Tasks     int    `json:"tasks"`
	Timeframe string `json:"timeframe"`
	Reminder  string `json:"reminder,omitempty"`
}

var pacings = map[string]Pacing{
	"sprint":     {Tasks: 3, Timeframe: "today", Reminder: "You're in sprint mode. Keep the momentum!"},
	"marathon":   {Tasks: 1, Timeframe: "this week", Reminder: "Steady progress wins. No rush."},
	"bursts":     {Tasks: 2, Timeframe: "next few days", Reminder: "Push hard, then take time to reflect."},
	"deliberate": {Tasks: 1, Timeframe: "take your time", Reminder: "Quality over speed. Do it right."},
}

func GetPacing(p *models.Personality) Pacing {
	if p == nil {
		return Pacing{Tasks: 1, Timeframe: "this week"}
	}
	if pacing, ok := pacings[p.Pace]; ok {
		return pacing
	}
	return Pacing{Tasks: 1, Timeframe: "this week"}
}

var encouragements = map[string]map[string]string{
	"first-timer": {
		"early":  "Every successful founder started exactly where you are. Focus on learning, not perfection.",
		"middle": "You're building founder muscles. Each conversation and iteration makes you stronger.",
		"late":   "Look how far you've come from day one. You're becoming a real founder.",
	},
	"side-hustler": {
		"early":  "Your experience juggling priorities is a superpower. Use those time management skills.",
		"middle": "You know how to ship in constraints. That's exactly what this stage needs.",
		"late":   "Time to consider if this deserves more than side-hustle energy.",
	},
	"serial": {
		"early":  "You know the drill, but stay curious. This problem might surprise you.",
		"middle": "Use your experience, but don't skip the validation. Every market is different.",
		"late":   "You've been here before. Trust your instincts on what comes next.",
	},
	"corporate": {
		"early":  "Your structured thinking is valuable. Just remember: done beats perfect in startups.",
		"middle": "You're unlearning corporate pace. Embrace the scrappy startup mindset.",
		"late":   "Your professional network could be your secret weapon for growth.",
	},
}

// GetEncouragement keys a line on experience level and the curriculum band
// (early/middle/late third of the stages). Empty when no profile.
func GetEncouragement(p *models.Personality, stageIndex, stageCount int) string {
	if p == nil || stageCount == 0 {
		return ""
	}
	byBand, ok := encouragements[p.Experience]
	if !ok {
		return ""
	}
	return byBand[stageBand(stageIndex, stageCount)]
}

func stageBand(stageIndex, stageCount int) string {
	switch {
	case stageIndex*3 < stageCount:
		return "early"
	case stageIndex*3 < stageCount*2:
		return "middle"
	default:
		return "late"
	}
}

var workedExamples = map[string]map[string]string{
	"methodical": {
		"problemHypothesis": "Software developers at mid-size companies struggle with tracking technical debt because it's not visible in their project management tools. They currently maintain separate spreadsheets, costing them 3-5 hours weekly on manual updates.",
		"approach":          "Let's break this down systematically. First, we'll define each component precisely, then validate each assumption with data.",
	},
	"iterative": {
		"problemHypothesis": "Freelance designers struggle to get client feedback quickly because clients don't understand design language. They use endless email threads, losing 30% of project time to revisions.",
		"approach":          "Let's start with a rough hypothesis and refine it through quick conversations. We'll adjust as we learn.",
	},
	"creative": {
		"problemHypothesis": "Content creators on TikTok struggle with burnout from constant posting pressure because the algorithm demands daily content. They sacrifice quality for quantity, losing 50% of their creative joy.",
		"approach":          "Let's explore different angles of this problem. There might be unexpected connections we haven't considered.",
	},
	"analytical": {
		"problemHypothesis": "E-commerce store owners with $10K-50K monthly revenue struggle with inventory forecasting because they lack predictive tools. They overstock by 40% on average, tying up $15K in dead inventory.",
		"approach":          "We need data to validate each claim. Let's quantify the problem with specific metrics and evidence.",
	},
}

// GetWorkedExample returns a work-style-keyed example for the given context
// ("problemHypothesis", "approach"), or empty when unavailable.
func GetWorkedExample(p *models.Personality, context string) string {
	if p == nil {
		return ""
	}
	if byContext, ok := workedExamples[p.WorkStyle]; ok {
		return byContext[context]
	}
	return ""
}

// Summary joins the selected option labels for display.
func Summary(p *models.Personality) string {
	if p == nil {
		return ""
	}
	selected := map[string]string{
		"workStyle":  p.WorkStyle,
		"experience": p.Experience,
		"motivation": p.Motivation,
		"learning":   p.Learning,
		"pace":       p.Pace,
	}
	out := ""
	for _, trait := range Traits {
		id := selected[trait.Key]
		for _, opt := range trait.Options {
			if opt.ID == id {
				if out != "" {
					out += " • "
				}
				out += opt.Label
			}
		}
	}
	return out
}

// IsComplete reports whether every trait has a selection.
func IsComplete(p *models.Personality) bool {
	if p == nil {
		return false
	}
	return p.WorkStyle != "" && p.Experience != "" && p.Motivation != "" && p.Learning != "" && p.Pace != ""
}

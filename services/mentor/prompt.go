package mentor

import (
	"fmt"
	"strings"

	"founderforge/models"
	"founderforge/services/completion"
	"founderforge/services/curriculum"
	"founderforge/services/memory"
	"founderforge/services/personality"
)

// MaxPromptChars caps the assembled system prompt. When the budget is
// exceeded, the memory digest is cut first, then the oldest journey entries;
// task and curriculum content is load-bearing and never truncated.
const MaxPromptChars = 24000

const MENTOR_PERSONA = `You are a world-class startup mentor — think Paul Graham meets a demanding but caring professor.

PERSONALITY: Direct, warm, punchy. 2-4 paragraphs MAX. Real examples. Push back on vague. Celebrate breakthroughs. ONE question at a time.`

const MENTOR_RULES = `━━━ RULES ━━━
1. First message with no conversation → deliver this intro: %s
2. After response → evaluate against output + criteria.
3. Incomplete → name good + missing.
4. Vague → push for specifics.
5. Off-topic → redirect: "Let's focus. I need: %s"
6. COMPLETE → praise + deliverable + completion tag.
7. Reference previous deliverables when relevant.
8. CONCISE. 2-4 paragraphs.

COMPLETION FORMAT (ONLY when all criteria met):
%s
(2-4 sentence summary of their work)
%s
%s`

// PromptInput carries everything the synthesizer reads. All fields except
// Stage/Task may be nil or zero; the output degrades gracefully.
type PromptInput struct {
	Stage       curriculum.Stage
	Task        curriculum.Task
	TaskIndex   int
	UserName    string
	Project     *models.Project
	Memory      *models.UserMemory
	Personality *models.Personality
}

// BuildSystemPrompt assembles the full instruction payload for one exchange.
// Deliverable history is stage-ordered, so the same inputs always produce the
// same prompt.
func BuildSystemPrompt(in PromptInput) string {
	journey := journeyEntries(in.Project)
	digest := ""
	if in.Memory != nil {
		projectID := ""
		if in.Project != nil {
			projectID = in.Project.ID
		}
		digest = memory.MentorDigest(in.Memory, projectID)
	}

	prompt := assemble(in, journey, digest)
	if len(prompt) <= MaxPromptChars {
		return prompt
	}

	// Over budget: drop the digest, then the oldest journey entries.
	prompt = assemble(in, journey, "")
	for len(prompt) > MaxPromptChars && len(journey) > 0 {
		journey = journey[1:]
		prompt = assemble(in, journey, "")
	}
	return prompt
}

func assemble(in PromptInput, journey []string, digest string) string {
	var b strings.Builder

	b.WriteString(MENTOR_PERSONA)
	b.WriteString("\n\n")

	projectName := "Untitled"
	if in.Project != nil && in.Project.Name != "" {
		projectName = in.Project.Name
	}
	userName := in.UserName
	if userName == "" {
		userName = "Founder"
	}
	stageCount := len(curriculum.Stages())
	fmt.Fprintf(&b, "PROJECT: %q\nUser: %s\nPOSITION: Step %d/%d %q → Task %d/%d %q\n\n",
		projectName, userName,
		in.Stage.ID, stageCount, in.Stage.Title,
		in.TaskIndex+1, len(in.Stage.Tasks), in.Task.Title)

	fmt.Fprintf(&b, "━━━ CURRICULUM ━━━\nStep overview: %s\nLearning goal: %s\nRequired output: %s\nQuality criteria: %s\nEvaluation guide: %s\n\n",
		in.Stage.Overview, in.Task.Goal, in.Task.Output, in.Task.Criteria, in.Task.Eval)

	b.WriteString("━━━ FOUNDER'S JOURNEY SO FAR ━━━\n")
	if len(journey) == 0 {
		b.WriteString("(No deliverables yet)\n\n")
	} else {
		b.WriteString(strings.Join(journey, "\n\n"))
		b.WriteString("\n\n")
	}

	if in.Project != nil {
		if existing, ok := in.Project.Deliverables[in.Task.ID]; ok {
			fmt.Fprintf(&b, "━━━ EXISTING DELIVERABLE (revisiting) ━━━\n%s\n\n", existing)
		}
	}

	if digest != "" {
		fmt.Fprintf(&b, "━━━ WHAT I KNOW ABOUT THIS FOUNDER ━━━\n%s\n\n", digest)
	}

	if section := personalitySection(in.Personality, in.Stage.ID, in.Task.ID); section != "" {
		fmt.Fprintf(&b, "━━━ MENTORING ADAPTATION ━━━\n%s\n\n", section)
	}

	fmt.Fprintf(&b, MENTOR_RULES,
		in.Task.Intro, in.Task.Output,
		completion.DeliverableStart, completion.DeliverableEnd, completion.TaskComplete)

	return b.String()
}

// journeyEntries returns the committed deliverables in curriculum order.
func journeyEntries(project *models.Project) []string {
	if project == nil || len(project.Deliverables) == 0 {
		return nil
	}
	var entries []string
	for _, stage := range curriculum.Stages() {
		for _, task := range stage.Tasks {
			if text, ok := project.Deliverables[task.ID]; ok {
				entries = append(entries, fmt.Sprintf("[%s → %s]: %s", stage.Title, task.Title, text))
			}
		}
	}
	return entries
}

func personalitySection(p *models.Personality, stageID int, taskID string) string {
	if p == nil {
		return ""
	}

	var lines []string
	tone := personality.GetTone(p)
	if tone.Style != "balanced" {
		lines = append(lines, fmt.Sprintf("Communication style: %s. Frame questions like: %q", tone.Style, tone.QuestionStyle))
	}

	pacing := personality.GetPacing(p)
	lines = append(lines, strings.TrimSpace(fmt.Sprintf("Pacing: suggest up to %d task(s) %s. %s", pacing.Tasks, pacing.Timeframe, pacing.Reminder)))

	stageIndex, _ := curriculum.StageIndex(stageID)
	if enc := personality.GetEncouragement(p, stageIndex, len(curriculum.Stages())); enc != "" {
		lines = append(lines, "Encouragement to weave in: "+enc)
	}

	exampleContext := "approach"
	if taskID == "1.1" {
		exampleContext = "problemHypothesis"
	}
	if example := personality.GetWorkedExample(p, exampleContext); example != "" {
		lines = append(lines, fmt.Sprintf("Worked example for their %s style: %q", p.WorkStyle, example))
	}

	return strings.Join(lines, "\n")
}

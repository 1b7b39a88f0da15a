package memory

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"founderforge/models"

	"github.com/samber/lo"
)

// Serialized record size above which health reporting flags the memory.
const healthSizeLimit = 500_000

const ExportVersion = "1.0"

// RelevantContext is the read-path digest for a project/task: recent slices of
// each list plus the challenge/success patterns.
type RelevantContext struct {
	Project         *models.ProjectMemory  `json:"project"`
	RecentInsights  []models.Insight       `json:"recentInsights"`
	RecentDecisions []models.Decision      `json:"recentDecisions"`
	Challenges      []models.PatternEntry  `json:"challenges"`
	Successes       []models.PatternEntry  `json:"successes"`
	LastSession     *models.SessionSummary `json:"lastSession"`
}

func Context(m *models.UserMemory, projectID string) RelevantContext {
	decisions := lo.Filter(m.Decisions, func(d models.Decision, _ int) bool {
		return projectID == "" || d.ProjectID == projectID
	})
	ctx := RelevantContext{
		Project:         m.Projects[projectID],
		RecentInsights:  lastN(m.Insights, 5),
		RecentDecisions: lastN(decisions, 3),
		Challenges:      m.Patterns[models.PatternStickingPoints],
		Successes:       m.Patterns[models.PatternSuccesses],
	}
	if len(m.Sessions) > 0 {
		last := m.Sessions[len(m.Sessions)-1]
		ctx.LastSession = &last
	}
	return ctx
}

// MentorDigest flattens the most salient memories into a short text block for
// the system prompt. It is intentionally bounded: profile highlights, the last
// two high-importance insights, a couple of project learnings, and recurring
// challenges seen more than twice. Never the full record.
func MentorDigest(m *models.UserMemory, projectID string) string {
	var lines []string

	if m.Profile.Background != "" {
		lines = append(lines, "Background: "+m.Profile.Background)
	}
	if len(m.Profile.Goals) > 0 {
		lines = append(lines, "Goals: "+strings.Join(lastN(m.Profile.Goals, 3), ", "))
	}
	if len(m.Profile.Challenges) > 0 {
		lines = append(lines, "Known challenges: "+strings.Join(lastN(m.Profile.Challenges, 3), ", "))
	}

	highInsights := lo.Filter(m.Insights, func(i models.Insight, _ int) bool {
		return i.Importance == models.ImportanceHigh
	})
	if recent := lastN(highInsights, 2); len(recent) > 0 {
		contents := lo.Map(recent, func(i models.Insight, _ int) string { return i.Content })
		lines = append(lines, "Recent insights: "+strings.Join(contents, "; "))
	}

	if pm := m.Projects[projectID]; pm != nil && len(pm.KeyLearnings) > 0 {
		lines = append(lines, "Project learnings: "+strings.Join(lastN(pm.KeyLearnings, 2), "; "))
	}

	recurring := lo.Filter(m.Patterns[models.PatternStickingPoints], func(p models.PatternEntry, _ int) bool {
		return p.Frequency > 2
	})
	if len(recurring) > 2 {
		recurring = recurring[:2]
	}
	if len(recurring) > 0 {
		names := lo.Map(recurring, func(p models.PatternEntry, _ int) string { return p.Pattern })
		lines = append(lines, "Recurring challenges: "+strings.Join(names, ", "))
	}

	return strings.Join(lines, "\n")
}

// Summary aggregates counts and recent milestones for the dashboard read path.
type Summary struct {
	TotalProjects    int                   `json:"totalProjects"`
	ActiveProjects   int                   `json:"activeProjects"`
	TotalInsights    int                   `json:"totalInsights"`
	TotalDecisions   int                   `json:"totalDecisions"`
	TotalMilestones  int                   `json:"totalMilestones"`
	LastActive       time.Time             `json:"lastActive"`
	TopChallenges    []models.PatternEntry `json:"topChallenges"`
	TopSuccesses     []models.PatternEntry `json:"topSuccesses"`
	RecentMilestones []models.Milestone    `json:"recentMilestones"`
}

func Summarize(m *models.UserMemory) Summary {
	active := lo.CountBy(lo.Values(m.Projects), func(pm *models.ProjectMemory) bool { return !pm.Archived })
	return Summary{
		TotalProjects:    len(m.Projects),
		ActiveProjects:   active,
		TotalInsights:    len(m.Insights),
		TotalDecisions:   len(m.Decisions),
		TotalMilestones:  len(m.Milestones),
		LastActive:       m.LastActive,
		TopChallenges:    firstN(m.Patterns[models.PatternStickingPoints], 3),
		TopSuccesses:     firstN(m.Patterns[models.PatternSuccesses], 3),
		RecentMilestones: lastN(m.Milestones, 3),
	}
}

// Health is a diagnostic, never an error: it drives optional UI prompts and
// must not block writes.
type Health struct {
	IsHealthy   bool     `json:"isHealthy"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

func CheckHealth(m *models.UserMemory) Health {
	health := Health{IsHealthy: true, Issues: []string{}, Suggestions: []string{}}

	if serialized, err := json.Marshal(m); err == nil && len(serialized) > healthSizeLimit {
		health.Issues = append(health.Issues, "Memory size is large")
		health.Suggestions = append(health.Suggestions, "Consider pruning old memories")
		health.IsHealthy = false
	}

	if time.Since(m.LastActive) > PruneWindow {
		health.Issues = append(health.Issues, "Memory is stale")
		health.Suggestions = append(health.Suggestions, "Review and update user context")
	}

	uncelebrated := lo.CountBy(m.Milestones, func(ms models.Milestone) bool { return !ms.Celebrated })
	if uncelebrated > 3 {
		health.Suggestions = append(health.Suggestions, fmt.Sprintf("Celebrate %d achievements!", uncelebrated))
	}

	return health
}

// Export wraps the record with an export timestamp and version tag.
type Export struct {
	Exported time.Time          `json:"exported"`
	Version  string             `json:"version"`
	Memory   *models.UserMemory `json:"memory"`
}

func ExportRecord(m *models.UserMemory) Export {
	return Export{Exported: time.Now().UTC(), Version: ExportVersion, Memory: m}
}

// Import merges a previously exported record into the current one: profile
// fields from the import win, list entries are deduplicated by id, pattern
// frequencies are summed. The merged record is pruned before returning.
func Import(current, imported *models.UserMemory) {
	if imported == nil {
		return
	}
	imported.Normalize()

	if imported.Profile.Background != "" {
		current.Profile.Background = imported.Profile.Background
	}
	current.Profile.Goals = mergeUnique(current.Profile.Goals, imported.Profile.Goals)
	current.Profile.Challenges = mergeUnique(current.Profile.Challenges, imported.Profile.Challenges)
	current.Profile.Strengths = mergeUnique(current.Profile.Strengths, imported.Profile.Strengths)
	current.Profile.Preferences = mergeUnique(current.Profile.Preferences, imported.Profile.Preferences)

	for id, pm := range imported.Projects {
		current.Projects[id] = pm
	}

	current.Insights = lo.UniqBy(append(current.Insights, imported.Insights...), func(i models.Insight) string { return i.ID })
	current.Decisions = lo.UniqBy(append(current.Decisions, imported.Decisions...), func(d models.Decision) string { return d.ID })
	current.Milestones = lo.UniqBy(append(current.Milestones, imported.Milestones...), func(ms models.Milestone) string { return ms.ID })

	for bucket, entries := range imported.Patterns {
		current.Patterns[bucket] = mergePatterns(current.Patterns[bucket], entries)
	}

	Prune(current)
}

// ClearSection resets one section of the record. Section "all" resets the
// whole record in place; "project" needs the project id.
func ClearSection(m *models.UserMemory, section, projectID string) error {
	switch section {
	case "project":
		delete(m.Projects, projectID)
	case "insights":
		m.Insights = []models.Insight{}
	case "decisions":
		m.Decisions = []models.Decision{}
	case "patterns":
		m.Patterns = map[string][]models.PatternEntry{}
	case "sessions":
		m.Sessions = []models.SessionSummary{}
	case "all":
		*m = *models.NewUserMemory(m.UserID, time.Now().UTC())
	default:
		return fmt.Errorf("invalid memory section: %q", section)
	}
	m.Normalize()
	return nil
}

func mergePatterns(current, imported []models.PatternEntry) []models.PatternEntry {
	merged := append([]models.PatternEntry{}, current...)
	for _, entry := range imported {
		idx := lo.IndexOf(lo.Map(merged, func(e models.PatternEntry, _ int) string { return e.Pattern }), entry.Pattern)
		if idx >= 0 {
			merged[idx].Frequency += entry.Frequency
			if entry.LastSeen.After(merged[idx].LastSeen) {
				merged[idx].LastSeen = entry.LastSeen
			}
		} else {
			merged = append(merged, entry)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Frequency > merged[j].Frequency })
	if len(merged) > MaxPatternsPerBucket {
		merged = merged[:MaxPatternsPerBucket]
	}
	return merged
}

func mergeUnique(current, imported []string) []string {
	return lo.Uniq(append(current, imported...))
}

func lastN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

package memory

import (
	"fmt"
	"sort"
	"time"

	"founderforge/models"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// List caps. Each capped list is a FIFO cache: once the cap is exceeded the
// oldest entries are evicted on insert. High-importance insights are exempt
// from age-based pruning but not from the insert cap.
const (
	MaxInsights          = 50
	MaxDecisions         = 30
	MaxPatternsPerBucket = 10
	MaxMilestones        = 20
	MaxSessions          = 10
)

// PruneWindow is the rolling window used by Prune and staleness checks.
const PruneWindow = 30 * 24 * time.Hour

// AddInsight appends an insight and enforces the FIFO cap.
func AddInsight(m *models.UserMemory, content string, ctx models.InsightContext) {
	importance := ctx.Importance
	if importance == "" {
		importance = models.ImportanceNormal
	}
	m.Insights = append(m.Insights, models.Insight{
		ID:         fmt.Sprintf("insight_%s", uuid.NewString()),
		Timestamp:  time.Now().UTC(),
		Content:    content,
		Context:    ctx,
		Importance: importance,
	})
	if len(m.Insights) > MaxInsights {
		m.Insights = m.Insights[len(m.Insights)-MaxInsights:]
	}
}

// RecordDecision appends a decision and enforces the FIFO cap.
func RecordDecision(m *models.UserMemory, decision, reasoning, projectID string) {
	m.Decisions = append(m.Decisions, models.Decision{
		ID:        fmt.Sprintf("decision_%s", uuid.NewString()),
		Timestamp: time.Now().UTC(),
		Decision:  decision,
		Reasoning: reasoning,
		ProjectID: projectID,
	})
	if len(m.Decisions) > MaxDecisions {
		m.Decisions = m.Decisions[len(m.Decisions)-MaxDecisions:]
	}
}

// UpdatePatterns counts one occurrence of pattern in the named bucket. An
// existing entry with identical text gets its frequency bumped and lastSeen
// refreshed; otherwise a new entry starts at frequency 1. The bucket is then
// re-ranked by frequency and truncated to the top entries; lower-frequency
// patterns fall off. This is a saliency cache, not a full log.
func UpdatePatterns(m *models.UserMemory, bucket, pattern string) {
	now := time.Now().UTC()
	entries := m.Patterns[bucket]

	if idx := lo.IndexOf(lo.Map(entries, func(e models.PatternEntry, _ int) string { return e.Pattern }), pattern); idx >= 0 {
		entries[idx].Frequency++
		entries[idx].LastSeen = now
	} else {
		entries = append(entries, models.PatternEntry{
			Pattern:   pattern,
			Frequency: 1,
			FirstSeen: now,
			LastSeen:  now,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Frequency > entries[j].Frequency })
	if len(entries) > MaxPatternsPerBucket {
		entries = entries[:MaxPatternsPerBucket]
	}
	m.Patterns[bucket] = entries
}

// AddMilestone appends a milestone and enforces the FIFO cap.
func AddMilestone(m *models.UserMemory, text, projectID string) {
	m.Milestones = append(m.Milestones, models.Milestone{
		ID:        fmt.Sprintf("milestone_%s", uuid.NewString()),
		Timestamp: time.Now().UTC(),
		Milestone: text,
		ProjectID: projectID,
	})
	if len(m.Milestones) > MaxMilestones {
		m.Milestones = m.Milestones[len(m.Milestones)-MaxMilestones:]
	}
}

// AddSessionSummary appends a session summary and enforces the FIFO cap.
func AddSessionSummary(m *models.UserMemory, summary models.SessionSummary) {
	summary.ID = fmt.Sprintf("session_%s", uuid.NewString())
	summary.Timestamp = time.Now().UTC()
	if summary.Mood == "" {
		summary.Mood = "productive"
	}
	m.Sessions = append(m.Sessions, summary)
	if len(m.Sessions) > MaxSessions {
		m.Sessions = m.Sessions[len(m.Sessions)-MaxSessions:]
	}
}

// ProjectMemoryUpdate is a partial update applied over the stored per-project
// memory. Nil fields are left untouched.
type ProjectMemoryUpdate struct {
	Context      map[string]string `json:"context,omitempty"`
	KeyLearnings []string          `json:"keyLearnings,omitempty"`
	Challenges   []string          `json:"challenges,omitempty"`
	Progress     map[string]string `json:"progress,omitempty"`
}

// UpdateProjectMemory merges a partial update into the per-project memory,
// creating it on first touch.
func UpdateProjectMemory(m *models.UserMemory, projectID string, update ProjectMemoryUpdate) {
	now := time.Now().UTC()
	pm, ok := m.Projects[projectID]
	if !ok {
		pm = &models.ProjectMemory{
			ID:           projectID,
			CreatedAt:    now,
			Context:      map[string]string{},
			KeyLearnings: []string{},
			Challenges:   []string{},
			Progress:     map[string]string{},
		}
		m.Projects[projectID] = pm
	}
	for k, v := range update.Context {
		pm.Context[k] = v
	}
	for k, v := range update.Progress {
		pm.Progress[k] = v
	}
	pm.KeyLearnings = append(pm.KeyLearnings, update.KeyLearnings...)
	pm.Challenges = append(pm.Challenges, update.Challenges...)
	pm.LastUpdated = now
	pm.Archived = false
}

// Prune is the periodic housekeeping pass: drops normal-importance insights
// and session summaries older than the rolling window and marks untouched
// projects as archived. Idempotent and safe to run at any time.
func Prune(m *models.UserMemory) {
	cutoff := time.Now().UTC().Add(-PruneWindow)

	m.Insights = lo.Filter(m.Insights, func(i models.Insight, _ int) bool {
		return i.Importance == models.ImportanceHigh || i.Timestamp.After(cutoff)
	})
	m.Sessions = lo.Filter(m.Sessions, func(s models.SessionSummary, _ int) bool {
		return s.Timestamp.After(cutoff)
	})
	for _, pm := range m.Projects {
		if pm.LastUpdated.Before(cutoff) {
			pm.Archived = true
		}
	}
}

package memory

import (
	"fmt"
	"testing"
	"time"

	"founderforge/models"
)

func newMemory() *models.UserMemory {
	return models.NewUserMemory("user-1", time.Now().UTC())
}

func TestAddInsightCap(t *testing.T) {
	m := newMemory()

	for i := 0; i < MaxInsights+7; i++ {
		AddInsight(m, fmt.Sprintf("insight %d", i), models.InsightContext{})
	}

	if len(m.Insights) != MaxInsights {
		t.Fatalf("insights length = %d, want %d", len(m.Insights), MaxInsights)
	}
	// FIFO: the oldest seven are gone, the newest survives.
	if got := m.Insights[0].Content; got != "insight 7" {
		t.Errorf("oldest surviving insight = %q, want %q", got, "insight 7")
	}
	if got := m.Insights[len(m.Insights)-1].Content; got != fmt.Sprintf("insight %d", MaxInsights+6) {
		t.Errorf("newest insight = %q", got)
	}
}

func TestAddInsightDefaultsImportance(t *testing.T) {
	m := newMemory()
	AddInsight(m, "plain", models.InsightContext{})
	AddInsight(m, "important", models.InsightContext{Importance: models.ImportanceHigh})

	if m.Insights[0].Importance != models.ImportanceNormal {
		t.Errorf("importance = %q, want %q", m.Insights[0].Importance, models.ImportanceNormal)
	}
	if m.Insights[1].Importance != models.ImportanceHigh {
		t.Errorf("importance = %q, want %q", m.Insights[1].Importance, models.ImportanceHigh)
	}
	if m.Insights[0].ID == m.Insights[1].ID {
		t.Error("insight ids collide")
	}
}

func TestRecordDecisionCap(t *testing.T) {
	m := newMemory()
	for i := 0; i < MaxDecisions+3; i++ {
		RecordDecision(m, fmt.Sprintf("decision %d", i), "because", "proj-1")
	}
	if len(m.Decisions) != MaxDecisions {
		t.Fatalf("decisions length = %d, want %d", len(m.Decisions), MaxDecisions)
	}
	if m.Decisions[0].Decision != "decision 3" {
		t.Errorf("oldest surviving decision = %q, want %q", m.Decisions[0].Decision, "decision 3")
	}
}

func TestUpdatePatterns(t *testing.T) {
	m := newMemory()

	UpdatePatterns(m, models.PatternStickingPoints, "pricing")
	UpdatePatterns(m, models.PatternStickingPoints, "pricing")
	UpdatePatterns(m, models.PatternStickingPoints, "focus")

	entries := m.Patterns[models.PatternStickingPoints]
	if len(entries) != 2 {
		t.Fatalf("bucket size = %d, want 2", len(entries))
	}
	// Ranked by frequency: pricing (2) before focus (1).
	if entries[0].Pattern != "pricing" || entries[0].Frequency != 2 {
		t.Errorf("entries[0] = %+v, want pricing with frequency 2", entries[0])
	}
	if entries[1].Pattern != "focus" || entries[1].Frequency != 1 {
		t.Errorf("entries[1] = %+v, want focus with frequency 1", entries[1])
	}
	if entries[0].LastSeen.Before(entries[0].FirstSeen) {
		t.Error("lastSeen before firstSeen")
	}
}

func TestUpdatePatternsTruncatesLowFrequency(t *testing.T) {
	m := newMemory()

	// One dominant pattern, then enough singletons to overflow the bucket.
	for i := 0; i < 5; i++ {
		UpdatePatterns(m, models.PatternCommonQuestions, "dominant")
	}
	for i := 0; i < MaxPatternsPerBucket+4; i++ {
		UpdatePatterns(m, models.PatternCommonQuestions, fmt.Sprintf("one-off %d", i))
	}

	entries := m.Patterns[models.PatternCommonQuestions]
	if len(entries) != MaxPatternsPerBucket {
		t.Fatalf("bucket size = %d, want %d", len(entries), MaxPatternsPerBucket)
	}
	if entries[0].Pattern != "dominant" || entries[0].Frequency != 5 {
		t.Errorf("entries[0] = %+v, want dominant with frequency 5", entries[0])
	}
}

func TestUpdatePatternsBucketsAreIndependent(t *testing.T) {
	m := newMemory()
	UpdatePatterns(m, models.PatternStickingPoints, "pricing")
	UpdatePatterns(m, models.PatternSuccesses, "pricing")

	if len(m.Patterns[models.PatternStickingPoints]) != 1 || len(m.Patterns[models.PatternSuccesses]) != 1 {
		t.Fatal("expected one entry per bucket")
	}
	if m.Patterns[models.PatternStickingPoints][0].Frequency != 1 {
		t.Error("frequency leaked across buckets")
	}
}

func TestAddMilestoneCap(t *testing.T) {
	m := newMemory()
	for i := 0; i < MaxMilestones+2; i++ {
		AddMilestone(m, fmt.Sprintf("milestone %d", i), "proj-1")
	}
	if len(m.Milestones) != MaxMilestones {
		t.Fatalf("milestones length = %d, want %d", len(m.Milestones), MaxMilestones)
	}
	if m.Milestones[0].Milestone != "milestone 2" {
		t.Errorf("oldest surviving milestone = %q", m.Milestones[0].Milestone)
	}
}

func TestAddSessionSummary(t *testing.T) {
	m := newMemory()
	for i := 0; i < MaxSessions+1; i++ {
		AddSessionSummary(m, models.SessionSummary{KeyPoints: []string{fmt.Sprintf("point %d", i)}})
	}
	if len(m.Sessions) != MaxSessions {
		t.Fatalf("sessions length = %d, want %d", len(m.Sessions), MaxSessions)
	}
	last := m.Sessions[len(m.Sessions)-1]
	if last.Mood != "productive" {
		t.Errorf("default mood = %q, want productive", last.Mood)
	}
	if last.ID == "" {
		t.Error("session id not assigned")
	}
}

func TestUpdateProjectMemory(t *testing.T) {
	m := newMemory()

	UpdateProjectMemory(m, "proj-1", ProjectMemoryUpdate{
		Context:      map[string]string{"market": "b2b"},
		KeyLearnings: []string{"talk to users first"},
	})
	UpdateProjectMemory(m, "proj-1", ProjectMemoryUpdate{
		Context:  map[string]string{"market": "b2c"},
		Progress: map[string]string{"1.1": "completed"},
	})

	pm, ok := m.Projects["proj-1"]
	if !ok {
		t.Fatal("project memory not created")
	}
	if pm.Context["market"] != "b2c" {
		t.Errorf("context[market] = %q, want b2c", pm.Context["market"])
	}
	if len(pm.KeyLearnings) != 1 || pm.KeyLearnings[0] != "talk to users first" {
		t.Errorf("keyLearnings = %v", pm.KeyLearnings)
	}
	if pm.Progress["1.1"] != "completed" {
		t.Errorf("progress[1.1] = %q, want completed", pm.Progress["1.1"])
	}
	if pm.Archived {
		t.Error("update should unarchive the project")
	}
}

func TestPrune(t *testing.T) {
	m := newMemory()
	old := time.Now().UTC().Add(-PruneWindow - time.Hour)

	m.Insights = []models.Insight{
		{ID: "a", Timestamp: old, Content: "stale normal", Importance: models.ImportanceNormal},
		{ID: "b", Timestamp: old, Content: "stale high", Importance: models.ImportanceHigh},
		{ID: "c", Timestamp: time.Now().UTC(), Content: "fresh", Importance: models.ImportanceNormal},
	}
	m.Sessions = []models.SessionSummary{
		{ID: "s1", Timestamp: old},
		{ID: "s2", Timestamp: time.Now().UTC()},
	}
	m.Projects["stale"] = &models.ProjectMemory{ID: "stale", LastUpdated: old}
	m.Projects["active"] = &models.ProjectMemory{ID: "active", LastUpdated: time.Now().UTC()}

	Prune(m)

	if len(m.Insights) != 2 {
		t.Fatalf("insights length = %d, want 2", len(m.Insights))
	}
	for _, i := range m.Insights {
		if i.ID == "a" {
			t.Error("stale normal insight survived pruning")
		}
	}
	if len(m.Sessions) != 1 || m.Sessions[0].ID != "s2" {
		t.Errorf("sessions after prune = %v", m.Sessions)
	}
	if !m.Projects["stale"].Archived {
		t.Error("stale project not archived")
	}
	if m.Projects["active"].Archived {
		t.Error("active project wrongly archived")
	}

	// Idempotent: a second pass changes nothing.
	insights, sessions := len(m.Insights), len(m.Sessions)
	Prune(m)
	if len(m.Insights) != insights || len(m.Sessions) != sessions {
		t.Error("second prune pass removed more entries")
	}
}

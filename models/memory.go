package models

import "time"

// Memory record schema version. Bump when the structure changes; Normalize
// fills defaults so older records keep loading.
const MemoryVersion = 1

const (
	ImportanceNormal = "normal"
	ImportanceHigh   = "high"
)

// Pattern bucket names.
const (
	PatternCommonQuestions = "commonQuestions"
	PatternStickingPoints  = "stickingPoints"
	PatternSuccesses       = "successPatterns"
)

type MemoryProfile struct {
	Goals       []string `json:"goals"`
	Challenges  []string `json:"challenges"`
	Strengths   []string `json:"strengths"`
	Preferences []string `json:"preferences"`
	Background  string   `json:"background,omitempty"`
}

type ProjectMemory struct {
	ID           string            `json:"id"`
	CreatedAt    time.Time         `json:"createdAt"`
	LastUpdated  time.Time         `json:"lastUpdated"`
	Context      map[string]string `json:"context"`
	KeyLearnings []string          `json:"keyLearnings"`
	Challenges   []string          `json:"challenges"`
	Progress     map[string]string `json:"progress"`
	Archived     bool              `json:"archived,omitempty"`
}

type InsightContext struct {
	ProjectID  string `json:"projectId,omitempty"`
	TaskID     string `json:"taskId,omitempty"`
	Importance string `json:"importance,omitempty"`
}

type Insight struct {
	ID         string         `json:"id"`
	Timestamp  time.Time      `json:"timestamp"`
	Content    string         `json:"content"`
	Context    InsightContext `json:"context"`
	Importance string         `json:"importance"`
}

type Decision struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Decision  string    `json:"decision"`
	Reasoning string    `json:"reasoning"`
	ProjectID string    `json:"projectId,omitempty"`
	Outcome   string    `json:"outcome,omitempty"`
}

type PatternEntry struct {
	Pattern   string    `json:"pattern"`
	Frequency int       `json:"frequency"`
	FirstSeen time.Time `json:"firstSeen"`
	LastSeen  time.Time `json:"lastSeen"`
}

type Milestone struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Milestone  string    `json:"milestone"`
	ProjectID  string    `json:"projectId,omitempty"`
	Celebrated bool      `json:"celebrated"`
}

type SessionSummary struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Duration       string    `json:"duration,omitempty"`
	TasksCompleted []string  `json:"tasksCompleted"`
	KeyPoints      []string  `json:"keyPoints"`
	NextSteps      []string  `json:"nextSteps"`
	Mood           string    `json:"mood"`
}

// UserMemory is the long-lived per-user memory record, independent of any
// single project.
type UserMemory struct {
	UserID     string                    `json:"userId"`
	Version    int                       `json:"version"`
	CreatedAt  time.Time                 `json:"createdAt"`
	LastActive time.Time                 `json:"lastActive"`
	Profile    MemoryProfile             `json:"profile"`
	Projects   map[string]*ProjectMemory `json:"projects"`
	Insights   []Insight                 `json:"insights"`
	Decisions  []Decision                `json:"decisions"`
	Patterns   map[string][]PatternEntry `json:"patterns"`
	Milestones []Milestone               `json:"milestones"`
	Sessions   []SessionSummary          `json:"sessions"`
}

func NewUserMemory(userID string, now time.Time) *UserMemory {
	m := &UserMemory{
		UserID:     userID,
		Version:    MemoryVersion,
		CreatedAt:  now,
		LastActive: now,
	}
	m.Normalize()
	return m
}

// Normalize fills nil collections and missing version info so records written
// by older versions round-trip cleanly.
func (m *UserMemory) Normalize() {
	if m.Version == 0 {
		m.Version = MemoryVersion
	}
	if m.Projects == nil {
		m.Projects = map[string]*ProjectMemory{}
	}
	if m.Insights == nil {
		m.Insights = []Insight{}
	}
	if m.Decisions == nil {
		m.Decisions = []Decision{}
	}
	if m.Patterns == nil {
		m.Patterns = map[string][]PatternEntry{}
	}
	for _, bucket := range []string{PatternCommonQuestions, PatternStickingPoints, PatternSuccesses} {
		if m.Patterns[bucket] == nil {
			m.Patterns[bucket] = []PatternEntry{}
		}
	}
	if m.Milestones == nil {
		m.Milestones = []Milestone{}
	}
	if m.Sessions == nil {
		m.Sessions = []SessionSummary{}
	}
	if m.Profile.Goals == nil {
		m.Profile.Goals = []string{}
	}
	if m.Profile.Challenges == nil {
		m.Profile.Challenges = []string{}
	}
	if m.Profile.Strengths == nil {
		m.Profile.Strengths = []string{}
	}
	if m.Profile.Preferences == nil {
		m.Profile.Preferences = []string{}
	}
}

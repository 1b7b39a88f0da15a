package models

// ExchangeRequest is one mentoring exchange as submitted by the UI. An empty
// Messages slice puts the orchestrator in init mode: it sends a synthetic
// opening turn so the mentor delivers the task intro.
type ExchangeRequest struct {
	Messages    []Message    `json:"messages"`
	StageID     int          `json:"stageId"`
	TaskIndex   int          `json:"taskIndex"`
	Project     *Project     `json:"project"`
	Personality *Personality `json:"personality,omitempty"`
}

type ExchangeResult struct {
	AssistantText  string      `json:"assistantText"`
	Deliverable    *string     `json:"deliverable"`
	IsComplete     bool        `json:"isComplete"`
	UpdatedProject *Project    `json:"updatedProject"`
	UpdatedMemory  *UserMemory `json:"updatedMemory"`
}

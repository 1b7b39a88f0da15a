package models

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Project tracks one founder initiative: position in the curriculum,
// committed deliverables, and the per-task conversation history.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// CompletedTasks maps stage id to the number of tasks completed in that
	// stage. The counter only moves forward.
	CompletedTasks map[int]int `json:"completedTasks"`

	// Deliverables maps task id to the finalized deliverable text, set only
	// when the task is completed.
	Deliverables map[string]string `json:"deliverables"`

	// TaskMessages maps task id to the committed exchange history.
	TaskMessages map[string][]Message `json:"taskMessages"`
}

func NewProject(id, name string) *Project {
	return &Project{
		ID:             id,
		Name:           name,
		CompletedTasks: map[int]int{},
		Deliverables:   map[string]string{},
		TaskMessages:   map[string][]Message{},
	}
}

// Normalize fills nil maps so older records load without surprises.
func (p *Project) Normalize() {
	if p.CompletedTasks == nil {
		p.CompletedTasks = map[int]int{}
	}
	if p.Deliverables == nil {
		p.Deliverables = map[string]string{}
	}
	if p.TaskMessages == nil {
		p.TaskMessages = map[string][]Message{}
	}
}

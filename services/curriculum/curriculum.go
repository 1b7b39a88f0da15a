package curriculum

import "github.com/samber/lo"

// Task is a single unit of work within a stage. IDs are globally unique
// strings in "stage.task" form ("1.1", "4.3", ...).
type Task struct {
	ID       string
	Title    string
	Goal     string
	Output   string
	Criteria string
	Intro    string
	Eval     string
}

// Stage is one top-level phase of the curriculum with an ordered task list.
type Stage struct {
	ID       int
	Title    string
	Subtitle string
	Icon     string
	Color    string
	Tagline  string
	Overview string
	Tasks    []Task
}

// Stages returns the full ordered catalog. The catalog is package data and
// never mutated at runtime; callers must treat it as read-only.
func Stages() []Stage {
	return stages
}

func TotalTasks() int {
	return lo.SumBy(stages, func(s Stage) int { return len(s.Tasks) })
}

// StageAt looks up a stage by id.
func StageAt(stageID int) (Stage, bool) {
	return lo.Find(stages, func(s Stage) bool { return s.ID == stageID })
}

// StageIndex returns the position of a stage in the catalog order.
func StageIndex(stageID int) (int, bool) {
	_, idx, ok := lo.FindIndexOf(stages, func(s Stage) bool { return s.ID == stageID })
	return idx, ok
}

// TaskAt looks up a task by stage id and task index within the stage.
func TaskAt(stageID, taskIndex int) (Task, bool) {
	stage, ok := StageAt(stageID)
	if !ok || taskIndex < 0 || taskIndex >= len(stage.Tasks) {
		return Task{}, false
	}
	return stage.Tasks[taskIndex], true
}

// FindTaskByID resolves a globally unique task id to its stage and task.
func FindTaskByID(taskID string) (Stage, Task, bool) {
	for _, stage := range stages {
		if task, ok := lo.Find(stage.Tasks, func(t Task) bool { return t.ID == taskID }); ok {
			return stage, task, true
		}
	}
	return Stage{}, Task{}, false
}

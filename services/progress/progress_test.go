package progress

import (
	"testing"

	"founderforge/models"
	"founderforge/services/curriculum"
)

func newProject(completed map[int]int) *models.Project {
	p := models.NewProject("proj-1", "Test Venture")
	for stageID, count := range completed {
		p.CompletedTasks[stageID] = count
	}
	return p
}

func TestFrontier(t *testing.T) {
	tests := []struct {
		name       string
		completed  map[int]int
		stageIndex int
		taskIndex  int
	}{
		{name: "fresh project", completed: nil, stageIndex: 0, taskIndex: 0},
		{name: "mid stage", completed: map[int]int{1: 3}, stageIndex: 0, taskIndex: 3},
		{name: "stage boundary rolls over", completed: map[int]int{1: 7}, stageIndex: 1, taskIndex: 0},
		{name: "skipped-ahead counters ignore later stages", completed: map[int]int{2: 4}, stageIndex: 0, taskIndex: 0},
		{name: "overshoot counter is clamped", completed: map[int]int{1: 99}, stageIndex: 1, taskIndex: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			si, ti := Frontier(newProject(tt.completed))
			if si != tt.stageIndex || ti != tt.taskIndex {
				t.Errorf("Frontier() = (%d, %d), want (%d, %d)", si, ti, tt.stageIndex, tt.taskIndex)
			}
		})
	}
}

func TestFrontierGraduatedParksOnLastTask(t *testing.T) {
	completed := map[int]int{}
	for _, stage := range curriculum.Stages() {
		completed[stage.ID] = len(stage.Tasks)
	}
	project := newProject(completed)

	si, ti := Frontier(project)
	stages := curriculum.Stages()
	wantStage := len(stages) - 1
	wantTask := len(stages[wantStage].Tasks) - 1
	if si != wantStage || ti != wantTask {
		t.Errorf("Frontier() = (%d, %d), want (%d, %d)", si, ti, wantStage, wantTask)
	}
	if !IsGraduated(project) {
		t.Error("expected graduated project")
	}
}

func TestAdvance(t *testing.T) {
	project := newProject(nil)

	Advance(project, 1)
	if project.CompletedTasks[1] != 1 {
		t.Fatalf("completed[1] = %d, want 1", project.CompletedTasks[1])
	}

	// Advancing past the stage's task count is a no-op.
	stage, _ := curriculum.StageAt(1)
	for i := 0; i < len(stage.Tasks)+5; i++ {
		Advance(project, 1)
	}
	if project.CompletedTasks[1] != len(stage.Tasks) {
		t.Errorf("completed[1] = %d, want cap %d", project.CompletedTasks[1], len(stage.Tasks))
	}

	// Unknown stage leaves the project untouched.
	Advance(project, 42)
	if _, ok := project.CompletedTasks[42]; ok {
		t.Error("Advance recorded a counter for an unknown stage")
	}
}

func TestAdvanceInitializesNilMap(t *testing.T) {
	project := &models.Project{ID: "p", Name: "n"}
	Advance(project, 1)
	if project.CompletedTasks[1] != 1 {
		t.Errorf("completed[1] = %d, want 1", project.CompletedTasks[1])
	}
}

func TestCompletedCount(t *testing.T) {
	project := newProject(map[int]int{1: 7, 2: 2})
	if got := CompletedCount(project); got != 9 {
		t.Errorf("CompletedCount() = %d, want 9", got)
	}

	// Counters above a stage's size do not inflate the total.
	project.CompletedTasks[3] = 100
	stage, _ := curriculum.StageAt(3)
	if got := CompletedCount(project); got != 9+len(stage.Tasks) {
		t.Errorf("CompletedCount() = %d, want %d", got, 9+len(stage.Tasks))
	}
}

func TestIsRevisiting(t *testing.T) {
	project := newProject(map[int]int{1: 2})

	tests := []struct {
		name      string
		stageID   int
		taskIndex int
		want      bool
	}{
		{name: "behind the counter", stageID: 1, taskIndex: 0, want: true},
		{name: "just behind", stageID: 1, taskIndex: 1, want: true},
		{name: "at the frontier", stageID: 1, taskIndex: 2, want: false},
		{name: "ahead of the frontier", stageID: 1, taskIndex: 3, want: false},
		{name: "untouched stage", stageID: 2, taskIndex: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRevisiting(project, tt.stageID, tt.taskIndex); got != tt.want {
				t.Errorf("IsRevisiting(%d, %d) = %t, want %t", tt.stageID, tt.taskIndex, got, tt.want)
			}
		})
	}
}

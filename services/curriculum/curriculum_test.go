package curriculum

import "testing"

func TestCatalogShape(t *testing.T) {
	stages := Stages()
	if len(stages) != 6 {
		t.Fatalf("expected 6 stages, got %d", len(stages))
	}
	if TotalTasks() != 34 {
		t.Errorf("expected 34 tasks, got %d", TotalTasks())
	}

	taskCounts := []int{7, 6, 6, 5, 5, 5}
	seen := map[string]bool{}
	for i, stage := range stages {
		if len(stage.Tasks) != taskCounts[i] {
			t.Errorf("stage %d has %d tasks, want %d", stage.ID, len(stage.Tasks), taskCounts[i])
		}
		for _, task := range stage.Tasks {
			if seen[task.ID] {
				t.Errorf("duplicate task id %q", task.ID)
			}
			seen[task.ID] = true
			if task.Goal == "" || task.Output == "" || task.Criteria == "" || task.Intro == "" || task.Eval == "" {
				t.Errorf("task %q has empty fields", task.ID)
			}
		}
	}
}

func TestStageAt(t *testing.T) {
	tests := []struct {
		name    string
		stageID int
		found   bool
		title   string
	}{
		{name: "first stage", stageID: 1, found: true, title: "Discover"},
		{name: "last stage", stageID: 6, found: true, title: "Dominate"},
		{name: "unknown stage", stageID: 7, found: false},
		{name: "zero stage", stageID: 0, found: false},
		{name: "negative stage", stageID: -1, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage, ok := StageAt(tt.stageID)
			if ok != tt.found {
				t.Fatalf("StageAt(%d) found=%t, want %t", tt.stageID, ok, tt.found)
			}
			if ok && stage.Title != tt.title {
				t.Errorf("StageAt(%d) title=%q, want %q", tt.stageID, stage.Title, tt.title)
			}
		})
	}
}

func TestTaskAt(t *testing.T) {
	tests := []struct {
		name      string
		stageID   int
		taskIndex int
		found     bool
		taskID    string
	}{
		{name: "first task", stageID: 1, taskIndex: 0, found: true, taskID: "1.1"},
		{name: "last task of stage", stageID: 1, taskIndex: 6, found: true, taskID: "1.7"},
		{name: "last task of catalog", stageID: 6, taskIndex: 4, found: true, taskID: "6.5"},
		{name: "index past end", stageID: 1, taskIndex: 7, found: false},
		{name: "negative index", stageID: 1, taskIndex: -1, found: false},
		{name: "unknown stage", stageID: 99, taskIndex: 0, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, ok := TaskAt(tt.stageID, tt.taskIndex)
			if ok != tt.found {
				t.Fatalf("TaskAt(%d, %d) found=%t, want %t", tt.stageID, tt.taskIndex, ok, tt.found)
			}
			if ok && task.ID != tt.taskID {
				t.Errorf("TaskAt(%d, %d) id=%q, want %q", tt.stageID, tt.taskIndex, task.ID, tt.taskID)
			}
		})
	}
}

func TestTaskAtIsTotalOverDeclaredRange(t *testing.T) {
	for _, stage := range Stages() {
		for i := range stage.Tasks {
			first, ok := TaskAt(stage.ID, i)
			if !ok {
				t.Fatalf("TaskAt(%d, %d) not found inside declared range", stage.ID, i)
			}
			second, _ := TaskAt(stage.ID, i)
			if first.ID != second.ID {
				t.Fatalf("TaskAt(%d, %d) not deterministic", stage.ID, i)
			}
		}
	}
}

func TestFindTaskByID(t *testing.T) {
	stage, task, ok := FindTaskByID("4.3")
	if !ok {
		t.Fatal("expected to find task 4.3")
	}
	if stage.ID != 4 || task.Title != "10 Direct Asks" {
		t.Errorf("FindTaskByID(4.3) = stage %d task %q", stage.ID, task.Title)
	}

	if _, _, ok := FindTaskByID("9.9"); ok {
		t.Error("expected 9.9 to be not found")
	}
}

func TestStageIndex(t *testing.T) {
	if idx, ok := StageIndex(3); !ok || idx != 2 {
		t.Errorf("StageIndex(3) = %d, %t; want 2, true", idx, ok)
	}
	if _, ok := StageIndex(42); ok {
		t.Error("expected StageIndex(42) to be not found")
	}
}

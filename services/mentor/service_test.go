package mentor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"founderforge/models"
	"founderforge/services/progress"
	"founderforge/services/userlock"
)

type fakeClient struct {
	response string
	err      error
	calls    int
	system   string
	messages []models.Message
}

func (c *fakeClient) Complete(ctx context.Context, system string, messages []models.Message) (string, error) {
	c.calls++
	c.system = system
	c.messages = messages
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

type fakeProjectRepo struct {
	projects map[string][]*models.Project
	saves    int
}

func (r *fakeProjectRepo) GetProjects(userID string) ([]*models.Project, error) {
	return r.projects[userID], nil
}

func (r *fakeProjectRepo) SaveProjects(userID string, projects []*models.Project) error {
	r.saves++
	r.projects[userID] = projects
	return nil
}

type fakeMemoryRepo struct {
	records map[string]*models.UserMemory
	saves   int
}

func (r *fakeMemoryRepo) GetMemory(userID string) (*models.UserMemory, error) {
	if m, ok := r.records[userID]; ok {
		return m, nil
	}
	m := models.NewUserMemory(userID, time.Now().UTC())
	r.records[userID] = m
	return m, nil
}

func (r *fakeMemoryRepo) SaveMemory(userID string, memory *models.UserMemory) error {
	r.saves++
	r.records[userID] = memory
	return nil
}

func newFixture(response string) (*Service, *fakeClient, *fakeProjectRepo, *fakeMemoryRepo) {
	client := &fakeClient{response: response}
	projectRepo := &fakeProjectRepo{projects: map[string][]*models.Project{}}
	memoryRepo := &fakeMemoryRepo{records: map[string]*models.UserMemory{}}
	service := NewService(client, projectRepo, memoryRepo, userlock.New())
	return service, client, projectRepo, memoryRepo
}

func exchangeRequest(messages []models.Message) *models.ExchangeRequest {
	return &models.ExchangeRequest{
		Messages:  messages,
		StageID:   1,
		TaskIndex: 0,
		Project:   models.NewProject("proj-1", "Acme"),
	}
}

func TestExchangeCompletesTask(t *testing.T) {
	service, client, projectRepo, memoryRepo := newFixture(
		"Strong work. [DELIVERABLE_START]Target: indie bakers losing 5h/week.[DELIVERABLE_END] [TASK_COMPLETE] On to interviews.")

	req := exchangeRequest([]models.Message{{Role: "user", Content: "Here is my refined hypothesis."}})
	result, err := service.Exchange(context.Background(), "user-1", req)
	if err != nil {
		t.Fatal(err)
	}

	if !result.IsComplete {
		t.Error("expected a completed exchange")
	}
	if result.Deliverable == nil || *result.Deliverable != "Target: indie bakers losing 5h/week." {
		t.Fatalf("deliverable = %v", result.Deliverable)
	}
	if strings.Contains(result.AssistantText, "[DELIVERABLE_START]") || strings.Contains(result.AssistantText, "[TASK_COMPLETE]") {
		t.Errorf("markers leaked into assistant text: %q", result.AssistantText)
	}

	project := result.UpdatedProject
	if project.CompletedTasks[1] != 1 {
		t.Errorf("completedTasks[1] = %d, want 1", project.CompletedTasks[1])
	}
	if project.Deliverables["1.1"] != "Target: indie bakers losing 5h/week." {
		t.Errorf("deliverables[1.1] = %q", project.Deliverables["1.1"])
	}
	if si, ti := progress.Frontier(project); si != 0 || ti != 1 {
		t.Errorf("frontier = (%d, %d), want (0, 1)", si, ti)
	}

	history := project.TaskMessages["1.1"]
	if len(history) != 2 || history[0].Role != "user" || history[1].Role != "assistant" {
		t.Fatalf("taskMessages = %v", history)
	}

	// Memory side effects of a completion.
	mem := memoryRepo.records["user-1"]
	if len(mem.Milestones) != 1 || !strings.Contains(mem.Milestones[0].Milestone, "Completed") {
		t.Errorf("milestones = %v", mem.Milestones)
	}
	if len(mem.Patterns[models.PatternSuccesses]) != 1 {
		t.Errorf("successPatterns = %v", mem.Patterns[models.PatternSuccesses])
	}
	if pm := mem.Projects["proj-1"]; pm == nil || pm.Progress["1.1"] != "completed" {
		t.Error("project memory progress not recorded")
	}

	if projectRepo.saves != 1 || memoryRepo.saves != 1 {
		t.Errorf("saves = %d/%d, want 1/1", projectRepo.saves, memoryRepo.saves)
	}
	if !strings.Contains(client.system, "Problem Hypothesis") {
		t.Error("system prompt missing task context")
	}
}

func TestExchangeInitMode(t *testing.T) {
	service, client, _, _ := newFixture("Welcome. What problem are you chasing?")

	result, err := service.Exchange(context.Background(), "user-1", exchangeRequest(nil))
	if err != nil {
		t.Fatal(err)
	}

	if len(client.messages) != 1 || client.messages[0].Content != "Ready. Guide me." {
		t.Errorf("model messages = %v, want the init opening", client.messages)
	}
	// The synthetic opening is never committed.
	history := result.UpdatedProject.TaskMessages["1.1"]
	if len(history) != 1 || history[0].Role != "assistant" {
		t.Errorf("taskMessages = %v, want only the assistant turn", history)
	}
	if result.IsComplete {
		t.Error("plain response marked complete")
	}
}

func TestExchangeRevisit(t *testing.T) {
	service, client, projectRepo, _ := newFixture(
		"Updated. [DELIVERABLE_START]Sharper hypothesis.[DELIVERABLE_END] [TASK_COMPLETE]")

	stored := models.NewProject("proj-1", "Acme")
	stored.CompletedTasks[1] = 1
	stored.Deliverables["1.1"] = "Original hypothesis."
	projectRepo.projects["user-1"] = []*models.Project{stored}

	result, err := service.Exchange(context.Background(), "user-1", exchangeRequest(nil))
	if err != nil {
		t.Fatal(err)
	}

	opening := client.messages[0].Content
	if !strings.Contains(opening, "Revisiting") || !strings.Contains(opening, "Original hypothesis.") {
		t.Errorf("opening = %q, want the revisit framing", opening)
	}
	// Deliverable is replaced but the counter does not move again.
	if result.UpdatedProject.Deliverables["1.1"] != "Sharper hypothesis." {
		t.Errorf("deliverables[1.1] = %q", result.UpdatedProject.Deliverables["1.1"])
	}
	if result.UpdatedProject.CompletedTasks[1] != 1 {
		t.Errorf("completedTasks[1] = %d, want 1", result.UpdatedProject.CompletedTasks[1])
	}
}

func TestExchangeMarkerWithoutDeliverable(t *testing.T) {
	service, _, projectRepo, memoryRepo := newFixture("Looks done. [TASK_COMPLETE]")

	req := exchangeRequest([]models.Message{{Role: "user", Content: "Done I think."}})
	result, err := service.Exchange(context.Background(), "user-1", req)
	if err != nil {
		t.Fatal(err)
	}

	// Without a deliverable block nothing commits: no counter, no deliverable,
	// no milestone. The conversation itself is still recorded.
	project := result.UpdatedProject
	if project.CompletedTasks[1] != 0 {
		t.Errorf("completedTasks[1] = %d, want 0", project.CompletedTasks[1])
	}
	if _, ok := project.Deliverables["1.1"]; ok {
		t.Error("deliverable set without a block")
	}
	if len(memoryRepo.records["user-1"].Milestones) != 0 {
		t.Error("milestone recorded without a commit")
	}
	if len(project.TaskMessages["1.1"]) != 2 {
		t.Errorf("taskMessages length = %d, want 2", len(project.TaskMessages["1.1"]))
	}
	if projectRepo.saves != 1 {
		t.Errorf("saves = %d, want 1", projectRepo.saves)
	}
}

func TestExchangeModelFailureCommitsNothing(t *testing.T) {
	service, client, projectRepo, memoryRepo := newFixture("")
	client.err = ErrModelCall

	stored := models.NewProject("proj-1", "Acme")
	projectRepo.projects["user-1"] = []*models.Project{stored}

	req := exchangeRequest([]models.Message{{Role: "user", Content: "hello"}})
	_, err := service.Exchange(context.Background(), "user-1", req)
	if !errors.Is(err, ErrModelCall) {
		t.Fatalf("err = %v, want ErrModelCall", err)
	}

	if projectRepo.saves != 0 || memoryRepo.saves != 0 {
		t.Errorf("saves = %d/%d, want none", projectRepo.saves, memoryRepo.saves)
	}
	if len(stored.TaskMessages["1.1"]) != 0 {
		t.Error("history recorded despite the failed call")
	}
}

func TestExchangeInvalidReferences(t *testing.T) {
	service, _, projectRepo, _ := newFixture("irrelevant")

	stored := models.NewProject("proj-1", "Acme")
	projectRepo.projects["user-1"] = []*models.Project{stored}

	tests := []struct {
		name string
		req  *models.ExchangeRequest
	}{
		{name: "unknown stage", req: &models.ExchangeRequest{StageID: 99, TaskIndex: 0, Project: stored}},
		{name: "task index out of range", req: &models.ExchangeRequest{StageID: 1, TaskIndex: 40, Project: stored}},
		{name: "missing project", req: &models.ExchangeRequest{StageID: 1, TaskIndex: 0}},
		{name: "task ahead of frontier", req: &models.ExchangeRequest{StageID: 1, TaskIndex: 2, Project: stored}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.Exchange(context.Background(), "user-1", tt.req); !errors.Is(err, ErrInvalidReference) {
				t.Errorf("err = %v, want ErrInvalidReference", err)
			}
		})
	}
}

func TestExchangeAdoptsUnknownProject(t *testing.T) {
	service, _, projectRepo, _ := newFixture("Let's begin.")

	_, err := service.Exchange(context.Background(), "user-1", exchangeRequest(nil))
	if err != nil {
		t.Fatal(err)
	}

	saved := projectRepo.projects["user-1"]
	if len(saved) != 1 || saved[0].ID != "proj-1" {
		t.Errorf("saved projects = %v, want the adopted project", saved)
	}
}

func TestExchangeRecordsDistress(t *testing.T) {
	service, _, _, memoryRepo := newFixture("Take a breath. Let's simplify.")

	req := exchangeRequest([]models.Message{{Role: "user", Content: "I'm completely stuck and frustrated"}})
	if _, err := service.Exchange(context.Background(), "user-1", req); err != nil {
		t.Fatal(err)
	}

	patterns := memoryRepo.records["user-1"].Patterns[models.PatternStickingPoints]
	if len(patterns) != 1 || patterns[0].Pattern != "stuck" {
		t.Errorf("stickingPoints = %v, want the first matched keyword", patterns)
	}
}

func TestExchangeRecordsBreakthrough(t *testing.T) {
	service, _, _, memoryRepo := newFixture("Exactly. Now formalize it.")

	req := exchangeRequest([]models.Message{{Role: "user", Content: "I finally understand my customer segment"}})
	if _, err := service.Exchange(context.Background(), "user-1", req); err != nil {
		t.Fatal(err)
	}

	insights := memoryRepo.records["user-1"].Insights
	if len(insights) != 1 {
		t.Fatalf("insights = %v, want one breakthrough", insights)
	}
	if insights[0].Importance != models.ImportanceHigh || !strings.Contains(insights[0].Content, "Breakthrough") {
		t.Errorf("insight = %+v", insights[0])
	}
}

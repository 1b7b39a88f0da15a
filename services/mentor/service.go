package mentor

import (
	"context"
	"fmt"
	"log"

	"founderforge/db"
	"founderforge/models"
	"founderforge/services/completion"
	"founderforge/services/curriculum"
	"founderforge/services/memory"
	"founderforge/services/progress"
	"founderforge/services/userlock"

	"github.com/samber/lo"
)

// Synthetic opening turns for init mode. They are sent to the model but never
// committed to the visible history.
const (
	initOpening       = "Ready. Guide me."
	revisitOpeningFmt = "Revisiting. Previous: %q. May update."
)

// Service orchestrates one mentoring exchange: prompt synthesis, the external
// model call, completion detection, and the commit of project and memory
// state. It is the sole writer of both records during an exchange; commits
// for the same user are serialized by the per-user lock.
type Service struct {
	client      Client
	projectRepo db.ProjectRepository
	memoryRepo  db.MemoryRepository
	locks       *userlock.Locker
}

func NewService(client Client, projectRepo db.ProjectRepository, memoryRepo db.MemoryRepository, locks *userlock.Locker) *Service {
	return &Service{
		client:      client,
		projectRepo: projectRepo,
		memoryRepo:  memoryRepo,
		locks:       locks,
	}
}

// Exchange runs one exchange for the user. An empty req.Messages selects init
// mode. On any failure before the commit point, project and memory records
// are left untouched and the caller may retry with the same request.
func (s *Service) Exchange(ctx context.Context, userID string, req *models.ExchangeRequest) (*models.ExchangeResult, error) {
	stage, ok := curriculum.StageAt(req.StageID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown stage %d", ErrInvalidReference, req.StageID)
	}
	task, ok := curriculum.TaskAt(req.StageID, req.TaskIndex)
	if !ok {
		return nil, fmt.Errorf("%w: stage %d has no task %d", ErrInvalidReference, req.StageID, req.TaskIndex)
	}
	if req.Project == nil || req.Project.ID == "" {
		return nil, fmt.Errorf("%w: missing project", ErrInvalidReference)
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	projects, err := s.projectRepo.GetProjects(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	// The stored record is authoritative; a project the store has never seen
	// is adopted as-is (first exchange after client-side creation).
	project, found := lo.Find(projects, func(p *models.Project) bool { return p.ID == req.Project.ID })
	if !found {
		project = req.Project
		project.Normalize()
		projects = append(projects, project)
	}

	// Completing is only meaningful at or behind the frontier; a jump past it
	// would break the deliverable/counter invariant.
	if req.TaskIndex > project.CompletedTasks[stage.ID] {
		return nil, fmt.Errorf("%w: task %d in stage %d not yet reached", ErrInvalidReference, req.TaskIndex, req.StageID)
	}

	userMemory, err := s.memoryRepo.GetMemory(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load memory: %w", err)
	}
	userMemory.Normalize()

	system := BuildSystemPrompt(PromptInput{
		Stage:       stage,
		Task:        task,
		TaskIndex:   req.TaskIndex,
		Project:     project,
		Memory:      userMemory,
		Personality: req.Personality,
	})

	history := lo.Filter(req.Messages, func(m models.Message, _ int) bool {
		return m.Role == "user" || m.Role == "assistant"
	})
	apiMessages := history
	if len(history) == 0 {
		opening := initOpening
		if existing, ok := project.Deliverables[task.ID]; ok {
			opening = fmt.Sprintf(revisitOpeningFmt, existing)
		}
		apiMessages = []models.Message{{Role: "user", Content: opening}}
	}

	log.Printf("[INFO] Calling mentor model for user %s, task %s (%d messages)", userID, task.ID, len(apiMessages))
	raw, err := s.client.Complete(ctx, system, apiMessages)
	if err != nil {
		// Nothing committed: the caller can resubmit the same message.
		return nil, err
	}

	detected := completion.Detect(raw)
	committed := detected.IsComplete && detected.Deliverable != nil

	final := append(append([]models.Message{}, history...), models.Message{Role: "assistant", Content: detected.CleanedText})
	project.TaskMessages[task.ID] = final

	if committed {
		project.Deliverables[task.ID] = *detected.Deliverable
		if !progress.IsRevisiting(project, stage.ID, req.TaskIndex) {
			progress.Advance(project, stage.ID)
		}
	}

	s.updateMemory(userMemory, project, stage, task, history, detected, committed)

	if err := s.projectRepo.SaveProjects(userID, projects); err != nil {
		return nil, fmt.Errorf("failed to save projects: %w", err)
	}
	if err := s.memoryRepo.SaveMemory(userID, userMemory); err != nil {
		return nil, fmt.Errorf("failed to save memory: %w", err)
	}

	return &models.ExchangeResult{
		AssistantText:  detected.CleanedText,
		Deliverable:    detected.Deliverable,
		IsComplete:     detected.IsComplete,
		UpdatedProject: project,
		UpdatedMemory:  userMemory,
	}, nil
}

// updateMemory feeds the exchange into pattern detection and, on completion,
// into milestones and the per-project snapshot.
func (s *Service) updateMemory(userMemory *models.UserMemory, project *models.Project, stage curriculum.Stage, task curriculum.Task, history []models.Message, detected completion.Result, committed bool) {
	if len(history) > 0 {
		lastUser := history[len(history)-1]
		if keyword, ok := DetectDistress(lastUser.Content); ok {
			memory.UpdatePatterns(userMemory, models.PatternStickingPoints, keyword)
		}
		if keyword, ok := DetectBreakthrough(lastUser.Content + " " + detected.CleanedText); ok {
			memory.AddInsight(userMemory,
				fmt.Sprintf("Breakthrough (%s) on %q", keyword, task.Title),
				models.InsightContext{ProjectID: project.ID, TaskID: task.ID, Importance: models.ImportanceHigh})
		}
	}

	if committed {
		memory.UpdatePatterns(userMemory, models.PatternSuccesses, fmt.Sprintf("completes %s tasks", stage.Title))
		memory.AddMilestone(userMemory, fmt.Sprintf("Completed %q", task.Title), project.ID)
		memory.UpdateProjectMemory(userMemory, project.ID, memory.ProjectMemoryUpdate{
			Progress: map[string]string{task.ID: "completed"},
		})
	}
}

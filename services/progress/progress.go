// Package progress derives a project's position in the curriculum from its
// completion counts and applies the single forward transition. Position is
// always recomputed, never stored, so the stored counters stay the only
// source of truth.
package progress

import (
	"founderforge/models"
	"founderforge/services/curriculum"
)

// Frontier returns the first not-yet-completed (stageIndex, taskIndex)
// position. A fully completed project parks on the last task of the last
// stage.
func Frontier(project *models.Project) (stageIndex, taskIndex int) {
	stages := curriculum.Stages()
	for si, stage := range stages {
		done := completed(project, stage.ID)
		if done < len(stage.Tasks) {
			return si, done
		}
	}
	last := len(stages) - 1
	return last, len(stages[last].Tasks) - 1
}

// Advance records one more completed task in the given stage. The counter is
// capped at the stage's task count, so advancing a finished stage (or a
// graduated project) is a no-op.
func Advance(project *models.Project, stageID int) {
	stage, ok := curriculum.StageAt(stageID)
	if !ok {
		return
	}
	if project.CompletedTasks == nil {
		project.CompletedTasks = map[int]int{}
	}
	if done := project.CompletedTasks[stageID]; done < len(stage.Tasks) {
		project.CompletedTasks[stageID] = done + 1
	}
}

// IsGraduated reports whether every task of every stage is completed.
func IsGraduated(project *models.Project) bool {
	for _, stage := range curriculum.Stages() {
		if completed(project, stage.ID) < len(stage.Tasks) {
			return false
		}
	}
	return true
}

// CompletedCount sums completed tasks across all stages.
func CompletedCount(project *models.Project) int {
	total := 0
	for _, stage := range curriculum.Stages() {
		total += completed(project, stage.ID)
	}
	return total
}

// IsRevisiting reports whether the given position sits behind the stage's
// completion counter, i.e. the user navigated back to review a finished task.
func IsRevisiting(project *models.Project, stageID, taskIndex int) bool {
	return completed(project, stageID) > taskIndex
}

func completed(project *models.Project, stageID int) int {
	if project == nil || project.CompletedTasks == nil {
		return 0
	}
	done := project.CompletedTasks[stageID]
	if stage, ok := curriculum.StageAt(stageID); ok && done > len(stage.Tasks) {
		return len(stage.Tasks)
	}
	return done
}

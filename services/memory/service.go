package memory

import (
	"fmt"
	"log"

	"founderforge/db"
	"founderforge/models"
	"founderforge/services/userlock"
)

// Service is the memory store front: it loads the per-user record, applies
// record operations under the per-user lock, and persists the result.
type Service struct {
	repo  db.MemoryRepository
	locks *userlock.Locker
}

func NewService(repo db.MemoryRepository, locks *userlock.Locker) *Service {
	return &Service{repo: repo, locks: locks}
}

// Get loads the user's memory record, creating it on first access.
func (s *Service) Get(userID string) (*models.UserMemory, error) {
	memory, err := s.repo.GetMemory(userID)
	if err != nil {
		log.Printf("[ERROR] Failed to get memory for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to get memory: %w", err)
	}
	memory.Normalize()
	return memory, nil
}

// Mutate runs fn over the user's record inside the per-user lock and saves
// the result. A failed save leaves the stored record untouched.
func (s *Service) Mutate(userID string, fn func(*models.UserMemory) error) (*models.UserMemory, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	memory, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if err := fn(memory); err != nil {
		return nil, err
	}

	if err := s.repo.SaveMemory(userID, memory); err != nil {
		log.Printf("[ERROR] Failed to save memory for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to save memory: %w", err)
	}

	return memory, nil
}

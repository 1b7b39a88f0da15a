package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"founderforge/models"

	_ "github.com/lib/pq"
)

type MemoryRepository interface {
	GetMemory(userID string) (*models.UserMemory, error)
	SaveMemory(userID string, memory *models.UserMemory) error
}

type PostgresMemoryRepository struct {
	db *sql.DB
}

func NewPostgresMemoryRepository(databaseURL string) (*PostgresMemoryRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresMemoryRepository{db: db}, nil
}

// GetMemory loads the user's memory record, creating a fresh one on first
// access.
func (r *PostgresMemoryRepository) GetMemory(userID string) (*models.UserMemory, error) {
	query := `
		SELECT data
		FROM founderforge.user_memory
		WHERE user_id = $1`

	var data []byte
	err := r.db.QueryRow(query, userID).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return r.createMemory(userID)
		}
		return nil, fmt.Errorf("failed to get memory: %w", err)
	}

	memory := &models.UserMemory{}
	if err := json.Unmarshal(data, memory); err != nil {
		return nil, fmt.Errorf("failed to unmarshal memory: %w", err)
	}
	memory.Normalize()

	return memory, nil
}

func (r *PostgresMemoryRepository) createMemory(userID string) (*models.UserMemory, error) {
	memory := models.NewUserMemory(userID, time.Now().UTC())

	data, err := json.Marshal(memory)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal memory: %w", err)
	}

	query := `
		INSERT INTO founderforge.user_memory (user_id, data)
		VALUES ($1, $2)`

	if _, err := r.db.Exec(query, userID, data); err != nil {
		return nil, fmt.Errorf("failed to create memory: %w", err)
	}

	return memory, nil
}

func (r *PostgresMemoryRepository) SaveMemory(userID string, memory *models.UserMemory) error {
	memory.LastActive = time.Now().UTC()

	data, err := json.Marshal(memory)
	if err != nil {
		return fmt.Errorf("failed to marshal memory: %w", err)
	}

	query := `
		INSERT INTO founderforge.user_memory (user_id, data)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET data = $2, updated_at = NOW()`

	if _, err := r.db.Exec(query, userID, data); err != nil {
		return fmt.Errorf("failed to save memory: %w", err)
	}

	return nil
}

func (r *PostgresMemoryRepository) Close() error {
	return r.db.Close()
}

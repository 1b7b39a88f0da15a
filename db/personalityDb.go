package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"founderforge/models"

	_ "github.com/lib/pq"
)

type PersonalityRepository interface {
	// GetPersonality returns nil without error when the user skipped the
	// assessment.
	GetPersonality(userID string) (*models.Personality, error)
	SavePersonality(userID string, personality *models.Personality) error
	DeletePersonality(userID string) error
}

type PostgresPersonalityRepository struct {
	db *sql.DB
}

func NewPostgresPersonalityRepository(databaseURL string) (*PostgresPersonalityRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresPersonalityRepository{db: db}, nil
}

func (r *PostgresPersonalityRepository) GetPersonality(userID string) (*models.Personality, error) {
	query := `
		SELECT data
		FROM founderforge.user_personality
		WHERE user_id = $1`

	var data []byte
	err := r.db.QueryRow(query, userID).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get personality: %w", err)
	}

	personality := &models.Personality{}
	if err := json.Unmarshal(data, personality); err != nil {
		return nil, fmt.Errorf("failed to unmarshal personality: %w", err)
	}

	return personality, nil
}

func (r *PostgresPersonalityRepository) SavePersonality(userID string, personality *models.Personality) error {
	data, err := json.Marshal(personality)
	if err != nil {
		return fmt.Errorf("failed to marshal personality: %w", err)
	}

	query := `
		INSERT INTO founderforge.user_personality (user_id, data)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET data = $2, updated_at = NOW()`

	if _, err := r.db.Exec(query, userID, data); err != nil {
		return fmt.Errorf("failed to save personality: %w", err)
	}

	return nil
}

func (r *PostgresPersonalityRepository) DeletePersonality(userID string) error {
	query := "DELETE FROM founderforge.user_personality WHERE user_id = $1"

	if _, err := r.db.Exec(query, userID); err != nil {
		return fmt.Errorf("failed to delete personality: %w", err)
	}

	return nil
}

func (r *PostgresPersonalityRepository) Close() error {
	return r.db.Close()
}

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"founderforge/models"

	_ "github.com/lib/pq"
)

type ProjectRepository interface {
	GetProjects(userID string) ([]*models.Project, error)
	SaveProjects(userID string, projects []*models.Project) error
}

type PostgresProjectRepository struct {
	db *sql.DB
}

func NewPostgresProjectRepository(databaseURL string) (*PostgresProjectRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresProjectRepository{db: db}, nil
}

// GetProjects loads the user's project collection. A user with no saved
// collection gets an empty one.
func (r *PostgresProjectRepository) GetProjects(userID string) ([]*models.Project, error) {
	query := `
		SELECT data
		FROM founderforge.user_projects
		WHERE user_id = $1`

	var data []byte
	err := r.db.QueryRow(query, userID).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*models.Project{}, nil
		}
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	projects := make([]*models.Project, 0)
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to unmarshal projects: %w", err)
	}

	for _, project := range projects {
		project.Normalize()
	}

	return projects, nil
}

func (r *PostgresProjectRepository) SaveProjects(userID string, projects []*models.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("failed to marshal projects: %w", err)
	}

	query := `
		INSERT INTO founderforge.user_projects (user_id, data)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET data = $2, updated_at = NOW()`

	if _, err := r.db.Exec(query, userID, data); err != nil {
		return fmt.Errorf("failed to save projects: %w", err)
	}

	return nil
}

func (r *PostgresProjectRepository) Close() error {
	return r.db.Close()
}

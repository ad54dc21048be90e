package sqlite

import (
	"context"
	"fmt"

	"github.com/rpggio/devtracker/internal/domain/project"
)

// ProjectRepository implements repository.ProjectRepository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, name`

func scanProject(row rowScanner) (*project.Project, error) {
	var proj project.Project
	if err := row.Scan(&proj.ID, &proj.Name); err != nil {
		return nil, err
	}
	return &proj, nil
}

// Create inserts a project and sets its ID
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	result, err := r.db.ExecContext(ctx, `INSERT INTO projects (name) VALUES (?)`, proj.Name)
	if err != nil {
		return writeError("create project", err)
	}

	id, err := lastInsertID("create project", result)
	if err != nil {
		return err
	}
	proj.ID = id

	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id uint64) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`

	proj, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, readError("get project", err)
	}

	return proj, nil
}

// GetByName returns all projects with the given name
func (r *ProjectRepository) GetByName(ctx context.Context, name string) ([]project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE name = ? ORDER BY id`
	return r.query(ctx, "get projects by name", query, name)
}

// List returns all projects ordered by ID
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY id`
	return r.query(ctx, "list projects", query)
}

// Update persists the project's name
func (r *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	result, err := r.db.ExecContext(ctx, `UPDATE projects SET name = ? WHERE id = ?`, proj.Name, proj.ID)
	if err != nil {
		return writeError("update project", err)
	}
	return requireAffected("update project", result)
}

// Delete removes a project row. Dependent rows must already be gone.
func (r *ProjectRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return writeError("delete project", err)
	}
	return requireAffected("delete project", result)
}

func (r *ProjectRepository) query(ctx context.Context, op, query string, args ...any) ([]project.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *proj)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

package sqlite

import (
	"context"
	"fmt"

	"github.com/rpggio/devtracker/internal/domain/repo"
)

// RepoRepository implements repository.RepoRepository for SQLite
type RepoRepository struct {
	db *DB
}

// NewRepoRepository creates a new RepoRepository
func NewRepoRepository(db *DB) *RepoRepository {
	return &RepoRepository{db: db}
}

const repoColumns = `id, project, path`

func scanRepo(row rowScanner) (*repo.Repo, error) {
	var rp repo.Repo
	if err := row.Scan(&rp.ID, &rp.ProjectID, &rp.Path); err != nil {
		return nil, err
	}
	return &rp, nil
}

// Create inserts a repo and sets its ID
func (r *RepoRepository) Create(ctx context.Context, rp *repo.Repo) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO repos (project, path) VALUES (?, ?)`,
		rp.ProjectID, rp.Path,
	)
	if err != nil {
		return writeError("create repo", err)
	}

	id, err := lastInsertID("create repo", result)
	if err != nil {
		return err
	}
	rp.ID = id

	return nil
}

// Get retrieves a repo by ID
func (r *RepoRepository) Get(ctx context.Context, id uint64) (*repo.Repo, error) {
	query := `SELECT ` + repoColumns + ` FROM repos WHERE id = ?`

	rp, err := scanRepo(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, readError("get repo", err)
	}

	return rp, nil
}

// GetByPath returns all repos registered at path
func (r *RepoRepository) GetByPath(ctx context.Context, path string) ([]repo.Repo, error) {
	query := `SELECT ` + repoColumns + ` FROM repos WHERE path = ? ORDER BY id`
	return r.query(ctx, "get repos by path", query, path)
}

// List returns repos matching the given filters
func (r *RepoRepository) List(ctx context.Context, opts repo.ListOptions) ([]repo.Repo, error) {
	query := `SELECT ` + repoColumns + ` FROM repos`
	args := []any{}

	if opts.ProjectID != nil {
		query += ` WHERE project = ?`
		args = append(args, *opts.ProjectID)
	}
	query += ` ORDER BY id`

	return r.query(ctx, "list repos", query, args...)
}

// Update persists project and path
func (r *RepoRepository) Update(ctx context.Context, rp *repo.Repo) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE repos SET project = ?, path = ? WHERE id = ?`,
		rp.ProjectID, rp.Path, rp.ID,
	)
	if err != nil {
		return writeError("update repo", err)
	}
	return requireAffected("update repo", result)
}

// Delete removes a repo row. Its counts must already be gone.
func (r *RepoRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM repos WHERE id = ?`, id)
	if err != nil {
		return writeError("delete repo", err)
	}
	return requireAffected("delete repo", result)
}

func (r *RepoRepository) query(ctx context.Context, op, query string, args ...any) ([]repo.Repo, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer rows.Close()

	repos := []repo.Repo{}
	for rows.Next() {
		rp, err := scanRepo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan repo: %w", err)
		}
		repos = append(repos, *rp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating repo rows: %w", err)
	}

	return repos, nil
}

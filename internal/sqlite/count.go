package sqlite

import (
	"context"
	"fmt"

	"github.com/rpggio/devtracker/internal/domain/count"
)

// CountRepository implements repository.CountRepository for SQLite
type CountRepository struct {
	db *DB
}

// NewCountRepository creates a new CountRepository
func NewCountRepository(db *DB) *CountRepository {
	return &CountRepository{db: db}
}

const countColumns = `id, repo, date, count`

func scanCount(row rowScanner) (*count.Count, error) {
	var c count.Count
	var total int64
	if err := row.Scan(&c.ID, &c.RepoID, &c.Date, &total); err != nil {
		return nil, err
	}
	c.Date = c.Date.UTC()
	c.Total = uint64(total)
	return &c, nil
}

// Create inserts a count and sets its ID
func (r *CountRepository) Create(ctx context.Context, c *count.Count) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO counts (repo, date, count) VALUES (?, ?, ?)`,
		c.RepoID, c.Date.UTC(), int64(c.Total),
	)
	if err != nil {
		return writeError("create count", err)
	}

	id, err := lastInsertID("create count", result)
	if err != nil {
		return err
	}
	c.ID = id

	return nil
}

// Get retrieves a count by ID
func (r *CountRepository) Get(ctx context.Context, id uint64) (*count.Count, error) {
	query := `SELECT ` + countColumns + ` FROM counts WHERE id = ?`

	c, err := scanCount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, readError("get count", err)
	}

	return c, nil
}

// List returns counts matching the given filters in insertion order
func (r *CountRepository) List(ctx context.Context, opts count.ListOptions) ([]count.Count, error) {
	query := `SELECT ` + countColumns + ` FROM counts`
	args := []any{}

	if opts.RepoID != nil {
		query += ` WHERE repo = ?`
		args = append(args, *opts.RepoID)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list counts: %w", err)
	}
	defer rows.Close()

	counts := []count.Count{}
	for rows.Next() {
		c, err := scanCount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts = append(counts, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating count rows: %w", err)
	}

	return counts, nil
}

// Delete removes a count row
func (r *CountRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM counts WHERE id = ?`, id)
	if err != nil {
		return writeError("delete count", err)
	}
	return requireAffected("delete count", result)
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpggio/devtracker/internal/domain/activity"
)

// ActivityRepository implements repository.ActivityRepository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

const activityColumns = `id, project, atype, description, start, "end"`

func scanActivity(row rowScanner) (*activity.Activity, error) {
	var a activity.Activity
	var description sql.NullString
	var end sql.NullTime
	if err := row.Scan(&a.ID, &a.ProjectID, &a.TypeID, &description, &a.Start, &end); err != nil {
		return nil, err
	}
	a.Start = a.Start.UTC()
	if description.Valid {
		a.Description = &description.String
	}
	if end.Valid {
		t := end.Time.UTC()
		a.End = &t
	}
	return &a, nil
}

func endValue(a *activity.Activity) any {
	if a.End == nil {
		return nil
	}
	return a.End.UTC()
}

// Create inserts an activity and sets its ID. Timestamps are stored in UTC.
func (r *ActivityRepository) Create(ctx context.Context, a *activity.Activity) error {
	query := `
		INSERT INTO activities (project, atype, description, start, "end")
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		a.ProjectID,
		a.TypeID,
		a.Description,
		a.Start.UTC(),
		endValue(a),
	)
	if err != nil {
		return writeError("create activity", err)
	}

	id, err := lastInsertID("create activity", result)
	if err != nil {
		return err
	}
	a.ID = id

	return nil
}

// Get retrieves an activity by ID
func (r *ActivityRepository) Get(ctx context.Context, id uint64) (*activity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`

	a, err := scanActivity(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, readError("get activity", err)
	}

	return a, nil
}

// List returns activities matching the given filters in insertion order
func (r *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities`

	args := []any{}
	conditions := []string{}

	if opts.ProjectID != nil {
		conditions = append(conditions, "project = ?")
		args = append(args, *opts.ProjectID)
	}
	if opts.TypeID != nil {
		conditions = append(conditions, "atype = ?")
		args = append(args, *opts.TypeID)
	}
	if opts.RunningOnly {
		conditions = append(conditions, `"end" IS NULL`)
	}

	if len(conditions) > 0 {
		query += " WHERE " + joinConditions(conditions)
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	activities := []activity.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return activities, nil
}

// Update persists every mutable column of the activity
func (r *ActivityRepository) Update(ctx context.Context, a *activity.Activity) error {
	query := `
		UPDATE activities
		SET project = ?, atype = ?, description = ?, start = ?, "end" = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		a.ProjectID,
		a.TypeID,
		a.Description,
		a.Start.UTC(),
		endValue(a),
		a.ID,
	)
	if err != nil {
		return writeError("update activity", err)
	}
	return requireAffected("update activity", result)
}

// Delete removes an activity row
func (r *ActivityRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return writeError("delete activity", err)
	}
	return requireAffected("delete activity", result)
}

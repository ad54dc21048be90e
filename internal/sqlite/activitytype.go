package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpggio/devtracker/internal/domain/activitytype"
)

// ActivityTypeRepository implements repository.ActivityTypeRepository for SQLite
type ActivityTypeRepository struct {
	db *DB
}

// NewActivityTypeRepository creates a new ActivityTypeRepository
func NewActivityTypeRepository(db *DB) *ActivityTypeRepository {
	return &ActivityTypeRepository{db: db}
}

const activityTypeColumns = `id, name, description`

func scanActivityType(row rowScanner) (*activitytype.ActivityType, error) {
	var at activitytype.ActivityType
	var description sql.NullString
	if err := row.Scan(&at.ID, &at.Name, &description); err != nil {
		return nil, err
	}
	if description.Valid {
		at.Description = &description.String
	}
	return &at, nil
}

// Create inserts an activity type and sets its ID
func (r *ActivityTypeRepository) Create(ctx context.Context, at *activitytype.ActivityType) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO activitytypes (name, description) VALUES (?, ?)`,
		at.Name, at.Description,
	)
	if err != nil {
		return writeError("create activity type", err)
	}

	id, err := lastInsertID("create activity type", result)
	if err != nil {
		return err
	}
	at.ID = id

	return nil
}

// Get retrieves an activity type by ID
func (r *ActivityTypeRepository) Get(ctx context.Context, id uint64) (*activitytype.ActivityType, error) {
	query := `SELECT ` + activityTypeColumns + ` FROM activitytypes WHERE id = ?`

	at, err := scanActivityType(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, readError("get activity type", err)
	}

	return at, nil
}

// GetByName returns all activity types with the given name
func (r *ActivityTypeRepository) GetByName(ctx context.Context, name string) ([]activitytype.ActivityType, error) {
	query := `SELECT ` + activityTypeColumns + ` FROM activitytypes WHERE name = ? ORDER BY id`
	return r.query(ctx, "get activity types by name", query, name)
}

// List returns all activity types, the sentinel first
func (r *ActivityTypeRepository) List(ctx context.Context) ([]activitytype.ActivityType, error) {
	query := `SELECT ` + activityTypeColumns + ` FROM activitytypes ORDER BY id`
	return r.query(ctx, "list activity types", query)
}

// Update persists name and description
func (r *ActivityTypeRepository) Update(ctx context.Context, at *activitytype.ActivityType) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE activitytypes SET name = ?, description = ? WHERE id = ?`,
		at.Name, at.Description, at.ID,
	)
	if err != nil {
		return writeError("update activity type", err)
	}
	return requireAffected("update activity type", result)
}

// Delete removes an activity type row
func (r *ActivityTypeRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM activitytypes WHERE id = ?`, id)
	if err != nil {
		return writeError("delete activity type", err)
	}
	return requireAffected("delete activity type", result)
}

func (r *ActivityTypeRepository) query(ctx context.Context, op, query string, args ...any) ([]activitytype.ActivityType, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer rows.Close()

	types := []activitytype.ActivityType{}
	for rows.Next() {
		at, err := scanActivityType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity type: %w", err)
		}
		types = append(types, *at)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity type rows: %w", err)
	}

	return types, nil
}

package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rpggio/devtracker/internal/repository"
)

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// writeError maps a failed write to the repository error set.
func writeError(op string, err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("failed to %s: %w", op, repository.ErrForeignKeyViolation)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// readError maps a failed single-row read.
func readError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// requireAffected returns ErrNotFound when a statement touched no rows.
func requireAffected(op string, result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func lastInsertID(op string, result sql.Result) (uint64, error) {
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to %s: %w", op, err)
	}
	return uint64(id), nil
}

func joinConditions(conditions []string) string {
	return strings.Join(conditions, " AND ")
}

package cli

import (
	"errors"
	"strings"

	"github.com/rpggio/devtracker/internal/app"
	"github.com/rpggio/devtracker/internal/datastore"
)

// Exit codes for CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a storage failure or any error not covered below.
	ExitError = 1

	// ExitUsage indicates wrong arguments or flags.
	ExitUsage = 2

	// ExitNotFound indicates a project, activity type, repo, activity or
	// count that does not exist.
	ExitNotFound = 3

	// ExitConflict indicates the request clashes with current state: a name
	// already taken, an activity already running, or a locked database.
	ExitConflict = 4

	// ExitValidation indicates input that fails validation rules.
	ExitValidation = 5
)

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newUsageError(err error) error {
	if err == nil {
		return nil
	}
	return &usageError{err: err}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var usage *usageError
	switch {
	case errors.As(err, &usage):
		return ExitUsage
	case strings.HasPrefix(err.Error(), "unknown command"),
		strings.HasPrefix(err.Error(), "unknown flag"):
		return ExitUsage
	case errors.Is(err, datastore.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, datastore.ErrAlreadyExists),
		errors.Is(err, datastore.ErrInvalidState),
		errors.Is(err, app.ErrLocked):
		return ExitConflict
	case errors.Is(err, datastore.ErrInvalidInput):
		return ExitValidation
	default:
		return ExitError
	}
}

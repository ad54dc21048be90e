package datastore

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the DataStore wraps exactly one of
// these, so callers can branch with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidState  = errors.New("invalid state")
	ErrInvalidInput  = errors.New("invalid input")
	ErrStorage       = errors.New("storage failure")
)

var (
	ErrProjectNotFound      = fmt.Errorf("project %w", ErrNotFound)
	ErrActivityTypeNotFound = fmt.Errorf("activity type %w", ErrNotFound)
	ErrRepoNotFound         = fmt.Errorf("repo %w", ErrNotFound)
	ErrActivityNotFound     = fmt.Errorf("activity %w", ErrNotFound)
	ErrCountNotFound        = fmt.Errorf("count %w", ErrNotFound)

	ErrProjectAlreadyExists      = fmt.Errorf("project %w", ErrAlreadyExists)
	ErrActivityTypeAlreadyExists = fmt.Errorf("activity type %w", ErrAlreadyExists)
	ErrRepoAlreadyExists         = fmt.Errorf("repo %w", ErrAlreadyExists)

	ErrRunningActivityAlreadyExists = fmt.Errorf("%w: project already has a running activity", ErrInvalidState)
	ErrEndBeforeStart               = fmt.Errorf("%w: end time precedes start time", ErrInvalidState)
	ErrSentinelActivityType         = fmt.Errorf("%w: the Unknown activity type cannot be deleted", ErrInvalidState)
)

// storageErr wraps an unexpected repository failure.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

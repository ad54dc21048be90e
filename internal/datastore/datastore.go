// Package datastore coordinates the entity repositories and enforces the
// cross-entity rules: name and path uniqueness, existence checks, cascading
// deletes and the single running activity per project.
package datastore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rpggio/devtracker/internal/linecount"
	"github.com/rpggio/devtracker/internal/repository"
	"github.com/rpggio/devtracker/internal/sqlite"
)

// DefaultExcludedDirs are skipped when counting lines.
var DefaultExcludedDirs = []string{"target", ".git", "node_modules", "vendor"}

// Repositories bundles the storage backends the DataStore works on.
type Repositories struct {
	Projects      repository.ProjectRepository
	ActivityTypes repository.ActivityTypeRepository
	Repos         repository.RepoRepository
	Activities    repository.ActivityRepository
	Counts        repository.CountRepository
}

// DataStore is the single entry point for reading and mutating tracker data.
// It is not safe for concurrent use.
type DataStore struct {
	projects      repository.ProjectRepository
	activityTypes repository.ActivityTypeRepository
	repos         repository.RepoRepository
	activities    repository.ActivityRepository
	counts        repository.CountRepository

	closer   io.Closer
	logger   *slog.Logger
	counter  linecount.Counter
	now      func() time.Time
	excluded []string
}

// Option configures a DataStore.
type Option func(*DataStore)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *DataStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCounter replaces the line counter used by CreateCount.
func WithCounter(c linecount.Counter) Option {
	return func(s *DataStore) {
		if c != nil {
			s.counter = c
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *DataStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithExcludedDirs sets the directory names skipped by CreateCount.
func WithExcludedDirs(dirs []string) Option {
	return func(s *DataStore) {
		s.excluded = append([]string(nil), dirs...)
	}
}

// New creates a DataStore over the given repositories.
func New(repos Repositories, opts ...Option) *DataStore {
	s := &DataStore{
		projects:      repos.Projects,
		activityTypes: repos.ActivityTypes,
		repos:         repos.Repos,
		activities:    repos.Activities,
		counts:        repos.Counts,
		logger:        slog.New(slog.DiscardHandler),
		counter:       linecount.NewCloc(),
		now:           time.Now,
		excluded:      DefaultExcludedDirs,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open opens (creating if needed) the SQLite database at dsn, initializes
// the schema and returns a DataStore that owns the connection.
func Open(ctx context.Context, dsn string, opts ...Option) (*DataStore, error) {
	db, err := sqlite.New(dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w: %w", ErrStorage, err)
	}
	if err := db.InitSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database: %w: %w", ErrStorage, err)
	}

	s := New(Repositories{
		Projects:      sqlite.NewProjectRepository(db),
		ActivityTypes: sqlite.NewActivityTypeRepository(db),
		Repos:         sqlite.NewRepoRepository(db),
		Activities:    sqlite.NewActivityRepository(db),
		Counts:        sqlite.NewCountRepository(db),
	}, opts...)
	s.closer = db
	s.logger.Debug("datastore opened", "dsn", dsn)
	return s, nil
}

// Close releases the underlying connection, if the DataStore owns one.
func (s *DataStore) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

func (s *DataStore) clock() time.Time {
	return s.now().UTC()
}

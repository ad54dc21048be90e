// Package app wires configuration, logging and storage for one CLI run.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/rpggio/devtracker/internal/config"
	"github.com/rpggio/devtracker/internal/datastore"
	"github.com/rpggio/devtracker/internal/linecount"
)

// ErrLocked is returned when another process holds the database lock.
var ErrLocked = errors.New("another devtracker process is using the database")

// App holds the per-invocation dependencies.
type App struct {
	Store    *datastore.DataStore
	Logger   *slog.Logger
	lockFile *flock.Flock
}

// Options tweaks how the app is opened.
type Options struct {
	// Counter overrides the default gocloc counter.
	Counter linecount.Counter
}

// Open acquires the single-writer lock next to the database file and opens
// the DataStore.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger, opts Options) (*App, error) {
	if err := ensureDBDir(cfg.DB.Path); err != nil {
		return nil, fmt.Errorf("failed to prepare database path: %w", err)
	}

	a := &App{Logger: logger}
	if err := a.acquireLock(cfg.DB.Path); err != nil {
		return nil, err
	}

	storeOpts := []datastore.Option{
		datastore.WithLogger(logger),
		datastore.WithExcludedDirs(cfg.Count.Exclude),
	}
	if opts.Counter != nil {
		storeOpts = append(storeOpts, datastore.WithCounter(opts.Counter))
	}

	store, err := datastore.Open(ctx, cfg.DB.Path, storeOpts...)
	if err != nil {
		a.releaseLock()
		return nil, err
	}
	a.Store = store

	return a, nil
}

func isMemory(path string) bool {
	return path == "" || path == ":memory:"
}

func ensureDBDir(path string) error {
	if isMemory(path) {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// acquireLock takes an exclusive lock on <db>.lock. In-memory databases are
// private to the process and need none.
func (a *App) acquireLock(dbPath string) error {
	if isMemory(dbPath) {
		return nil
	}
	a.lockFile = flock.New(dbPath + ".lock")

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return ErrLocked
	}

	a.Logger.Debug("lock acquired", "path", a.lockFile.Path())
	return nil
}

func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close closes the DataStore and releases the lock.
func (a *App) Close() error {
	var errs []error

	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	a.releaseLock()

	return errors.Join(errs...)
}

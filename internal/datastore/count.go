package datastore

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpggio/devtracker/internal/domain/count"
	"github.com/rpggio/devtracker/internal/domain/repo"
	"github.com/rpggio/devtracker/internal/repository"
)

// CreateCount measures the lines of code under the repo's path and records
// the total with the current time.
func (s *DataStore) CreateCount(ctx context.Context, rp *repo.Repo) (*count.Count, error) {
	existing, err := s.requireRepo(ctx, rp.ID)
	if err != nil {
		return nil, err
	}

	result, err := s.counter.Count(ctx, existing.Path, s.excluded)
	if err != nil {
		return nil, fmt.Errorf("counting %s: %w", existing.Path, err)
	}

	c := count.New(existing.ID, s.clock(), result.Total)
	if err := s.counts.Create(ctx, c); err != nil {
		return nil, storageErr("creating count", err)
	}

	s.logger.Info("count created", "count_id", c.ID, "repo_id", c.RepoID, "total", c.Total,
		"languages", len(result.Languages))
	return c, nil
}

// GetLatestCount returns the most recent count of rp, or nil if it has none.
// Counts sharing a timestamp are ordered by id.
func (s *DataStore) GetLatestCount(ctx context.Context, rp *repo.Repo) (*count.Count, error) {
	counts, err := s.GetCounts(ctx, rp)
	if err != nil {
		return nil, err
	}
	return count.Latest(counts), nil
}

// GetCounts returns the counts of rp in insertion order.
func (s *DataStore) GetCounts(ctx context.Context, rp *repo.Repo) ([]count.Count, error) {
	if _, err := s.requireRepo(ctx, rp.ID); err != nil {
		return nil, err
	}
	list, err := s.counts.List(ctx, count.ListOptions{RepoID: &rp.ID})
	if err != nil {
		return nil, storageErr("listing counts", err)
	}
	return list, nil
}

// GetCountWithID returns the count with the given id, or nil.
func (s *DataStore) GetCountWithID(ctx context.Context, id uint64) (*count.Count, error) {
	c, err := s.counts.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("loading count", err)
	}
	return c, nil
}

// DeleteCount removes a count.
func (s *DataStore) DeleteCount(ctx context.Context, c *count.Count) error {
	existing, err := s.GetCountWithID(ctx, c.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: id %d", ErrCountNotFound, c.ID)
	}
	if err := s.counts.Delete(ctx, existing.ID); err != nil {
		return storageErr("deleting count", err)
	}

	s.logger.Debug("count deleted", "count_id", existing.ID, "repo_id", existing.RepoID)
	return nil
}

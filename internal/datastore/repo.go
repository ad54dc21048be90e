package datastore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rpggio/devtracker/internal/domain/count"
	"github.com/rpggio/devtracker/internal/domain/project"
	"github.com/rpggio/devtracker/internal/domain/repo"
	"github.com/rpggio/devtracker/internal/repository"
)

func cleanPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("%w: repo path must not be empty", ErrInvalidInput)
	}
	return filepath.Clean(path), nil
}

// CreateRepo registers path under proj. A path can belong to one repo only.
func (s *DataStore) CreateRepo(ctx context.Context, proj *project.Project, path string) (*repo.Repo, error) {
	path, err := cleanPath(path)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireProject(ctx, proj.ID); err != nil {
		return nil, err
	}
	if err := s.ensurePathFree(ctx, path, nil); err != nil {
		return nil, err
	}

	rp := repo.New(proj.ID, path)
	if err := s.repos.Create(ctx, rp); err != nil {
		return nil, storageErr("creating repo", err)
	}

	s.logger.Info("repo created", "repo_id", rp.ID, "project_id", rp.ProjectID, "path", rp.Path)
	return rp, nil
}

// GetRepo returns the repo registered at path, or nil.
func (s *DataStore) GetRepo(ctx context.Context, path string) (*repo.Repo, error) {
	path, err := cleanPath(path)
	if err != nil {
		return nil, err
	}
	matches, err := s.repos.GetByPath(ctx, path)
	if err != nil {
		return nil, storageErr("loading repo", err)
	}
	if len(matches) != 1 {
		return nil, nil
	}
	return &matches[0], nil
}

// GetRepoWithID returns the repo with the given id, or nil.
func (s *DataStore) GetRepoWithID(ctx context.Context, id uint64) (*repo.Repo, error) {
	rp, err := s.repos.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("loading repo", err)
	}
	return rp, nil
}

// GetRepos returns the repos of proj.
func (s *DataStore) GetRepos(ctx context.Context, proj *project.Project) ([]repo.Repo, error) {
	if _, err := s.requireProject(ctx, proj.ID); err != nil {
		return nil, err
	}
	list, err := s.repos.List(ctx, repo.ListOptions{ProjectID: &proj.ID})
	if err != nil {
		return nil, storageErr("listing repos", err)
	}
	return list, nil
}

// UpdateRepo persists a repo's project and path.
func (s *DataStore) UpdateRepo(ctx context.Context, rp *repo.Repo) error {
	path, err := cleanPath(rp.Path)
	if err != nil {
		return err
	}
	if _, err := s.requireRepo(ctx, rp.ID); err != nil {
		return err
	}
	if _, err := s.requireProject(ctx, rp.ProjectID); err != nil {
		return err
	}
	if err := s.ensurePathFree(ctx, path, &rp.ID); err != nil {
		return err
	}

	rp.Path = path
	if err := s.repos.Update(ctx, rp); err != nil {
		return storageErr("updating repo", err)
	}

	s.logger.Info("repo updated", "repo_id", rp.ID, "project_id", rp.ProjectID, "path", rp.Path)
	return nil
}

// DeleteRepo removes a repo and all of its counts.
func (s *DataStore) DeleteRepo(ctx context.Context, rp *repo.Repo) error {
	existing, err := s.requireRepo(ctx, rp.ID)
	if err != nil {
		return err
	}

	counts, err := s.counts.List(ctx, count.ListOptions{RepoID: &existing.ID})
	if err != nil {
		return storageErr("listing counts", err)
	}
	for i := range counts {
		s.logger.Debug("cascading delete", "repo_id", existing.ID, "count_id", counts[i].ID)
		if err := s.DeleteCount(ctx, &counts[i]); err != nil {
			return err
		}
	}

	if err := s.repos.Delete(ctx, existing.ID); err != nil {
		return storageErr("deleting repo", err)
	}

	s.logger.Info("repo deleted", "repo_id", existing.ID, "path", existing.Path, "counts", len(counts))
	return nil
}

func (s *DataStore) requireRepo(ctx context.Context, id uint64) (*repo.Repo, error) {
	rp, err := s.GetRepoWithID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rp == nil {
		return nil, fmt.Errorf("%w: id %d", ErrRepoNotFound, id)
	}
	return rp, nil
}

func (s *DataStore) ensurePathFree(ctx context.Context, path string, self *uint64) error {
	matches, err := s.repos.GetByPath(ctx, path)
	if err != nil {
		return storageErr("loading repo", err)
	}
	for _, m := range matches {
		if self == nil || m.ID != *self {
			return fmt.Errorf("%w: %s", ErrRepoAlreadyExists, path)
		}
	}
	return nil
}

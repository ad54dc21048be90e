package datastore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rpggio/devtracker/internal/domain/activity"
	"github.com/rpggio/devtracker/internal/domain/project"
	"github.com/rpggio/devtracker/internal/domain/repo"
	"github.com/rpggio/devtracker/internal/repository"
)

func cleanName(kind, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s name must not be empty", ErrInvalidInput, kind)
	}
	return name, nil
}

// CreateProject inserts a new project with a unique name.
func (s *DataStore) CreateProject(ctx context.Context, name string) (*project.Project, error) {
	name, err := cleanName("project", name)
	if err != nil {
		return nil, err
	}

	if err := s.ensureProjectNameFree(ctx, name, nil); err != nil {
		return nil, err
	}

	proj := project.New(name)
	if err := s.projects.Create(ctx, proj); err != nil {
		return nil, storageErr("creating project", err)
	}

	s.logger.Info("project created", "project_id", proj.ID, "name", proj.Name)
	return proj, nil
}

// GetProject returns the project with the given name, or nil unless exactly
// one project has it.
func (s *DataStore) GetProject(ctx context.Context, name string) (*project.Project, error) {
	matches, err := s.projects.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, storageErr("loading project", err)
	}
	if len(matches) != 1 {
		if len(matches) > 1 {
			s.logger.Warn("duplicate project names", "name", name, "count", len(matches))
		}
		return nil, nil
	}
	return &matches[0], nil
}

// GetProjectWithID returns the project with the given id, or nil.
func (s *DataStore) GetProjectWithID(ctx context.Context, id uint64) (*project.Project, error) {
	proj, err := s.projects.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("loading project", err)
	}
	return proj, nil
}

// GetProjects returns all projects.
func (s *DataStore) GetProjects(ctx context.Context) ([]project.Project, error) {
	list, err := s.projects.List(ctx)
	if err != nil {
		return nil, storageErr("listing projects", err)
	}
	return list, nil
}

// RenameProject renames the project called oldName.
func (s *DataStore) RenameProject(ctx context.Context, oldName, newName string) (*project.Project, error) {
	proj, err := s.GetProject(ctx, oldName)
	if err != nil {
		return nil, err
	}
	if proj == nil {
		return nil, fmt.Errorf("%w: %q", ErrProjectNotFound, oldName)
	}

	proj.Name = newName
	if err := s.UpdateProject(ctx, proj); err != nil {
		return nil, err
	}
	return proj, nil
}

// UpdateProject persists the project's name after re-checking that the
// project exists and that no other project uses the name.
func (s *DataStore) UpdateProject(ctx context.Context, proj *project.Project) error {
	name, err := cleanName("project", proj.Name)
	if err != nil {
		return err
	}
	if _, err := s.requireProject(ctx, proj.ID); err != nil {
		return err
	}
	if err := s.ensureProjectNameFree(ctx, name, &proj.ID); err != nil {
		return err
	}

	proj.Name = name
	if err := s.projects.Update(ctx, proj); err != nil {
		return storageErr("updating project", err)
	}

	s.logger.Info("project updated", "project_id", proj.ID, "name", proj.Name)
	return nil
}

// DeleteProject removes a project together with its activities, its repos and
// their counts. Children are removed one at a time, so an interruption can
// leave some of them behind.
func (s *DataStore) DeleteProject(ctx context.Context, proj *project.Project) error {
	existing, err := s.requireProject(ctx, proj.ID)
	if err != nil {
		return err
	}

	activities, err := s.activities.List(ctx, activity.ListOptions{ProjectID: &existing.ID})
	if err != nil {
		return storageErr("listing activities", err)
	}
	for i := range activities {
		s.logger.Debug("cascading delete", "project_id", existing.ID, "activity_id", activities[i].ID)
		if err := s.DeleteActivity(ctx, &activities[i]); err != nil {
			return err
		}
	}

	repos, err := s.repos.List(ctx, repo.ListOptions{ProjectID: &existing.ID})
	if err != nil {
		return storageErr("listing repos", err)
	}
	for i := range repos {
		s.logger.Debug("cascading delete", "project_id", existing.ID, "repo_id", repos[i].ID)
		if err := s.DeleteRepo(ctx, &repos[i]); err != nil {
			return err
		}
	}

	if err := s.projects.Delete(ctx, existing.ID); err != nil {
		return storageErr("deleting project", err)
	}

	s.logger.Info("project deleted", "project_id", existing.ID, "name", existing.Name,
		"activities", len(activities), "repos", len(repos))
	return nil
}

func (s *DataStore) requireProject(ctx context.Context, id uint64) (*project.Project, error) {
	proj, err := s.GetProjectWithID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proj == nil {
		return nil, fmt.Errorf("%w: id %d", ErrProjectNotFound, id)
	}
	return proj, nil
}

// ensureProjectNameFree fails when a project other than self has name.
func (s *DataStore) ensureProjectNameFree(ctx context.Context, name string, self *uint64) error {
	matches, err := s.projects.GetByName(ctx, name)
	if err != nil {
		return storageErr("loading project", err)
	}
	for _, m := range matches {
		if self == nil || m.ID != *self {
			return fmt.Errorf("%w: %q", ErrProjectAlreadyExists, name)
		}
	}
	return nil
}

package mocks

import (
	"context"

	"github.com/rpggio/devtracker/internal/domain/activity"
	"github.com/rpggio/devtracker/internal/domain/activitytype"
	"github.com/rpggio/devtracker/internal/domain/count"
	"github.com/rpggio/devtracker/internal/domain/project"
	"github.com/rpggio/devtracker/internal/domain/repo"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for repository.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id uint64) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) GetByName(ctx context.Context, name string) ([]project.Project, error) {
	args := m.Called(ctx, name)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ActivityTypeRepository is a mock for repository.ActivityTypeRepository.
type ActivityTypeRepository struct {
	mock.Mock
}

func (m *ActivityTypeRepository) Create(ctx context.Context, at *activitytype.ActivityType) error {
	args := m.Called(ctx, at)
	return args.Error(0)
}

func (m *ActivityTypeRepository) Get(ctx context.Context, id uint64) (*activitytype.ActivityType, error) {
	args := m.Called(ctx, id)
	if at, ok := args.Get(0).(*activitytype.ActivityType); ok {
		return at, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityTypeRepository) GetByName(ctx context.Context, name string) ([]activitytype.ActivityType, error) {
	args := m.Called(ctx, name)
	if list, ok := args.Get(0).([]activitytype.ActivityType); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityTypeRepository) List(ctx context.Context) ([]activitytype.ActivityType, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]activitytype.ActivityType); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityTypeRepository) Update(ctx context.Context, at *activitytype.ActivityType) error {
	args := m.Called(ctx, at)
	return args.Error(0)
}

func (m *ActivityTypeRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// RepoRepository is a mock for repository.RepoRepository.
type RepoRepository struct {
	mock.Mock
}

func (m *RepoRepository) Create(ctx context.Context, r *repo.Repo) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *RepoRepository) Get(ctx context.Context, id uint64) (*repo.Repo, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*repo.Repo); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepoRepository) GetByPath(ctx context.Context, path string) ([]repo.Repo, error) {
	args := m.Called(ctx, path)
	if list, ok := args.Get(0).([]repo.Repo); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepoRepository) List(ctx context.Context, opts repo.ListOptions) ([]repo.Repo, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]repo.Repo); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepoRepository) Update(ctx context.Context, r *repo.Repo) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *RepoRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ActivityRepository is a mock for repository.ActivityRepository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Create(ctx context.Context, a *activity.Activity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *ActivityRepository) Get(ctx context.Context, id uint64) (*activity.Activity, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*activity.Activity); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Activity, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.Activity); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityRepository) Update(ctx context.Context, a *activity.Activity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *ActivityRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// CountRepository is a mock for repository.CountRepository.
type CountRepository struct {
	mock.Mock
}

func (m *CountRepository) Create(ctx context.Context, c *count.Count) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CountRepository) Get(ctx context.Context, id uint64) (*count.Count, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*count.Count); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CountRepository) List(ctx context.Context, opts count.ListOptions) ([]count.Count, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]count.Count); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CountRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

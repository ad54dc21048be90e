package datastore

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/devtracker/internal/domain/activity"
	"github.com/rpggio/devtracker/internal/domain/project"
	"github.com/rpggio/devtracker/internal/domain/repo"
	"github.com/rpggio/devtracker/internal/repository"
	"github.com/rpggio/devtracker/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepos struct {
	projects      *mocks.ProjectRepository
	activityTypes *mocks.ActivityTypeRepository
	repos         *mocks.RepoRepository
	activities    *mocks.ActivityRepository
	counts        *mocks.CountRepository
}

func newMockStore(t *testing.T) (*DataStore, *mockRepos) {
	t.Helper()

	m := &mockRepos{
		projects:      &mocks.ProjectRepository{},
		activityTypes: &mocks.ActivityTypeRepository{},
		repos:         &mocks.RepoRepository{},
		activities:    &mocks.ActivityRepository{},
		counts:        &mocks.CountRepository{},
	}
	t.Cleanup(func() {
		m.projects.AssertExpectations(t)
		m.activityTypes.AssertExpectations(t)
		m.repos.AssertExpectations(t)
		m.activities.AssertExpectations(t)
		m.counts.AssertExpectations(t)
	})

	store := New(Repositories{
		Projects:      m.projects,
		ActivityTypes: m.activityTypes,
		Repos:         m.repos,
		Activities:    m.activities,
		Counts:        m.counts,
	})
	return store, m
}

var errDisk = errors.New("disk I/O error")

func TestCreateProjectStorageFailure(t *testing.T) {
	store, m := newMockStore(t)
	ctx := context.Background()

	m.projects.On("GetByName", ctx, "Acme").Return([]project.Project{}, nil)
	m.projects.On("Create", ctx, mock.AnythingOfType("*project.Project")).Return(errDisk)

	_, err := store.CreateProject(ctx, "Acme")
	require.ErrorIs(t, err, ErrStorage)
	require.ErrorIs(t, err, errDisk)
}

func TestGetProjectStorageFailure(t *testing.T) {
	store, m := newMockStore(t)
	ctx := context.Background()

	m.projects.On("Get", ctx, uint64(1)).Return(nil, errDisk)

	_, err := store.GetProjectWithID(ctx, 1)
	require.ErrorIs(t, err, ErrStorage)
}

func TestGetProjectNotFoundIsAbsence(t *testing.T) {
	store, m := newMockStore(t)
	ctx := context.Background()

	m.projects.On("Get", ctx, uint64(1)).Return(nil, repository.ErrNotFound)

	proj, err := store.GetProjectWithID(ctx, 1)
	require.NoError(t, err)
	require.Nil(t, proj)
}

func TestGetProjectDuplicateNames(t *testing.T) {
	store, m := newMockStore(t)
	ctx := context.Background()

	m.projects.On("GetByName", ctx, "Acme").Return([]project.Project{{ID: 1, Name: "Acme"}, {ID: 2, Name: "Acme"}}, nil)

	proj, err := store.GetProject(ctx, "Acme")
	require.NoError(t, err)
	require.Nil(t, proj)
}

func TestDeleteProjectStopsOnChildFailure(t *testing.T) {
	store, m := newMockStore(t)
	ctx := context.Background()
	proj := &project.Project{ID: 1, Name: "Acme"}

	m.projects.On("Get", ctx, uint64(1)).Return(proj, nil)
	m.activities.On("List", ctx, mock.AnythingOfType("activity.ListOptions")).Return([]activity.Activity{{ID: 7, ProjectID: 1}}, nil)
	m.activities.On("Get", ctx, uint64(7)).Return(&activity.Activity{ID: 7, ProjectID: 1}, nil)
	m.activities.On("Delete", ctx, uint64(7)).Return(errDisk)

	err := store.DeleteProject(ctx, proj)
	require.ErrorIs(t, err, ErrStorage)
	m.projects.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	m.repos.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestGetReposStorageFailure(t *testing.T) {
	store, m := newMockStore(t)
	ctx := context.Background()
	proj := &project.Project{ID: 1, Name: "Acme"}

	m.projects.On("Get", ctx, uint64(1)).Return(proj, nil)
	m.repos.On("List", ctx, repo.ListOptions{ProjectID: &proj.ID}).Return(nil, errDisk)

	_, err := store.GetRepos(ctx, proj)
	require.ErrorIs(t, err, ErrStorage)
	require.ErrorIs(t, err, errDisk)
}

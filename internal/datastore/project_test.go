package datastore

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/devtracker/internal/domain/activity"
	"github.com/rpggio/devtracker/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestCreateProject(t *testing.T) {
	f := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Acme", "Beta Project", "日本"} {
		proj, err := f.store.CreateProject(ctx, name)
		require.NoError(t, err)
		require.NotZero(t, proj.ID)

		got, err := f.store.GetProject(ctx, name)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, name, got.Name)
		require.Equal(t, proj.ID, got.ID)

		_, err = f.store.CreateProject(ctx, name)
		require.ErrorIs(t, err, ErrProjectAlreadyExists)
		require.ErrorIs(t, err, ErrAlreadyExists)
	}
}

func TestCreateProjectInvalidName(t *testing.T) {
	f := newTestStore(t)

	_, err := f.store.CreateProject(context.Background(), "   ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetProjectMissing(t *testing.T) {
	f := newTestStore(t)
	ctx := context.Background()

	proj, err := f.store.GetProject(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, proj)

	proj, err = f.store.GetProjectWithID(ctx, 12)
	require.NoError(t, err)
	require.Nil(t, proj)
}

func TestGetProjects(t *testing.T) {
	f := newTestStore(t)
	ctx := context.Background()

	_, err := f.store.CreateProject(ctx, "Acme")
	require.NoError(t, err)
	_, err = f.store.CreateProject(ctx, "Beta")
	require.NoError(t, err)

	list, err := f.store.GetProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Acme", list[0].Name)
}

func TestRenameProject(t *testing.T) {
	f := newTestStore(t)
	ctx := context.Background()

	acme, err := f.store.CreateProject(ctx, "Acme")
	require.NoError(t, err)

	renamed, err := f.store.RenameProject(ctx, "Acme", "Gamma")
	require.NoError(t, err)
	require.Equal(t, acme.ID, renamed.ID)

	got, err := f.store.GetProjectWithID(ctx, acme.ID)
	require.NoError(t, err)
	require.Equal(t, "Gamma", got.Name)

	_, err = f.store.RenameProject(ctx, "Acme", "Delta")
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestRenameProjectToExistingName(t *testing.T) {
	f := newTestStore(t)
	ctx := context.Background()

	acme, err := f.store.CreateProject(ctx, "Acme")
	require.NoError(t, err)
	_, err = f.store.CreateProject(ctx, "Beta")
	require.NoError(t, err)

	_, err = f.store.RenameProject(ctx, "Acme", "Beta")
	require.ErrorIs(t, err, ErrAlreadyExists)

	got, err := f.store.GetProjectWithID(ctx, acme.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme", got.Name)
}

func TestUpdateProjectMissing(t *testing.T) {
	f := newTestStore(t)

	err := f.store.UpdateProject(context.Background(), &project.Project{ID: 99, Name: "Ghost"})
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestDeleteProjectCascades(t *testing.T) {
	f := newTestStore(t)
	ctx := context.Background()

	proj, err := f.store.CreateProject(ctx, "Acme")
	require.NoError(t, err)
	other, err := f.store.CreateProject(ctx, "Other")
	require.NoError(t, err)

	r1, err := f.store.CreateRepo(ctx, proj, "/src/acme")
	require.NoError(t, err)
	r2, err := f.store.CreateRepo(ctx, proj, "/src/acme-web")
	require.NoError(t, err)
	kept, err := f.store.CreateRepo(ctx, other, "/src/other")
	require.NoError(t, err)

	c1, err := f.store.CreateCount(ctx, r1)
	require.NoError(t, err)
	c2, err := f.store.CreateCount(ctx, r2)
	require.NoError(t, err)

	for range 3 {
		_, err := f.store.StartActivity(ctx, proj, nil, nil)
		require.NoError(t, err)
		f.clock.Advance(time.Minute)
		_, err = f.store.StopRunningActivity(ctx, proj)
		require.NoError(t, err)
	}
	_, err = f.store.StartActivity(ctx, other, nil, nil)
	require.NoError(t, err)

	require.NoError(t, f.store.DeleteProject(ctx, proj))

	got, err := f.store.GetProjectWithID(ctx, proj.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	for _, id := range []uint64{r1.ID, r2.ID} {
		rp, err := f.store.GetRepoWithID(ctx, id)
		require.NoError(t, err)
		require.Nil(t, rp)
	}
	for _, id := range []uint64{c1.ID, c2.ID} {
		c, err := f.store.GetCountWithID(ctx, id)
		require.NoError(t, err)
		require.Nil(t, c)
	}

	remaining, err := f.store.activities.List(ctx, activity.ListOptions{ProjectID: &proj.ID})
	require.NoError(t, err)
	require.Empty(t, remaining)

	otherActivities, err := f.store.GetActivities(ctx, other)
	require.NoError(t, err)
	require.Len(t, otherActivities, 1)
	rp, err := f.store.GetRepoWithID(ctx, kept.ID)
	require.NoError(t, err)
	require.NotNil(t, rp)

	err = f.store.DeleteProject(ctx, proj)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

package sqlite

import (
	"context"
	"testing"

	"github.com/rpggio/devtracker/internal/domain/repo"
	"github.com/rpggio/devtracker/internal/repository"
	"github.com/stretchr/testify/require"
)

func insertRepo(t *testing.T, db *DB, projectID uint64, path string) *repo.Repo {
	t.Helper()
	rp := repo.New(projectID, path)
	require.NoError(t, NewRepoRepository(db).Create(context.Background(), rp))
	return rp
}

func TestRepoRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	repos := NewRepoRepository(db)
	ctx := context.Background()

	proj := insertProject(t, db, "Acme")
	rp := insertRepo(t, db, proj.ID, "/src/acme")
	require.NotZero(t, rp.ID)

	retrieved, err := repos.Get(ctx, rp.ID)
	require.NoError(t, err)
	require.Equal(t, rp, retrieved)

	matches, err := repos.GetByPath(ctx, "/src/acme")
	require.NoError(t, err)
	require.Len(t, matches, 1)
}

func TestRepoRepository_CreateUnknownProject(t *testing.T) {
	db := NewTestDB(t)

	err := NewRepoRepository(db).Create(context.Background(), repo.New(99, "/src/nowhere"))
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

func TestRepoRepository_ListByProject(t *testing.T) {
	db := NewTestDB(t)
	repos := NewRepoRepository(db)
	ctx := context.Background()

	acme := insertProject(t, db, "Acme")
	beta := insertProject(t, db, "Beta")
	insertRepo(t, db, acme.ID, "/src/acme")
	insertRepo(t, db, acme.ID, "/src/acme-web")
	insertRepo(t, db, beta.ID, "/src/beta")

	list, err := repos.List(ctx, repo.ListOptions{ProjectID: &acme.ID})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "/src/acme", list[0].Path)

	all, err := repos.List(ctx, repo.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestRepoRepository_UpdateDelete(t *testing.T) {
	db := NewTestDB(t)
	repos := NewRepoRepository(db)
	ctx := context.Background()

	proj := insertProject(t, db, "Acme")
	rp := insertRepo(t, db, proj.ID, "/src/acme")

	rp.Path = "/work/acme"
	require.NoError(t, repos.Update(ctx, rp))
	retrieved, err := repos.Get(ctx, rp.ID)
	require.NoError(t, err)
	require.Equal(t, "/work/acme", retrieved.Path)

	require.NoError(t, repos.Delete(ctx, rp.ID))
	require.ErrorIs(t, repos.Delete(ctx, rp.ID), repository.ErrNotFound)
}

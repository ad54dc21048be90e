package sqlite

import (
	"context"
	"testing"

	"github.com/rpggio/devtracker/internal/domain/activitytype"
	"github.com/rpggio/devtracker/internal/repository"
	"github.com/stretchr/testify/require"
)

func insertActivityType(t *testing.T, db *DB, name string) *activitytype.ActivityType {
	t.Helper()
	at := activitytype.New(name, nil)
	require.NoError(t, NewActivityTypeRepository(db).Create(context.Background(), at))
	return at
}

func TestActivityTypeRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityTypeRepository(db)
	ctx := context.Background()

	description := "writing code"
	at := activitytype.New("coding", &description)
	require.NoError(t, repo.Create(ctx, at))
	require.NotZero(t, at.ID, "ids after the sentinel start at one")

	retrieved, err := repo.Get(ctx, at.ID)
	require.NoError(t, err)
	require.Equal(t, "coding", retrieved.Name)
	require.Equal(t, "writing code", retrieved.DescriptionOrEmpty())

	noDesc := insertActivityType(t, db, "research")
	retrieved, err = repo.Get(ctx, noDesc.ID)
	require.NoError(t, err)
	require.Nil(t, retrieved.Description)
}

func TestActivityTypeRepository_ListIncludesSentinel(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityTypeRepository(db)
	ctx := context.Background()

	insertActivityType(t, db, "coding")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.True(t, list[0].IsUnknown())
	require.Equal(t, activitytype.UnknownName, list[0].Name)
	require.Equal(t, "coding", list[1].Name)
}

func TestActivityTypeRepository_UpdateDelete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityTypeRepository(db)
	ctx := context.Background()

	at := insertActivityType(t, db, "coding")
	description := "deep work"
	at.Name = "focus"
	at.Description = &description
	require.NoError(t, repo.Update(ctx, at))

	matches, err := repo.GetByName(ctx, "focus")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "deep work", matches[0].DescriptionOrEmpty())

	require.NoError(t, repo.Delete(ctx, at.ID))
	_, err = repo.Get(ctx, at.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

package repository

import (
	"context"

	"github.com/rpggio/devtracker/internal/domain/activity"
	"github.com/rpggio/devtracker/internal/domain/activitytype"
	"github.com/rpggio/devtracker/internal/domain/count"
	"github.com/rpggio/devtracker/internal/domain/project"
	"github.com/rpggio/devtracker/internal/domain/repo"
)

// ProjectRepository manages project persistence.
// GetByName returns every match; uniqueness is enforced by the caller.
type ProjectRepository interface {
	Create(ctx context.Context, proj *project.Project) error
	Get(ctx context.Context, id uint64) (*project.Project, error)
	GetByName(ctx context.Context, name string) ([]project.Project, error)
	List(ctx context.Context) ([]project.Project, error)
	Update(ctx context.Context, proj *project.Project) error
	Delete(ctx context.Context, id uint64) error
}

// ActivityTypeRepository manages activity type persistence
type ActivityTypeRepository interface {
	Create(ctx context.Context, at *activitytype.ActivityType) error
	Get(ctx context.Context, id uint64) (*activitytype.ActivityType, error)
	GetByName(ctx context.Context, name string) ([]activitytype.ActivityType, error)
	List(ctx context.Context) ([]activitytype.ActivityType, error)
	Update(ctx context.Context, at *activitytype.ActivityType) error
	Delete(ctx context.Context, id uint64) error
}

// RepoRepository manages repo persistence
type RepoRepository interface {
	Create(ctx context.Context, r *repo.Repo) error
	Get(ctx context.Context, id uint64) (*repo.Repo, error)
	GetByPath(ctx context.Context, path string) ([]repo.Repo, error)
	List(ctx context.Context, opts repo.ListOptions) ([]repo.Repo, error)
	Update(ctx context.Context, r *repo.Repo) error
	Delete(ctx context.Context, id uint64) error
}

// ActivityRepository manages activity persistence
type ActivityRepository interface {
	Create(ctx context.Context, a *activity.Activity) error
	Get(ctx context.Context, id uint64) (*activity.Activity, error)
	List(ctx context.Context, opts activity.ListOptions) ([]activity.Activity, error)
	Update(ctx context.Context, a *activity.Activity) error
	Delete(ctx context.Context, id uint64) error
}

// CountRepository manages line count persistence. Counts are immutable once
// recorded.
type CountRepository interface {
	Create(ctx context.Context, c *count.Count) error
	Get(ctx context.Context, id uint64) (*count.Count, error)
	List(ctx context.Context, opts count.ListOptions) ([]count.Count, error)
	Delete(ctx context.Context, id uint64) error
}

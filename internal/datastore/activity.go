package datastore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rpggio/devtracker/internal/domain/activity"
	"github.com/rpggio/devtracker/internal/domain/activitytype"
	"github.com/rpggio/devtracker/internal/domain/project"
	"github.com/rpggio/devtracker/internal/repository"
)

// StartActivity starts a new running activity for proj. A nil at starts an
// activity of the Unknown type.
func (s *DataStore) StartActivity(ctx context.Context, proj *project.Project, at *activitytype.ActivityType, description *string) (*activity.Activity, error) {
	if _, err := s.requireProject(ctx, proj.ID); err != nil {
		return nil, err
	}
	typeID := activitytype.UnknownID
	if at != nil {
		typeID = at.ID
	}
	if _, err := s.requireActivityType(ctx, typeID); err != nil {
		return nil, err
	}

	running, err := s.runningActivity(ctx, proj.ID)
	if err != nil {
		return nil, err
	}
	if running != nil {
		return nil, fmt.Errorf("%w: activity %d", ErrRunningActivityAlreadyExists, running.ID)
	}

	a := activity.New(proj.ID, typeID, description, s.clock())
	if err := s.activities.Create(ctx, a); err != nil {
		return nil, storageErr("creating activity", err)
	}

	s.logger.Info("activity started", "activity_id", a.ID, "project_id", a.ProjectID, "activity_type_id", a.TypeID)
	return a, nil
}

// GetRunningActivity returns the running activity of proj, or nil.
func (s *DataStore) GetRunningActivity(ctx context.Context, proj *project.Project) (*activity.Activity, error) {
	if _, err := s.requireProject(ctx, proj.ID); err != nil {
		return nil, err
	}
	return s.runningActivity(ctx, proj.ID)
}

// StopRunningActivity ends the running activity of proj at the current time.
// It returns nil when nothing is running.
func (s *DataStore) StopRunningActivity(ctx context.Context, proj *project.Project) (*activity.Activity, error) {
	running, err := s.GetRunningActivity(ctx, proj)
	if err != nil || running == nil {
		return nil, err
	}

	end := s.clock()
	if end.Before(running.Start) {
		end = running.Start
	}
	running.End = &end
	if err := s.activities.Update(ctx, running); err != nil {
		return nil, storageErr("stopping activity", err)
	}

	s.logger.Info("activity stopped", "activity_id", running.ID, "project_id", running.ProjectID)
	return running, nil
}

// CancelRunningActivity deletes the running activity of proj and returns it.
// It returns nil when nothing is running.
func (s *DataStore) CancelRunningActivity(ctx context.Context, proj *project.Project) (*activity.Activity, error) {
	running, err := s.GetRunningActivity(ctx, proj)
	if err != nil || running == nil {
		return nil, err
	}

	if err := s.activities.Delete(ctx, running.ID); err != nil {
		return nil, storageErr("cancelling activity", err)
	}

	s.logger.Info("activity cancelled", "activity_id", running.ID, "project_id", running.ProjectID)
	return running, nil
}

// UpdateActivity persists every field of a, validating its references, its
// time range and the running-activity rule.
func (s *DataStore) UpdateActivity(ctx context.Context, a *activity.Activity) error {
	if _, err := s.requireActivity(ctx, a.ID); err != nil {
		return err
	}
	return s.saveActivity(ctx, a)
}

// UpdateActivityDescription sets or clears the description of an activity.
func (s *DataStore) UpdateActivityDescription(ctx context.Context, a *activity.Activity, description *string) (*activity.Activity, error) {
	existing, err := s.requireActivity(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	existing.Description = description
	if err := s.saveActivity(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// UpdateActivityAType changes the type of an activity.
func (s *DataStore) UpdateActivityAType(ctx context.Context, a *activity.Activity, at *activitytype.ActivityType) (*activity.Activity, error) {
	existing, err := s.requireActivity(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	existing.TypeID = at.ID
	if err := s.saveActivity(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// UpdateActivityProject moves an activity to another project.
func (s *DataStore) UpdateActivityProject(ctx context.Context, a *activity.Activity, proj *project.Project) (*activity.Activity, error) {
	existing, err := s.requireActivity(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	existing.ProjectID = proj.ID
	if err := s.saveActivity(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// UpdateActivityEnd sets the end time of an activity, stopping it if it was
// running.
func (s *DataStore) UpdateActivityEnd(ctx context.Context, a *activity.Activity, end time.Time) (*activity.Activity, error) {
	existing, err := s.requireActivity(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	end = end.UTC()
	existing.End = &end
	if err := s.saveActivity(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteActivity removes an activity.
func (s *DataStore) DeleteActivity(ctx context.Context, a *activity.Activity) error {
	existing, err := s.requireActivity(ctx, a.ID)
	if err != nil {
		return err
	}
	if err := s.activities.Delete(ctx, existing.ID); err != nil {
		return storageErr("deleting activity", err)
	}

	s.logger.Info("activity deleted", "activity_id", existing.ID, "project_id", existing.ProjectID)
	return nil
}

// GetActivityWithID returns the activity with the given id, or nil.
func (s *DataStore) GetActivityWithID(ctx context.Context, id uint64) (*activity.Activity, error) {
	a, err := s.activities.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("loading activity", err)
	}
	return a, nil
}

// GetActivities returns the activities of proj in insertion order.
func (s *DataStore) GetActivities(ctx context.Context, proj *project.Project) ([]activity.Activity, error) {
	if _, err := s.requireProject(ctx, proj.ID); err != nil {
		return nil, err
	}
	list, err := s.activities.List(ctx, activity.ListOptions{ProjectID: &proj.ID})
	if err != nil {
		return nil, storageErr("listing activities", err)
	}
	return list, nil
}

// saveActivity validates a against the current state and writes it. Nothing
// is written when validation fails.
func (s *DataStore) saveActivity(ctx context.Context, a *activity.Activity) error {
	if _, err := s.requireProject(ctx, a.ProjectID); err != nil {
		return err
	}
	if _, err := s.requireActivityType(ctx, a.TypeID); err != nil {
		return err
	}
	if a.End != nil && a.End.Before(a.Start) {
		return fmt.Errorf("%w: activity %d", ErrEndBeforeStart, a.ID)
	}
	if a.IsRunning() {
		running, err := s.runningActivity(ctx, a.ProjectID)
		if err != nil {
			return err
		}
		if running != nil && running.ID != a.ID {
			return fmt.Errorf("%w: activity %d", ErrRunningActivityAlreadyExists, running.ID)
		}
	}

	if err := s.activities.Update(ctx, a); err != nil {
		return storageErr("updating activity", err)
	}

	s.logger.Info("activity updated", "activity_id", a.ID, "project_id", a.ProjectID)
	return nil
}

func (s *DataStore) runningActivity(ctx context.Context, projectID uint64) (*activity.Activity, error) {
	running, err := s.activities.List(ctx, activity.ListOptions{ProjectID: &projectID, RunningOnly: true})
	if err != nil {
		return nil, storageErr("loading running activity", err)
	}
	switch len(running) {
	case 0:
		return nil, nil
	case 1:
		return &running[0], nil
	default:
		s.logger.Warn("multiple running activities", "project_id", projectID, "count", len(running))
		return &running[len(running)-1], nil
	}
}

func (s *DataStore) requireActivity(ctx context.Context, id uint64) (*activity.Activity, error) {
	a, err := s.GetActivityWithID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("%w: id %d", ErrActivityNotFound, id)
	}
	return a, nil
}

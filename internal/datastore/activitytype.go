package datastore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rpggio/devtracker/internal/domain/activity"
	"github.com/rpggio/devtracker/internal/domain/activitytype"
	"github.com/rpggio/devtracker/internal/repository"
)

// CreateActivityType inserts a new activity type with a unique name.
func (s *DataStore) CreateActivityType(ctx context.Context, name string, description *string) (*activitytype.ActivityType, error) {
	name, err := cleanName("activity type", name)
	if err != nil {
		return nil, err
	}
	if err := s.ensureActivityTypeNameFree(ctx, name, nil); err != nil {
		return nil, err
	}

	at := activitytype.New(name, description)
	if err := s.activityTypes.Create(ctx, at); err != nil {
		return nil, storageErr("creating activity type", err)
	}

	s.logger.Info("activity type created", "activity_type_id", at.ID, "name", at.Name)
	return at, nil
}

// GetActivityType returns the activity type with the given name, or nil
// unless exactly one has it.
func (s *DataStore) GetActivityType(ctx context.Context, name string) (*activitytype.ActivityType, error) {
	matches, err := s.activityTypes.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, storageErr("loading activity type", err)
	}
	if len(matches) != 1 {
		if len(matches) > 1 {
			s.logger.Warn("duplicate activity type names", "name", name, "count", len(matches))
		}
		return nil, nil
	}
	return &matches[0], nil
}

// GetActivityTypeWithID returns the activity type with the given id, or nil.
func (s *DataStore) GetActivityTypeWithID(ctx context.Context, id uint64) (*activitytype.ActivityType, error) {
	at, err := s.activityTypes.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("loading activity type", err)
	}
	return at, nil
}

// GetActivityTypes returns all activity types including the Unknown type.
func (s *DataStore) GetActivityTypes(ctx context.Context) ([]activitytype.ActivityType, error) {
	list, err := s.activityTypes.List(ctx)
	if err != nil {
		return nil, storageErr("listing activity types", err)
	}
	return list, nil
}

// UpdateActivityType persists name and description of an existing type.
func (s *DataStore) UpdateActivityType(ctx context.Context, at *activitytype.ActivityType) error {
	name, err := cleanName("activity type", at.Name)
	if err != nil {
		return err
	}
	if _, err := s.requireActivityType(ctx, at.ID); err != nil {
		return err
	}
	if err := s.ensureActivityTypeNameFree(ctx, name, &at.ID); err != nil {
		return err
	}

	at.Name = name
	if err := s.activityTypes.Update(ctx, at); err != nil {
		return storageErr("updating activity type", err)
	}

	s.logger.Info("activity type updated", "activity_type_id", at.ID, "name", at.Name)
	return nil
}

// RenameActivityType renames the activity type called oldName.
func (s *DataStore) RenameActivityType(ctx context.Context, oldName, newName string) (*activitytype.ActivityType, error) {
	at, err := s.GetActivityType(ctx, oldName)
	if err != nil {
		return nil, err
	}
	if at == nil {
		return nil, fmt.Errorf("%w: %q", ErrActivityTypeNotFound, oldName)
	}

	at.Name = newName
	if err := s.UpdateActivityType(ctx, at); err != nil {
		return nil, err
	}
	return at, nil
}

// DeleteActivityType removes an activity type. Activities of that type are
// re-pointed to the Unknown type first. The Unknown type itself cannot be
// deleted.
func (s *DataStore) DeleteActivityType(ctx context.Context, at *activitytype.ActivityType) error {
	if at.ID == activitytype.UnknownID {
		return ErrSentinelActivityType
	}
	existing, err := s.requireActivityType(ctx, at.ID)
	if err != nil {
		return err
	}

	activities, err := s.activities.List(ctx, activity.ListOptions{TypeID: &existing.ID})
	if err != nil {
		return storageErr("listing activities", err)
	}
	for i := range activities {
		a := &activities[i]
		a.TypeID = activitytype.UnknownID
		if err := s.activities.Update(ctx, a); err != nil {
			return storageErr("reassigning activity", err)
		}
		s.logger.Debug("activity reassigned to unknown type", "activity_id", a.ID, "activity_type_id", existing.ID)
	}

	if err := s.activityTypes.Delete(ctx, existing.ID); err != nil {
		return storageErr("deleting activity type", err)
	}

	s.logger.Info("activity type deleted", "activity_type_id", existing.ID, "name", existing.Name,
		"reassigned", len(activities))
	return nil
}

func (s *DataStore) requireActivityType(ctx context.Context, id uint64) (*activitytype.ActivityType, error) {
	at, err := s.GetActivityTypeWithID(ctx, id)
	if err != nil {
		return nil, err
	}
	if at == nil {
		return nil, fmt.Errorf("%w: id %d", ErrActivityTypeNotFound, id)
	}
	return at, nil
}

func (s *DataStore) ensureActivityTypeNameFree(ctx context.Context, name string, self *uint64) error {
	matches, err := s.activityTypes.GetByName(ctx, name)
	if err != nil {
		return storageErr("loading activity type", err)
	}
	for _, m := range matches {
		if self == nil || m.ID != *self {
			return fmt.Errorf("%w: %q", ErrActivityTypeAlreadyExists, name)
		}
	}
	return nil
}

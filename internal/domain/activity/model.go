package activity

import (
	"time"

	"github.com/rpggio/devtracker/internal/domain/activitytype"
)

// Activity is a timed work session tied to a project and an activity type.
// An activity with a nil End is running.
type Activity struct {
	ID          uint64     `json:"id"`
	ProjectID   uint64     `json:"project"`
	TypeID      uint64     `json:"atype"`
	Description *string    `json:"description,omitempty"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end,omitempty"`
}

// New returns an unsaved running activity started at start.
func New(projectID, typeID uint64, description *string, start time.Time) *Activity {
	return &Activity{
		ProjectID:   projectID,
		TypeID:      typeID,
		Description: description,
		Start:       start,
	}
}

// NewUnknown returns an unsaved running activity of the sentinel type.
func NewUnknown(projectID uint64, start time.Time) *Activity {
	return New(projectID, activitytype.UnknownID, nil, start)
}

// IsRunning reports whether the activity has not been stopped.
func (a *Activity) IsRunning() bool {
	return a.End == nil
}

// Duration returns end - start. ok is false while the activity is running.
func (a *Activity) Duration() (d time.Duration, ok bool) {
	if a.End == nil {
		return 0, false
	}
	return a.End.Sub(a.Start), true
}

// Elapsed returns the duration, using now as the end of a running activity.
func (a *Activity) Elapsed(now time.Time) time.Duration {
	if d, ok := a.Duration(); ok {
		return d
	}
	return now.Sub(a.Start)
}

// DescriptionOrEmpty returns the description, or "" when unset.
func (a *Activity) DescriptionOrEmpty() string {
	if a.Description == nil {
		return ""
	}
	return *a.Description
}

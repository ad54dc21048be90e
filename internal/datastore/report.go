package datastore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rpggio/devtracker/internal/domain/activity"
	"github.com/rpggio/devtracker/internal/domain/activitytype"
	"github.com/rpggio/devtracker/internal/domain/count"
	"github.com/rpggio/devtracker/internal/domain/project"
	"github.com/rpggio/devtracker/internal/domain/repo"
	"github.com/rpggio/devtracker/internal/domain/report"
)

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// CreateReport assembles the activities of proj that started within
// [start, end] and the counts of each of its repos taken within the same
// window. Nil bounds are open. Running activities are measured up to now.
func (s *DataStore) CreateReport(ctx context.Context, proj *project.Project, start, end *time.Time) (*report.Report, error) {
	existing, err := s.requireProject(ctx, proj.ID)
	if err != nil {
		return nil, err
	}
	start, end = utcPtr(start), utcPtr(end)
	if start != nil && end != nil && end.Before(*start) {
		return nil, fmt.Errorf("%w: report end precedes start", ErrInvalidInput)
	}

	now := s.clock()
	rep := report.New(existing.Name, start, end, now)

	types, err := s.GetActivityTypes(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uint64]string, len(types))
	for _, at := range types {
		names[at.ID] = at.Name
	}

	activities, err := s.activities.List(ctx, activity.ListOptions{ProjectID: &existing.ID})
	if err != nil {
		return nil, storageErr("listing activities", err)
	}
	sort.SliceStable(activities, func(i, j int) bool {
		if !activities[i].Start.Equal(activities[j].Start) {
			return activities[i].Start.Before(activities[j].Start)
		}
		return activities[i].ID < activities[j].ID
	})
	for i := range activities {
		a := &activities[i]
		if !report.InWindow(a.Start, start, end) {
			continue
		}
		name, ok := names[a.TypeID]
		if !ok {
			name = activitytype.UnknownName
		}
		rep.Activities = append(rep.Activities, report.Activity{
			Name:    name,
			Start:   a.Start,
			Minutes: max(0, int64(a.Elapsed(now)/time.Minute)),
		})
	}

	repos, err := s.repos.List(ctx, repo.ListOptions{ProjectID: &existing.ID})
	if err != nil {
		return nil, storageErr("listing repos", err)
	}
	for _, rp := range repos {
		counts, err := s.counts.List(ctx, count.ListOptions{RepoID: &rp.ID})
		if err != nil {
			return nil, storageErr("listing counts", err)
		}
		sort.SliceStable(counts, func(i, j int) bool {
			if !counts[i].Date.Equal(counts[j].Date) {
				return counts[i].Date.Before(counts[j].Date)
			}
			return counts[i].ID < counts[j].ID
		})

		entries := []report.Count{}
		for _, c := range counts {
			if report.InWindow(c.Date, start, end) {
				entries = append(entries, report.Count{Date: c.Date, Count: c.Total})
			}
		}
		rep.Counts[rp.Path] = entries
	}

	s.logger.Debug("report created", "project_id", existing.ID,
		"activities", len(rep.Activities), "repos", len(rep.Counts))
	return rep, nil
}

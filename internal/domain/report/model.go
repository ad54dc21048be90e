package report

import (
	"sort"
	"time"
)

// Report is a read-only projection of a project's activities and counts over
// an optional time window. A nil Start means "from the beginning" and a nil
// End means "up to now".
type Report struct {
	Start              *time.Time         `json:"start"`
	End                *time.Time         `json:"end"`
	GeneratedAt        time.Time          `json:"generated_at"`
	ProjectName        string             `json:"project_name"`
	ProjectDescription *string            `json:"project_description"`
	Activities         []Activity         `json:"activities"`
	Counts             map[string][]Count `json:"counts"`
}

// Activity is one flattened activity entry.
type Activity struct {
	Name    string    `json:"name"`
	Start   time.Time `json:"start"`
	Minutes int64     `json:"minutes"`
}

// Count is one line-count measurement of a repo.
type Count struct {
	Date  time.Time `json:"date"`
	Count uint64    `json:"count"`
}

// New returns an empty report for the named project.
func New(projectName string, start, end *time.Time, generatedAt time.Time) *Report {
	return &Report{
		Start:       start,
		End:         end,
		GeneratedAt: generatedAt,
		ProjectName: projectName,
		Activities:  []Activity{},
		Counts:      map[string][]Count{},
	}
}

// TotalMinutes sums the minutes of all activities.
func (r *Report) TotalMinutes() int64 {
	var total int64
	for _, a := range r.Activities {
		total += a.Minutes
	}
	return total
}

// Paths returns the repo paths in the report, sorted.
func (r *Report) Paths() []string {
	paths := make([]string, 0, len(r.Counts))
	for p := range r.Counts {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// LatestCount returns the last count recorded for path within the window.
func (r *Report) LatestCount(path string) (Count, bool) {
	counts := r.Counts[path]
	if len(counts) == 0 {
		return Count{}, false
	}
	return counts[len(counts)-1], true
}

// TotalLines sums the latest count of every repo.
func (r *Report) TotalLines() uint64 {
	var total uint64
	for p := range r.Counts {
		if c, ok := r.LatestCount(p); ok {
			total += c.Count
		}
	}
	return total
}

// InWindow reports whether t lies within [start, end], treating nil bounds as
// open.
func InWindow(t time.Time, start, end *time.Time) bool {
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && t.After(*end) {
		return false
	}
	return true
}

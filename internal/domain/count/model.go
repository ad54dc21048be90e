package count

import "time"

// Count is a point-in-time measurement of lines of code for a repo.
type Count struct {
	ID     uint64    `json:"id"`
	RepoID uint64    `json:"repo"`
	Date   time.Time `json:"date"`
	Total  uint64    `json:"count"`
}

// New returns an unsaved count.
func New(repoID uint64, date time.Time, total uint64) *Count {
	return &Count{RepoID: repoID, Date: date, Total: total}
}

// ListOptions filters count listings.
type ListOptions struct {
	RepoID *uint64
}

// Latest returns the count with the greatest date. Equal dates are broken by
// the highest id. It returns nil for an empty slice.
func Latest(counts []Count) *Count {
	var latest *Count
	for i := range counts {
		c := &counts[i]
		if latest == nil || c.Date.After(latest.Date) || (c.Date.Equal(latest.Date) && c.ID > latest.ID) {
			latest = c
		}
	}
	return latest
}

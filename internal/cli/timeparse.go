package cli

import (
	"fmt"
	"time"

	"github.com/rpggio/devtracker/internal/datastore"
)

const (
	minuteLayout  = "2006-01-02T15:04"
	dayLayout     = "02-01-2006"
	displayLayout = "2006-01-02 15:04"
)

// parseTime accepts YYYY-MM-DDTHH:MM, or DD-MM-YYYY meaning midday, in loc.
func parseTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(minuteLayout, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dayLayout, s, loc); err == nil {
		return t.Add(12 * time.Hour), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a date (use YYYY-MM-DDTHH:MM or DD-MM-YYYY)", datastore.ErrInvalidInput, s)
}

func formatTime(t time.Time) string {
	return t.Local().Format(displayLayout)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

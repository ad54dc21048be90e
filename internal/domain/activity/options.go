package activity

// ListOptions provides filtering options for listing activities.
type ListOptions struct {
	ProjectID *uint64
	TypeID    *uint64
	// RunningOnly restricts the listing to activities without an end time.
	RunningOnly bool
}

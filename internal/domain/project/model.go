package project

// Project is the top-level unit of organization owning repos and activities.
type Project struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// New returns an unsaved project. The ID is assigned on insert.
func New(name string) *Project {
	return &Project{Name: name}
}

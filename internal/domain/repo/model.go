package repo

// Repo is a filesystem location associated with a project.
type Repo struct {
	ID        uint64 `json:"id"`
	ProjectID uint64 `json:"project"`
	Path      string `json:"path"`
}

// New returns an unsaved repo for the given project.
func New(projectID uint64, path string) *Repo {
	return &Repo{ProjectID: projectID, Path: path}
}

// ListOptions filters repo listings.
type ListOptions struct {
	ProjectID *uint64
}

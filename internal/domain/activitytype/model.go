package activitytype

// UnknownID is the reserved id of the sentinel activity type. Activities whose
// type is deleted are re-pointed here.
const UnknownID uint64 = 0

// UnknownName is the name seeded for the sentinel activity type.
const UnknownName = "Unknown"

// ActivityType is a user-defined category of work, e.g. "coding".
type ActivityType struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// New returns an unsaved activity type.
func New(name string, description *string) *ActivityType {
	return &ActivityType{Name: name, Description: description}
}

// IsUnknown reports whether this is the sentinel type.
func (at *ActivityType) IsUnknown() bool {
	return at.ID == UnknownID
}

// DescriptionOrEmpty returns the description, or "" when unset.
func (at *ActivityType) DescriptionOrEmpty() string {
	if at.Description == nil {
		return ""
	}
	return *at.Description
}

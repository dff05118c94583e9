package valueobjects

import "fmt"

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusReview     ProjectStatus = "review"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
)

var validProjectStatuses = map[ProjectStatus]bool{
	ProjectStatusPlanning:   true,
	ProjectStatusInProgress: true,
	ProjectStatusReview:     true,
	ProjectStatusCompleted:  true,
	ProjectStatusOnHold:     true,
}

func (s ProjectStatus) String() string {
	return string(s)
}

// IsValid reports enum membership. Project status transitions are free-form:
// any status may follow any other.
func (s ProjectStatus) IsValid() bool {
	return validProjectStatuses[s]
}

func (s ProjectStatus) IsCompleted() bool {
	return s == ProjectStatusCompleted
}

func NewProjectStatus(s string) (ProjectStatus, error) {
	status := ProjectStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid project status: %s", s)
	}
	return status, nil
}

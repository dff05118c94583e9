package valueobjects

import "fmt"

type PhaseStatus string

const (
	PhaseStatusPending    PhaseStatus = "pending"
	PhaseStatusInProgress PhaseStatus = "in_progress"
	PhaseStatusCompleted  PhaseStatus = "completed"
	PhaseStatusSkipped    PhaseStatus = "skipped"
)

var validPhaseStatuses = map[PhaseStatus]bool{
	PhaseStatusPending:    true,
	PhaseStatusInProgress: true,
	PhaseStatusCompleted:  true,
	PhaseStatusSkipped:    true,
}

func (s PhaseStatus) String() string {
	return string(s)
}

func (s PhaseStatus) IsValid() bool {
	return validPhaseStatuses[s]
}

func (s PhaseStatus) IsPending() bool {
	return s == PhaseStatusPending
}

func (s PhaseStatus) IsInProgress() bool {
	return s == PhaseStatusInProgress
}

func (s PhaseStatus) IsCompleted() bool {
	return s == PhaseStatusCompleted
}

func (s PhaseStatus) IsSkipped() bool {
	return s == PhaseStatusSkipped
}

func NewPhaseStatus(s string) (PhaseStatus, error) {
	status := PhaseStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid phase status: %s", s)
	}
	return status, nil
}

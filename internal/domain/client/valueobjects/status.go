package valueobjects

import "fmt"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusArchived Status = "archived"
)

var validStatuses = map[Status]bool{
	StatusActive:   true,
	StatusInactive: true,
	StatusArchived: true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsActive() bool {
	return s == StatusActive
}

func (s Status) IsArchived() bool {
	return s == StatusArchived
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid client status: %s", s)
	}
	return status, nil
}

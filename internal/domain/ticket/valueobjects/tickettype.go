package valueobjects

import "fmt"

type TicketType string

const (
	TypeGeneralSupport TicketType = "general_support"
	TypeProjectIssue   TicketType = "project_issue"
	TypeFeatureRequest TicketType = "feature_request"
	TypeBugReport      TicketType = "bug_report"
)

var validTicketTypes = map[TicketType]bool{
	TypeGeneralSupport: true,
	TypeProjectIssue:   true,
	TypeFeatureRequest: true,
	TypeBugReport:      true,
}

func (t TicketType) String() string {
	return string(t)
}

func (t TicketType) IsValid() bool {
	return validTicketTypes[t]
}

func NewTicketType(s string) (TicketType, error) {
	t := TicketType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return t, nil
}

package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen            TicketStatus = "open"
	StatusInProgress      TicketStatus = "in_progress"
	StatusWaitingOnClient TicketStatus = "waiting_on_client"
	StatusResolved        TicketStatus = "resolved"
	StatusClosed          TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:            true,
	StatusInProgress:      true,
	StatusWaitingOnClient: true,
	StatusResolved:        true,
	StatusClosed:          true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

// IsValid reports enum membership. Admin status changes are deliberately
// permissive: any valid status may follow any other. The only automatic
// transition in the system is waiting_on_client -> in_progress on a client
// reply, handled by the aggregate.
func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsWaitingOnClient() bool {
	return ts == StatusWaitingOnClient
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// IsFinal reports whether the ticket has reached a terminal state. There is
// no reopen operation in the exposed API.
func (ts TicketStatus) IsFinal() bool {
	return ts == StatusResolved || ts == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

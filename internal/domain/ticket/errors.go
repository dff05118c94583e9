package ticket

import "errors"

var (
	// ErrAlreadyAssigned is returned when claiming a ticket that has an assignee.
	ErrAlreadyAssigned = errors.New("ticket is already assigned")

	// ErrNotClaimable is returned when claiming a ticket that is not open.
	ErrNotClaimable = errors.New("only open tickets can be claimed")

	// ErrNotAssignee is returned when unclaiming a ticket assigned to someone else.
	ErrNotAssignee = errors.New("caller is not the current assignee")

	// ErrFinalized is returned when mutating a resolved or closed ticket.
	ErrFinalized = errors.New("ticket is resolved or closed")

	// ErrResolutionRequired is returned when resolving without resolution text.
	ErrResolutionRequired = errors.New("resolution text is required")
)

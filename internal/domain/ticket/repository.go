package ticket

import (
	"context"

	vo "ddportal/internal/domain/ticket/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	// SoftDelete marks a ticket as deleted; the row is retained.
	SoftDelete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)

	SaveComment(ctx context.Context, comment *Comment) error
	GetCommentsByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)

	SaveTimeEntry(ctx context.Context, entry *TimeEntry) error
	UpdateTimeEntry(ctx context.Context, entry *TimeEntry) error
	// SoftDeleteTimeEntry marks an entry as deleted; the row is retained.
	SoftDeleteTimeEntry(ctx context.Context, entryID uint) error
	GetTimeEntryByID(ctx context.Context, entryID uint) (*TimeEntry, error)
	GetTimeEntriesByTicketID(ctx context.Context, ticketID uint) ([]*TimeEntry, error)

	// AddTimeSpent applies a delta to the ticket's cached time_spent_minutes
	// as a single column-arithmetic UPDATE.
	AddTimeSpent(ctx context.Context, ticketID uint, deltaMinutes int) error
}

type Filter struct {
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	Type       *vo.TicketType
	ClientID   *uint
	ProjectID  *uint
	AssignedTo *uint
	CreatedBy  *uint
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

package ticket

import (
	"strconv"
	"time"

	"ddportal/internal/domain/shared/events"
)

const (
	EventTypeTicketCreated      = "ticket.created"
	EventTypeTicketCommentAdded = "ticket.comment_added"
	EventTypeTicketResolved     = "ticket.resolved"
)

type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID  uint   `json:"ticket_id"`
	ClientID  uint   `json:"client_id"`
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	Type      string `json:"type"`
	CreatedBy uint   `json:"created_by"`
}

func NewTicketCreatedEvent(t *Ticket) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(t.ID()), 10),
			EventType:   EventTypeTicketCreated,
			OccurredAt:  time.Now(),
		},
		TicketID:  t.ID(),
		ClientID:  t.ClientID(),
		Title:     t.Title(),
		Priority:  t.Priority().String(),
		Type:      t.Type().String(),
		CreatedBy: t.CreatedBy(),
	}
}

type TicketCommentAddedEvent struct {
	events.BaseEvent
	TicketID      uint   `json:"ticket_id"`
	ClientID      uint   `json:"client_id"`
	TicketTitle   string `json:"ticket_title"`
	CommentID     uint   `json:"comment_id"`
	AuthorID      uint   `json:"author_id"`
	IsInternal    bool   `json:"is_internal"`
	StatusChanged bool   `json:"status_changed"`
	NewStatus     string `json:"new_status"`
}

func NewTicketCommentAddedEvent(t *Ticket, c *Comment, statusChanged bool) TicketCommentAddedEvent {
	return TicketCommentAddedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(t.ID()), 10),
			EventType:   EventTypeTicketCommentAdded,
			OccurredAt:  time.Now(),
		},
		TicketID:      t.ID(),
		ClientID:      t.ClientID(),
		TicketTitle:   t.Title(),
		CommentID:     c.ID(),
		AuthorID:      c.AuthorID(),
		IsInternal:    c.IsInternal(),
		StatusChanged: statusChanged,
		NewStatus:     t.Status().String(),
	}
}

type TicketResolvedEvent struct {
	events.BaseEvent
	TicketID   uint   `json:"ticket_id"`
	ClientID   uint   `json:"client_id"`
	Title      string `json:"title"`
	Resolution string `json:"resolution"`
	ResolvedBy uint   `json:"resolved_by"`
	Closed     bool   `json:"closed"`
}

func NewTicketResolvedEvent(t *Ticket, resolvedBy uint, closed bool) TicketResolvedEvent {
	return TicketResolvedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(t.ID()), 10),
			EventType:   EventTypeTicketResolved,
			OccurredAt:  time.Now(),
		},
		TicketID:   t.ID(),
		ClientID:   t.ClientID(),
		Title:      t.Title(),
		Resolution: t.Resolution(),
		ResolvedBy: resolvedBy,
		Closed:     closed,
	}
}

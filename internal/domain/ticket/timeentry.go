package ticket

import (
	"fmt"
	"time"
)

const (
	minEntryMinutes = 1
	maxEntryMinutes = 1440
)

// TimeEntry is a unit of logged work on a ticket. Entries that count towards
// support hours feed the client's monthly usage counter.
type TimeEntry struct {
	id                       uint
	ticketID                 uint
	userID                   uint
	minutes                  int
	description              string
	countTowardsSupportHours bool
	loggedAt                 time.Time
	createdAt                time.Time
	updatedAt                time.Time
}

func NewTimeEntry(
	ticketID uint,
	userID uint,
	minutes int,
	description string,
	countTowardsSupportHours bool,
) (*TimeEntry, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if minutes < minEntryMinutes || minutes > maxEntryMinutes {
		return nil, fmt.Errorf("minutes must be between %d and %d", minEntryMinutes, maxEntryMinutes)
	}

	now := time.Now()
	return &TimeEntry{
		ticketID:                 ticketID,
		userID:                   userID,
		minutes:                  minutes,
		description:              description,
		countTowardsSupportHours: countTowardsSupportHours,
		loggedAt:                 now,
		createdAt:                now,
		updatedAt:                now,
	}, nil
}

func ReconstructTimeEntry(
	id uint,
	ticketID uint,
	userID uint,
	minutes int,
	description string,
	countTowardsSupportHours bool,
	loggedAt time.Time,
	createdAt, updatedAt time.Time,
) (*TimeEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("time entry ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &TimeEntry{
		id:                       id,
		ticketID:                 ticketID,
		userID:                   userID,
		minutes:                  minutes,
		description:              description,
		countTowardsSupportHours: countTowardsSupportHours,
		loggedAt:                 loggedAt,
		createdAt:                createdAt,
		updatedAt:                updatedAt,
	}, nil
}

func (e *TimeEntry) ID() uint {
	return e.id
}

func (e *TimeEntry) TicketID() uint {
	return e.ticketID
}

func (e *TimeEntry) UserID() uint {
	return e.userID
}

func (e *TimeEntry) Minutes() int {
	return e.minutes
}

func (e *TimeEntry) Description() string {
	return e.description
}

func (e *TimeEntry) CountTowardsSupportHours() bool {
	return e.countTowardsSupportHours
}

func (e *TimeEntry) LoggedAt() time.Time {
	return e.loggedAt
}

func (e *TimeEntry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *TimeEntry) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *TimeEntry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("time entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("time entry ID cannot be zero")
	}
	e.id = id
	return nil
}

// UpdateDetails edits minutes and description. The countTowardsSupportHours
// flag is fixed at creation and not editable afterwards.
func (e *TimeEntry) UpdateDetails(minutes int, description string) error {
	if minutes < minEntryMinutes || minutes > maxEntryMinutes {
		return fmt.Errorf("minutes must be between %d and %d", minEntryMinutes, maxEntryMinutes)
	}

	e.minutes = minutes
	e.description = description
	e.updatedAt = time.Now()
	return nil
}

package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ddportal/internal/domain/client"
	clientvo "ddportal/internal/domain/client/valueobjects"
	"ddportal/internal/domain/ticket"
	vo "ddportal/internal/domain/ticket/valueobjects"
)

func testTicket(t *testing.T, status vo.TicketStatus, assignedTo *uint) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	var assignedAt *time.Time
	if assignedTo != nil {
		assignedAt = &now
	}
	tk, err := ticket.ReconstructTicket(
		1, 7, nil,
		"Broken contact form", "Submissions vanish",
		vo.TypeBugReport, vo.PriorityHigh,
		status,
		10,
		assignedTo, assignedAt,
		nil, nil, "",
		0,
		"", "",
		now, now,
	)
	require.NoError(t, err)
	return tk
}

func testTimeEntry(t *testing.T, minutes int, counted bool) *ticket.TimeEntry {
	t.Helper()
	entry, err := ticket.ReconstructTimeEntry(
		50, 1, 5,
		minutes, "debugging", counted,
		time.Now(), time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return entry
}

func testClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.ReconstructClient(
		7, "Acme Corp", "ops@acme.test",
		clientvo.StatusActive,
		600, 0,
		time.Now(), time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return c
}

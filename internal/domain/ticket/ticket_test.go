package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "ddportal/internal/domain/ticket/valueobjects"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// newOpenTicket creates an unassigned open ticket with sensible defaults.
func newOpenTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(1, nil, "Printer on fire", "It is very much on fire", vo.TypeGeneralSupport, vo.PriorityMedium, 10)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(100))
	return tk
}

// reconstructedTicket builds a persisted-style ticket in the given status.
func reconstructedTicket(t *testing.T, status vo.TicketStatus, assignedTo *uint) *Ticket {
	t.Helper()
	now := time.Now()
	var assignedAt *time.Time
	if assignedTo != nil {
		assignedAt = &now
	}
	tk, err := ReconstructTicket(
		100, 1, nil,
		"Persisted ticket", "desc",
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

func ticketComment(t *testing.T, ticketID, authorID uint, internal bool) *Comment {
	t.Helper()
	c, err := NewComment(ticketID, authorID, "a comment", internal)
	require.NoError(t, err)
	return c
}

// ---------------------------------------------------------------------------
// Constructor
// ---------------------------------------------------------------------------

func TestNewTicket_ValidInput(t *testing.T) {
	projectID := uint(7)
	tk, err := NewTicket(1, &projectID, "Title", "Description", vo.TypeProjectIssue, vo.PriorityUrgent, 42)
	require.NoError(t, err)
	require.NotNil(t, tk)

	assert.Equal(t, uint(1), tk.ClientID())
	assert.Equal(t, projectID, *tk.ProjectID())
	assert.Equal(t, "Title", tk.Title())
	assert.Equal(t, vo.TypeProjectIssue, tk.Type())
	assert.Equal(t, vo.PriorityUrgent, tk.Priority())
	assert.Equal(t, vo.StatusOpen, tk.Status(), "new ticket must start open")
	assert.Equal(t, uint(42), tk.CreatedBy())
	assert.Nil(t, tk.AssignedTo())
	assert.Nil(t, tk.AssignedAt())
	assert.Nil(t, tk.ResolvedAt())
	assert.Empty(t, tk.Resolution())
	assert.Zero(t, tk.TimeSpentMinutes())
	assert.False(t, tk.CreatedAt().IsZero())
}

func TestNewTicket_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		clientID uint
		title    string
		desc     string
		ttype    vo.TicketType
		priority vo.Priority
		creator  uint
		errMsg   string
	}{
		{"zero client ID", 0, "Title", "d", vo.TypeGeneralSupport, vo.PriorityLow, 1, "client ID is required"},
		{"empty title", 1, "", "d", vo.TypeGeneralSupport, vo.PriorityLow, 1, "title is required"},
		{"whitespace title", 1, "   ", "d", vo.TypeGeneralSupport, vo.PriorityLow, 1, "title is required"},
		{"title too long", 1, strings.Repeat("a", 201), "d", vo.TypeGeneralSupport, vo.PriorityLow, 1, "maximum length of 200"},
		{"description too long", 1, "Title", strings.Repeat("d", 5001), vo.TypeGeneralSupport, vo.PriorityLow, 1, "maximum length of 5000"},
		{"invalid type", 1, "Title", "d", vo.TicketType("bogus"), vo.PriorityLow, 1, "invalid ticket type"},
		{"invalid priority", 1, "Title", "d", vo.TypeGeneralSupport, vo.Priority("bogus"), 1, "invalid priority"},
		{"zero creator", 1, "Title", "d", vo.TypeGeneralSupport, vo.PriorityLow, 0, "creator ID is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk, err := NewTicket(tc.clientID, nil, tc.title, tc.desc, tc.ttype, tc.priority, tc.creator)
			require.Error(t, err)
			assert.Nil(t, tk)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

// ---------------------------------------------------------------------------
// Claim / Unclaim
// ---------------------------------------------------------------------------

func TestTicket_Claim_Unassigned(t *testing.T) {
	tk := newOpenTicket(t)

	err := tk.Claim(5)
	require.NoError(t, err)

	require.NotNil(t, tk.AssignedTo())
	assert.Equal(t, uint(5), *tk.AssignedTo())
	assert.NotNil(t, tk.AssignedAt())
	assert.Equal(t, vo.StatusOpen, tk.Status(), "claiming must not change the status")
}

func TestTicket_Claim_AlreadyAssigned(t *testing.T) {
	tk := newOpenTicket(t)
	require.NoError(t, tk.Claim(5))

	err := tk.Claim(6)
	require.ErrorIs(t, err, ErrAlreadyAssigned)
	assert.Equal(t, uint(5), *tk.AssignedTo(), "first claimer keeps the ticket")
}

func TestTicket_Claim_SelfReclaim(t *testing.T) {
	tk := newOpenTicket(t)
	require.NoError(t, tk.Claim(5))

	// Claiming again, even by the same user, is rejected.
	err := tk.Claim(5)
	require.ErrorIs(t, err, ErrAlreadyAssigned)
}

func TestTicket_Claim_NotOpen(t *testing.T) {
	for _, status := range []vo.TicketStatus{
		vo.StatusInProgress,
		vo.StatusWaitingOnClient,
		vo.StatusResolved,
		vo.StatusClosed,
	} {
		t.Run(status.String(), func(t *testing.T) {
			tk := reconstructedTicket(t, status, nil)
			err := tk.Claim(5)
			require.ErrorIs(t, err, ErrNotClaimable)
		})
	}
}

func TestTicket_Unclaim(t *testing.T) {
	tk := newOpenTicket(t)
	require.NoError(t, tk.Claim(5))

	require.NoError(t, tk.Unclaim(5))
	assert.Nil(t, tk.AssignedTo())
	assert.Nil(t, tk.AssignedAt())
}

func TestTicket_Unclaim_NotAssignee(t *testing.T) {
	tk := newOpenTicket(t)
	require.NoError(t, tk.Claim(5))

	err := tk.Unclaim(6)
	require.ErrorIs(t, err, ErrNotAssignee)
}

func TestTicket_Unclaim_Unassigned(t *testing.T) {
	tk := newOpenTicket(t)
	err := tk.Unclaim(5)
	require.ErrorIs(t, err, ErrNotAssignee)
}

func TestTicket_Unclaim_Finalized(t *testing.T) {
	assignee := uint(5)
	tk := reconstructedTicket(t, vo.StatusResolved, &assignee)

	err := tk.Unclaim(5)
	require.ErrorIs(t, err, ErrFinalized)
}

// ---------------------------------------------------------------------------
// Resolve
// ---------------------------------------------------------------------------

func TestTicket_Resolve(t *testing.T) {
	tk := newOpenTicket(t)

	err := tk.Resolve("replaced the fuser unit", 5, false)
	require.NoError(t, err)

	assert.Equal(t, vo.StatusResolved, tk.Status())
	assert.Equal(t, "replaced the fuser unit", tk.Resolution())
	require.NotNil(t, tk.ResolvedBy())
	assert.Equal(t, uint(5), *tk.ResolvedBy())
	assert.NotNil(t, tk.ResolvedAt())
}

func TestTicket_Resolve_AndClose(t *testing.T) {
	tk := newOpenTicket(t)

	require.NoError(t, tk.Resolve("done", 5, true))
	assert.Equal(t, vo.StatusClosed, tk.Status())
}

func TestTicket_Resolve_EmptyResolution(t *testing.T) {
	tk := newOpenTicket(t)

	for _, resolution := range []string{"", "   ", "\n\t"} {
		err := tk.Resolve(resolution, 5, false)
		require.ErrorIs(t, err, ErrResolutionRequired)
	}
	assert.Equal(t, vo.StatusOpen, tk.Status())
}

func TestTicket_Resolve_AlreadyFinal(t *testing.T) {
	tk := newOpenTicket(t)
	require.NoError(t, tk.Resolve("first resolution", 5, false))

	err := tk.Resolve("second resolution", 6, false)
	require.ErrorIs(t, err, ErrFinalized)
	assert.Equal(t, "first resolution", tk.Resolution())
}

// ---------------------------------------------------------------------------
// SetStatus
// ---------------------------------------------------------------------------

func TestTicket_SetStatus_AnyToAny(t *testing.T) {
	statuses := []vo.TicketStatus{
		vo.StatusOpen,
		vo.StatusInProgress,
		vo.StatusWaitingOnClient,
		vo.StatusResolved,
		vo.StatusClosed,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			tk := reconstructedTicket(t, from, nil)
			require.NoError(t, tk.SetStatus(to), "from %s to %s", from, to)
			assert.Equal(t, to, tk.Status())
		}
	}
}

func TestTicket_SetStatus_Invalid(t *testing.T) {
	tk := newOpenTicket(t)
	err := tk.SetStatus(vo.TicketStatus("archived"))
	require.Error(t, err)
	assert.Equal(t, vo.StatusOpen, tk.Status())
}

// ---------------------------------------------------------------------------
// AddComment
// ---------------------------------------------------------------------------

func TestTicket_AddComment_ClientOnWaiting(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusWaitingOnClient, nil)

	changed, err := tk.AddComment(ticketComment(t, tk.ID(), 20, false), true)
	require.NoError(t, err)

	assert.True(t, changed)
	assert.Equal(t, vo.StatusInProgress, tk.Status())
	assert.Len(t, tk.Comments(), 1)
}

func TestTicket_AddComment_AdminOnWaiting(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusWaitingOnClient, nil)

	changed, err := tk.AddComment(ticketComment(t, tk.ID(), 5, false), false)
	require.NoError(t, err)

	assert.False(t, changed, "admin comment must not trigger the auto transition")
	assert.Equal(t, vo.StatusWaitingOnClient, tk.Status())
}

func TestTicket_AddComment_ClientOnOtherStatuses(t *testing.T) {
	for _, status := range []vo.TicketStatus{
		vo.StatusOpen,
		vo.StatusInProgress,
		vo.StatusResolved,
		vo.StatusClosed,
	} {
		t.Run(status.String(), func(t *testing.T) {
			tk := reconstructedTicket(t, status, nil)
			changed, err := tk.AddComment(ticketComment(t, tk.ID(), 20, false), true)
			require.NoError(t, err)
			assert.False(t, changed)
			assert.Equal(t, status, tk.Status())
		})
	}
}

func TestTicket_AddComment_WrongTicket(t *testing.T) {
	tk := newOpenTicket(t)
	_, err := tk.AddComment(ticketComment(t, 999, 20, false), true)
	require.Error(t, err)
	assert.Empty(t, tk.Comments())
}

// ---------------------------------------------------------------------------
// Time accounting
// ---------------------------------------------------------------------------

func TestTicket_ApplyTimeSpentDelta(t *testing.T) {
	tk := newOpenTicket(t)

	tk.ApplyTimeSpentDelta(90)
	assert.Equal(t, 90, tk.TimeSpentMinutes())

	tk.ApplyTimeSpentDelta(-30)
	assert.Equal(t, 60, tk.TimeSpentMinutes())
}

func TestTicket_BelongsToClient(t *testing.T) {
	tk := newOpenTicket(t)
	assert.True(t, tk.BelongsToClient(1))
	assert.False(t, tk.BelongsToClient(2))
}

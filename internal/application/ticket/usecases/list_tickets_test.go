package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ddportal/internal/domain/ticket"
	vo "ddportal/internal/domain/ticket/valueobjects"
	"ddportal/internal/shared/authorization"
	"ddportal/internal/shared/errors"
)

func TestListTicketsUseCase_Execute_ClientScopedToOwnTenant(t *testing.T) {
	var captured ticket.Filter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return []*ticket.Ticket{testTicket(t, vo.StatusOpen, nil)}, 1, nil
		},
	}

	other := uint(99)
	uc := NewListTicketsUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListTicketsQuery{
		ClientID:      &other, // ignored for client callers
		ActorRole:     authorization.RoleClient,
		ActorClientID: 7,
	})

	require.NoError(t, err)
	require.NotNil(t, captured.ClientID)
	assert.Equal(t, uint(7), *captured.ClientID)
	assert.Equal(t, int64(1), result.Total)
	assert.Len(t, result.Tickets, 1)
}

func TestListTicketsUseCase_Execute_AdminFilters(t *testing.T) {
	var captured ticket.Filter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}

	clientID := uint(7)
	assignee := uint(5)
	uc := NewListTicketsUseCase(repo, &mockLogger{})
	_, err := uc.Execute(context.Background(), ListTicketsQuery{
		Status:     "in_progress",
		Priority:   "high",
		ClientID:   &clientID,
		AssignedTo: &assignee,
		Page:       2,
		PageSize:   10,
		ActorRole:  authorization.RoleAdmin,
	})

	require.NoError(t, err)
	require.NotNil(t, captured.Status)
	assert.Equal(t, vo.StatusInProgress, *captured.Status)
	require.NotNil(t, captured.Priority)
	assert.Equal(t, vo.PriorityHigh, *captured.Priority)
	assert.Equal(t, clientID, *captured.ClientID)
	assert.Equal(t, assignee, *captured.AssignedTo)
	assert.Equal(t, 2, captured.Page)
	assert.Equal(t, 10, captured.PageSize)
}

func TestListTicketsUseCase_Execute_InvalidFilters(t *testing.T) {
	uc := NewListTicketsUseCase(&mockTicketRepository{}, &mockLogger{})

	for _, query := range []ListTicketsQuery{
		{Status: "bogus", ActorRole: authorization.RoleAdmin},
		{Priority: "bogus", ActorRole: authorization.RoleAdmin},
		{Type: "bogus", ActorRole: authorization.RoleAdmin},
	} {
		_, err := uc.Execute(context.Background(), query)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	}
}

func TestListTicketsUseCase_Execute_PaginationDefaults(t *testing.T) {
	var captured ticket.Filter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}

	uc := NewListTicketsUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListTicketsQuery{ActorRole: authorization.RoleAdmin})

	require.NoError(t, err)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 20, captured.PageSize)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.PageSize)
}

package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ddportal/internal/domain/ticket"
	vo "ddportal/internal/domain/ticket/valueobjects"
	"ddportal/internal/shared/errors"
)

func TestClaimTicketUseCase_Execute_Success(t *testing.T) {
	tk := testTicket(t, vo.StatusOpen, nil)

	var updated *ticket.Ticket
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			updated = t
			return nil
		},
	}

	uc := NewClaimTicketUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ClaimTicketCommand{TicketID: 1, ActorID: 5})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(5), result.AssignedTo)
	require.NotNil(t, updated)
	assert.Equal(t, uint(5), *updated.AssignedTo())
	assert.Equal(t, vo.StatusOpen, updated.Status(), "claim must not touch the status")
}

func TestClaimTicketUseCase_Execute_AlreadyAssignedConflict(t *testing.T) {
	other := uint(6)
	tk := testTicket(t, vo.StatusOpen, &other)

	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}

	uc := NewClaimTicketUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ClaimTicketCommand{TicketID: 1, ActorID: 5})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err), "losing a claim race is a conflict")
	require.NotNil(t, tk.AssignedTo())
	assert.Equal(t, other, *tk.AssignedTo())
}

func TestClaimTicketUseCase_Execute_NotOpenConflict(t *testing.T) {
	for _, status := range []vo.TicketStatus{
		vo.StatusInProgress,
		vo.StatusWaitingOnClient,
		vo.StatusResolved,
		vo.StatusClosed,
	} {
		t.Run(status.String(), func(t *testing.T) {
			tk := testTicket(t, status, nil)
			repo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
					return tk, nil
				},
			}

			uc := NewClaimTicketUseCase(repo, &mockLogger{})
			_, err := uc.Execute(context.Background(), ClaimTicketCommand{TicketID: 1, ActorID: 5})

			require.Error(t, err)
			assert.True(t, errors.IsConflictError(err))
		})
	}
}

func TestClaimTicketUseCase_Execute_NotFound(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}

	uc := NewClaimTicketUseCase(repo, &mockLogger{})
	_, err := uc.Execute(context.Background(), ClaimTicketCommand{TicketID: 99, ActorID: 5})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUnclaimTicketUseCase_Execute(t *testing.T) {
	assignee := uint(5)
	tk := testTicket(t, vo.StatusInProgress, &assignee)

	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}

	uc := NewUnclaimTicketUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UnclaimTicketCommand{TicketID: 1, ActorID: 5})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Nil(t, tk.AssignedTo())
}

func TestUnclaimTicketUseCase_Execute_NotAssignee(t *testing.T) {
	assignee := uint(5)
	tk := testTicket(t, vo.StatusInProgress, &assignee)

	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}

	uc := NewUnclaimTicketUseCase(repo, &mockLogger{})
	_, err := uc.Execute(context.Background(), UnclaimTicketCommand{TicketID: 1, ActorID: 6})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	require.NotNil(t, tk.AssignedTo())
}

func TestUnclaimTicketUseCase_Execute_Finalized(t *testing.T) {
	assignee := uint(5)
	tk := testTicket(t, vo.StatusClosed, &assignee)

	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}

	uc := NewUnclaimTicketUseCase(repo, &mockLogger{})
	_, err := uc.Execute(context.Background(), UnclaimTicketCommand{TicketID: 1, ActorID: 5})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

package usecases

import (
	"context"
	"errors"
	"time"

	"ddportal/internal/domain/ticket"
	apperrors "ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type ClaimTicketCommand struct {
	TicketID uint
	ActorID  uint
}

type ClaimTicketResult struct {
	TicketID   uint
	AssignedTo uint
	AssignedAt time.Time
}

// ClaimTicketUseCase assigns an open unassigned ticket to the calling team
// member. A ticket already claimed by someone else is reported as a conflict
// so the loser of a claim race gets a clean signal.
type ClaimTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewClaimTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ClaimTicketUseCase {
	return &ClaimTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ClaimTicketUseCase) Execute(ctx context.Context, cmd ClaimTicketCommand) (*ClaimTicketResult, error) {
	uc.logger.Infow("executing claim ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	if err := t.Claim(cmd.ActorID); err != nil {
		switch {
		case errors.Is(err, ticket.ErrAlreadyAssigned):
			return nil, apperrors.NewConflictError("ticket is already assigned")
		case errors.Is(err, ticket.ErrNotClaimable):
			return nil, apperrors.NewConflictError("only open tickets can be claimed")
		default:
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, apperrors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket claimed", "ticket_id", t.ID(), "assigned_to", cmd.ActorID)

	return &ClaimTicketResult{
		TicketID:   t.ID(),
		AssignedTo: *t.AssignedTo(),
		AssignedAt: *t.AssignedAt(),
	}, nil
}

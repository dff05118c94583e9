package usecases

import (
	"context"
	"errors"

	"ddportal/internal/domain/ticket"
	apperrors "ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type UnclaimTicketCommand struct {
	TicketID uint
	ActorID  uint
}

type UnclaimTicketResult struct {
	TicketID uint
	Status   string
}

type UnclaimTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUnclaimTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UnclaimTicketUseCase {
	return &UnclaimTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UnclaimTicketUseCase) Execute(ctx context.Context, cmd UnclaimTicketCommand) (*UnclaimTicketResult, error) {
	uc.logger.Infow("executing unclaim ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	if err := t.Unclaim(cmd.ActorID); err != nil {
		switch {
		case errors.Is(err, ticket.ErrNotAssignee):
			return nil, apperrors.NewForbiddenError("only the current assignee can release a ticket")
		case errors.Is(err, ticket.ErrFinalized):
			return nil, apperrors.NewConflictError("resolved or closed tickets cannot be released")
		default:
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, apperrors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket released", "ticket_id", t.ID(), "actor_id", cmd.ActorID)

	return &UnclaimTicketResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
	}, nil
}

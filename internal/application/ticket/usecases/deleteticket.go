package usecases

import (
	"context"

	"ddportal/internal/domain/ticket"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	ActorID  uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewNotFoundError("ticket not found")
	}

	if err := uc.ticketRepo.SoftDelete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewInternalError("failed to delete ticket")
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}

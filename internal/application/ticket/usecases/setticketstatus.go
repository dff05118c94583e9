package usecases

import (
	"context"

	"ddportal/internal/domain/ticket"
	vo "ddportal/internal/domain/ticket/valueobjects"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type SetTicketStatusCommand struct {
	TicketID uint
	Status   string
	ActorID  uint
}

type SetTicketStatusResult struct {
	TicketID uint
	Status   string
}

// SetTicketStatusUseCase moves a ticket between statuses at an admin's
// discretion. Any valid status can follow any other; only the enum itself is
// enforced.
type SetTicketStatusUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewSetTicketStatusUseCase(ticketRepo ticket.Repository, logger logger.Interface) *SetTicketStatusUseCase {
	return &SetTicketStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *SetTicketStatusUseCase) Execute(ctx context.Context, cmd SetTicketStatusCommand) (*SetTicketStatusResult, error) {
	uc.logger.Infow("executing set ticket status use case",
		"ticket_id", cmd.TicketID,
		"status", cmd.Status,
		"actor_id", cmd.ActorID)

	status := vo.TicketStatus(cmd.Status)
	if !status.IsValid() {
		return nil, errors.NewValidationError("invalid ticket status")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := t.SetStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	return &SetTicketStatusResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
	}, nil
}

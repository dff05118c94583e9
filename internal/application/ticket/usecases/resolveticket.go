package usecases

import (
	"context"
	"errors"
	"time"

	"ddportal/internal/domain/shared/events"
	"ddportal/internal/domain/ticket"
	apperrors "ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type ResolveTicketCommand struct {
	TicketID   uint
	Resolution string
	// Close skips the resolved state and closes the ticket outright.
	Close   bool
	ActorID uint
}

type ResolveTicketResult struct {
	TicketID   uint
	Status     string
	ResolvedAt time.Time
}

type ResolveTicketUseCase struct {
	ticketRepo      ticket.Repository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewResolveTicketUseCase(
	ticketRepo ticket.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *ResolveTicketUseCase {
	return &ResolveTicketUseCase{
		ticketRepo:      ticketRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *ResolveTicketUseCase) Execute(ctx context.Context, cmd ResolveTicketCommand) (*ResolveTicketResult, error) {
	uc.logger.Infow("executing resolve ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	if err := t.Resolve(cmd.Resolution, cmd.ActorID, cmd.Close); err != nil {
		switch {
		case errors.Is(err, ticket.ErrResolutionRequired):
			return nil, apperrors.NewValidationError("resolution text is required")
		case errors.Is(err, ticket.ErrFinalized):
			return nil, apperrors.NewConflictError("ticket is already resolved or closed")
		default:
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, apperrors.NewInternalError("failed to update ticket")
	}

	if err := uc.eventDispatcher.Publish(ticket.NewTicketResolvedEvent(t, cmd.ActorID, cmd.Close)); err != nil {
		uc.logger.Warnw("failed to dispatch ticket resolved event", "error", err)
	}

	uc.logger.Infow("ticket resolved", "ticket_id", t.ID(), "status", t.Status().String())

	return &ResolveTicketResult{
		TicketID:   t.ID(),
		Status:     t.Status().String(),
		ResolvedAt: *t.ResolvedAt(),
	}, nil
}

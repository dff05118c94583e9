package usecases

import (
	"context"
	"time"

	"ddportal/internal/domain/client"
	"ddportal/internal/domain/shared/events"
	"ddportal/internal/domain/ticket"
	vo "ddportal/internal/domain/ticket/valueobjects"
	"ddportal/internal/shared/authorization"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type CreateTicketCommand struct {
	ClientID    uint
	ProjectID   *uint
	Title       string
	Description string
	Type        string
	Priority    string
	ActorID     uint
	ActorRole   authorization.UserRole
	// ActorClientID is the tenant of a client-role caller, zero for admins.
	ActorClientID uint
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo      ticket.Repository
	clientRepo      client.Repository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	clientRepo client.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:      ticketRepo,
		clientRepo:      clientRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "actor_id", cmd.ActorID)

	// Client callers always file tickets under their own tenant.
	if cmd.ActorRole.IsClient() {
		cmd.ClientID = cmd.ActorClientID
	}

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	owner, err := uc.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to load client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewNotFoundError("client not found")
	}

	newTicket, err := ticket.NewTicket(
		owner.ID(),
		cmd.ProjectID,
		cmd.Title,
		cmd.Description,
		vo.TicketType(cmd.Type),
		vo.Priority(cmd.Priority),
		cmd.ActorID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	if err := uc.eventDispatcher.Publish(ticket.NewTicketCreatedEvent(newTicket)); err != nil {
		uc.logger.Warnw("failed to dispatch ticket created event", "error", err)
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "client_id", newTicket.ClientID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.ClientID == 0 {
		return errors.NewValidationError("client ID is required")
	}

	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}

	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}

	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}

	if !vo.TicketType(cmd.Type).IsValid() {
		return errors.NewValidationError("invalid ticket type")
	}

	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	return nil
}

package usecases

import (
	"context"
	"time"

	"ddportal/internal/domain/shared/events"
	"ddportal/internal/domain/ticket"
	"ddportal/internal/shared/authorization"
	"ddportal/internal/shared/db"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID      uint
	Content       string
	IsInternal    bool
	ActorID       uint
	ActorRole     authorization.UserRole
	ActorClientID uint
}

type AddCommentResult struct {
	CommentID uint
	// StatusChanged reports the waiting_on_client auto transition.
	StatusChanged bool
	TicketStatus  string
	CreatedAt     time.Time
}

type AddCommentUseCase struct {
	ticketRepo      ticket.Repository
	txMgr           db.TxManager
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	txMgr db.TxManager,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:      ticketRepo,
		txMgr:           txMgr,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	if cmd.IsInternal && !cmd.ActorRole.IsAdmin() {
		uc.logger.Warnw("client attempted internal comment", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)
		return nil, errors.NewForbiddenError("only team members can create internal comments")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !authorization.CanAccessClientResource(cmd.ActorRole, cmd.ActorClientID, t.ClientID()) {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.ActorID, cmd.Content, cmd.IsInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	statusChanged, err := t.AddComment(comment, cmd.ActorRole.IsClient())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Comment insert and the possible status flip land together or not at all.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.SaveComment(txCtx, comment); err != nil {
			uc.logger.Errorw("failed to save comment", "error", err)
			return err
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "error", err)
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, errors.NewInternalError("failed to save comment")
	}

	if err := uc.eventDispatcher.Publish(ticket.NewTicketCommentAddedEvent(t, comment, statusChanged)); err != nil {
		uc.logger.Warnw("failed to dispatch comment added event", "error", err)
	}

	uc.logger.Infow("comment added",
		"comment_id", comment.ID(),
		"ticket_id", cmd.TicketID,
		"status_changed", statusChanged)

	return &AddCommentResult{
		CommentID:     comment.ID(),
		StatusChanged: statusChanged,
		TicketStatus:  t.Status().String(),
		CreatedAt:     comment.CreatedAt(),
	}, nil
}

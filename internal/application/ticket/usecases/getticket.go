package usecases

import (
	"context"

	"ddportal/internal/application/ticket/dto"
	"ddportal/internal/domain/ticket"
	"ddportal/internal/shared/authorization"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
	"ddportal/internal/shared/markdown"
)

type GetTicketQuery struct {
	TicketID      uint
	ActorID       uint
	ActorRole     authorization.UserRole
	ActorClientID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	markdown   markdown.Service
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	markdown markdown.Service,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		markdown:   markdown,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !authorization.CanAccessClientResource(query.ActorRole, query.ActorClientID, t.ClientID()) {
		uc.logger.Warnw("cross-tenant ticket access denied",
			"ticket_id", query.TicketID,
			"actor_client_id", query.ActorClientID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	comments, err := uc.ticketRepo.GetCommentsByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load comments", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load comments")
	}

	result := dto.ToTicketDTO(t, comments, query.ActorRole.IsAdmin())

	if html, err := uc.markdown.ToHTMLSanitized(t.Description()); err == nil {
		result.DescriptionHTML = html
	} else {
		uc.logger.Warnw("failed to render ticket description", "ticket_id", t.ID(), "error", err)
	}

	for i := range result.Comments {
		if html, err := uc.markdown.ToHTMLSanitized(result.Comments[i].Content); err == nil {
			result.Comments[i].ContentHTML = html
		}
	}

	return result, nil
}

package usecases

import (
	"context"

	"ddportal/internal/application/ticket/dto"
	"ddportal/internal/domain/ticket"
	vo "ddportal/internal/domain/ticket/valueobjects"
	"ddportal/internal/shared/authorization"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
	"ddportal/internal/shared/utils"
)

type ListTicketsQuery struct {
	Status        string
	Priority      string
	Type          string
	ClientID      *uint
	ProjectID     *uint
	AssignedTo    *uint
	CreatedBy     *uint
	Page          int
	PageSize      int
	SortBy        string
	SortOrder     string
	ActorRole     authorization.UserRole
	ActorClientID uint
}

type ListTicketsResult struct {
	Tickets  []dto.TicketListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := ticket.Filter{
		ClientID:   query.ClientID,
		ProjectID:  query.ProjectID,
		AssignedTo: query.AssignedTo,
		CreatedBy:  query.CreatedBy,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}

	// Client callers only ever see their own tenant.
	if query.ActorRole.IsClient() {
		clientID := query.ActorClientID
		filter.ClientID = &clientID
	}

	if query.Status != "" {
		status := vo.TicketStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid ticket status filter")
		}
		filter.Status = &status
	}

	if query.Priority != "" {
		priority := vo.Priority(query.Priority)
		if !priority.IsValid() {
			return nil, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = &priority
	}

	if query.Type != "" {
		ticketType := vo.TicketType(query.Type)
		if !ticketType.IsValid() {
			return nil, errors.NewValidationError("invalid ticket type filter")
		}
		filter.Type = &ticketType
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketListItemDTO(t))
	}

	return &ListTicketsResult{
		Tickets:  items,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

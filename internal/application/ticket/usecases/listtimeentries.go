package usecases

import (
	"context"

	"ddportal/internal/application/ticket/dto"
	"ddportal/internal/domain/ticket"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type ListTimeEntriesQuery struct {
	TicketID uint
	ActorID  uint
}

type ListTimeEntriesUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTimeEntriesUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTimeEntriesUseCase {
	return &ListTimeEntriesUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTimeEntriesUseCase) Execute(ctx context.Context, query ListTimeEntriesQuery) ([]dto.TimeEntryDTO, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, query.TicketID); err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	entries, err := uc.ticketRepo.GetTimeEntriesByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load time entries", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load time entries")
	}

	result := make([]dto.TimeEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, dto.ToTimeEntryDTO(entry))
	}
	return result, nil
}

package usecases

import (
	"context"

	"ddportal/internal/application/client/dto"
	"ddportal/internal/domain/client"
	vo "ddportal/internal/domain/client/valueobjects"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
	"ddportal/internal/shared/utils"
)

type ListClientsQuery struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}

type ListClientsResult struct {
	Clients  []dto.ClientListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListClientsUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewListClientsUseCase(clientRepo client.Repository, logger logger.Interface) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, query ListClientsQuery) (*ListClientsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := client.Filter{
		Search:   query.Search,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if query.Status != "" {
		status := vo.Status(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid client status filter")
		}
		filter.Status = &status
	}

	clients, total, err := uc.clientRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, errors.NewInternalError("failed to list clients")
	}

	items := make([]dto.ClientListItemDTO, 0, len(clients))
	for _, c := range clients {
		items = append(items, dto.ToClientListItemDTO(c))
	}

	return &ListClientsResult{
		Clients:  items,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

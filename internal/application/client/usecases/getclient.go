package usecases

import (
	"context"

	"ddportal/internal/application/client/dto"
	"ddportal/internal/domain/client"
	"ddportal/internal/shared/authorization"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type GetClientQuery struct {
	ClientID      uint
	ActorID       uint
	ActorRole     authorization.UserRole
	ActorClientID uint
}

type GetClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewGetClientUseCase(clientRepo client.Repository, logger logger.Interface) *GetClientUseCase {
	return &GetClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, query GetClientQuery) (*dto.ClientDTO, error) {
	c, err := uc.clientRepo.GetByID(ctx, query.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to load client", "client_id", query.ClientID, "error", err)
		return nil, errors.NewNotFoundError("client not found")
	}

	if !authorization.CanAccessClientResource(query.ActorRole, query.ActorClientID, c.ID()) {
		uc.logger.Warnw("cross-tenant client access denied",
			"client_id", query.ClientID,
			"actor_client_id", query.ActorClientID)
		return nil, errors.NewNotFoundError("client not found")
	}

	return dto.ToClientDTO(c), nil
}

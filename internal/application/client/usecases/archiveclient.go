package usecases

import (
	"context"

	"ddportal/internal/domain/client"
	vo "ddportal/internal/domain/client/valueobjects"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type ArchiveClientCommand struct {
	ClientID uint
	ActorID  uint
}

// ArchiveClientUseCase marks a client archived. The record and its tickets
// and projects stay in place for reporting; archived clients cannot sign in.
type ArchiveClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewArchiveClientUseCase(clientRepo client.Repository, logger logger.Interface) *ArchiveClientUseCase {
	return &ArchiveClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ArchiveClientUseCase) Execute(ctx context.Context, cmd ArchiveClientCommand) error {
	uc.logger.Infow("executing archive client use case", "client_id", cmd.ClientID, "actor_id", cmd.ActorID)

	c, err := uc.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to load client", "client_id", cmd.ClientID, "error", err)
		return errors.NewNotFoundError("client not found")
	}

	if c.Status().IsArchived() {
		return errors.NewConflictError("client is already archived")
	}

	if err := c.ChangeStatus(vo.StatusArchived); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to archive client", "client_id", cmd.ClientID, "error", err)
		return errors.NewInternalError("failed to archive client")
	}

	uc.logger.Infow("client archived", "client_id", cmd.ClientID)
	return nil
}

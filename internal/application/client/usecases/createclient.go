package usecases

import (
	"context"
	"time"

	"ddportal/internal/domain/client"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type CreateClientCommand struct {
	CompanyName  string
	ContactEmail string
	// SupportMinutesPerMonth is the monthly support allocation in minutes.
	SupportMinutesPerMonth int
	BillingCycleStart      time.Time
	ActorID                uint
}

type CreateClientResult struct {
	ClientID  uint
	Status    string
	CreatedAt time.Time
}

type CreateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewCreateClientUseCase(clientRepo client.Repository, logger logger.Interface) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, cmd CreateClientCommand) (*CreateClientResult, error) {
	uc.logger.Infow("executing create client use case", "company_name", cmd.CompanyName, "actor_id", cmd.ActorID)

	newClient, err := client.NewClient(cmd.CompanyName, cmd.ContactEmail, cmd.SupportMinutesPerMonth, cmd.BillingCycleStart)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Save(ctx, newClient); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a client with this contact email already exists")
		}
		uc.logger.Errorw("failed to save client", "error", err)
		return nil, errors.NewInternalError("failed to create client")
	}

	uc.logger.Infow("client created", "client_id", newClient.ID(), "company_name", newClient.CompanyName())

	return &CreateClientResult{
		ClientID:  newClient.ID(),
		Status:    newClient.Status().String(),
		CreatedAt: newClient.CreatedAt(),
	}, nil
}

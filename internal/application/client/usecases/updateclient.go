package usecases

import (
	"context"
	"time"

	"ddportal/internal/domain/client"
	vo "ddportal/internal/domain/client/valueobjects"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type UpdateClientCommand struct {
	ClientID     uint
	CompanyName  string
	ContactEmail string
	Status       string
	// SupportMinutesPerMonth, when set, replaces the monthly allocation.
	// Changing it does not touch the usage counter.
	SupportMinutesPerMonth *int
	ActorID                uint
}

type UpdateClientResult struct {
	ClientID  uint
	Status    string
	UpdatedAt time.Time
}

type UpdateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewUpdateClientUseCase(clientRepo client.Repository, logger logger.Interface) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, cmd UpdateClientCommand) (*UpdateClientResult, error) {
	uc.logger.Infow("executing update client use case", "client_id", cmd.ClientID, "actor_id", cmd.ActorID)

	c, err := uc.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to load client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewNotFoundError("client not found")
	}

	if cmd.CompanyName != "" || cmd.ContactEmail != "" {
		companyName := cmd.CompanyName
		if companyName == "" {
			companyName = c.CompanyName()
		}
		contactEmail := cmd.ContactEmail
		if contactEmail == "" {
			contactEmail = c.ContactEmail()
		}
		if err := c.UpdateProfile(companyName, contactEmail); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Status != "" {
		status := vo.Status(cmd.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid client status")
		}
		if err := c.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.SupportMinutesPerMonth != nil {
		if err := c.SetSupportAllocation(*cmd.SupportMinutesPerMonth); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.clientRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to update client")
	}

	return &UpdateClientResult{
		ClientID:  c.ID(),
		Status:    c.Status().String(),
		UpdatedAt: c.UpdatedAt(),
	}, nil
}

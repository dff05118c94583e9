package usecases

import (
	"context"
	"time"

	"ddportal/internal/domain/client"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type ResetSupportCycleCommand struct {
	ClientID uint
	// CycleStart marks the beginning of the new billing cycle. Zero means now.
	CycleStart time.Time
	ActorID    uint
}

type ResetSupportCycleResult struct {
	ClientID                uint
	SupportMinutesUsed      int
	RemainingSupportMinutes int
	CycleStart              time.Time
}

// ResetSupportCycleUseCase zeroes a client's monthly usage counter at the
// start of a new billing cycle. Time entries from the previous cycle are
// untouched; only the counter resets.
type ResetSupportCycleUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewResetSupportCycleUseCase(clientRepo client.Repository, logger logger.Interface) *ResetSupportCycleUseCase {
	return &ResetSupportCycleUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ResetSupportCycleUseCase) Execute(ctx context.Context, cmd ResetSupportCycleCommand) (*ResetSupportCycleResult, error) {
	uc.logger.Infow("executing reset support cycle use case", "client_id", cmd.ClientID, "actor_id", cmd.ActorID)

	c, err := uc.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to load client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewNotFoundError("client not found")
	}

	c.ResetSupportCycle(cmd.CycleStart)

	if err := uc.clientRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to reset support cycle", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to reset support cycle")
	}

	uc.logger.Infow("support cycle reset",
		"client_id", c.ID(),
		"cycle_start", c.SupportBillingCycleStart())

	return &ResetSupportCycleResult{
		ClientID:                c.ID(),
		SupportMinutesUsed:      c.HoursUsedThisMonth(),
		RemainingSupportMinutes: c.RemainingSupportMinutes(),
		CycleStart:              c.SupportBillingCycleStart(),
	}, nil
}

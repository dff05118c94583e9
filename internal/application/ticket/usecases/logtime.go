package usecases

import (
	"context"
	"time"

	"ddportal/internal/domain/client"
	"ddportal/internal/domain/ticket"
	"ddportal/internal/shared/constants"
	"ddportal/internal/shared/db"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type LogTimeCommand struct {
	TicketID                 uint
	Minutes                  int
	Description              string
	CountTowardsSupportHours bool
	ActorID                  uint
}

type LogTimeResult struct {
	EntryID          uint
	TicketID         uint
	Minutes          int
	TimeSpentMinutes int
	LoggedAt         time.Time
}

// LogTimeUseCase records work against a ticket. Inside one transaction the
// entry is inserted, the ticket's cached total is bumped, and, when the entry
// counts towards support hours, the client's monthly usage counter is bumped
// too. The usage counter is not capped: going over allocation shows up as a
// negative remaining balance, never as a rejected entry.
type LogTimeUseCase struct {
	ticketRepo ticket.Repository
	clientRepo client.Repository
	txMgr      db.TxManager
	logger     logger.Interface
}

func NewLogTimeUseCase(
	ticketRepo ticket.Repository,
	clientRepo client.Repository,
	txMgr db.TxManager,
	logger logger.Interface,
) *LogTimeUseCase {
	return &LogTimeUseCase{
		ticketRepo: ticketRepo,
		clientRepo: clientRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *LogTimeUseCase) Execute(ctx context.Context, cmd LogTimeCommand) (*LogTimeResult, error) {
	uc.logger.Infow("executing log time use case",
		"ticket_id", cmd.TicketID,
		"minutes", cmd.Minutes,
		"actor_id", cmd.ActorID)

	if cmd.Minutes < constants.MinTimeEntryMinutes || cmd.Minutes > constants.MaxTimeEntryMinutes {
		return nil, errors.NewValidationError("minutes must be between 1 and 1440")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	entry, err := ticket.NewTimeEntry(cmd.TicketID, cmd.ActorID, cmd.Minutes, cmd.Description, cmd.CountTowardsSupportHours)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.SaveTimeEntry(txCtx, entry); err != nil {
			uc.logger.Errorw("failed to save time entry", "error", err)
			return err
		}
		if err := uc.ticketRepo.AddTimeSpent(txCtx, t.ID(), entry.Minutes()); err != nil {
			uc.logger.Errorw("failed to bump ticket time spent", "error", err)
			return err
		}
		if entry.CountTowardsSupportHours() {
			if err := uc.clientRepo.AddSupportMinutesUsed(txCtx, t.ClientID(), entry.Minutes()); err != nil {
				uc.logger.Errorw("failed to bump client support usage", "error", err)
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, errors.NewInternalError("failed to log time")
	}

	uc.logger.Infow("time logged",
		"entry_id", entry.ID(),
		"ticket_id", t.ID(),
		"minutes", entry.Minutes(),
		"counted", entry.CountTowardsSupportHours())

	return &LogTimeResult{
		EntryID:          entry.ID(),
		TicketID:         t.ID(),
		Minutes:          entry.Minutes(),
		TimeSpentMinutes: t.TimeSpentMinutes() + entry.Minutes(),
		LoggedAt:         entry.LoggedAt(),
	}, nil
}

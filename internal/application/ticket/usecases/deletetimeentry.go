package usecases

import (
	"context"

	"ddportal/internal/domain/client"
	"ddportal/internal/domain/ticket"
	"ddportal/internal/shared/db"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type DeleteTimeEntryCommand struct {
	EntryID uint
	ActorID uint
}

// DeleteTimeEntryUseCase removes a time entry and backs its minutes out of
// the counters. The ticket total moves by the full delta; the client usage
// counter is floored at zero, so deleting an entry that straddles a cycle
// reset never drives usage negative.
type DeleteTimeEntryUseCase struct {
	ticketRepo ticket.Repository
	clientRepo client.Repository
	txMgr      db.TxManager
	logger     logger.Interface
}

func NewDeleteTimeEntryUseCase(
	ticketRepo ticket.Repository,
	clientRepo client.Repository,
	txMgr db.TxManager,
	logger logger.Interface,
) *DeleteTimeEntryUseCase {
	return &DeleteTimeEntryUseCase{
		ticketRepo: ticketRepo,
		clientRepo: clientRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *DeleteTimeEntryUseCase) Execute(ctx context.Context, cmd DeleteTimeEntryCommand) error {
	uc.logger.Infow("executing delete time entry use case", "entry_id", cmd.EntryID, "actor_id", cmd.ActorID)

	entry, err := uc.ticketRepo.GetTimeEntryByID(ctx, cmd.EntryID)
	if err != nil {
		uc.logger.Errorw("failed to load time entry", "entry_id", cmd.EntryID, "error", err)
		return errors.NewNotFoundError("time entry not found")
	}

	t, err := uc.ticketRepo.GetByID(ctx, entry.TicketID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", entry.TicketID(), "error", err)
		return errors.NewNotFoundError("ticket not found")
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.SoftDeleteTimeEntry(txCtx, entry.ID()); err != nil {
			uc.logger.Errorw("failed to delete time entry", "error", err)
			return err
		}
		if err := uc.ticketRepo.AddTimeSpent(txCtx, t.ID(), -entry.Minutes()); err != nil {
			uc.logger.Errorw("failed to adjust ticket time spent", "error", err)
			return err
		}
		if entry.CountTowardsSupportHours() {
			if err := uc.clientRepo.ReleaseSupportMinutesUsed(txCtx, t.ClientID(), entry.Minutes()); err != nil {
				uc.logger.Errorw("failed to release client support usage", "error", err)
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return errors.NewInternalError("failed to delete time entry")
	}

	uc.logger.Infow("time entry deleted", "entry_id", entry.ID(), "minutes", entry.Minutes())
	return nil
}

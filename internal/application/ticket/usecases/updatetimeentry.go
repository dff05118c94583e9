package usecases

import (
	"context"

	"ddportal/internal/domain/client"
	"ddportal/internal/domain/ticket"
	"ddportal/internal/shared/db"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type UpdateTimeEntryCommand struct {
	EntryID     uint
	Minutes     int
	Description string
	ActorID     uint
}

type UpdateTimeEntryResult struct {
	EntryID      uint
	Minutes      int
	DeltaMinutes int
}

// UpdateTimeEntryUseCase edits a time entry. Counters move by the delta
// between the new and old minutes, so editing 60 down to 45 releases 15
// minutes from the ticket total and, for counted entries, from the client's
// usage. The counted flag itself cannot be edited.
type UpdateTimeEntryUseCase struct {
	ticketRepo ticket.Repository
	clientRepo client.Repository
	txMgr      db.TxManager
	logger     logger.Interface
}

func NewUpdateTimeEntryUseCase(
	ticketRepo ticket.Repository,
	clientRepo client.Repository,
	txMgr db.TxManager,
	logger logger.Interface,
) *UpdateTimeEntryUseCase {
	return &UpdateTimeEntryUseCase{
		ticketRepo: ticketRepo,
		clientRepo: clientRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *UpdateTimeEntryUseCase) Execute(ctx context.Context, cmd UpdateTimeEntryCommand) (*UpdateTimeEntryResult, error) {
	uc.logger.Infow("executing update time entry use case", "entry_id", cmd.EntryID, "actor_id", cmd.ActorID)

	entry, err := uc.ticketRepo.GetTimeEntryByID(ctx, cmd.EntryID)
	if err != nil {
		uc.logger.Errorw("failed to load time entry", "entry_id", cmd.EntryID, "error", err)
		return nil, errors.NewNotFoundError("time entry not found")
	}

	t, err := uc.ticketRepo.GetByID(ctx, entry.TicketID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", entry.TicketID(), "error", err)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	oldMinutes := entry.Minutes()
	if err := entry.UpdateDetails(cmd.Minutes, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	delta := entry.Minutes() - oldMinutes

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.UpdateTimeEntry(txCtx, entry); err != nil {
			uc.logger.Errorw("failed to update time entry", "error", err)
			return err
		}
		if delta == 0 {
			return nil
		}
		if err := uc.ticketRepo.AddTimeSpent(txCtx, t.ID(), delta); err != nil {
			uc.logger.Errorw("failed to adjust ticket time spent", "error", err)
			return err
		}
		if entry.CountTowardsSupportHours() {
			if err := uc.clientRepo.AddSupportMinutesUsed(txCtx, t.ClientID(), delta); err != nil {
				uc.logger.Errorw("failed to adjust client support usage", "error", err)
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, errors.NewInternalError("failed to update time entry")
	}

	uc.logger.Infow("time entry updated", "entry_id", entry.ID(), "delta_minutes", delta)

	return &UpdateTimeEntryResult{
		EntryID:      entry.ID(),
		Minutes:      entry.Minutes(),
		DeltaMinutes: delta,
	}, nil
}

package usecases

import (
	"context"
	"time"

	"ddportal/internal/domain/project"
	vo "ddportal/internal/domain/project/valueobjects"
	"ddportal/internal/domain/shared/events"
	"ddportal/internal/shared/db"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type SetPhaseStatusCommand struct {
	PhaseID uint
	Status  string
	Notes   string
	ActorID uint
}

type SetPhaseStatusResult struct {
	PhaseID        uint
	Status         string
	StartedAt      *time.Time
	CompletedAt    *time.Time
	CurrentPhaseID *uint
}

// SetPhaseStatusUseCase moves a phase between statuses. Entering in_progress
// always points the project's current-phase marker at this phase, even when
// another phase is still active: the most recently started phase wins.
// Leaving in_progress does not touch the marker; only phase deletion
// clears it.
type SetPhaseStatusUseCase struct {
	projectRepo     project.Repository
	txMgr           db.TxManager
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewSetPhaseStatusUseCase(
	projectRepo project.Repository,
	txMgr db.TxManager,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *SetPhaseStatusUseCase {
	return &SetPhaseStatusUseCase{
		projectRepo:     projectRepo,
		txMgr:           txMgr,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *SetPhaseStatusUseCase) Execute(ctx context.Context, cmd SetPhaseStatusCommand) (*SetPhaseStatusResult, error) {
	uc.logger.Infow("executing set phase status use case",
		"phase_id", cmd.PhaseID,
		"status", cmd.Status,
		"actor_id", cmd.ActorID)

	status := vo.PhaseStatus(cmd.Status)
	if !status.IsValid() {
		return nil, errors.NewValidationError("invalid phase status")
	}

	phase, err := uc.projectRepo.GetPhaseByID(ctx, cmd.PhaseID)
	if err != nil {
		uc.logger.Errorw("failed to load phase", "phase_id", cmd.PhaseID, "error", err)
		return nil, errors.NewNotFoundError("phase not found")
	}

	p, err := uc.projectRepo.GetByID(ctx, phase.ProjectID())
	if err != nil {
		uc.logger.Errorw("failed to load project", "project_id", phase.ProjectID(), "error", err)
		return nil, errors.NewNotFoundError("project not found")
	}

	oldStatus := phase.Status()
	if err := phase.SetStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Notes != "" {
		phase.UpdateNotes(cmd.Notes)
	}

	projectChanged := false
	if status.IsInProgress() {
		p.SetCurrentPhase(phase.ID())
		projectChanged = true
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.projectRepo.UpdatePhase(txCtx, phase); err != nil {
			uc.logger.Errorw("failed to update phase", "error", err)
			return err
		}
		if projectChanged {
			if err := uc.projectRepo.Update(txCtx, p); err != nil {
				uc.logger.Errorw("failed to update project", "error", err)
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, errors.NewInternalError("failed to update phase")
	}

	if oldStatus != phase.Status() {
		event := project.NewPhaseStatusChangedEvent(p, phase, oldStatus.String())
		if err := uc.eventDispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to dispatch phase status changed event", "error", err)
		}
	}

	uc.logger.Infow("phase status updated",
		"phase_id", phase.ID(),
		"old_status", oldStatus.String(),
		"new_status", phase.Status().String())

	return &SetPhaseStatusResult{
		PhaseID:        phase.ID(),
		Status:         phase.Status().String(),
		StartedAt:      phase.StartedAt(),
		CompletedAt:    phase.CompletedAt(),
		CurrentPhaseID: p.CurrentPhaseID(),
	}, nil
}

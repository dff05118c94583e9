package usecases

import (
	"context"

	"ddportal/internal/domain/project"
	"ddportal/internal/shared/db"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type DeletePhaseCommand struct {
	PhaseID uint
	ActorID uint
}

// DeletePhaseUseCase removes a phase outright. If the project's current-phase
// marker points at the deleted phase it is cleared in the same transaction.
type DeletePhaseUseCase struct {
	projectRepo project.Repository
	txMgr       db.TxManager
	logger      logger.Interface
}

func NewDeletePhaseUseCase(
	projectRepo project.Repository,
	txMgr db.TxManager,
	logger logger.Interface,
) *DeletePhaseUseCase {
	return &DeletePhaseUseCase{
		projectRepo: projectRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *DeletePhaseUseCase) Execute(ctx context.Context, cmd DeletePhaseCommand) error {
	uc.logger.Infow("executing delete phase use case", "phase_id", cmd.PhaseID, "actor_id", cmd.ActorID)

	phase, err := uc.projectRepo.GetPhaseByID(ctx, cmd.PhaseID)
	if err != nil {
		uc.logger.Errorw("failed to load phase", "phase_id", cmd.PhaseID, "error", err)
		return errors.NewNotFoundError("phase not found")
	}

	p, err := uc.projectRepo.GetByID(ctx, phase.ProjectID())
	if err != nil {
		uc.logger.Errorw("failed to load project", "project_id", phase.ProjectID(), "error", err)
		return errors.NewNotFoundError("project not found")
	}

	cleared := p.ClearCurrentPhaseIf(phase.ID())

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.projectRepo.DeletePhase(txCtx, phase.ID()); err != nil {
			uc.logger.Errorw("failed to delete phase", "error", err)
			return err
		}
		if cleared {
			if err := uc.projectRepo.Update(txCtx, p); err != nil {
				uc.logger.Errorw("failed to update project", "error", err)
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return errors.NewInternalError("failed to delete phase")
	}

	uc.logger.Infow("phase deleted", "phase_id", cmd.PhaseID, "project_id", p.ID())
	return nil
}

package usecases

import (
	"context"

	"ddportal/internal/domain/project"
	"ddportal/internal/shared/db"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type ReorderPhasesCommand struct {
	ProjectID uint
	// PhaseIDs lists every phase of the project in the desired display order.
	PhaseIDs []uint
	ActorID  uint
}

type ReorderPhasesUseCase struct {
	projectRepo project.Repository
	txMgr       db.TxManager
	logger      logger.Interface
}

func NewReorderPhasesUseCase(
	projectRepo project.Repository,
	txMgr db.TxManager,
	logger logger.Interface,
) *ReorderPhasesUseCase {
	return &ReorderPhasesUseCase{
		projectRepo: projectRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *ReorderPhasesUseCase) Execute(ctx context.Context, cmd ReorderPhasesCommand) error {
	uc.logger.Infow("executing reorder phases use case", "project_id", cmd.ProjectID, "actor_id", cmd.ActorID)

	if len(cmd.PhaseIDs) == 0 {
		return errors.NewValidationError("phase IDs are required")
	}

	phases, err := uc.projectRepo.GetPhasesByProjectID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load phases", "project_id", cmd.ProjectID, "error", err)
		return errors.NewNotFoundError("project not found")
	}

	byID := make(map[uint]*project.Phase, len(phases))
	for _, phase := range phases {
		byID[phase.ID()] = phase
	}

	if len(cmd.PhaseIDs) != len(phases) {
		return errors.NewValidationError("phase list must cover every phase of the project exactly once")
	}

	ordered := make([]*project.Phase, 0, len(cmd.PhaseIDs))
	seen := make(map[uint]bool, len(cmd.PhaseIDs))
	for _, id := range cmd.PhaseIDs {
		phase, ok := byID[id]
		if !ok || seen[id] {
			return errors.NewValidationError("phase list must cover every phase of the project exactly once")
		}
		seen[id] = true
		ordered = append(ordered, phase)
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		for i, phase := range ordered {
			if phase.OrderIndex() == i {
				continue
			}
			if err := phase.SetOrderIndex(i); err != nil {
				return err
			}
			if err := uc.projectRepo.UpdatePhase(txCtx, phase); err != nil {
				uc.logger.Errorw("failed to update phase order", "phase_id", phase.ID(), "error", err)
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return errors.NewInternalError("failed to reorder phases")
	}

	uc.logger.Infow("phases reordered", "project_id", cmd.ProjectID, "count", len(ordered))
	return nil
}

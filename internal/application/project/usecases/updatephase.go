package usecases

import (
	"context"
	"time"

	"ddportal/internal/domain/project"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type UpdatePhaseCommand struct {
	PhaseID     uint
	Name        string
	Description string
	Notes       *string
	ActorID     uint
}

type UpdatePhaseResult struct {
	PhaseID   uint
	UpdatedAt time.Time
}

type UpdatePhaseUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewUpdatePhaseUseCase(projectRepo project.Repository, logger logger.Interface) *UpdatePhaseUseCase {
	return &UpdatePhaseUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *UpdatePhaseUseCase) Execute(ctx context.Context, cmd UpdatePhaseCommand) (*UpdatePhaseResult, error) {
	uc.logger.Infow("executing update phase use case", "phase_id", cmd.PhaseID, "actor_id", cmd.ActorID)

	phase, err := uc.projectRepo.GetPhaseByID(ctx, cmd.PhaseID)
	if err != nil {
		uc.logger.Errorw("failed to load phase", "phase_id", cmd.PhaseID, "error", err)
		return nil, errors.NewNotFoundError("phase not found")
	}

	if cmd.Name != "" {
		if err := phase.UpdateDetails(cmd.Name, cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Notes != nil {
		phase.UpdateNotes(*cmd.Notes)
	}

	if err := uc.projectRepo.UpdatePhase(ctx, phase); err != nil {
		uc.logger.Errorw("failed to update phase", "phase_id", cmd.PhaseID, "error", err)
		return nil, errors.NewInternalError("failed to update phase")
	}

	return &UpdatePhaseResult{
		PhaseID:   phase.ID(),
		UpdatedAt: phase.UpdatedAt(),
	}, nil
}

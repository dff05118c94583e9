package usecases

import (
	"context"

	"ddportal/internal/domain/project"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type CreatePhaseCommand struct {
	ProjectID   uint
	Name        string
	Description string
	// OrderIndex of -1 appends the phase after the current last one.
	OrderIndex int
	ActorID    uint
}

type CreatePhaseResult struct {
	PhaseID    uint
	Status     string
	OrderIndex int
}

type CreatePhaseUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewCreatePhaseUseCase(projectRepo project.Repository, logger logger.Interface) *CreatePhaseUseCase {
	return &CreatePhaseUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *CreatePhaseUseCase) Execute(ctx context.Context, cmd CreatePhaseCommand) (*CreatePhaseResult, error) {
	uc.logger.Infow("executing create phase use case", "project_id", cmd.ProjectID, "name", cmd.Name)

	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "project_id", cmd.ProjectID, "error", err)
		return nil, errors.NewNotFoundError("project not found")
	}

	orderIndex := cmd.OrderIndex
	if orderIndex < 0 {
		phases, err := uc.projectRepo.GetPhasesByProjectID(ctx, p.ID())
		if err != nil {
			uc.logger.Errorw("failed to load phases", "project_id", p.ID(), "error", err)
			return nil, errors.NewInternalError("failed to load phases")
		}
		orderIndex = 0
		for _, existing := range phases {
			if existing.OrderIndex() >= orderIndex {
				orderIndex = existing.OrderIndex() + 1
			}
		}
	}

	phase, err := project.NewPhase(p.ID(), cmd.Name, cmd.Description, orderIndex)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.SavePhase(ctx, phase); err != nil {
		uc.logger.Errorw("failed to save phase", "error", err)
		return nil, errors.NewInternalError("failed to save phase")
	}

	uc.logger.Infow("phase created", "phase_id", phase.ID(), "project_id", p.ID())

	return &CreatePhaseResult{
		PhaseID:    phase.ID(),
		Status:     phase.Status().String(),
		OrderIndex: phase.OrderIndex(),
	}, nil
}

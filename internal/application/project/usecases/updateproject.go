package usecases

import (
	"context"
	"time"

	"ddportal/internal/domain/project"
	vo "ddportal/internal/domain/project/valueobjects"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type UpdateProjectCommand struct {
	ProjectID   uint
	Name        string
	Description string
	Status      string
	StartDate   *time.Time
	DueDate     *time.Time
	ActorID     uint
}

type UpdateProjectResult struct {
	ProjectID uint
	Status    string
	UpdatedAt time.Time
}

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewUpdateProjectUseCase(projectRepo project.Repository, logger logger.Interface) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, cmd UpdateProjectCommand) (*UpdateProjectResult, error) {
	uc.logger.Infow("executing update project use case", "project_id", cmd.ProjectID, "actor_id", cmd.ActorID)

	p, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "project_id", cmd.ProjectID, "error", err)
		return nil, errors.NewNotFoundError("project not found")
	}

	if cmd.Name != "" {
		if err := p.UpdateDetails(cmd.Name, cmd.Description, cmd.StartDate, cmd.DueDate); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Status != "" {
		status := vo.ProjectStatus(cmd.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid project status")
		}
		if err := p.SetStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update project", "project_id", cmd.ProjectID, "error", err)
		return nil, errors.NewInternalError("failed to update project")
	}

	return &UpdateProjectResult{
		ProjectID: p.ID(),
		Status:    p.Status().String(),
		UpdatedAt: p.UpdatedAt(),
	}, nil
}

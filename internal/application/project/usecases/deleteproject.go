package usecases

import (
	"context"

	"ddportal/internal/domain/project"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type DeleteProjectCommand struct {
	ProjectID uint
	ActorID   uint
}

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewDeleteProjectUseCase(projectRepo project.Repository, logger logger.Interface) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, cmd DeleteProjectCommand) error {
	uc.logger.Infow("executing delete project use case", "project_id", cmd.ProjectID, "actor_id", cmd.ActorID)

	if _, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID); err != nil {
		uc.logger.Errorw("failed to load project", "project_id", cmd.ProjectID, "error", err)
		return errors.NewNotFoundError("project not found")
	}

	if err := uc.projectRepo.SoftDelete(ctx, cmd.ProjectID); err != nil {
		uc.logger.Errorw("failed to delete project", "project_id", cmd.ProjectID, "error", err)
		return errors.NewInternalError("failed to delete project")
	}

	uc.logger.Infow("project deleted", "project_id", cmd.ProjectID)
	return nil
}

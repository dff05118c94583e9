package usecases

import (
	"context"

	"ddportal/internal/application/project/dto"
	"ddportal/internal/domain/project"
	"ddportal/internal/shared/authorization"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
	"ddportal/internal/shared/markdown"
)

type GetProjectQuery struct {
	ProjectID     uint
	ActorID       uint
	ActorRole     authorization.UserRole
	ActorClientID uint
}

type GetProjectUseCase struct {
	projectRepo project.Repository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewGetProjectUseCase(
	projectRepo project.Repository,
	markdown markdown.Service,
	logger logger.Interface,
) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
		markdown:    markdown,
		logger:      logger,
	}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, query GetProjectQuery) (*dto.ProjectDTO, error) {
	p, err := uc.projectRepo.GetByID(ctx, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "project_id", query.ProjectID, "error", err)
		return nil, errors.NewNotFoundError("project not found")
	}

	if !authorization.CanAccessClientResource(query.ActorRole, query.ActorClientID, p.ClientID()) {
		uc.logger.Warnw("cross-tenant project access denied",
			"project_id", query.ProjectID,
			"actor_client_id", query.ActorClientID)
		return nil, errors.NewNotFoundError("project not found")
	}

	phases, err := uc.projectRepo.GetPhasesByProjectID(ctx, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load phases", "project_id", query.ProjectID, "error", err)
		return nil, errors.NewInternalError("failed to load phases")
	}

	result := dto.ToProjectDTO(p, phases)
	for i := range result.Phases {
		if result.Phases[i].Notes == "" {
			continue
		}
		if html, err := uc.markdown.ToHTMLSanitized(result.Phases[i].Notes); err == nil {
			result.Phases[i].NotesHTML = html
		}
	}

	return result, nil
}

package usecases

import (
	"context"

	"ddportal/internal/application/project/dto"
	"ddportal/internal/domain/project"
	vo "ddportal/internal/domain/project/valueobjects"
	"ddportal/internal/shared/authorization"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
	"ddportal/internal/shared/utils"
)

type ListProjectsQuery struct {
	Status        string
	ClientID      *uint
	Search        string
	Page          int
	PageSize      int
	ActorRole     authorization.UserRole
	ActorClientID uint
}

type ListProjectsResult struct {
	Projects []dto.ProjectListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo project.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, query ListProjectsQuery) (*ListProjectsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := project.Filter{
		ClientID: query.ClientID,
		Search:   query.Search,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if query.ActorRole.IsClient() {
		clientID := query.ActorClientID
		filter.ClientID = &clientID
	}

	if query.Status != "" {
		status := vo.ProjectStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid project status filter")
		}
		filter.Status = &status
	}

	projects, total, err := uc.projectRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err)
		return nil, errors.NewInternalError("failed to list projects")
	}

	items := make([]dto.ProjectListItemDTO, 0, len(projects))
	for _, p := range projects {
		phases, err := uc.projectRepo.GetPhasesByProjectID(ctx, p.ID())
		if err != nil {
			uc.logger.Errorw("failed to load phases", "project_id", p.ID(), "error", err)
			return nil, errors.NewInternalError("failed to load phases")
		}
		items = append(items, dto.ToProjectListItemDTO(p, phases))
	}

	return &ListProjectsResult{
		Projects: items,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

package usecases

import (
	"context"

	"ddportal/internal/application/project/dto"
	"ddportal/internal/domain/project"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/logger"
)

type ListTemplatesUseCase struct {
	templateRepo project.TemplateRepository
	logger       logger.Interface
}

func NewListTemplatesUseCase(templateRepo project.TemplateRepository, logger logger.Interface) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{
		templateRepo: templateRepo,
		logger:       logger,
	}
}

func (uc *ListTemplatesUseCase) Execute(ctx context.Context) ([]dto.TemplateDTO, error) {
	templates, err := uc.templateRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list templates", "error", err)
		return nil, errors.NewInternalError("failed to list templates")
	}

	result := make([]dto.TemplateDTO, 0, len(templates))
	for _, template := range templates {
		result = append(result, dto.ToTemplateDTO(template))
	}
	return result, nil
}

package mappers

import (
	"encoding/json"
	"fmt"

	"ddportal/internal/domain/project"
	vo "ddportal/internal/domain/project/valueobjects"
	"ddportal/internal/infrastructure/persistence/models"
)

// ProjectMapper handles the conversion between project domain entities and persistence models.
type ProjectMapper interface {
	ToModel(p *project.Project) *models.ProjectModel
	ToDomain(model *models.ProjectModel) (*project.Project, error)

	PhaseToModel(phase *project.Phase) *models.PhaseModel
	PhaseToDomain(model *models.PhaseModel) (*project.Phase, error)

	TemplateToModel(t *project.PhaseTemplate) (*models.PhaseTemplateModel, error)
	TemplateToDomain(model *models.PhaseTemplateModel) (*project.PhaseTemplate, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:             p.ID(),
		ClientID:       p.ClientID(),
		Name:           p.Name(),
		Description:    p.Description(),
		Status:         p.Status().String(),
		CurrentPhaseID: p.CurrentPhaseID(),
		StartDate:      timePtrToMillis(p.StartDate()),
		DueDate:        timePtrToMillis(p.DueDate()),
		CreatedAt:      p.CreatedAt().UnixMilli(),
		UpdatedAt:      p.UpdatedAt().UnixMilli(),
	}
}

func (m *ProjectMapperImpl) ToDomain(model *models.ProjectModel) (*project.Project, error) {
	status, err := vo.NewProjectStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return project.ReconstructProject(
		model.ID,
		model.ClientID,
		model.Name,
		model.Description,
		status,
		model.CurrentPhaseID,
		millisPtrToTime(model.StartDate),
		millisPtrToTime(model.DueDate),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *ProjectMapperImpl) PhaseToModel(phase *project.Phase) *models.PhaseModel {
	return &models.PhaseModel{
		ID:          phase.ID(),
		ProjectID:   phase.ProjectID(),
		Name:        phase.Name(),
		Description: phase.Description(),
		Status:      phase.Status().String(),
		OrderIndex:  phase.OrderIndex(),
		Notes:       phase.Notes(),
		StartedAt:   timePtrToMillis(phase.StartedAt()),
		CompletedAt: timePtrToMillis(phase.CompletedAt()),
		CreatedAt:   phase.CreatedAt().UnixMilli(),
		UpdatedAt:   phase.UpdatedAt().UnixMilli(),
	}
}

func (m *ProjectMapperImpl) PhaseToDomain(model *models.PhaseModel) (*project.Phase, error) {
	status, err := vo.NewPhaseStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return project.ReconstructPhase(
		model.ID,
		model.ProjectID,
		model.Name,
		model.Description,
		status,
		model.OrderIndex,
		model.Notes,
		millisPtrToTime(model.StartedAt),
		millisPtrToTime(model.CompletedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *ProjectMapperImpl) TemplateToModel(t *project.PhaseTemplate) (*models.PhaseTemplateModel, error) {
	phasesJSON, err := json.Marshal(t.Phases())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal template phases: %w", err)
	}

	return &models.PhaseTemplateModel{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
		IsDefault:   t.IsDefault(),
		Phases:      string(phasesJSON),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *ProjectMapperImpl) TemplateToDomain(model *models.PhaseTemplateModel) (*project.PhaseTemplate, error) {
	var phases []project.TemplatePhase
	if model.Phases != "" {
		if err := json.Unmarshal([]byte(model.Phases), &phases); err != nil {
			return nil, fmt.Errorf("failed to unmarshal template phases (id=%d): %w", model.ID, err)
		}
	}

	return project.ReconstructPhaseTemplate(
		model.ID,
		model.Name,
		model.Description,
		model.IsDefault,
		phases,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

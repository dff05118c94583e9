package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ddportal/internal/domain/project"
	"ddportal/internal/infrastructure/persistence/mappers"
	"ddportal/internal/infrastructure/persistence/models"
	"ddportal/internal/shared/db"
)

type PhaseTemplateRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewPhaseTemplateRepository(db *gorm.DB) *PhaseTemplateRepository {
	return &PhaseTemplateRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *PhaseTemplateRepository) Save(ctx context.Context, template *project.PhaseTemplate) error {
	model, err := r.mapper.TemplateToModel(template)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if model.ID == 0 {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save template: %w", err)
		}
		return template.SetID(model.ID)
	}

	result := tx.
		Model(&models.PhaseTemplateModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "is_default", "phases", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update template: %w", result.Error)
	}

	return nil
}

func (r *PhaseTemplateRepository) GetByID(ctx context.Context, templateID uint) (*project.PhaseTemplate, error) {
	var model models.PhaseTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, templateID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("template not found")
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}

	return r.mapper.TemplateToDomain(&model)
}

func (r *PhaseTemplateRepository) List(ctx context.Context) ([]*project.PhaseTemplate, error) {
	var templateModels []models.PhaseTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("is_default DESC, name ASC").
		Find(&templateModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	templates := make([]*project.PhaseTemplate, len(templateModels))
	for i, model := range templateModels {
		t, err := r.mapper.TemplateToDomain(&model)
		if err != nil {
			return nil, err
		}
		templates[i] = t
	}

	return templates, nil
}

func (r *PhaseTemplateRepository) ClearDefault(ctx context.Context) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.PhaseTemplateModel{}).
		Where("is_default = ?", true).
		Update("is_default", false).Error; err != nil {
		return fmt.Errorf("failed to clear default template: %w", err)
	}

	return nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ddportal/internal/domain/project"
	"ddportal/internal/infrastructure/persistence/mappers"
	"ddportal/internal/infrastructure/persistence/models"
	"ddportal/internal/shared/db"
)

type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepository) Save(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	// current_phase_id is in the Select list so a cleared marker writes NULL.
	result := tx.
		Model(&models.ProjectModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "status", "current_phase_id",
			"start_date", "due_date", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}

	return nil
}

func (r *ProjectRepository) SoftDelete(ctx context.Context, projectID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	now := time.Now().UnixMilli()
	result := tx.
		Model(&models.ProjectModel{}).
		Where("id = ? AND deleted_at IS NULL", projectID).
		Update("deleted_at", now)
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("project not found")
	}

	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID uint) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.NotDeleted()).
		First(&model, projectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("project not found")
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepository) List(ctx context.Context, filter project.Filter) ([]*project.Project, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ProjectModel{}).Scopes(db.NotDeleted())

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var projectModels []models.ProjectModel
	if err := query.Find(&projectModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*project.Project, len(projectModels))
	for i, model := range projectModels {
		p, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		projects[i] = p
	}

	return projects, total, nil
}

func (r *ProjectRepository) SavePhase(ctx context.Context, phase *project.Phase) error {
	model := r.mapper.PhaseToModel(phase)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save phase: %w", err)
	}

	return phase.SetID(model.ID)
}

func (r *ProjectRepository) SavePhases(ctx context.Context, phases []*project.Phase) error {
	if len(phases) == 0 {
		return nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	for _, phase := range phases {
		model := r.mapper.PhaseToModel(phase)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save phase: %w", err)
		}
		if err := phase.SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *ProjectRepository) UpdatePhase(ctx context.Context, phase *project.Phase) error {
	model := r.mapper.PhaseToModel(phase)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PhaseModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "status", "order_index", "notes",
			"started_at", "completed_at", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update phase: %w", result.Error)
	}

	return nil
}

func (r *ProjectRepository) DeletePhase(ctx context.Context, phaseID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.PhaseModel{}, phaseID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete phase: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("phase not found")
	}

	return nil
}

func (r *ProjectRepository) GetPhaseByID(ctx context.Context, phaseID uint) (*project.Phase, error) {
	var model models.PhaseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, phaseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("phase not found")
		}
		return nil, fmt.Errorf("failed to find phase: %w", err)
	}

	return r.mapper.PhaseToDomain(&model)
}

func (r *ProjectRepository) GetPhasesByProjectID(ctx context.Context, projectID uint) ([]*project.Phase, error) {
	var phaseModels []models.PhaseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("project_id = ?", projectID).
		Order("order_index ASC").
		Find(&phaseModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load phases: %w", err)
	}

	phases := make([]*project.Phase, len(phaseModels))
	for i, model := range phaseModels {
		p, err := r.mapper.PhaseToDomain(&model)
		if err != nil {
			return nil, err
		}
		phases[i] = p
	}

	return phases, nil
}

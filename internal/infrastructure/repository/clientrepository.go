package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ddportal/internal/domain/client"
	"ddportal/internal/infrastructure/persistence/mappers"
	"ddportal/internal/infrastructure/persistence/models"
	"ddportal/internal/shared/db"
)

type ClientRepository struct {
	db     *gorm.DB
	mapper mappers.ClientMapper
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{
		db:     db,
		mapper: mappers.NewClientMapper(),
	}
}

func (r *ClientRepository) Save(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces zero values through; a reset cycle writes
	// support_minutes_used = 0.
	result := tx.
		Model(&models.ClientModel{}).
		Where("id = ?", model.ID).
		Select("company_name", "contact_email", "status",
			"support_minutes_per_month", "support_minutes_used",
			"support_billing_cycle_start", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update client: %w", result.Error)
	}

	return nil
}

func (r *ClientRepository) SoftDelete(ctx context.Context, clientID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	now := time.Now().UnixMilli()
	result := tx.
		Model(&models.ClientModel{}).
		Where("id = ? AND deleted_at IS NULL", clientID).
		Update("deleted_at", now)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("client not found")
	}

	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, clientID uint) (*client.Client, error) {
	var model models.ClientModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.NotDeleted()).
		First(&model, clientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("client not found")
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ClientRepository) List(ctx context.Context, filter client.Filter) ([]*client.Client, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ClientModel{}).Scopes(db.NotDeleted())

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("company_name LIKE ? OR contact_email LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	query = query.Order("company_name ASC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var clientModels []models.ClientModel
	if err := query.Find(&clientModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*client.Client, len(clientModels))
	for i, model := range clientModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		clients[i] = c
	}

	return clients, total, nil
}

// AddSupportMinutesUsed applies the delta as column arithmetic so concurrent
// time logging never loses an increment. Negative deltas pass through without
// a floor; entry edits may legitimately push the counter down.
func (r *ClientRepository) AddSupportMinutesUsed(ctx context.Context, clientID uint, deltaMinutes int) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ClientModel{}).
		Where("id = ? AND deleted_at IS NULL", clientID).
		UpdateColumn("support_minutes_used", gorm.Expr("support_minutes_used + ?", deltaMinutes))
	if result.Error != nil {
		return fmt.Errorf("failed to update support minutes: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("client not found")
	}

	return nil
}

// ReleaseSupportMinutesUsed subtracts minutes with a floor at zero.
func (r *ClientRepository) ReleaseSupportMinutesUsed(ctx context.Context, clientID uint, minutes int) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ClientModel{}).
		Where("id = ? AND deleted_at IS NULL", clientID).
		UpdateColumn("support_minutes_used", gorm.Expr("GREATEST(support_minutes_used - ?, 0)", minutes))
	if result.Error != nil {
		return fmt.Errorf("failed to release support minutes: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("client not found")
	}

	return nil
}

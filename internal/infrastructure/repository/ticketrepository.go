package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"ddportal/internal/domain/ticket"
	"ddportal/internal/infrastructure/persistence/mappers"
	"ddportal/internal/infrastructure/persistence/models"
	"ddportal/internal/shared/db"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":          true,
	"title":       true,
	"status":      true,
	"priority":    true,
	"type":        true,
	"client_id":   true,
	"created_by":  true,
	"assigned_to": true,
	"created_at":  true,
	"updated_at":  true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// time_spent_minutes is excluded: the cached counter is only moved through
	// AddTimeSpent so a stale aggregate cannot clobber concurrent logging.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "type", "priority", "status",
			"assigned_to", "assigned_at", "resolved_at", "resolved_by",
			"resolution", "linear_issue_id", "linear_issue_url", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) SoftDelete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	now := time.Now().UnixMilli()
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND deleted_at IS NULL", ticketID).
		Update("deleted_at", now)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket not found")
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.NotDeleted()).
		First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{}).Scopes(db.NotDeleted())

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.CreatedBy != nil {
		query = query.Where("created_by = ?", *filter.CreatedBy)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTicketOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *TicketRepository) SaveComment(ctx context.Context, comment *ticket.Comment) error {
	model := r.mapper.CommentToModel(comment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return comment.SetID(model.ID)
}

func (r *TicketRepository) GetCommentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	comments := make([]*ticket.Comment, len(commentModels))
	for i, model := range commentModels {
		c, err := r.mapper.CommentToDomain(&model)
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}

	return comments, nil
}

func (r *TicketRepository) SaveTimeEntry(ctx context.Context, entry *ticket.TimeEntry) error {
	model := r.mapper.TimeEntryToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save time entry: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *TicketRepository) UpdateTimeEntry(ctx context.Context, entry *ticket.TimeEntry) error {
	model := r.mapper.TimeEntryToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TimeEntryModel{}).
		Where("id = ?", model.ID).
		Select("minutes", "description", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update time entry: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) SoftDeleteTimeEntry(ctx context.Context, entryID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	now := time.Now().UnixMilli()
	result := tx.
		Model(&models.TimeEntryModel{}).
		Where("id = ? AND deleted_at IS NULL", entryID).
		Update("deleted_at", now)
	if result.Error != nil {
		return fmt.Errorf("failed to delete time entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("time entry not found")
	}

	return nil
}

func (r *TicketRepository) GetTimeEntryByID(ctx context.Context, entryID uint) (*ticket.TimeEntry, error) {
	var model models.TimeEntryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.NotDeleted()).
		First(&model, entryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("time entry not found")
		}
		return nil, fmt.Errorf("failed to find time entry: %w", err)
	}

	return r.mapper.TimeEntryToDomain(&model)
}

func (r *TicketRepository) GetTimeEntriesByTicketID(ctx context.Context, ticketID uint) ([]*ticket.TimeEntry, error) {
	var entryModels []models.TimeEntryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.NotDeleted()).
		Where("ticket_id = ?", ticketID).
		Order("logged_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load time entries: %w", err)
	}

	entries := make([]*ticket.TimeEntry, len(entryModels))
	for i, model := range entryModels {
		e, err := r.mapper.TimeEntryToDomain(&model)
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}

	return entries, nil
}

// AddTimeSpent moves the cached counter with column arithmetic so concurrent
// entries never lose a delta.
func (r *TicketRepository) AddTimeSpent(ctx context.Context, ticketID uint, deltaMinutes int) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND deleted_at IS NULL", ticketID).
		UpdateColumn("time_spent_minutes", gorm.Expr("time_spent_minutes + ?", deltaMinutes))
	if result.Error != nil {
		return fmt.Errorf("failed to update time spent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket not found")
	}

	return nil
}

package mappers

import (
	"ddportal/internal/domain/ticket"
	vo "ddportal/internal/domain/ticket/valueobjects"
	"ddportal/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)

	TimeEntryToModel(e *ticket.TimeEntry) *models.TimeEntryModel
	TimeEntryToDomain(model *models.TimeEntryModel) (*ticket.TimeEntry, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:               t.ID(),
		ClientID:         t.ClientID(),
		ProjectID:        t.ProjectID(),
		Title:            t.Title(),
		Description:      t.Description(),
		Type:             t.Type().String(),
		Priority:         t.Priority().String(),
		Status:           t.Status().String(),
		CreatedBy:        t.CreatedBy(),
		AssignedTo:       t.AssignedTo(),
		AssignedAt:       timePtrToMillis(t.AssignedAt()),
		ResolvedAt:       timePtrToMillis(t.ResolvedAt()),
		ResolvedBy:       t.ResolvedBy(),
		Resolution:       t.Resolution(),
		TimeSpentMinutes: t.TimeSpentMinutes(),
		LinearIssueID:    t.LinearIssueID(),
		LinearIssueURL:   t.LinearIssueURL(),
		CreatedAt:        t.CreatedAt().UnixMilli(),
		UpdatedAt:        t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	ticketType, err := vo.NewTicketType(model.Type)
	if err != nil {
		return nil, err
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, err
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.ClientID,
		model.ProjectID,
		model.Title,
		model.Description,
		ticketType,
		priority,
		status,
		model.CreatedBy,
		model.AssignedTo,
		millisPtrToTime(model.AssignedAt),
		millisPtrToTime(model.ResolvedAt),
		model.ResolvedBy,
		model.Resolution,
		model.TimeSpentMinutes,
		model.LinearIssueID,
		model.LinearIssueURL,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorID:   c.AuthorID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
		UpdatedAt:  c.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		model.IsInternal,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) TimeEntryToModel(e *ticket.TimeEntry) *models.TimeEntryModel {
	return &models.TimeEntryModel{
		ID:                       e.ID(),
		TicketID:                 e.TicketID(),
		UserID:                   e.UserID(),
		Minutes:                  e.Minutes(),
		Description:              e.Description(),
		CountTowardsSupportHours: e.CountTowardsSupportHours(),
		LoggedAt:                 e.LoggedAt().UnixMilli(),
		CreatedAt:                e.CreatedAt().UnixMilli(),
		UpdatedAt:                e.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) TimeEntryToDomain(model *models.TimeEntryModel) (*ticket.TimeEntry, error) {
	return ticket.ReconstructTimeEntry(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Minutes,
		model.Description,
		model.CountTowardsSupportHours,
		millisToTime(model.LoggedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

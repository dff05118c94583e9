package dto

import (
	"time"

	"ddportal/internal/domain/ticket"
)

type TicketDTO struct {
	ID               uint           `json:"id"`
	ClientID         uint           `json:"client_id"`
	ProjectID        *uint          `json:"project_id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	DescriptionHTML  string         `json:"description_html,omitempty"`
	Type             string         `json:"type"`
	Priority         string         `json:"priority"`
	Status           string         `json:"status"`
	CreatedBy        uint           `json:"created_by"`
	AssignedTo       *uint          `json:"assigned_to"`
	AssignedAt       *time.Time     `json:"assigned_at"`
	ResolvedAt       *time.Time     `json:"resolved_at"`
	ResolvedBy       *uint          `json:"resolved_by"`
	Resolution       string         `json:"resolution,omitempty"`
	TimeSpentMinutes int            `json:"time_spent_minutes"`
	LinearIssueID    string         `json:"linear_issue_id,omitempty"`
	LinearIssueURL   string         `json:"linear_issue_url,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	Comments         []CommentDTO   `json:"comments"`
	TimeEntries      []TimeEntryDTO `json:"time_entries,omitempty"`
}

type CommentDTO struct {
	ID          uint      `json:"id"`
	AuthorID    uint      `json:"author_id"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html,omitempty"`
	IsInternal  bool      `json:"is_internal"`
	CreatedAt   time.Time `json:"created_at"`
}

type TimeEntryDTO struct {
	ID                       uint      `json:"id"`
	TicketID                 uint      `json:"ticket_id"`
	UserID                   uint      `json:"user_id"`
	Minutes                  int       `json:"minutes"`
	Description              string    `json:"description"`
	CountTowardsSupportHours bool      `json:"count_towards_support_hours"`
	LoggedAt                 time.Time `json:"logged_at"`
	CreatedAt                time.Time `json:"created_at"`
}

type TicketListItemDTO struct {
	ID               uint      `json:"id"`
	ClientID         uint      `json:"client_id"`
	ProjectID        *uint     `json:"project_id"`
	Title            string    `json:"title"`
	Type             string    `json:"type"`
	Priority         string    `json:"priority"`
	Status           string    `json:"status"`
	CreatedBy        uint      `json:"created_by"`
	AssignedTo       *uint     `json:"assigned_to"`
	TimeSpentMinutes int       `json:"time_spent_minutes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToTicketDTO maps a ticket and its comments for a reader. Internal comments
// are dropped for client readers.
func ToTicketDTO(t *ticket.Ticket, comments []*ticket.Comment, includeInternal bool) *TicketDTO {
	if t == nil {
		return nil
	}

	commentDTOs := make([]CommentDTO, 0)
	for _, c := range comments {
		if c.IsInternal() && !includeInternal {
			continue
		}
		commentDTOs = append(commentDTOs, ToCommentDTO(c))
	}

	return &TicketDTO{
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
		AssignedAt:       t.AssignedAt(),
		ResolvedAt:       t.ResolvedAt(),
		ResolvedBy:       t.ResolvedBy(),
		Resolution:       t.Resolution(),
		TimeSpentMinutes: t.TimeSpentMinutes(),
		LinearIssueID:    t.LinearIssueID(),
		LinearIssueURL:   t.LinearIssueURL(),
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
		Comments:         commentDTOs,
	}
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		AuthorID:   c.AuthorID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt(),
	}
}

func ToTimeEntryDTO(e *ticket.TimeEntry) TimeEntryDTO {
	return TimeEntryDTO{
		ID:                       e.ID(),
		TicketID:                 e.TicketID(),
		UserID:                   e.UserID(),
		Minutes:                  e.Minutes(),
		Description:              e.Description(),
		CountTowardsSupportHours: e.CountTowardsSupportHours(),
		LoggedAt:                 e.LoggedAt(),
		CreatedAt:                e.CreatedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:               t.ID(),
		ClientID:         t.ClientID(),
		ProjectID:        t.ProjectID(),
		Title:            t.Title(),
		Type:             t.Type().String(),
		Priority:         t.Priority().String(),
		Status:           t.Status().String(),
		CreatedBy:        t.CreatedBy(),
		AssignedTo:       t.AssignedTo(),
		TimeSpentMinutes: t.TimeSpentMinutes(),
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
	}
}

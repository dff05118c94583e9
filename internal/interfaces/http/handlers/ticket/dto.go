package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ddportal/internal/application/ticket/usecases"
	"ddportal/internal/interfaces/http/handlers/common"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/utils"
)

type CreateTicketRequest struct {
	// ClientID is only honored for admin callers; client users always create
	// tickets in their own tenant.
	ClientID    uint   `json:"client_id"`
	ProjectID   *uint  `json:"project_id,omitempty"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=10000"`
	Type        string `json:"type" binding:"required"`
	Priority    string `json:"priority"`
}

func (r *CreateTicketRequest) ToCommand(actor common.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		ClientID:      r.ClientID,
		ProjectID:     r.ProjectID,
		Title:         r.Title,
		Description:   r.Description,
		Type:          r.Type,
		Priority:      r.Priority,
		ActorID:       actor.ID,
		ActorRole:     actor.Role,
		ActorClientID: actor.ClientID,
	}
}

type AddCommentRequest struct {
	Content    string `json:"content" binding:"required,max=10000"`
	IsInternal bool   `json:"is_internal"`
}

type ResolveTicketRequest struct {
	Resolution string `json:"resolution" binding:"required,max=5000"`
	Close      bool   `json:"close"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type LogTimeRequest struct {
	Minutes     int    `json:"minutes" binding:"required,min=1,max=1440"`
	Description string `json:"description" binding:"max=1000"`
	// CountTowardsSupportHours defaults to true when omitted.
	CountTowardsSupportHours *bool `json:"count_towards_support_hours,omitempty"`
}

func (r *LogTimeRequest) ToCommand(ticketID, actorID uint) usecases.LogTimeCommand {
	counted := true
	if r.CountTowardsSupportHours != nil {
		counted = *r.CountTowardsSupportHours
	}
	return usecases.LogTimeCommand{
		TicketID:                 ticketID,
		Minutes:                  r.Minutes,
		Description:              r.Description,
		CountTowardsSupportHours: counted,
		ActorID:                  actorID,
	}
}

type UpdateTimeEntryRequest struct {
	Minutes     int    `json:"minutes" binding:"required,min=1,max=1440"`
	Description string `json:"description" binding:"max=1000"`
}

// ListTicketsRequest is parsed from the query string, so validation runs
// through utils.ValidateStruct instead of gin's binding.
type ListTicketsRequest struct {
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	Status     string `json:"status" validate:"omitempty,oneof=open in_progress waiting_on_client resolved closed"`
	Priority   string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Type       string `json:"type" validate:"omitempty,oneof=general_support project_issue feature_request bug_report"`
	ClientID   *uint  `json:"client_id"`
	ProjectID  *uint  `json:"project_id"`
	AssignedTo *uint  `json:"assigned_to"`
	CreatedBy  *uint  `json:"created_by"`
	SortBy     string `json:"sort_by"`
	SortOrder  string `json:"sort_order" validate:"omitempty,oneof=asc desc"`
}

func (r *ListTicketsRequest) ToQuery(actor common.Actor) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:        r.Status,
		Priority:      r.Priority,
		Type:          r.Type,
		ClientID:      r.ClientID,
		ProjectID:     r.ProjectID,
		AssignedTo:    r.AssignedTo,
		CreatedBy:     r.CreatedBy,
		Page:          r.Page,
		PageSize:      r.PageSize,
		SortBy:        r.SortBy,
		SortOrder:     r.SortOrder,
		ActorRole:     actor.Role,
		ActorClientID: actor.ClientID,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListTicketsRequest{
		Page:      page,
		PageSize:  pageSize,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Type:      c.Query("type"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	var err error
	if req.ClientID, err = parseQueryID(c, "client_id"); err != nil {
		return nil, err
	}
	if req.ProjectID, err = parseQueryID(c, "project_id"); err != nil {
		return nil, err
	}
	if req.AssignedTo, err = parseQueryID(c, "assigned_to"); err != nil {
		return nil, err
	}
	if req.CreatedBy, err = parseQueryID(c, "created_by"); err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	return req, nil
}

func parseQueryID(c *gin.Context, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + key)
	}
	id := uint(parsed)
	return &id, nil
}

package project

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ddportal/internal/application/project/usecases"
	"ddportal/internal/interfaces/http/handlers/common"
	"ddportal/internal/shared/errors"
	"ddportal/internal/shared/utils"
)

type CreateProjectRequest struct {
	ClientID    uint       `json:"client_id" binding:"required"`
	Name        string     `json:"name" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=10000"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	TemplateID  *uint      `json:"template_id,omitempty"`
}

func (r *CreateProjectRequest) ToCommand(actorID uint) usecases.CreateProjectCommand {
	return usecases.CreateProjectCommand{
		ClientID:    r.ClientID,
		Name:        r.Name,
		Description: r.Description,
		StartDate:   r.StartDate,
		DueDate:     r.DueDate,
		TemplateID:  r.TemplateID,
		ActorID:     actorID,
	}
}

type UpdateProjectRequest struct {
	Name        string     `json:"name" binding:"max=200"`
	Description string     `json:"description" binding:"max=10000"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

type CreatePhaseRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
	// OrderIndex of -1 appends the phase at the end.
	OrderIndex *int `json:"order_index,omitempty"`
}

type UpdatePhaseRequest struct {
	Name        string  `json:"name" binding:"max=200"`
	Description string  `json:"description" binding:"max=5000"`
	Notes       *string `json:"notes,omitempty"`
}

type SetPhaseStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes" binding:"max=5000"`
}

type ReorderPhasesRequest struct {
	PhaseIDs []uint `json:"phase_ids" binding:"required,min=1"`
}

type ApplyTemplateRequest struct {
	TemplateID uint `json:"template_id" binding:"required"`
}

type TemplatePhaseRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
	OrderIndex  int    `json:"order_index"`
}

type CreateTemplateRequest struct {
	Name        string                 `json:"name" binding:"required,max=200"`
	Description string                 `json:"description" binding:"max=5000"`
	IsDefault   bool                   `json:"is_default"`
	Phases      []TemplatePhaseRequest `json:"phases" binding:"required,min=1,dive"`
}

func (r *CreateTemplateRequest) ToCommand(actorID uint) usecases.CreateTemplateCommand {
	phases := make([]usecases.TemplatePhaseInput, 0, len(r.Phases))
	for _, p := range r.Phases {
		phases = append(phases, usecases.TemplatePhaseInput{
			Name:        p.Name,
			Description: p.Description,
			OrderIndex:  p.OrderIndex,
		})
	}
	return usecases.CreateTemplateCommand{
		Name:        r.Name,
		Description: r.Description,
		IsDefault:   r.IsDefault,
		Phases:      phases,
		ActorID:     actorID,
	}
}

// ListProjectsRequest is parsed from the query string, so validation runs
// through utils.ValidateStruct instead of gin's binding. Status stays
// free-form to match project statuses.
type ListProjectsRequest struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Status   string `json:"status" validate:"max=50"`
	Search   string `json:"search" validate:"max=200"`
	ClientID *uint  `json:"client_id"`
}

func (r *ListProjectsRequest) ToQuery(actor common.Actor) usecases.ListProjectsQuery {
	return usecases.ListProjectsQuery{
		Status:        r.Status,
		ClientID:      r.ClientID,
		Search:        r.Search,
		Page:          r.Page,
		PageSize:      r.PageSize,
		ActorRole:     actor.Role,
		ActorClientID: actor.ClientID,
	}
}

func parseListProjectsRequest(c *gin.Context) (*ListProjectsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListProjectsRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}

	if raw := c.Query("client_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid client_id")
		}
		id := uint(parsed)
		req.ClientID = &id
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	return req, nil
}

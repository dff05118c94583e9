package client

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ddportal/internal/application/client/usecases"
	"ddportal/internal/shared/utils"
)

type CreateClientRequest struct {
	CompanyName            string     `json:"company_name" binding:"required,max=200"`
	ContactEmail           string     `json:"contact_email" binding:"required,email"`
	SupportMinutesPerMonth int        `json:"support_minutes_per_month" binding:"min=0"`
	BillingCycleStart      *time.Time `json:"billing_cycle_start,omitempty"`
}

func (r *CreateClientRequest) ToCommand(actorID uint) usecases.CreateClientCommand {
	cycleStart := time.Now()
	if r.BillingCycleStart != nil {
		cycleStart = *r.BillingCycleStart
	}
	return usecases.CreateClientCommand{
		CompanyName:            r.CompanyName,
		ContactEmail:           r.ContactEmail,
		SupportMinutesPerMonth: r.SupportMinutesPerMonth,
		BillingCycleStart:      cycleStart,
		ActorID:                actorID,
	}
}

type UpdateClientRequest struct {
	CompanyName            string `json:"company_name" binding:"max=200"`
	ContactEmail           string `json:"contact_email" binding:"omitempty,email"`
	Status                 string `json:"status"`
	SupportMinutesPerMonth *int   `json:"support_minutes_per_month,omitempty"`
}

type ResetSupportCycleRequest struct {
	// CycleStart defaults to the current time when omitted.
	CycleStart *time.Time `json:"cycle_start,omitempty"`
}

// ListClientsRequest is parsed from the query string, so validation runs
// through utils.ValidateStruct instead of gin's binding.
type ListClientsRequest struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive archived"`
	Search   string `json:"search" validate:"max=200"`
}

func (r *ListClientsRequest) ToQuery() usecases.ListClientsQuery {
	return usecases.ListClientsQuery{
		Status:   r.Status,
		Search:   r.Search,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

func parseListClientsRequest(c *gin.Context) (*ListClientsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListClientsRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	return req, nil
}

package dto

import (
	"time"

	"ddportal/internal/domain/client"
)

type ClientDTO struct {
	ID                       uint      `json:"id"`
	CompanyName              string    `json:"company_name"`
	ContactEmail             string    `json:"contact_email"`
	Status                   string    `json:"status"`
	SupportMinutesPerMonth   int       `json:"support_minutes_per_month"`
	SupportMinutesUsed       int       `json:"support_minutes_used"`
	RemainingSupportMinutes  int       `json:"remaining_support_minutes"`
	SupportBillingCycleStart time.Time `json:"support_billing_cycle_start"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

type ClientListItemDTO struct {
	ID                      uint   `json:"id"`
	CompanyName             string `json:"company_name"`
	ContactEmail            string `json:"contact_email"`
	Status                  string `json:"status"`
	SupportMinutesPerMonth  int    `json:"support_minutes_per_month"`
	SupportMinutesUsed      int    `json:"support_minutes_used"`
	RemainingSupportMinutes int    `json:"remaining_support_minutes"`
}

func ToClientDTO(c *client.Client) *ClientDTO {
	return &ClientDTO{
		ID:                       c.ID(),
		CompanyName:              c.CompanyName(),
		ContactEmail:             c.ContactEmail(),
		Status:                   c.Status().String(),
		SupportMinutesPerMonth:   c.SupportHoursPerMonth(),
		SupportMinutesUsed:       c.HoursUsedThisMonth(),
		RemainingSupportMinutes:  c.RemainingSupportMinutes(),
		SupportBillingCycleStart: c.SupportBillingCycleStart(),
		CreatedAt:                c.CreatedAt(),
		UpdatedAt:                c.UpdatedAt(),
	}
}

func ToClientListItemDTO(c *client.Client) ClientListItemDTO {
	return ClientListItemDTO{
		ID:                      c.ID(),
		CompanyName:             c.CompanyName(),
		ContactEmail:            c.ContactEmail(),
		Status:                  c.Status().String(),
		SupportMinutesPerMonth:  c.SupportHoursPerMonth(),
		SupportMinutesUsed:      c.HoursUsedThisMonth(),
		RemainingSupportMinutes: c.RemainingSupportMinutes(),
	}
}

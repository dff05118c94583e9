package mappers

import (
	"ddportal/internal/domain/client"
	vo "ddportal/internal/domain/client/valueobjects"
	"ddportal/internal/infrastructure/persistence/models"
)

// ClientMapper handles the conversion between Client domain entities and persistence models.
type ClientMapper interface {
	ToModel(c *client.Client) *models.ClientModel
	ToDomain(model *models.ClientModel) (*client.Client, error)
}

type ClientMapperImpl struct{}

func NewClientMapper() ClientMapper {
	return &ClientMapperImpl{}
}

func (m *ClientMapperImpl) ToModel(c *client.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:                       c.ID(),
		CompanyName:              c.CompanyName(),
		ContactEmail:             c.ContactEmail(),
		Status:                   c.Status().String(),
		SupportMinutesPerMonth:   c.SupportHoursPerMonth(),
		SupportMinutesUsed:       c.HoursUsedThisMonth(),
		SupportBillingCycleStart: c.SupportBillingCycleStart().UnixMilli(),
		CreatedAt:                c.CreatedAt().UnixMilli(),
		UpdatedAt:                c.UpdatedAt().UnixMilli(),
	}
}

func (m *ClientMapperImpl) ToDomain(model *models.ClientModel) (*client.Client, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return client.ReconstructClient(
		model.ID,
		model.CompanyName,
		model.ContactEmail,
		status,
		model.SupportMinutesPerMonth,
		model.SupportMinutesUsed,
		millisToTime(model.SupportBillingCycleStart),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

package models

type ClientModel struct {
	ID                       uint   `gorm:"primaryKey"`
	CompanyName              string `gorm:"size:200;not null"`
	ContactEmail             string `gorm:"size:255;not null;uniqueIndex"`
	Status                   string `gorm:"size:20;not null;index"`
	SupportMinutesPerMonth   int    `gorm:"not null;default:0"`
	SupportMinutesUsed       int    `gorm:"not null;default:0"`
	SupportBillingCycleStart int64  `gorm:"not null"`
	CreatedAt                int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt                int64  `gorm:"autoUpdateTime:milli;not null"`
	DeletedAt                *int64 `gorm:"index"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ClientModel) TableName() string {
	return "clients"
}

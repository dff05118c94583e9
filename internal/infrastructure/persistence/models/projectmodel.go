package models

type ProjectModel struct {
	ID             uint   `gorm:"primaryKey"`
	ClientID       uint   `gorm:"not null;index"`
	Name           string `gorm:"size:200;not null"`
	Description    string `gorm:"type:text"`
	Status         string `gorm:"size:20;not null;index"`
	CurrentPhaseID *uint
	StartDate      *int64
	DueDate        *int64
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
	DeletedAt      *int64 `gorm:"index"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

type PhaseModel struct {
	ID          uint   `gorm:"primaryKey"`
	ProjectID   uint   `gorm:"not null;index"`
	Name        string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:20;not null;index"`
	OrderIndex  int    `gorm:"not null;default:0"`
	Notes       string `gorm:"type:text"`
	StartedAt   *int64
	CompletedAt *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (PhaseModel) TableName() string {
	return "project_phases"
}

type PhaseTemplateModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	IsDefault   bool   `gorm:"not null;default:false;index"`
	// Phases holds the template's phase definitions as a JSON array.
	Phases    string `gorm:"type:json;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PhaseTemplateModel) TableName() string {
	return "phase_templates"
}

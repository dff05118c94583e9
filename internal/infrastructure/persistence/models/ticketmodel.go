package models

type TicketModel struct {
	ID               uint   `gorm:"primaryKey"`
	ClientID         uint   `gorm:"not null;index"`
	ProjectID        *uint  `gorm:"index"`
	Title            string `gorm:"size:200;not null"`
	Description      string `gorm:"type:text;not null"`
	Type             string `gorm:"size:30;not null;index"`
	Priority         string `gorm:"size:20;not null;index"`
	Status           string `gorm:"size:30;not null;index"`
	CreatedBy        uint   `gorm:"not null;index"`
	AssignedTo       *uint  `gorm:"index"`
	AssignedAt       *int64
	ResolvedAt       *int64
	ResolvedBy       *uint
	Resolution       string `gorm:"type:text"`
	TimeSpentMinutes int    `gorm:"not null;default:0"`
	LinearIssueID    string `gorm:"size:100"`
	LinearIssueURL   string `gorm:"size:500"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64  `gorm:"autoUpdateTime:milli;not null"`
	DeletedAt        *int64 `gorm:"index"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	AuthorID   uint   `gorm:"not null;index"`
	Content    string `gorm:"type:text;not null"`
	IsInternal bool   `gorm:"not null;default:false"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

type TimeEntryModel struct {
	ID                       uint   `gorm:"primaryKey"`
	TicketID                 uint   `gorm:"not null;index"`
	UserID                   uint   `gorm:"not null;index"`
	Minutes                  int    `gorm:"not null"`
	Description              string `gorm:"type:text"`
	CountTowardsSupportHours bool   `gorm:"not null;default:true"`
	LoggedAt                 int64  `gorm:"not null;index"`
	CreatedAt                int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt                int64  `gorm:"autoUpdateTime:milli;not null"`
	DeletedAt                *int64 `gorm:"index"`
}

func (TimeEntryModel) TableName() string {
	return "ticket_time_entries"
}

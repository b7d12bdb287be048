package models

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	AuthorID    uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	Department  string `gorm:"size:100;not null"`
	Priority    *int
	Subject     string `gorm:"size:200;not null"`
	Message     string `gorm:"type:text;not null"`
	Status      string `gorm:"size:30;not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	LastUpdated int64  `gorm:"not null;index"`

	// Note: no foreign key constraints or associations. Relationships are
	// managed by application logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

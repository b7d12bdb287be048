package models

// UserModel is the persistence shape of a portal account. Email carries the
// unique constraint that backs duplicate-signup detection.
type UserModel struct {
	ID          uint   `gorm:"primaryKey"`
	Email       string `gorm:"uniqueIndex;size:255;not null"`
	DisplayName string `gorm:"size:255;not null"`
	Role        string `gorm:"size:20;not null;default:student;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`

	// Note: no foreign key constraints or associations. Relationships are
	// managed by application logic.
}

func (UserModel) TableName() string {
	return "users"
}

package db_models

import "github.com/google/uuid"

// Calendar groups the events of one owner. Created implicitly on first
// use and never deleted in normal operation.
type Calendar struct {
	BaseModel
	UserID uuid.UUID `gorm:"index"`

	Events []CalendarEvent `gorm:"foreignKey:CalendarID"`
}

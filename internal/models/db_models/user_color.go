package db_models

import "github.com/google/uuid"

// UserColorConfig stores the display color of a user inside one calendar.
// Presentation only, no business invariant.
type UserColorConfig struct {
	BaseModel
	CalendarID uuid.UUID `gorm:"index:idx_color_calendar_user,unique"`
	UserID     uuid.UUID `gorm:"index:idx_color_calendar_user,unique"`
	ColorCode  string
}

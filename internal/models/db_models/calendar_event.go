package db_models

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEvent is a schedulable unit of work spanning an inclusive
// date range. Its range is always materialized as EventDay rows and it
// carries at most two active charges at any time.
type CalendarEvent struct {
	BaseModel
	CalendarID  uuid.UUID `gorm:"index"`
	ActivityID  *uuid.UUID
	Name        string
	Priority    int `gorm:"default:0"`
	Notes       string
	ContainerID *uuid.UUID
	StartDate   time.Time
	EndDate     time.Time

	Activity  *Activity
	Container *Container
	Days      []EventDay    `gorm:"foreignKey:CalendarEventID;constraint:OnDelete:CASCADE"`
	Charges   []EventCharge `gorm:"foreignKey:CalendarEventID;constraint:OnDelete:CASCADE"`
}

// EventDay is the per-day expansion of an event's range, one row per
// calendar date so range queries never re-derive from start/end.
type EventDay struct {
	BaseModel
	CalendarID      uuid.UUID `gorm:"index"`
	CalendarEventID uuid.UUID `gorm:"index"`
	Date            time.Time `gorm:"index"`
}

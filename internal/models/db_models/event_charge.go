package db_models

import (
	"time"

	"github.com/google/uuid"
)

type ChargeStatus string

const (
	ChargePending    ChargeStatus = "PENDIENTE"
	ChargeInProgress ChargeStatus = "EN_PROGRESO"
	ChargeCompleted  ChargeStatus = "COMPLETADO"
)

// Rank gives the total order used by progress aggregation.
func (s ChargeStatus) Rank() int {
	switch s {
	case ChargeInProgress:
		return 1
	case ChargeCompleted:
		return 2
	default:
		return 0
	}
}

func (s ChargeStatus) Valid() bool {
	switch s {
	case ChargePending, ChargeInProgress, ChargeCompleted:
		return true
	}
	return false
}

// EventCharge assigns one responsible user to one event. Unassignment
// sets RemovedAt instead of deleting the row, so tracking history
// survives; an "active" charge is one with RemovedAt == nil.
type EventCharge struct {
	BaseModel
	CalendarID      uuid.UUID `gorm:"index"`
	CalendarEventID uuid.UUID `gorm:"index"`
	UserID          uuid.UUID `gorm:"index"`
	Status          ChargeStatus
	Notes           string
	AssignedAt      time.Time
	RemovedAt       *time.Time

	Tracking []ChargeTracking `gorm:"foreignKey:CalendarEventChargeID;constraint:OnDelete:CASCADE"`
}

func (c *EventCharge) Active() bool {
	return c.RemovedAt == nil
}

// ChargeTracking is the append-only log of a charge's status
// transitions. FromStatus is nil on the initial assignment row.
type ChargeTracking struct {
	BaseModel
	CalendarEventChargeID uuid.UUID `gorm:"index"`
	FromStatus            *ChargeStatus
	ToStatus              ChargeStatus
	ChangedAt             time.Time
	ChangedBy             uuid.UUID
}

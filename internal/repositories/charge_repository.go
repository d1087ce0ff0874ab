package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "cargocal/internal/models/db_models"
)

type ChargeRepository interface {
	GetChargeByID(ctx context.Context, chargeID uuid.UUID) (*dbm.EventCharge, error)
	GetActiveCharge(ctx context.Context, eventID, userID uuid.UUID) (*dbm.EventCharge, error)
	CountActiveCharges(ctx context.Context, eventID uuid.UUID) (int64, error)
	ListActiveChargesByEvent(ctx context.Context, eventID uuid.UUID) ([]dbm.EventCharge, error)
	CreateCharge(ctx context.Context, calendarID, eventID, userID, actorID uuid.UUID) (*dbm.EventCharge, error)
	UpdateChargeStatus(ctx context.Context, charge *dbm.EventCharge, from, to dbm.ChargeStatus, changedBy uuid.UUID) error
	SoftRemoveCharge(ctx context.Context, chargeID uuid.UUID) error
	ListTrackingByCharge(ctx context.Context, chargeID uuid.UUID) ([]dbm.ChargeTracking, error)
	ListTrackingByEvent(ctx context.Context, eventID uuid.UUID) ([]dbm.ChargeTracking, error)
}

type chargeRepository struct {
	db *gorm.DB
}

func NewChargeRepository(db *gorm.DB) ChargeRepository {
	return &chargeRepository{db: db}
}

func (r *chargeRepository) GetChargeByID(ctx context.Context, chargeID uuid.UUID) (*dbm.EventCharge, error) {
	var charge dbm.EventCharge
	err := r.db.WithContext(ctx).First(&charge, "id = ?", chargeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &charge, nil
}

func (r *chargeRepository) GetActiveCharge(ctx context.Context, eventID, userID uuid.UUID) (*dbm.EventCharge, error) {
	var charge dbm.EventCharge
	err := r.db.WithContext(ctx).
		Where("calendar_event_id = ? AND user_id = ? AND removed_at IS NULL", eventID, userID).
		First(&charge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &charge, nil
}

func (r *chargeRepository) CountActiveCharges(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.EventCharge{}).
		Where("calendar_event_id = ? AND removed_at IS NULL", eventID).
		Count(&n).Error
	return n, err
}

func (r *chargeRepository) ListActiveChargesByEvent(ctx context.Context, eventID uuid.UUID) ([]dbm.EventCharge, error) {
	var charges []dbm.EventCharge
	err := r.db.WithContext(ctx).
		Where("calendar_event_id = ? AND removed_at IS NULL", eventID).
		Order("assigned_at ASC").
		Find(&charges).Error
	if err != nil {
		return nil, err
	}
	return charges, nil
}

func (r *chargeRepository) CreateCharge(ctx context.Context, calendarID, eventID, userID, actorID uuid.UUID) (*dbm.EventCharge, error) {
	now := time.Now()
	charge := dbm.EventCharge{
		CalendarID:      calendarID,
		CalendarEventID: eventID,
		UserID:          userID,
		Status:          dbm.ChargePending,
		AssignedAt:      now,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&charge).Error; err != nil {
			return err
		}
		track := dbm.ChargeTracking{
			CalendarEventChargeID: charge.ID,
			FromStatus:            nil,
			ToStatus:              dbm.ChargePending,
			ChangedAt:             now,
			ChangedBy:             actorID,
		}
		return tx.Create(&track).Error
	})
	if err != nil {
		return nil, err
	}
	return &charge, nil
}

// UpdateChargeStatus applies the transition and appends exactly one
// tracking row, atomically.
func (r *chargeRepository) UpdateChargeStatus(ctx context.Context, charge *dbm.EventCharge, from, to dbm.ChargeStatus, changedBy uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		charge.Status = to
		if err := tx.Omit("Tracking").Save(charge).Error; err != nil {
			return err
		}
		fromCopy := from
		track := dbm.ChargeTracking{
			CalendarEventChargeID: charge.ID,
			FromStatus:            &fromCopy,
			ToStatus:              to,
			ChangedAt:             time.Now(),
			ChangedBy:             changedBy,
		}
		return tx.Create(&track).Error
	})
}

// SoftRemoveCharge marks the charge unassigned. The row is kept so the
// tracking log keeps its target.
func (r *chargeRepository) SoftRemoveCharge(ctx context.Context, chargeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&dbm.EventCharge{}).
		Where("id = ?", chargeID).
		Update("removed_at", time.Now()).Error
}

func (r *chargeRepository) ListTrackingByCharge(ctx context.Context, chargeID uuid.UUID) ([]dbm.ChargeTracking, error) {
	var rows []dbm.ChargeTracking
	err := r.db.WithContext(ctx).
		Where("calendar_event_charge_id = ?", chargeID).
		Order("changed_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *chargeRepository) ListTrackingByEvent(ctx context.Context, eventID uuid.UUID) ([]dbm.ChargeTracking, error) {
	sub := r.db.Model(&dbm.EventCharge{}).
		Select("id").
		Where("calendar_event_id = ?", eventID)

	var rows []dbm.ChargeTracking
	err := r.db.WithContext(ctx).
		Where("calendar_event_charge_id IN (?)", sub).
		Order("changed_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

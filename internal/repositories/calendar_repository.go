package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "cargocal/internal/models/db_models"
)

type CalendarRepository interface {
	GetOrCreateByOwner(ctx context.Context, userID uuid.UUID) (*dbm.Calendar, error)
	GetByID(ctx context.Context, calendarID uuid.UUID) (*dbm.Calendar, error)
	ListOwnedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type calendarRepository struct {
	db *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) CalendarRepository {
	return &calendarRepository{db: db}
}

// GetOrCreateByOwner returns the owner's calendar, creating it on first
// use. Calendars are never deleted in normal operation.
func (r *calendarRepository) GetOrCreateByOwner(ctx context.Context, userID uuid.UUID) (*dbm.Calendar, error) {
	var cal dbm.Calendar
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cal).Error
	if err == nil {
		return &cal, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cal = dbm.Calendar{UserID: userID}
	if err := r.db.WithContext(ctx).Create(&cal).Error; err != nil {
		return nil, err
	}
	return &cal, nil
}

func (r *calendarRepository) GetByID(ctx context.Context, calendarID uuid.UUID) (*dbm.Calendar, error) {
	var cal dbm.Calendar
	err := r.db.WithContext(ctx).First(&cal, "id = ?", calendarID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cal, nil
}

func (r *calendarRepository) ListOwnedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&dbm.Calendar{}).
		Where("user_id = ?", userID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

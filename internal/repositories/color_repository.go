package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "cargocal/internal/models/db_models"
)

type ColorRepository interface {
	UpsertColor(ctx context.Context, calendarID, userID uuid.UUID, colorCode string) error
	GetColor(ctx context.Context, calendarID, userID uuid.UUID) (*dbm.UserColorConfig, error)
	GetAnyColorForUser(ctx context.Context, userID uuid.UUID) (*dbm.UserColorConfig, error)
	ListColorsByCalendar(ctx context.Context, calendarID uuid.UUID) ([]dbm.UserColorConfig, error)
}

type colorRepository struct {
	db *gorm.DB
}

func NewColorRepository(db *gorm.DB) ColorRepository {
	return &colorRepository{db: db}
}

func (r *colorRepository) UpsertColor(ctx context.Context, calendarID, userID uuid.UUID, colorCode string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cfg dbm.UserColorConfig
		err := tx.Where("calendar_id = ? AND user_id = ?", calendarID, userID).First(&cfg).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cfg = dbm.UserColorConfig{CalendarID: calendarID, UserID: userID, ColorCode: colorCode}
			return tx.Create(&cfg).Error
		}
		if err != nil {
			return err
		}
		cfg.ColorCode = colorCode
		return tx.Save(&cfg).Error
	})
}

func (r *colorRepository) GetColor(ctx context.Context, calendarID, userID uuid.UUID) (*dbm.UserColorConfig, error) {
	var cfg dbm.UserColorConfig
	err := r.db.WithContext(ctx).
		Where("calendar_id = ? AND user_id = ?", calendarID, userID).
		First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// GetAnyColorForUser is the unscoped fallback used when no calendar
// filter is given.
func (r *colorRepository) GetAnyColorForUser(ctx context.Context, userID uuid.UUID) (*dbm.UserColorConfig, error) {
	var cfg dbm.UserColorConfig
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *colorRepository) ListColorsByCalendar(ctx context.Context, calendarID uuid.UUID) ([]dbm.UserColorConfig, error) {
	var cfgs []dbm.UserColorConfig
	err := r.db.WithContext(ctx).
		Where("calendar_id = ?", calendarID).
		Find(&cfgs).Error
	if err != nil {
		return nil, err
	}
	return cfgs, nil
}

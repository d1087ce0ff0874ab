package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "cargocal/internal/models/db_models"
)

type ActivityRepository interface {
	CreateActivity(ctx context.Context, activity *dbm.Activity) error
	UpdateActivity(ctx context.Context, activity *dbm.Activity) error
	DeleteActivity(ctx context.Context, activityID uuid.UUID) error
	GetActivityByID(ctx context.Context, activityID uuid.UUID) (*dbm.Activity, error)
	ListActivities(ctx context.Context) ([]dbm.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) CreateActivity(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) UpdateActivity(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *activityRepository) DeleteActivity(ctx context.Context, activityID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&dbm.Activity{}, "id = ?", activityID).Error
}

func (r *activityRepository) GetActivityByID(ctx context.Context, activityID uuid.UUID) (*dbm.Activity, error) {
	var activity dbm.Activity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", activityID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) ListActivities(ctx context.Context) ([]dbm.Activity, error) {
	var activities []dbm.Activity
	err := r.db.WithContext(ctx).Order("name ASC").Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

package services

import (
	"context"

	"github.com/google/uuid"

	dbm "cargocal/internal/models/db_models"
	"cargocal/internal/models/response_models"
	"cargocal/internal/repositories"
	"cargocal/pkg/utils"
)

type ActivityServiceInterface interface {
	ListActivities(ctx context.Context) ([]response_models.ActivityResponse, error)
	CreateActivity(ctx context.Context, name string) (*response_models.ActivityResponse, error)
	UpdateActivity(ctx context.Context, activityID uuid.UUID, name string) (*response_models.ActivityResponse, error)
	DeleteActivity(ctx context.Context, activityID uuid.UUID) error
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
	eventRepo    repositories.EventRepository
}

func NewActivityService(activityRepo repositories.ActivityRepository, eventRepo repositories.EventRepository) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
		eventRepo:    eventRepo,
	}
}

func (s *ActivityService) ListActivities(ctx context.Context) ([]response_models.ActivityResponse, error) {
	activities, err := s.activityRepo.ListActivities(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, response_models.ActivityResponse{ID: a.ID.String(), Name: a.Name})
	}
	return out, nil
}

func (s *ActivityService) CreateActivity(ctx context.Context, name string) (*response_models.ActivityResponse, error) {
	activity := &dbm.Activity{Name: name}
	if err := s.activityRepo.CreateActivity(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.ActivityResponse{ID: activity.ID.String(), Name: activity.Name}, nil
}

func (s *ActivityService) UpdateActivity(ctx context.Context, activityID uuid.UUID, name string) (*response_models.ActivityResponse, error) {
	activity, err := s.activityRepo.GetActivityByID(ctx, activityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	activity.Name = name
	if err := s.activityRepo.UpdateActivity(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.ActivityResponse{ID: activity.ID.String(), Name: activity.Name}, nil
}

// DeleteActivity refuses to delete catalog entries still referenced by
// events; the check is an explicit precondition, not a cascade side
// effect.
func (s *ActivityService) DeleteActivity(ctx context.Context, activityID uuid.UUID) error {
	activity, err := s.activityRepo.GetActivityByID(ctx, activityID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if activity == nil {
		return utils.ErrActivityNotFound
	}

	refs, err := s.eventRepo.CountEventsByActivity(ctx, activityID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if refs > 0 {
		return utils.ErrActivityInUse
	}

	if err := s.activityRepo.DeleteActivity(ctx, activityID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

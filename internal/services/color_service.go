package services

import (
	"context"

	"github.com/google/uuid"

	"cargocal/internal/models/response_models"
	"cargocal/internal/repositories"
	"cargocal/pkg/utils"
)

type ColorServiceInterface interface {
	SetColor(ctx context.Context, calendarID, userID uuid.UUID, colorCode string) error
	ListColors(ctx context.Context, calendarID uuid.UUID) ([]response_models.ColorConfigResponse, error)
}

type ColorService struct {
	colorRepo    repositories.ColorRepository
	calendarRepo repositories.CalendarRepository
}

func NewColorService(colorRepo repositories.ColorRepository, calendarRepo repositories.CalendarRepository) ColorServiceInterface {
	return &ColorService{
		colorRepo:    colorRepo,
		calendarRepo: calendarRepo,
	}
}

func (s *ColorService) SetColor(ctx context.Context, calendarID, userID uuid.UUID, colorCode string) error {
	calendar, err := s.calendarRepo.GetByID(ctx, calendarID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if calendar == nil {
		return utils.ErrCalendarNotFound
	}

	if err := s.colorRepo.UpsertColor(ctx, calendarID, userID, colorCode); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ColorService) ListColors(ctx context.Context, calendarID uuid.UUID) ([]response_models.ColorConfigResponse, error) {
	cfgs, err := s.colorRepo.ListColorsByCalendar(ctx, calendarID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ColorConfigResponse, 0, len(cfgs))
	for _, cfg := range cfgs {
		out = append(out, response_models.ColorConfigResponse{
			CalendarID: cfg.CalendarID.String(),
			UserID:     cfg.UserID.String(),
			ColorCode:  cfg.ColorCode,
		})
	}
	return out, nil
}

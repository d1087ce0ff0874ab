package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	dbm "cargocal/internal/models/db_models"
	"cargocal/internal/models/request_models"
	"cargocal/internal/models/response_models"
	"cargocal/internal/repositories"
	"cargocal/pkg/utils"
)

// maxResponsibles caps the active charges an event can carry.
const maxResponsibles = 2

type ListEventsQuery struct {
	CallerID          uuid.UUID
	CanSeeAll         bool
	StartDate         *time.Time
	EndDate           *time.Time
	ResponsibleUserID *uuid.UUID
	Status            *dbm.ChargeStatus
	Priority          *int
	OnlyMyCharges     bool
}

type EventServiceInterface interface {
	ListEvents(ctx context.Context, q ListEventsQuery) ([]response_models.EventResponse, error)
	GetEventById(ctx context.Context, eventID, callerID uuid.UUID, canSeeAll bool) (*response_models.EventResponse, error)
	CreateEvent(ctx context.Context, callerID uuid.UUID, req request_models.CreateEventRequest) (*response_models.EventResponse, error)
	UpdateEvent(ctx context.Context, eventID, callerID uuid.UUID, req request_models.UpdateEventRequest, canManageAll bool) (*response_models.EventResponse, error)
	DeleteEvent(ctx context.Context, eventID, callerID uuid.UUID, canManageAll bool) error
}

type EventService struct {
	eventRepo    repositories.EventRepository
	calendarRepo repositories.CalendarRepository
	activityRepo repositories.ActivityRepository
}

func NewEventService(
	eventRepo repositories.EventRepository,
	calendarRepo repositories.CalendarRepository,
	activityRepo repositories.ActivityRepository,
) EventServiceInterface {
	return &EventService{
		eventRepo:    eventRepo,
		calendarRepo: calendarRepo,
		activityRepo: activityRepo,
	}
}

func (s *EventService) ListEvents(ctx context.Context, q ListEventsQuery) ([]response_models.EventResponse, error) {
	filter := repositories.EventFilter{
		StartDate:         q.StartDate,
		EndDate:           q.EndDate,
		ResponsibleUserID: q.ResponsibleUserID,
		Status:            q.Status,
		Priority:          q.Priority,
	}
	if !q.CanSeeAll {
		callerID := q.CallerID
		filter.VisibleToUserID = &callerID
	}
	if q.OnlyMyCharges {
		callerID := q.CallerID
		filter.ChargeHolderID = &callerID
	}

	events, err := s.eventRepo.ListEvents(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, *response_models.BuildEventResponse(&events[i]))
	}
	return out, nil
}

func (s *EventService) GetEventById(ctx context.Context, eventID, callerID uuid.UUID, canSeeAll bool) (*response_models.EventResponse, error) {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	if !canSeeAll {
		visible, err := s.callerCanSee(ctx, event, callerID)
		if err != nil {
			return nil, err
		}
		// Out-of-scope reads as absent so existence never leaks.
		if !visible {
			return nil, utils.ErrEventNotFound
		}
	}

	return response_models.BuildEventResponse(event), nil
}

func (s *EventService) callerCanSee(ctx context.Context, event *dbm.CalendarEvent, callerID uuid.UUID) (bool, error) {
	for i := range event.Charges {
		c := &event.Charges[i]
		if c.Active() && c.UserID == callerID {
			return true, nil
		}
	}
	cal, err := s.calendarRepo.GetByID(ctx, event.CalendarID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return cal != nil && cal.UserID == callerID, nil
}

func (s *EventService) CreateEvent(ctx context.Context, callerID uuid.UUID, req request_models.CreateEventRequest) (*response_models.EventResponse, error) {
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil || endDate.Before(startDate) {
		return nil, utils.ErrInvalidInput
	}

	calendar, err := s.calendarRepo.GetOrCreateByOwner(ctx, callerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	var activityID *uuid.UUID
	if req.ActivityID != nil {
		id, err := uuid.Parse(*req.ActivityID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		activityID = &id
	}

	name, err := s.resolveName(ctx, req.Name, req.Title, activityID)
	if err != nil {
		return nil, err
	}

	var containerID *uuid.UUID
	if req.ContainerID != nil {
		id, err := uuid.Parse(*req.ContainerID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		containerID = &id
	}

	responsibleIDs, err := parseResponsibleIDs(req.ResponsibleUserIDs)
	if err != nil {
		return nil, err
	}

	event := &dbm.CalendarEvent{
		CalendarID:  calendar.ID,
		ActivityID:  activityID,
		Name:        name,
		Priority:    req.Priority,
		Notes:       req.Notes,
		ContainerID: containerID,
		StartDate:   utils.DateOnly(startDate),
		EndDate:     utils.DateOnly(endDate),
	}
	days := utils.ExpandDateRange(startDate, endDate)

	if err := s.eventRepo.CreateEvent(ctx, event, days, responsibleIDs, callerID); err != nil {
		return nil, utils.ErrDatabaseError
	}

	created, err := s.eventRepo.GetEventByID(ctx, event.ID)
	if err != nil || created == nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildEventResponse(created), nil
}

// resolveName picks the event display name: explicit name, then title,
// then the catalog activity's name, then the literal fallback.
func (s *EventService) resolveName(ctx context.Context, name, title *string, activityID *uuid.UUID) (string, error) {
	if name != nil && *name != "" {
		return *name, nil
	}
	if title != nil && *title != "" {
		return *title, nil
	}
	if activityID != nil {
		activity, err := s.activityRepo.GetActivityByID(ctx, *activityID)
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		if activity != nil {
			return activity.Name, nil
		}
	}
	return "Actividad", nil
}

func (s *EventService) UpdateEvent(ctx context.Context, eventID, callerID uuid.UUID, req request_models.UpdateEventRequest, canManageAll bool) (*response_models.EventResponse, error) {
	var ownerID *uuid.UUID
	if !canManageAll {
		ownerID = &callerID
	}

	event, err := s.eventRepo.GetEventScoped(ctx, eventID, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	if req.Name != nil {
		event.Name = *req.Name
	} else if req.Title != nil {
		event.Name = *req.Title
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}
	if req.Priority != nil {
		event.Priority = *req.Priority
	}
	if req.ActivityID != nil {
		id, err := uuid.Parse(*req.ActivityID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		event.ActivityID = &id
	}
	if req.ContainerID != nil {
		id, err := uuid.Parse(*req.ContainerID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		event.ContainerID = &id
	}

	// Days regenerate only when the full range is supplied; a single
	// date key cannot keep the day rows consistent and is ignored.
	var newDays []time.Time
	if req.StartDate != nil && req.EndDate != nil {
		startDate, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		endDate, err := utils.ParseDate(*req.EndDate)
		if err != nil || endDate.Before(startDate) {
			return nil, utils.ErrInvalidInput
		}
		event.StartDate = utils.DateOnly(startDate)
		event.EndDate = utils.DateOnly(endDate)
		newDays = utils.ExpandDateRange(startDate, endDate)
	}

	// A responsibles key present in the patch, even empty, replaces the
	// whole charge set and resets status progress.
	var newResponsibles *[]uuid.UUID
	if req.ResponsibleUserIDs != nil || req.ResponsableIDs != nil {
		raw := req.ResponsibleUserIDs
		if raw == nil {
			raw = req.ResponsableIDs
		}
		ids, err := parseResponsibleIDs(*raw)
		if err != nil {
			return nil, err
		}
		newResponsibles = &ids
	}

	if err := s.eventRepo.SaveEvent(ctx, event, newDays, newResponsibles, callerID); err != nil {
		return nil, utils.ErrDatabaseError
	}

	updated, err := s.eventRepo.GetEventByID(ctx, event.ID)
	if err != nil || updated == nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.BuildEventResponse(updated), nil
}

func (s *EventService) DeleteEvent(ctx context.Context, eventID, callerID uuid.UUID, canManageAll bool) error {
	var ownerID *uuid.UUID
	if !canManageAll {
		ownerID = &callerID
	}

	event, err := s.eventRepo.GetEventScoped(ctx, eventID, ownerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if event == nil {
		return utils.ErrEventNotFound
	}

	if err := s.eventRepo.SoftDeleteEvent(ctx, eventID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// parseResponsibleIDs keeps the first two entries; extras are dropped
// silently.
func parseResponsibleIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) > maxResponsibles {
		raw = raw[:maxResponsibles]
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		ids = append(ids, id)
	}
	return ids, nil
}

package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "cargocal/internal/models/db_models"
)

// EventFilter narrows down events; all set fields compose with AND.
type EventFilter struct {
	// CalendarIDs bounds visibility; empty means unrestricted.
	CalendarIDs []uuid.UUID
	// VisibleToUserID restricts to events the user may see: events in
	// calendars they own plus events where they hold an active charge.
	VisibleToUserID *uuid.UUID
	// StartDate/EndDate match events having at least one day inside
	// the inclusive window.
	StartDate *time.Time
	EndDate   *time.Time
	// ResponsibleUserID matches events where that user holds an active
	// charge, regardless of its status.
	ResponsibleUserID *uuid.UUID
	// ChargeHolderID restricts to events where this user holds an
	// active charge (the only-my-charges switch).
	ChargeHolderID *uuid.UUID
	// Status matches events where any active charge has that status.
	Status *dbm.ChargeStatus
	// Priority is an exact match.
	Priority *int
}

type EventRepository interface {
	CreateEvent(ctx context.Context, event *dbm.CalendarEvent, days []time.Time, responsibleIDs []uuid.UUID, actorID uuid.UUID) error
	GetEventByID(ctx context.Context, eventID uuid.UUID) (*dbm.CalendarEvent, error)
	GetEventScoped(ctx context.Context, eventID uuid.UUID, ownerID *uuid.UUID) (*dbm.CalendarEvent, error)
	ListEvents(ctx context.Context, filter EventFilter) ([]dbm.CalendarEvent, error)
	SaveEvent(ctx context.Context, event *dbm.CalendarEvent, newDays []time.Time, newResponsibles *[]uuid.UUID, actorID uuid.UUID) error
	SoftDeleteEvent(ctx context.Context, eventID uuid.UUID) error
	CountEventsByActivity(ctx context.Context, activityID uuid.UUID) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) CreateEvent(
	ctx context.Context,
	event *dbm.CalendarEvent,
	days []time.Time,
	responsibleIDs []uuid.UUID,
	actorID uuid.UUID,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		if err := createEventDaysTx(tx, event, days); err != nil {
			return err
		}
		return createChargesTx(tx, event.CalendarID, event.ID, responsibleIDs, actorID, time.Now())
	})
}

func (r *eventRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Activity").
		Preload("Container").
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Preload("Charges")
}

func (r *eventRepository) GetEventByID(ctx context.Context, eventID uuid.UUID) (*dbm.CalendarEvent, error) {
	var event dbm.CalendarEvent
	err := r.preloaded(ctx).First(&event, "id = ?", eventID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// GetEventScoped loads an event only when it belongs to a calendar
// owned by ownerID. A nil ownerID skips the scope check.
func (r *eventRepository) GetEventScoped(ctx context.Context, eventID uuid.UUID, ownerID *uuid.UUID) (*dbm.CalendarEvent, error) {
	q := r.preloaded(ctx).Where("id = ?", eventID)
	if ownerID != nil {
		q = q.Where("calendar_id IN (?)",
			r.db.Model(&dbm.Calendar{}).Select("id").Where("user_id = ?", *ownerID))
	}

	var event dbm.CalendarEvent
	if err := q.First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) ListEvents(ctx context.Context, f EventFilter) ([]dbm.CalendarEvent, error) {
	q := r.preloaded(ctx)

	if len(f.CalendarIDs) > 0 {
		q = q.Where("calendar_id IN ?", f.CalendarIDs)
	}
	if f.VisibleToUserID != nil {
		owned := r.db.Model(&dbm.Calendar{}).Select("id").Where("user_id = ?", *f.VisibleToUserID)
		charged := activeChargeEventsQuery(r.db).Where("user_id = ?", *f.VisibleToUserID)
		q = q.Where(
			r.db.Where("calendar_id IN (?)", owned).Or("id IN (?)", charged),
		)
	}
	if f.StartDate != nil && f.EndDate != nil {
		sub := r.db.Model(&dbm.EventDay{}).
			Select("calendar_event_id").
			Where("date BETWEEN ? AND ?", *f.StartDate, *f.EndDate)
		q = q.Where("id IN (?)", sub)
	}
	if f.ResponsibleUserID != nil {
		q = q.Where("id IN (?)", activeChargeEventsQuery(r.db).Where("user_id = ?", *f.ResponsibleUserID))
	}
	if f.ChargeHolderID != nil {
		q = q.Where("id IN (?)", activeChargeEventsQuery(r.db).Where("user_id = ?", *f.ChargeHolderID))
	}
	if f.Status != nil {
		q = q.Where("id IN (?)", activeChargeEventsQuery(r.db).Where("status = ?", *f.Status))
	}
	if f.Priority != nil {
		q = q.Where("priority = ?", *f.Priority)
	}

	var events []dbm.CalendarEvent
	if err := q.Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// SaveEvent persists field edits and, inside one transaction,
// regenerates days when newDays is non-nil and replaces the active
// charge set when newResponsibles is non-nil. Replaced charges are
// soft-removed so their tracking history survives.
func (r *eventRepository) SaveEvent(
	ctx context.Context,
	event *dbm.CalendarEvent,
	newDays []time.Time,
	newResponsibles *[]uuid.UUID,
	actorID uuid.UUID,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Activity", "Container", "Days", "Charges").Save(event).Error; err != nil {
			return err
		}

		if newDays != nil {
			if err := tx.Unscoped().
				Where("calendar_event_id = ?", event.ID).
				Delete(&dbm.EventDay{}).Error; err != nil {
				return err
			}
			if err := createEventDaysTx(tx, event, newDays); err != nil {
				return err
			}
		}

		if newResponsibles != nil {
			now := time.Now()
			if err := tx.Model(&dbm.EventCharge{}).
				Where("calendar_event_id = ? AND removed_at IS NULL", event.ID).
				Update("removed_at", now).Error; err != nil {
				return err
			}
			if err := createChargesTx(tx, event.CalendarID, event.ID, *newResponsibles, actorID, now); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *eventRepository) SoftDeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&dbm.CalendarEvent{}, "id = ?", eventID).Error
}

func (r *eventRepository) CountEventsByActivity(ctx context.Context, activityID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.CalendarEvent{}).
		Where("activity_id = ?", activityID).
		Count(&n).Error
	return n, err
}

func activeChargeEventsQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&dbm.EventCharge{}).
		Select("calendar_event_id").
		Where("removed_at IS NULL")
}

func createEventDaysTx(tx *gorm.DB, event *dbm.CalendarEvent, days []time.Time) error {
	if len(days) == 0 {
		return nil
	}
	rows := make([]dbm.EventDay, 0, len(days))
	for _, d := range days {
		rows = append(rows, dbm.EventDay{
			CalendarID:      event.CalendarID,
			CalendarEventID: event.ID,
			Date:            d,
		})
	}
	return tx.Create(&rows).Error
}

// createChargesTx creates one PENDIENTE charge per user and logs the
// initial assignment in the tracking table. Every creation path goes
// through here so the audit log always starts at the assignment.
func createChargesTx(tx *gorm.DB, calendarID, eventID uuid.UUID, userIDs []uuid.UUID, actorID uuid.UUID, now time.Time) error {
	for _, userID := range userIDs {
		charge := dbm.EventCharge{
			CalendarID:      calendarID,
			CalendarEventID: eventID,
			UserID:          userID,
			Status:          dbm.ChargePending,
			AssignedAt:      now,
		}
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
		if err := tx.Create(&track).Error; err != nil {
			return err
		}
	}
	return nil
}

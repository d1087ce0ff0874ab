package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	dbm "cargocal/internal/models/db_models"
	"cargocal/internal/models/response_models"
	"cargocal/internal/repositories"
	"cargocal/pkg/utils"
)

type ProgressServiceInterface interface {
	GetProgress(ctx context.Context, startDate, endDate *time.Time, calendarID *uuid.UUID) (*response_models.ProgressResponse, error)
}

type ProgressService struct {
	eventRepo   repositories.EventRepository
	colorRepo   repositories.ColorRepository
	accountRepo repositories.AccountRepository
}

func NewProgressService(
	eventRepo repositories.EventRepository,
	colorRepo repositories.ColorRepository,
	accountRepo repositories.AccountRepository,
) ProgressServiceInterface {
	return &ProgressService{
		eventRepo:   eventRepo,
		colorRepo:   colorRepo,
		accountRepo: accountRepo,
	}
}

type userBucket struct {
	total      int
	pendiente  int
	enProgreso int
	completado int
}

func (s *ProgressService) GetProgress(ctx context.Context, startDate, endDate *time.Time, calendarID *uuid.UUID) (*response_models.ProgressResponse, error) {
	filter := repositories.EventFilter{
		StartDate: startDate,
		EndDate:   endDate,
	}
	if calendarID != nil {
		filter.CalendarIDs = []uuid.UUID{*calendarID}
	}

	events, err := s.eventRepo.ListEvents(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resumen := response_models.TeamProgress{Total: len(events)}
	perUser := make(map[uuid.UUID]*userBucket)

	for i := range events {
		active := activeCharges(&events[i])

		switch classifyEvent(active) {
		case dbm.ChargeCompleted:
			resumen.Completados++
		case dbm.ChargeInProgress:
			resumen.EnProgreso++
		default:
			resumen.Pendientes++
		}

		for _, c := range active {
			bucket := perUser[c.UserID]
			if bucket == nil {
				bucket = &userBucket{}
				perUser[c.UserID] = bucket
			}
			bucket.total++
			switch c.Status {
			case dbm.ChargeCompleted:
				bucket.completado++
			case dbm.ChargeInProgress:
				bucket.enProgreso++
			default:
				bucket.pendiente++
			}
		}
	}

	resumen.PorcentajeCompletado = percentage(resumen.Completados, resumen.Total)

	breakdown, err := s.buildBreakdown(ctx, perUser, calendarID)
	if err != nil {
		return nil, err
	}

	return &response_models.ProgressResponse{
		Resumen:        resumen,
		PorResponsable: breakdown,
	}, nil
}

func (s *ProgressService) buildBreakdown(ctx context.Context, perUser map[uuid.UUID]*userBucket, calendarID *uuid.UUID) ([]response_models.ResponsibleProgress, error) {
	ids := make([]uuid.UUID, 0, len(perUser))
	for id := range perUser {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	accounts, err := s.accountRepo.FindByIds(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	names := make(map[uuid.UUID]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}

	out := make([]response_models.ResponsibleProgress, 0, len(ids))
	for _, id := range ids {
		bucket := perUser[id]
		row := response_models.ResponsibleProgress{
			UserID:               id.String(),
			UserName:             names[id],
			Total:                bucket.total,
			Pendientes:           bucket.pendiente,
			EnProgreso:           bucket.enProgreso,
			Completados:          bucket.completado,
			PorcentajeCompletado: percentage(bucket.completado, bucket.total),
		}

		var cfg *dbm.UserColorConfig
		if calendarID != nil {
			cfg, err = s.colorRepo.GetColor(ctx, *calendarID, id)
		} else {
			cfg, err = s.colorRepo.GetAnyColorForUser(ctx, id)
		}
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if cfg != nil {
			row.Color = cfg.ColorCode
		}

		out = append(out, row)
	}
	return out, nil
}

func activeCharges(event *dbm.CalendarEvent) []dbm.EventCharge {
	active := make([]dbm.EventCharge, 0, len(event.Charges))
	for _, c := range event.Charges {
		if c.Active() {
			active = append(active, c)
		}
	}
	return active
}

// classifyEvent buckets an event by the state of its active charges:
// completed when all are COMPLETADO, in progress when any charge moved
// past PENDIENTE, pending otherwise (including no charges at all).
func classifyEvent(active []dbm.EventCharge) dbm.ChargeStatus {
	if len(active) == 0 {
		return dbm.ChargePending
	}

	allCompleted := true
	anyMoved := false
	for _, c := range active {
		if c.Status != dbm.ChargeCompleted {
			allCompleted = false
		}
		if c.Status.Rank() > dbm.ChargePending.Rank() {
			anyMoved = true
		}
	}

	if allCompleted {
		return dbm.ChargeCompleted
	}
	if anyMoved {
		return dbm.ChargeInProgress
	}
	return dbm.ChargePending
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

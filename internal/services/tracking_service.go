package services

import (
	"context"

	"github.com/google/uuid"

	dbm "cargocal/internal/models/db_models"
	"cargocal/internal/models/response_models"
	"cargocal/internal/repositories"
	"cargocal/pkg/utils"
)

type TrackingServiceInterface interface {
	GetTrackingForCharge(ctx context.Context, chargeID, callerID uuid.UUID, canSeeAll bool) ([]response_models.TrackingEntryResponse, error)
	GetTrackingForActivity(ctx context.Context, eventID, callerID uuid.UUID, canSeeAll bool) ([]response_models.TrackingEntryResponse, error)
}

type TrackingService struct {
	chargeRepo  repositories.ChargeRepository
	eventRepo   repositories.EventRepository
	accountRepo repositories.AccountRepository
}

func NewTrackingService(
	chargeRepo repositories.ChargeRepository,
	eventRepo repositories.EventRepository,
	accountRepo repositories.AccountRepository,
) TrackingServiceInterface {
	return &TrackingService{
		chargeRepo:  chargeRepo,
		eventRepo:   eventRepo,
		accountRepo: accountRepo,
	}
}

func (s *TrackingService) GetTrackingForCharge(ctx context.Context, chargeID, callerID uuid.UUID, canSeeAll bool) ([]response_models.TrackingEntryResponse, error) {
	charge, err := s.chargeRepo.GetChargeByID(ctx, chargeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if charge == nil {
		return nil, utils.ErrChargeNotFound
	}
	if !canSeeAll && charge.UserID != callerID {
		return nil, utils.ErrChargeNotFound
	}

	rows, err := s.chargeRepo.ListTrackingByCharge(ctx, chargeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	owners := map[uuid.UUID]uuid.UUID{charge.ID: charge.UserID}
	return s.buildEntries(ctx, rows, owners)
}

func (s *TrackingService) GetTrackingForActivity(ctx context.Context, eventID, callerID uuid.UUID, canSeeAll bool) ([]response_models.TrackingEntryResponse, error) {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	if !canSeeAll {
		holds := false
		for i := range event.Charges {
			if event.Charges[i].Active() && event.Charges[i].UserID == callerID {
				holds = true
				break
			}
		}
		if !holds {
			return nil, utils.ErrEventNotFound
		}
	}

	rows, err := s.chargeRepo.ListTrackingByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Removed charges stay in the preloaded set, so history rows of
	// past responsibles still resolve to their holder.
	owners := make(map[uuid.UUID]uuid.UUID, len(event.Charges))
	for i := range event.Charges {
		owners[event.Charges[i].ID] = event.Charges[i].UserID
	}
	return s.buildEntries(ctx, rows, owners)
}

// buildEntries enriches raw tracking rows with the display fields of
// the charge holder and the acting user.
func (s *TrackingService) buildEntries(ctx context.Context, rows []dbm.ChargeTracking, owners map[uuid.UUID]uuid.UUID) ([]response_models.TrackingEntryResponse, error) {
	idSet := make(map[uuid.UUID]struct{})
	for _, row := range rows {
		idSet[row.ChangedBy] = struct{}{}
		if owner, ok := owners[row.CalendarEventChargeID]; ok {
			idSet[owner] = struct{}{}
		}
	}
	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	accounts, err := s.accountRepo.FindByIds(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	names := make(map[uuid.UUID]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}

	out := make([]response_models.TrackingEntryResponse, 0, len(rows))
	for _, row := range rows {
		entry := response_models.TrackingEntryResponse{
			ID:          row.ID.String(),
			ChargeID:    row.CalendarEventChargeID.String(),
			ToStatus:    string(row.ToStatus),
			ChangedAt:   utils.FormatRFC3339(row.ChangedAt),
			ChangedByID: row.ChangedBy.String(),
		}
		if row.FromStatus != nil {
			from := string(*row.FromStatus)
			entry.FromStatus = &from
		}
		entry.ChangedByName = names[row.ChangedBy]
		if owner, ok := owners[row.CalendarEventChargeID]; ok {
			entry.ResponsibleID = owner.String()
			entry.ResponsibleName = names[owner]
		}
		out = append(out, entry)
	}
	return out, nil
}

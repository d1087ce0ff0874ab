package services

import (
	"context"

	"github.com/google/uuid"

	dbm "cargocal/internal/models/db_models"
	"cargocal/internal/models/response_models"
	"cargocal/internal/repositories"
	"cargocal/pkg/utils"
)

type ChargeServiceInterface interface {
	UpdateChargeStatus(ctx context.Context, chargeID, callerID uuid.UUID, newStatus dbm.ChargeStatus, changedBy *uuid.UUID, mustOwn bool) (*response_models.ChargeResponse, error)
	AddResponsable(ctx context.Context, eventID, userIDToAssign, requestUserID uuid.UUID) (*response_models.ChargeResponse, error)
	RemoveResponsable(ctx context.Context, eventID, userIDToRemove, requestUserID uuid.UUID) error
}

type ChargeService struct {
	chargeRepo repositories.ChargeRepository
	eventRepo  repositories.EventRepository
}

func NewChargeService(chargeRepo repositories.ChargeRepository, eventRepo repositories.EventRepository) ChargeServiceInterface {
	return &ChargeService{
		chargeRepo: chargeRepo,
		eventRepo:  eventRepo,
	}
}

// UpdateChargeStatus moves a charge through its lifecycle. A same-status
// call is a no-op that writes nothing. The controller decides who may
// act and passes mustOwn when the caller can only touch their own
// charges; an out-of-scope target reads as absent.
func (s *ChargeService) UpdateChargeStatus(
	ctx context.Context,
	chargeID, callerID uuid.UUID,
	newStatus dbm.ChargeStatus,
	changedBy *uuid.UUID,
	mustOwn bool,
) (*response_models.ChargeResponse, error) {
	if !newStatus.Valid() {
		return nil, utils.ErrInvalidInput
	}

	charge, err := s.chargeRepo.GetChargeByID(ctx, chargeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if charge == nil || !charge.Active() {
		return nil, utils.ErrChargeNotFound
	}
	if mustOwn && charge.UserID != callerID {
		return nil, utils.ErrChargeNotFound
	}

	if charge.Status == newStatus {
		out := response_models.BuildChargeResponse(charge)
		return &out, nil
	}

	actor := callerID
	if changedBy != nil {
		actor = *changedBy
	}

	previous := charge.Status
	if err := s.chargeRepo.UpdateChargeStatus(ctx, charge, previous, newStatus, actor); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := response_models.BuildChargeResponse(charge)
	out.PreviousStatus = string(previous)
	return &out, nil
}

func (s *ChargeService) AddResponsable(ctx context.Context, eventID, userIDToAssign, requestUserID uuid.UUID) (*response_models.ChargeResponse, error) {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	active, err := s.chargeRepo.CountActiveCharges(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if active >= maxResponsibles {
		return nil, utils.ErrChargeLimitReached
	}

	existing, err := s.chargeRepo.GetActiveCharge(ctx, eventID, userIDToAssign)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrAlreadyAssigned
	}

	charge, err := s.chargeRepo.CreateCharge(ctx, event.CalendarID, eventID, userIDToAssign, requestUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := response_models.BuildChargeResponse(charge)
	return &out, nil
}

func (s *ChargeService) RemoveResponsable(ctx context.Context, eventID, userIDToRemove, requestUserID uuid.UUID) error {
	charge, err := s.chargeRepo.GetActiveCharge(ctx, eventID, userIDToRemove)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if charge == nil {
		return utils.ErrChargeNotFound
	}

	if err := s.chargeRepo.SoftRemoveCharge(ctx, charge.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

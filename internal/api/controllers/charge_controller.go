package controllers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	dbm "cargocal/internal/models/db_models"
	"cargocal/internal/models/request_models"
	"cargocal/internal/policy"
	"cargocal/internal/services"
	"cargocal/internal/ws"
	"cargocal/pkg/middleware"
	"cargocal/pkg/utils"
)

type ChargeController struct {
	chargeService  services.ChargeServiceInterface
	eventService   services.EventServiceInterface
	accountService services.AccountServiceInterface
	mailService    services.IMailService
	broadcaster    *ws.Broadcaster
}

func NewChargeController(
	chargeService services.ChargeServiceInterface,
	eventService services.EventServiceInterface,
	accountService services.AccountServiceInterface,
	mailService services.IMailService,
	broadcaster *ws.Broadcaster,
) *ChargeController {
	return &ChargeController{
		chargeService:  chargeService,
		eventService:   eventService,
		accountService: accountService,
		mailService:    mailService,
		broadcaster:    broadcaster,
	}
}

// UpdateChargeStatus godoc
// @Summary Update a charge's lifecycle status
// @Description Same-status calls are a no-op; transitions append one tracking row
// @Tags Calendar
// @Accept json
// @Produce json
// @Param chargeId path string true "Charge ID"
// @Param request body request_models.UpdateChargeStatusRequest true "New status"
// @Security BearerAuth
// @Router /calendar/charges/{chargeId}/status [put]
func (h *ChargeController) UpdateChargeStatus(c *gin.Context) {
	chargeID, err := uuid.Parse(c.Param("chargeId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid charge id")
		return
	}

	var req request_models.UpdateChargeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "status is required")
		return
	}

	role := middleware.CallerRole(c)
	if !policy.CanUpdateOwnChargeStatus(role) {
		utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
		return
	}

	// Only the manager may act on behalf of someone else.
	var changedBy *uuid.UUID
	if req.ChangedBy != nil && policy.CanUpdateAnyChargeStatus(role) {
		id, err := uuid.Parse(*req.ChangedBy)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid changed_by")
			return
		}
		changedBy = &id
	}

	charge, err := h.chargeService.UpdateChargeStatus(
		c.Request.Context(),
		chargeID,
		middleware.CallerID(c),
		dbm.ChargeStatus(req.Status),
		changedBy,
		!policy.CanUpdateAnyChargeStatus(role),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// PreviousStatus is only set on a real transition; same-status
	// no-ops stay silent.
	if charge.PreviousStatus != "" {
		h.broadcaster.BroadcastChargeStatusChanged(charge.ID, charge.EventID, charge.UserID, charge.PreviousStatus, charge.Status)
	}
	utils.RespondSuccess(c, charge, "Charge status updated")
}

// AddResponsable godoc
// @Summary Assign a responsible to an event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param request body request_models.AddResponsableRequest true "User to assign"
// @Security BearerAuth
// @Router /calendar/events/{eventId}/responsables [post]
func (h *ChargeController) AddResponsable(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	var req request_models.AddResponsableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user_id")
		return
	}

	charge, err := h.chargeService.AddResponsable(c.Request.Context(), eventID, userID, middleware.CallerID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	h.broadcaster.BroadcastChargeAssigned(charge.ID, charge.EventID, charge.UserID)
	go h.notifyAssignment(eventID, userID)

	utils.RespondSuccess(c, charge, "Responsible assigned")
}

func (h *ChargeController) RemoveResponsable(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.chargeService.RemoveResponsable(c.Request.Context(), eventID, userID, middleware.CallerID(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	h.broadcaster.BroadcastChargeRemoved(eventID.String(), userID.String())
	utils.RespondSuccess(c, nil, "Responsible removed")
}

// notifyAssignment mails the assigned user. Fire-and-forget: the
// assignment already committed, a mail failure only gets logged.
func (h *ChargeController) notifyAssignment(eventID, userID uuid.UUID) {
	ctx := context.Background()

	account, err := h.accountService.GetAccountById(ctx, userID)
	if err != nil {
		log.Printf("Assignment mail skipped, account lookup failed: %v", err)
		return
	}
	event, err := h.eventService.GetEventById(ctx, eventID, userID, true)
	if err != nil {
		log.Printf("Assignment mail skipped, event lookup failed: %v", err)
		return
	}

	if err := h.mailService.SendAssignmentNotification(account.Email, event.Name, event.StartDate, event.EndDate); err != nil {
		log.Printf("Error sending assignment mail: %v", err)
	}
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cargocal/internal/policy"
	"cargocal/internal/services"
	"cargocal/pkg/middleware"
	"cargocal/pkg/utils"
)

type TrackingController struct {
	trackingService services.TrackingServiceInterface
}

func NewTrackingController(trackingService services.TrackingServiceInterface) *TrackingController {
	return &TrackingController{trackingService: trackingService}
}

// GetTrackingForCharge returns the full transition history of one
// charge, oldest first. Visible to the charge holder and the manager.
func (t *TrackingController) GetTrackingForCharge(c *gin.Context) {
	chargeID, err := uuid.Parse(c.Param("chargeId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid charge id")
		return
	}

	role := middleware.CallerRole(c)
	rows, err := t.trackingService.GetTrackingForCharge(c.Request.Context(), chargeID, middleware.CallerID(c), policy.CanViewTeamProgress(role))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rows, "Tracking fetched successfully")
}

// GetTrackingForActivity spans all charges under one event.
func (t *TrackingController) GetTrackingForActivity(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	role := middleware.CallerRole(c)
	rows, err := t.trackingService.GetTrackingForActivity(c.Request.Context(), eventID, middleware.CallerID(c), policy.CanViewTeamProgress(role))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rows, "Tracking fetched successfully")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cargocal/internal/models/request_models"
	"cargocal/internal/services"
	"cargocal/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{activityService: activityService}
}

func (a *ActivityController) ListActivities(c *gin.Context) {
	activities, err := a.activityService.ListActivities(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}

func (a *ActivityController) CreateActivity(c *gin.Context) {
	var req request_models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "name is required (2-100 chars)")
		return
	}

	activity, err := a.activityService.CreateActivity(c.Request.Context(), req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activity, "Activity created successfully")
}

func (a *ActivityController) UpdateActivity(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return
	}

	var req request_models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "name is required (2-100 chars)")
		return
	}

	activity, err := a.activityService.UpdateActivity(c.Request.Context(), activityID, req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

func (a *ActivityController) DeleteActivity(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return
	}

	if err := a.activityService.DeleteActivity(c.Request.Context(), activityID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Activity deleted successfully")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cargocal/internal/models/request_models"
	"cargocal/internal/services"
	"cargocal/pkg/utils"
)

type ColorController struct {
	colorService services.ColorServiceInterface
}

func NewColorController(colorService services.ColorServiceInterface) *ColorController {
	return &ColorController{colorService: colorService}
}

func (h *ColorController) SetColor(c *gin.Context) {
	var req request_models.SetColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "calendar_id, user_id and color_code are required")
		return
	}

	calendarID, err := uuid.Parse(req.CalendarID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid calendar_id")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user_id")
		return
	}

	if err := h.colorService.SetColor(c.Request.Context(), calendarID, userID, req.ColorCode); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Color saved successfully")
}

func (h *ColorController) ListColors(c *gin.Context) {
	calendarID, err := uuid.Parse(c.Query("calendar_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid calendar_id")
		return
	}

	colors, err := h.colorService.ListColors(c.Request.Context(), calendarID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, colors, "Colors fetched successfully")
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cargocal/internal/services"
	"cargocal/pkg/utils"
)

type ProgressController struct {
	progressService services.ProgressServiceInterface
}

func NewProgressController(progressService services.ProgressServiceInterface) *ProgressController {
	return &ProgressController{progressService: progressService}
}

// GetProgress godoc
// @Summary Team and per-responsible completion progress
// @Tags Calendar
// @Produce json
// @Param start_date query string false "Window start (YYYY-MM-DD)"
// @Param end_date query string false "Window end (YYYY-MM-DD)"
// @Param calendar_id query string false "Restrict to one calendar"
// @Security BearerAuth
// @Router /calendar/progress [get]
func (p *ProgressController) GetProgress(c *gin.Context) {
	var startDate, endDate *time.Time
	if v := c.Query("start_date"); v != "" {
		start, err := utils.ParseDate(v)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid start_date")
			return
		}
		startDate = &start
	}
	if v := c.Query("end_date"); v != "" {
		end, err := utils.ParseDate(v)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid end_date")
			return
		}
		endDate = &end
	}

	var calendarID *uuid.UUID
	if v := c.Query("calendar_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid calendar_id")
			return
		}
		calendarID = &id
	}

	progress, err := p.progressService.GetProgress(c.Request.Context(), startDate, endDate, calendarID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, progress, "Progress computed successfully")
}

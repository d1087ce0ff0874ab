package controllers

import (
	"net/http"
	"strconv"

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

type EventController struct {
	eventService services.EventServiceInterface
	broadcaster  *ws.Broadcaster
}

func NewEventController(eventService services.EventServiceInterface, broadcaster *ws.Broadcaster) *EventController {
	return &EventController{
		eventService: eventService,
		broadcaster:  broadcaster,
	}
}

// ListEvents godoc
// @Summary List calendar events
// @Description Fetch events visible to the caller, with optional filters
// @Tags Calendar
// @Produce json
// @Param start_date query string false "Window start (YYYY-MM-DD)"
// @Param end_date query string false "Window end (YYYY-MM-DD)"
// @Param responsible_id query string false "Filter by responsible user"
// @Param status query string false "Filter by any-charge status"
// @Param priority query int false "Exact priority match"
// @Param only_mine query bool false "Restrict to the caller's charges"
// @Security BearerAuth
// @Router /calendar/events [get]
func (e *EventController) ListEvents(c *gin.Context) {
	role := middleware.CallerRole(c)
	q := services.ListEventsQuery{
		CallerID:      middleware.CallerID(c),
		CanSeeAll:     policy.CanSeeAllCalendars(role),
		OnlyMyCharges: c.Query("only_mine") == "true",
	}

	if v := c.Query("start_date"); v != "" {
		start, err := utils.ParseDate(v)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid start_date")
			return
		}
		end := start
		if w := c.Query("end_date"); w != "" {
			if end, err = utils.ParseDate(w); err != nil {
				utils.RespondError(c, http.StatusBadRequest, "Invalid end_date")
				return
			}
		}
		q.StartDate = &start
		q.EndDate = &end
	}
	if v := c.Query("responsible_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid responsible_id")
			return
		}
		q.ResponsibleUserID = &id
	}
	if v := c.Query("status"); v != "" {
		status := dbm.ChargeStatus(v)
		if !status.Valid() {
			utils.RespondError(c, http.StatusBadRequest, "Invalid status")
			return
		}
		q.Status = &status
	}
	if v := c.Query("priority"); v != "" {
		priority, err := strconv.Atoi(v)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid priority")
			return
		}
		q.Priority = &priority
	}

	events, err := e.eventService.ListEvents(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Events fetched successfully")
}

func (e *EventController) GetEventById(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	role := middleware.CallerRole(c)
	event, err := e.eventService.GetEventById(c.Request.Context(), eventID, middleware.CallerID(c), policy.CanSeeAllCalendars(role))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event fetched successfully")
}

// CreateEvent godoc
// @Summary Create a calendar event
// @Description Creates the event, expands its day range and assigns up to two responsibles
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body request_models.CreateEventRequest true "Event data"
// @Security BearerAuth
// @Router /calendar/events [post]
func (e *EventController) CreateEvent(c *gin.Context) {
	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "start_date and end_date are required")
		return
	}

	event, err := e.eventService.CreateEvent(c.Request.Context(), middleware.CallerID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	e.broadcaster.BroadcastEventCreated(event.ID, event.CalendarID, event.Name)
	utils.RespondSuccess(c, event, "Event created successfully")
}

func (e *EventController) UpdateEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	var req request_models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	role := middleware.CallerRole(c)
	event, err := e.eventService.UpdateEvent(c.Request.Context(), eventID, middleware.CallerID(c), req, policy.CanManageAssignments(role))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	e.broadcaster.BroadcastEventUpdated(event.ID, event.CalendarID, event.Name)
	utils.RespondSuccess(c, event, "Event updated successfully")
}

func (e *EventController) DeleteEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	role := middleware.CallerRole(c)
	err = e.eventService.DeleteEvent(c.Request.Context(), eventID, middleware.CallerID(c), policy.CanManageAssignments(role))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	e.broadcaster.BroadcastEventDeleted(eventID.String())
	utils.RespondSuccess(c, nil, "Event deleted successfully")
}

package response_models

import (
	dbm "cargocal/internal/models/db_models"
	"cargocal/pkg/utils"
)

type ContainerSummary struct {
	ID     string `json:"id"`
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}

type ChargeResponse struct {
	ID      string `json:"id"`
	EventID string `json:"event_id"`
	UserID  string `json:"user_id"`
	Status  string `json:"status"`
	// PreviousStatus is set only when the operation actually moved the
	// charge; empty on reads and same-status no-ops.
	PreviousStatus string `json:"previous_status,omitempty"`
	Notes          string `json:"notes,omitempty"`
	AssignedAt     string `json:"assigned_at"`
	RemovedAt      string `json:"removed_at,omitempty"`
}

type EventResponse struct {
	ID         string            `json:"id"`
	CalendarID string            `json:"calendar_id"`
	ActivityID string            `json:"activity_id,omitempty"`
	Name       string            `json:"name"`
	Priority   int               `json:"priority"`
	Notes      string            `json:"notes,omitempty"`
	StartDate  string            `json:"start_date"`
	EndDate    string            `json:"end_date"`
	Days       []string          `json:"days"`
	Container  *ContainerSummary `json:"contenedor,omitempty"`
	Charges    []ChargeResponse  `json:"responsables"`
	CreatedAt  int64             `json:"created_at"`
}

func BuildChargeResponse(c *dbm.EventCharge) ChargeResponse {
	out := ChargeResponse{
		ID:         c.ID.String(),
		EventID:    c.CalendarEventID.String(),
		UserID:     c.UserID.String(),
		Status:     string(c.Status),
		Notes:      c.Notes,
		AssignedAt: utils.FormatRFC3339(c.AssignedAt),
	}
	if c.RemovedAt != nil {
		out.RemovedAt = utils.FormatRFC3339(*c.RemovedAt)
	}
	return out
}

// BuildEventResponse renders a hydrated event. Only active charges are
// exposed; soft-removed ones stay internal as audit data.
func BuildEventResponse(event *dbm.CalendarEvent) *EventResponse {
	out := &EventResponse{
		ID:         event.ID.String(),
		CalendarID: event.CalendarID.String(),
		Name:       event.Name,
		Priority:   event.Priority,
		Notes:      event.Notes,
		StartDate:  utils.FormatDate(event.StartDate),
		EndDate:    utils.FormatDate(event.EndDate),
		Days:       make([]string, 0, len(event.Days)),
		Charges:    []ChargeResponse{},
		CreatedAt:  event.CreatedAt,
	}
	if event.ActivityID != nil {
		out.ActivityID = event.ActivityID.String()
	}
	if event.Container != nil {
		out.Container = &ContainerSummary{
			ID:     event.Container.ID.String(),
			Codigo: event.Container.Codigo,
			Nombre: event.Container.Nombre,
		}
	}
	for _, day := range event.Days {
		out.Days = append(out.Days, utils.FormatDate(day.Date))
	}
	for i := range event.Charges {
		if event.Charges[i].Active() {
			out.Charges = append(out.Charges, BuildChargeResponse(&event.Charges[i]))
		}
	}
	return out
}

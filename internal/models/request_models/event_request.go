package request_models

type CreateEventRequest struct {
	ActivityID         *string  `json:"activity_id"`
	Name               *string  `json:"name"`
	Title              *string  `json:"title"`
	StartDate          string   `json:"start_date" binding:"required"`
	EndDate            string   `json:"end_date" binding:"required"`
	ResponsibleUserIDs []string `json:"responsible_user_ids"`
	ContainerID        *string  `json:"contenedor_id"`
	Notes              string   `json:"notes"`
	Priority           int      `json:"priority"`
}

// UpdateEventRequest is a patch: only keys present in the JSON body are
// applied. Pointer-to-slice distinguishes an absent responsibles key
// from an explicitly empty list (which clears all charges).
type UpdateEventRequest struct {
	Name               *string   `json:"name"`
	Title              *string   `json:"title"`
	Notes              *string   `json:"notes"`
	ActivityID         *string   `json:"activity_id"`
	ContainerID        *string   `json:"contenedor_id"`
	Priority           *int      `json:"priority"`
	StartDate          *string   `json:"start_date"`
	EndDate            *string   `json:"end_date"`
	ResponsibleUserIDs *[]string `json:"responsible_user_ids"`
	ResponsableIDs     *[]string `json:"responsable_ids"`
}

package response_models

type TrackingEntryResponse struct {
	ID              string  `json:"id"`
	ChargeID        string  `json:"charge_id"`
	FromStatus      *string `json:"from_status"`
	ToStatus        string  `json:"to_status"`
	ChangedAt       string  `json:"changed_at"`
	ResponsibleID   string  `json:"responsible_id"`
	ResponsibleName string  `json:"responsible_name,omitempty"`
	ChangedByID     string  `json:"changed_by_id"`
	ChangedByName   string  `json:"changed_by_name,omitempty"`
}

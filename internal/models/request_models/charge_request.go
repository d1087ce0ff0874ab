package request_models

type UpdateChargeStatusRequest struct {
	Status    string  `json:"status" binding:"required"`
	ChangedBy *string `json:"changed_by"`
}

type AddResponsableRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

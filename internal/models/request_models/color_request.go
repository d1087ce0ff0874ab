package request_models

type SetColorRequest struct {
	CalendarID string `json:"calendar_id" binding:"required"`
	UserID     string `json:"user_id" binding:"required"`
	ColorCode  string `json:"color_code" binding:"required,min=4,max=20"`
}

package response_models

type ActivityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ColorConfigResponse struct {
	CalendarID string `json:"calendar_id"`
	UserID     string `json:"user_id"`
	ColorCode  string `json:"color_code"`
}

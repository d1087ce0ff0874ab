package request_models

type ActivityRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

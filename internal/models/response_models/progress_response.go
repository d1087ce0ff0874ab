package response_models

type TeamProgress struct {
	Total                int `json:"total"`
	Completados          int `json:"completados"`
	EnProgreso           int `json:"en_progreso"`
	Pendientes           int `json:"pendientes"`
	PorcentajeCompletado int `json:"porcentaje_completado"`
}

type ResponsibleProgress struct {
	UserID               string `json:"user_id"`
	UserName             string `json:"user_name"`
	Color                string `json:"color,omitempty"`
	Total                int    `json:"total"`
	Pendientes           int    `json:"pendientes"`
	EnProgreso           int    `json:"en_progreso"`
	Completados          int    `json:"completados"`
	PorcentajeCompletado int    `json:"porcentaje_completado"`
}

type ProgressResponse struct {
	Resumen        TeamProgress          `json:"resumen"`
	PorResponsable []ResponsibleProgress `json:"por_responsable"`
}

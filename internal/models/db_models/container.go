package db_models

// Container is the consolidated-cargo shipment an event may reference.
// Owned elsewhere; this subsystem only reads its display label.
type Container struct {
	BaseModel
	Codigo string `gorm:"unique"`
	Nombre string
}

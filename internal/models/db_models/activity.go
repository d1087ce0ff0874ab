package db_models

// Activity is a catalog entry for recurring work types
// ("Carga", "Aforo", "Tramite aduanero", ...).
type Activity struct {
	BaseModel
	Name string `gorm:"unique"`
}

package color_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cargocal/internal/repositories"
	"cargocal/internal/services"
)

var Module = fx.Provide(
	provideColorRepo, provideColorService)

func provideColorRepo(db *gorm.DB) repositories.ColorRepository {
	return repositories.NewColorRepository(db)
}

func provideColorService(colorRepo repositories.ColorRepository, calendarRepo repositories.CalendarRepository) services.ColorServiceInterface {
	return services.NewColorService(colorRepo, calendarRepo)
}

package activity_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cargocal/internal/repositories"
	"cargocal/internal/services"
)

var Module = fx.Provide(
	provideActivityRepo, provideContainerRepo, provideActivityService)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideContainerRepo(db *gorm.DB) repositories.ContainerRepository {
	return repositories.NewContainerRepository(db)
}

func provideActivityService(activityRepo repositories.ActivityRepository, eventRepo repositories.EventRepository) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo, eventRepo)
}

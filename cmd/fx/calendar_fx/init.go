package calendar_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cargocal/internal/repositories"
	"cargocal/internal/services"
)

var Module = fx.Provide(
	provideCalendarRepo,
	provideEventRepo,
	provideChargeRepo,
	provideEventService,
	provideChargeService,
	provideTrackingService,
)

func provideCalendarRepo(db *gorm.DB) repositories.CalendarRepository {
	return repositories.NewCalendarRepository(db)
}

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideChargeRepo(db *gorm.DB) repositories.ChargeRepository {
	return repositories.NewChargeRepository(db)
}

func provideEventService(
	eventRepo repositories.EventRepository,
	calendarRepo repositories.CalendarRepository,
	activityRepo repositories.ActivityRepository,
) services.EventServiceInterface {
	return services.NewEventService(eventRepo, calendarRepo, activityRepo)
}

func provideChargeService(chargeRepo repositories.ChargeRepository, eventRepo repositories.EventRepository) services.ChargeServiceInterface {
	return services.NewChargeService(chargeRepo, eventRepo)
}

func provideTrackingService(
	chargeRepo repositories.ChargeRepository,
	eventRepo repositories.EventRepository,
	accountRepo repositories.AccountRepository,
) services.TrackingServiceInterface {
	return services.NewTrackingService(chargeRepo, eventRepo, accountRepo)
}

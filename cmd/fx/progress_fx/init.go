package progress_fx

import (
	"go.uber.org/fx"

	"cargocal/internal/repositories"
	"cargocal/internal/services"
)

var Module = fx.Provide(provideProgressService)

func provideProgressService(
	eventRepo repositories.EventRepository,
	colorRepo repositories.ColorRepository,
	accountRepo repositories.AccountRepository,
) services.ProgressServiceInterface {
	return services.NewProgressService(eventRepo, colorRepo, accountRepo)
}

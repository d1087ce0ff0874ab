package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cargocal/internal/repositories"
	"cargocal/internal/services"
	mem "cargocal/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, mailService services.IMailService, memcache mem.ResetTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, mailService, memcache)
}

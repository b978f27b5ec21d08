package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vestora/internal/repositories"
	"vestora/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideUserRepo)

func provideUserRepo(db *gorm.DB) repositories.IUserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(
	userRepo repositories.IUserRepository,
	settingRepo repositories.ISettingRepository,
) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, settingRepo)
}

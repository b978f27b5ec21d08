package setting_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vestora/internal/repositories"
	"vestora/internal/services"
)

var Module = fx.Provide(
	provideSettingService, provideSettingRepo)

func provideSettingRepo(db *gorm.DB) repositories.ISettingRepository {
	return repositories.NewSettingRepository(db)
}

func provideSettingService(settingRepo repositories.ISettingRepository) services.SettingServiceInterface {
	return services.NewSettingService(settingRepo)
}

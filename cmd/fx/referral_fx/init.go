package referral_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vestora/internal/repositories"
	"vestora/internal/services"
)

var Module = fx.Provide(
	provideReferralService, provideReferralRepo)

func provideReferralRepo(db *gorm.DB) repositories.IReferralRepository {
	return repositories.NewReferralRepository(db)
}

func provideReferralService(
	referralRepo repositories.IReferralRepository,
	userRepo repositories.IUserRepository,
) services.ReferralServiceInterface {
	return services.NewReferralService(referralRepo, userRepo)
}

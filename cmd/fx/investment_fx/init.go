package investment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vestora/internal/repositories"
	"vestora/internal/services"
)

var Module = fx.Provide(
	provideInvestmentService, provideInvestmentRepo)

func provideInvestmentRepo(db *gorm.DB) repositories.IInvestmentRepository {
	return repositories.NewInvestmentRepository(db)
}

func provideInvestmentService(
	db *gorm.DB,
	planRepo repositories.IPlanRepository,
	investmentRepo repositories.IInvestmentRepository,
	referralService services.ReferralServiceInterface,
) services.InvestmentServiceInterface {
	return services.NewInvestmentService(db, planRepo, investmentRepo, referralService)
}

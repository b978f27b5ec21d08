package stats_fx

import (
	"go.uber.org/fx"

	"vestora/internal/repositories"
	"vestora/internal/services"
)

var Module = fx.Provide(
	provideStatsService)

func provideStatsService(
	investmentRepo repositories.IInvestmentRepository,
	transactionRepo repositories.ITransactionRepository,
	referralRepo repositories.IReferralRepository,
	userRepo repositories.IUserRepository,
	planRepo repositories.IPlanRepository,
	settingRepo repositories.ISettingRepository,
) services.StatsServiceInterface {
	return services.NewStatsService(investmentRepo, transactionRepo, referralRepo, userRepo, planRepo, settingRepo)
}

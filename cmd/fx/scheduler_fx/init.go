package scheduler_fx

import (
	"go.uber.org/fx"

	"vestora/internal/scheduler"
	"vestora/internal/services"
)

var Module = fx.Provide(
	provideAccrualScheduler)

func provideAccrualScheduler(investmentService services.InvestmentServiceInterface) *scheduler.AccrualScheduler {
	return scheduler.NewAccrualScheduler(investmentService)
}

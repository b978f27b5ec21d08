package plan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vestora/internal/repositories"
	"vestora/internal/services"
)

var Module = fx.Provide(
	providePlanService, provideCalculatorService, providePlanRepo)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(planRepo repositories.IPlanRepository) services.PlanServiceInterface {
	return services.NewPlanService(planRepo)
}

func provideCalculatorService(planRepo repositories.IPlanRepository) services.CalculatorServiceInterface {
	return services.NewCalculatorService(planRepo)
}

package controllers_fx

import (
	"go.uber.org/fx"

	"vestora/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCalculatorController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewInvestmentController),
	fx.Provide(controllers.NewTransactionController),
	fx.Provide(controllers.NewStatsController),
	fx.Provide(controllers.NewReferralController),
	fx.Provide(controllers.NewBankController),
	fx.Provide(controllers.NewNewsletterController),
	fx.Provide(controllers.NewSettingController))

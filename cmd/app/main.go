package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vestora/cmd/fx/account_fx"
	"vestora/cmd/fx/bank_fx"
	"vestora/cmd/fx/controllers_fx"
	"vestora/cmd/fx/db_fx"
	"vestora/cmd/fx/investment_fx"
	"vestora/cmd/fx/newsletter_fx"
	"vestora/cmd/fx/plan_fx"
	"vestora/cmd/fx/referral_fx"
	"vestora/cmd/fx/scheduler_fx"
	"vestora/cmd/fx/setting_fx"
	"vestora/cmd/fx/stats_fx"
	"vestora/cmd/fx/transaction_fx"
	"vestora/internal/api/controllers"
	"vestora/internal/infra"
	"vestora/internal/scheduler"
	"vestora/internal/services"
	"vestora/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		plan_fx.Module,
		investment_fx.Module,
		transaction_fx.Module,
		referral_fx.Module,
		stats_fx.Module,
		bank_fx.Module,
		newsletter_fx.Module,
		setting_fx.Module,
		scheduler_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(SeedSettings),
		fx.Invoke(StartScheduler),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) error {
	return infra.AutoMigrate(db)
}

func SeedSettings(settingService services.SettingServiceInterface) {
	settingService.SeedDefaults(context.Background())
}

func StartScheduler(lc fx.Lifecycle, accrual *scheduler.AccrualScheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return accrual.Start()
		},
		OnStop: func(ctx context.Context) error {
			accrual.Stop()
			return nil
		},
	})
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Println("Starting HTTP server on :" + port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	calculatorController *controllers.CalculatorController,
	planController *controllers.PlanController,
	investmentController *controllers.InvestmentController,
	transactionController *controllers.TransactionController,
	statsController *controllers.StatsController,
	referralController *controllers.ReferralController,
	bankController *controllers.BankController,
	newsletterController *controllers.NewsletterController,
	settingController *controllers.SettingController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		calculatorController,
		planController,
		investmentController,
		transactionController,
		statsController,
		referralController,
		bankController,
		newsletterController,
		settingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	calculatorController *controllers.CalculatorController,
	planController *controllers.PlanController,
	investmentController *controllers.InvestmentController,
	transactionController *controllers.TransactionController,
	statsController *controllers.StatsController,
	referralController *controllers.ReferralController,
	bankController *controllers.BankController,
	newsletterController *controllers.NewsletterController,
	settingController *controllers.SettingController) {

	api := r.Group("/api")

	api.POST("/auth/register", accountController.Register)
	api.POST("/auth/login", accountController.Login)
	api.POST("/auth/admin/login", accountController.AdminLogin)

	api.GET("/plans", planController.ListActive)
	api.GET("/plans/:id", planController.Get)
	api.POST("/calculate", calculatorController.Calculate)
	api.GET("/stats", statsController.Platform)
	api.GET("/banks", bankController.ListActive)
	api.POST("/newsletter/subscribe", newsletterController.Subscribe)
	api.POST("/newsletter/unsubscribe", newsletterController.Unsubscribe)

	user := api.Group("")
	user.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("user"))
	user.GET("/me", accountController.GetProfile)
	user.GET("/me/stats", statsController.Mine)
	user.POST("/investments", investmentController.Create)
	user.GET("/investments", investmentController.ListMine)
	user.POST("/transactions", transactionController.CreateRequest)
	user.GET("/transactions", transactionController.ListMine)
	user.GET("/referrals", referralController.ListMine)

	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.GET("/plans", planController.ListAll)
	admin.POST("/plans", planController.Create)
	admin.PUT("/plans/:id", planController.Update)
	admin.DELETE("/plans/:id", planController.Deactivate)
	admin.GET("/transactions/pending", transactionController.ListPending)
	admin.PUT("/transactions/:id/approve", transactionController.Approve)
	admin.PUT("/transactions/:id/reject", transactionController.Reject)
	admin.PUT("/investments/:id/cancel", investmentController.Cancel)
	admin.GET("/banks", bankController.ListAll)
	admin.POST("/banks", bankController.Create)
	admin.PUT("/banks/:id", bankController.Update)
	admin.DELETE("/banks/:id", bankController.Deactivate)
	admin.GET("/users/:id", accountController.GetUser)
	admin.PUT("/users/:id", accountController.UpdateUser)
	admin.GET("/newsletter", newsletterController.ListActive)
	admin.GET("/settings/:key", settingController.Get)
	admin.PUT("/settings/:key", settingController.Update)
}

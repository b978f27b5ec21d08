package transaction_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vestora/internal/repositories"
	"vestora/internal/services"
)

var Module = fx.Provide(
	provideTransactionService, provideTransactionRepo)

func provideTransactionRepo(db *gorm.DB) repositories.ITransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func provideTransactionService(
	db *gorm.DB,
	transactionRepo repositories.ITransactionRepository,
	userRepo repositories.IUserRepository,
) services.TransactionServiceInterface {
	return services.NewTransactionService(db, transactionRepo, userRepo)
}

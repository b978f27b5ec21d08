package bank_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vestora/internal/repositories"
	"vestora/internal/services"
)

var Module = fx.Provide(
	provideBankService, provideBankRepo)

func provideBankRepo(db *gorm.DB) repositories.IBankRepository {
	return repositories.NewBankRepository(db)
}

func provideBankService(bankRepo repositories.IBankRepository) services.BankServiceInterface {
	return services.NewBankService(bankRepo)
}

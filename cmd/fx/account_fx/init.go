package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"thumbforge/internal/api/controllers"
	"thumbforge/internal/config"
	"thumbforge/internal/repositories"
	"thumbforge/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, cfg *config.Config, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, cfg.Billing.SignupCredits, logger)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}

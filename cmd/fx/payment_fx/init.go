package payment_fx

import (
	"log"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"thumbforge/internal/api/controllers"
	"thumbforge/internal/config"
	"thumbforge/internal/repositories"
	"thumbforge/internal/services"
	"thumbforge/pkg/payment"
)

var Module = fx.Provide(
	provideProviders, providePaymentService, providePaymentController)

// provideProviders builds every gateway the deployment has credentials for.
// A gateway with no key configured is simply left out of the slice.
func provideProviders(cfg *config.Config) []payment.Provider {
	var providers []payment.Provider

	if cfg.Razorpay.KeyID != "" {
		rzp, err := payment.NewRazorpayProvider(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.WebhookSecret)
		if err != nil {
			log.Fatalf("Failed to create Razorpay provider: %v", err)
		}
		providers = append(providers, rzp)
	}

	if cfg.Cashfree.ClientID != "" {
		cf, err := payment.NewCashfreeProvider(cfg.Cashfree.ClientID, cfg.Cashfree.ClientSecret, cfg.Cashfree.Environment, cfg.Cashfree.ReturnURL)
		if err != nil {
			log.Fatalf("Failed to create Cashfree provider: %v", err)
		}
		providers = append(providers, cf)
	}

	if len(providers) == 0 {
		log.Println("No payment provider credentials configured, order endpoints will reject requests")
	}
	return providers
}

func providePaymentService(
	db *gorm.DB,
	planRepo repositories.IPlanRepository,
	accountRepo repositories.AccountRepository,
	providers []payment.Provider,
	logger *zap.Logger,
) services.PaymentServiceInterface {
	return services.NewPaymentService(db, planRepo, accountRepo, providers, logger)
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}

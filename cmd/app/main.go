package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"thumbforge/cmd/fx/account_fx"
	"thumbforge/cmd/fx/config_fx"
	"thumbforge/cmd/fx/db_fx"
	"thumbforge/cmd/fx/generation_fx"
	"thumbforge/cmd/fx/payment_fx"
	"thumbforge/cmd/fx/plan_fx"
	"thumbforge/cmd/fx/prompt_fx"
	"thumbforge/internal/api/controllers"
	"thumbforge/internal/config"
	"thumbforge/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		account_fx.Module,
		plan_fx.Module,
		generation_fx.Module,
		payment_fx.Module,
		prompt_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
				log.Printf("Starting HTTP server at %s", addr)
				if err := engine.Run(addr); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	generationController *controllers.GenerationController,
	paymentController *controllers.PaymentController,
	planController *controllers.PlanController,
	promptController *controllers.PromptController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, generationController, paymentController, planController, promptController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	generationController *controllers.GenerationController,
	paymentController *controllers.PaymentController,
	planController *controllers.PlanController,
	promptController *controllers.PromptController) {

	v1 := r.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	v1.GET("/plans", planController.ListPlans)
	v1.GET("/prompts", promptController.ListPrompts)
	v1.POST("/prompts/search", promptController.SearchPrompts)

	// Webhooks authenticate via provider signatures, not JWT.
	v1.POST("/webhooks/:provider", paymentController.HandleWebhook)

	authed := v1.Group("")
	authed.Use(middleware.JWTAuthMiddleware())
	authed.GET("/me", accountController.Me)
	authed.POST("/generate", generationController.Generate)
	authed.GET("/gallery", generationController.Gallery)
	authed.DELETE("/gallery/:id", generationController.Delete)
	authed.POST("/payments/:provider/create-order", paymentController.CreateOrder)
	authed.POST("/payments/:provider/verify", paymentController.VerifyPayment)

	admin := authed.Group("")
	admin.Use(middleware.RoleMiddleware("admin"))
	admin.POST("/credits", accountController.AdjustCredits)
	admin.POST("/prompts", promptController.CreatePrompt)
}

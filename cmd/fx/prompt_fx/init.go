package prompt_fx

import (
	"log"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"thumbforge/internal/api/controllers"
	"thumbforge/internal/config"
	"thumbforge/internal/repositories"
	"thumbforge/internal/services"
	"thumbforge/pkg/utils"
)

var Module = fx.Provide(
	provideEmbeddingClient,
	providePromptRepo,
	providePromptService,
	providePromptController)

// provideEmbeddingClient picks the embedding backend from config.
func provideEmbeddingClient(cfg *config.Config) utils.EmbeddingClientInterface {
	provider := strings.ToLower(cfg.Billing.EmbeddingProvider)

	apiKey := cfg.Gemini.APIKey
	model := cfg.Gemini.EmbedModel
	if provider == "openai" {
		apiKey = cfg.OpenAI.APIKey
		model = ""
	}

	client, err := utils.NewEmbeddingClient(provider, apiKey, model)
	if err != nil {
		log.Fatalf("Failed to create embedding client: %v", err)
	}
	log.Printf("Initialized %s embedding client", provider)
	return client
}

func providePromptRepo(db *gorm.DB) repositories.IPromptRepository {
	return repositories.NewPromptRepository(db)
}

func providePromptService(
	promptRepo repositories.IPromptRepository,
	embedder utils.EmbeddingClientInterface,
	logger *zap.Logger,
) services.PromptServiceInterface {
	return services.NewPromptService(promptRepo, embedder, logger)
}

func providePromptController(promptService services.PromptServiceInterface) *controllers.PromptController {
	return controllers.NewPromptController(promptService)
}

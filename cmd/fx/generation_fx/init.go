package generation_fx

import (
	"log"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"thumbforge/internal/api/controllers"
	"thumbforge/internal/config"
	"thumbforge/internal/repositories"
	"thumbforge/internal/services"
	"thumbforge/pkg/storage"
	"thumbforge/pkg/utils"
)

var Module = fx.Provide(
	provideImageClient,
	provideUploader,
	provideGenerationRepo,
	provideGenerationService,
	provideGenerationController)

func provideImageClient(cfg *config.Config) utils.ImageClientInterface {
	client, err := utils.NewGeminiImageClient(cfg.Gemini.APIKey, cfg.Gemini.ImageModel, cfg.Gemini.TextModel)
	if err != nil {
		log.Fatalf("Failed to create Gemini image client: %v", err)
	}
	return client
}

func provideUploader(cfg *config.Config) storage.UploaderInterface {
	uploader, err := storage.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("Failed to create S3 uploader: %v", err)
	}
	return uploader
}

func provideGenerationRepo(db *gorm.DB) repositories.IGenerationRepository {
	return repositories.NewGenerationRepository(db)
}

func provideGenerationService(
	db *gorm.DB,
	accountRepo repositories.AccountRepository,
	genRepo repositories.IGenerationRepository,
	imageClient utils.ImageClientInterface,
	uploader storage.UploaderInterface,
	logger *zap.Logger,
) services.GenerationServiceInterface {
	return services.NewGenerationService(db, accountRepo, genRepo, imageClient, uploader, logger)
}

func provideGenerationController(generationService services.GenerationServiceInterface) *controllers.GenerationController {
	return controllers.NewGenerationController(generationService)
}

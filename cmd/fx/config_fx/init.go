package config_fx

import (
	"log"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"thumbforge/internal/config"
)

var Module = fx.Provide(
	provideConfig,
	provideLogger,
)

func provideConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func provideLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	return logger
}

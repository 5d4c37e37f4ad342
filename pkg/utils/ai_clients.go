package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// ReferenceImage is an uploaded image passed inline to the image model.
type ReferenceImage struct {
	Format string // "png", "jpeg", "webp"
	Data   []byte
}

// GeneratedImage is the raw artifact returned by the image model.
type GeneratedImage struct {
	MIMEType string
	Data     []byte
}

// ImageClientInterface is the generation provider boundary. Implementations
// must be safe to share across requests.
type ImageClientInterface interface {
	GenerateImage(ctx context.Context, prompt string, refs []ReferenceImage) (*GeneratedImage, error)
	EnhancePrompt(ctx context.Context, prompt string) (string, error)
	Close() error
}

type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	Close() error
}

// NewEmbeddingClient creates either an OpenAI or Gemini embedding client based on config.
func NewEmbeddingClient(provider, apiKey, model string) (EmbeddingClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIEmbeddingClient(apiKey, model), nil
	case "gemini":
		return NewGeminiEmbeddingClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", provider)
	}
}

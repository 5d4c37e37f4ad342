package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPServer
	Postgres Postgres
	JWT      JWT

	Gemini   Gemini   `envPrefix:"GEMINI_"`
	OpenAI   OpenAI   `envPrefix:"OPENAI_"`
	Razorpay Razorpay `envPrefix:"RAZORPAY_"`
	Cashfree Cashfree `envPrefix:"CASHFREE_"`
	S3       S3       `envPrefix:"S3_"`
	Billing  Billing
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"8080"`
}

type Postgres struct {
	URL string `env:"POSTGRES_URL"`
}

type JWT struct {
	Secret string `env:"JWT_SECRET"`
}

type Gemini struct {
	APIKey     string `env:"API_KEY"`
	ImageModel string `env:"IMAGE_MODEL" envDefault:"gemini-2.0-flash-preview-image-generation"`
	TextModel  string `env:"TEXT_MODEL" envDefault:"gemini-1.5-flash"`
	EmbedModel string `env:"EMBED_MODEL" envDefault:"text-embedding-004"`
}

type OpenAI struct {
	APIKey string `env:"API_KEY"`
}

// EmbeddingProvider selects which client the prompt library uses: "gemini" or "openai".
type Billing struct {
	EmbeddingProvider string `env:"EMBEDDING_PROVIDER" envDefault:"gemini"`
	SignupCredits     int64  `env:"SIGNUP_CREDITS" envDefault:"3"`
}

type Razorpay struct {
	KeyID         string `env:"KEY_ID"`
	KeySecret     string `env:"KEY_SECRET"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

type Cashfree struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	Environment  string `env:"ENVIRONMENT" envDefault:"sandbox"`
	ReturnURL    string `env:"RETURN_URL"`
}

type S3 struct {
	Endpoint      string `env:"ENDPOINT"`
	Region        string `env:"REGION"`
	AccessKey     string `env:"ACCESS_KEY"`
	SecretKey     string `env:"SECRET_KEY"`
	Bucket        string `env:"BUCKET"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
	UsePathStyle  bool   `env:"USE_PATH_STYLE" envDefault:"false"`
	Prefix        string `env:"PREFIX" envDefault:"thumbnails"`
}

// Load reads .env when present and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

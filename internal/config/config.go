package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	DatabaseURL string

	// Hosted table store (REST interface).
	StoreURL string
	StoreKey string

	// The hosted auth provider signs OAuth access tokens with this secret.
	OAuthJWTSecret string
	BackendURL     string

	GeminiAPIKey string
	GeminiModel  string

	StripeAPIKey        string
	StripeWebhookSecret string

	MetricsUser string
	MetricsPass string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Addr:                getEnv("ADDR", ":8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		StoreURL:            os.Getenv("SUPABASE_URL"),
		StoreKey:            os.Getenv("SUPABASE_KEY"),
		OAuthJWTSecret:      os.Getenv("SUPABASE_JWT_SECRET"),
		BackendURL:          getEnv("BACKEND_URL", "http://localhost:8080"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		StripeAPIKey:        os.Getenv("STRIPE_API_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		MetricsUser:         getEnv("METRICS_USER", "metrics"),
		MetricsPass:         os.Getenv("METRICS_PASS"),
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

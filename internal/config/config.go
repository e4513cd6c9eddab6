package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database (optional; in-memory store used when empty)
	DatabaseURL string

	// Redis (optional; provider responses are cached when set)
	RedisURL string

	// JWT
	JWTSecret string

	// Gemini AI (optional; deterministic fallbacks used when empty)
	GeminiAPIKey string
	GeminiModel  string

	// Heroku AI (optional)
	HerokuInferenceURL     string
	HerokuInferenceKey     string
	HerokuInferenceModelID string

	// Provider call budget in seconds
	ProviderTimeoutSeconds int

	// Storage
	StoragePath string

	// Frontend
	FrontendURL string

	// Ping
	PingMessage string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                   getEnvOrDefault("PORT", "8080"),
		Env:                    getEnvOrDefault("ENV", "development"),
		DatabaseURL:            getEnvOrDefault("DATABASE_URL", ""),
		RedisURL:               getEnvOrDefault("REDIS_URL", ""),
		JWTSecret:              getEnvOrDefault("JWT_SECRET", "dev-insecure-secret-change"),
		GeminiAPIKey:           getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:            getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		HerokuInferenceURL:     getEnvOrDefault("HEROKU_INFERENCE_URL", ""),
		HerokuInferenceKey:     getEnvOrDefault("HEROKU_INFERENCE_KEY", ""),
		HerokuInferenceModelID: getEnvOrDefault("HEROKU_INFERENCE_MODEL_ID", ""),
		ProviderTimeoutSeconds: getEnvAsIntOrDefault("PROVIDER_TIMEOUT_SECONDS", 30),
		StoragePath:            getEnvOrDefault("STORAGE_PATH", "./uploads"),
		FrontendURL:            getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
		PingMessage:            getEnvOrDefault("PING_MESSAGE", "pong"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-insecure-secret-change" {
		log.Println("WARNING: JWT_SECRET not set in production, using insecure default")
	}

	return cfg
}

// HasHerokuAI reports whether all three Heroku inference settings are present.
func (c *Config) HasHerokuAI() bool {
	return c.HerokuInferenceURL != "" && c.HerokuInferenceKey != "" && c.HerokuInferenceModelID != ""
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

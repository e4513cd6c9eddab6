package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"studybuddy-backend/internal/config"
	"studybuddy-backend/internal/database"
	"studybuddy-backend/internal/handlers"
	"studybuddy-backend/internal/middleware"
	"studybuddy-backend/internal/router"
	"studybuddy-backend/internal/services"
	"studybuddy-backend/internal/store"
)

func main() {
	log.Println("🚀 Starting Study Buddy Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	providerTimeout := time.Duration(cfg.ProviderTimeoutSeconds) * time.Second

	// ──── Step 2: Initialize User Store ────
	var users store.Users
	if cfg.DatabaseURL != "" {
		pool, err := database.NewPostgresPool(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("✗ PostgreSQL connection failed: %v", err)
		}
		defer pool.Close()
		log.Println("✓ PostgreSQL connected")

		if err := database.RunMigrations(pool, "migrations"); err != nil {
			log.Fatalf("✗ Database migration failed: %v", err)
		}
		log.Println("✓ Database migrations applied")

		users = store.NewPostgresStore(pool)
	} else {
		users = store.NewMemoryStore()
		log.Println("✓ In-memory user store (DATABASE_URL not set)")
	}

	// ──── Step 3: Initialize Redis Cache (optional) ────
	var cache *redis.Client
	if cfg.RedisURL != "" {
		var err error
		cache, err = database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer cache.Close()
		log.Println("✓ Redis connected")
	}

	// ──── Step 4: Initialize AI Providers (optional) ────
	var geminiService *services.GeminiService
	if cfg.GeminiAPIKey != "" {
		var err error
		geminiService, err = services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, providerTimeout)
		if err != nil {
			log.Fatalf("✗ Gemini client initialization failed: %v", err)
		}
		defer geminiService.Close()
		log.Printf("✓ Gemini client initialized (%s)", cfg.GeminiModel)
	} else {
		log.Println("✓ Gemini not configured, deterministic fallbacks active")
	}

	var herokuService *services.HerokuAIService
	if cfg.HasHerokuAI() {
		herokuService = services.NewHerokuAIService(cfg.HerokuInferenceURL, cfg.HerokuInferenceKey, cfg.HerokuInferenceModelID, providerTimeout)
		log.Println("✓ Heroku AI client initialized")
	}

	// ──── Step 5: Initialize Services ────
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret)
	authService := services.NewAuthService(users, jwtAuth)
	generator := services.NewGenerator(geminiService, cache)
	fileExtractService := services.NewFileExtractService()

	// ──── Step 6: Initialize Handlers ────
	authHandler := handlers.NewAuthHandler(authService, cfg.Env)
	toolsHandler := handlers.NewToolsHandler(generator, fileExtractService, cfg.StoragePath)
	chatHandler := handlers.NewChatHandler(geminiService, herokuService)

	// ──── Step 7: Start HTTP Server ────
	r := router.New(
		jwtAuth,
		authHandler,
		toolsHandler,
		chatHandler,
		cfg.FrontendURL,
		cfg.PingMessage,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Study Buddy Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

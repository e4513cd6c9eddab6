package router

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"studybuddy-backend/internal/handlers"
	"studybuddy-backend/internal/middleware"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	toolsHandler *handlers.ToolsHandler,
	chatHandler *handlers.ChatHandler,
	frontendURL string,
	pingMessage string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Auth rate limiter (10 req/min per IP)
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": pingMessage})
		})

		// ──── Auth Routes (public) ────
		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})

		// ──── Study Tool Routes ────
		r.Route("/tools", func(r chi.Router) {
			r.Post("/schedule_generator", toolsHandler.ScheduleGenerator)
			r.Post("/quiz_generator", toolsHandler.QuizGenerator)
			r.Post("/extract_text", toolsHandler.ExtractText)
		})

		// ──── AI Chat Routes ────
		r.Route("/ai", func(r chi.Router) {
			r.Post("/chat", chatHandler.Chat)
			r.Post("/gemini-chat", chatHandler.GeminiChat)
			r.Post("/heroku-chat", chatHandler.HerokuChat)
		})

		// ──── Protected Routes ────
		r.Group(func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/protected", authHandler.Protected)
		})
	})

	return r
}

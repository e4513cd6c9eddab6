package handlers

import (
	"encoding/json"
	"net/http"

	"studybuddy-backend/internal/models"
	"studybuddy-backend/internal/services"
)

type ChatHandler struct {
	gemini *services.GeminiService
	heroku *services.HerokuAIService
}

func NewChatHandler(gemini *services.GeminiService, heroku *services.HerokuAIService) *ChatHandler {
	return &ChatHandler{gemini: gemini, heroku: heroku}
}

// Chat relays a conversation to whichever provider is available, preferring
// Heroku AI. An explicit provider can be requested in the body.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeChat(w, r)
	if !ok {
		return
	}

	provider := req.Provider
	if provider == "" || provider == "auto" {
		switch {
		case h.heroku != nil:
			provider = "heroku"
		case h.gemini != nil:
			provider = "gemini"
		default:
			writeJSON(w, http.StatusNotImplemented, errorResp("NOT_CONFIGURED", "No AI providers configured. Set up Gemini or Heroku AI credentials.", r))
			return
		}
	}

	switch provider {
	case "heroku":
		h.herokuChat(w, r, req)
	case "gemini":
		h.geminiChat(w, r, req)
	default:
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid provider. Use 'gemini', 'heroku', or 'auto'", r))
	}
}

// GeminiChat relays directly to Gemini.
func (h *ChatHandler) GeminiChat(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeChat(w, r)
	if !ok {
		return
	}
	h.geminiChat(w, r, req)
}

// HerokuChat relays directly to the Heroku AI endpoint.
func (h *ChatHandler) HerokuChat(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeChat(w, r)
	if !ok {
		return
	}
	h.herokuChat(w, r, req)
}

func (h *ChatHandler) decodeChat(w http.ResponseWriter, r *http.Request) (models.ChatRequest, bool) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return req, false
	}
	if len(req.Messages) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "messages array required", r))
		return req, false
	}
	return req, true
}

func (h *ChatHandler) geminiChat(w http.ResponseWriter, r *http.Request, req models.ChatRequest) {
	if h.gemini == nil {
		writeJSON(w, http.StatusNotImplemented, errorResp("NOT_CONFIGURED", "GEMINI_API_KEY not set. Connect provider or set env.", r))
		return
	}

	reply, err := h.gemini.Chat(r.Context(), req.Messages)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResp("PROVIDER_ERROR", err.Error(), r))
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Message:   models.ChatMessage{Role: "assistant", Content: reply},
		Citations: []string{},
		Provider:  "gemini",
	})
}

func (h *ChatHandler) herokuChat(w http.ResponseWriter, r *http.Request, req models.ChatRequest) {
	if h.heroku == nil {
		writeJSON(w, http.StatusNotImplemented, errorResp("NOT_CONFIGURED", "Heroku AI not configured. Set HEROKU_INFERENCE_URL, HEROKU_INFERENCE_KEY, and HEROKU_INFERENCE_MODEL_ID", r))
		return
	}

	reply, usage, err := h.heroku.Chat(r.Context(), req.Messages)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResp("PROVIDER_ERROR", err.Error(), r))
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Message:   models.ChatMessage{Role: "assistant", Content: reply},
		Citations: []string{},
		Provider:  "heroku-ai",
		Usage:     usage,
	})
}

package handlers

import (
	"encoding/json"
	"net/http"

	"studybuddy-backend/internal/middleware"
	"studybuddy-backend/internal/models"
	"studybuddy-backend/internal/services"
)

const sessionCookieMaxAge = 7 * 24 * 60 * 60

type AuthHandler struct {
	authService *services.AuthService
	env         string
}

func NewAuthHandler(authService *services.AuthService, env string) *AuthHandler {
	return &AuthHandler{authService: authService, env: env}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	user, token, err := h.authService.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, models.AuthResponse{User: user, Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	user, token, err := h.authService.Login(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, models.AuthResponse{User: user, Token: token})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.env == "production",
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Me reports the current session's user. A missing or invalid token is not an
// error: the response is 200 with a null user, matching what the frontend
// expects on first load.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromRequest(r)
	if token == "" {
		writeJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}

	user, err := h.authService.Me(r.Context(), token)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// Protected is a JWT-guarded demo route.
func (h *AuthHandler) Protected(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	user, err := h.authService.Me(r.Context(), middleware.TokenFromRequest(r))
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "user_id": userID})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "user": user})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		Secure:   h.env == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func errorRespWithFields(code, message string, fields map[string]string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Fields:    fields,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch e := err.(type) {
	case *services.ValidationError:
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", e.Fields, r))
	case *services.ConflictError:
		writeJSON(w, http.StatusConflict, errorResp("CONFLICT", e.Message, r))
	case *services.NotFoundError:
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", e.Message, r))
	case *services.UnauthorizedError:
		writeJSON(w, http.StatusUnauthorized, errorResp("UNAUTHORIZED", e.Message, r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"studybuddy-backend/internal/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	j := NewJWTAuth("test-secret")
	user := &models.User{ID: uuid.New(), Email: "a@b.com", Name: "A"}

	token, err := j.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	parsed, err := j.ParseUserID(token)
	if err != nil {
		t.Fatalf("ParseUserID failed: %v", err)
	}
	if parsed != user.ID {
		t.Errorf("Expected %s, got %s", user.ID, parsed)
	}
}

func TestParseUserID_RejectsBadTokens(t *testing.T) {
	j := NewJWTAuth("test-secret")
	user := &models.User{ID: uuid.New(), Email: "a@b.com", Name: "A"}

	otherSecret := NewJWTAuth("other-secret")
	foreignToken, err := otherSecret.GenerateToken(user)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
		{"wrong secret", foreignToken},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := j.ParseUserID(tc.token); err == nil {
				t.Error("Expected parse error")
			}
		})
	}
}

func TestMiddleware(t *testing.T) {
	j := NewJWTAuth("test-secret")
	user := &models.User{ID: uuid.New(), Email: "a@b.com", Name: "A"}
	token, err := j.GenerateToken(user)
	if err != nil {
		t.Fatal(err)
	}

	var gotUserID uuid.UUID
	handler := j.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		if gotUserID != user.ID {
			t.Errorf("Expected user id in context, got %s", gotUserID)
		}
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("Expected 401, got %d", rec.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("Expected 401, got %d", rec.Code)
		}
	})
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jirao/internal/db"
)

func identityEcho(t *testing.T, wantID int, wantRole db.Role) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		if !ok || id != wantID {
			t.Errorf("expected user id %d in context, got %d (ok=%v)", wantID, id, ok)
		}
		role, ok := RoleFromContext(r.Context())
		if !ok || role != wantRole {
			t.Errorf("expected role %s in context, got %s (ok=%v)", wantRole, role, ok)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestMiddleware_ValidToken(t *testing.T) {
	token, err := GenerateToken("secret", &db.User{ID: 3, Role: db.RoleGuest}, time.Hour)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	handler := Middleware("secret")(identityEcho(t, 3, db.RoleGuest))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestMiddleware_RejectsMissingAndBadTokens(t *testing.T) {
	handler := Middleware("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without a valid token")
	}))

	for _, header := range []string{"", "Bearer ", "Bearer garbage", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestRequireRole(t *testing.T) {
	token, err := GenerateToken("secret", &db.User{ID: 3, Role: db.RoleGuest}, time.Hour)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	handler := Middleware("secret")(RequireRole(db.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for a non-admin")
	})))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

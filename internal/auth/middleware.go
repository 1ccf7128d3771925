package auth

import (
	"context"
	"net/http"
	"strings"

	"jirao/internal/db"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "role"
)

// Middleware validates the Bearer token and stores the caller's verified
// (userID, role) in the request context. Handlers never re-derive identity
// from credentials.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			userID, role, err := ParseToken(secret, token)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, roleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole guards a subrouter behind a single role. It must run after
// Middleware.
func RequireRole(role db.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if current, ok := RoleFromContext(r.Context()); !ok || current != role {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

func RoleFromContext(ctx context.Context) (db.Role, bool) {
	role, ok := ctx.Value(roleKey).(db.Role)
	return role, ok
}

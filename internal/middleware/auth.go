package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gurukul-app/backend/internal/auth"
	"github.com/gurukul-app/backend/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for the authenticated user id.
	UserIDKey contextKey = "user_id"
	// RoleKey is the context key for the authenticated user's role.
	RoleKey contextKey = "role"
)

// GetUserID extracts the user id from the context. Empty if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetRole extracts the role from the context. Empty if not found.
func GetRole(ctx context.Context) models.Role {
	role, _ := ctx.Value(RoleKey).(models.Role)
	return role
}

// RequireSession validates the bearer token and adds the user id and role to
// the request context. Requests without a valid token get 401.
func RequireSession(jwtManager *auth.JWTManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := sessionClaims(jwtManager, r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin is RequireSession plus a role gate: only ADMIN passes.
// Teachers share the dashboard but not the admission/billing controls.
func RequireAdmin(jwtManager *auth.JWTManager, next http.Handler) http.Handler {
	return RequireSession(jwtManager, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetRole(r.Context()) != models.RoleAdmin {
			http.Error(w, "admin role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// RequireStaff admits ADMIN and TEACHER sessions.
func RequireStaff(jwtManager *auth.JWTManager, next http.Handler) http.Handler {
	return RequireSession(jwtManager, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := GetRole(r.Context())
		if role != models.RoleAdmin && role != models.RoleTeacher {
			http.Error(w, "staff role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func sessionClaims(jwtManager *auth.JWTManager, r *http.Request) (*auth.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, auth.ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, auth.ErrInvalidToken
	}

	return jwtManager.Validate(parts[1])
}

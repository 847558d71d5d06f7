package middleware

import (
	"context"
	"net/http"

	"github.com/ShaydeNofziger/skynav-api/internal/auth"
	"github.com/ShaydeNofziger/skynav-api/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const userContextKey contextKey = "user"

// AuthMiddleware provides bearer token authentication.
type AuthMiddleware struct {
	authService *auth.Service
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate validates the bearer token and attaches the caller's claims
// to the request context. Requests without a valid token get a 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		claims, err := m.authService.ValidateToken(authHeader)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaims extracts the caller's claims from the request context.
func GetClaims(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(userContextKey).(*models.Claims)
	return claims, ok
}

// WithClaims returns a context carrying the given claims. Test helper for
// exercising handlers without the full middleware stack.
func WithClaims(ctx context.Context, claims *models.Claims) context.Context {
	return context.WithValue(ctx, userContextKey, claims)
}

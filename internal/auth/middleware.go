package auth

import (
	"context"
	"net/http"
	"strings"

	"luxdrive/internal/service"
)

type contextKey string

// AdminEmailKey carries the authenticated operator email in the request
// context.
const AdminEmailKey contextKey = "admin_email"

// AdminAuthMiddleware guards the back-office routes with a bearer JWT issued
// by the AdminAuthService.
func AdminAuthMiddleware(authService *service.AdminAuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			email, err := authService.ValidateAccessToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), AdminEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

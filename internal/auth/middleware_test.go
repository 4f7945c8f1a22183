package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"luxdrive/internal/repository"
	"luxdrive/internal/service"
	"luxdrive/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAuthMiddleware(t *testing.T) {
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	authService := service.NewAdminAuthService(repository.NewAdminAuthRepository(st), "test-secret", time.Hour, 24*time.Hour)
	require.NoError(t, authService.Bootstrap("ops@luxdrive.ch", "s3cret"))

	pair, err := authService.Login("ops@luxdrive.ch", "s3cret")
	require.NoError(t, err)

	var gotEmail string
	handler := AdminAuthMiddleware(authService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail, _ = r.Context().Value(AdminEmailKey).(string)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/requests", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ops@luxdrive.ch", gotEmail)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/requests", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/requests", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/requests", nil)
		req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

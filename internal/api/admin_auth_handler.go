package api

import (
	"encoding/json"
	"net/http"
	"time"

	httperrors "luxdrive/internal/errors"
	"luxdrive/internal/service"
)

const refreshCookieName = "luxdrive_refresh"

// AdminAuthHandler exposes the operator session endpoints. The access token
// travels in the JSON body; the rotating refresh token only ever lives in an
// HTTP-only cookie.
type AdminAuthHandler struct {
	Service *service.AdminAuthService
}

func NewAdminAuthHandler(svc *service.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{Service: svc}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pair, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		httperrors.WriteJSON(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	h.setRefreshCookie(w, pair.RefreshToken)
	writeJSON(w, http.StatusOK, LoginResponse{Token: pair.AccessToken, ExpiresAt: pair.ExpiresAt})
}

func (h *AdminAuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		httperrors.WriteJSON(w, http.StatusUnauthorized, "Missing refresh token")
		return
	}

	pair, err := h.Service.Refresh(cookie.Value)
	if err != nil {
		h.clearRefreshCookie(w)
		httperrors.WriteJSON(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	h.setRefreshCookie(w, pair.RefreshToken)
	writeJSON(w, http.StatusOK, LoginResponse{Token: pair.AccessToken, ExpiresAt: pair.ExpiresAt})
}

func (h *AdminAuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(refreshCookieName); err == nil {
		h.Service.Revoke(cookie.Value)
	}
	h.clearRefreshCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *AdminAuthHandler) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/admin/auth",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Now().Add(h.Service.RefreshTokenTTL),
	})
}

func (h *AdminAuthHandler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/admin/auth",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

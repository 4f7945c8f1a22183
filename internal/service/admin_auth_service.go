package service

import (
	"time"

	"luxdrive/internal/db"
	"luxdrive/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthService issues short-lived JWT access tokens plus rotating opaque
// refresh tokens for the back-office. Refresh tokens live server side and in
// an HTTP-only cookie; every refresh revokes the previous token.
type AdminAuthService struct {
	Repo            *repository.AdminAuthRepository
	Secret          []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

func NewAdminAuthService(repo *repository.AdminAuthRepository, secret string, accessTTL, refreshTTL time.Duration) *AdminAuthService {
	return &AdminAuthService{
		Repo:            repo,
		Secret:          []byte(secret),
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: refreshTTL,
	}
}

// Bootstrap creates the initial operator account when none exists yet.
func (s *AdminAuthService) Bootstrap(email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	if s.Repo.GetByEmail(email) != nil {
		return nil
	}
	log.WithField("email", email).Info("Bootstrapping operator account")
	return s.Repo.CreateAdmin(email, password)
}

// Login checks the operator credentials and issues a fresh token pair.
func (s *AdminAuthService) Login(email, password string) (*TokenPair, error) {
	admin := s.Repo.GetByEmail(email)
	if admin == nil {
		return nil, ErrInvalidCreds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCreds
	}
	return s.issuePair(admin.Email)
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. Unknown or expired tokens fail with ErrInvalidToken.
func (s *AdminAuthService) Refresh(refreshToken string) (*TokenPair, error) {
	stored := s.Repo.GetRefreshToken(refreshToken)
	if stored == nil || stored.ExpiresAt.Before(time.Now()) {
		return nil, ErrInvalidToken
	}
	if err := s.Repo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, err
	}
	return s.issuePair(stored.AdminEmail)
}

// Revoke invalidates a refresh token on logout. Revoking an unknown token is
// a no-op.
func (s *AdminAuthService) Revoke(refreshToken string) error {
	return s.Repo.DeleteRefreshToken(refreshToken)
}

// ValidateAccessToken parses a bearer token and returns the operator email.
func (s *AdminAuthService) ValidateAccessToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}

func (s *AdminAuthService) issuePair(email string) (*TokenPair, error) {
	expiresAt := time.Now().Add(s.AccessTokenTTL)
	claims := jwt.MapClaims{
		"email": email,
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return nil, err
	}

	refresh := db.RefreshToken{
		Token:      uuid.NewString(),
		AdminEmail: email,
		ExpiresAt:  time.Now().Add(s.RefreshTokenTTL),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.SaveRefreshToken(refresh); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh.Token,
		ExpiresAt:    expiresAt,
	}, nil
}

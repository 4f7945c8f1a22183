package repository

import (
	"time"

	"luxdrive/internal/db"
	"luxdrive/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthRepository persists operator accounts and their refresh tokens.
type AdminAuthRepository struct {
	Store *store.Store
}

func NewAdminAuthRepository(s *store.Store) *AdminAuthRepository {
	return &AdminAuthRepository{Store: s}
}

// GetByEmail returns the operator account for email, or nil when none exists.
func (r *AdminAuthRepository) GetByEmail(email string) *db.Admin {
	var admins []db.Admin
	r.Store.Read(store.KeyAdmins, &admins)
	for _, a := range admins {
		if a.Email == email {
			out := a
			return &out
		}
	}
	return nil
}

// CreateAdmin stores a new operator account with a bcrypt password hash.
func (r *AdminAuthRepository) CreateAdmin(email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := db.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	var admins []db.Admin
	return r.Store.Update(store.KeyAdmins, &admins, func() (interface{}, error) {
		return append(admins, admin), nil
	})
}

// SaveRefreshToken stores a freshly issued refresh token.
func (r *AdminAuthRepository) SaveRefreshToken(token db.RefreshToken) error {
	var tokens []db.RefreshToken
	return r.Store.Update(store.KeyRefreshTokens, &tokens, func() (interface{}, error) {
		return append(tokens, token), nil
	})
}

// GetRefreshToken looks up a stored refresh token by value, or nil.
func (r *AdminAuthRepository) GetRefreshToken(value string) *db.RefreshToken {
	var tokens []db.RefreshToken
	r.Store.Read(store.KeyRefreshTokens, &tokens)
	for _, t := range tokens {
		if t.Token == value {
			out := t
			return &out
		}
	}
	return nil
}

// DeleteRefreshToken revokes a token by value.
func (r *AdminAuthRepository) DeleteRefreshToken(value string) error {
	var tokens []db.RefreshToken
	return r.Store.Update(store.KeyRefreshTokens, &tokens, func() (interface{}, error) {
		out := tokens[:0]
		for _, t := range tokens {
			if t.Token == value {
				continue
			}
			out = append(out, t)
		}
		return out, nil
	})
}

// PurgeExpiredTokens drops tokens past their expiry. Returns how many were
// removed.
func (r *AdminAuthRepository) PurgeExpiredTokens(now time.Time) (int, error) {
	var tokens []db.RefreshToken
	removed := 0
	err := r.Store.Update(store.KeyRefreshTokens, &tokens, func() (interface{}, error) {
		out := tokens[:0]
		for _, t := range tokens {
			if t.ExpiresAt.Before(now) {
				removed++
				continue
			}
			out = append(out, t)
		}
		return out, nil
	})
	return removed, err
}

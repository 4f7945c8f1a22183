package service

import "errors"

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrTierNotOffered  = errors.New("tier not offered for this vehicle")
	ErrQuotaExceeded   = errors.New("daily submission quota exceeded")
	ErrRequestNotFound = errors.New("rental request not found")
	ErrRequestDecided  = errors.New("rental request already decided")
	ErrInvalidCreds    = errors.New("invalid credentials")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

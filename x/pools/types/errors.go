package types

import (
	"cosmossdk.io/errors"
)

// Module error codes
var (
	ErrPoolNotFound         = errors.Register("pools", 1, "pool not found")
	ErrUnauthorized         = errors.Register("pools", 2, "caller is not the pool manager")
	ErrInvalidAsset         = errors.Register("pools", 3, "asset not registered")
	ErrAssetNotAvailable    = errors.Register("pools", 4, "asset not available in pool")
	ErrAssetNotDepositAsset = errors.Register("pools", 5, "asset not accepted for deposit")
	ErrAssetAlreadyAdded    = errors.Register("pools", 6, "asset already added")
	ErrTooManyPositions     = errors.Register("pools", 7, "pool position count cap reached")
	ErrInsufficientBalance  = errors.Register("pools", 8, "insufficient balance")
	ErrInvalidAmount        = errors.Register("pools", 9, "amount must be positive")
	ErrTooManyPools         = errors.Register("pools", 10, "pool count cap reached for manager")
	ErrFeeTooHigh           = errors.Register("pools", 11, "performance fee exceeds maximum")
	ErrFeeUpdateTooSoon     = errors.Register("pools", 12, "performance fee updated too recently")
	ErrNoVerifier           = errors.Register("pools", 13, "no verifier registered for target")
	ErrInvalidPoolName      = errors.Register("pools", 14, "invalid pool name")
)

package types

import (
	"cosmossdk.io/errors"
)

// Module error codes
var (
	ErrPoolNotFound         = errors.Register("cappedpools", 1, "capped pool not found")
	ErrUnauthorized         = errors.Register("cappedpools", 2, "caller is not the pool manager")
	ErrInvalidAsset         = errors.Register("cappedpools", 3, "asset not registered")
	ErrAssetNotAvailable    = errors.Register("cappedpools", 4, "asset not available in pool")
	ErrAssetNotDepositAsset = errors.Register("cappedpools", 5, "asset not accepted for deposit")
	ErrAssetAlreadyAdded    = errors.Register("cappedpools", 6, "asset already added")
	ErrTooManyPositions     = errors.Register("cappedpools", 7, "pool position count cap reached")
	ErrSupplyCapExceeded    = errors.Register("cappedpools", 8, "token supply cap exceeded")
	ErrQuantityOutOfBounds  = errors.Register("cappedpools", 9, "token quantity out of bounds")
	ErrInsufficientBalance  = errors.Register("cappedpools", 10, "insufficient balance in class")
	ErrInvalidClass         = errors.Register("cappedpools", 11, "invalid token class")
	ErrInvalidAmount        = errors.Register("cappedpools", 12, "amount must be positive")
	ErrTooSoon              = errors.Register("cappedpools", 13, "snapshot window has not elapsed")
	ErrProfitDecreased      = errors.Register("cappedpools", 14, "profit below last snapshot high-water mark")
	ErrTooManyPools         = errors.Register("cappedpools", 15, "pool count cap reached for manager")
	ErrFeeTooHigh           = errors.Register("cappedpools", 16, "performance fee exceeds maximum")
	ErrFeeUpdateTooSoon     = errors.Register("cappedpools", 17, "performance fee updated too recently")
	ErrInvalidPoolName      = errors.Register("cappedpools", 18, "invalid pool name")
	ErrInvalidMaxSupply     = errors.Register("cappedpools", 19, "max supply out of bounds")
	ErrInvalidSeedPrice     = errors.Register("cappedpools", 20, "seed price out of bounds")
	ErrSelfTransfer         = errors.Register("cappedpools", 21, "cannot transfer to self")
)

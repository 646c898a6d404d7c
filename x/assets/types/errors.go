package types

import (
	"cosmossdk.io/errors"
)

// Module error codes
var (
	ErrUnauthorized       = errors.Register("assets", 1, "unauthorized")
	ErrAssetNotFound      = errors.Register("assets", 2, "asset not registered")
	ErrAssetExists        = errors.Register("assets", 3, "asset already registered")
	ErrInvalidPrice       = errors.Register("assets", 4, "asset price must be positive")
	ErrNoVerifier         = errors.Register("assets", 5, "no verifier registered for target")
	ErrInvalidAction      = errors.Register("assets", 6, "unrecognized tradable action")
	ErrNoStableCoin       = errors.Register("assets", 7, "no stablecoin registered")
	ErrPriceUnavailable   = errors.Register("assets", 8, "price unavailable for asset")
)

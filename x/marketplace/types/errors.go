package types

import (
	"cosmossdk.io/errors"
)

// Module error codes
var (
	ErrListingNotFound      = errors.Register("marketplace", 1, "listing not found")
	ErrListingExists        = errors.Register("marketplace", 2, "active listing already exists for seller and pool")
	ErrListingInactive      = errors.Register("marketplace", 3, "listing is no longer active")
	ErrUnauthorized         = errors.Register("marketplace", 4, "caller is not the listing seller")
	ErrInvalidQuantity      = errors.Register("marketplace", 5, "quantity must be positive")
	ErrInvalidPrice         = errors.Register("marketplace", 6, "token price must be positive")
	ErrInsufficientQuantity = errors.Register("marketplace", 7, "purchase exceeds listed quantity")
	ErrInsufficientTokens   = errors.Register("marketplace", 8, "seller does not hold the listed tokens")
	ErrPoolNotFound         = errors.Register("marketplace", 9, "capped pool not found")
	ErrSelfPurchase         = errors.Register("marketplace", 10, "cannot purchase own listing")
	ErrInvalidClass         = errors.Register("marketplace", 11, "invalid token class")
)

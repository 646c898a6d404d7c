package types

import (
	"cosmossdk.io/errors"
)

// Module error codes
var (
	ErrUnauthorized       = errors.Register("settings", 1, "caller is not the settings owner")
	ErrUnknownParameter   = errors.Register("settings", 2, "unknown parameter name")
	ErrInvalidParameter   = errors.Register("settings", 3, "invalid parameter value")
	ErrParameterNotFound  = errors.Register("settings", 4, "parameter not found")
)

package types

import (
	"cosmossdk.io/math"
)

// Module name and store key
const (
	ModuleName = "assets"
	StoreKey   = ModuleName
)

// Asset classes
const (
	AssetTypeStableCoin uint32 = 1
	AssetTypeToken      uint32 = 2
	AssetTypeLPToken    uint32 = 3
	AssetTypeYieldBear  uint32 = 4
)

// Tradable actions a registered verifier can approve
const (
	ActionDeposit  = "deposit"
	ActionWithdraw = "withdraw"
	ActionSwap     = "swap"
	ActionStake    = "stake"
	ActionUnstake  = "unstake"
)

// Asset is a registered, priceable asset. Prices are quoted in
// 18-decimal USD per whole unit.
type Asset struct {
	Address      string         `json:"address"`
	Symbol       string         `json:"symbol"`
	AssetType    uint32         `json:"asset_type"`
	Decimals     uint32         `json:"decimals"`
	Price        math.LegacyDec `json:"price"`
	IsStableCoin bool           `json:"is_stable_coin"`
	HasVerifier  bool           `json:"has_verifier"`
	UpdatedAt    int64          `json:"updated_at"`
}

// BalanceDelta is a signed balance change produced by a verified
// manager transaction.
type BalanceDelta struct {
	Asset  string         `json:"asset"`
	Amount math.LegacyDec `json:"amount"`
}

// IsTradableAction reports whether action is a recognized capability.
func IsTradableAction(action string) bool {
	switch action {
	case ActionDeposit, ActionWithdraw, ActionSwap, ActionStake, ActionUnstake:
		return true
	}
	return false
}

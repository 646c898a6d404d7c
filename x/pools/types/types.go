package types

import (
	"strings"

	"cosmossdk.io/math"
	"github.com/google/uuid"
)

// Module name and store key
const (
	ModuleName = "pools"
	StoreKey   = ModuleName
)

// Pool is an open-ended managed fund. Share balances and cost-basis per
// holder live in the keeper's store; the pool carries the aggregate
// accounting state and the manager's asset whitelist.
//
// TotalDeposits is cost-basis, not value: principal deposited minus
// principal withdrawn, in 18-decimal USD units. Pricing never reads it.
type Pool struct {
	PoolID          string                    `json:"pool_id"`
	Name            string                    `json:"name"`
	Manager         string                    `json:"manager"`
	AvailableAssets []string                  `json:"available_assets"`
	DepositAssets   []string                  `json:"deposit_assets"`
	AssetBalances   map[string]math.LegacyDec `json:"asset_balances"`
	TotalSupply     math.LegacyDec            `json:"total_supply"`
	TotalDeposits   math.LegacyDec            `json:"total_deposits"`
	PerformanceFee  int64                     `json:"performance_fee"`
	LastFeeUpdate   int64                     `json:"last_fee_update"`
	CreatedAt       int64                     `json:"created_at"`
	UpdatedAt       int64                     `json:"updated_at"`
}

// NewPool creates a new open pool stamped with the block time
func NewPool(name, manager string, performanceFee, now int64) *Pool {
	return &Pool{
		PoolID:          GenerateID("pool"),
		Name:            name,
		Manager:         manager,
		AvailableAssets: []string{},
		DepositAssets:   []string{},
		AssetBalances:   map[string]math.LegacyDec{},
		TotalSupply:     math.LegacyZeroDec(),
		TotalDeposits:   math.LegacyZeroDec(),
		PerformanceFee:  performanceFee,
		LastFeeUpdate:   0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// HasAvailableAsset reports whether asset is on the manager's whitelist
func (p *Pool) HasAvailableAsset(asset string) bool {
	for _, a := range p.AvailableAssets {
		if a == asset {
			return true
		}
	}
	return false
}

// HasDepositAsset reports whether asset is accepted for deposit
func (p *Pool) HasDepositAsset(asset string) bool {
	for _, a := range p.DepositAssets {
		if a == asset {
			return true
		}
	}
	return false
}

// AddAvailableAsset appends asset to the whitelist, preserving insertion order
func (p *Pool) AddAvailableAsset(asset string, maxPositions int64) error {
	if p.HasAvailableAsset(asset) {
		return ErrAssetAlreadyAdded
	}
	if int64(len(p.AvailableAssets)) >= maxPositions {
		return ErrTooManyPositions
	}
	p.AvailableAssets = append(p.AvailableAssets, asset)
	return nil
}

// RemoveAvailableAsset removes asset from the whitelist. Removing
// availability also revokes deposit eligibility, never the reverse.
func (p *Pool) RemoveAvailableAsset(asset string) error {
	idx := -1
	for i, a := range p.AvailableAssets {
		if a == asset {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrAssetNotAvailable
	}
	p.AvailableAssets = append(p.AvailableAssets[:idx], p.AvailableAssets[idx+1:]...)

	for i, a := range p.DepositAssets {
		if a == asset {
			p.DepositAssets = append(p.DepositAssets[:i], p.DepositAssets[i+1:]...)
			break
		}
	}
	return nil
}

// AddDepositAsset marks an available asset as accepted for deposit
func (p *Pool) AddDepositAsset(asset string) error {
	if !p.HasAvailableAsset(asset) {
		return ErrAssetNotAvailable
	}
	if p.HasDepositAsset(asset) {
		return ErrAssetAlreadyAdded
	}
	p.DepositAssets = append(p.DepositAssets, asset)
	return nil
}

// RemoveDepositAsset removes an asset from the deposit whitelist
func (p *Pool) RemoveDepositAsset(asset string) error {
	for i, a := range p.DepositAssets {
		if a == asset {
			p.DepositAssets = append(p.DepositAssets[:i], p.DepositAssets[i+1:]...)
			return nil
		}
	}
	return ErrAssetNotDepositAsset
}

// AssetBalance returns the pool's balance of asset
func (p *Pool) AssetBalance(asset string) math.LegacyDec {
	if bal, ok := p.AssetBalances[asset]; ok && !bal.IsNil() {
		return bal
	}
	return math.LegacyZeroDec()
}

// CreditAsset increases the pool's balance of asset
func (p *Pool) CreditAsset(asset string, amount math.LegacyDec) {
	if p.AssetBalances == nil {
		p.AssetBalances = map[string]math.LegacyDec{}
	}
	p.AssetBalances[asset] = p.AssetBalance(asset).Add(amount)
}

// DebitAsset decreases the pool's balance of asset
func (p *Pool) DebitAsset(asset string, amount math.LegacyDec) error {
	bal := p.AssetBalance(asset)
	if bal.LT(amount) {
		return ErrInsufficientBalance
	}
	p.AssetBalances[asset] = bal.Sub(amount)
	return nil
}

// CalculateSharesForDeposit returns the shares minted for a deposit of
// usdValue against a pool currently worth valueBefore. The bootstrap
// deposit mints shares 1:1 with contributed value; afterwards minting is
// proportional, which keeps the share price constant across a deposit.
func (p *Pool) CalculateSharesForDeposit(usdValue, valueBefore math.LegacyDec) math.LegacyDec {
	if p.TotalSupply.IsZero() || valueBefore.IsZero() {
		return usdValue
	}
	return usdValue.Mul(p.TotalSupply).Quo(valueBefore)
}

// TokenPrice returns the pool share price for a given pool value.
// An empty pool bootstraps at 1.0.
func (p *Pool) TokenPrice(poolValue math.LegacyDec) math.LegacyDec {
	if p.TotalSupply.IsZero() {
		return math.LegacyOneDec()
	}
	return poolValue.Quo(p.TotalSupply)
}

// DepositRecord is an audit record of a single deposit
type DepositRecord struct {
	DepositID    string         `json:"deposit_id"`
	PoolID       string         `json:"pool_id"`
	Depositor    string         `json:"depositor"`
	Asset        string         `json:"asset"`
	Amount       math.LegacyDec `json:"amount"`
	USDValue     math.LegacyDec `json:"usd_value"`
	SharesMinted math.LegacyDec `json:"shares_minted"`
	TokenPrice   math.LegacyDec `json:"token_price"`
	DepositedAt  int64          `json:"deposited_at"`
}

// WithdrawalRecord is an audit record of a single withdrawal
type WithdrawalRecord struct {
	WithdrawalID string                    `json:"withdrawal_id"`
	PoolID       string                    `json:"pool_id"`
	Withdrawer   string                    `json:"withdrawer"`
	SharesBurned math.LegacyDec            `json:"shares_burned"`
	AssetsOut    map[string]math.LegacyDec `json:"assets_out"`
	WithdrawnAt  int64                     `json:"withdrawn_at"`
}

// ExecutionRecord is an audit record of a manager-issued transaction
type ExecutionRecord struct {
	ExecutionID string         `json:"execution_id"`
	PoolID      string         `json:"pool_id"`
	Manager     string         `json:"manager"`
	Target      string         `json:"target"`
	Action      string         `json:"action"`
	Amount      math.LegacyDec `json:"amount"`
	SourceAsset string         `json:"source_asset"`
	ExecutedAt  int64          `json:"executed_at"`
}

// PositionsAndTotal is the per-asset decomposition of a pool valuation
type PositionsAndTotal struct {
	Assets []string         `json:"assets"`
	Values []math.LegacyDec `json:"values"`
	Total  math.LegacyDec   `json:"total"`
}

// GenerateID generates a unique ID with a prefix
func GenerateID(prefix string) string {
	return prefix + "-" + strings.Split(uuid.NewString(), "-")[0]
}

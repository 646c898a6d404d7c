package types

import (
	"strings"

	"cosmossdk.io/math"
	"github.com/google/uuid"
)

// Module name and store key
const (
	ModuleName = "cappedpools"
	StoreKey   = ModuleName
)

// NumClasses is the number of token classes in a capped pool
const NumClasses = 4

// Class capacity shares in basis points of max supply. Lower classes are
// scarcer and fill first. The last class absorbs rounding so the caps
// always sum to max supply exactly.
var classShareBps = [NumClasses]int64{500, 1000, 2000, 6500}

// CappedPool is a fixed-supply managed fund. Tokens are minted in four
// classes filled in ascending order, so early depositors hold scarcer,
// lower-numbered classes. Per-holder class balances and cost-basis live
// in the keeper's store.
type CappedPool struct {
	PoolID          string                    `json:"pool_id"`
	Name            string                    `json:"name"`
	Manager         string                    `json:"manager"`
	MaxSupply       math.Int                  `json:"max_supply"`
	SeedPrice       math.LegacyDec            `json:"seed_price"`
	AvailableAssets []string                  `json:"available_assets"`
	DepositAssets   []string                  `json:"deposit_assets"`
	AssetBalances   map[string]math.LegacyDec `json:"asset_balances"`
	ClassCaps       [NumClasses]math.Int      `json:"class_caps"`
	ClassBalances   [NumClasses]math.Int      `json:"class_balances"`
	TotalSupply     math.Int                  `json:"total_supply"`
	TotalDeposits   math.LegacyDec            `json:"total_deposits"`
	PerformanceFee  int64                     `json:"performance_fee"`
	LastFeeUpdate   int64                     `json:"last_fee_update"`
	SnapshotTime    int64                     `json:"snapshot_time"`
	SnapshotProfit  math.LegacyDec            `json:"snapshot_profit"`
	CreatedAt       int64                     `json:"created_at"`
	UpdatedAt       int64                     `json:"updated_at"`
}

// NewCappedPool creates a capped pool with class caps derived from
// maxSupply, stamped with the block time
func NewCappedPool(name, manager string, maxSupply math.Int, seedPrice math.LegacyDec, performanceFee, now int64) *CappedPool {
	pool := &CappedPool{
		PoolID:          GenerateID("cpool"),
		Name:            name,
		Manager:         manager,
		MaxSupply:       maxSupply,
		SeedPrice:       seedPrice,
		AvailableAssets: []string{},
		DepositAssets:   []string{},
		AssetBalances:   map[string]math.LegacyDec{},
		ClassCaps:       DeriveClassCaps(maxSupply),
		TotalSupply:     math.ZeroInt(),
		TotalDeposits:   math.LegacyZeroDec(),
		PerformanceFee:  performanceFee,
		SnapshotProfit:  math.LegacyZeroDec(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for i := range pool.ClassBalances {
		pool.ClassBalances[i] = math.ZeroInt()
	}
	return pool
}

// DeriveClassCaps splits maxSupply into the four class capacities at
// 5/10/20/65 percent. The last class takes the remainder, keeping the
// caps summing to maxSupply exactly.
func DeriveClassCaps(maxSupply math.Int) [NumClasses]math.Int {
	var caps [NumClasses]math.Int
	allocated := math.ZeroInt()
	for i := 0; i < NumClasses-1; i++ {
		caps[i] = maxSupply.MulRaw(classShareBps[i]).QuoRaw(10000)
		allocated = allocated.Add(caps[i])
	}
	caps[NumClasses-1] = maxSupply.Sub(allocated)
	return caps
}

// AllocateTokens fills quantity tokens into the class ledger in
// ascending order and returns the per-class allocation. A single
// allocation may straddle multiple classes.
func (p *CappedPool) AllocateTokens(quantity math.Int) ([NumClasses]math.Int, error) {
	var allocation [NumClasses]math.Int
	for i := range allocation {
		allocation[i] = math.ZeroInt()
	}

	if p.TotalSupply.Add(quantity).GT(p.MaxSupply) {
		return allocation, ErrSupplyCapExceeded
	}

	remaining := quantity
	for i := 0; i < NumClasses && remaining.IsPositive(); i++ {
		capacity := p.ClassCaps[i].Sub(p.ClassBalances[i])
		if !capacity.IsPositive() {
			continue
		}
		fill := math.MinInt(remaining, capacity)
		allocation[i] = fill
		p.ClassBalances[i] = p.ClassBalances[i].Add(fill)
		remaining = remaining.Sub(fill)
	}
	p.TotalSupply = p.TotalSupply.Add(quantity)
	return allocation, nil
}

// ReleaseTokens frees quantity tokens from a single class
func (p *CappedPool) ReleaseTokens(class int, quantity math.Int) error {
	if class < 0 || class >= NumClasses {
		return ErrInvalidClass
	}
	if p.ClassBalances[class].LT(quantity) {
		return ErrInsufficientBalance
	}
	p.ClassBalances[class] = p.ClassBalances[class].Sub(quantity)
	p.TotalSupply = p.TotalSupply.Sub(quantity)
	return nil
}

// AvailableTokensPerClass returns the unallocated capacity of each class
func (p *CappedPool) AvailableTokensPerClass() [NumClasses]math.Int {
	var available [NumClasses]math.Int
	for i := range available {
		available[i] = p.ClassCaps[i].Sub(p.ClassBalances[i])
	}
	return available
}

// TokenPrice returns the pool token price for a given pool value.
// An empty pool prices at the immutable seed price.
func (p *CappedPool) TokenPrice(poolValue math.LegacyDec) math.LegacyDec {
	if p.TotalSupply.IsZero() {
		return p.SeedPrice
	}
	return poolValue.Quo(math.LegacyNewDecFromInt(p.TotalSupply))
}

// HasAvailableAsset reports whether asset is on the manager's whitelist
func (p *CappedPool) HasAvailableAsset(asset string) bool {
	for _, a := range p.AvailableAssets {
		if a == asset {
			return true
		}
	}
	return false
}

// HasDepositAsset reports whether asset is accepted for deposit
func (p *CappedPool) HasDepositAsset(asset string) bool {
	for _, a := range p.DepositAssets {
		if a == asset {
			return true
		}
	}
	return false
}

// AddAvailableAsset appends asset to the whitelist
func (p *CappedPool) AddAvailableAsset(asset string, maxPositions int64) error {
	if p.HasAvailableAsset(asset) {
		return ErrAssetAlreadyAdded
	}
	if int64(len(p.AvailableAssets)) >= maxPositions {
		return ErrTooManyPositions
	}
	p.AvailableAssets = append(p.AvailableAssets, asset)
	return nil
}

// RemoveAvailableAsset removes asset from the whitelist, revoking
// deposit eligibility with it
func (p *CappedPool) RemoveAvailableAsset(asset string) error {
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
func (p *CappedPool) AddDepositAsset(asset string) error {
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
func (p *CappedPool) RemoveDepositAsset(asset string) error {
	for i, a := range p.DepositAssets {
		if a == asset {
			p.DepositAssets = append(p.DepositAssets[:i], p.DepositAssets[i+1:]...)
			return nil
		}
	}
	return ErrAssetNotDepositAsset
}

// AssetBalance returns the pool's balance of asset
func (p *CappedPool) AssetBalance(asset string) math.LegacyDec {
	if bal, ok := p.AssetBalances[asset]; ok && !bal.IsNil() {
		return bal
	}
	return math.LegacyZeroDec()
}

// CreditAsset increases the pool's balance of asset
func (p *CappedPool) CreditAsset(asset string, amount math.LegacyDec) {
	if p.AssetBalances == nil {
		p.AssetBalances = map[string]math.LegacyDec{}
	}
	p.AssetBalances[asset] = p.AssetBalance(asset).Add(amount)
}

// DebitAsset decreases the pool's balance of asset
func (p *CappedPool) DebitAsset(asset string, amount math.LegacyDec) error {
	bal := p.AssetBalance(asset)
	if bal.LT(amount) {
		return ErrInsufficientBalance
	}
	p.AssetBalances[asset] = bal.Sub(amount)
	return nil
}

// CanTakeSnapshot gates snapshots by the minimum interval. The very
// first snapshot is exempt.
func CanTakeSnapshot(lastSnapshotTime, now, minInterval int64) error {
	if lastSnapshotTime == 0 {
		return nil
	}
	if now-lastSnapshotTime < minInterval {
		return ErrTooSoon
	}
	return nil
}

// ValidateSnapshotProfit enforces the high-water mark: fees only accrue
// on new highs, never against a drawdown.
func ValidateSnapshotProfit(currentProfit, lastProfit math.LegacyDec) error {
	if currentProfit.LT(lastProfit) {
		return ErrProfitDecreased
	}
	return nil
}

// ClassBalanceSet is a holder's per-class token balances
type ClassBalanceSet [NumClasses]math.Int

// NewClassBalanceSet returns a zeroed balance set
func NewClassBalanceSet() ClassBalanceSet {
	var set ClassBalanceSet
	for i := range set {
		set[i] = math.ZeroInt()
	}
	return set
}

// Total returns the holder's aggregate balance across classes
func (s ClassBalanceSet) Total() math.Int {
	total := math.ZeroInt()
	for _, bal := range s {
		if !bal.IsNil() {
			total = total.Add(bal)
		}
	}
	return total
}

// IsZero reports whether every class balance is zero
func (s ClassBalanceSet) IsZero() bool {
	return s.Total().IsZero()
}

// DepositRecord is an audit record of a single capped pool deposit
type DepositRecord struct {
	DepositID     string               `json:"deposit_id"`
	PoolID        string               `json:"pool_id"`
	Depositor     string               `json:"depositor"`
	Asset         string               `json:"asset"`
	AssetAmount   math.LegacyDec       `json:"asset_amount"`
	USDValue      math.LegacyDec       `json:"usd_value"`
	TokenQuantity math.Int             `json:"token_quantity"`
	Allocation    [NumClasses]math.Int `json:"allocation"`
	TokenPrice    math.LegacyDec       `json:"token_price"`
	DepositedAt   int64                `json:"deposited_at"`
}

// WithdrawalRecord is an audit record of a single capped pool withdrawal
type WithdrawalRecord struct {
	WithdrawalID  string                    `json:"withdrawal_id"`
	PoolID        string                    `json:"pool_id"`
	Withdrawer    string                    `json:"withdrawer"`
	Class         int                       `json:"class"`
	TokenQuantity math.Int                  `json:"token_quantity"`
	AssetsOut     map[string]math.LegacyDec `json:"assets_out"`
	WithdrawnAt   int64                     `json:"withdrawn_at"`
}

// SnapshotRecord is an audit record of a successful fee snapshot
type SnapshotRecord struct {
	SnapshotID string         `json:"snapshot_id"`
	PoolID     string         `json:"pool_id"`
	Profit     math.LegacyDec `json:"profit"`
	PoolValue  math.LegacyDec `json:"pool_value"`
	TakenAt    int64          `json:"taken_at"`
}

// GenerateID generates a unique ID with a prefix
func GenerateID(prefix string) string {
	return prefix + "-" + strings.Split(uuid.NewString(), "-")[0]
}

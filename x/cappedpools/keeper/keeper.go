package keeper

import (
	"context"
	"encoding/json"
	"strings"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/cappedpools/types"
)

// Store key prefixes
var (
	PoolKeyPrefix          = []byte{0x01}
	ClassBalanceKeyPrefix  = []byte{0x02}
	UserDepositKeyPrefix   = []byte{0x03}
	ManagerPoolsKeyPrefix  = []byte{0x04}
	DepositRecKeyPrefix    = []byte{0x05}
	WithdrawalRecKeyPrefix = []byte{0x06}
	SnapshotRecKeyPrefix   = []byte{0x07}
)

// AssetsKeeper defines the expected interface for the assets registry
type AssetsKeeper interface {
	IsValidAsset(ctx sdk.Context, address string) bool
	GetUSDPrice(ctx sdk.Context, address string) (math.LegacyDec, error)
	GetStableCoinAddress(ctx sdk.Context) (string, error)
}

// SettingsKeeper defines the expected interface for the settings module
type SettingsKeeper interface {
	GetInt(ctx sdk.Context, name string) int64
}

// BankKeeper defines the expected interface for the bank module
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// Keeper manages the cappedpools module state
type Keeper struct {
	cdc            codec.BinaryCodec
	storeKey       storetypes.StoreKey
	assetsKeeper   AssetsKeeper
	settingsKeeper SettingsKeeper
	bankKeeper     BankKeeper
	logger         log.Logger
	authority      string
}

// NewKeeper creates a new cappedpools keeper
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	assetsKeeper AssetsKeeper,
	settingsKeeper SettingsKeeper,
	bankKeeper BankKeeper,
	authority string,
	logger log.Logger,
) *Keeper {
	return &Keeper{
		cdc:            cdc,
		storeKey:       storeKey,
		assetsKeeper:   assetsKeeper,
		settingsKeeper: settingsKeeper,
		bankKeeper:     bankKeeper,
		authority:      authority,
		logger:         logger.With("module", "x/cappedpools"),
	}
}

// Logger returns the module logger
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// GetAuthority returns the governance authority address
func (k *Keeper) GetAuthority() string {
	return k.authority
}

// GetStore returns the KVStore
func (k *Keeper) GetStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// ============ Pool Operations ============

// SetPool saves a capped pool to the store
func (k *Keeper) SetPool(ctx sdk.Context, pool *types.CappedPool) {
	store := k.GetStore(ctx)
	key := append(PoolKeyPrefix, []byte(pool.PoolID)...)
	bz, _ := json.Marshal(pool)
	store.Set(key, bz)
}

// GetPool retrieves a capped pool from the store
func (k *Keeper) GetPool(ctx sdk.Context, poolID string) *types.CappedPool {
	store := k.GetStore(ctx)
	key := append(PoolKeyPrefix, []byte(poolID)...)
	bz := store.Get(key)
	if bz == nil {
		return nil
	}
	var pool types.CappedPool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return nil
	}
	return &pool
}

// GetAllPools returns all capped pools
func (k *Keeper) GetAllPools(ctx sdk.Context) []*types.CappedPool {
	store := k.GetStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	var pools []*types.CappedPool
	for ; iterator.Valid(); iterator.Next() {
		var pool types.CappedPool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			continue
		}
		pools = append(pools, &pool)
	}
	return pools
}

// ============ Class Balance Operations ============

func classBalanceKey(poolID, holder string) []byte {
	return append(ClassBalanceKeyPrefix, []byte(poolID+":"+holder)...)
}

func userDepositKey(poolID, holder string) []byte {
	return append(UserDepositKeyPrefix, []byte(poolID+":"+holder)...)
}

// GetClassBalances returns a holder's per-class token balances in a pool
func (k *Keeper) GetClassBalances(ctx sdk.Context, poolID, holder string) types.ClassBalanceSet {
	store := k.GetStore(ctx)
	bz := store.Get(classBalanceKey(poolID, holder))
	if bz == nil {
		return types.NewClassBalanceSet()
	}
	var set types.ClassBalanceSet
	if err := json.Unmarshal(bz, &set); err != nil {
		return types.NewClassBalanceSet()
	}
	return set
}

// SetClassBalances writes a holder's per-class balances, deleting empty sets
func (k *Keeper) SetClassBalances(ctx sdk.Context, poolID, holder string, set types.ClassBalanceSet) {
	store := k.GetStore(ctx)
	key := classBalanceKey(poolID, holder)
	if set.IsZero() {
		store.Delete(key)
		return
	}
	bz, _ := json.Marshal(set)
	store.Set(key, bz)
}

// GetHolderClassBalances returns every holder's class balances in a pool
func (k *Keeper) GetHolderClassBalances(ctx sdk.Context, poolID string) map[string]types.ClassBalanceSet {
	store := k.GetStore(ctx)
	prefix := append(ClassBalanceKeyPrefix, []byte(poolID+":")...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	balances := map[string]types.ClassBalanceSet{}
	for ; iterator.Valid(); iterator.Next() {
		holder := strings.TrimPrefix(string(iterator.Key()), string(prefix))
		var set types.ClassBalanceSet
		if err := json.Unmarshal(iterator.Value(), &set); err != nil {
			continue
		}
		balances[holder] = set
	}
	return balances
}

// GetClassBalance returns a holder's balance of a single class
func (k *Keeper) GetClassBalance(ctx sdk.Context, poolID, holder string, class int) math.Int {
	if class < 0 || class >= types.NumClasses {
		return math.ZeroInt()
	}
	return k.GetClassBalances(ctx, poolID, holder)[class]
}

// GetPoolManager returns the manager address of a pool
func (k *Keeper) GetPoolManager(ctx sdk.Context, poolID string) (string, error) {
	pool := k.GetPool(ctx, poolID)
	if pool == nil {
		return "", types.ErrPoolNotFound
	}
	return pool.Manager, nil
}

// GetUserDeposit returns a holder's cost-basis in a pool
func (k *Keeper) GetUserDeposit(ctx sdk.Context, poolID, holder string) math.LegacyDec {
	store := k.GetStore(ctx)
	bz := store.Get(userDepositKey(poolID, holder))
	if bz == nil {
		return math.LegacyZeroDec()
	}
	var dep math.LegacyDec
	if err := json.Unmarshal(bz, &dep); err != nil {
		return math.LegacyZeroDec()
	}
	return dep
}

// SetUserDeposit writes a holder's cost-basis, deleting zero entries
func (k *Keeper) SetUserDeposit(ctx sdk.Context, poolID, holder string, deposit math.LegacyDec) {
	store := k.GetStore(ctx)
	key := userDepositKey(poolID, holder)
	if deposit.IsZero() {
		store.Delete(key)
		return
	}
	bz, _ := json.Marshal(deposit)
	store.Set(key, bz)
}

// ============ Manager Pool Count ============

func managerPoolKey(manager, poolID string) []byte {
	return append(ManagerPoolsKeyPrefix, []byte(manager+":"+poolID)...)
}

// AddManagerPool indexes a pool under its manager
func (k *Keeper) AddManagerPool(ctx sdk.Context, manager, poolID string) {
	store := k.GetStore(ctx)
	store.Set(managerPoolKey(manager, poolID), []byte(poolID))
}

// CountManagerPools returns the number of capped pools created by a manager
func (k *Keeper) CountManagerPools(ctx sdk.Context, manager string) int64 {
	store := k.GetStore(ctx)
	prefix := append(ManagerPoolsKeyPrefix, []byte(manager+":")...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	count := int64(0)
	for ; iterator.Valid(); iterator.Next() {
		count++
	}
	return count
}

// ============ Audit Records ============

// SetDepositRecord saves a deposit record to the store
func (k *Keeper) SetDepositRecord(ctx sdk.Context, rec *types.DepositRecord) {
	store := k.GetStore(ctx)
	key := append(DepositRecKeyPrefix, []byte(rec.Depositor+":"+rec.DepositID)...)
	bz, _ := json.Marshal(rec)
	store.Set(key, bz)
}

// SetWithdrawalRecord saves a withdrawal record to the store
func (k *Keeper) SetWithdrawalRecord(ctx sdk.Context, rec *types.WithdrawalRecord) {
	store := k.GetStore(ctx)
	key := append(WithdrawalRecKeyPrefix, []byte(rec.Withdrawer+":"+rec.WithdrawalID)...)
	bz, _ := json.Marshal(rec)
	store.Set(key, bz)
}

// SetSnapshotRecord saves a snapshot record to the store
func (k *Keeper) SetSnapshotRecord(ctx sdk.Context, rec *types.SnapshotRecord) {
	store := k.GetStore(ctx)
	key := append(SnapshotRecKeyPrefix, []byte(rec.PoolID+":"+rec.SnapshotID)...)
	bz, _ := json.Marshal(rec)
	store.Set(key, bz)
}

// GetPoolSnapshots returns the snapshot history of a pool
func (k *Keeper) GetPoolSnapshots(ctx sdk.Context, poolID string) []*types.SnapshotRecord {
	store := k.GetStore(ctx)
	prefix := append(SnapshotRecKeyPrefix, []byte(poolID+":")...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var records []*types.SnapshotRecord
	for ; iterator.Valid(); iterator.Next() {
		var rec types.SnapshotRecord
		if err := json.Unmarshal(iterator.Value(), &rec); err != nil {
			continue
		}
		records = append(records, &rec)
	}
	return records
}

// ============ Valuation ============

// GetPoolValue computes the total USD value of a capped pool. A missing
// price fails the whole valuation.
func (k *Keeper) GetPoolValue(ctx sdk.Context, pool *types.CappedPool) (math.LegacyDec, error) {
	total := math.LegacyZeroDec()
	for _, asset := range pool.AvailableAssets {
		balance := pool.AssetBalance(asset)
		if balance.IsZero() {
			continue
		}
		price, err := k.assetsKeeper.GetUSDPrice(ctx, asset)
		if err != nil {
			return math.LegacyZeroDec(), err
		}
		total = total.Add(balance.Mul(price))
	}
	return total, nil
}

// GetTokenPrice returns the pool's current token price
func (k *Keeper) GetTokenPrice(ctx sdk.Context, pool *types.CappedPool) (math.LegacyDec, error) {
	value, err := k.GetPoolValue(ctx, pool)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	return pool.TokenPrice(value), nil
}

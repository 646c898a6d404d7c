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

	assetstypes "github.com/Tradegen/protocol-v2/x/assets/types"
	"github.com/Tradegen/protocol-v2/x/pools/types"
)

// Store key prefixes
var (
	PoolKeyPrefix         = []byte{0x01}
	BalanceKeyPrefix      = []byte{0x02}
	UserDepositKeyPrefix  = []byte{0x03}
	ManagerPoolsKeyPrefix = []byte{0x04}
	ExecutionKeyPrefix    = []byte{0x05}
	DepositRecKeyPrefix   = []byte{0x06}
	WithdrawalRecKeyPrefix = []byte{0x07}
)

// AssetsKeeper defines the expected interface for the assets registry
type AssetsKeeper interface {
	IsValidAsset(ctx sdk.Context, address string) bool
	GetUSDPrice(ctx sdk.Context, address string) (math.LegacyDec, error)
	GetStableCoinAddress(ctx sdk.Context) (string, error)
	HasVerifier(ctx sdk.Context, address string) bool
	VerifyTransaction(ctx sdk.Context, target, action string, amount math.LegacyDec, sourceAsset string) ([]assetstypes.BalanceDelta, error)
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

// Keeper manages the pools module state
type Keeper struct {
	cdc            codec.BinaryCodec
	storeKey       storetypes.StoreKey
	assetsKeeper   AssetsKeeper
	settingsKeeper SettingsKeeper
	bankKeeper     BankKeeper
	logger         log.Logger
	authority      string
}

// NewKeeper creates a new pools keeper
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
		logger:         logger.With("module", "x/pools"),
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

// SetPool saves a pool to the store
func (k *Keeper) SetPool(ctx sdk.Context, pool *types.Pool) {
	store := k.GetStore(ctx)
	key := append(PoolKeyPrefix, []byte(pool.PoolID)...)
	bz, _ := json.Marshal(pool)
	store.Set(key, bz)
}

// GetPool retrieves a pool from the store
func (k *Keeper) GetPool(ctx sdk.Context, poolID string) *types.Pool {
	store := k.GetStore(ctx)
	key := append(PoolKeyPrefix, []byte(poolID)...)
	bz := store.Get(key)
	if bz == nil {
		return nil
	}
	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return nil
	}
	return &pool
}

// GetAllPools returns all pools
func (k *Keeper) GetAllPools(ctx sdk.Context) []*types.Pool {
	store := k.GetStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	var pools []*types.Pool
	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			continue
		}
		pools = append(pools, &pool)
	}
	return pools
}

// ============ Share Balance Operations ============

func balanceKey(poolID, holder string) []byte {
	return append(BalanceKeyPrefix, []byte(poolID+":"+holder)...)
}

func userDepositKey(poolID, holder string) []byte {
	return append(UserDepositKeyPrefix, []byte(poolID+":"+holder)...)
}

// GetBalance returns a holder's share balance in a pool
func (k *Keeper) GetBalance(ctx sdk.Context, poolID, holder string) math.LegacyDec {
	store := k.GetStore(ctx)
	bz := store.Get(balanceKey(poolID, holder))
	if bz == nil {
		return math.LegacyZeroDec()
	}
	var bal math.LegacyDec
	if err := json.Unmarshal(bz, &bal); err != nil {
		return math.LegacyZeroDec()
	}
	return bal
}

// SetBalance writes a holder's share balance, deleting zero entries
func (k *Keeper) SetBalance(ctx sdk.Context, poolID, holder string, balance math.LegacyDec) {
	store := k.GetStore(ctx)
	key := balanceKey(poolID, holder)
	if balance.IsZero() {
		store.Delete(key)
		return
	}
	bz, _ := json.Marshal(balance)
	store.Set(key, bz)
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

// GetHolderBalances returns every holder balance in a pool
func (k *Keeper) GetHolderBalances(ctx sdk.Context, poolID string) map[string]math.LegacyDec {
	store := k.GetStore(ctx)
	prefix := append(BalanceKeyPrefix, []byte(poolID+":")...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	balances := map[string]math.LegacyDec{}
	for ; iterator.Valid(); iterator.Next() {
		holder := strings.TrimPrefix(string(iterator.Key()), string(prefix))
		var bal math.LegacyDec
		if err := json.Unmarshal(iterator.Value(), &bal); err != nil {
			continue
		}
		balances[holder] = bal
	}
	return balances
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

// CountManagerPools returns the number of pools created by a manager
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

// GetUserDepositRecords returns all deposit records for a user
func (k *Keeper) GetUserDepositRecords(ctx sdk.Context, user string) []*types.DepositRecord {
	store := k.GetStore(ctx)
	prefix := append(DepositRecKeyPrefix, []byte(user+":")...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var records []*types.DepositRecord
	for ; iterator.Valid(); iterator.Next() {
		var rec types.DepositRecord
		if err := json.Unmarshal(iterator.Value(), &rec); err != nil {
			continue
		}
		records = append(records, &rec)
	}
	return records
}

// SetWithdrawalRecord saves a withdrawal record to the store
func (k *Keeper) SetWithdrawalRecord(ctx sdk.Context, rec *types.WithdrawalRecord) {
	store := k.GetStore(ctx)
	key := append(WithdrawalRecKeyPrefix, []byte(rec.Withdrawer+":"+rec.WithdrawalID)...)
	bz, _ := json.Marshal(rec)
	store.Set(key, bz)
}

// SetExecutionRecord saves an execution record to the store
func (k *Keeper) SetExecutionRecord(ctx sdk.Context, rec *types.ExecutionRecord) {
	store := k.GetStore(ctx)
	key := append(ExecutionKeyPrefix, []byte(rec.PoolID+":"+rec.ExecutionID)...)
	bz, _ := json.Marshal(rec)
	store.Set(key, bz)
}

// GetPoolExecutions returns all execution records for a pool
func (k *Keeper) GetPoolExecutions(ctx sdk.Context, poolID string) []*types.ExecutionRecord {
	store := k.GetStore(ctx)
	prefix := append(ExecutionKeyPrefix, []byte(poolID+":")...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var records []*types.ExecutionRecord
	for ; iterator.Valid(); iterator.Next() {
		var rec types.ExecutionRecord
		if err := json.Unmarshal(iterator.Value(), &rec); err != nil {
			continue
		}
		records = append(records, &rec)
	}
	return records
}

package keeper

import (
	"encoding/json"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/assets/types"
)

// Store key prefixes
var (
	AssetKeyPrefix      = []byte{0x01}
	StableCoinKey       = []byte{0x02}
)

// Keeper manages the assets module state
type Keeper struct {
	cdc       codec.BinaryCodec
	storeKey  storetypes.StoreKey
	logger    log.Logger
	authority string
}

// NewKeeper creates a new assets keeper
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	authority string,
	logger log.Logger,
) *Keeper {
	return &Keeper{
		cdc:       cdc,
		storeKey:  storeKey,
		authority: authority,
		logger:    logger.With("module", "x/assets"),
	}
}

// Logger returns the module logger
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// GetAuthority returns the registry owner address
func (k *Keeper) GetAuthority() string {
	return k.authority
}

// GetStore returns the KVStore
func (k *Keeper) GetStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

func assetKey(address string) []byte {
	return append(AssetKeyPrefix, []byte(address)...)
}

// SetAsset saves an asset to the store
func (k *Keeper) SetAsset(ctx sdk.Context, asset *types.Asset) {
	store := k.GetStore(ctx)
	bz, _ := json.Marshal(asset)
	store.Set(assetKey(asset.Address), bz)

	if asset.IsStableCoin {
		store.Set(StableCoinKey, []byte(asset.Address))
	}
}

// GetAsset retrieves an asset from the store
func (k *Keeper) GetAsset(ctx sdk.Context, address string) *types.Asset {
	store := k.GetStore(ctx)
	bz := store.Get(assetKey(address))
	if bz == nil {
		return nil
	}
	var asset types.Asset
	if err := json.Unmarshal(bz, &asset); err != nil {
		return nil
	}
	return &asset
}

// GetAllAssets returns all registered assets
func (k *Keeper) GetAllAssets(ctx sdk.Context) []*types.Asset {
	store := k.GetStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, AssetKeyPrefix)
	defer iterator.Close()

	var assets []*types.Asset
	for ; iterator.Valid(); iterator.Next() {
		var asset types.Asset
		if err := json.Unmarshal(iterator.Value(), &asset); err != nil {
			continue
		}
		assets = append(assets, &asset)
	}
	return assets
}

// ============ Registry interface consumed by the pool modules ============

// IsValidAsset reports whether the address is a registered asset
func (k *Keeper) IsValidAsset(ctx sdk.Context, address string) bool {
	return k.GetAsset(ctx, address) != nil
}

// GetAssetType returns the asset class of a registered asset
func (k *Keeper) GetAssetType(ctx sdk.Context, address string) (uint32, error) {
	asset := k.GetAsset(ctx, address)
	if asset == nil {
		return 0, types.ErrAssetNotFound
	}
	return asset.AssetType, nil
}

// GetUSDPrice returns the 18-decimal USD price of one unit of the asset.
// Valuation is fail-fast: an unregistered asset or a non-positive price
// aborts the whole enclosing operation.
func (k *Keeper) GetUSDPrice(ctx sdk.Context, address string) (math.LegacyDec, error) {
	asset := k.GetAsset(ctx, address)
	if asset == nil {
		return math.LegacyZeroDec(), types.ErrAssetNotFound
	}
	if asset.Price.IsNil() || !asset.Price.IsPositive() {
		return math.LegacyZeroDec(), types.ErrPriceUnavailable
	}
	return asset.Price, nil
}

// GetDecimals returns the number of decimals for a registered asset
func (k *Keeper) GetDecimals(ctx sdk.Context, address string) (uint32, error) {
	asset := k.GetAsset(ctx, address)
	if asset == nil {
		return 0, types.ErrAssetNotFound
	}
	return asset.Decimals, nil
}

// GetStableCoinAddress returns the designated stablecoin address
func (k *Keeper) GetStableCoinAddress(ctx sdk.Context) (string, error) {
	store := k.GetStore(ctx)
	bz := store.Get(StableCoinKey)
	if bz == nil {
		return "", types.ErrNoStableCoin
	}
	return string(bz), nil
}

// HasVerifier reports whether a verifier is registered for the target
func (k *Keeper) HasVerifier(ctx sdk.Context, address string) bool {
	asset := k.GetAsset(ctx, address)
	return asset != nil && asset.HasVerifier
}

// UpdatePrice sets a new price for a registered asset
func (k *Keeper) UpdatePrice(ctx sdk.Context, address string, price math.LegacyDec) error {
	asset := k.GetAsset(ctx, address)
	if asset == nil {
		return types.ErrAssetNotFound
	}
	if !price.IsPositive() {
		return types.ErrInvalidPrice
	}
	asset.Price = price
	asset.UpdatedAt = ctx.BlockTime().Unix()
	k.SetAsset(ctx, asset)
	return nil
}

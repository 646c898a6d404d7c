package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/marketplace/types"
)

// Store key prefixes
var (
	ListingKeyPrefix    = []byte{0x01}
	NextIndexKey        = []byte{0x02}
	SellerPoolKeyPrefix = []byte{0x03}
	SaleRecKeyPrefix    = []byte{0x04}
)

// CappedPoolsKeeper defines the expected interface for the cappedpools module
type CappedPoolsKeeper interface {
	GetPoolManager(ctx sdk.Context, poolID string) (string, error)
	GetClassBalance(ctx sdk.Context, poolID, holder string, class int) math.Int
	TransferTokens(ctx context.Context, from, to, poolID string, class int, quantity math.Int) error
}

// AssetsKeeper defines the expected interface for the assets registry
type AssetsKeeper interface {
	GetStableCoinAddress(ctx sdk.Context) (string, error)
}

// SettingsKeeper defines the expected interface for the settings module
type SettingsKeeper interface {
	GetInt(ctx sdk.Context, name string) int64
}

// BankKeeper defines the expected interface for the bank module
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
}

// Keeper manages the marketplace module state
type Keeper struct {
	cdc               codec.BinaryCodec
	storeKey          storetypes.StoreKey
	cappedPoolsKeeper CappedPoolsKeeper
	assetsKeeper      AssetsKeeper
	settingsKeeper    SettingsKeeper
	bankKeeper        BankKeeper
	askBook           *askBook
	logger            log.Logger
	authority         string
}

// NewKeeper creates a new marketplace keeper
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	cappedPoolsKeeper CappedPoolsKeeper,
	assetsKeeper AssetsKeeper,
	settingsKeeper SettingsKeeper,
	bankKeeper BankKeeper,
	authority string,
	logger log.Logger,
) *Keeper {
	return &Keeper{
		cdc:               cdc,
		storeKey:          storeKey,
		cappedPoolsKeeper: cappedPoolsKeeper,
		assetsKeeper:      assetsKeeper,
		settingsKeeper:    settingsKeeper,
		bankKeeper:        bankKeeper,
		askBook:           newAskBook(),
		authority:         authority,
		logger:            logger.With("module", "x/marketplace"),
	}
}

// Logger returns the module logger
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// GetStore returns the KVStore
func (k *Keeper) GetStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// ============ Listing Operations ============

func listingKey(index uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, index)
	return append(ListingKeyPrefix, bz...)
}

func sellerPoolKey(seller, poolID string) []byte {
	return append(SellerPoolKeyPrefix, []byte(seller+":"+poolID)...)
}

// NextListingIndex allocates the next monotone listing index, starting at 1
func (k *Keeper) NextListingIndex(ctx sdk.Context) uint64 {
	store := k.GetStore(ctx)
	next := uint64(1)
	if bz := store.Get(NextIndexKey); bz != nil {
		next = binary.BigEndian.Uint64(bz)
	}
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, next+1)
	store.Set(NextIndexKey, bz)
	return next
}

// SetListing saves a listing and maintains the seller-pool index
func (k *Keeper) SetListing(ctx sdk.Context, listing *types.Listing) {
	store := k.GetStore(ctx)
	bz, _ := json.Marshal(listing)
	store.Set(listingKey(listing.Index), bz)

	key := sellerPoolKey(listing.Seller, listing.PoolID)
	if listing.Active {
		idx := make([]byte, 8)
		binary.BigEndian.PutUint64(idx, listing.Index)
		store.Set(key, idx)
		k.askBook.Insert(listing.PoolID, listing.TokenPrice, listing.Index)
	} else {
		store.Delete(key)
		k.askBook.Remove(listing.PoolID, listing.TokenPrice, listing.Index)
	}
}

// GetListing retrieves a listing by index
func (k *Keeper) GetListing(ctx sdk.Context, index uint64) *types.Listing {
	store := k.GetStore(ctx)
	bz := store.Get(listingKey(index))
	if bz == nil {
		return nil
	}
	var listing types.Listing
	if err := json.Unmarshal(bz, &listing); err != nil {
		return nil
	}
	return &listing
}

// HasActiveListing reports whether seller already lists tokens of pool
func (k *Keeper) HasActiveListing(ctx sdk.Context, seller, poolID string) bool {
	return k.GetStore(ctx).Has(sellerPoolKey(seller, poolID))
}

// GetPoolListings returns all active listings for a pool in index order
func (k *Keeper) GetPoolListings(ctx sdk.Context, poolID string) []*types.Listing {
	store := k.GetStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ListingKeyPrefix)
	defer iterator.Close()

	var listings []*types.Listing
	for ; iterator.Valid(); iterator.Next() {
		var listing types.Listing
		if err := json.Unmarshal(iterator.Value(), &listing); err != nil {
			continue
		}
		if listing.Active && listing.PoolID == poolID {
			listings = append(listings, &listing)
		}
	}
	return listings
}

// RebuildAskIndex repopulates the in-memory ask book from the store.
// Called once at startup; the book is maintained incrementally afterwards.
func (k *Keeper) RebuildAskIndex(ctx sdk.Context) {
	store := k.GetStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ListingKeyPrefix)
	defer iterator.Close()

	k.askBook.Clear()
	count := 0
	for ; iterator.Valid(); iterator.Next() {
		var listing types.Listing
		if err := json.Unmarshal(iterator.Value(), &listing); err != nil {
			continue
		}
		if listing.Active {
			k.askBook.Insert(listing.PoolID, listing.TokenPrice, listing.Index)
			count++
		}
	}
	k.logger.Info("Ask index rebuilt", "active_listings", count)
}

// BestAsk returns the index of the cheapest active listing for a pool
func (k *Keeper) BestAsk(ctx sdk.Context, poolID string) (*types.Listing, bool) {
	index, ok := k.askBook.Best(poolID)
	if !ok {
		return nil, false
	}
	listing := k.GetListing(ctx, index)
	if listing == nil || !listing.Active {
		return nil, false
	}
	return listing, true
}

// ============ Sale Records ============

// SetSaleRecord saves a sale record to the store
func (k *Keeper) SetSaleRecord(ctx sdk.Context, rec *types.SaleRecord) {
	store := k.GetStore(ctx)
	key := append(SaleRecKeyPrefix, []byte(rec.PoolID+":"+rec.SaleID)...)
	bz, _ := json.Marshal(rec)
	store.Set(key, bz)
}

// GetPoolSales returns the sale history of a pool
func (k *Keeper) GetPoolSales(ctx sdk.Context, poolID string) []*types.SaleRecord {
	store := k.GetStore(ctx)
	prefix := append(SaleRecKeyPrefix, []byte(poolID+":")...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var records []*types.SaleRecord
	for ; iterator.Valid(); iterator.Next() {
		var rec types.SaleRecord
		if err := json.Unmarshal(iterator.Value(), &rec); err != nil {
			continue
		}
		records = append(records, &rec)
	}
	return records
}

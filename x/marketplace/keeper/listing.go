package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/marketplace/types"
)

// CreateListing lists capped pool tokens of one class for sale. The
// seller must hold the listed quantity, and may run at most one active
// listing per pool.
func (k *Keeper) CreateListing(ctx context.Context, seller, poolID string, class int, quantity math.Int, tokenPrice math.LegacyDec) (*types.Listing, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if _, err := k.cappedPoolsKeeper.GetPoolManager(sdkCtx, poolID); err != nil {
		return nil, types.ErrPoolNotFound
	}
	if !quantity.IsPositive() {
		return nil, types.ErrInvalidQuantity
	}
	if !tokenPrice.IsPositive() {
		return nil, types.ErrInvalidPrice
	}
	if k.HasActiveListing(sdkCtx, seller, poolID) {
		return nil, types.ErrListingExists
	}
	if k.cappedPoolsKeeper.GetClassBalance(sdkCtx, poolID, seller, class).LT(quantity) {
		return nil, types.ErrInsufficientTokens
	}

	index := k.NextListingIndex(sdkCtx)
	listing := types.NewListing(index, poolID, seller, class, quantity, tokenPrice, sdkCtx.BlockTime().Unix())
	k.SetListing(sdkCtx, listing)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"marketplace_listing_created",
			sdk.NewAttribute("index", strconv.FormatUint(index, 10)),
			sdk.NewAttribute("pool_id", poolID),
			sdk.NewAttribute("seller", seller),
			sdk.NewAttribute("class", strconv.Itoa(class)),
			sdk.NewAttribute("quantity", quantity.String()),
			sdk.NewAttribute("token_price", tokenPrice.String()),
		),
	)

	k.logger.Info("Listing created",
		"index", index,
		"pool_id", poolID,
		"seller", seller,
		"class", class,
		"quantity", quantity.String(),
		"token_price", tokenPrice.String(),
	)

	return listing, nil
}

// RemoveListing deactivates a seller's listing
func (k *Keeper) RemoveListing(ctx context.Context, seller string, index uint64) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	listing := k.GetListing(sdkCtx, index)
	if listing == nil {
		return types.ErrListingNotFound
	}
	if listing.Seller != seller {
		return types.ErrUnauthorized
	}
	if !listing.Active {
		return types.ErrListingInactive
	}

	// Drop from the ask book before the price field is overwritten
	k.askBook.Remove(listing.PoolID, listing.TokenPrice, listing.Index)
	listing.Active = false
	listing.UpdatedAt = sdkCtx.BlockTime().Unix()
	k.SetListing(sdkCtx, listing)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"marketplace_listing_removed",
			sdk.NewAttribute("index", strconv.FormatUint(index, 10)),
			sdk.NewAttribute("pool_id", listing.PoolID),
		),
	)

	k.logger.Info("Listing removed", "index", index, "pool_id", listing.PoolID)
	return nil
}

// UpdatePrice changes the asking price of an active listing
func (k *Keeper) UpdatePrice(ctx context.Context, seller string, index uint64, newPrice math.LegacyDec) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	listing := k.GetListing(sdkCtx, index)
	if listing == nil {
		return types.ErrListingNotFound
	}
	if listing.Seller != seller {
		return types.ErrUnauthorized
	}
	if !listing.Active {
		return types.ErrListingInactive
	}
	if !newPrice.IsPositive() {
		return types.ErrInvalidPrice
	}

	k.askBook.Remove(listing.PoolID, listing.TokenPrice, listing.Index)
	listing.TokenPrice = newPrice
	listing.UpdatedAt = sdkCtx.BlockTime().Unix()
	k.SetListing(sdkCtx, listing)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"marketplace_price_updated",
			sdk.NewAttribute("index", strconv.FormatUint(index, 10)),
			sdk.NewAttribute("new_price", newPrice.String()),
		),
	)

	k.logger.Info("Listing price updated", "index", index, "new_price", newPrice.String())
	return nil
}

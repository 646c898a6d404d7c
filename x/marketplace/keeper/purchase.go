package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/metrics"
	"github.com/Tradegen/protocol-v2/x/marketplace/types"
	settingstypes "github.com/Tradegen/protocol-v2/x/settings/types"
)

// Purchase fills part or all of a listing. The buyer pays in the
// protocol stablecoin; the payment is split into a protocol fee, a fee
// to the pool's manager, and the seller's proceeds. Tokens move from
// seller to buyer with their cost-basis share, exactly as a direct
// transfer would.
func (k *Keeper) Purchase(ctx context.Context, buyer string, index uint64, quantity math.Int) (*types.SaleRecord, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	listing := k.GetListing(sdkCtx, index)
	if listing == nil {
		return nil, types.ErrListingNotFound
	}
	if !listing.Active {
		return nil, types.ErrListingInactive
	}
	if buyer == listing.Seller {
		return nil, types.ErrSelfPurchase
	}
	if !quantity.IsPositive() {
		return nil, types.ErrInvalidQuantity
	}
	if quantity.GT(listing.Quantity) {
		return nil, types.ErrInsufficientQuantity
	}

	manager, err := k.cappedPoolsKeeper.GetPoolManager(sdkCtx, listing.PoolID)
	if err != nil {
		return nil, types.ErrPoolNotFound
	}
	stableCoin, err := k.assetsKeeper.GetStableCoinAddress(sdkCtx)
	if err != nil {
		return nil, err
	}

	gross := listing.TokenPrice.MulInt(quantity)
	split := types.ComputeFeeSplit(
		gross,
		k.settingsKeeper.GetInt(sdkCtx, settingstypes.MarketplaceProtocolFee),
		k.settingsKeeper.GetInt(sdkCtx, settingstypes.MarketplaceManagerFee),
	)

	buyerAddr, err := sdk.AccAddressFromBech32(buyer)
	if err != nil {
		return nil, err
	}
	sellerAddr, err := sdk.AccAddressFromBech32(listing.Seller)
	if err != nil {
		return nil, err
	}
	managerAddr, err := sdk.AccAddressFromBech32(manager)
	if err != nil {
		return nil, err
	}

	// Payment legs: protocol fee to the module account, manager fee and
	// net proceeds directly
	if split.ProtocolFee.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(stableCoin, split.ProtocolFee.TruncateInt()))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, buyerAddr, types.ModuleName, coins); err != nil {
			return nil, err
		}
	}
	if split.ManagerFee.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(stableCoin, split.ManagerFee.TruncateInt()))
		if err := k.bankKeeper.SendCoins(ctx, buyerAddr, managerAddr, coins); err != nil {
			return nil, err
		}
	}
	coins := sdk.NewCoins(sdk.NewCoin(stableCoin, split.SellerNet.TruncateInt()))
	if err := k.bankKeeper.SendCoins(ctx, buyerAddr, sellerAddr, coins); err != nil {
		return nil, err
	}

	if err := k.cappedPoolsKeeper.TransferTokens(ctx, listing.Seller, buyer, listing.PoolID, listing.Class, quantity); err != nil {
		return nil, err
	}

	now := sdkCtx.BlockTime().Unix()
	k.askBook.Remove(listing.PoolID, listing.TokenPrice, listing.Index)
	listing.Quantity = listing.Quantity.Sub(quantity)
	if listing.Quantity.IsZero() {
		listing.Active = false
	}
	listing.UpdatedAt = now
	k.SetListing(sdkCtx, listing)

	record := &types.SaleRecord{
		SaleID:       types.GenerateID("sale"),
		ListingIndex: index,
		PoolID:       listing.PoolID,
		Seller:       listing.Seller,
		Buyer:        buyer,
		Class:        listing.Class,
		Quantity:     quantity,
		TokenPrice:   listing.TokenPrice,
		GrossPaid:    gross,
		ProtocolFee:  split.ProtocolFee,
		ManagerFee:   split.ManagerFee,
		SoldAt:       now,
	}
	k.SetSaleRecord(sdkCtx, record)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"marketplace_purchase",
			sdk.NewAttribute("index", strconv.FormatUint(index, 10)),
			sdk.NewAttribute("pool_id", listing.PoolID),
			sdk.NewAttribute("buyer", buyer),
			sdk.NewAttribute("seller", listing.Seller),
			sdk.NewAttribute("quantity", quantity.String()),
			sdk.NewAttribute("gross_paid", gross.String()),
		),
	)

	k.logger.Info("Purchase settled",
		"index", index,
		"pool_id", listing.PoolID,
		"buyer", buyer,
		"quantity", quantity.String(),
		"gross_paid", gross.String(),
		"seller_net", split.SellerNet.String(),
	)

	metrics.GetCollector().RecordMarketplaceSale(listing.PoolID, gross.MustFloat64())

	return record, nil
}

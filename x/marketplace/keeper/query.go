package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/marketplace/types"
)

// QueryServer defines the marketplace QueryServer
type QueryServer struct {
	keeper *Keeper
}

// NewQueryServerImpl creates a new QueryServer instance
func NewQueryServerImpl(keeper *Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

// Listing returns a listing by index
func (q *QueryServer) Listing(ctx context.Context, index uint64) (*types.Listing, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	listing := q.keeper.GetListing(sdkCtx, index)
	if listing == nil {
		return nil, types.ErrListingNotFound
	}
	return listing, nil
}

// Listings returns the active listings for a pool
func (q *QueryServer) Listings(ctx context.Context, poolID string) ([]*types.Listing, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return q.keeper.GetPoolListings(sdkCtx, poolID), nil
}

// BestAsk returns the cheapest active listing for a pool
func (q *QueryServer) BestAsk(ctx context.Context, poolID string) (*types.Listing, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	listing, ok := q.keeper.BestAsk(sdkCtx, poolID)
	if !ok {
		return nil, types.ErrListingNotFound
	}
	return listing, nil
}

// Sales returns the sale history of a pool
func (q *QueryServer) Sales(ctx context.Context, poolID string) ([]*types.SaleRecord, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return q.keeper.GetPoolSales(sdkCtx, poolID), nil
}

package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/assets/types"
)

// QueryServer defines the assets QueryServer
type QueryServer struct {
	keeper *Keeper
}

// NewQueryServerImpl creates a new QueryServer instance
func NewQueryServerImpl(keeper *Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

// Asset returns a registered asset by address
func (q *QueryServer) Asset(ctx context.Context, address string) (*types.Asset, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	asset := q.keeper.GetAsset(sdkCtx, address)
	if asset == nil {
		return nil, types.ErrAssetNotFound
	}
	return asset, nil
}

// Assets returns all registered assets
func (q *QueryServer) Assets(ctx context.Context, offset, limit uint64) ([]*types.Asset, uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	all := q.keeper.GetAllAssets(sdkCtx)

	total := uint64(len(all))
	if offset >= total {
		return []*types.Asset{}, total, nil
	}
	end := offset + limit
	if end > total || limit == 0 {
		end = total
	}
	return all[offset:end], total, nil
}

// Price returns the current USD price for an asset
func (q *QueryServer) Price(ctx context.Context, address string) (math.LegacyDec, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return q.keeper.GetUSDPrice(sdkCtx, address)
}

// StableCoin returns the designated stablecoin address
func (q *QueryServer) StableCoin(ctx context.Context) (string, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return q.keeper.GetStableCoinAddress(sdkCtx)
}

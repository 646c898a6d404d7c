package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/cappedpools/types"
)

// QueryServer defines the cappedpools QueryServer
type QueryServer struct {
	keeper *Keeper
}

// NewQueryServerImpl creates a new QueryServer instance
func NewQueryServerImpl(keeper *Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

// Pool returns a capped pool by ID
func (q *QueryServer) Pool(ctx context.Context, poolID string) (*types.CappedPool, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool := q.keeper.GetPool(sdkCtx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound
	}
	return pool, nil
}

// Pools returns all capped pools with offset pagination
func (q *QueryServer) Pools(ctx context.Context, offset, limit uint64) ([]*types.CappedPool, uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	all := q.keeper.GetAllPools(sdkCtx)

	total := uint64(len(all))
	if offset >= total {
		return []*types.CappedPool{}, total, nil
	}
	end := offset + limit
	if end > total || limit == 0 {
		end = total
	}
	return all[offset:end], total, nil
}

// ClassBalances returns a holder's per-class token balances in a pool
func (q *QueryServer) ClassBalances(ctx context.Context, poolID, holder string) (types.ClassBalanceSet, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if q.keeper.GetPool(sdkCtx, poolID) == nil {
		return types.NewClassBalanceSet(), types.ErrPoolNotFound
	}
	return q.keeper.GetClassBalances(sdkCtx, poolID, holder), nil
}

// AvailableTokensPerClass returns the unallocated capacity of each class
func (q *QueryServer) AvailableTokensPerClass(ctx context.Context, poolID string) ([types.NumClasses]math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool := q.keeper.GetPool(sdkCtx, poolID)
	if pool == nil {
		var zero [types.NumClasses]math.Int
		return zero, types.ErrPoolNotFound
	}
	return pool.AvailableTokensPerClass(), nil
}

// TokenPrice returns a capped pool's current token price
func (q *QueryServer) TokenPrice(ctx context.Context, poolID string) (math.LegacyDec, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool := q.keeper.GetPool(sdkCtx, poolID)
	if pool == nil {
		return math.LegacyZeroDec(), types.ErrPoolNotFound
	}
	return q.keeper.GetTokenPrice(sdkCtx, pool)
}

// Snapshots returns the snapshot history of a pool
func (q *QueryServer) Snapshots(ctx context.Context, poolID string) ([]*types.SnapshotRecord, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if q.keeper.GetPool(sdkCtx, poolID) == nil {
		return nil, types.ErrPoolNotFound
	}
	return q.keeper.GetPoolSnapshots(sdkCtx, poolID), nil
}

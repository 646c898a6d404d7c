package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/pools/types"
)

// QueryServer defines the pools QueryServer
type QueryServer struct {
	keeper *Keeper
}

// NewQueryServerImpl creates a new QueryServer instance
func NewQueryServerImpl(keeper *Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

// Pool returns a pool by ID
func (q *QueryServer) Pool(ctx context.Context, poolID string) (*types.Pool, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool := q.keeper.GetPool(sdkCtx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound
	}
	return pool, nil
}

// Pools returns all pools with offset pagination
func (q *QueryServer) Pools(ctx context.Context, offset, limit uint64) ([]*types.Pool, uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	all := q.keeper.GetAllPools(sdkCtx)

	total := uint64(len(all))
	if offset >= total {
		return []*types.Pool{}, total, nil
	}
	end := offset + limit
	if end > total || limit == 0 {
		end = total
	}
	return all[offset:end], total, nil
}

// Balance returns a holder's share balance and cost-basis in a pool
func (q *QueryServer) Balance(ctx context.Context, poolID, holder string) (math.LegacyDec, math.LegacyDec, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if q.keeper.GetPool(sdkCtx, poolID) == nil {
		return math.LegacyZeroDec(), math.LegacyZeroDec(), types.ErrPoolNotFound
	}
	return q.keeper.GetBalance(sdkCtx, poolID, holder), q.keeper.GetUserDeposit(sdkCtx, poolID, holder), nil
}

// PositionsAndTotal returns the per-asset value decomposition of a pool
func (q *QueryServer) PositionsAndTotal(ctx context.Context, poolID string) (*types.PositionsAndTotal, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool := q.keeper.GetPool(sdkCtx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound
	}
	return q.keeper.GetPositionsAndTotal(sdkCtx, pool)
}

// TokenPrice returns a pool's current share price
func (q *QueryServer) TokenPrice(ctx context.Context, poolID string) (math.LegacyDec, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool := q.keeper.GetPool(sdkCtx, poolID)
	if pool == nil {
		return math.LegacyZeroDec(), types.ErrPoolNotFound
	}
	return q.keeper.GetTokenPrice(sdkCtx, pool)
}

// Executions returns the execution history of a pool
func (q *QueryServer) Executions(ctx context.Context, poolID string) ([]*types.ExecutionRecord, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if q.keeper.GetPool(sdkCtx, poolID) == nil {
		return nil, types.ErrPoolNotFound
	}
	return q.keeper.GetPoolExecutions(sdkCtx, poolID), nil
}

// Deposits returns the deposit history of a user across pools
func (q *QueryServer) Deposits(ctx context.Context, user string) ([]*types.DepositRecord, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return q.keeper.GetUserDepositRecords(sdkCtx, user), nil
}

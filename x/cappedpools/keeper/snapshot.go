package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/metrics"
	settingstypes "github.com/Tradegen/protocol-v2/x/settings/types"
	"github.com/Tradegen/protocol-v2/x/cappedpools/types"
)

// TakeSnapshot books the pool's unrealized profit against the fee
// high-water mark. Snapshots are rate limited and refuse to book a
// drawdown: fees only accrue on new highs. The caller must be the
// protocol snapshot authority, not the pool manager.
func (k *Keeper) TakeSnapshot(ctx context.Context, caller, poolID string) (*types.SnapshotRecord, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool := k.GetPool(sdkCtx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound
	}
	if caller != k.authority {
		return nil, types.ErrUnauthorized
	}

	minInterval := k.settingsKeeper.GetInt(sdkCtx, settingstypes.MinimumTimeBetweenSnapshots)
	now := sdkCtx.BlockTime().Unix()
	if err := types.CanTakeSnapshot(pool.SnapshotTime, now, minInterval); err != nil {
		return nil, err
	}

	poolValue, err := k.GetPoolValue(sdkCtx, pool)
	if err != nil {
		return nil, err
	}
	currentProfit := poolValue.Sub(pool.TotalDeposits)

	if err := types.ValidateSnapshotProfit(currentProfit, pool.SnapshotProfit); err != nil {
		return nil, err
	}

	pool.SnapshotTime = now
	pool.SnapshotProfit = currentProfit
	pool.UpdatedAt = now
	k.SetPool(sdkCtx, pool)

	record := &types.SnapshotRecord{
		SnapshotID: types.GenerateID("snap"),
		PoolID:     poolID,
		Profit:     currentProfit,
		PoolValue:  poolValue,
		TakenAt:    now,
	}
	k.SetSnapshotRecord(sdkCtx, record)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"capped_pool_snapshot",
			sdk.NewAttribute("pool_id", poolID),
			sdk.NewAttribute("profit", currentProfit.String()),
			sdk.NewAttribute("pool_value", poolValue.String()),
		),
	)

	k.logger.Info("Fee snapshot taken",
		"pool_id", poolID,
		"profit", currentProfit.String(),
		"pool_value", poolValue.String(),
	)

	metrics.GetCollector().RecordSnapshot(poolID, currentProfit.MustFloat64())

	return record, nil
}

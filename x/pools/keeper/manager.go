package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	settingstypes "github.com/Tradegen/protocol-v2/x/settings/types"
	"github.com/Tradegen/protocol-v2/x/pools/types"
)

// CreatePool registers a new managed pool. Each user may only create a
// limited number of pools and the performance fee is capped protocol-wide.
func (k *Keeper) CreatePool(ctx context.Context, manager, name string, performanceFee int64) (*types.Pool, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if len(name) == 0 || len(name) > 50 {
		return nil, types.ErrInvalidPoolName
	}
	if performanceFee < 0 || performanceFee > k.settingsKeeper.GetInt(sdkCtx, settingstypes.MaximumPerformanceFee) {
		return nil, types.ErrFeeTooHigh
	}
	maxPools := k.settingsKeeper.GetInt(sdkCtx, settingstypes.MaximumNumberOfPoolsPerUser)
	if k.CountManagerPools(sdkCtx, manager) >= maxPools {
		return nil, types.ErrTooManyPools
	}

	pool := types.NewPool(name, manager, performanceFee, sdkCtx.BlockTime().Unix())
	k.SetPool(sdkCtx, pool)
	k.AddManagerPool(sdkCtx, manager, pool.PoolID)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"pool_created",
			sdk.NewAttribute("pool_id", pool.PoolID),
			sdk.NewAttribute("name", name),
			sdk.NewAttribute("manager", manager),
		),
	)

	k.logger.Info("Pool created",
		"pool_id", pool.PoolID,
		"name", name,
		"manager", manager,
		"performance_fee", performanceFee,
	)

	return pool, nil
}

// AddAvailableAsset whitelists an asset for a pool. Only registered
// assets can be whitelisted, and the whitelist is capped.
func (k *Keeper) AddAvailableAsset(ctx context.Context, manager, poolID, asset string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool, err := k.managedPool(sdkCtx, manager, poolID)
	if err != nil {
		return err
	}
	if !k.assetsKeeper.IsValidAsset(sdkCtx, asset) {
		return types.ErrInvalidAsset
	}
	maxPositions := k.settingsKeeper.GetInt(sdkCtx, settingstypes.MaximumNumberOfPositionsInPool)
	if err := pool.AddAvailableAsset(asset, maxPositions); err != nil {
		return err
	}
	pool.UpdatedAt = sdkCtx.BlockTime().Unix()
	k.SetPool(sdkCtx, pool)

	k.logger.Info("Available asset added", "pool_id", poolID, "asset", asset)
	return nil
}

// RemoveAvailableAsset removes an asset from the pool whitelist and,
// with it, deposit eligibility.
func (k *Keeper) RemoveAvailableAsset(ctx context.Context, manager, poolID, asset string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool, err := k.managedPool(sdkCtx, manager, poolID)
	if err != nil {
		return err
	}
	if err := pool.RemoveAvailableAsset(asset); err != nil {
		return err
	}
	pool.UpdatedAt = sdkCtx.BlockTime().Unix()
	k.SetPool(sdkCtx, pool)

	k.logger.Info("Available asset removed", "pool_id", poolID, "asset", asset)
	return nil
}

// AddDepositAsset marks a whitelisted asset as accepted for deposit
func (k *Keeper) AddDepositAsset(ctx context.Context, manager, poolID, asset string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool, err := k.managedPool(sdkCtx, manager, poolID)
	if err != nil {
		return err
	}
	if err := pool.AddDepositAsset(asset); err != nil {
		return err
	}
	pool.UpdatedAt = sdkCtx.BlockTime().Unix()
	k.SetPool(sdkCtx, pool)

	k.logger.Info("Deposit asset added", "pool_id", poolID, "asset", asset)
	return nil
}

// RemoveDepositAsset removes deposit eligibility without touching the
// whitelist. The pool keeps trading the asset.
func (k *Keeper) RemoveDepositAsset(ctx context.Context, manager, poolID, asset string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool, err := k.managedPool(sdkCtx, manager, poolID)
	if err != nil {
		return err
	}
	if err := pool.RemoveDepositAsset(asset); err != nil {
		return err
	}
	pool.UpdatedAt = sdkCtx.BlockTime().Unix()
	k.SetPool(sdkCtx, pool)

	k.logger.Info("Deposit asset removed", "pool_id", poolID, "asset", asset)
	return nil
}

// SetPerformanceFee updates a pool's performance fee. Updates are rate
// limited so holders always see a fee change coming.
func (k *Keeper) SetPerformanceFee(ctx context.Context, manager, poolID string, fee int64) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool, err := k.managedPool(sdkCtx, manager, poolID)
	if err != nil {
		return err
	}
	if fee < 0 || fee > k.settingsKeeper.GetInt(sdkCtx, settingstypes.MaximumPerformanceFee) {
		return types.ErrFeeTooHigh
	}
	minInterval := k.settingsKeeper.GetInt(sdkCtx, settingstypes.MinimumTimeBetweenPerformanceFeeUpdates)
	now := sdkCtx.BlockTime().Unix()
	if pool.LastFeeUpdate > 0 && now-pool.LastFeeUpdate < minInterval {
		return types.ErrFeeUpdateTooSoon
	}

	pool.PerformanceFee = fee
	pool.LastFeeUpdate = now
	pool.UpdatedAt = now
	k.SetPool(sdkCtx, pool)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"pool_fee_updated",
			sdk.NewAttribute("pool_id", poolID),
			sdk.NewAttribute("fee", strconv.FormatInt(fee, 10)),
		),
	)

	k.logger.Info("Performance fee updated", "pool_id", poolID, "fee", fee)
	return nil
}

func (k *Keeper) managedPool(ctx sdk.Context, manager, poolID string) (*types.Pool, error) {
	pool := k.GetPool(ctx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound
	}
	if pool.Manager != manager {
		return nil, types.ErrUnauthorized
	}
	return pool, nil
}

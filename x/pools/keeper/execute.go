package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/metrics"
	"github.com/Tradegen/protocol-v2/x/pools/types"
)

// ExecuteTransaction runs a manager-issued trade against an external
// protocol. The transaction is verified against the target's registered
// verifier, which answers with the balance deltas to apply. Every asset
// touched must be on the pool's whitelist.
func (k *Keeper) ExecuteTransaction(ctx context.Context, manager, poolID, target, action string, amount math.LegacyDec, sourceAsset string) (*types.ExecutionRecord, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool := k.GetPool(sdkCtx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound
	}
	if pool.Manager != manager {
		return nil, types.ErrUnauthorized
	}
	if !amount.IsPositive() {
		return nil, types.ErrInvalidAmount
	}
	if !k.assetsKeeper.HasVerifier(sdkCtx, target) {
		return nil, types.ErrNoVerifier
	}

	deltas, err := k.assetsKeeper.VerifyTransaction(sdkCtx, target, action, amount, sourceAsset)
	if err != nil {
		return nil, err
	}

	for _, delta := range deltas {
		if !pool.HasAvailableAsset(delta.Asset) {
			return nil, types.ErrAssetNotAvailable
		}
	}
	for _, delta := range deltas {
		if delta.Amount.IsNegative() {
			if err := pool.DebitAsset(delta.Asset, delta.Amount.Neg()); err != nil {
				return nil, err
			}
		} else {
			pool.CreditAsset(delta.Asset, delta.Amount)
		}
	}

	now := sdkCtx.BlockTime().Unix()
	pool.UpdatedAt = now
	k.SetPool(sdkCtx, pool)

	record := &types.ExecutionRecord{
		ExecutionID: types.GenerateID("exe"),
		PoolID:      poolID,
		Manager:     manager,
		Target:      target,
		Action:      action,
		Amount:      amount,
		SourceAsset: sourceAsset,
		ExecutedAt:  now,
	}
	k.SetExecutionRecord(sdkCtx, record)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"pool_transaction_executed",
			sdk.NewAttribute("pool_id", poolID),
			sdk.NewAttribute("manager", manager),
			sdk.NewAttribute("target", target),
			sdk.NewAttribute("action", action),
			sdk.NewAttribute("amount", amount.String()),
		),
	)

	k.logger.Info("Transaction executed",
		"pool_id", poolID,
		"target", target,
		"action", action,
		"amount", amount.String(),
		"deltas", len(deltas),
	)

	metrics.GetCollector().RecordExecution(poolID, action)

	return record, nil
}

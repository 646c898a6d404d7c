package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/metrics"
	"github.com/Tradegen/protocol-v2/x/pools/types"
)

// Withdraw burns pool shares and redeems a pro-rata basket of every
// asset the pool holds. Cost-basis is reduced by the same fraction as
// the holder's shares, and zeroed exactly on a full exit.
func (k *Keeper) Withdraw(ctx context.Context, withdrawer, poolID string, shares math.LegacyDec) (*types.WithdrawalRecord, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool := k.GetPool(sdkCtx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound
	}
	if !shares.IsPositive() {
		return nil, types.ErrInvalidAmount
	}

	balance := k.GetBalance(sdkCtx, poolID, withdrawer)
	if shares.GT(balance) {
		return nil, types.ErrInsufficientBalance
	}

	withdrawerAddr, err := sdk.AccAddressFromBech32(withdrawer)
	if err != nil {
		return nil, err
	}

	// Basket redemption: the same fraction of every held asset, rounded
	// down to whole coins so the ledger books exactly what leaves the
	// module account
	fraction := shares.Quo(pool.TotalSupply)
	assetsOut := map[string]math.LegacyDec{}
	for _, asset := range pool.AvailableAssets {
		assetBalance := pool.AssetBalance(asset)
		if assetBalance.IsZero() {
			continue
		}
		out := math.LegacyNewDecFromInt(assetBalance.Mul(fraction).TruncateInt())
		if out.IsZero() {
			continue
		}
		if err := pool.DebitAsset(asset, out); err != nil {
			return nil, err
		}
		coins := sdk.NewCoins(sdk.NewCoin(asset, out.TruncateInt()))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, withdrawerAddr, coins); err != nil {
			return nil, err
		}
		assetsOut[asset] = out
	}

	fullExit := shares.Equal(balance)

	// Burn shares
	pool.TotalSupply = pool.TotalSupply.Sub(shares)
	k.SetBalance(sdkCtx, poolID, withdrawer, balance.Sub(shares))

	// Cost-basis follows the burned fraction of the holder's position,
	// with exact zeroing on full exit to avoid rounding dust
	userDeposit := k.GetUserDeposit(sdkCtx, poolID, withdrawer)
	var deduction math.LegacyDec
	if fullExit {
		deduction = userDeposit
	} else {
		deduction = userDeposit.Mul(shares).Quo(balance)
	}
	now := sdkCtx.BlockTime().Unix()
	k.SetUserDeposit(sdkCtx, poolID, withdrawer, userDeposit.Sub(deduction))
	pool.TotalDeposits = pool.TotalDeposits.Sub(deduction)
	pool.UpdatedAt = now
	k.SetPool(sdkCtx, pool)

	record := &types.WithdrawalRecord{
		WithdrawalID: types.GenerateID("wth"),
		PoolID:       poolID,
		Withdrawer:   withdrawer,
		SharesBurned: shares,
		AssetsOut:    assetsOut,
		WithdrawnAt:  now,
	}
	k.SetWithdrawalRecord(sdkCtx, record)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"pool_withdrawal",
			sdk.NewAttribute("pool_id", poolID),
			sdk.NewAttribute("withdrawer", withdrawer),
			sdk.NewAttribute("shares_burned", shares.String()),
			sdk.NewAttribute("cost_basis_reduced", deduction.String()),
		),
	)

	k.logger.Info("Withdrawal processed",
		"pool_id", poolID,
		"withdrawer", withdrawer,
		"shares_burned", shares.String(),
		"assets_out", len(assetsOut),
		"full_exit", fullExit,
	)

	metrics.GetCollector().RecordWithdrawal(poolID, deduction.MustFloat64())

	return record, nil
}

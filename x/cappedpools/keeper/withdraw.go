package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/metrics"
	"github.com/Tradegen/protocol-v2/x/cappedpools/types"
)

// Withdraw burns tokens of a single class and redeems a pro-rata basket
// of the pool's assets. The caller picks which class to burn from, so a
// holder can redeem junior tokens while keeping senior ones.
func (k *Keeper) Withdraw(ctx context.Context, withdrawer, poolID string, class int, tokenQuantity math.Int) (*types.WithdrawalRecord, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool := k.GetPool(sdkCtx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound
	}
	if class < 0 || class >= types.NumClasses {
		return nil, types.ErrInvalidClass
	}
	if !tokenQuantity.IsPositive() {
		return nil, types.ErrInvalidAmount
	}

	set := k.GetClassBalances(sdkCtx, poolID, withdrawer)
	if set[class].LT(tokenQuantity) {
		return nil, types.ErrInsufficientBalance
	}
	totalBefore := set.Total()

	withdrawerAddr, err := sdk.AccAddressFromBech32(withdrawer)
	if err != nil {
		return nil, err
	}

	// Basket redemption against total supply, mirroring the open pool.
	// Rounded down to whole coins so the ledger books exactly what
	// leaves the module account.
	fraction := math.LegacyNewDecFromInt(tokenQuantity).Quo(math.LegacyNewDecFromInt(pool.TotalSupply))
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

	if err := pool.ReleaseTokens(class, tokenQuantity); err != nil {
		return nil, err
	}
	set[class] = set[class].Sub(tokenQuantity)
	k.SetClassBalances(sdkCtx, poolID, withdrawer, set)

	// Cost-basis follows the burned fraction of the holder's aggregate
	// balance, with exact zeroing on full exit
	userDeposit := k.GetUserDeposit(sdkCtx, poolID, withdrawer)
	var deduction math.LegacyDec
	if tokenQuantity.Equal(totalBefore) {
		deduction = userDeposit
	} else {
		deduction = userDeposit.MulInt(tokenQuantity).QuoInt(totalBefore)
	}
	now := sdkCtx.BlockTime().Unix()
	k.SetUserDeposit(sdkCtx, poolID, withdrawer, userDeposit.Sub(deduction))
	pool.TotalDeposits = pool.TotalDeposits.Sub(deduction)
	pool.UpdatedAt = now
	k.SetPool(sdkCtx, pool)

	record := &types.WithdrawalRecord{
		WithdrawalID:  types.GenerateID("cwth"),
		PoolID:        poolID,
		Withdrawer:    withdrawer,
		Class:         class,
		TokenQuantity: tokenQuantity,
		AssetsOut:     assetsOut,
		WithdrawnAt:   now,
	}
	k.SetWithdrawalRecord(sdkCtx, record)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"capped_pool_withdrawal",
			sdk.NewAttribute("pool_id", poolID),
			sdk.NewAttribute("withdrawer", withdrawer),
			sdk.NewAttribute("class", strconv.Itoa(class)),
			sdk.NewAttribute("token_quantity", tokenQuantity.String()),
		),
	)

	k.logger.Info("Capped pool withdrawal processed",
		"pool_id", poolID,
		"withdrawer", withdrawer,
		"class", class,
		"token_quantity", tokenQuantity.String(),
	)

	metrics.GetCollector().RecordWithdrawal(poolID, deduction.MustFloat64())

	return record, nil
}

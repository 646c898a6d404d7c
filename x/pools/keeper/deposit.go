package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/metrics"
	"github.com/Tradegen/protocol-v2/x/pools/types"
)

// Deposit mints pool shares against a contribution of a deposit asset.
// Shares are minted proportionally to the value contributed relative to
// the pool value before the transfer, so the share price is unchanged
// for existing holders.
func (k *Keeper) Deposit(ctx context.Context, depositor, poolID, asset string, amount math.LegacyDec) (*types.DepositRecord, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool := k.GetPool(sdkCtx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound
	}
	// The bank moves whole coins, so book exactly the amount that moves
	amount = math.LegacyNewDecFromInt(amount.TruncateInt())
	if !amount.IsPositive() {
		return nil, types.ErrInvalidAmount
	}
	if !pool.HasDepositAsset(asset) {
		return nil, types.ErrAssetNotDepositAsset
	}

	// Value the pool before the contribution arrives
	valueBefore, err := k.GetPoolValue(sdkCtx, pool)
	if err != nil {
		return nil, err
	}

	price, err := k.assetsKeeper.GetUSDPrice(sdkCtx, asset)
	if err != nil {
		return nil, err
	}
	usdValue := amount.Mul(price)

	// Pull the asset from the depositor into the module account
	depositorAddr, err := sdk.AccAddressFromBech32(depositor)
	if err != nil {
		return nil, err
	}
	coins := sdk.NewCoins(sdk.NewCoin(asset, amount.TruncateInt()))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, depositorAddr, types.ModuleName, coins); err != nil {
		return nil, err
	}

	shares := pool.CalculateSharesForDeposit(usdValue, valueBefore)

	now := sdkCtx.BlockTime().Unix()
	pool.CreditAsset(asset, amount)
	pool.TotalSupply = pool.TotalSupply.Add(shares)
	pool.TotalDeposits = pool.TotalDeposits.Add(usdValue)
	pool.UpdatedAt = now
	k.SetPool(sdkCtx, pool)

	k.SetBalance(sdkCtx, poolID, depositor, k.GetBalance(sdkCtx, poolID, depositor).Add(shares))
	k.SetUserDeposit(sdkCtx, poolID, depositor, k.GetUserDeposit(sdkCtx, poolID, depositor).Add(usdValue))

	tokenPrice := pool.TokenPrice(valueBefore.Add(usdValue))

	record := &types.DepositRecord{
		DepositID:    types.GenerateID("dep"),
		PoolID:       poolID,
		Depositor:    depositor,
		Asset:        asset,
		Amount:       amount,
		USDValue:     usdValue,
		SharesMinted: shares,
		TokenPrice:   tokenPrice,
		DepositedAt:  now,
	}
	k.SetDepositRecord(sdkCtx, record)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"pool_deposit",
			sdk.NewAttribute("pool_id", poolID),
			sdk.NewAttribute("depositor", depositor),
			sdk.NewAttribute("asset", asset),
			sdk.NewAttribute("amount", amount.String()),
			sdk.NewAttribute("usd_value", usdValue.String()),
			sdk.NewAttribute("shares_minted", shares.String()),
		),
	)

	k.logger.Info("Deposit processed",
		"pool_id", poolID,
		"depositor", depositor,
		"asset", asset,
		"usd_value", usdValue.String(),
		"shares_minted", shares.String(),
		"token_price", tokenPrice.String(),
	)

	c := metrics.GetCollector()
	c.RecordDeposit(poolID, usdValue.MustFloat64())
	c.UpdatePoolValue(poolID, valueBefore.Add(usdValue).MustFloat64(), tokenPrice.MustFloat64())

	return record, nil
}

package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/metrics"
	"github.com/Tradegen/protocol-v2/x/cappedpools/types"
)

// Deposit mints a fixed quantity of pool tokens against a deposit
// asset. The caller picks the token quantity; the USD cost follows the
// current token price, seeded at the pool's immutable seed price while
// supply is zero. Tokens fill classes in ascending order.
func (k *Keeper) Deposit(ctx context.Context, depositor, poolID, asset string, tokenQuantity math.Int) (*types.DepositRecord, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool := k.GetPool(sdkCtx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound
	}
	if !pool.HasDepositAsset(asset) {
		return nil, types.ErrAssetNotDepositAsset
	}

	remaining := pool.MaxSupply.Sub(pool.TotalSupply)
	if !tokenQuantity.IsPositive() || tokenQuantity.GT(remaining) {
		return nil, types.ErrQuantityOutOfBounds
	}

	valueBefore, err := k.GetPoolValue(sdkCtx, pool)
	if err != nil {
		return nil, err
	}
	tokenPrice := pool.TokenPrice(valueBefore)
	usdValue := math.LegacyNewDecFromInt(tokenQuantity).Mul(tokenPrice)

	assetPrice, err := k.assetsKeeper.GetUSDPrice(sdkCtx, asset)
	if err != nil {
		return nil, err
	}
	// Whole coins only: the booked asset amount must equal the bank leg
	assetAmount := math.LegacyNewDecFromInt(usdValue.Quo(assetPrice).TruncateInt())
	if !assetAmount.IsPositive() {
		return nil, types.ErrInvalidAmount
	}

	depositorAddr, err := sdk.AccAddressFromBech32(depositor)
	if err != nil {
		return nil, err
	}
	coins := sdk.NewCoins(sdk.NewCoin(asset, assetAmount.TruncateInt()))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, depositorAddr, types.ModuleName, coins); err != nil {
		return nil, err
	}

	allocation, err := pool.AllocateTokens(tokenQuantity)
	if err != nil {
		return nil, err
	}

	now := sdkCtx.BlockTime().Unix()
	pool.CreditAsset(asset, assetAmount)
	pool.TotalDeposits = pool.TotalDeposits.Add(usdValue)
	pool.UpdatedAt = now
	k.SetPool(sdkCtx, pool)

	set := k.GetClassBalances(sdkCtx, poolID, depositor)
	for i := range set {
		set[i] = set[i].Add(allocation[i])
	}
	k.SetClassBalances(sdkCtx, poolID, depositor, set)
	k.SetUserDeposit(sdkCtx, poolID, depositor, k.GetUserDeposit(sdkCtx, poolID, depositor).Add(usdValue))

	record := &types.DepositRecord{
		DepositID:     types.GenerateID("cdep"),
		PoolID:        poolID,
		Depositor:     depositor,
		Asset:         asset,
		AssetAmount:   assetAmount,
		USDValue:      usdValue,
		TokenQuantity: tokenQuantity,
		Allocation:    allocation,
		TokenPrice:    tokenPrice,
		DepositedAt:   now,
	}
	k.SetDepositRecord(sdkCtx, record)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"capped_pool_deposit",
			sdk.NewAttribute("pool_id", poolID),
			sdk.NewAttribute("depositor", depositor),
			sdk.NewAttribute("asset", asset),
			sdk.NewAttribute("token_quantity", tokenQuantity.String()),
			sdk.NewAttribute("usd_value", usdValue.String()),
		),
	)

	k.logger.Info("Capped pool deposit processed",
		"pool_id", poolID,
		"depositor", depositor,
		"token_quantity", tokenQuantity.String(),
		"usd_value", usdValue.String(),
		"token_price", tokenPrice.String(),
	)

	c := metrics.GetCollector()
	c.RecordDeposit(poolID, usdValue.MustFloat64())
	c.UpdatePoolValue(poolID, valueBefore.Add(usdValue).MustFloat64(), tokenPrice.MustFloat64())

	return record, nil
}

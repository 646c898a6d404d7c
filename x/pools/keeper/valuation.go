package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/pools/types"
)

// GetPoolValue computes the total USD value of a pool by summing
// balance * price over the available-asset list. Read-only: it can be
// called repeatedly within one operation and answers identically absent
// a balance or price change. A missing price fails the whole valuation.
func (k *Keeper) GetPoolValue(ctx sdk.Context, pool *types.Pool) (math.LegacyDec, error) {
	total := math.LegacyZeroDec()
	for _, asset := range pool.AvailableAssets {
		balance := pool.AssetBalance(asset)
		if balance.IsZero() {
			continue
		}
		price, err := k.assetsKeeper.GetUSDPrice(ctx, asset)
		if err != nil {
			return math.LegacyZeroDec(), err
		}
		total = total.Add(balance.Mul(price))
	}
	return total, nil
}

// GetPositionsAndTotal returns the per-asset value decomposition of a
// pool. Assets with zero balance are included at zero value so display
// order matches the manager's whitelist.
func (k *Keeper) GetPositionsAndTotal(ctx sdk.Context, pool *types.Pool) (*types.PositionsAndTotal, error) {
	result := &types.PositionsAndTotal{
		Assets: make([]string, 0, len(pool.AvailableAssets)),
		Values: make([]math.LegacyDec, 0, len(pool.AvailableAssets)),
		Total:  math.LegacyZeroDec(),
	}
	for _, asset := range pool.AvailableAssets {
		balance := pool.AssetBalance(asset)
		value := math.LegacyZeroDec()
		if !balance.IsZero() {
			price, err := k.assetsKeeper.GetUSDPrice(ctx, asset)
			if err != nil {
				return nil, err
			}
			value = balance.Mul(price)
		}
		result.Assets = append(result.Assets, asset)
		result.Values = append(result.Values, value)
		result.Total = result.Total.Add(value)
	}
	return result, nil
}

// GetTokenPrice returns the pool's current share price
func (k *Keeper) GetTokenPrice(ctx sdk.Context, pool *types.Pool) (math.LegacyDec, error) {
	value, err := k.GetPoolValue(ctx, pool)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	return pool.TokenPrice(value), nil
}

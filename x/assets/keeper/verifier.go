package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/assets/types"
)

// VerifyTransaction validates a manager-issued transaction against the
// registered verifier for the target and returns the balance deltas the
// pool should book. The target must be a registered asset with a
// verifier, the action must be a recognized capability, and both legs
// must be priceable.
//
// Conversion legs are priced at the registry's current USD prices:
// acquiring actions (deposit, stake, swap) spend sourceAsset and receive
// the USD-equivalent quantity of target; releasing actions (withdraw,
// unstake) do the reverse.
func (k *Keeper) VerifyTransaction(
	ctx sdk.Context,
	target string,
	action string,
	amount math.LegacyDec,
	sourceAsset string,
) ([]types.BalanceDelta, error) {
	if !types.IsTradableAction(action) {
		return nil, types.ErrInvalidAction
	}

	targetAsset := k.GetAsset(ctx, target)
	if targetAsset == nil {
		return nil, types.ErrAssetNotFound
	}
	if !targetAsset.HasVerifier {
		return nil, types.ErrNoVerifier
	}
	if !amount.IsPositive() {
		return nil, types.ErrInvalidPrice
	}

	targetPrice, err := k.GetUSDPrice(ctx, target)
	if err != nil {
		return nil, err
	}
	sourcePrice, err := k.GetUSDPrice(ctx, sourceAsset)
	if err != nil {
		return nil, err
	}

	switch action {
	case types.ActionDeposit, types.ActionStake, types.ActionSwap:
		// amount is denominated in sourceAsset units
		received := amount.Mul(sourcePrice).Quo(targetPrice)
		return []types.BalanceDelta{
			{Asset: sourceAsset, Amount: amount.Neg()},
			{Asset: target, Amount: received},
		}, nil

	case types.ActionWithdraw, types.ActionUnstake:
		// amount is denominated in target units
		received := amount.Mul(targetPrice).Quo(sourcePrice)
		return []types.BalanceDelta{
			{Asset: target, Amount: amount.Neg()},
			{Asset: sourceAsset, Amount: received},
		}, nil
	}

	return nil, types.ErrInvalidAction
}

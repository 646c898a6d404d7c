package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/cappedpools/types"
)

// TransferTokens moves tokens of one class between holders. Class totals
// are untouched since overall allocation per class does not change. The
// moved fraction of the sender's cost-basis travels with the tokens, so
// the receiver's basis is additive rather than repriced.
func (k *Keeper) TransferTokens(ctx context.Context, from, to, poolID string, class int, quantity math.Int) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool := k.GetPool(sdkCtx, poolID)
	if pool == nil {
		return types.ErrPoolNotFound
	}
	if class < 0 || class >= types.NumClasses {
		return types.ErrInvalidClass
	}
	if !quantity.IsPositive() {
		return types.ErrInvalidAmount
	}
	if from == to {
		return types.ErrSelfTransfer
	}

	fromSet := k.GetClassBalances(sdkCtx, poolID, from)
	if fromSet[class].LT(quantity) {
		return types.ErrInsufficientBalance
	}
	fromTotal := fromSet.Total()

	toSet := k.GetClassBalances(sdkCtx, poolID, to)
	fromSet[class] = fromSet[class].Sub(quantity)
	toSet[class] = toSet[class].Add(quantity)
	k.SetClassBalances(sdkCtx, poolID, from, fromSet)
	k.SetClassBalances(sdkCtx, poolID, to, toSet)

	// Move cost-basis in proportion to the sender's pre-transfer total
	fromDeposit := k.GetUserDeposit(sdkCtx, poolID, from)
	var movedBasis math.LegacyDec
	if quantity.Equal(fromTotal) {
		movedBasis = fromDeposit
	} else {
		movedBasis = fromDeposit.MulInt(quantity).QuoInt(fromTotal)
	}
	k.SetUserDeposit(sdkCtx, poolID, from, fromDeposit.Sub(movedBasis))
	k.SetUserDeposit(sdkCtx, poolID, to, k.GetUserDeposit(sdkCtx, poolID, to).Add(movedBasis))

	pool.UpdatedAt = sdkCtx.BlockTime().Unix()
	k.SetPool(sdkCtx, pool)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"capped_pool_transfer",
			sdk.NewAttribute("pool_id", poolID),
			sdk.NewAttribute("from", from),
			sdk.NewAttribute("to", to),
			sdk.NewAttribute("class", strconv.Itoa(class)),
			sdk.NewAttribute("quantity", quantity.String()),
		),
	)

	k.logger.Info("Capped pool tokens transferred",
		"pool_id", poolID,
		"from", from,
		"to", to,
		"class", class,
		"quantity", quantity.String(),
	)

	return nil
}

package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/settings/types"
)

// MsgServer defines the settings MsgServer
type MsgServer struct {
	keeper *Keeper
}

// NewMsgServerImpl creates a new MsgServer instance
func NewMsgServerImpl(keeper *Keeper) *MsgServer {
	return &MsgServer{keeper: keeper}
}

// SetParameter handles MsgSetParameter
func (m *MsgServer) SetParameter(ctx context.Context, msg *types.MsgSetParameter) (*types.MsgSetParameterResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if msg.Authority != m.keeper.GetAuthority() {
		return nil, types.ErrUnauthorized
	}
	if !types.IsRecognizedParameter(msg.Name) {
		return nil, types.ErrUnknownParameter
	}
	if msg.Value < 0 {
		return nil, types.ErrInvalidParameter
	}

	oldValue := int64(0)
	if existing := m.keeper.GetParameter(sdkCtx, msg.Name); existing != nil {
		oldValue = existing.Value
	}

	m.keeper.SetParameter(sdkCtx, &types.Parameter{Name: msg.Name, Value: msg.Value})

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"settings_parameter_updated",
			sdk.NewAttribute("name", msg.Name),
			sdk.NewAttribute("old_value", strconv.FormatInt(oldValue, 10)),
			sdk.NewAttribute("new_value", strconv.FormatInt(msg.Value, 10)),
		),
	)

	m.keeper.logger.Info("Parameter updated",
		"name", msg.Name,
		"old_value", oldValue,
		"new_value", msg.Value,
	)

	return &types.MsgSetParameterResponse{
		Name:     msg.Name,
		OldValue: oldValue,
		NewValue: msg.Value,
	}, nil
}

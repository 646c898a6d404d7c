package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/assets/types"
)

// MsgServer defines the assets MsgServer
type MsgServer struct {
	keeper *Keeper
}

// NewMsgServerImpl creates a new MsgServer instance
func NewMsgServerImpl(keeper *Keeper) *MsgServer {
	return &MsgServer{keeper: keeper}
}

// RegisterAsset handles MsgRegisterAsset
func (m *MsgServer) RegisterAsset(ctx context.Context, msg *types.MsgRegisterAsset) (*types.MsgRegisterAssetResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if msg.Authority != m.keeper.GetAuthority() {
		return nil, types.ErrUnauthorized
	}
	if m.keeper.GetAsset(sdkCtx, msg.Address) != nil {
		return nil, types.ErrAssetExists
	}

	price, err := math.LegacyNewDecFromStr(msg.Price)
	if err != nil {
		return nil, err
	}
	if !price.IsPositive() {
		return nil, types.ErrInvalidPrice
	}

	asset := &types.Asset{
		Address:      msg.Address,
		Symbol:       msg.Symbol,
		AssetType:    msg.AssetType,
		Decimals:     msg.Decimals,
		Price:        price,
		IsStableCoin: msg.IsStableCoin,
		HasVerifier:  false,
		UpdatedAt:    sdkCtx.BlockTime().Unix(),
	}
	m.keeper.SetAsset(sdkCtx, asset)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"asset_registered",
			sdk.NewAttribute("address", msg.Address),
			sdk.NewAttribute("symbol", msg.Symbol),
			sdk.NewAttribute("price", price.String()),
		),
	)

	m.keeper.logger.Info("Asset registered",
		"address", msg.Address,
		"symbol", msg.Symbol,
		"stable_coin", msg.IsStableCoin,
	)

	return &types.MsgRegisterAssetResponse{Address: msg.Address}, nil
}

// SetAssetPrice handles MsgSetAssetPrice
func (m *MsgServer) SetAssetPrice(ctx context.Context, msg *types.MsgSetAssetPrice) (*types.MsgSetAssetPriceResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if msg.Authority != m.keeper.GetAuthority() {
		return nil, types.ErrUnauthorized
	}

	asset := m.keeper.GetAsset(sdkCtx, msg.Address)
	if asset == nil {
		return nil, types.ErrAssetNotFound
	}
	oldPrice := asset.Price

	price, err := math.LegacyNewDecFromStr(msg.Price)
	if err != nil {
		return nil, err
	}
	if err := m.keeper.UpdatePrice(sdkCtx, msg.Address, price); err != nil {
		return nil, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"asset_price_updated",
			sdk.NewAttribute("address", msg.Address),
			sdk.NewAttribute("old_price", oldPrice.String()),
			sdk.NewAttribute("new_price", price.String()),
		),
	)

	return &types.MsgSetAssetPriceResponse{
		Address:  msg.Address,
		OldPrice: oldPrice.String(),
		NewPrice: price.String(),
	}, nil
}

// SetVerifier handles MsgSetVerifier
func (m *MsgServer) SetVerifier(ctx context.Context, msg *types.MsgSetVerifier) (*types.MsgSetVerifierResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if msg.Authority != m.keeper.GetAuthority() {
		return nil, types.ErrUnauthorized
	}

	asset := m.keeper.GetAsset(sdkCtx, msg.Address)
	if asset == nil {
		return nil, types.ErrAssetNotFound
	}

	asset.HasVerifier = msg.Enabled
	m.keeper.SetAsset(sdkCtx, asset)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			"verifier_updated",
			sdk.NewAttribute("address", msg.Address),
			sdk.NewAttribute("enabled", boolString(msg.Enabled)),
		),
	)

	m.keeper.logger.Info("Verifier updated", "address", msg.Address, "enabled", msg.Enabled)

	return &types.MsgSetVerifierResponse{Address: msg.Address, Enabled: msg.Enabled}, nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

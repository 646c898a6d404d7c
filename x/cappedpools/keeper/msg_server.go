package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/cappedpools/types"
)

// MsgServer handles capped pool transactions
type MsgServer struct {
	keeper *Keeper
}

// NewMsgServerImpl creates a new MsgServer instance
func NewMsgServerImpl(keeper *Keeper) *MsgServer {
	return &MsgServer{keeper: keeper}
}

// CreateCappedPool handles MsgCreateCappedPool
func (s *MsgServer) CreateCappedPool(ctx context.Context, msg *types.MsgCreateCappedPool) (*types.MsgCreateCappedPoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	maxSupply, ok := math.NewIntFromString(msg.MaxSupply)
	if !ok {
		return nil, types.ErrInvalidMaxSupply
	}
	seedPrice, err := math.LegacyNewDecFromStr(msg.SeedPrice)
	if err != nil {
		return nil, types.ErrInvalidSeedPrice
	}
	pool, err := s.keeper.CreateCappedPool(ctx, msg.Manager, msg.Name, maxSupply, seedPrice, msg.PerformanceFee)
	if err != nil {
		return nil, err
	}
	caps := make([]string, types.NumClasses)
	for i, c := range pool.ClassCaps {
		caps[i] = c.String()
	}
	return &types.MsgCreateCappedPoolResponse{PoolID: pool.PoolID, ClassCaps: caps}, nil
}

// Deposit handles MsgDeposit
func (s *MsgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	quantity, ok := math.NewIntFromString(msg.TokenQuantity)
	if !ok {
		return nil, types.ErrInvalidAmount
	}
	record, err := s.keeper.Deposit(ctx, msg.Depositor, msg.PoolID, msg.Asset, quantity)
	if err != nil {
		return nil, err
	}
	allocation := make([]string, types.NumClasses)
	for i, a := range record.Allocation {
		allocation[i] = a.String()
	}
	return &types.MsgDepositResponse{
		DepositID:  record.DepositID,
		Allocation: allocation,
		TokenPrice: record.TokenPrice.String(),
	}, nil
}

// Withdraw handles MsgWithdraw
func (s *MsgServer) Withdraw(ctx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	quantity, ok := math.NewIntFromString(msg.TokenQuantity)
	if !ok {
		return nil, types.ErrInvalidAmount
	}
	record, err := s.keeper.Withdraw(ctx, msg.Withdrawer, msg.PoolID, msg.Class, quantity)
	if err != nil {
		return nil, err
	}
	assetsOut := map[string]string{}
	for asset, amt := range record.AssetsOut {
		assetsOut[asset] = amt.String()
	}
	return &types.MsgWithdrawResponse{
		WithdrawalID: record.WithdrawalID,
		AssetsOut:    assetsOut,
	}, nil
}

// TransferTokens handles MsgTransferTokens
func (s *MsgServer) TransferTokens(ctx context.Context, msg *types.MsgTransferTokens) (*types.MsgTransferTokensResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	quantity, ok := math.NewIntFromString(msg.Quantity)
	if !ok {
		return nil, types.ErrInvalidAmount
	}
	if err := s.keeper.TransferTokens(ctx, msg.From, msg.To, msg.PoolID, msg.Class, quantity); err != nil {
		return nil, err
	}
	return &types.MsgTransferTokensResponse{PoolID: msg.PoolID}, nil
}

// TakeSnapshot handles MsgTakeSnapshot
func (s *MsgServer) TakeSnapshot(ctx context.Context, msg *types.MsgTakeSnapshot) (*types.MsgTakeSnapshotResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	record, err := s.keeper.TakeSnapshot(ctx, msg.Caller, msg.PoolID)
	if err != nil {
		return nil, err
	}
	return &types.MsgTakeSnapshotResponse{PoolID: msg.PoolID, Profit: record.Profit.String()}, nil
}

// AddAvailableAsset handles MsgAddAvailableAsset
func (s *MsgServer) AddAvailableAsset(ctx context.Context, msg *types.MsgAddAvailableAsset) (*types.MsgManagerAssetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := s.keeper.AddAvailableAsset(ctx, msg.Manager, msg.PoolID, msg.Asset); err != nil {
		return nil, err
	}
	return s.managerAssetResponse(ctx, msg.PoolID)
}

// RemoveAvailableAsset handles MsgRemoveAvailableAsset
func (s *MsgServer) RemoveAvailableAsset(ctx context.Context, msg *types.MsgRemoveAvailableAsset) (*types.MsgManagerAssetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := s.keeper.RemoveAvailableAsset(ctx, msg.Manager, msg.PoolID, msg.Asset); err != nil {
		return nil, err
	}
	return s.managerAssetResponse(ctx, msg.PoolID)
}

// AddDepositAsset handles MsgAddDepositAsset
func (s *MsgServer) AddDepositAsset(ctx context.Context, msg *types.MsgAddDepositAsset) (*types.MsgManagerAssetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := s.keeper.AddDepositAsset(ctx, msg.Manager, msg.PoolID, msg.Asset); err != nil {
		return nil, err
	}
	return s.managerAssetResponse(ctx, msg.PoolID)
}

// RemoveDepositAsset handles MsgRemoveDepositAsset
func (s *MsgServer) RemoveDepositAsset(ctx context.Context, msg *types.MsgRemoveDepositAsset) (*types.MsgManagerAssetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := s.keeper.RemoveDepositAsset(ctx, msg.Manager, msg.PoolID, msg.Asset); err != nil {
		return nil, err
	}
	return s.managerAssetResponse(ctx, msg.PoolID)
}

// SetPerformanceFee handles MsgSetPerformanceFee
func (s *MsgServer) SetPerformanceFee(ctx context.Context, msg *types.MsgSetPerformanceFee) (*types.MsgSetPerformanceFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := s.keeper.SetPerformanceFee(ctx, msg.Manager, msg.PoolID, msg.Fee); err != nil {
		return nil, err
	}
	return &types.MsgSetPerformanceFeeResponse{PoolID: msg.PoolID, Fee: msg.Fee}, nil
}

func (s *MsgServer) managerAssetResponse(ctx context.Context, poolID string) (*types.MsgManagerAssetResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool := s.keeper.GetPool(sdkCtx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound
	}
	return &types.MsgManagerAssetResponse{
		PoolID:          poolID,
		AvailableAssets: pool.AvailableAssets,
		DepositAssets:   pool.DepositAssets,
	}, nil
}

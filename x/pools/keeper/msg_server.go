package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/pools/types"
)

// MsgServer handles pool transactions
type MsgServer struct {
	keeper *Keeper
}

// NewMsgServerImpl creates a new MsgServer instance
func NewMsgServerImpl(keeper *Keeper) *MsgServer {
	return &MsgServer{keeper: keeper}
}

// CreatePool handles MsgCreatePool
func (s *MsgServer) CreatePool(ctx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	pool, err := s.keeper.CreatePool(ctx, msg.Manager, msg.Name, msg.PerformanceFee)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreatePoolResponse{PoolID: pool.PoolID}, nil
}

// Deposit handles MsgDeposit
func (s *MsgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	amount, err := math.LegacyNewDecFromStr(msg.Amount)
	if err != nil {
		return nil, types.ErrInvalidAmount
	}
	record, err := s.keeper.Deposit(ctx, msg.Depositor, msg.PoolID, msg.Asset, amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgDepositResponse{
		DepositID:    record.DepositID,
		SharesMinted: record.SharesMinted.String(),
		TokenPrice:   record.TokenPrice.String(),
	}, nil
}

// Withdraw handles MsgWithdraw
func (s *MsgServer) Withdraw(ctx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	shares, err := math.LegacyNewDecFromStr(msg.Shares)
	if err != nil {
		return nil, types.ErrInvalidAmount
	}
	record, err := s.keeper.Withdraw(ctx, msg.Withdrawer, msg.PoolID, shares)
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

// ExecuteTransaction handles MsgExecuteTransaction
func (s *MsgServer) ExecuteTransaction(ctx context.Context, msg *types.MsgExecuteTransaction) (*types.MsgExecuteTransactionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	amount, err := math.LegacyNewDecFromStr(msg.Amount)
	if err != nil {
		return nil, types.ErrInvalidAmount
	}
	record, err := s.keeper.ExecuteTransaction(ctx, msg.Manager, msg.PoolID, msg.Target, msg.Action, amount, msg.SourceAsset)
	if err != nil {
		return nil, err
	}
	return &types.MsgExecuteTransactionResponse{ExecutionID: record.ExecutionID}, nil
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

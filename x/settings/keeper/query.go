package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/settings/types"
)

// QueryServer defines the settings QueryServer
type QueryServer struct {
	keeper *Keeper
}

// NewQueryServerImpl creates a new QueryServer instance
func NewQueryServerImpl(keeper *Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

// Parameter returns a parameter by name
func (q *QueryServer) Parameter(ctx context.Context, name string) (*types.Parameter, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	param := q.keeper.GetParameter(sdkCtx, name)
	if param == nil {
		return nil, types.ErrParameterNotFound
	}
	return param, nil
}

// Parameters returns all parameters
func (q *QueryServer) Parameters(ctx context.Context) ([]*types.Parameter, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return q.keeper.GetAllParameters(sdkCtx), nil
}

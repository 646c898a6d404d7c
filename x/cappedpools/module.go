package cappedpools

import (
	"encoding/json"

	"cosmossdk.io/core/appmodule"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"

	"github.com/Tradegen/protocol-v2/x/cappedpools/keeper"
	"github.com/Tradegen/protocol-v2/x/cappedpools/types"
)

const (
	ModuleName = types.ModuleName
)

var (
	_ module.AppModuleBasic = AppModuleBasic{}
	_ appmodule.AppModule   = AppModule{}
)

// AppModuleBasic defines the basic application module for cappedpools
type AppModuleBasic struct{}

// Name returns the module's name
func (AppModuleBasic) Name() string {
	return ModuleName
}

// RegisterLegacyAminoCodec registers the module's types on the given LegacyAmino codec
func (AppModuleBasic) RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&types.MsgCreateCappedPool{}, "cappedpools/MsgCreateCappedPool", nil)
	cdc.RegisterConcrete(&types.MsgDeposit{}, "cappedpools/MsgDeposit", nil)
	cdc.RegisterConcrete(&types.MsgWithdraw{}, "cappedpools/MsgWithdraw", nil)
	cdc.RegisterConcrete(&types.MsgTransferTokens{}, "cappedpools/MsgTransferTokens", nil)
	cdc.RegisterConcrete(&types.MsgTakeSnapshot{}, "cappedpools/MsgTakeSnapshot", nil)
	cdc.RegisterConcrete(&types.MsgAddAvailableAsset{}, "cappedpools/MsgAddAvailableAsset", nil)
	cdc.RegisterConcrete(&types.MsgRemoveAvailableAsset{}, "cappedpools/MsgRemoveAvailableAsset", nil)
	cdc.RegisterConcrete(&types.MsgAddDepositAsset{}, "cappedpools/MsgAddDepositAsset", nil)
	cdc.RegisterConcrete(&types.MsgRemoveDepositAsset{}, "cappedpools/MsgRemoveDepositAsset", nil)
	cdc.RegisterConcrete(&types.MsgSetPerformanceFee{}, "cappedpools/MsgSetPerformanceFee", nil)
}

// RegisterInterfaces registers the module's interface types
func (AppModuleBasic) RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&types.MsgCreateCappedPool{},
		&types.MsgDeposit{},
		&types.MsgWithdraw{},
		&types.MsgTransferTokens{},
		&types.MsgTakeSnapshot{},
		&types.MsgAddAvailableAsset{},
		&types.MsgRemoveAvailableAsset{},
		&types.MsgAddDepositAsset{},
		&types.MsgRemoveDepositAsset{},
		&types.MsgSetPerformanceFee{},
	)
}

// DefaultGenesis returns default genesis state as raw bytes
func (AppModuleBasic) DefaultGenesis(cdc codec.JSONCodec) json.RawMessage {
	return nil
}

// ValidateGenesis performs genesis state validation
func (AppModuleBasic) ValidateGenesis(cdc codec.JSONCodec, config client.TxEncodingConfig, bz json.RawMessage) error {
	return nil
}

// RegisterGRPCGatewayRoutes registers the gRPC Gateway routes for the module
func (AppModuleBasic) RegisterGRPCGatewayRoutes(clientCtx client.Context, mux *runtime.ServeMux) {
}

// AppModule implements an application module for the cappedpools module
type AppModule struct {
	AppModuleBasic
	keeper *keeper.Keeper
}

// NewAppModule creates a new AppModule object
func NewAppModule(k *keeper.Keeper) AppModule {
	return AppModule{
		AppModuleBasic: AppModuleBasic{},
		keeper:         k,
	}
}

// Name returns the module's name
func (am AppModule) Name() string {
	return ModuleName
}

// RegisterServices registers module services
func (am AppModule) RegisterServices(cfg module.Configurator) {
	_ = keeper.NewMsgServerImpl(am.keeper)
}

// IsOnePerModuleType implements the depinject.OnePerModuleType interface
func (am AppModule) IsOnePerModuleType() {}

// IsAppModule implements the appmodule.AppModule interface
func (am AppModule) IsAppModule() {}

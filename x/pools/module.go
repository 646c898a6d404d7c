package pools

import (
	"encoding/json"

	"cosmossdk.io/core/appmodule"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"

	"github.com/Tradegen/protocol-v2/x/pools/keeper"
	"github.com/Tradegen/protocol-v2/x/pools/types"
)

const (
	ModuleName = types.ModuleName
)

var (
	_ module.AppModuleBasic = AppModuleBasic{}
	_ appmodule.AppModule   = AppModule{}
)

// AppModuleBasic defines the basic application module for pools
type AppModuleBasic struct{}

// Name returns the module's name
func (AppModuleBasic) Name() string {
	return ModuleName
}

// RegisterLegacyAminoCodec registers the module's types on the given LegacyAmino codec
func (AppModuleBasic) RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&types.MsgCreatePool{}, "pools/MsgCreatePool", nil)
	cdc.RegisterConcrete(&types.MsgDeposit{}, "pools/MsgDeposit", nil)
	cdc.RegisterConcrete(&types.MsgWithdraw{}, "pools/MsgWithdraw", nil)
	cdc.RegisterConcrete(&types.MsgExecuteTransaction{}, "pools/MsgExecuteTransaction", nil)
	cdc.RegisterConcrete(&types.MsgAddAvailableAsset{}, "pools/MsgAddAvailableAsset", nil)
	cdc.RegisterConcrete(&types.MsgRemoveAvailableAsset{}, "pools/MsgRemoveAvailableAsset", nil)
	cdc.RegisterConcrete(&types.MsgAddDepositAsset{}, "pools/MsgAddDepositAsset", nil)
	cdc.RegisterConcrete(&types.MsgRemoveDepositAsset{}, "pools/MsgRemoveDepositAsset", nil)
	cdc.RegisterConcrete(&types.MsgSetPerformanceFee{}, "pools/MsgSetPerformanceFee", nil)
}

// RegisterInterfaces registers the module's interface types
func (AppModuleBasic) RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&types.MsgCreatePool{},
		&types.MsgDeposit{},
		&types.MsgWithdraw{},
		&types.MsgExecuteTransaction{},
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

// AppModule implements an application module for the pools module
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

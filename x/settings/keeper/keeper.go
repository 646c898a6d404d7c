package keeper

import (
	"encoding/json"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Tradegen/protocol-v2/x/settings/types"
)

// Store key prefixes
var (
	ParameterKeyPrefix = []byte{0x01}
)

// Keeper manages the settings module state
type Keeper struct {
	cdc       codec.BinaryCodec
	storeKey  storetypes.StoreKey
	logger    log.Logger
	authority string
}

// NewKeeper creates a new settings keeper
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	authority string,
	logger log.Logger,
) *Keeper {
	return &Keeper{
		cdc:       cdc,
		storeKey:  storeKey,
		authority: authority,
		logger:    logger.With("module", "x/settings"),
	}
}

// Logger returns the module logger
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// GetAuthority returns the settings owner address
func (k *Keeper) GetAuthority() string {
	return k.authority
}

// GetStore returns the KVStore
func (k *Keeper) GetStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

func parameterKey(name string) []byte {
	return append(ParameterKeyPrefix, []byte(name)...)
}

// SetParameter saves a parameter to the store
func (k *Keeper) SetParameter(ctx sdk.Context, param *types.Parameter) {
	store := k.GetStore(ctx)
	bz, _ := json.Marshal(param)
	store.Set(parameterKey(param.Name), bz)
}

// GetParameter retrieves a parameter from the store
func (k *Keeper) GetParameter(ctx sdk.Context, name string) *types.Parameter {
	store := k.GetStore(ctx)
	bz := store.Get(parameterKey(name))
	if bz == nil {
		return nil
	}
	var param types.Parameter
	if err := json.Unmarshal(bz, &param); err != nil {
		return nil
	}
	return &param
}

// GetAllParameters returns all parameters
func (k *Keeper) GetAllParameters(ctx sdk.Context) []*types.Parameter {
	store := k.GetStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ParameterKeyPrefix)
	defer iterator.Close()

	var params []*types.Parameter
	for ; iterator.Valid(); iterator.Next() {
		var param types.Parameter
		if err := json.Unmarshal(iterator.Value(), &param); err != nil {
			continue
		}
		params = append(params, &param)
	}
	return params
}

// InitDefaultParameters writes the default parameter set for any missing key
func (k *Keeper) InitDefaultParameters(ctx sdk.Context) {
	for _, param := range types.DefaultParameters() {
		p := param
		if k.GetParameter(ctx, p.Name) == nil {
			k.SetParameter(ctx, &p)
		}
	}
	k.logger.Info("Initialized default protocol parameters")
}

// GetInt returns a parameter value, falling back to the default set
func (k *Keeper) GetInt(ctx sdk.Context, name string) int64 {
	if param := k.GetParameter(ctx, name); param != nil {
		return param.Value
	}
	for _, p := range types.DefaultParameters() {
		if p.Name == name {
			return p.Value
		}
	}
	return 0
}

// GetDec returns a parameter value as an 18-decimal fixed-point number
func (k *Keeper) GetDec(ctx sdk.Context, name string) math.LegacyDec {
	return math.LegacyNewDec(k.GetInt(ctx, name))
}

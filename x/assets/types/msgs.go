package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message types
const (
	TypeMsgRegisterAsset = "register_asset"
	TypeMsgSetAssetPrice = "set_asset_price"
	TypeMsgSetVerifier   = "set_verifier"
)

// MsgRegisterAsset defines the RegisterAsset message
type MsgRegisterAsset struct {
	Authority    string `json:"authority"`
	Address      string `json:"address"`
	Symbol       string `json:"symbol"`
	AssetType    uint32 `json:"asset_type"`
	Decimals     uint32 `json:"decimals"`
	Price        string `json:"price"`
	IsStableCoin bool   `json:"is_stable_coin"`
}

// Route implements sdk.Msg
func (msg MsgRegisterAsset) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgRegisterAsset) Type() string { return TypeMsgRegisterAsset }

// ValidateBasic implements sdk.Msg
func (msg MsgRegisterAsset) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return err
	}
	if msg.Address == "" || msg.Symbol == "" {
		return ErrAssetNotFound
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgRegisterAsset) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgRegisterAsset) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgRegisterAsset) Reset() { *msg = MsgRegisterAsset{} }

// String implements proto.Message
func (msg MsgRegisterAsset) String() string {
	return fmt.Sprintf("MsgRegisterAsset{Address: %s, Symbol: %s}", msg.Address, msg.Symbol)
}

// MsgRegisterAssetResponse defines the RegisterAsset response
type MsgRegisterAssetResponse struct {
	Address string `json:"address"`
}

// MsgSetAssetPrice defines the SetAssetPrice message
type MsgSetAssetPrice struct {
	Authority string `json:"authority"`
	Address   string `json:"address"`
	Price     string `json:"price"`
}

// Route implements sdk.Msg
func (msg MsgSetAssetPrice) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgSetAssetPrice) Type() string { return TypeMsgSetAssetPrice }

// ValidateBasic implements sdk.Msg
func (msg MsgSetAssetPrice) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return err
	}
	if msg.Address == "" {
		return ErrAssetNotFound
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgSetAssetPrice) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgSetAssetPrice) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgSetAssetPrice) Reset() { *msg = MsgSetAssetPrice{} }

// String implements proto.Message
func (msg MsgSetAssetPrice) String() string {
	return fmt.Sprintf("MsgSetAssetPrice{Address: %s, Price: %s}", msg.Address, msg.Price)
}

// MsgSetAssetPriceResponse defines the SetAssetPrice response
type MsgSetAssetPriceResponse struct {
	Address  string `json:"address"`
	OldPrice string `json:"old_price"`
	NewPrice string `json:"new_price"`
}

// MsgSetVerifier defines the SetVerifier message
type MsgSetVerifier struct {
	Authority string `json:"authority"`
	Address   string `json:"address"`
	Enabled   bool   `json:"enabled"`
}

// Route implements sdk.Msg
func (msg MsgSetVerifier) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgSetVerifier) Type() string { return TypeMsgSetVerifier }

// ValidateBasic implements sdk.Msg
func (msg MsgSetVerifier) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return err
	}
	if msg.Address == "" {
		return ErrAssetNotFound
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgSetVerifier) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgSetVerifier) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgSetVerifier) Reset() { *msg = MsgSetVerifier{} }

// String implements proto.Message
func (msg MsgSetVerifier) String() string {
	return fmt.Sprintf("MsgSetVerifier{Address: %s, Enabled: %t}", msg.Address, msg.Enabled)
}

// MsgSetVerifierResponse defines the SetVerifier response
type MsgSetVerifierResponse struct {
	Address string `json:"address"`
	Enabled bool   `json:"enabled"`
}

// Ensure all messages implement sdk.Msg interface
var (
	_ sdk.Msg = &MsgRegisterAsset{}
	_ sdk.Msg = &MsgSetAssetPrice{}
	_ sdk.Msg = &MsgSetVerifier{}
)

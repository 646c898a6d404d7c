package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message types
const (
	TypeMsgSetParameter = "set_parameter"
)

// MsgSetParameter defines the SetParameter message
type MsgSetParameter struct {
	Authority string `json:"authority"`
	Name      string `json:"name"`
	Value     int64  `json:"value"`
}

// Route implements sdk.Msg
func (msg MsgSetParameter) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgSetParameter) Type() string { return TypeMsgSetParameter }

// ValidateBasic implements sdk.Msg
func (msg MsgSetParameter) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return err
	}
	if !IsRecognizedParameter(msg.Name) {
		return ErrUnknownParameter
	}
	if msg.Value < 0 {
		return ErrInvalidParameter
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgSetParameter) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgSetParameter) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgSetParameter) Reset() { *msg = MsgSetParameter{} }

// String implements proto.Message
func (msg MsgSetParameter) String() string {
	return fmt.Sprintf("MsgSetParameter{Authority: %s, Name: %s, Value: %d}", msg.Authority, msg.Name, msg.Value)
}

// MsgSetParameterResponse defines the SetParameter response
type MsgSetParameterResponse struct {
	Name     string `json:"name"`
	OldValue int64  `json:"old_value"`
	NewValue int64  `json:"new_value"`
}

// Ensure all messages implement sdk.Msg interface
var (
	_ sdk.Msg = &MsgSetParameter{}
)

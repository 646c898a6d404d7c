package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message types
const (
	TypeMsgCreateListing = "create_listing"
	TypeMsgRemoveListing = "remove_listing"
	TypeMsgUpdatePrice   = "update_price"
	TypeMsgPurchase      = "purchase"
)

// MsgCreateListing defines the CreateListing message
type MsgCreateListing struct {
	Seller     string `json:"seller"`
	PoolID     string `json:"pool_id"`
	Class      int    `json:"class"`
	Quantity   string `json:"quantity"`
	TokenPrice string `json:"token_price"`
}

// Route implements sdk.Msg
func (msg MsgCreateListing) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgCreateListing) Type() string { return TypeMsgCreateListing }

// ValidateBasic implements sdk.Msg
func (msg MsgCreateListing) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Seller); err != nil {
		return err
	}
	if msg.PoolID == "" {
		return ErrPoolNotFound
	}
	if msg.Class < 0 {
		return ErrInvalidClass
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgCreateListing) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Seller)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgCreateListing) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgCreateListing) Reset() { *msg = MsgCreateListing{} }

// String implements proto.Message
func (msg MsgCreateListing) String() string {
	return fmt.Sprintf("MsgCreateListing{Seller: %s, PoolID: %s, Class: %d, Quantity: %s}", msg.Seller, msg.PoolID, msg.Class, msg.Quantity)
}

// MsgCreateListingResponse defines the CreateListing response
type MsgCreateListingResponse struct {
	Index uint64 `json:"index"`
}

// MsgRemoveListing defines the RemoveListing message
type MsgRemoveListing struct {
	Seller string `json:"seller"`
	Index  uint64 `json:"index"`
}

// Route implements sdk.Msg
func (msg MsgRemoveListing) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgRemoveListing) Type() string { return TypeMsgRemoveListing }

// ValidateBasic implements sdk.Msg
func (msg MsgRemoveListing) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Seller); err != nil {
		return err
	}
	if msg.Index == 0 {
		return ErrListingNotFound
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgRemoveListing) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Seller)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgRemoveListing) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgRemoveListing) Reset() { *msg = MsgRemoveListing{} }

// String implements proto.Message
func (msg MsgRemoveListing) String() string {
	return fmt.Sprintf("MsgRemoveListing{Seller: %s, Index: %d}", msg.Seller, msg.Index)
}

// MsgRemoveListingResponse defines the RemoveListing response
type MsgRemoveListingResponse struct {
	Index uint64 `json:"index"`
}

// MsgUpdatePrice defines the UpdatePrice message
type MsgUpdatePrice struct {
	Seller   string `json:"seller"`
	Index    uint64 `json:"index"`
	NewPrice string `json:"new_price"`
}

// Route implements sdk.Msg
func (msg MsgUpdatePrice) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgUpdatePrice) Type() string { return TypeMsgUpdatePrice }

// ValidateBasic implements sdk.Msg
func (msg MsgUpdatePrice) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Seller); err != nil {
		return err
	}
	if msg.Index == 0 {
		return ErrListingNotFound
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgUpdatePrice) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Seller)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgUpdatePrice) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgUpdatePrice) Reset() { *msg = MsgUpdatePrice{} }

// String implements proto.Message
func (msg MsgUpdatePrice) String() string {
	return fmt.Sprintf("MsgUpdatePrice{Seller: %s, Index: %d, NewPrice: %s}", msg.Seller, msg.Index, msg.NewPrice)
}

// MsgUpdatePriceResponse defines the UpdatePrice response
type MsgUpdatePriceResponse struct {
	Index uint64 `json:"index"`
}

// MsgPurchase defines the Purchase message
type MsgPurchase struct {
	Buyer    string `json:"buyer"`
	Index    uint64 `json:"index"`
	Quantity string `json:"quantity"`
}

// Route implements sdk.Msg
func (msg MsgPurchase) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgPurchase) Type() string { return TypeMsgPurchase }

// ValidateBasic implements sdk.Msg
func (msg MsgPurchase) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return err
	}
	if msg.Index == 0 {
		return ErrListingNotFound
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgPurchase) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Buyer)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgPurchase) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgPurchase) Reset() { *msg = MsgPurchase{} }

// String implements proto.Message
func (msg MsgPurchase) String() string {
	return fmt.Sprintf("MsgPurchase{Buyer: %s, Index: %d, Quantity: %s}", msg.Buyer, msg.Index, msg.Quantity)
}

// MsgPurchaseResponse defines the Purchase response
type MsgPurchaseResponse struct {
	SaleID    string `json:"sale_id"`
	GrossPaid string `json:"gross_paid"`
	SellerNet string `json:"seller_net"`
}

// Ensure all messages implement sdk.Msg interface
var (
	_ sdk.Msg = &MsgCreateListing{}
	_ sdk.Msg = &MsgRemoveListing{}
	_ sdk.Msg = &MsgUpdatePrice{}
	_ sdk.Msg = &MsgPurchase{}
)

package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message types
const (
	TypeMsgCreateCappedPool     = "create_capped_pool"
	TypeMsgDeposit              = "deposit"
	TypeMsgWithdraw             = "withdraw"
	TypeMsgTransferTokens       = "transfer_tokens"
	TypeMsgTakeSnapshot         = "take_snapshot"
	TypeMsgAddAvailableAsset    = "add_available_asset"
	TypeMsgRemoveAvailableAsset = "remove_available_asset"
	TypeMsgAddDepositAsset      = "add_deposit_asset"
	TypeMsgRemoveDepositAsset   = "remove_deposit_asset"
	TypeMsgSetPerformanceFee    = "set_performance_fee"
)

// MsgCreateCappedPool defines the CreateCappedPool message
type MsgCreateCappedPool struct {
	Manager        string `json:"manager"`
	Name           string `json:"name"`
	MaxSupply      string `json:"max_supply"`
	SeedPrice      string `json:"seed_price"`
	PerformanceFee int64  `json:"performance_fee"`
}

// Route implements sdk.Msg
func (msg MsgCreateCappedPool) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgCreateCappedPool) Type() string { return TypeMsgCreateCappedPool }

// ValidateBasic implements sdk.Msg
func (msg MsgCreateCappedPool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Manager); err != nil {
		return err
	}
	if len(msg.Name) == 0 || len(msg.Name) > 50 {
		return ErrInvalidPoolName
	}
	if msg.PerformanceFee < 0 {
		return ErrFeeTooHigh
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgCreateCappedPool) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Manager)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgCreateCappedPool) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgCreateCappedPool) Reset() { *msg = MsgCreateCappedPool{} }

// String implements proto.Message
func (msg MsgCreateCappedPool) String() string {
	return fmt.Sprintf("MsgCreateCappedPool{Manager: %s, Name: %s, MaxSupply: %s}", msg.Manager, msg.Name, msg.MaxSupply)
}

// MsgCreateCappedPoolResponse defines the CreateCappedPool response
type MsgCreateCappedPoolResponse struct {
	PoolID    string   `json:"pool_id"`
	ClassCaps []string `json:"class_caps"`
}

// MsgDeposit defines the Deposit message
type MsgDeposit struct {
	Depositor     string `json:"depositor"`
	PoolID        string `json:"pool_id"`
	Asset         string `json:"asset"`
	TokenQuantity string `json:"token_quantity"`
}

// Route implements sdk.Msg
func (msg MsgDeposit) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgDeposit) Type() string { return TypeMsgDeposit }

// ValidateBasic implements sdk.Msg
func (msg MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Depositor); err != nil {
		return err
	}
	if msg.PoolID == "" {
		return ErrPoolNotFound
	}
	if msg.Asset == "" {
		return ErrInvalidAsset
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgDeposit) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Depositor)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgDeposit) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgDeposit) Reset() { *msg = MsgDeposit{} }

// String implements proto.Message
func (msg MsgDeposit) String() string {
	return fmt.Sprintf("MsgDeposit{Depositor: %s, PoolID: %s, TokenQuantity: %s}", msg.Depositor, msg.PoolID, msg.TokenQuantity)
}

// MsgDepositResponse defines the Deposit response
type MsgDepositResponse struct {
	DepositID  string   `json:"deposit_id"`
	Allocation []string `json:"allocation"`
	TokenPrice string   `json:"token_price"`
}

// MsgWithdraw defines the Withdraw message
type MsgWithdraw struct {
	Withdrawer    string `json:"withdrawer"`
	PoolID        string `json:"pool_id"`
	Class         int    `json:"class"`
	TokenQuantity string `json:"token_quantity"`
}

// Route implements sdk.Msg
func (msg MsgWithdraw) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgWithdraw) Type() string { return TypeMsgWithdraw }

// ValidateBasic implements sdk.Msg
func (msg MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Withdrawer); err != nil {
		return err
	}
	if msg.PoolID == "" {
		return ErrPoolNotFound
	}
	if msg.Class < 0 || msg.Class >= NumClasses {
		return ErrInvalidClass
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgWithdraw) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Withdrawer)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgWithdraw) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgWithdraw) Reset() { *msg = MsgWithdraw{} }

// String implements proto.Message
func (msg MsgWithdraw) String() string {
	return fmt.Sprintf("MsgWithdraw{Withdrawer: %s, PoolID: %s, Class: %d, TokenQuantity: %s}", msg.Withdrawer, msg.PoolID, msg.Class, msg.TokenQuantity)
}

// MsgWithdrawResponse defines the Withdraw response
type MsgWithdrawResponse struct {
	WithdrawalID string            `json:"withdrawal_id"`
	AssetsOut    map[string]string `json:"assets_out"`
}

// MsgTransferTokens defines the TransferTokens message
type MsgTransferTokens struct {
	From     string `json:"from"`
	To       string `json:"to"`
	PoolID   string `json:"pool_id"`
	Class    int    `json:"class"`
	Quantity string `json:"quantity"`
}

// Route implements sdk.Msg
func (msg MsgTransferTokens) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgTransferTokens) Type() string { return TypeMsgTransferTokens }

// ValidateBasic implements sdk.Msg
func (msg MsgTransferTokens) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.From); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
		return err
	}
	if msg.From == msg.To {
		return ErrSelfTransfer
	}
	if msg.PoolID == "" {
		return ErrPoolNotFound
	}
	if msg.Class < 0 || msg.Class >= NumClasses {
		return ErrInvalidClass
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgTransferTokens) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.From)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgTransferTokens) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgTransferTokens) Reset() { *msg = MsgTransferTokens{} }

// String implements proto.Message
func (msg MsgTransferTokens) String() string {
	return fmt.Sprintf("MsgTransferTokens{From: %s, To: %s, PoolID: %s, Class: %d}", msg.From, msg.To, msg.PoolID, msg.Class)
}

// MsgTransferTokensResponse defines the TransferTokens response
type MsgTransferTokensResponse struct {
	PoolID string `json:"pool_id"`
}

// MsgTakeSnapshot defines the TakeSnapshot message
type MsgTakeSnapshot struct {
	Caller  string `json:"caller"`
	PoolID  string `json:"pool_id"`
}

// Route implements sdk.Msg
func (msg MsgTakeSnapshot) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgTakeSnapshot) Type() string { return TypeMsgTakeSnapshot }

// ValidateBasic implements sdk.Msg
func (msg MsgTakeSnapshot) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return err
	}
	if msg.PoolID == "" {
		return ErrPoolNotFound
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgTakeSnapshot) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgTakeSnapshot) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgTakeSnapshot) Reset() { *msg = MsgTakeSnapshot{} }

// String implements proto.Message
func (msg MsgTakeSnapshot) String() string {
	return fmt.Sprintf("MsgTakeSnapshot{Caller: %s, PoolID: %s}", msg.Caller, msg.PoolID)
}

// MsgTakeSnapshotResponse defines the TakeSnapshot response
type MsgTakeSnapshotResponse struct {
	PoolID string `json:"pool_id"`
	Profit string `json:"profit"`
}

// MsgAddAvailableAsset defines the AddAvailableAsset message
type MsgAddAvailableAsset struct {
	Manager string `json:"manager"`
	PoolID  string `json:"pool_id"`
	Asset   string `json:"asset"`
}

// Route implements sdk.Msg
func (msg MsgAddAvailableAsset) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgAddAvailableAsset) Type() string { return TypeMsgAddAvailableAsset }

// ValidateBasic implements sdk.Msg
func (msg MsgAddAvailableAsset) ValidateBasic() error {
	return validateManagerAssetMsg(msg.Manager, msg.PoolID, msg.Asset)
}

// GetSigners implements sdk.Msg
func (msg MsgAddAvailableAsset) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Manager)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgAddAvailableAsset) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgAddAvailableAsset) Reset() { *msg = MsgAddAvailableAsset{} }

// String implements proto.Message
func (msg MsgAddAvailableAsset) String() string {
	return fmt.Sprintf("MsgAddAvailableAsset{PoolID: %s, Asset: %s}", msg.PoolID, msg.Asset)
}

// MsgRemoveAvailableAsset defines the RemoveAvailableAsset message
type MsgRemoveAvailableAsset struct {
	Manager string `json:"manager"`
	PoolID  string `json:"pool_id"`
	Asset   string `json:"asset"`
}

// Route implements sdk.Msg
func (msg MsgRemoveAvailableAsset) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgRemoveAvailableAsset) Type() string { return TypeMsgRemoveAvailableAsset }

// ValidateBasic implements sdk.Msg
func (msg MsgRemoveAvailableAsset) ValidateBasic() error {
	return validateManagerAssetMsg(msg.Manager, msg.PoolID, msg.Asset)
}

// GetSigners implements sdk.Msg
func (msg MsgRemoveAvailableAsset) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Manager)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgRemoveAvailableAsset) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgRemoveAvailableAsset) Reset() { *msg = MsgRemoveAvailableAsset{} }

// String implements proto.Message
func (msg MsgRemoveAvailableAsset) String() string {
	return fmt.Sprintf("MsgRemoveAvailableAsset{PoolID: %s, Asset: %s}", msg.PoolID, msg.Asset)
}

// MsgAddDepositAsset defines the AddDepositAsset message
type MsgAddDepositAsset struct {
	Manager string `json:"manager"`
	PoolID  string `json:"pool_id"`
	Asset   string `json:"asset"`
}

// Route implements sdk.Msg
func (msg MsgAddDepositAsset) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgAddDepositAsset) Type() string { return TypeMsgAddDepositAsset }

// ValidateBasic implements sdk.Msg
func (msg MsgAddDepositAsset) ValidateBasic() error {
	return validateManagerAssetMsg(msg.Manager, msg.PoolID, msg.Asset)
}

// GetSigners implements sdk.Msg
func (msg MsgAddDepositAsset) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Manager)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgAddDepositAsset) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgAddDepositAsset) Reset() { *msg = MsgAddDepositAsset{} }

// String implements proto.Message
func (msg MsgAddDepositAsset) String() string {
	return fmt.Sprintf("MsgAddDepositAsset{PoolID: %s, Asset: %s}", msg.PoolID, msg.Asset)
}

// MsgRemoveDepositAsset defines the RemoveDepositAsset message
type MsgRemoveDepositAsset struct {
	Manager string `json:"manager"`
	PoolID  string `json:"pool_id"`
	Asset   string `json:"asset"`
}

// Route implements sdk.Msg
func (msg MsgRemoveDepositAsset) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgRemoveDepositAsset) Type() string { return TypeMsgRemoveDepositAsset }

// ValidateBasic implements sdk.Msg
func (msg MsgRemoveDepositAsset) ValidateBasic() error {
	return validateManagerAssetMsg(msg.Manager, msg.PoolID, msg.Asset)
}

// GetSigners implements sdk.Msg
func (msg MsgRemoveDepositAsset) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Manager)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgRemoveDepositAsset) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgRemoveDepositAsset) Reset() { *msg = MsgRemoveDepositAsset{} }

// String implements proto.Message
func (msg MsgRemoveDepositAsset) String() string {
	return fmt.Sprintf("MsgRemoveDepositAsset{PoolID: %s, Asset: %s}", msg.PoolID, msg.Asset)
}

// MsgManagerAssetResponse is the shared response for asset whitelist updates
type MsgManagerAssetResponse struct {
	PoolID          string   `json:"pool_id"`
	AvailableAssets []string `json:"available_assets"`
	DepositAssets   []string `json:"deposit_assets"`
}

// MsgSetPerformanceFee defines the SetPerformanceFee message
type MsgSetPerformanceFee struct {
	Manager string `json:"manager"`
	PoolID  string `json:"pool_id"`
	Fee     int64  `json:"fee"`
}

// Route implements sdk.Msg
func (msg MsgSetPerformanceFee) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgSetPerformanceFee) Type() string { return TypeMsgSetPerformanceFee }

// ValidateBasic implements sdk.Msg
func (msg MsgSetPerformanceFee) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Manager); err != nil {
		return err
	}
	if msg.PoolID == "" {
		return ErrPoolNotFound
	}
	if msg.Fee < 0 {
		return ErrFeeTooHigh
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgSetPerformanceFee) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Manager)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgSetPerformanceFee) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgSetPerformanceFee) Reset() { *msg = MsgSetPerformanceFee{} }

// String implements proto.Message
func (msg MsgSetPerformanceFee) String() string {
	return fmt.Sprintf("MsgSetPerformanceFee{PoolID: %s, Fee: %d}", msg.PoolID, msg.Fee)
}

// MsgSetPerformanceFeeResponse defines the SetPerformanceFee response
type MsgSetPerformanceFeeResponse struct {
	PoolID string `json:"pool_id"`
	Fee    int64  `json:"fee"`
}

func validateManagerAssetMsg(manager, poolID, asset string) error {
	if _, err := sdk.AccAddressFromBech32(manager); err != nil {
		return err
	}
	if poolID == "" {
		return ErrPoolNotFound
	}
	if asset == "" {
		return ErrInvalidAsset
	}
	return nil
}

// Ensure all messages implement sdk.Msg interface
var (
	_ sdk.Msg = &MsgCreateCappedPool{}
	_ sdk.Msg = &MsgDeposit{}
	_ sdk.Msg = &MsgWithdraw{}
	_ sdk.Msg = &MsgTransferTokens{}
	_ sdk.Msg = &MsgTakeSnapshot{}
	_ sdk.Msg = &MsgAddAvailableAsset{}
	_ sdk.Msg = &MsgRemoveAvailableAsset{}
	_ sdk.Msg = &MsgAddDepositAsset{}
	_ sdk.Msg = &MsgRemoveDepositAsset{}
	_ sdk.Msg = &MsgSetPerformanceFee{}
)

package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message types
const (
	TypeMsgCreatePool           = "create_pool"
	TypeMsgDeposit              = "deposit"
	TypeMsgWithdraw             = "withdraw"
	TypeMsgExecuteTransaction   = "execute_transaction"
	TypeMsgAddAvailableAsset    = "add_available_asset"
	TypeMsgRemoveAvailableAsset = "remove_available_asset"
	TypeMsgAddDepositAsset      = "add_deposit_asset"
	TypeMsgRemoveDepositAsset   = "remove_deposit_asset"
	TypeMsgSetPerformanceFee    = "set_performance_fee"
)

// MsgCreatePool defines the CreatePool message
type MsgCreatePool struct {
	Manager        string `json:"manager"`
	Name           string `json:"name"`
	PerformanceFee int64  `json:"performance_fee"`
}

// Route implements sdk.Msg
func (msg MsgCreatePool) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgCreatePool) Type() string { return TypeMsgCreatePool }

// ValidateBasic implements sdk.Msg
func (msg MsgCreatePool) ValidateBasic() error {
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
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Manager)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgCreatePool) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgCreatePool) Reset() { *msg = MsgCreatePool{} }

// String implements proto.Message
func (msg MsgCreatePool) String() string {
	return fmt.Sprintf("MsgCreatePool{Manager: %s, Name: %s}", msg.Manager, msg.Name)
}

// MsgCreatePoolResponse defines the CreatePool response
type MsgCreatePoolResponse struct {
	PoolID string `json:"pool_id"`
}

// MsgDeposit defines the Deposit message
type MsgDeposit struct {
	Depositor string `json:"depositor"`
	PoolID    string `json:"pool_id"`
	Asset     string `json:"asset"`
	Amount    string `json:"amount"`
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
	return fmt.Sprintf("MsgDeposit{Depositor: %s, PoolID: %s, Asset: %s, Amount: %s}", msg.Depositor, msg.PoolID, msg.Asset, msg.Amount)
}

// MsgDepositResponse defines the Deposit response
type MsgDepositResponse struct {
	DepositID    string `json:"deposit_id"`
	SharesMinted string `json:"shares_minted"`
	TokenPrice   string `json:"token_price"`
}

// MsgWithdraw defines the Withdraw message
type MsgWithdraw struct {
	Withdrawer string `json:"withdrawer"`
	PoolID     string `json:"pool_id"`
	Shares     string `json:"shares"`
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
	return fmt.Sprintf("MsgWithdraw{Withdrawer: %s, PoolID: %s, Shares: %s}", msg.Withdrawer, msg.PoolID, msg.Shares)
}

// MsgWithdrawResponse defines the Withdraw response
type MsgWithdrawResponse struct {
	WithdrawalID string            `json:"withdrawal_id"`
	AssetsOut    map[string]string `json:"assets_out"`
}

// MsgExecuteTransaction defines the ExecuteTransaction message
type MsgExecuteTransaction struct {
	Manager     string `json:"manager"`
	PoolID      string `json:"pool_id"`
	Target      string `json:"target"`
	Action      string `json:"action"`
	Amount      string `json:"amount"`
	SourceAsset string `json:"source_asset"`
}

// Route implements sdk.Msg
func (msg MsgExecuteTransaction) Route() string { return ModuleName }

// Type implements sdk.Msg
func (msg MsgExecuteTransaction) Type() string { return TypeMsgExecuteTransaction }

// ValidateBasic implements sdk.Msg
func (msg MsgExecuteTransaction) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Manager); err != nil {
		return err
	}
	if msg.PoolID == "" {
		return ErrPoolNotFound
	}
	if msg.Target == "" {
		return ErrInvalidAsset
	}
	return nil
}

// GetSigners implements sdk.Msg
func (msg MsgExecuteTransaction) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(msg.Manager)
	return []sdk.AccAddress{addr}
}

// ProtoMessage implements proto.Message
func (*MsgExecuteTransaction) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgExecuteTransaction) Reset() { *msg = MsgExecuteTransaction{} }

// String implements proto.Message
func (msg MsgExecuteTransaction) String() string {
	return fmt.Sprintf("MsgExecuteTransaction{PoolID: %s, Target: %s, Action: %s}", msg.PoolID, msg.Target, msg.Action)
}

// MsgExecuteTransactionResponse defines the ExecuteTransaction response
type MsgExecuteTransactionResponse struct {
	ExecutionID string            `json:"execution_id"`
	Deltas      map[string]string `json:"deltas"`
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
	_ sdk.Msg = &MsgCreatePool{}
	_ sdk.Msg = &MsgDeposit{}
	_ sdk.Msg = &MsgWithdraw{}
	_ sdk.Msg = &MsgExecuteTransaction{}
	_ sdk.Msg = &MsgAddAvailableAsset{}
	_ sdk.Msg = &MsgRemoveAvailableAsset{}
	_ sdk.Msg = &MsgAddDepositAsset{}
	_ sdk.Msg = &MsgRemoveDepositAsset{}
	_ sdk.Msg = &MsgSetPerformanceFee{}
)

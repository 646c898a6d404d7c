package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/Tradegen/protocol-v2/x/cappedpools/types"
)

// GetTxCmd returns the transaction commands for the cappedpools module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "cappedpools",
		Short:                      "Capped pools module transaction commands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdCreateCappedPool(),
		CmdDeposit(),
		CmdWithdraw(),
		CmdTransferTokens(),
		CmdTakeSnapshot(),
		CmdAddAvailableAsset(),
		CmdRemoveAvailableAsset(),
		CmdAddDepositAsset(),
		CmdRemoveDepositAsset(),
		CmdSetPerformanceFee(),
	)

	return cmd
}

// CmdCreateCappedPool returns the command to create a capped pool
func CmdCreateCappedPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name] [max-supply] [seed-price] [performance-fee-bps]",
		Short: "Create a new fixed-supply pool",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			fee, err := strconv.ParseInt(args[3], 10, 64)
			if err != nil {
				return err
			}

			msg := &types.MsgCreateCappedPool{
				Manager:        clientCtx.GetFromAddress().String(),
				Name:           args[0],
				MaxSupply:      args[1],
				SeedPrice:      args[2],
				PerformanceFee: fee,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDeposit returns the command to deposit into a capped pool
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [pool-id] [asset] [token-quantity]",
		Short: "Buy a fixed quantity of pool tokens with a deposit asset",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgDeposit{
				Depositor:     clientCtx.GetFromAddress().String(),
				PoolID:        args[0],
				Asset:         args[1],
				TokenQuantity: args[2],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdraw returns the command to withdraw from a capped pool
func CmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [pool-id] [class] [token-quantity]",
		Short: "Burn pool tokens of one class for a pro-rata basket",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			class, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}

			msg := &types.MsgWithdraw{
				Withdrawer:    clientCtx.GetFromAddress().String(),
				PoolID:        args[0],
				Class:         class,
				TokenQuantity: args[2],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdTransferTokens returns the command to transfer pool tokens
func CmdTransferTokens() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer [pool-id] [to] [class] [quantity]",
		Short: "Transfer pool tokens of one class to another holder",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			class, err := strconv.Atoi(args[2])
			if err != nil {
				return err
			}

			msg := &types.MsgTransferTokens{
				From:     clientCtx.GetFromAddress().String(),
				To:       args[1],
				PoolID:   args[0],
				Class:    class,
				Quantity: args[3],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdTakeSnapshot returns the command to take a fee snapshot
func CmdTakeSnapshot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot [pool-id]",
		Short: "Book unrealized profit against the fee high-water mark (snapshot authority only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgTakeSnapshot{
				Caller: clientCtx.GetFromAddress().String(),
				PoolID: args[0],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddAvailableAsset returns the command to whitelist an asset
func CmdAddAvailableAsset() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-asset [pool-id] [asset]",
		Short: "Add an asset to a pool's whitelist (manager only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgAddAvailableAsset{
				Manager: clientCtx.GetFromAddress().String(),
				PoolID:  args[0],
				Asset:   args[1],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveAvailableAsset returns the command to remove a whitelisted asset
func CmdRemoveAvailableAsset() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-asset [pool-id] [asset]",
		Short: "Remove an asset from a pool's whitelist (manager only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgRemoveAvailableAsset{
				Manager: clientCtx.GetFromAddress().String(),
				PoolID:  args[0],
				Asset:   args[1],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddDepositAsset returns the command to accept an asset for deposits
func CmdAddDepositAsset() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-deposit-asset [pool-id] [asset]",
		Short: "Accept a whitelisted asset for deposits (manager only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgAddDepositAsset{
				Manager: clientCtx.GetFromAddress().String(),
				PoolID:  args[0],
				Asset:   args[1],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveDepositAsset returns the command to stop accepting an asset for deposits
func CmdRemoveDepositAsset() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-deposit-asset [pool-id] [asset]",
		Short: "Stop accepting an asset for deposits (manager only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgRemoveDepositAsset{
				Manager: clientCtx.GetFromAddress().String(),
				PoolID:  args[0],
				Asset:   args[1],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetPerformanceFee returns the command to update a pool's performance fee
func CmdSetPerformanceFee() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-fee [pool-id] [fee-bps]",
		Short: "Update a pool's performance fee (manager only, rate limited)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			fee, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return err
			}

			msg := &types.MsgSetPerformanceFee{
				Manager: clientCtx.GetFromAddress().String(),
				PoolID:  args[0],
				Fee:     fee,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

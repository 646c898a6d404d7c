package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/Tradegen/protocol-v2/x/pools/types"
)

// GetTxCmd returns the transaction commands for the pools module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "pools",
		Short:                      "Pools module transaction commands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdCreatePool(),
		CmdDeposit(),
		CmdWithdraw(),
		CmdExecuteTransaction(),
		CmdAddAvailableAsset(),
		CmdRemoveAvailableAsset(),
		CmdAddDepositAsset(),
		CmdRemoveDepositAsset(),
		CmdSetPerformanceFee(),
	)

	return cmd
}

// CmdCreatePool returns the command to create a managed pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name] [performance-fee-bps]",
		Short: "Create a new managed pool",
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

			msg := &types.MsgCreatePool{
				Manager:        clientCtx.GetFromAddress().String(),
				Name:           args[0],
				PerformanceFee: fee,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDeposit returns the command to deposit into a pool
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [pool-id] [asset] [amount]",
		Short: "Deposit an asset into a pool for newly minted shares",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgDeposit{
				Depositor: clientCtx.GetFromAddress().String(),
				PoolID:    args[0],
				Asset:     args[1],
				Amount:    args[2],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdraw returns the command to withdraw from a pool
func CmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [pool-id] [shares]",
		Short: "Burn pool shares for a pro-rata basket of the pool's assets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgWithdraw{
				Withdrawer: clientCtx.GetFromAddress().String(),
				PoolID:     args[0],
				Shares:     args[1],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdExecuteTransaction returns the command to execute a manager trade
func CmdExecuteTransaction() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute [pool-id] [target] [action] [amount] [source-asset]",
		Short: "Execute a verified transaction against an external protocol (manager only)",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgExecuteTransaction{
				Manager:     clientCtx.GetFromAddress().String(),
				PoolID:      args[0],
				Target:      args[1],
				Action:      args[2],
				Amount:      args[3],
				SourceAsset: args[4],
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

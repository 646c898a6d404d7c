package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/Tradegen/protocol-v2/x/settings/types"
)

// GetTxCmd returns the transaction commands for the settings module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "settings",
		Short:                      "Settings module transaction commands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdSetParameter(),
	)

	return cmd
}

// CmdSetParameter returns the command to update a protocol parameter
func CmdSetParameter() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-parameter [name] [value]",
		Short: "Update a protocol parameter (owner only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			value, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return err
			}

			msg := &types.MsgSetParameter{
				Authority: clientCtx.GetFromAddress().String(),
				Name:      args[0],
				Value:     value,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/Tradegen/protocol-v2/x/marketplace/types"
)

// GetTxCmd returns the transaction commands for the marketplace module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "marketplace",
		Short:                      "Marketplace module transaction commands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdCreateListing(),
		CmdRemoveListing(),
		CmdUpdatePrice(),
		CmdPurchase(),
	)

	return cmd
}

// CmdCreateListing returns the command to list pool tokens for sale
func CmdCreateListing() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [pool-id] [class] [quantity] [token-price]",
		Short: "List capped pool tokens of one class for sale",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			class, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}

			msg := &types.MsgCreateListing{
				Seller:     clientCtx.GetFromAddress().String(),
				PoolID:     args[0],
				Class:      class,
				Quantity:   args[2],
				TokenPrice: args[3],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveListing returns the command to cancel a listing
func CmdRemoveListing() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [index]",
		Short: "Cancel an active listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			index, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			msg := &types.MsgRemoveListing{
				Seller: clientCtx.GetFromAddress().String(),
				Index:  index,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdatePrice returns the command to reprice a listing
func CmdUpdatePrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-price [index] [new-price]",
		Short: "Change the asking price of an active listing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			index, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			msg := &types.MsgUpdatePrice{
				Seller:   clientCtx.GetFromAddress().String(),
				Index:    index,
				NewPrice: args[1],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdPurchase returns the command to buy from a listing
func CmdPurchase() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purchase [index] [quantity]",
		Short: "Buy tokens from an active listing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			index, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			msg := &types.MsgPurchase{
				Buyer:    clientCtx.GetFromAddress().String(),
				Index:    index,
				Quantity: args[1],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

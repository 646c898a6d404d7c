package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
)

// GetQueryCmd returns the cli query commands for the assets module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "assets",
		Short:                      "Querying commands for the assets module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryAsset(),
		CmdQueryAssets(),
		CmdQueryPrice(),
	)

	return cmd
}

// CmdQueryAsset returns the command to query an asset
func CmdQueryAsset() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset [address]",
		Short: "Query a registered asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Asset query requires running node connection")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryAssets returns the command to query all assets
func CmdQueryAssets() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Query all registered assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Asset list query requires running node connection")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPrice returns the command to query an asset price
func CmdQueryPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price [address]",
		Short: "Query the current USD price of an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Price query requires running node connection")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

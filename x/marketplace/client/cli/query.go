package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
)

// GetQueryCmd returns the cli query commands for the marketplace module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "marketplace",
		Short:                      "Querying commands for the marketplace module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryListing(),
		CmdQueryListings(),
		CmdQueryBestAsk(),
	)

	return cmd
}

// CmdQueryListing returns the command to query a listing
func CmdQueryListing() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listing [index]",
		Short: "Query a listing by index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Listing query requires running node connection")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryListings returns the command to query a pool's listings
func CmdQueryListings() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listings [pool-id]",
		Short: "Query the active listings for a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Listings query requires running node connection")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryBestAsk returns the command to query the cheapest listing
func CmdQueryBestAsk() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "best-ask [pool-id]",
		Short: "Query the cheapest active listing for a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Best ask query requires running node connection")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

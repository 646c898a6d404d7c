package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
)

// GetQueryCmd returns the cli query commands for the cappedpools module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "cappedpools",
		Short:                      "Querying commands for the capped pools module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryPool(),
		CmdQueryPools(),
		CmdQueryClassBalances(),
		CmdQueryAvailableTokens(),
		CmdQueryTokenPrice(),
	)

	return cmd
}

// CmdQueryPool returns the command to query a capped pool
func CmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Query a capped pool by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Pool query requires running node connection")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPools returns the command to query all capped pools
func CmdQueryPools() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Query all capped pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Pool list query requires running node connection")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryClassBalances returns the command to query a holder's class balances
func CmdQueryClassBalances() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balances [pool-id] [holder]",
		Short: "Query a holder's per-class token balances in a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Balance query requires running node connection")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryAvailableTokens returns the command to query class capacity
func CmdQueryAvailableTokens() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "available-tokens [pool-id]",
		Short: "Query unallocated token capacity per class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Available tokens query requires running node connection")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryTokenPrice returns the command to query a pool's token price
func CmdQueryTokenPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token-price [pool-id]",
		Short: "Query a capped pool's current token price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Token price query requires running node connection")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/Tradegen/protocol-v2/x/settings/types"
)

// GetQueryCmd returns the cli query commands for the settings module
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "settings",
		Short:                      "Querying commands for the settings module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryParameter(),
		CmdQueryParameters(),
	)

	return cmd
}

// CmdQueryParameter returns the command to query a single parameter
func CmdQueryParameter() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parameter [name]",
		Short: "Query a protocol parameter by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !types.IsRecognizedParameter(args[0]) {
				return fmt.Errorf("unknown parameter: %s", args[0])
			}
			fmt.Println("Parameter query requires running node connection")
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryParameters returns the command to list the recognized parameters
func CmdQueryParameters() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parameters",
		Short: "List recognized protocol parameters and their defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := json.MarshalIndent(types.DefaultParameters(), "", "  ")
			fmt.Println(string(output))
			return nil
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

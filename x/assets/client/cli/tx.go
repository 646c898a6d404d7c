package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/Tradegen/protocol-v2/x/assets/types"
)

// GetTxCmd returns the transaction commands for the assets module
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "assets",
		Short:                      "Assets module transaction commands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdRegisterAsset(),
		CmdSetAssetPrice(),
		CmdSetVerifier(),
	)

	return cmd
}

// CmdRegisterAsset returns the command to register an asset
func CmdRegisterAsset() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register [address] [symbol] [asset-type] [decimals] [price]",
		Short: "Register an asset with the registry (owner only)",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			assetType, err := strconv.ParseUint(args[2], 10, 32)
			if err != nil {
				return err
			}
			decimals, err := strconv.ParseUint(args[3], 10, 32)
			if err != nil {
				return err
			}
			stable, _ := cmd.Flags().GetBool("stable-coin")

			msg := &types.MsgRegisterAsset{
				Authority:    clientCtx.GetFromAddress().String(),
				Address:      args[0],
				Symbol:       args[1],
				AssetType:    uint32(assetType),
				Decimals:     uint32(decimals),
				Price:        args[4],
				IsStableCoin: stable,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool("stable-coin", false, "designate the asset as the protocol stablecoin")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetAssetPrice returns the command to update an asset price
func CmdSetAssetPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-price [address] [price]",
		Short: "Update an asset's USD price (owner only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgSetAssetPrice{
				Authority: clientCtx.GetFromAddress().String(),
				Address:   args[0],
				Price:     args[1],
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetVerifier returns the command to enable or disable a target verifier
func CmdSetVerifier() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-verifier [address] [enabled]",
		Short: "Enable or disable the transaction verifier for a target (owner only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			enabled, err := strconv.ParseBool(args[1])
			if err != nil {
				return err
			}

			msg := &types.MsgSetVerifier{
				Authority: clientCtx.GetFromAddress().String(),
				Address:   args[0],
				Enabled:   enabled,
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

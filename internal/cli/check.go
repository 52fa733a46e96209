package cli

import (
	"github.com/spf13/cobra"

	"github.com/openride-labs/ridesync/internal/cli/render"
	"github.com/openride-labs/ridesync/internal/domain"
	"github.com/openride-labs/ridesync/internal/usecase"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	var rpc bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the synchronized .env file",
		Long: `Validate the contract address keys in the env file.

Every address key must hold a well-formed hex address. With --rpc the node at
RPC_URL is probed as well: its chain ID must match CHAIN_ID and each contract
address must have deployed code.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CheckDeployment.Run(cmd.Context(), usecase.CheckOptions{RPC: rpc})
			if err != nil {
				return err
			}

			renderer := render.NewCheckRenderer(cmd.OutOrStdout())
			if err := renderer.RenderCheckResult(result); err != nil {
				return err
			}

			if !result.Passed() {
				return domain.ErrChecksFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&rpc, "rpc", false, "Probe the node at RPC_URL (chain ID and deployed code)")

	return cmd
}

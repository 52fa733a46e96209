package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/openride-labs/ridesync/internal/cli/render"
	"github.com/openride-labs/ridesync/internal/domain"
)

// NewSyncCmd creates the sync command
func NewSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync .env with the latest deployment record",
		Long: `Merge the deployment record into the project's .env file and rewrite it.

This command will:
- Overwrite the five contract address keys and PLATFORM_WALLET from the record
- Preserve existing RPC_URL, CHAIN_ID and PLATFORM_FEE_RATE values,
  filling in defaults only when they are absent
- Drop any keys the synchronizer does not recognize

The env file is left untouched when no deployment record exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			renderer := render.NewSyncRenderer(cmd.OutOrStdout())

			result, err := app.SyncEnv.Run(cmd.Context())
			if err != nil {
				if errors.Is(err, domain.ErrDeploymentNotFound) {
					renderer.RenderMissingRecord(err)
				}
				return err
			}

			return renderer.RenderSyncResult(result)
		},
	}

	return cmd
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openride-labs/ridesync/internal/adapters/progress"
	"github.com/openride-labs/ridesync/internal/app"
	"github.com/openride-labs/ridesync/internal/cli/render"
	"github.com/openride-labs/ridesync/internal/config"
	"github.com/openride-labs/ridesync/internal/domain"
	"github.com/openride-labs/ridesync/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ridesync",
		Short: "Environment synchronizer for OpenRide contract deployments",
		Long: `Ridesync keeps a project's .env file in step with the contract-deployment
records written by the OpenRide deployment scripts. Deployment data is
authoritative for contract addresses; operator settings like RPC_URL and
CHAIN_ID are preserved across syncs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot := config.FindProjectRoot()
			v := config.SetupViper(projectRoot, cmd)

			sink := newProgressSink(v)

			// Initialize app with DI
			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network whose deployment record to sync (defaults to 'localhost')")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout for the whole invocation (defaults to 30s)")

	rootCmd.AddCommand(
		NewSyncCmd(),
		NewShowCmd(),
		NewCheckCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// newProgressSink picks a spinner sink for interactive sessions and a no-op
// sink otherwise.
func newProgressSink(v *viper.Viper) usecase.ProgressSink {
	if v.GetBool("non_interactive") {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerSink()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance, ok := cmd.Context().Value(appKey).(*app.App)
	if !ok {
		return nil, fmt.Errorf("app not initialized")
	}
	return appInstance, nil
}

// Execute runs the root command. Errors are rendered here unless a command
// already reported them (the recoverable missing-record case prints its own
// failure marker).
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil && !errors.Is(err, domain.ErrDeploymentNotFound) && !errors.Is(err, domain.ErrChecksFailed) {
		fmt.Fprintln(os.Stderr, render.FormatError(err.Error()))
	}
	return err
}

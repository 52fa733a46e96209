package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openride-labs/ridesync/internal/cli/render"
	"github.com/openride-labs/ridesync/internal/domain"
	"github.com/openride-labs/ridesync/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show [contract]",
		Short: "Show the deployment record for a network",
		Long: `Display the contract addresses and platform configuration of a deployment
record. An optional contract argument narrows the output to a single
contract, matched fuzzily against the logical names in the record.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			opts := usecase.ShowOptions{}
			if len(args) > 0 {
				opts.Contract = args[0]
			}

			result, err := app.ShowDeployment.Run(cmd.Context(), opts)
			if errors.Is(err, domain.ErrDeploymentNotFound) {
				// Offer records from other networks when the configured one
				// has none.
				networks, listErr := app.ShowDeployment.Networks(cmd.Context())
				if listErr != nil || app.Config.NonInteractive {
					fmt.Fprintln(cmd.OutOrStdout(), render.FormatError(err.Error()))
					return err
				}

				prompt := fmt.Sprintf("No record for network %q, pick another", app.Config.Network)
				network, selErr := app.Selector.SelectNetwork(cmd.Context(), networks, prompt)
				if selErr != nil {
					fmt.Fprintln(cmd.OutOrStdout(), render.FormatError(err.Error()))
					return err
				}

				opts.Network = network
				result, err = app.ShowDeployment.Run(cmd.Context(), opts)
			}
			if err != nil {
				if errors.Is(err, domain.ErrDeploymentNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), render.FormatError(err.Error()))
				}
				return err
			}

			renderer := render.NewShowRenderer(cmd.OutOrStdout(), output)
			return renderer.RenderShowResult(result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json, or yaml")

	return cmd
}

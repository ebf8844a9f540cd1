package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTotalCmd(opts *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Show the total value of the configured stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			summary := svc.Summary()
			if jsonOutput {
				return renderJSON(cmd, summary)
			}
			fmt.Fprint(cmd.OutOrStdout(), newRenderer(cmd, svc).Total(summary.TotalValue))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output total as JSON")

	return cmd
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/inventory/internal/domain"
)

func newFindCmd(opts *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "find <name>",
		Short: "Look up a configured product by name (case-insensitive)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService(cmd, opts)
			if err != nil {
				return err
			}

			// Unquoted multi-word names arrive as several args.
			name := strings.Join(args, " ")
			p, ok, err := svc.FindProduct(name)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %q", domain.ErrProductNotFound, strings.TrimSpace(name))
			}

			if jsonOutput {
				return renderJSON(cmd, p)
			}
			fmt.Fprint(cmd.OutOrStdout(), newRenderer(cmd, svc).Found(p))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output product as JSON")

	return cmd
}

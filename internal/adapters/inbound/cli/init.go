package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/inventory/internal/adapters/outbound/config"
	"github.com/abdidvp/inventory/internal/domain"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	var (
		currency string
		color    string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .inventory.yaml configuration file",
		Long:  "Create a .inventory.yaml with default settings and a commented example stock list.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.path
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.Config{Currency: currency, Color: domain.ColorMode(color)}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(generateConfig(cfg)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "$", "Currency symbol shown before prices")
	cmd.Flags().StringVar(&color, "color", string(domain.ColorAuto), "Color mode (auto, always, never)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .inventory.yaml")

	return cmd
}

func generateConfig(cfg domain.Config) string {
	return fmt.Sprintf(`# inventory configuration

currency: %q
color: %s

# Products loaded into the inventory at startup.
# stock:
#   - name: Pen
#     price: 1.50
#     quantity: 100
`, cfg.Currency, cfg.Color)
}

package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/inventory/internal/adapters/outbound/config"
	"github.com/abdidvp/inventory/internal/adapters/outbound/tui"
	"github.com/abdidvp/inventory/internal/application"
)

var (
	version = "dev"
	commit  = "none"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	path    string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Track products, stock levels and inventory value",
		Long:  "inventory is a console inventory tracker. Run it without a subcommand to open the interactive menu.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.path, "path", ".", "Directory containing .inventory.yaml")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log inventory changes to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newMenuCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newFindCmd(opts))
	cmd.AddCommand(newTotalCmd(opts))
	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// openService resolves --path and returns a service seeded from its config.
func openService(cmd *cobra.Command, opts *globalOptions) (*application.InventoryService, error) {
	absPath, err := filepath.Abs(opts.path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	var logger *slog.Logger
	if opts.verbose {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	svc := application.NewInventoryService(config.New(), logger)
	if err := svc.Open(absPath); err != nil {
		return nil, err
	}
	return svc, nil
}

func newRenderer(cmd *cobra.Command, svc *application.InventoryService) *tui.Renderer {
	cfg := svc.Config()
	return tui.NewRenderer(cmd.OutOrStdout(), cfg.Color, cfg.Currency)
}

package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Owner  string
	Format string // "json" | "text"
}

var ValidFormats = []string{"text", "json"}

const defaultOwner = "guest"

func NewRootCommand(app *App) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Storefront cart and pricing tool",
		Long:  "Manage a shopper's cart, price it with coupons and hand orders to the commerce API.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Owner == "" {
				return fmt.Errorf("owner is empty")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Owner, "owner", defaultOwner, "cart owner id")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&app.MetricsFile, "metrics-file", app.MetricsFile, "write prometheus metrics to this textfile after the command")

	cmd.AddCommand(newCartCommand(app, opts))
	cmd.AddCommand(newCouponCommand(app, opts))
	cmd.AddCommand(newProductsCommand(app, opts))
	cmd.AddCommand(newCheckoutCommand(app, opts))
	cmd.AddCommand(newMigrateCommand(app, opts))

	return cmd
}

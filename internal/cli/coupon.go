package cli

import (
	"github.com/spf13/cobra"
)

func newCouponCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coupon",
		Short: "Coupon catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the coupons the store accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := app.couponCatalog()
			if err != nil {
				return err
			}
			return writeCoupons(cmd.OutOrStdout(), rootOpts.Format, catalog.Coupons())
		},
	})

	return cmd
}

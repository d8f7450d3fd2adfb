package cli

import (
	"context"

	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/spf13/cobra"
)

type checkoutOptions struct {
	*RootOptions
	Customer domain.Customer
	Coupon   string
}

func newCheckoutCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	opts := &checkoutOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart",
		Long: `Submit the owner's cart as an order to the commerce API.

The cart is emptied only once the order is accepted.

Example:
  storefront checkout --customer-id c-1 --first-name Asha --last-name Rao \
    --email asha@example.com --address-id addr-7 --coupon SAVE20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			remote, err := app.OpenCommerce()
			if err != nil {
				return err
			}

			return app.withSession(cmd.Context(), opts.Owner, func(ctx context.Context, s *checkout.Session) error {
				if err := applyCoupon(ctx, s, opts.Coupon); err != nil {
					return err
				}

				order, err := s.PlaceOrder(ctx, opts.Customer, remote)
				if err != nil {
					return err
				}

				return writeOrder(cmd.OutOrStdout(), opts.Format, order)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Customer.ID, "customer-id", "", "customer id (required)")
	cmd.Flags().StringVar(&opts.Customer.FirstName, "first-name", "", "customer first name")
	cmd.Flags().StringVar(&opts.Customer.LastName, "last-name", "", "customer last name")
	cmd.Flags().StringVar(&opts.Customer.Email, "email", "", "customer email (required)")
	cmd.Flags().StringVar(&opts.Customer.AddressID, "address-id", "", "delivery address id")
	cmd.Flags().StringVar(&opts.Coupon, "coupon", "", "coupon code to apply")
	_ = cmd.MarkFlagRequired("customer-id")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/spf13/cobra"
)

type cartOptions struct {
	*RootOptions
	Quantity int
	Variant  string
	Coupon   string
}

func newCartCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and change the owner's cart",
	}

	cmd.AddCommand(newCartAddCommand(app, rootOpts))
	cmd.AddCommand(newCartRemoveCommand(app, rootOpts))
	cmd.AddCommand(newCartSetCommand(app, rootOpts))
	cmd.AddCommand(newCartClearCommand(app, rootOpts))
	cmd.AddCommand(newCartShowCommand(app, rootOpts))

	return cmd
}

func newCartAddCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	opts := &cartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Long: `Add a product from the commerce catalog to the cart.

Adding a product that is already in the cart with the same variant increases
its quantity.

Example:
  storefront cart add p-101 --qty 2 --variant red`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remote, err := app.OpenCommerce()
			if err != nil {
				return err
			}

			product, err := remote.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return app.withSession(cmd.Context(), opts.Owner, func(ctx context.Context, s *checkout.Session) error {
				s.Store().AddItem(ctx, product, opts.Quantity, opts.Variant)
				return writeSummary(cmd.OutOrStdout(), opts.Format, opts.Owner, s.Summary())
			})
		},
	}

	cmd.Flags().IntVarP(&opts.Quantity, "qty", "q", 1, "quantity to add")
	cmd.Flags().StringVar(&opts.Variant, "variant", "", "variant selector, e.g. a color")

	return cmd
}

func newCartRemoveCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	opts := &cartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withSession(cmd.Context(), opts.Owner, func(ctx context.Context, s *checkout.Session) error {
				s.Store().RemoveItem(ctx, args[0], opts.Variant)
				return writeSummary(cmd.OutOrStdout(), opts.Format, opts.Owner, s.Summary())
			})
		},
	}

	cmd.Flags().StringVar(&opts.Variant, "variant", "", "variant selector of the line")

	return cmd
}

func newCartSetCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	opts := &cartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "set <product-id> <quantity>",
		Short: "Set the quantity of a cart line",
		Long: `Set the quantity of an existing cart line.

A quantity of zero or less removes the line. Products that are not in the cart
are left alone.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", args[1], err)
			}

			return app.withSession(cmd.Context(), opts.Owner, func(ctx context.Context, s *checkout.Session) error {
				s.Store().SetQuantity(ctx, args[0], quantity, opts.Variant)
				return writeSummary(cmd.OutOrStdout(), opts.Format, opts.Owner, s.Summary())
			})
		},
	}

	cmd.Flags().StringVar(&opts.Variant, "variant", "", "variant selector of the line")

	return cmd
}

func newCartClearCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withSession(cmd.Context(), rootOpts.Owner, func(ctx context.Context, s *checkout.Session) error {
				s.Store().Clear(ctx)
				return writeSummary(cmd.OutOrStdout(), rootOpts.Format, rootOpts.Owner, s.Summary())
			})
		},
	}
}

func newCartShowCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	opts := &cartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the cart with its totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withSession(cmd.Context(), opts.Owner, func(ctx context.Context, s *checkout.Session) error {
				if err := applyCoupon(ctx, s, opts.Coupon); err != nil {
					return err
				}
				return writeSummary(cmd.OutOrStdout(), opts.Format, opts.Owner, s.Summary())
			})
		},
	}

	cmd.Flags().StringVar(&opts.Coupon, "coupon", "", "coupon code to price the cart with")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/nikolayk812/storefront/internal/catalog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type productsOptions struct {
	*RootOptions
	Category  string
	MinPrice  string
	MaxPrice  string
	MinRating float64
	SortBy    string
}

func newProductsCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the commerce catalog",
	}

	cmd.AddCommand(newProductsListCommand(app, rootOpts))

	return cmd
}

func newProductsListCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	opts := &productsOptions{RootOptions: rootOpts}
	defaults := catalog.DefaultFilterOptions()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, filtered and sorted",
		Long: `List products from the commerce API.

Example:
  storefront products list --category toys --max-price 100 --sort price-low`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := opts.filterOptions()
			if err != nil {
				return err
			}

			unit, err := app.currency()
			if err != nil {
				return err
			}

			remote, err := app.OpenCommerce()
			if err != nil {
				return err
			}

			products, err := remote.ListProducts(cmd.Context())
			if err != nil {
				return err
			}

			return writeProducts(cmd.OutOrStdout(), opts.Format, catalog.Filter(products, filter), unit)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", defaults.Category, "category to show, or all")
	cmd.Flags().StringVar(&opts.MinPrice, "min-price", defaults.PriceRange.Min.String(), "lowest price, inclusive")
	cmd.Flags().StringVar(&opts.MaxPrice, "max-price", defaults.PriceRange.Max.String(), "highest price, inclusive")
	cmd.Flags().Float64Var(&opts.MinRating, "min-rating", 0, "minimum rating")
	cmd.Flags().StringVar(&opts.SortBy, "sort", string(defaults.SortBy), "featured|price-low|price-high|rating|newest")

	return cmd
}

func (o *productsOptions) filterOptions() (catalog.FilterOptions, error) {
	minPrice, err := decimal.NewFromString(o.MinPrice)
	if err != nil {
		return catalog.FilterOptions{}, fmt.Errorf("invalid min price %q: %w", o.MinPrice, err)
	}
	maxPrice, err := decimal.NewFromString(o.MaxPrice)
	if err != nil {
		return catalog.FilterOptions{}, fmt.Errorf("invalid max price %q: %w", o.MaxPrice, err)
	}
	if minPrice.GreaterThan(maxPrice) {
		return catalog.FilterOptions{}, fmt.Errorf("min price %s is above max price %s", minPrice, maxPrice)
	}

	return catalog.FilterOptions{
		Category:   o.Category,
		PriceRange: &catalog.PriceRange{Min: minPrice, Max: maxPrice},
		MinRating:  o.MinRating,
		SortBy:     catalog.SortBy(o.SortBy),
	}, nil
}

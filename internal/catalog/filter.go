// Package catalog narrows and orders product listings for browsing.
package catalog

import (
	"cmp"
	"slices"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

const CategoryAll = "all"

type SortBy string

const (
	SortFeatured  SortBy = "featured"
	SortPriceLow  SortBy = "price-low"
	SortPriceHigh SortBy = "price-high"
	SortRating    SortBy = "rating"
	SortNewest    SortBy = "newest"
)

// PriceRange is inclusive on both ends.
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

type FilterOptions struct {
	Category   string
	PriceRange *PriceRange
	MinRating  float64
	SortBy     SortBy
}

func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		Category:   CategoryAll,
		PriceRange: &PriceRange{Min: decimal.Zero, Max: decimal.NewFromInt(500)},
		SortBy:     SortFeatured,
	}
}

// Filter returns the matching products in a new slice; input order is the
// featured order and ties keep it.
func Filter(products []domain.Product, opts FilterOptions) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, opts) {
			filtered = append(filtered, p)
		}
	}

	switch opts.SortBy {
	case SortPriceLow:
		slices.SortStableFunc(filtered, func(a, b domain.Product) int {
			return comparePrice(a, b)
		})
	case SortPriceHigh:
		slices.SortStableFunc(filtered, func(a, b domain.Product) int {
			return comparePrice(b, a)
		})
	case SortRating:
		slices.SortStableFunc(filtered, func(a, b domain.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case SortNewest:
		slices.SortStableFunc(filtered, func(a, b domain.Product) int {
			return cmp.Compare(boolRank(b.IsNew), boolRank(a.IsNew))
		})
	}

	return filtered
}

func matches(p domain.Product, opts FilterOptions) bool {
	if opts.Category != "" && opts.Category != CategoryAll && string(p.Category) != opts.Category {
		return false
	}

	if opts.PriceRange != nil {
		price, ok := p.UnitPrice()
		if !ok || price.LessThan(opts.PriceRange.Min) || price.GreaterThan(opts.PriceRange.Max) {
			return false
		}
	}

	return p.Rating >= opts.MinRating
}

func comparePrice(a, b domain.Product) int {
	pa, _ := a.UnitPrice()
	pb, _ := b.UnitPrice()
	return pa.Cmp(pb)
}

func boolRank(v bool) int {
	if v {
		return 1
	}
	return 0
}

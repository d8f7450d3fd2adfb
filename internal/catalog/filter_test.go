package catalog

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	products := []domain.Product{
		toy("robot", 45, 4.5, false),
		appliance("kettle", 30, 3.9, true),
		toy("puzzle", 12, 4.8, true),
		appliance("mixer", 650, 4.1, false),
		toy("blocks", 30, 3.2, false),
		{ID: "mystery", Category: domain.CategoryToys, Rating: 5},
	}

	tests := []struct {
		name string
		opts FilterOptions
		want []string
	}{
		{
			name: "defaults keep featured order within range",
			opts: DefaultFilterOptions(),
			want: []string{"robot", "kettle", "puzzle", "blocks"},
		},
		{
			name: "no price range keeps unpriced products",
			opts: FilterOptions{Category: CategoryAll},
			want: []string{"robot", "kettle", "puzzle", "mixer", "blocks", "mystery"},
		},
		{
			name: "category toys",
			opts: FilterOptions{Category: "toys", PriceRange: DefaultFilterOptions().PriceRange},
			want: []string{"robot", "puzzle", "blocks"},
		},
		{
			name: "min rating",
			opts: FilterOptions{MinRating: 4},
			want: []string{"robot", "puzzle", "mixer", "mystery"},
		},
		{
			name: "price low to high is stable",
			opts: FilterOptions{PriceRange: &PriceRange{Min: decimal.NewFromInt(10), Max: decimal.NewFromInt(100)}, SortBy: SortPriceLow},
			want: []string{"puzzle", "kettle", "blocks", "robot"},
		},
		{
			name: "price high to low",
			opts: FilterOptions{PriceRange: DefaultFilterOptions().PriceRange, SortBy: SortPriceHigh},
			want: []string{"robot", "kettle", "blocks", "puzzle"},
		},
		{
			name: "inclusive bounds",
			opts: FilterOptions{PriceRange: &PriceRange{Min: decimal.NewFromInt(30), Max: decimal.NewFromInt(45)}},
			want: []string{"robot", "kettle", "blocks"},
		},
		{
			name: "rating",
			opts: FilterOptions{PriceRange: DefaultFilterOptions().PriceRange, SortBy: SortRating},
			want: []string{"puzzle", "robot", "kettle", "blocks"},
		},
		{
			name: "newest first",
			opts: FilterOptions{PriceRange: DefaultFilterOptions().PriceRange, SortBy: SortNewest},
			want: []string{"kettle", "puzzle", "robot", "blocks"},
		},
		{
			name: "unknown sort keeps featured order",
			opts: FilterOptions{Category: "appliances", SortBy: "cheapest"},
			want: []string{"kettle", "mixer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(products, tt.opts)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterDoesNotReorderInput(t *testing.T) {
	products := []domain.Product{toy("b", 20, 1, false), toy("a", 10, 1, false)}

	Filter(products, FilterOptions{SortBy: SortPriceLow})

	assert.Equal(t, []string{"b", "a"}, ids(products))
}

func toy(id string, price int64, rating float64, isNew bool) domain.Product {
	return domain.Product{
		ID:       id,
		Category: domain.CategoryToys,
		Price:    decimal.NewNullDecimal(decimal.NewFromInt(price)),
		Rating:   rating,
		IsNew:    isNew,
	}
}

func appliance(id string, price int64, rating float64, isNew bool) domain.Product {
	p := toy(id, price, rating, isNew)
	p.Category = domain.CategoryAppliances
	return p
}

func ids(products []domain.Product) []string {
	result := make([]string, 0, len(products))
	for _, p := range products {
		result = append(result, p.ID)
	}
	return result
}

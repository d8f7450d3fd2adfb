package domain

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryToys       Category = "toys"
	CategoryAppliances Category = "appliances"
)

// Product is supplied by the remote catalog. The cart reads only ID and Price.
type Product struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Price       decimal.NullDecimal `json:"price"`
	Category    Category            `json:"category,omitempty"`
	Subcategory string              `json:"subcategory,omitempty"`
	Rating      float64             `json:"rating,omitempty"`
	Reviews     int                 `json:"reviews,omitempty"`
	InStock     bool                `json:"inStock,omitempty"`
	StockCount  int                 `json:"stockCount,omitempty"`
	IsNew       bool                `json:"isNew,omitempty"`
	IsOnSale    bool                `json:"isOnSale,omitempty"`
	Colors      []string            `json:"colors,omitempty"`
}

// UnitPrice reports the product price and whether it is a usable number.
// A missing or negative price is not usable.
func (p Product) UnitPrice() (decimal.Decimal, bool) {
	if !p.Price.Valid || p.Price.Decimal.IsNegative() {
		return decimal.Zero, false
	}
	return p.Price.Decimal, true
}

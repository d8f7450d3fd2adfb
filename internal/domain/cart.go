package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

type Cart struct {
	OwnerID string
	Lines   []CartLine
}

// LineKey identifies a cart line. An empty Variant means no selector.
type LineKey struct {
	ProductID string
	Variant   string
}

type CartLine struct {
	Product  Product
	Quantity int
	Variant  string
}

func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.Product.ID, Variant: l.Variant}
}

// Total is price * quantity, zero when the product price is unusable.
func (l CartLine) Total() decimal.Decimal {
	price, ok := l.Product.UnitPrice()
	if !ok {
		return decimal.Zero
	}
	return price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (c Cart) TotalItems() int {
	return TotalItems(c.Lines)
}

func (c Cart) TotalPrice() decimal.Decimal {
	return TotalPrice(c.Lines)
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalItems sums line quantities, stopping at math.MaxInt.
func TotalItems(lines []CartLine) int {
	var total int
	for _, line := range lines {
		if total > math.MaxInt-line.Quantity {
			return math.MaxInt
		}
		total += line.Quantity
	}
	return total
}

func TotalPrice(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Total())
	}
	return total
}

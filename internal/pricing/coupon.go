// Package pricing applies coupons from a fixed catalog to a cart subtotal.
package pricing

import (
	"errors"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCoupon      = errors.New("invalid coupon code")
	ErrMinimumOrderNotMet = errors.New("minimum order not met")
)

var hundred = decimal.NewFromInt(100)

// MinimumOrderError carries the subtotal a coupon requires.
type MinimumOrderError struct {
	Code    string
	Minimum decimal.Decimal
}

func (e *MinimumOrderError) Error() string {
	return fmt.Sprintf("minimum order of %s required", e.Minimum.StringFixed(2))
}

func (e *MinimumOrderError) Is(target error) bool {
	return target == ErrMinimumOrderNotMet
}

// ApplyCoupon resolves code against catalog for the given subtotal.
// Rejections are ErrInvalidCoupon or a *MinimumOrderError.
func ApplyCoupon(code string, subtotal decimal.Decimal, catalog Catalog) (domain.Coupon, error) {
	coupon, ok := catalog.Lookup(code)
	if !ok {
		return domain.Coupon{}, ErrInvalidCoupon
	}

	if coupon.MinOrder.Valid && subtotal.LessThan(coupon.MinOrder.Decimal) {
		return domain.Coupon{}, &MinimumOrderError{Code: coupon.Code, Minimum: coupon.MinOrder.Decimal}
	}

	return coupon, nil
}

type Breakdown struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// ComputeDiscount prices subtotal with the applied coupon, if any.
// Discount is rounded to two places; Total never drops below zero.
func ComputeDiscount(subtotal decimal.Decimal, applied *domain.Coupon) Breakdown {
	discount := decimal.Zero
	if applied != nil {
		switch applied.Kind {
		case domain.CouponKindPercentage:
			discount = subtotal.Mul(applied.Amount).Div(hundred).Round(2)
		case domain.CouponKindFixed:
			discount = applied.Amount
		}
	}

	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Breakdown{
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
	}
}

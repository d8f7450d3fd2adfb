package domain

import "github.com/shopspring/decimal"

type CouponKind string

const (
	CouponKindPercentage CouponKind = "percentage"
	CouponKindFixed      CouponKind = "fixed"
)

type Coupon struct {
	Code     string
	Kind     CouponKind
	Amount   decimal.Decimal
	MinOrder decimal.NullDecimal
}

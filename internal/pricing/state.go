package pricing

import (
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type CouponStatus string

const (
	StatusNoCoupon CouponStatus = "no_coupon"
	StatusApplied  CouponStatus = "applied"
)

// CouponState holds at most one applied coupon for a cart session.
// Rejected applications leave it unchanged.
type CouponState struct {
	catalog Catalog
	applied *domain.Coupon
}

func NewCouponState(catalog Catalog) *CouponState {
	return &CouponState{catalog: catalog}
}

// Apply replaces the applied coupon on success.
func (s *CouponState) Apply(code string, subtotal decimal.Decimal) (domain.Coupon, error) {
	coupon, err := ApplyCoupon(code, subtotal, s.catalog)
	if err != nil {
		return domain.Coupon{}, err
	}
	s.applied = &coupon
	return coupon, nil
}

func (s *CouponState) Remove() {
	s.applied = nil
}

func (s *CouponState) Applied() (domain.Coupon, bool) {
	if s.applied == nil {
		return domain.Coupon{}, false
	}
	return *s.applied, true
}

func (s *CouponState) Status() CouponStatus {
	if s.applied == nil {
		return StatusNoCoupon
	}
	return StatusApplied
}

func (s *CouponState) Price(subtotal decimal.Decimal) Breakdown {
	return ComputeDiscount(subtotal, s.applied)
}

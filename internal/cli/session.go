package cli

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/checkout"
)

// withSession restores the owner's cart from the configured slot and hands a
// checkout session over it to fn.
func (a *App) withSession(ctx context.Context, ownerID string, fn func(ctx context.Context, s *checkout.Session) error) error {
	unit, err := a.currency()
	if err != nil {
		return err
	}

	coupons, err := a.couponCatalog()
	if err != nil {
		return err
	}

	slot, closeSlot, err := a.OpenSlot(ctx)
	if err != nil {
		return fmt.Errorf("open cart slot: %w", err)
	}
	defer closeSlot()

	ctx = a.Logger.WithOwnerID(ctx, ownerID)

	store := cart.NewStore(ctx, ownerID, slot,
		cart.WithLogger(a.Logger),
		cart.WithMetrics(a.Metrics),
	)
	session := checkout.NewSession(store, coupons, unit,
		checkout.WithLogger(a.Logger),
		checkout.WithMetrics(a.Metrics),
	)

	return fn(ctx, session)
}

func applyCoupon(ctx context.Context, s *checkout.Session, code string) error {
	if code == "" {
		return nil
	}
	if _, err := s.ApplyCoupon(ctx, code); err != nil {
		return fmt.Errorf("coupon %s: %w", code, err)
	}
	return nil
}

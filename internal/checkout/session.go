// Package checkout drives one shopping session: the injected cart store, the
// coupon applied to it and the hand-off to the order service.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/nikolayk812/storefront/internal/metrics"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/pricing"
	"golang.org/x/text/currency"
)

var ErrEmptyCart = errors.New("cart is empty")

var validate = validator.New()

type Summary struct {
	Lines      []domain.CartLine
	TotalItems int
	Subtotal   domain.Money
	Discount   domain.Money
	Total      domain.Money
	Coupon     *domain.Coupon
}

type Session struct {
	store    *cart.Store
	coupons  *pricing.CouponState
	currency currency.Unit

	logg    *logger.Logger
	metrics *metrics.CartMetrics
	now     func() time.Time
	newKey  func() uuid.UUID
}

type Option func(*Session)

func WithLogger(logg *logger.Logger) Option {
	return func(s *Session) {
		if logg != nil {
			s.logg = logg
		}
	}
}

func WithMetrics(m *metrics.CartMetrics) Option {
	return func(s *Session) {
		s.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func WithIdempotencyKeys(newKey func() uuid.UUID) Option {
	return func(s *Session) {
		s.newKey = newKey
	}
}

func NewSession(store *cart.Store, catalog pricing.Catalog, unit currency.Unit, opts ...Option) *Session {
	s := &Session{
		store:    store,
		coupons:  pricing.NewCouponState(catalog),
		currency: unit,
		logg:     logger.Nop(),
		now:      time.Now,
		newKey:   uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Store() *cart.Store {
	return s.store
}

// ApplyCoupon validates code against the current subtotal. A rejection keeps
// whatever coupon was applied before.
func (s *Session) ApplyCoupon(ctx context.Context, code string) (domain.Coupon, error) {
	coupon, err := s.coupons.Apply(code, s.store.TotalPrice())
	if err != nil {
		reason := "invalid"
		if errors.Is(err, pricing.ErrMinimumOrderNotMet) {
			reason = "minimum_order"
		}
		s.metrics.IncCouponRejection(reason)
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"owner_id": s.store.OwnerID(),
			"coupon":   pricing.NormalizeCode(code),
			"reason":   reason,
		}), "coupon rejected")
		return domain.Coupon{}, err
	}

	return coupon, nil
}

func (s *Session) RemoveCoupon() {
	s.coupons.Remove()
}

func (s *Session) CouponStatus() pricing.CouponStatus {
	return s.coupons.Status()
}

// Summary prices the cart as it is now.
func (s *Session) Summary() Summary {
	lines := s.store.Lines()
	breakdown := s.coupons.Price(domain.TotalPrice(lines))

	summary := Summary{
		Lines:      lines,
		TotalItems: domain.TotalItems(lines),
		Subtotal:   domain.NewMoney(breakdown.Subtotal, s.currency),
		Discount:   domain.NewMoney(breakdown.Discount, s.currency),
		Total:      domain.NewMoney(breakdown.Total, s.currency),
	}
	if coupon, ok := s.coupons.Applied(); ok {
		summary.Coupon = &coupon
	}

	return summary
}

// PlaceOrder submits the current cart. The cart is cleared and the coupon
// dropped only after the order service accepts the order.
func (s *Session) PlaceOrder(ctx context.Context, customer domain.Customer, submitter port.OrderSubmitter) (domain.OrderRequest, error) {
	summary := s.Summary()
	if len(summary.Lines) == 0 {
		return domain.OrderRequest{}, ErrEmptyCart
	}

	if err := validate.Struct(customer); err != nil {
		return domain.OrderRequest{}, fmt.Errorf("validate.Struct: %w", err)
	}

	order := s.buildOrder(customer, summary)

	ctx = s.logg.WithFields(ctx, map[string]any{
		"owner_id":        s.store.OwnerID(),
		"idempotency_key": order.IdempotencyKey.String(),
	})

	if err := submitter.SubmitOrder(ctx, order); err != nil {
		s.logg.Error(ctx, "order submission failed", err)
		return domain.OrderRequest{}, fmt.Errorf("submitter.SubmitOrder: %w", err)
	}

	s.store.Clear(ctx)
	s.coupons.Remove()
	s.metrics.IncOrdersPlaced()
	s.logg.Info(ctx, "order placed")

	return order, nil
}

func (s *Session) buildOrder(customer domain.Customer, summary Summary) domain.OrderRequest {
	items := make([]domain.OrderItem, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		items = append(items, domain.OrderItem{
			ProductName: line.Product.Name,
			ProductID:   line.Product.ID,
			Quantity:    line.Quantity,
			Variant:     line.Variant,
		})
	}

	order := domain.OrderRequest{
		IdempotencyKey: s.newKey(),
		CustomerID:     customer.ID,
		CustomerName:   customer.FullName(),
		Email:          customer.Email,
		OrderDate:      s.now().Format(time.DateOnly),
		Currency:       s.currency.String(),
		Subtotal:       summary.Subtotal.Amount,
		Discount:       summary.Discount.Amount,
		TotalAmount:    summary.Total.Amount,
		Items:          items,
	}
	if customer.AddressID != "" {
		addressID := customer.AddressID
		order.AddressID = &addressID
	}
	if summary.Coupon != nil {
		order.CouponCode = summary.Coupon.Code
	}

	return order
}

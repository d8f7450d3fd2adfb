// Package cart holds the per-session cart store: the ordered line sequence,
// its mutations and the write-through mirror to a durable slot.
package cart

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/nikolayk812/storefront/internal/metrics"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
)

type Store struct {
	mu      sync.Mutex
	ownerID string
	lines   []domain.CartLine

	slot    port.CartSlot
	logg    *logger.Logger
	metrics *metrics.CartMetrics
}

type Option func(*Store)

func WithLogger(logg *logger.Logger) Option {
	return func(s *Store) {
		if logg != nil {
			s.logg = logg
		}
	}
}

func WithMetrics(m *metrics.CartMetrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// NewStore restores the owner's cart from slot. Load failures never surface:
// the store starts empty instead.
func NewStore(ctx context.Context, ownerID string, slot port.CartSlot, opts ...Option) *Store {
	s := &Store{
		ownerID: ownerID,
		slot:    slot,
		logg:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.lines = s.restore(ctx)

	return s
}

func (s *Store) restore(ctx context.Context) []domain.CartLine {
	if s.slot == nil {
		return nil
	}
	ctx = s.logg.WithOwnerID(ctx, s.ownerID)

	lines, err := s.slot.Load(ctx, s.ownerID)
	if errors.Is(err, port.ErrSlotEmpty) {
		return nil
	}
	if err != nil {
		s.metrics.IncSlotFailure("load")
		s.logg.Warn(ctx, "cart slot unreadable, starting with an empty cart", err)
		return nil
	}

	if err := validateLines(lines); err != nil {
		s.metrics.IncSlotFailure("load")
		s.logg.Warn(ctx, "cart slot malformed, starting with an empty cart", err)
		return nil
	}

	return lines
}

func validateLines(lines []domain.CartLine) error {
	seen := make(map[domain.LineKey]struct{}, len(lines))
	for i, line := range lines {
		if line.Product.ID == "" {
			return fmt.Errorf("line[%d]: product id is empty", i)
		}
		if line.Quantity < 1 {
			return fmt.Errorf("line[%d]: quantity[%d] is below 1", i, line.Quantity)
		}
		if _, ok := seen[line.Key()]; ok {
			return fmt.Errorf("line[%d]: duplicate key %v", i, line.Key())
		}
		seen[line.Key()] = struct{}{}
	}
	return nil
}

func (s *Store) OwnerID() string {
	return s.ownerID
}

// AddItem merges quantity into the line keyed by (product.ID, variant),
// appending a new line when none exists. A quantity <= 0 removes the line.
// Merged quantities stop at math.MaxInt.
func (s *Store) AddItem(ctx context.Context, product domain.Product, quantity int, variant string) {
	if quantity <= 0 {
		s.RemoveItem(ctx, product.ID, variant)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.LineKey{ProductID: product.ID, Variant: variant}
	if i := s.indexOf(key); i >= 0 {
		s.lines[i].Quantity = addQuantity(s.lines[i].Quantity, quantity)
	} else {
		s.lines = append(s.lines, domain.CartLine{
			Product:  product,
			Quantity: quantity,
			Variant:  variant,
		})
	}

	s.persist(ctx)
}

// RemoveItem deletes the matching line; a missing line is not an error.
func (s *Store) RemoveItem(ctx context.Context, productID string, variant string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(domain.LineKey{ProductID: productID, Variant: variant})
	if i < 0 {
		return
	}
	s.lines = slices.Delete(s.lines, i, i+1)

	s.persist(ctx)
}

// SetQuantity overwrites the quantity of an existing line. A quantity <= 0
// removes the line; a missing line is left alone.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int, variant string) {
	if quantity <= 0 {
		s.RemoveItem(ctx, productID, variant)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(domain.LineKey{ProductID: productID, Variant: variant})
	if i < 0 || s.lines[i].Quantity == quantity {
		return
	}
	s.lines[i].Quantity = quantity

	s.persist(ctx)
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil

	s.persist(ctx)
}

// Lines returns a copy of the line sequence in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.lines)
}

func (s *Store) Snapshot() domain.Cart {
	return domain.Cart{
		OwnerID: s.ownerID,
		Lines:   s.Lines(),
	}
}

func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.TotalItems(s.lines)
}

func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.TotalPrice(s.lines)
}

// addQuantity saturates at math.MaxInt instead of wrapping.
func addQuantity(current, delta int) int {
	if current > math.MaxInt-delta {
		return math.MaxInt
	}
	return current + delta
}

func (s *Store) indexOf(key domain.LineKey) int {
	return slices.IndexFunc(s.lines, func(line domain.CartLine) bool {
		return line.Key() == key
	})
}

// persist mirrors the current lines to the slot. Failures are reported and
// the in-memory state stays authoritative. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	if s.slot == nil {
		return
	}

	if err := s.slot.Save(ctx, s.ownerID, slices.Clone(s.lines)); err != nil {
		s.metrics.IncSlotFailure("save")
		s.logg.Warn(s.logg.WithOwnerID(ctx, s.ownerID), "cart slot save failed", err)
	}
}

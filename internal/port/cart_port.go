package port

import (
	"context"
	"errors"

	"github.com/nikolayk812/storefront/internal/domain"
)

// ErrSlotEmpty is returned by CartSlot.Load when nothing was saved for the owner.
var ErrSlotEmpty = errors.New("cart slot is empty")

// CartSlot is the durable key-value slot mirroring a cart's line sequence.
type CartSlot interface {
	Load(ctx context.Context, ownerID string) ([]domain.CartLine, error)
	Save(ctx context.Context, ownerID string, lines []domain.CartLine) error
}

type ProductLookup interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
}

type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, order domain.OrderRequest) error
}

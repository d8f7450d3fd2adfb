package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartSlot {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartSlot {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) Load(ctx context.Context, ownerID string) ([]domain.CartLine, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	if _, err := r.q.GetCart(ctx, ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrSlotEmpty
		}
		return nil, fmt.Errorf("q.GetCart: %w", err)
	}

	rows, err := r.q.GetCartLines(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("q.GetCartLines: %w", err)
	}

	lines, err := mapGetCartLinesRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapGetCartLinesRowsToDomain: %w", err)
	}

	return lines, nil
}

// Save replaces the owner's persisted lines atomically.
func (r *cartRepository) Save(ctx context.Context, ownerID string, lines []domain.CartLine) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	params, err := mapDomainToInsertCartLineParams(ownerID, lines)
	if err != nil {
		return fmt.Errorf("mapDomainToInsertCartLineParams: %w", err)
	}

	_, err = withTx(ctx, r.pool, r.q, func(q *db.Queries) (int64, error) {
		revision, err := q.UpsertCart(ctx, ownerID)
		if err != nil {
			return 0, fmt.Errorf("q.UpsertCart: %w", err)
		}

		if _, err := q.DeleteCartLines(ctx, ownerID); err != nil {
			return 0, fmt.Errorf("q.DeleteCartLines: %w", err)
		}

		for _, p := range params {
			if err := q.InsertCartLine(ctx, p); err != nil {
				return 0, fmt.Errorf("q.InsertCartLine: %w", err)
			}
		}

		return revision, nil
	})

	return err
}

func mapDomainToInsertCartLineParams(ownerID string, lines []domain.CartLine) ([]db.InsertCartLineParams, error) {
	params := make([]db.InsertCartLineParams, 0, len(lines))

	for i, line := range lines {
		if line.Quantity > math.MaxInt32 {
			return nil, fmt.Errorf("line[%d]: quantity[%d] does not fit the cart_lines column", i, line.Quantity)
		}

		product, err := encodeProduct(line.Product)
		if err != nil {
			return nil, fmt.Errorf("encodeProduct[%s]: %w", line.Product.ID, err)
		}

		params = append(params, db.InsertCartLineParams{
			OwnerID:   ownerID,
			Position:  int32(i),
			ProductID: line.Product.ID,
			Variant:   line.Variant,
			Quantity:  int32(line.Quantity),
			Product:   product,
		})
	}

	return params, nil
}

func mapGetCartLinesRowToDomain(row db.GetCartLinesRow) (domain.CartLine, error) {
	product, err := decodeProduct(row.Product)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("product[%s] is not valid: %w", row.ProductID, err)
	}

	return domain.CartLine{
		Product:  product,
		Quantity: int(row.Quantity),
		Variant:  row.Variant,
	}, nil
}

func mapGetCartLinesRowsToDomain(rows []db.GetCartLinesRow) ([]domain.CartLine, error) {
	var lines []domain.CartLine

	for _, row := range rows {
		line, err := mapGetCartLinesRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartLinesRowToDomain: %w", err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}

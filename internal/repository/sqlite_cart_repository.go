package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

//go:embed schema.sql
var sqliteSchema string

// SQLiteCart is a single-file cart slot for local sessions.
type SQLiteCart struct {
	db *sql.DB
}

var _ port.CartSlot = (*SQLiteCart)(nil)

// OpenSQLiteCart opens (creating if needed) the database at path and applies
// the slot schema.
func OpenSQLiteCart(ctx context.Context, path string) (*SQLiteCart, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	// single writer avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteCart{db: db}, nil
}

func (s *SQLiteCart) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteCart) Load(ctx context.Context, ownerID string) ([]domain.CartLine, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM cart_slots WHERE owner_id = ?`, ownerID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, port.ErrSlotEmpty
		}
		return nil, fmt.Errorf("select cart_slots: %w", err)
	}

	lines, err := decodeLines(payload)
	if err != nil {
		return nil, fmt.Errorf("decodeLines: %w", err)
	}

	return lines, nil
}

func (s *SQLiteCart) Save(ctx context.Context, ownerID string, lines []domain.CartLine) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	payload, err := encodeLines(lines)
	if err != nil {
		return fmt.Errorf("encodeLines: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO cart_slots (owner_id, payload) VALUES (?, ?)
		ON CONFLICT (owner_id) DO UPDATE
			SET payload = excluded.payload,
			    updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`,
		ownerID, payload)
	if err != nil {
		return fmt.Errorf("upsert cart_slots: %w", err)
	}

	return nil
}

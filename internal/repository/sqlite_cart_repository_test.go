package repository_test

import (
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteCart(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "cart.db")

	slot, err := repository.OpenSQLiteCart(ctx, path)
	require.NoError(t, err)

	ownerID := gofakeit.UUID()
	_, err = slot.Load(ctx, ownerID)
	require.ErrorIs(t, err, port.ErrSlotEmpty)

	lines := []domain.CartLine{randomLine(""), randomLine("green"), randomLine("")}
	require.NoError(t, slot.Save(ctx, ownerID, lines))

	lines[0].Quantity += 5
	require.NoError(t, slot.Save(ctx, ownerID, lines))
	require.NoError(t, slot.Close())

	// survives reopening the file
	reopened, err := repository.OpenSQLiteCart(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx, ownerID)
	require.NoError(t, err)
	assertLines(t, lines, got)

	require.NoError(t, reopened.Save(ctx, ownerID, nil))
	got, err = reopened.Load(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = reopened.Load(ctx, "")
	assert.EqualError(t, err, "ownerID is empty")
}

package repository

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLines(t *testing.T) {
	payload, err := encodeLines([]domain.CartLine{
		{Product: domain.Product{ID: "p1", Name: "Robot", Price: decimal.NewNullDecimal(decimal.NewFromInt(10))}, Quantity: 2, Variant: "red"},
		{Product: domain.Product{ID: "p2", Name: "Kettle"}, Quantity: 1},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"product": {"id": "p1", "name": "Robot", "price": "10"}, "quantity": 2, "variant": "red"},
		{"product": {"id": "p2", "name": "Kettle", "price": null}, "quantity": 1}
	]`, string(payload))
}

func TestDecodeLines(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantLen   int
		wantError bool
	}{
		{name: "empty array", payload: `[]`, wantLen: 0},
		{name: "numeric price", payload: `[{"product":{"id":"p1","price":12.5},"quantity":1}]`, wantLen: 1},
		{name: "not json", payload: `garbage`, wantError: true},
		{name: "object instead of array", payload: `{"product":{}}`, wantError: true},
		{name: "price is not a number", payload: `[{"product":{"id":"p1","price":"abc"},"quantity":1}]`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := decodeLines([]byte(tt.payload))
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, lines, tt.wantLen)
		})
	}
}

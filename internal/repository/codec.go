package repository

import (
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
)

// lineRecord is the persisted form of a cart line; slots store an ordered
// JSON array of them.
type lineRecord struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Variant  string         `json:"variant,omitempty"`
}

func encodeLines(lines []domain.CartLine) ([]byte, error) {
	records := make([]lineRecord, 0, len(lines))
	for _, line := range lines {
		records = append(records, lineRecord{
			Product:  line.Product,
			Quantity: line.Quantity,
			Variant:  line.Variant,
		})
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}
	return payload, nil
}

func decodeLines(payload []byte) ([]domain.CartLine, error) {
	var records []lineRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	lines := make([]domain.CartLine, 0, len(records))
	for _, rec := range records {
		lines = append(lines, domain.CartLine{
			Product:  rec.Product,
			Quantity: rec.Quantity,
			Variant:  rec.Variant,
		})
	}
	return lines, nil
}

func encodeProduct(product domain.Product) ([]byte, error) {
	payload, err := json.Marshal(product)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}
	return payload, nil
}

func decodeProduct(payload []byte) (domain.Product, error) {
	var product domain.Product
	if err := json.Unmarshal(payload, &product); err != nil {
		return domain.Product{}, fmt.Errorf("json.Unmarshal: %w", err)
	}
	return product, nil
}

package cart_test

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type memorySlot struct {
	mu    sync.Mutex
	data  map[string][]domain.CartLine
	saves int
}

func newMemorySlot() *memorySlot {
	return &memorySlot{data: map[string][]domain.CartLine{}}
}

func (m *memorySlot) Load(_ context.Context, ownerID string) ([]domain.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines, ok := m.data[ownerID]
	if !ok {
		return nil, port.ErrSlotEmpty
	}
	return slices.Clone(lines), nil
}

func (m *memorySlot) Save(_ context.Context, ownerID string, lines []domain.CartLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[ownerID] = slices.Clone(lines)
	m.saves++
	return nil
}

func (m *memorySlot) saved(ownerID string) []domain.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.data[ownerID])
}

func (m *memorySlot) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saves
}

type brokenSlot struct {
	loadErr error
	saveErr error
	lines   []domain.CartLine
}

func (b brokenSlot) Load(context.Context, string) ([]domain.CartLine, error) {
	if b.loadErr != nil {
		return nil, b.loadErr
	}
	return b.lines, nil
}

func (b brokenSlot) Save(context.Context, string, []domain.CartLine) error {
	return b.saveErr
}

var errSlotDown = errors.New("slot is down")

package storage

import (
	"context"
	"sync"
	"time"

	"github.com/yourusername/grocery-order-bot/internal/domain/constants"
	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
	"github.com/yourusername/grocery-order-bot/pkg/logger"
)

type cartState struct {
	lines   []entity.CartLine
	touched time.Time
}

// MemoryCartRepository implements repository.CartRepository in process
// memory. Carts idle for longer than the TTL are evicted by the janitor;
// state is lost on restart.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[int64]*cartState
	ttl   time.Duration
}

func NewMemoryCartRepository(ttl time.Duration) *MemoryCartRepository {
	if ttl <= 0 {
		ttl = constants.DefaultCartTTL
	}
	return &MemoryCartRepository{
		carts: make(map[int64]*cartState),
		ttl:   ttl,
	}
}

func (m *MemoryCartRepository) Add(ctx context.Context, userID int64, line entity.CartLine) error {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.carts[userID]
	if !ok {
		state = &cartState{}
		m.carts[userID] = state
	}
	state.touched = time.Now()

	for i := range state.lines {
		if state.lines[i].ProductID == line.ProductID {
			state.lines[i].Quantity += line.Quantity
			return nil
		}
	}
	state.lines = append(state.lines, line)
	return nil
}

func (m *MemoryCartRepository) Lines(ctx context.Context, userID int64) ([]entity.CartLine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.carts[userID]
	if !ok {
		return nil, nil
	}
	return append([]entity.CartLine(nil), state.lines...), nil
}

func (m *MemoryCartRepository) Remove(ctx context.Context, userID int64, idx int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.carts[userID]
	if !ok || idx < 0 || idx >= len(state.lines) {
		return false, nil
	}
	state.lines = append(state.lines[:idx], state.lines[idx+1:]...)
	state.touched = time.Now()
	if len(state.lines) == 0 {
		delete(m.carts, userID)
	}
	return true, nil
}

func (m *MemoryCartRepository) Clear(ctx context.Context, userID int64) error {
	m.mu.Lock()
	delete(m.carts, userID)
	m.mu.Unlock()
	return nil
}

// StartJanitor sweeps idle carts until ctx is done.
func (m *MemoryCartRepository) StartJanitor(ctx context.Context) {
	ticker := time.NewTicker(m.ttl / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := m.evictStale(time.Now()); evicted > 0 {
				logger.InfoLogger.Printf("cart janitor: evicted %d idle carts", evicted)
			}
		}
	}
}

func (m *MemoryCartRepository) evictStale(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	evicted := 0
	for userID, state := range m.carts {
		if now.Sub(state.touched) > m.ttl {
			delete(m.carts, userID)
			evicted++
		}
	}
	return evicted
}

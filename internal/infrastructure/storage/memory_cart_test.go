package storage

import (
	"context"
	"testing"
	"time"

	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
)

func TestMemoryCartMergesSameProduct(t *testing.T) {
	repo := NewMemoryCartRepository(time.Hour)
	ctx := context.Background()

	repo.Add(ctx, 1, entity.CartLine{ProductID: 10, Name: "Dosa Batter", Price: 60, Quantity: 2})
	repo.Add(ctx, 1, entity.CartLine{ProductID: 10, Name: "Dosa Batter", Price: 60, Quantity: 3})
	repo.Add(ctx, 1, entity.CartLine{ProductID: 11, Name: "Coconut Chutney", Price: 40, Quantity: 1})

	lines, err := repo.Lines(ctx, 1)
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Errorf("expected merged quantity 5, got %d", lines[0].Quantity)
	}
}

func TestMemoryCartIsolatedPerUser(t *testing.T) {
	repo := NewMemoryCartRepository(time.Hour)
	ctx := context.Background()

	repo.Add(ctx, 1, entity.CartLine{ProductID: 10, Quantity: 1})
	repo.Add(ctx, 2, entity.CartLine{ProductID: 20, Quantity: 1})

	lines, _ := repo.Lines(ctx, 1)
	if len(lines) != 1 || lines[0].ProductID != 10 {
		t.Errorf("user 1 cart leaked: %+v", lines)
	}
	lines, _ = repo.Lines(ctx, 2)
	if len(lines) != 1 || lines[0].ProductID != 20 {
		t.Errorf("user 2 cart leaked: %+v", lines)
	}
}

func TestMemoryCartRemove(t *testing.T) {
	repo := NewMemoryCartRepository(time.Hour)
	ctx := context.Background()

	repo.Add(ctx, 1, entity.CartLine{ProductID: 10, Quantity: 1})
	repo.Add(ctx, 1, entity.CartLine{ProductID: 11, Quantity: 1})

	ok, err := repo.Remove(ctx, 1, 5)
	if err != nil || ok {
		t.Errorf("out-of-range remove should report false, got ok=%v err=%v", ok, err)
	}

	ok, err = repo.Remove(ctx, 1, 0)
	if err != nil || !ok {
		t.Fatalf("remove failed: ok=%v err=%v", ok, err)
	}
	lines, _ := repo.Lines(ctx, 1)
	if len(lines) != 1 || lines[0].ProductID != 11 {
		t.Errorf("unexpected cart after remove: %+v", lines)
	}
}

func TestMemoryCartClear(t *testing.T) {
	repo := NewMemoryCartRepository(time.Hour)
	ctx := context.Background()

	repo.Add(ctx, 1, entity.CartLine{ProductID: 10, Quantity: 1})
	if err := repo.Clear(ctx, 1); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	lines, _ := repo.Lines(ctx, 1)
	if len(lines) != 0 {
		t.Errorf("cart not empty after clear: %+v", lines)
	}
}

func TestMemoryCartEvictsIdle(t *testing.T) {
	repo := NewMemoryCartRepository(30 * time.Minute)
	ctx := context.Background()

	repo.Add(ctx, 1, entity.CartLine{ProductID: 10, Quantity: 1})
	repo.Add(ctx, 2, entity.CartLine{ProductID: 20, Quantity: 1})

	// Only user 1 stays active.
	repo.carts[2].touched = time.Now().Add(-time.Hour)

	if evicted := repo.evictStale(time.Now()); evicted != 1 {
		t.Fatalf("expected 1 eviction, got %d", evicted)
	}
	if lines, _ := repo.Lines(ctx, 1); len(lines) != 1 {
		t.Errorf("active cart evicted")
	}
	if lines, _ := repo.Lines(ctx, 2); len(lines) != 0 {
		t.Errorf("idle cart survived eviction")
	}
}

func TestMemoryCartLinesReturnsCopy(t *testing.T) {
	repo := NewMemoryCartRepository(time.Hour)
	ctx := context.Background()

	repo.Add(ctx, 1, entity.CartLine{ProductID: 10, Quantity: 1})
	lines, _ := repo.Lines(ctx, 1)
	lines[0].Quantity = 99

	again, _ := repo.Lines(ctx, 1)
	if again[0].Quantity != 1 {
		t.Errorf("internal state mutated through returned slice")
	}
}

package storage

import (
	"testing"
	"time"

	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
)

func TestSnapshotCacheFreshness(t *testing.T) {
	cache := NewSnapshotCache(5 * time.Minute)

	if _, fresh := cache.Get(); fresh {
		t.Fatal("empty cache reported fresh")
	}

	cache.Set([]entity.Product{{ID: 1, Name: "Idly Batter"}})
	products, fresh := cache.Get()
	if !fresh {
		t.Fatal("cache stale right after Set")
	}
	if len(products) != 1 || products[0].Name != "Idly Batter" {
		t.Errorf("unexpected snapshot: %+v", products)
	}

	cache.Invalidate()
	if _, fresh := cache.Get(); fresh {
		t.Error("cache fresh after Invalidate")
	}
}

func TestSnapshotCacheGetReturnsCopy(t *testing.T) {
	cache := NewSnapshotCache(5 * time.Minute)
	cache.Set([]entity.Product{{ID: 1, Name: "Idly Batter"}})

	products, _ := cache.Get()
	products[0].Name = "mutated"

	again, _ := cache.Get()
	if again[0].Name != "Idly Batter" {
		t.Error("cached snapshot mutated through returned slice")
	}
}

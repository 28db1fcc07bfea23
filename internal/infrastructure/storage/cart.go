package storage

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/yourusername/grocery-order-bot/config"
	"github.com/yourusername/grocery-order-bot/internal/domain/repository"
	"github.com/yourusername/grocery-order-bot/pkg/logger"
)

// NewCartRepository picks the cart backend from configuration: Redis when
// an address is set, otherwise the in-memory store with its janitor.
// The returned start function launches any background maintenance and
// should be called once the root context is available.
func NewCartRepository(cfg *config.Config) (repository.CartRepository, func(ctx context.Context)) {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		logger.InfoLogger.Printf("using redis cart store at %s", cfg.RedisAddr)
		return NewRedisCartRepository(client, cfg.CartTTL), func(context.Context) {}
	}

	mem := NewMemoryCartRepository(cfg.CartTTL)
	logger.InfoLogger.Println("using in-memory cart store")
	return mem, func(ctx context.Context) { go mem.StartJanitor(ctx) }
}

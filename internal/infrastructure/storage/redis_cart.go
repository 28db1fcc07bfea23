package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yourusername/grocery-order-bot/internal/domain/constants"
	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
)

// RedisCartRepository keeps carts in Redis so they survive bot restarts.
// Each cart lives under its own key with a TTL refreshed on every write.
type RedisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartRepository(client *redis.Client, ttl time.Duration) *RedisCartRepository {
	if ttl <= 0 {
		ttl = constants.DefaultCartTTL
	}
	return &RedisCartRepository{client: client, ttl: ttl}
}

func cartKey(userID int64) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (r *RedisCartRepository) load(ctx context.Context, userID int64) ([]entity.CartLine, error) {
	data, err := r.client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get cart: %w", err)
	}
	var lines []entity.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return lines, nil
}

func (r *RedisCartRepository) save(ctx context.Context, userID int64, lines []entity.CartLine) error {
	if len(lines) == 0 {
		return r.Clear(ctx, userID)
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := r.client.Set(ctx, cartKey(userID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}
	return nil
}

func (r *RedisCartRepository) Add(ctx context.Context, userID int64, line entity.CartLine) error {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	lines, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	merged := false
	for i := range lines {
		if lines[i].ProductID == line.ProductID {
			lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, line)
	}
	return r.save(ctx, userID, lines)
}

func (r *RedisCartRepository) Lines(ctx context.Context, userID int64) ([]entity.CartLine, error) {
	return r.load(ctx, userID)
}

func (r *RedisCartRepository) Remove(ctx context.Context, userID int64, idx int) (bool, error) {
	lines, err := r.load(ctx, userID)
	if err != nil {
		return false, err
	}
	if idx < 0 || idx >= len(lines) {
		return false, nil
	}
	lines = append(lines[:idx], lines[idx+1:]...)
	if err := r.save(ctx, userID, lines); err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisCartRepository) Clear(ctx context.Context, userID int64) error {
	if err := r.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}
	return nil
}

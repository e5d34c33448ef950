// Package rediscache provides a read-through Redis cache for cart aggregates.
// Carts are hot during an active shopping session and immutable between
// mutations, which makes them a good fit for snapshot caching: every write
// path stores the new snapshot, every read path may serve it without
// touching PostgreSQL.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no snapshot exists for the requested cart.
var ErrCacheMiss = errors.New("cart not found in cache")

const (
	baseTTL   = 15 * time.Minute
	jitterMax = 5 // minutes, spreads expiry to avoid synchronized misses
)

// CartCache stores cart snapshots in Redis with a jittered TTL.
type CartCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

// NewCartCache creates a cache over the given Redis client.
func NewCartCache(client *redis.Client) *CartCache {
	return &CartCache{
		client:  client,
		baseTTL: baseTTL,
	}
}

// Get retrieves a cached cart by ID. Returns ErrCacheMiss when the key is
// absent. The snapshot is reconstructed through the domain funnel, so a
// poisoned cache entry cannot produce an invalid aggregate.
func (c *CartCache) Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error) {
	data, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var snapshot cart.Snapshot
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}

	return cart.FromSnapshot(snapshot)
}

// Set stores the cart snapshot under its ID with the base TTL plus jitter.
func (c *CartCache) Set(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(aggregate.ToSnapshot())
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(jitterMax)) * time.Minute
	if err = c.client.Set(ctx, cacheKey(aggregate.ID()), data, c.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

// Delete evicts the cached cart. Evicting a missing key is not an error.
func (c *CartCache) Delete(ctx context.Context, id kernel.UUID) error {
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}

	return nil
}

func cacheKey(id kernel.UUID) string {
	return "cart:" + id.String()
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/harvestconnect/delivery-service/internal/core/ports"
)

const estimateTTL = 5 * time.Minute

// EstimateCache stores computed delivery estimates keyed by request hash.
// Key format: estimate:<sha256-of-request>
type EstimateCache struct {
	client *redis.Client
}

// NewEstimateCache creates an EstimateCache wrapping the given Redis client.
func NewEstimateCache(client *redis.Client) *EstimateCache {
	return &EstimateCache{client: client}
}

// Get returns the cached estimate for the key, or (nil, nil) on a miss.
func (c *EstimateCache) Get(ctx context.Context, key string) (*ports.EstimateResult, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("estimate cache get: %w", err)
	}

	var result ports.EstimateResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("estimate cache decode: %w", err)
	}
	return &result, nil
}

// Set stores the estimate under the key (expires after estimateTTL).
func (c *EstimateCache) Set(ctx context.Context, key string, result *ports.EstimateResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("estimate cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(key), raw, estimateTTL).Err()
}

func (c *EstimateCache) key(hash string) string {
	return "estimate:" + hash
}

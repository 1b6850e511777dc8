package pnrcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
)

const keyPrefix = "pnr:"

// Cache кэш статусов PNR в Redis
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCache создает кэш; ttl <= 0 заменяется на domain.DefaultPNRCacheTTL
func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = domain.DefaultPNRCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает закэшированный статус PNR или ErrCacheMiss
func (c *Cache) Get(ctx context.Context, pnr string) (*domain.PNRStatus, error) {
	data, err := c.client.Get(ctx, key(pnr)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("%w: get %s: %v", ErrCache, pnr, err)
	}

	var status domain.PNRStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrCache, pnr, err)
	}
	return &status, nil
}

// Set сохраняет статус PNR на время ttl
func (c *Cache) Set(ctx context.Context, status *domain.PNRStatus) error {
	payload, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrCache, status.PNR, err)
	}

	if err := c.client.Set(ctx, key(status.PNR), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrCache, status.PNR, err)
	}
	return nil
}

func key(pnr string) string {
	return keyPrefix + pnr
}

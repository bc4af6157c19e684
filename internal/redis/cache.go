package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"tripcost/internal/costing"
)

// DefaultRateTableTTL bounds how long a replica may serve a stale rate table
// after another replica updated it.
const DefaultRateTableTTL = 5 * time.Minute

// Key prefixes
const (
	rateTableCachePrefix = "cache:rates:"
)

// CacheStore handles rate table caching in Redis.
type CacheStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCacheStore creates a new CacheStore. A non-positive ttl uses DefaultRateTableTTL.
func NewCacheStore(client *redis.Client, ttl time.Duration) *CacheStore {
	if ttl <= 0 {
		ttl = DefaultRateTableTTL
	}
	return &CacheStore{client: client, ttl: ttl}
}

// GetRateTable retrieves a rate table from cache.
// Returns nil, nil on a cache miss.
func (s *CacheStore) GetRateTable(ctx context.Context, region string) (*costing.RateTable, error) {
	key := rateTableCachePrefix + region
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var table costing.RateTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// SetRateTable stores a rate table in cache.
func (s *CacheStore) SetRateTable(ctx context.Context, table *costing.RateTable) error {
	key := rateTableCachePrefix + table.Region
	data, err := json.Marshal(table)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

// InvalidateRateTable removes a rate table from cache.
func (s *CacheStore) InvalidateRateTable(ctx context.Context, region string) error {
	key := rateTableCachePrefix + region
	return s.client.Del(ctx, key).Err()
}

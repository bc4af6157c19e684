package redis

import (
	"context"

	"tripcost/internal/costing"
)

// RateCacheInterface defines the interface for rate table caching.
type RateCacheInterface interface {
	GetRateTable(ctx context.Context, region string) (*costing.RateTable, error)
	SetRateTable(ctx context.Context, table *costing.RateTable) error
	InvalidateRateTable(ctx context.Context, region string) error
}

// Ensure concrete types implement interfaces.
var (
	_ RateCacheInterface = (*CacheStore)(nil)
)

package repository

import (
	"context"

	"tripcost/internal/costing"
)

// RateTableRepository defines the persistence operations for rate tables.
type RateTableRepository interface {
	// GetByRegion retrieves the rate table for a region.
	GetByRegion(ctx context.Context, region string) (*costing.RateTable, error)

	// GetAll retrieves every stored rate table.
	GetAll(ctx context.Context) ([]*costing.RateTable, error)

	// Upsert creates or replaces the rate table for table.Region and
	// returns the stored version.
	Upsert(ctx context.Context, table *costing.RateTable) (int, error)
}

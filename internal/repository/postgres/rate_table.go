package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tripcost/internal/costing"
	"tripcost/internal/repository"
)

// RateTableRepository is a PostgreSQL implementation of repository.RateTableRepository.
// Tables are stored as JSONB under rateTablesSchema.
type RateTableRepository struct {
	q Querier
}

// NewRateTableRepository creates a new PostgreSQL rate table repository.
func NewRateTableRepository(db *sql.DB) *RateTableRepository {
	return &RateTableRepository{q: db}
}

// GetByRegion retrieves the rate table for a region.
func (r *RateTableRepository) GetByRegion(ctx context.Context, region string) (*costing.RateTable, error) {
	query := `SELECT region, version, rates FROM rate_tables WHERE region = $1`

	var (
		storedRegion string
		version      int
		raw          []byte
	)
	err := r.q.QueryRowContext(ctx, query, region).Scan(&storedRegion, &version, &raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return decodeRateTable(storedRegion, version, raw)
}

// GetAll retrieves every stored rate table ordered by region.
func (r *RateTableRepository) GetAll(ctx context.Context) ([]*costing.RateTable, error) {
	query := `SELECT region, version, rates FROM rate_tables ORDER BY region`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []*costing.RateTable
	for rows.Next() {
		var (
			region  string
			version int
			raw     []byte
		)
		if err := rows.Scan(&region, &version, &raw); err != nil {
			return nil, err
		}

		table, err := decodeRateTable(region, version, raw)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	return tables, rows.Err()
}

// Upsert creates or replaces the rate table for a region. Each replacement
// bumps the stored version.
func (r *RateTableRepository) Upsert(ctx context.Context, table *costing.RateTable) (int, error) {
	query := `
		INSERT INTO rate_tables (region, version, rates, updated_at)
		VALUES ($1, 1, $2, $3)
		ON CONFLICT (region) DO UPDATE
		SET version = rate_tables.version + 1, rates = EXCLUDED.rates, updated_at = EXCLUDED.updated_at
		RETURNING version
	`

	raw, err := json.Marshal(table)
	if err != nil {
		return 0, fmt.Errorf("failed to encode rate table: %w", err)
	}

	var version int
	if err := r.q.QueryRowContext(ctx, query, table.Region, raw, time.Now().UTC()).Scan(&version); err != nil {
		return 0, err
	}

	return version, nil
}

// decodeRateTable unmarshals stored rates. Region and version columns win
// over whatever the JSON document carries.
func decodeRateTable(region string, version int, raw []byte) (*costing.RateTable, error) {
	var table costing.RateTable
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("failed to decode rate table %q: %w", region, err)
	}
	table.Region = region
	table.Version = version
	return &table, nil
}

// Ensure RateTableRepository implements repository.RateTableRepository.
var _ repository.RateTableRepository = (*RateTableRepository)(nil)

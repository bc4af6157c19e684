package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"tripcost/internal/costing"
	"tripcost/internal/metrics"
	"tripcost/internal/redis"
	"tripcost/internal/repository"
)

// RateService resolves the rate table used for a region.
type RateService struct {
	repo          repository.RateTableRepository
	cache         redis.RateCacheInterface
	defaultRegion string
}

// NewRateService creates a new RateService. repo and cache may be nil, in
// which case only the built-in table is served.
func NewRateService(
	repo repository.RateTableRepository,
	cache redis.RateCacheInterface,
	defaultRegion string,
) *RateService {
	if strings.TrimSpace(defaultRegion) == "" {
		defaultRegion = costing.DefaultRegion
	}
	return &RateService{
		repo:          repo,
		cache:         cache,
		defaultRegion: defaultRegion,
	}
}

// DefaultRegion returns the region used when callers do not name one.
func (s *RateService) DefaultRegion() string {
	return s.defaultRegion
}

// Resolve returns the rate table for region: cache first, then the store,
// then the built-in table for the default region.
func (s *RateService) Resolve(ctx context.Context, region string) (costing.RateTable, error) {
	region = s.normalizeRegion(region)

	if s.cache != nil {
		cached, err := s.cache.GetRateTable(ctx, region)
		if err != nil {
			log.Printf("rate cache lookup failed for region %s: %v", region, err)
		} else if cached != nil {
			metrics.IncRateResolution(metrics.SourceCache)
			return *cached, nil
		}
	}

	if s.repo != nil {
		stored, err := s.repo.GetByRegion(ctx, region)
		switch {
		case err == nil:
			if s.cache != nil {
				if err := s.cache.SetRateTable(ctx, stored); err != nil {
					log.Printf("failed to cache rate table for region %s: %v", region, err)
				}
			}
			metrics.IncRateResolution(metrics.SourceStore)
			return *stored, nil
		case errors.Is(err, repository.ErrNotFound):
			// Fall through to the built-in table.
		case region == s.defaultRegion:
			log.Printf("rate store unavailable, using built-in rates: %v", err)
			metrics.IncRateResolution(metrics.SourceFallback)
			return s.builtin(), nil
		default:
			return costing.RateTable{}, fmt.Errorf("failed to load rate table for region %s: %w", region, err)
		}
	}

	if region == s.defaultRegion {
		metrics.IncRateResolution(metrics.SourceBuiltin)
		return s.builtin(), nil
	}

	return costing.RateTable{}, ErrUnknownRegion
}

// List returns the built-in table followed by every stored table. A stored
// table for the default region replaces the built-in one.
func (s *RateService) List(ctx context.Context) ([]costing.RateTable, error) {
	var stored []*costing.RateTable
	if s.repo != nil {
		var err error
		stored, err = s.repo.GetAll(ctx)
		if err != nil {
			return nil, err
		}
	}

	tables := make([]costing.RateTable, 0, len(stored)+1)
	hasDefault := false
	for _, t := range stored {
		if t.Region == s.defaultRegion {
			hasDefault = true
		}
	}
	if !hasDefault {
		tables = append(tables, s.builtin())
	}
	for _, t := range stored {
		tables = append(tables, *t)
	}

	return tables, nil
}

// UpsertRequest contains the parameters for replacing a region's rates.
type UpsertRequest struct {
	Region string
	Table  costing.RateTable
}

// Upsert validates and stores a rate table, then drops any cached copy.
func (s *RateService) Upsert(ctx context.Context, req UpsertRequest) (costing.RateTable, error) {
	region := strings.TrimSpace(req.Region)
	if region == "" {
		return costing.RateTable{}, ErrInvalidRegion
	}

	if s.repo == nil {
		return costing.RateTable{}, ErrRateStoreDisabled
	}

	table := req.Table.Clone()
	table.Region = region
	if err := table.Validate(); err != nil {
		return costing.RateTable{}, err
	}

	version, err := s.repo.Upsert(ctx, &table)
	if err != nil {
		return costing.RateTable{}, err
	}
	table.Version = version

	if s.cache != nil {
		if err := s.cache.InvalidateRateTable(ctx, region); err != nil {
			log.Printf("failed to invalidate cached rate table for region %s: %v", region, err)
		}
	}

	return table, nil
}

func (s *RateService) normalizeRegion(region string) string {
	region = strings.TrimSpace(region)
	if region == "" {
		return s.defaultRegion
	}
	return region
}

func (s *RateService) builtin() costing.RateTable {
	table := costing.DefaultRateTable()
	table.Region = s.defaultRegion
	return table
}

package tests

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"tripcost/internal/costing"
	"tripcost/internal/redis"
	"tripcost/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK RATE TABLE REPOSITORY
// ──────────────────────────────────────────────

// MockRateTableRepository is a mock implementation of RateTableRepository.
type MockRateTableRepository struct {
	mu     sync.RWMutex
	tables map[string]*costing.RateTable

	// Counters for verification
	GetCallCount    int32
	UpsertCallCount int32

	// Error injection
	GetError    error
	GetAllError error
	UpsertError error
}

// NewMockRateTableRepository creates a new mock rate table repository.
func NewMockRateTableRepository() *MockRateTableRepository {
	return &MockRateTableRepository{
		tables: make(map[string]*costing.RateTable),
	}
}

// AddTable stores a table under its region.
func (m *MockRateTableRepository) AddTable(table costing.RateTable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := table.Clone()
	m.tables[table.Region] = &stored
}

func (m *MockRateTableRepository) GetByRegion(ctx context.Context, region string) (*costing.RateTable, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	table, ok := m.tables[region]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := table.Clone()
	return &copy, nil
}

func (m *MockRateTableRepository) GetAll(ctx context.Context) ([]*costing.RateTable, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	tables := make([]*costing.RateTable, 0, len(m.tables))
	for _, t := range m.tables {
		copy := t.Clone()
		tables = append(tables, &copy)
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].Region < tables[j].Region })
	return tables, nil
}

func (m *MockRateTableRepository) Upsert(ctx context.Context, table *costing.RateTable) (int, error) {
	atomic.AddInt32(&m.UpsertCallCount, 1)
	if m.UpsertError != nil {
		return 0, m.UpsertError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	version := 1
	if existing, ok := m.tables[table.Region]; ok {
		version = existing.Version + 1
	}
	stored := table.Clone()
	stored.Version = version
	m.tables[table.Region] = &stored
	return version, nil
}

// ──────────────────────────────────────────────
// MOCK RATE CACHE
// ──────────────────────────────────────────────

// MockRateCache is an in-memory implementation of RateCacheInterface.
type MockRateCache struct {
	mu     sync.Mutex
	tables map[string]costing.RateTable

	// Counters for verification
	HitCount        int32
	SetCallCount    int32
	InvalidateCount int32

	// Error injection
	GetError error
}

// NewMockRateCache creates a new mock rate cache.
func NewMockRateCache() *MockRateCache {
	return &MockRateCache{tables: make(map[string]costing.RateTable)}
}

func (m *MockRateCache) GetRateTable(ctx context.Context, region string) (*costing.RateTable, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	table, ok := m.tables[region]
	if !ok {
		return nil, nil
	}
	atomic.AddInt32(&m.HitCount, 1)
	copy := table.Clone()
	return &copy, nil
}

func (m *MockRateCache) SetRateTable(ctx context.Context, table *costing.RateTable) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[table.Region] = table.Clone()
	return nil
}

func (m *MockRateCache) InvalidateRateTable(ctx context.Context, region string) error {
	atomic.AddInt32(&m.InvalidateCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tables, region)
	return nil
}

// Has reports whether region is cached.
func (m *MockRateCache) Has(region string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tables[region]
	return ok
}

// Ensure mocks implement interfaces.
var (
	_ repository.RateTableRepository = (*MockRateTableRepository)(nil)
	_ redis.RateCacheInterface       = (*MockRateCache)(nil)
)

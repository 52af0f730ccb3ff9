package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryStorage keeps URL records in process memory. It is meant for local
// runs and tests; records are lost on exit.
type MemoryStorage struct {
	mu        sync.RWMutex
	records   map[int64]URLRecord
	byShort   map[string]int64
	nextID    int64
	generator Generator
}

func CreateMemoryStorage(g Generator) (*MemoryStorage, error) {
	if g == nil {
		return nil, fmt.Errorf("memory storage: generator is required")
	}

	return &MemoryStorage{
		records:   make(map[int64]URLRecord),
		byShort:   make(map[string]int64),
		generator: g,
	}, nil
}

func (m *MemoryStorage) Create(ctx context.Context, long string) (URLRecord, error) {
	if err := ctx.Err(); err != nil {
		return URLRecord{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for attempt := 0; attempt < MaxCreateAttempts; attempt++ {
		short := m.generator.Generate()
		if _, taken := m.byShort[short]; taken {
			continue
		}

		m.nextID++
		r := URLRecord{ID: m.nextID, Short: short, Original: long}
		m.records[r.ID] = r
		m.byShort[short] = r.ID

		return r, nil
	}

	return URLRecord{}, fmt.Errorf("create url after %d attempts: %w", MaxCreateAttempts, ErrConflict)
}

// List returns all records ordered by id.
func (m *MemoryStorage) List(ctx context.Context) ([]URLRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]URLRecord, 0, len(m.records))
	for _, r := range m.records {
		records = append(records, r)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	return records, nil
}

func (m *MemoryStorage) Delete(ctx context.Context, id int64) (URLRecord, error) {
	if err := ctx.Err(); err != nil {
		return URLRecord{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.records[id]
	if !ok {
		return URLRecord{}, fmt.Errorf("delete url %d: %w", id, ErrNotFound)
	}

	delete(m.records, id)
	delete(m.byShort, r.Short)

	return r, nil
}

// PingContext always succeeds; there is no backend to reach.
func (m *MemoryStorage) PingContext(ctx context.Context) error {
	return ctx.Err()
}

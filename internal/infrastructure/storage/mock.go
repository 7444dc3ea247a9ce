package storage

import (
	"sort"
	"sync"
)

// MockRepository is an in-memory Repository for tests.
type MockRepository struct {
	mu   sync.Mutex
	runs map[string]*RunRecord

	// SaveErr, when set, is returned by SaveRun to simulate failures.
	SaveErr error
}

// Compile-time check that MockRepository implements Repository
var _ Repository = (*MockRepository)(nil)

// NewMockRepository creates an empty in-memory repository.
func NewMockRepository() *MockRepository {
	return &MockRepository{runs: make(map[string]*RunRecord)}
}

// SaveRun implements Repository.
func (m *MockRepository) SaveRun(run *RunRecord) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *run
	m.runs[run.ID] = &copied
	return nil
}

// GetRun implements Repository.
func (m *MockRepository) GetRun(id string) (*RunRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	run, ok := m.runs[id]
	if !ok {
		return nil, nil
	}
	copied := *run
	return &copied, nil
}

// ListRuns implements Repository.
func (m *MockRepository) ListRuns(filters RunFilters) ([]*RunRecord, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var all []*RunRecord
	for _, run := range m.runs {
		if filters.Overall != "" && run.Overall != filters.Overall {
			continue
		}
		copied := *run
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	start := filters.Offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

// GetStats implements Repository.
func (m *MockRepository) GetStats() (*Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := &Stats{}
	for _, run := range m.runs {
		stats.TotalRuns++
		stats.FieldsChecked += run.FieldCount
		if run.MismatchCount == 0 {
			stats.CleanRuns++
		} else {
			stats.MismatchRuns++
		}
	}
	return stats, nil
}

// Close implements Repository.
func (m *MockRepository) Close() error {
	return nil
}

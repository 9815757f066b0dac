package store

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process Store with the same semantics as the Postgres
// implementation. Tests run against it; nothing else should.
type Memory struct {
	mu          sync.Mutex
	rows        map[string][][]string
	constraints map[string]map[int][]string
}

func NewMemory() *Memory {
	return &Memory{
		rows:        make(map[string][][]string),
		constraints: make(map[string]map[int][]string),
	}
}

func (m *Memory) TableExists(ctx context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[name]
	return ok, nil
}

func (m *Memory) CreateTable(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[name]; !ok {
		m.rows[name] = nil
		m.constraints[name] = make(map[int][]string)
	}
	return nil
}

func (m *Memory) ReadAll(ctx context.Context, name string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.rows[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}

	//copy so callers cannot mutate the table through the result
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (m *Memory) AppendRow(ctx context.Context, name string, cells []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[name]; !ok {
		return fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}
	if err := checkConstraints(m.constraints[name], cells); err != nil {
		return err
	}
	m.rows[name] = append(m.rows[name], append([]string(nil), cells...))
	return nil
}

func (m *Memory) SetColumnConstraint(ctx context.Context, name string, col int, allowed []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[name]; !ok {
		return fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}
	m.constraints[name][col] = append([]string(nil), allowed...)
	return nil
}

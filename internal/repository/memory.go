package repository

import (
	"context"
	"sync"

	"github.com/adhikav/customerdesk/internal/domain"
)

// Memory is the in-process backend: the default store for a single editing
// session and the test double for everything built on the contract.
type Memory struct {
	addedBroadcaster
	mu        sync.Mutex
	customers []*domain.Customer
	present   map[*domain.Customer]struct{}
}

// NewMemory returns an empty in-memory repository, optionally pre-populated
// with seed customers (listed but not announced).
func NewMemory(seed ...*domain.Customer) *Memory {
	m := &Memory{present: make(map[*domain.Customer]struct{})}
	for _, c := range seed {
		if c == nil {
			panic("repository: nil seed customer")
		}
		if _, ok := m.present[c]; ok {
			continue
		}
		m.customers = append(m.customers, c)
		m.present[c] = struct{}{}
	}
	return m
}

// ListAll returns a copy of the held customers in insertion order.
func (m *Memory) ListAll(context.Context) ([]*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Customer(nil), m.customers...), nil
}

// Contains reports instance membership.
func (m *Memory) Contains(_ context.Context, c *domain.Customer) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.present[c]
	return ok, nil
}

// Add stores the customer and fires the added event before returning. A
// second Add of the same instance is a no-op and fires nothing. The event is
// dispatched outside the state lock so listeners may query the repository.
func (m *Memory) Add(_ context.Context, c *domain.Customer) error {
	if c == nil {
		panic("repository: nil customer")
	}
	m.mu.Lock()
	if _, ok := m.present[c]; ok {
		m.mu.Unlock()
		return nil
	}
	m.customers = append(m.customers, c)
	m.present[c] = struct{}{}
	m.mu.Unlock()

	m.fireAdded(c)
	return nil
}
